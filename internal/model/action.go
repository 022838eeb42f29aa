package model

// ActionFailure records a single file the applier could not delete or move.
type ActionFailure struct {
	Path Path
	Err  error
}

// Reason returns the failure message for display.
func (f ActionFailure) Reason() string {
	if f.Err == nil {
		return ""
	}

	return f.Err.Error()
}

// ActionReport aggregates the outcome of a bulk delete or relocate so the
// caller can report partial success.
type ActionReport struct {
	Processed int
	Skipped   int
	Failed    int

	// Bytes is the storage reclaimed (delete) or moved (relocate).
	Bytes int64

	Failures []ActionFailure
}
