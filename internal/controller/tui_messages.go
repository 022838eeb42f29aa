package controller

import "time"

type tickMsg time.Time

// List item types.
type groupRow struct {
	group  int
	keep   bool
	size   int64
	path   string
	wasted int64
}

func (r groupRow) FilterValue() string {
	return r.path
}
