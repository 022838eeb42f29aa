package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/dupescan/internal/model"
)

func TestJSONUI_DisplayScan_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewJSONUI(cmd)

	if err := ui.DisplayScan(scanResultFixture()); err != nil {
		t.Fatalf("DisplayScan() error = %v", err)
	}

	var decoded m.ScanResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput:\n%s", err, buf.String())
	}

	if decoded.GroupsFound != 2 || decoded.DuplicateCount != 3 || decoded.WastedBytes != 5120 {
		t.Fatalf("decoded counters = %d/%d/%d, want 2/3/5120",
			decoded.GroupsFound, decoded.DuplicateCount, decoded.WastedBytes)
	}

	if len(decoded.Groups) != 2 {
		t.Fatalf("decoded groups = %d, want 2", len(decoded.Groups))
	}

	if decoded.Groups[0].Files[0].Path != "/data/a.txt" {
		t.Fatalf("keeper path = %q, want /data/a.txt", decoded.Groups[0].Files[0].Path)
	}
}

func TestJSONUI_DisplayWarnings_IsSilent(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewJSONUI(cmd)
	ui.DisplayWarnings([]m.Warning{{Path: "/data/locked.txt", Reason: "permission denied"}})

	if buf.Len() != 0 {
		t.Fatalf("DisplayWarnings wrote output: %q", buf.String())
	}
}

func TestJSONUI_DisplayAction(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewJSONUI(cmd)

	report := m.ActionReport{
		Processed: 2,
		Failed:    1,
		Bytes:     2048,
		Failures: []m.ActionFailure{
			{Path: "/data/busy.txt", Err: errors.New("device or resource busy")},
		},
	}

	ui.DisplayAction("delete", report)

	var decoded struct {
		Action    string `json:"action"`
		Processed int    `json:"processed"`
		Failed    int    `json:"failed"`
		Bytes     int64  `json:"bytes"`
		Failures  []struct {
			Path   string `json:"path"`
			Reason string `json:"reason"`
		} `json:"failures"`
	}

	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput:\n%s", err, buf.String())
	}

	if decoded.Action != "delete" || decoded.Processed != 2 || decoded.Failed != 1 || decoded.Bytes != 2048 {
		t.Fatalf("decoded report = %+v", decoded)
	}

	if len(decoded.Failures) != 1 || decoded.Failures[0].Reason != "device or resource busy" {
		t.Fatalf("decoded failures = %+v", decoded.Failures)
	}
}
