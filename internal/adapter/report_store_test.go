package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/dupescan/internal/model"
)

func TestReportStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := m.Path(filepath.Join(dir, "report.json"))

	result := &m.ScanResult{
		Root:      "/data",
		Algorithm: "xx64",
		Groups: []m.DigestGroup{
			{
				Digest: "deadbeef",
				Size:   5,
				Files: []m.FileRecord{
					{Path: "/data/a.txt", Size: 5, Digest: "deadbeef"},
					{Path: "/data/b.txt", Size: 5, Digest: "deadbeef"},
				},
			},
		},
		FilesScanned:   3,
		BytesHashed:    15,
		GroupsFound:    1,
		DuplicateCount: 1,
		WastedBytes:    5,
		Warnings:       []m.Warning{{Path: "/data/locked.txt", Reason: "permission denied"}},
	}

	store := NewReportStore()
	require.NoError(t, store.Save(path, result))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, result, loaded)
}

func TestReportStore_LoadMissingFile(t *testing.T) {
	store := NewReportStore()

	_, err := store.Load(m.Path(filepath.Join(t.TempDir(), "absent.json")))
	assert.True(t, os.IsNotExist(err))
}

func TestReportStore_LoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewReportStore()

	_, err := store.Load(m.Path(path))
	assert.ErrorContains(t, err, "decode report")
}
