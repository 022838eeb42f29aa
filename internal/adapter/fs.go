// Package adapter contains infrastructure adapters for the dupescan CLI.
package adapter

import (
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/dupescan/internal/model"
)

// WalkFunc mirrors the callback shape used by filepath.Walk. It is defined
// here to avoid leaking the standard-library type directly into the domain
// layer.
type WalkFunc func(path string, info os.FileInfo, err error) error

// FileSystem abstracts the filesystem operations the engine relies on. It
// intentionally hides direct `os` access so the scan and action logic can
// be tested without touching the disk.
type FileSystem interface {
	// Enumerate traverses root in lexical directory order. When recursive
	// is false the implementation limits itself to the root directory
	// (no sub-dirs). The traversal order is deterministic for a fixed
	// filesystem snapshot.
	Enumerate(root m.Path, recursive bool, fn WalkFunc) error

	// Stat returns metadata for a path so callers can check existence or
	// probe file sizes.
	Stat(path m.Path) (os.FileInfo, error)

	// Open opens a file for reading.
	Open(path m.Path) (io.ReadCloser, error)

	// Remove deletes a single file.
	Remove(path m.Path) error

	// Move renames src to dst, falling back to copy-and-remove when the
	// two paths live on different devices.
	Move(src, dst m.Path) error

	// MkdirAll creates a directory together with any missing parents.
	MkdirAll(path m.Path, perm os.FileMode) error
}

// LocalFileSystem is the concrete FileSystem backed by the os package.
type LocalFileSystem struct{}

// NewLocalFileSystem constructs a LocalFileSystem ready to be wired into
// the engine.
func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Enumerate iterates over files under root, optionally descending into
// subdirectories.
func (a *LocalFileSystem) Enumerate(root m.Path, recursive bool, fn WalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalFileSystem) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Open opens the file at path for reading.
func (a *LocalFileSystem) Open(path m.Path) (io.ReadCloser, error) {
	return os.Open(string(path))
}

// Remove deletes the file at path.
func (a *LocalFileSystem) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// Move renames src to dst. os.Rename fails across devices, so a link error
// falls back to copying the content and removing the source.
func (a *LocalFileSystem) Move(src, dst m.Path) error {
	err := os.Rename(string(src), string(dst))
	if err == nil {
		return nil
	}

	if _, ok := err.(*os.LinkError); !ok {
		return err
	}

	if err := a.copyFile(string(src), string(dst)); err != nil {
		return err
	}

	return os.Remove(string(src))
}

// MkdirAll creates the directory at path with any missing parents.
func (a *LocalFileSystem) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// copyFile copies a single file preserving its mode.
func (a *LocalFileSystem) copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	return destFile.Close()
}
