// Package images stores toy pictures on the local filesystem.
package images

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrTooLarge is returned by Save when the contents exceed the size limit
var ErrTooLarge = errors.New("image exceeds the maximum size")

// Storage defines the behavior for saving and reading image files
type Storage interface {
	Save(path string, contents io.Reader) error
	Open(path string) (*os.File, error)
	Delete(path string) error
}

// Local is a Storage rooted at a directory on disk
type Local struct {
	maxFileSize int64 // Maximum number of bytes for files
	basePath    string
}

// NewLocal creates a new Local store saving files under basePath, each at
// most maxSize bytes
func NewLocal(basePath string, maxSize int64) (*Local, error) {
	p, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Local{basePath: p, maxFileSize: maxSize}, nil
}

// Save writes contents to path. The file appears atomically once fully
// written; on error nothing is left behind.
func (l *Local) Save(path string, contents io.Reader) error {
	fp := l.fullPath(path)
	dir := filepath.Dir(fp)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, "upload-*")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	// read one byte past the limit to tell "exactly max" from "too big"
	written, err := io.Copy(tempFile, io.LimitReader(contents, l.maxFileSize+1))
	if err != nil {
		tempFile.Close()
		return fmt.Errorf("unable to write to file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("unable to close temporary file: %w", err)
	}

	if written > l.maxFileSize {
		return ErrTooLarge
	}

	if err := os.Rename(tempPath, fp); err != nil {
		return fmt.Errorf("unable to move temporary file to final location: %w", err)
	}

	return nil
}

// Open returns the file stored at path. A missing file yields an error
// matching os.ErrNotExist.
func (l *Local) Open(path string) (*os.File, error) {
	f, err := os.Open(l.fullPath(path))
	if err != nil {
		return nil, fmt.Errorf("unable to open the file: %w", err)
	}
	return f, nil
}

// Delete removes the file at path. Missing files are ignored.
func (l *Local) Delete(path string) error {
	err := os.Remove(l.fullPath(path))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to delete the file: %w", err)
	}
	return nil
}

// fullPath resolves path below the base directory; ".." segments cannot
// climb out of it
func (l *Local) fullPath(path string) string {
	return filepath.Join(l.basePath, filepath.Clean("/"+path))
}
