package token

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File is a Store persisted as a single file on disk, so the session
// survives process restarts. Read problems degrade to "no token"; only
// Set and Clear surface I/O errors.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Get() (string, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(string(data))
	return value, value != ""
}

func (f *File) Set(value string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(value), 0o600)
}

func (f *File) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
