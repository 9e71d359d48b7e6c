package logpie

import (
	"errors"
	"io/fs"
	"os"
)

// dirPerm leaves the effective mode to the process umask.
const dirPerm fs.FileMode = 0o777

// MakeDirs creates path and any missing parents.
//
// A directory that already exists, including one created concurrently by
// another caller, is not an error. Any other failure is returned unchanged.
func MakeDirs(path string) error {
	err := os.MkdirAll(path, dirPerm)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	return err
}

// EnsureTree makes sure the directory tree at path exists and returns path.
func EnsureTree(path string) (string, error) {
	if !exists(path) {
		if err := MakeDirs(path); err != nil {
			return "", err
		}
	}
	return path, nil
}

// CheckTree wraps a method that computes a directory path so that the
// directory exists on disk before the path reaches the caller. The path
// itself is returned unaltered.
//
//	var logDir = logpie.CheckTree((*FileHandler).folder)
func CheckTree[H any](method func(H) string) func(H) (string, error) {
	return func(h H) (string, error) {
		return EnsureTree(method(h))
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
