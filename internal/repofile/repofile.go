// Package repofile links a directory tree to its own task file, so a course
// folder can keep a task list separate from the global one.
package repofile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const FileName = ".studyplan-file"

// Find walks up from startDir looking for a link file. It returns the linked
// task file, resolved against the directory holding the link, and that directory.
// Returns ("", "", nil) if not found.
func Find(startDir string) (taskFile, dir string, err error) {
	dir = startDir
	for {
		target, err := Read(dir)
		if err != nil {
			return "", "", err
		}
		if target != "" {
			if !filepath.IsAbs(target) {
				target = filepath.Join(dir, target)
			}
			return target, dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", nil
		}
		dir = parent
	}
}

// Write links dir to taskFile.
func Write(dir, taskFile string) error {
	return os.WriteFile(filepath.Join(dir, FileName), []byte(taskFile+"\n"), 0644)
}

// Read reads and trims the link file in dir.
// Returns ("", nil) if the file does not exist.
func Read(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Remove deletes the link file in dir. A missing link is not an error.
func Remove(dir string) error {
	err := os.Remove(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
