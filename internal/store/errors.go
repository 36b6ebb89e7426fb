package store

import (
	"errors"
	"fmt"

	"github.com/rogersnm/studyplan/internal/model"
)

var (
	// ErrInvalidInput is returned when a task would violate its invariants.
	ErrInvalidInput = model.ErrInvalidInput
	ErrNotFound     = errors.New("task not found")
	// ErrCorrupt means the backing file exists but cannot be decoded.
	ErrCorrupt = errors.New("task file is corrupt")
)

// IOError reports a failure to read or write durable storage.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
