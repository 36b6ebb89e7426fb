package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput marks caller-supplied values that can never form a valid task.
var ErrInvalidInput = errors.New("invalid input")

type Task struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	EstimatedHours float64 `json:"estimated_hours"`
	Completed      bool    `json:"completed"`
	CreatedDate    Date    `json:"created_date"`
	CompletedDate  *Date   `json:"completed_date"`
}

// ValidateNew checks the caller-supplied fields of a task about to be created.
func ValidateNew(name string, estimatedHours float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: task name is required", ErrInvalidInput)
	}
	if math.IsNaN(estimatedHours) || math.IsInf(estimatedHours, 0) || estimatedHours <= 0 {
		return fmt.Errorf("%w: estimated hours must be a number greater than 0, got %v", ErrInvalidInput, estimatedHours)
	}
	return nil
}

func (t *Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: task id must be positive", ErrInvalidInput)
	}
	if err := ValidateNew(t.Name, t.EstimatedHours); err != nil {
		return err
	}
	if t.CreatedDate.IsZero() {
		return fmt.Errorf("%w: task %d has no created date", ErrInvalidInput, t.ID)
	}
	if t.Completed != (t.CompletedDate != nil) {
		return fmt.Errorf("%w: task %d completed flag and completed date disagree", ErrInvalidInput, t.ID)
	}
	return nil
}

// Complete marks the task done on day. Completing twice moves the date.
func (t *Task) Complete(day Date) {
	t.Completed = true
	t.CompletedDate = &day
}

func (t *Task) Reopen() {
	t.Completed = false
	t.CompletedDate = nil
}
