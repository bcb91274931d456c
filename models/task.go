package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TaskPriority represents the priority levels of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityNormal TaskPriority = "normal"
	PriorityHigh   TaskPriority = "high"
)

// ErrValidation wraps every validation failure produced by this package so
// callers can map it to a client error with errors.Is.
var ErrValidation = errors.New("validation failed")

// ParsePriority converts a raw string into a TaskPriority.
// The input is trimmed; anything outside the closed enum is rejected.
func ParsePriority(s string) (TaskPriority, error) {
	switch p := TaskPriority(strings.TrimSpace(s)); p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: priority must be one of: low, normal, high", ErrValidation)
	}
}

// Task represents a unit of work.
// IDs are positive integers assigned monotonically by the store and are
// immutable after creation. IsDone only ever transitions false -> true.
type Task struct {
	ID       int          `json:"id" validate:"required,gt=0"`
	Title    string       `json:"title" validate:"required"`
	Priority TaskPriority `json:"priority" validate:"required,oneof=low normal high"`
	IsDone   bool         `json:"isDone"`
}

// TaskFilter narrows a listing. Nil fields match everything; set fields
// combine with AND semantics.
type TaskFilter struct {
	IsDone   *bool
	Priority *TaskPriority
}

// Matches reports whether the task satisfies every set field of the filter.
func (f TaskFilter) Matches(t Task) bool {
	if f.IsDone != nil && t.IsDone != *f.IsDone {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	return true
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errorMessages, "; "))
	}
	return nil
}
