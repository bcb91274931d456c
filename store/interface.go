package store

import "github.com/taskdock/taskd/models"

// TaskStore defines the interface for task persistence.
// It is the single authority over the task collection: every mutation is
// durably persisted before it is acknowledged to the caller.
type TaskStore interface {
	// Initialize configures the store with backend-specific settings, such as
	// the data file path. It must be called before any other store operation;
	// it loads existing tasks and derives the next id to allocate.
	Initialize(config map[string]string) error

	// Create adds a new task with the given title and priority.
	// The title is trimmed of surrounding whitespace; the store assigns the
	// id. It returns the created task, or an error wrapping
	// models.ErrValidation if the input is invalid, or a persistence error
	// if the durable rewrite failed (in which case the store is unchanged).
	Create(title string, priority models.TaskPriority) (models.Task, error)

	// MarkCompleted sets isDone on the task with the given id.
	// It reports false when no such task exists. Completing an
	// already-completed task succeeds silently.
	MarkCompleted(id int) (bool, error)

	// Delete removes the task with the given id.
	// It reports false when no such task exists.
	Delete(id int) (bool, error)

	// List returns all tasks matching the filter, ordered by ascending id.
	// The returned slice is a defensive copy; mutating it does not affect
	// store state.
	List(filter models.TaskFilter) []models.Task
}
