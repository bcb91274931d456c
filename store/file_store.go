package store

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/taskdock/taskd/models"
)

const (
	defaultDataFile = "tasks.json"
	dataFileKey     = "dataFile"
)

// FileTaskStore implements the TaskStore interface with a JSON file backend.
// The in-memory map is the authoritative copy; every mutation rewrites the
// file atomically before returning. A single RWMutex serializes mutations
// (one logical writer at a time) while letting reads run concurrently
// against consistent snapshots.
type FileTaskStore struct {
	mu     sync.RWMutex
	codec  taskCodec
	tasks  map[int]models.Task
	nextID int
}

// NewFileTaskStore creates a new instance of FileTaskStore backed by the
// given filesystem. A nil fs means the OS filesystem.
// It does not initialize the store; Initialize must be called separately.
func NewFileTaskStore(fs afero.Fs) *FileTaskStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileTaskStore{
		codec: taskCodec{fs: fs},
		tasks: make(map[int]models.Task),
	}
}

// Initialize configures the FileTaskStore.
// It expects a 'dataFile' key in the config map specifying the path to the
// data file, defaulting to 'tasks.json' in the current working directory.
// Existing tasks are loaded and the next id to allocate is derived as
// max(loaded ids)+1, minimum 1.
func (s *FileTaskStore) Initialize(config map[string]string) error {
	s.codec.path = defaultDataFile
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.codec.path = val
	}

	dir := filepath.Dir(s.codec.path)
	if dir != "." && dir != "" {
		if err := s.codec.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	tasks, err := s.codec.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.nextID = 1
	for id := range tasks {
		if id >= s.nextID {
			s.nextID = id + 1
		}
	}
	return nil
}

// Create adds a new task to the store and persists it synchronously.
// The handler validates input before calling; the store re-validates
// defensively so an invalid task can never reach the file.
func (s *FileTaskStore) Create(title string, priority models.TaskPriority) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:       s.nextID,
		Title:    strings.TrimSpace(title),
		Priority: priority,
	}
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	s.tasks[task.ID] = task
	if err := s.codec.Save(s.tasks); err != nil {
		// Roll back so memory stays consistent with the untouched file.
		delete(s.tasks, task.ID)
		return models.Task{}, fmt.Errorf("failed to save new task: %w", err)
	}
	s.nextID++

	return task, nil
}

// MarkCompleted marks the task with the given id as done and persists the
// change. It reports false when the id is unknown; completing an
// already-completed task is idempotent.
func (s *FileTaskStore) MarkCompleted(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return false, nil
	}

	original := task
	task.IsDone = true
	s.tasks[id] = task

	if err := s.codec.Save(s.tasks); err != nil {
		s.tasks[id] = original
		return false, fmt.Errorf("failed to save task %d after completion: %w", id, err)
	}
	return true, nil
}

// Delete removes the task with the given id and persists the change.
// It reports false when the id is unknown.
func (s *FileTaskStore) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return false, nil
	}

	delete(s.tasks, id)
	if err := s.codec.Save(s.tasks); err != nil {
		s.tasks[id] = task
		return false, fmt.Errorf("failed to save after deleting task %d: %w", id, err)
	}
	return true, nil
}

// List retrieves all tasks matching the filter, ordered by ascending id.
// The result is a copy; callers cannot mutate store state through it.
func (s *FileTaskStore) List(filter models.TaskFilter) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter.Matches(task) {
			result = append(result, task)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
