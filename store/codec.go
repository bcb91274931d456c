package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/spf13/afero"

	"github.com/taskdock/taskd/models"
)

const tempFileSuffix = ".tmp"

// taskCodec serializes the task collection to and from a single JSON
// document: an array of task objects. The filesystem is abstracted behind
// afero so tests can inject failures.
type taskCodec struct {
	fs   afero.Fs
	path string
}

// rawTask mirrors the on-disk shape with pointer fields so that absent and
// wrongly-typed fields are distinguishable from zero values.
type rawTask struct {
	ID       *int    `json:"id"`
	Title    *string `json:"title"`
	Priority *string `json:"priority"`
	IsDone   *bool   `json:"isDone"`
}

// Load reads the task file and returns the collection keyed by id.
// A missing, empty, or malformed file yields an empty collection, never an
// error: storage corruption is recovered locally and logged, not surfaced.
// Individual records that fail validation are dropped; valid records are
// kept, with a later duplicate id overwriting an earlier one.
func (c taskCodec) Load() (map[int]models.Task, error) {
	tasks := make(map[int]models.Task)

	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tasks, nil
		}
		return nil, fmt.Errorf("read task file %s: %w", c.path, err)
	}
	if len(data) == 0 {
		return tasks, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		slog.Warn("task file is not a JSON array, starting with an empty collection", "path", c.path, "error", err)
		return tasks, nil
	}

	for i, element := range elements {
		var raw rawTask
		if err := json.Unmarshal(element, &raw); err != nil {
			slog.Warn("dropping malformed task record", "path", c.path, "index", i, "error", err)
			continue
		}
		task, ok := raw.toTask()
		if !ok {
			slog.Warn("dropping invalid task record", "path", c.path, "index", i)
			continue
		}
		tasks[task.ID] = task
	}

	return tasks, nil
}

// toTask converts a raw record into a validated Task.
func (r rawTask) toTask() (models.Task, bool) {
	if r.ID == nil || r.Title == nil || r.Priority == nil || r.IsDone == nil {
		return models.Task{}, false
	}
	priority, err := models.ParsePriority(*r.Priority)
	if err != nil {
		return models.Task{}, false
	}
	task := models.Task{
		ID:       *r.ID,
		Title:    *r.Title,
		Priority: priority,
		IsDone:   *r.IsDone,
	}
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, false
	}
	return task, true
}

// Save writes the full collection, ordered by ascending id, to the task
// file. The write is atomic: the document goes to a temporary file in the
// same directory which is then renamed over the destination, so no reader
// ever observes a partially-written file and a crash mid-write leaves the
// previous file intact.
func (c taskCodec) Save(tasks map[int]models.Task) error {
	ordered := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		ordered = append(ordered, task)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	data, err := json.MarshalIndent(ordered, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	tempPath := c.path + tempFileSuffix
	if err := afero.WriteFile(c.fs, tempPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary task file %s: %w", tempPath, err)
	}
	if err := c.fs.Rename(tempPath, c.path); err != nil {
		_ = c.fs.Remove(tempPath)
		return fmt.Errorf("rename %s to %s: %w", tempPath, c.path, err)
	}
	return nil
}
