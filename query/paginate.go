// Package query applies read-side windowing over id-ordered task snapshots
// produced by the store. It is purely functional: inputs are never mutated.
package query

import "github.com/taskdock/taskd/models"

// NoLimit marks a page whose limit parameter was not supplied.
const NoLimit = -1

// Page describes an offset/limit window. Offset defaults to 0; Limit is
// NoLimit when absent. A Limit of 0 is a real limit and yields an empty page.
type Page struct {
	Offset int
	Limit  int
}

// Apply returns the window of tasks selected by the page: the offset is
// applied first, then the limit truncates the remainder. An offset beyond
// the end of the sequence yields an empty result, not an error.
func Apply(tasks []models.Task, page Page) []models.Task {
	if page.Offset >= len(tasks) {
		return []models.Task{}
	}
	windowed := tasks[page.Offset:]
	if page.Limit != NoLimit && page.Limit < len(windowed) {
		windowed = windowed[:page.Limit]
	}
	return windowed
}
