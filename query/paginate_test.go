package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskdock/taskd/models"
)

func tasksWithIDs(ids ...int) []models.Task {
	tasks := make([]models.Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, models.Task{ID: id, Title: "t", Priority: models.PriorityLow})
	}
	return tasks
}

func ids(tasks []models.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		in   []models.Task
		page Page
		want []int
	}{
		{"defaults pass everything through", tasksWithIDs(1, 2, 3), Page{Offset: 0, Limit: NoLimit}, []int{1, 2, 3}},
		{"offset then limit", tasksWithIDs(1, 2, 3, 4), Page{Offset: 1, Limit: 2}, []int{2, 3}},
		{"offset equal to length", tasksWithIDs(1, 2), Page{Offset: 2, Limit: NoLimit}, []int{}},
		{"offset beyond length", tasksWithIDs(1, 2), Page{Offset: 10, Limit: NoLimit}, []int{}},
		{"limit zero is an empty page", tasksWithIDs(1, 2, 3), Page{Offset: 0, Limit: 0}, []int{}},
		{"limit larger than remainder", tasksWithIDs(1, 2, 3), Page{Offset: 2, Limit: 10}, []int{3}},
		{"empty input", tasksWithIDs(), Page{Offset: 0, Limit: NoLimit}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.in, tt.page)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := tasksWithIDs(1, 2, 3)
	_ = Apply(in, Page{Offset: 1, Limit: 1})
	assert.Equal(t, []int{1, 2, 3}, ids(in))
}
