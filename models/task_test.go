package models

import (
	"errors"
	"testing"
)

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in      string
		want    TaskPriority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"normal", PriorityNormal, false},
		{"high", PriorityHigh, false},
		{"  high  ", PriorityHigh, false},
		{"urgent", "", true},
		{"HIGH", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParsePriority(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q): expected error, got %q", tc.in, got)
			} else if !errors.Is(err, ErrValidation) {
				t.Errorf("ParsePriority(%q): error should wrap ErrValidation, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateStruct_RejectsInvalidTask(t *testing.T) {
	cases := map[string]Task{
		"zero id":          {ID: 0, Title: "a", Priority: PriorityLow},
		"negative id":      {ID: -1, Title: "a", Priority: PriorityLow},
		"empty title":      {ID: 1, Title: "", Priority: PriorityLow},
		"unknown priority": {ID: 1, Title: "a", Priority: "urgent"},
	}

	for name, task := range cases {
		err := ValidateStruct(task)
		if err == nil {
			t.Errorf("%s: expected validation error", name)
			continue
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: error should wrap ErrValidation, got %v", name, err)
		}
	}

	valid := Task{ID: 1, Title: "write tests", Priority: PriorityNormal}
	if err := ValidateStruct(valid); err != nil {
		t.Errorf("valid task rejected: %v", err)
	}
}

func TestTaskFilter_Matches(t *testing.T) {
	task := Task{ID: 1, Title: "a", Priority: PriorityHigh, IsDone: true}

	if !(TaskFilter{}).Matches(task) {
		t.Error("empty filter should match everything")
	}

	done := true
	high := PriorityHigh
	if !(TaskFilter{IsDone: &done, Priority: &high}).Matches(task) {
		t.Error("matching filter rejected task")
	}

	notDone := false
	if (TaskFilter{IsDone: &notDone}).Matches(task) {
		t.Error("isDone=false filter matched a done task")
	}

	low := PriorityLow
	if (TaskFilter{IsDone: &done, Priority: &low}).Matches(task) {
		t.Error("AND semantics violated: priority mismatch should reject")
	}
}
