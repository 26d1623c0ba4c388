package main

import (
	"reflect"
	"testing"

	"github.com/amonks/todo/task"
)

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{" 42 ", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, test := range tests {
		got, err := parseTaskID(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("parseTaskID(%q): expected error", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTaskID(%q): unexpected error %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("parseTaskID(%q) = %d, want %d", test.input, got, test.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	if got := splitTags(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := splitTags("  "); got != nil {
		t.Errorf("expected nil for blank input, got %v", got)
	}
	if got := splitTags("a,b"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestResolveTaskIDs(t *testing.T) {
	list := task.NewList()
	first := list.Add("one", task.AddOptions{})
	second := list.Add("two", task.AddOptions{})

	ids, err := resolveTaskIDs(list, []string{"1", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{first.ID, second.ID}; !reflect.DeepEqual(ids, want) {
		t.Errorf("expected ids %v, got %v", want, ids)
	}

	// One bad id fails the whole batch, even when others resolve.
	if _, err := resolveTaskIDs(list, []string{"1", "99"}); err == nil {
		t.Error("expected error for missing id in batch")
	}
	if _, err := resolveTaskIDs(list, []string{"1", "abc"}); err == nil {
		t.Error("expected error for unparseable id in batch")
	}
}

func TestRequireTask(t *testing.T) {
	list := task.NewList()
	created := list.Add("present", task.AddOptions{})

	found, err := requireTask(list, created.ID)
	if err != nil || found == nil {
		t.Fatalf("expected task, got %v (err %v)", found, err)
	}

	if _, err := requireTask(list, 99); err == nil {
		t.Error("expected error for missing id")
	}
}
