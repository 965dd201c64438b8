package todos

import (
	"testing"
	"time"

	"github.com/teemow/daybook/internal/api"
)

var testNow = time.Date(2025, 8, 31, 8, 0, 0, 0, time.UTC)

func TestNewDraftDefaults(t *testing.T) {
	draft := Kind().NewDraft(testNow)

	if draft.Priority != api.PriorityMedium {
		t.Errorf("Priority = %q, want %q", draft.Priority, api.PriorityMedium)
	}
	if draft.Status != StatusPending {
		t.Errorf("Status = %q, want %q", draft.Status, StatusPending)
	}
	if !draft.DueDate.Equal(testNow) {
		t.Errorf("DueDate = %v, want %v", draft.DueDate, testNow)
	}
	if draft.ID != "" {
		t.Errorf("ID = %q, want empty", draft.ID)
	}
}

func TestNormalizeFillsBlanks(t *testing.T) {
	got := Kind().Normalize(Todo{Title: "task"}, testNow)

	if got.Priority != api.PriorityMedium {
		t.Errorf("Priority = %q, want %q", got.Priority, api.PriorityMedium)
	}
	if got.Status != StatusPending {
		t.Errorf("Status = %q, want %q", got.Status, StatusPending)
	}
	if !got.DueDate.Equal(testNow) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, testNow)
	}
}

func TestNormalizePreservesExplicitValues(t *testing.T) {
	due := api.At(time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC))
	got := Kind().Normalize(Todo{
		Title:    "task",
		Priority: api.PriorityHigh,
		Status:   StatusInProgress,
		DueDate:  due,
	}, testNow)

	if got.Priority != api.PriorityHigh {
		t.Errorf("Priority = %q, want %q", got.Priority, api.PriorityHigh)
	}
	if got.Status != StatusInProgress {
		t.Errorf("Status = %q, want %q", got.Status, StatusInProgress)
	}
	if !got.DueDate.Equal(due.Time) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
}
