package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"rnamap/internal/application"
	"rnamap/internal/domain"
)

func seededHistory(t *testing.T) *memHistory {
	t.Helper()
	h := newMemHistory()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"aaa-1", "bbb-2", "ccc-3"} {
		run := &domain.Run{
			ID:        id,
			Distance:  i,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Entries:   []domain.Entry{{Template: 1, Target: 1}},
		}
		if err := h.Record(run); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	return h
}

func TestHistoryListCommand(t *testing.T) {
	h := seededHistory(t)

	runs, err := NewHistoryListCommand(h, 2).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "ccc-3" || runs[1].ID != "bbb-2" {
		t.Errorf("unexpected runs %+v", runs)
	}

	runs, err = NewHistoryListCommand(h, 0).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("expected all 3 runs, got %d", len(runs))
	}
}

func TestHistoryListCommand_NegativeLimit(t *testing.T) {
	_, err := NewHistoryListCommand(newMemHistory(), -1).Execute(context.Background())
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) || valErr.Field != "limit" {
		t.Errorf("expected limit ValidationError, got %v", err)
	}
}

func TestHistoryShowCommand(t *testing.T) {
	h := seededHistory(t)

	run, err := NewHistoryShowCommand(h, "bbb").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if run.ID != "bbb-2" || len(run.Entries) != 1 {
		t.Errorf("unexpected run %+v", run)
	}

	_, err = NewHistoryShowCommand(h, "zzz").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	err = NewHistoryShowCommand(h, "").Validate()
	if err == nil || !contains(err.Error(), "run ID is required") {
		t.Errorf("expected run ID error, got %v", err)
	}
}

func TestHistoryDeleteCommand(t *testing.T) {
	h := seededHistory(t)

	run, err := NewHistoryDeleteCommand(h, "bbb").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if run.ID != "bbb-2" {
		t.Errorf("expected bbb-2 to be deleted, got %s", run.ID)
	}
	if _, ok := h.runs["bbb-2"]; ok {
		t.Error("run still present after delete")
	}
	if len(h.runs) != 2 {
		t.Errorf("expected 2 runs left, got %d", len(h.runs))
	}
}

func TestHistoryDeleteCommand_Errors(t *testing.T) {
	h := seededHistory(t)

	_, err := NewHistoryDeleteCommand(h, "").Execute(context.Background())
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError for empty ID, got %v", err)
	}

	_, err = NewHistoryDeleteCommand(h, "zzz").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if len(h.runs) != 3 {
		t.Errorf("nothing should be deleted on error, %d runs left", len(h.runs))
	}
}
