package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/cognicore/parley/pkg/parley/internalerr"
	"github.com/cognicore/parley/pkg/parley/store"
)

func TestSaveAndGetRun(t *testing.T) {
	ctx := context.Background()
	s := New()

	run := store.Run{ID: store.NewID(), Source: "chat.txt", TopK: 5, Summary: []byte(`{"word_freq":{}}`)}
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	run.Summary[0] = 'X'

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Source != "chat.txt" || got.TopK != 5 {
		t.Errorf("unexpected run %+v", got)
	}
	if string(got.Summary) != `{"word_freq":{}}` {
		t.Errorf("stored summary aliased caller slice: %s", got.Summary)
	}
}

func TestGetRunNotFound(t *testing.T) {
	_, err := New().GetRun(context.Background(), "missing")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveRunRequiresID(t *testing.T) {
	err := New().SaveRun(context.Background(), store.Run{})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	var ids []string
	for i := 0; i < 3; i++ {
		id := store.NewID()
		ids = append(ids, id)
		if err := s.SaveRun(ctx, store.Run{ID: id}); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 || runs[0].ID != ids[2] || runs[1].ID != ids[1] {
		t.Errorf("unexpected order %+v", runs)
	}
}
