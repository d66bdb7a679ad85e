package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/milk9111/maidmodes/nbt"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	state := nbt.New()
	state.SetInt("Mode", 0x21)
	state.SetIntArray("CookTile", []int{3, 64, -2})
	inner := nbt.New()
	inner.SetString("held", "coal")
	state.SetCompound("Script", inner)

	rec := &Record{ID: uuid.New(), Name: "maid", Mode: "Cook", Tick: 40, State: state}
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "maid" || got.Mode != "Cook" || got.Tick != 40 {
		t.Fatalf("unexpected record %+v", got)
	}
	if !got.State.Equal(state) {
		t.Fatalf("state changed across the store: %v", got.State.Keys())
	}
}

func TestGetMissing(t *testing.T) {
	s := openTemp(t)
	if _, err := s.Get(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	a := &Record{ID: uuid.New(), Name: "b", State: nbt.New()}
	b := &Record{ID: uuid.New(), Name: "a", State: nbt.New()}
	for _, r := range []*Record{a, b} {
		if err := s.Put(ctx, r); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "a" {
		t.Fatalf("expected sorted records, got %+v", list)
	}

	if err := s.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted record to be gone, got %v", err)
	}
	if err := s.Put(ctx, &Record{Name: "anon"}); err == nil {
		t.Fatalf("expected error for a record without id")
	}
}
