package assignment

import (
	"context"
	"testing"

	domain "mandir/internal/domain/assignment"
)

func TestMemoryStore_InsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	a := domain.Assignment{VolunteerID: "v1", EventID: "1", Date: "2025-11-02"}

	if err := store.Insert(ctx, a); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := store.Insert(ctx, a); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	all, _ := store.List(ctx)
	if len(all) != 1 {
		t.Errorf("got %d assignments, want 1", len(all))
	}
}

func TestMemoryStore_RemoveByVolunteerAndDate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Insert(ctx, domain.Assignment{VolunteerID: "v1", EventID: "1", Date: "2025-11-02"})
	store.Insert(ctx, domain.Assignment{VolunteerID: "v1", EventID: "2", Date: "2025-11-03"})
	store.Insert(ctx, domain.Assignment{VolunteerID: "v2", EventID: "1", Date: "2025-11-02"})

	if err := store.RemoveByVolunteerAndDate(ctx, "v1", "2025-11-02"); err != nil {
		t.Fatalf("RemoveByVolunteerAndDate: %v", err)
	}

	all, _ := store.List(ctx)
	if len(all) != 2 {
		t.Fatalf("got %d assignments, want 2", len(all))
	}
	for _, a := range all {
		if a.VolunteerID == "v1" && a.Date == "2025-11-02" {
			t.Errorf("assignment %+v should have been removed", a)
		}
	}

	// Other date untouched.
	onOther, _ := store.ListByVolunteerAndDate(ctx, "v1", "2025-11-03")
	if len(onOther) != 1 {
		t.Errorf("got %d assignments on 2025-11-03, want 1", len(onOther))
	}
}

func TestMemoryStore_RemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Insert(ctx, domain.Assignment{VolunteerID: "v1", EventID: "1", Date: "2025-11-02"})

	if err := store.Remove(ctx, domain.Assignment{VolunteerID: "v9", EventID: "1", Date: "2025-11-02"}); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	all, _ := store.List(ctx)
	if len(all) != 1 {
		t.Errorf("got %d assignments, want 1", len(all))
	}
}
