package donation

import (
	"context"
	"testing"
	"time"
)

func TestInMemoryRepository_ListBreaksTiesByInsertionOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	// Same creation instant for all three.
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c"} {
		err := repo.Create(ctx, &Donation{ID: id, CreatedAt: now, UpdatedAt: now})
		if err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	got := make([]string, 0, len(list))
	for _, d := range list {
		got = append(got, d.ID)
	}

	want := []string{"c", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestInMemoryRepository_GetReturnsCopy(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	now := time.Now()
	if err := repo.Create(ctx, &Donation{ID: "x", DonorName: "Alice", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := repo.Get(ctx, "x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	first.DonorName = "Mallory"

	second, err := repo.Get(ctx, "x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if second.DonorName != "Alice" {
		t.Errorf("mutating a returned donation leaked into the store: %q", second.DonorName)
	}
}

func TestInMemoryRepository_UpdateKeepsInsertionOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b"} {
		if err := repo.Create(ctx, &Donation{ID: id, CreatedAt: now, UpdatedAt: now}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	// Updating the older donation must not move it ahead of the newer one.
	if err := repo.Update(ctx, &Donation{ID: "a", DonorName: "Updated", CreatedAt: now, UpdatedAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].ID != "b" || list[1].ID != "a" {
		t.Errorf("expected order [b a], got [%s %s]", list[0].ID, list[1].ID)
	}
}
