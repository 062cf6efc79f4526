package donation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/veggierescue/veggierescue/internal/api/models"
	"github.com/veggierescue/veggierescue/internal/donation"
)

func strPtr(s string) *string {
	return &s
}

func validCreateInput() *models.CreateDonationRequest {
	return &models.CreateDonationRequest{
		DonorName:  "Alice Grower",
		DonorEmail: "alice@example.com",
		Items: []models.DonationItem{
			{Name: "Carrots", Quantity: 10, Unit: "lb"},
		},
		PickupAddress: "12 Farm Lane",
		PickupDate:    "2026-09-01T10:00:00Z",
	}
}

func TestService_Create(t *testing.T) {
	repo := donation.NewInMemoryRepository()
	service := donation.NewService(repo)
	ctx := context.Background()

	result, err := service.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("failed to create donation: %v", err)
	}

	if result.ID == "" {
		t.Error("expected donation ID to be set")
	}
	if result.Status != "pending" {
		t.Errorf("expected status pending, got %q", result.Status)
	}
	if !result.CreatedAt.Time().Equal(result.UpdatedAt.Time()) {
		t.Errorf("expected createdAt == updatedAt, got %v and %v",
			result.CreatedAt.Time(), result.UpdatedAt.Time())
	}
	if result.PickupDate != "2026-09-01T10:00:00Z" {
		t.Errorf("expected pickup date to survive verbatim, got %q", result.PickupDate)
	}
}

func TestService_Create_ValidationErrors(t *testing.T) {
	repo := donation.NewInMemoryRepository()
	service := donation.NewService(repo)
	ctx := context.Background()

	tests := []struct {
		name        string
		mutate      func(*models.CreateDonationRequest)
		wantField   string
		wantMessage string
	}{
		{
			name:        "missing donor name",
			mutate:      func(in *models.CreateDonationRequest) { in.DonorName = "" },
			wantField:   "donorName",
			wantMessage: "Donor name is required",
		},
		{
			name:        "invalid email",
			mutate:      func(in *models.CreateDonationRequest) { in.DonorEmail = "not-an-email" },
			wantField:   "donorEmail",
			wantMessage: "Invalid email address",
		},
		{
			name:        "email with spaces",
			mutate:      func(in *models.CreateDonationRequest) { in.DonorEmail = "a b@example.com" },
			wantField:   "donorEmail",
			wantMessage: "Invalid email address",
		},
		{
			name:        "empty items",
			mutate:      func(in *models.CreateDonationRequest) { in.Items = nil },
			wantField:   "items",
			wantMessage: "At least one item is required",
		},
		{
			name: "item missing name",
			mutate: func(in *models.CreateDonationRequest) {
				in.Items = []models.DonationItem{{Name: "", Quantity: 5, Unit: "kg"}}
			},
			wantField:   "items.0.name",
			wantMessage: "Item name is required",
		},
		{
			name: "zero quantity",
			mutate: func(in *models.CreateDonationRequest) {
				in.Items = []models.DonationItem{{Name: "Kale", Quantity: 0, Unit: "kg"}}
			},
			wantField:   "items.0.quantity",
			wantMessage: "Quantity must be positive",
		},
		{
			name: "negative quantity in second item",
			mutate: func(in *models.CreateDonationRequest) {
				in.Items = []models.DonationItem{
					{Name: "Kale", Quantity: 2, Unit: "kg"},
					{Name: "Beets", Quantity: -1, Unit: "lb"},
				}
			},
			wantField:   "items.1.quantity",
			wantMessage: "Quantity must be positive",
		},
		{
			name: "unknown unit",
			mutate: func(in *models.CreateDonationRequest) {
				in.Items = []models.DonationItem{{Name: "Kale", Quantity: 2, Unit: "bushels"}}
			},
			wantField:   "items.0.unit",
			wantMessage: "Invalid unit",
		},
		{
			name:        "missing pickup address",
			mutate:      func(in *models.CreateDonationRequest) { in.PickupAddress = "" },
			wantField:   "pickupAddress",
			wantMessage: "Pickup address is required",
		},
		{
			name:        "bad pickup date",
			mutate:      func(in *models.CreateDonationRequest) { in.PickupDate = "next tuesday" },
			wantField:   "pickupDate",
			wantMessage: "Invalid date format",
		},
		{
			name:        "date without time component",
			mutate:      func(in *models.CreateDonationRequest) { in.PickupDate = "2026-09-01" },
			wantField:   "pickupDate",
			wantMessage: "Invalid date format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(input)

			_, err := service.Create(ctx, input)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			var verr *donation.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}

			found := false
			for _, fe := range verr.Errors {
				if fe.Field == tt.wantField {
					found = true
					if fe.Message != tt.wantMessage {
						t.Errorf("field %q: expected message %q, got %q",
							tt.wantField, tt.wantMessage, fe.Message)
					}
				}
			}
			if !found {
				t.Errorf("expected error on field %q, got %+v", tt.wantField, verr.Errors)
			}
		})
	}
}

func TestService_Create_CollectsAllErrors(t *testing.T) {
	repo := donation.NewInMemoryRepository()
	service := donation.NewService(repo)

	_, err := service.Create(context.Background(), &models.CreateDonationRequest{})

	var verr *donation.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// donorName, donorEmail, items, pickupAddress, pickupDate
	if len(verr.Errors) != 5 {
		t.Errorf("expected 5 field errors, got %d: %+v", len(verr.Errors), verr.Errors)
	}
}

func TestService_List_NewestFirst(t *testing.T) {
	repo := donation.NewInMemoryRepository()
	service := donation.NewService(repo)
	ctx := context.Background()

	first, err := service.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	secondInput := validCreateInput()
	secondInput.DonorName = "Bob Farmer"
	second, err := service.Create(ctx, secondInput)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("expected 2 donations, got %d", len(list))
	}
	if list[0].ID != second.ID {
		t.Errorf("expected newest donation first, got %q", list[0].DonorName)
	}
	if list[1].ID != first.ID {
		t.Errorf("expected oldest donation last, got %q", list[1].DonorName)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	repo := donation.NewInMemoryRepository()
	service := donation.NewService(repo)

	_, err := service.Get(context.Background(), "missing-id")
	if !errors.Is(err, donation.ErrDonationNotFound) {
		t.Errorf("expected ErrDonationNotFound, got %v", err)
	}
}

func TestService_Update(t *testing.T) {
	repo := donation.NewInMemoryRepository()
	service := donation.NewService(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := service.Update(ctx, created.ID, &models.UpdateDonationRequest{
		Status: strPtr("scheduled"),
		Notes:  strPtr("Gate code 4711"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != "scheduled" {
		t.Errorf("expected status scheduled, got %q", updated.Status)
	}
	if updated.Notes == nil || *updated.Notes != "Gate code 4711" {
		t.Errorf("expected notes to be set, got %v", updated.Notes)
	}

	// Untouched fields keep their prior values.
	if updated.DonorName != created.DonorName {
		t.Errorf("expected donor name unchanged, got %q", updated.DonorName)
	}
	if !updated.CreatedAt.Time().Equal(created.CreatedAt.Time()) {
		t.Error("expected createdAt to be preserved")
	}
	if !updated.UpdatedAt.Time().After(created.UpdatedAt.Time()) {
		t.Errorf("expected updatedAt to strictly advance: %v vs %v",
			updated.UpdatedAt.Time(), created.UpdatedAt.Time())
	}
}

func TestService_Update_StrictlyAdvancesTimestamp(t *testing.T) {
	repo := donation.NewInMemoryRepository()
	service := donation.NewService(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Back to back updates must each move updatedAt forward even when the
	// clock resolution cannot tell them apart.
	prev := created.UpdatedAt.Time()
	for i := 0; i < 3; i++ {
		updated, err := service.Update(ctx, created.ID, &models.UpdateDonationRequest{
			Notes: strPtr("pass"),
		})
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		if !updated.UpdatedAt.Time().After(prev) {
			t.Fatalf("update %d: updatedAt did not advance", i)
		}
		prev = updated.UpdatedAt.Time()
	}
}

func TestService_Update_InvalidStatus(t *testing.T) {
	repo := donation.NewInMemoryRepository()
	service := donation.NewService(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = service.Update(ctx, created.ID, &models.UpdateDonationRequest{
		Status: strPtr("delivered"),
	})

	var verr *donation.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Errors) != 1 || verr.Errors[0].Field != "status" || verr.Errors[0].Message != "Invalid status" {
		t.Errorf("unexpected errors: %+v", verr.Errors)
	}

	// The failed update must not have partially applied.
	got, err := service.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != "pending" {
		t.Errorf("expected status untouched, got %q", got.Status)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	repo := donation.NewInMemoryRepository()
	service := donation.NewService(repo)

	_, err := service.Update(context.Background(), "missing-id", &models.UpdateDonationRequest{
		Notes: strPtr("hello"),
	})
	if !errors.Is(err, donation.ErrDonationNotFound) {
		t.Errorf("expected ErrDonationNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := donation.NewInMemoryRepository()
	service := donation.NewService(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Second delete fails the same way as deleting an unknown ID.
	if err := service.Delete(ctx, created.ID); !errors.Is(err, donation.ErrDonationNotFound) {
		t.Errorf("expected ErrDonationNotFound on second delete, got %v", err)
	}

	_, err = service.Get(ctx, created.ID)
	if !errors.Is(err, donation.ErrDonationNotFound) {
		t.Errorf("expected donation to be gone, got %v", err)
	}
}
