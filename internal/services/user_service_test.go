package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/dailydiet/internal/models"
	"gorm.io/gorm"
)

type stubProfileUserRepo struct {
	user          models.User
	updates       map[string]any
	updateCalls   int
	deletedUserID string
}

func (repo *stubProfileUserRepo) FindByID(_ context.Context, userID string) (models.User, error) {
	if userID != repo.user.ID {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return repo.user, nil
}

func (repo *stubProfileUserRepo) ListAll(context.Context) ([]models.User, error) {
	return []models.User{repo.user}, nil
}

func (repo *stubProfileUserRepo) UpdateByID(_ context.Context, _ string, updates map[string]any) error {
	repo.updateCalls++
	repo.updates = updates
	if value, ok := updates["first_name"]; ok {
		repo.user.FirstName = value.(string)
	}
	return nil
}

func (repo *stubProfileUserRepo) DeleteAccountAndRelatedData(_ context.Context, userID string) error {
	repo.deletedUserID = userID
	return nil
}

func TestUpdateProfileWritesOnlySuppliedFields(t *testing.T) {
	repo := &stubProfileUserRepo{user: models.User{ID: "user-1", FirstName: "Ana"}}
	service := NewUserService(repo)
	now := time.Date(2026, time.February, 21, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	user, err := service.UpdateProfile(context.Background(), "user-1", ProfileUpdateInput{
		FirstName: Some("  Maria "),
		Weight:    Some(72.5),
		PhotoURL:  Null[string](),
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if user.FirstName != "Maria" {
		t.Fatalf("expected reloaded first name Maria, got %q", user.FirstName)
	}

	expected := map[string]any{
		"first_name": "Maria",
		"weight":     72.5,
		"photo_url":  nil,
		"updated_at": now,
	}
	if len(repo.updates) != len(expected) {
		t.Fatalf("expected updates %#v, got %#v", expected, repo.updates)
	}
	for key, value := range expected {
		got, ok := repo.updates[key]
		if !ok || got != value {
			t.Fatalf("expected %s=%#v, got %#v", key, value, got)
		}
	}
}

func TestUpdateProfileRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name  string
		input ProfileUpdateInput
		field string
	}{
		{name: "blank first name", input: ProfileUpdateInput{FirstName: Some(" ")}, field: "firstName"},
		{name: "null last name", input: ProfileUpdateInput{LastName: Null[string]()}, field: "lastName"},
		{name: "invalid photo", input: ProfileUpdateInput{PhotoURL: Some("nope")}, field: "photoUrl"},
		{name: "unknown goal", input: ProfileUpdateInput{Goal: Some("bulk forever")}, field: "goal"},
		{name: "oversized weight", input: ProfileUpdateInput{Weight: Some(1000.0)}, field: "weight"},
		{name: "negative height", input: ProfileUpdateInput{Height: Some(-1.7)}, field: "height"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := &stubProfileUserRepo{user: models.User{ID: "user-1"}}
			_, err := NewUserService(repo).UpdateProfile(context.Background(), "user-1", testCase.input)
			assertValidationField(t, err, testCase.field)
			if repo.updateCalls != 0 {
				t.Fatalf("expected no update call, got %d", repo.updateCalls)
			}
		})
	}
}

func TestUpdateProfileReportsMissingUser(t *testing.T) {
	repo := &stubProfileUserRepo{user: models.User{ID: "someone-else"}}
	_, err := NewUserService(repo).UpdateProfile(context.Background(), "user-1", ProfileUpdateInput{Goal: Some(models.GoalMaintainWeight)})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteAccountDelegatesToRepository(t *testing.T) {
	repo := &stubProfileUserRepo{user: models.User{ID: "user-1"}}
	if err := NewUserService(repo).DeleteAccount(context.Background(), "user-1"); err != nil {
		t.Fatalf("delete account: %v", err)
	}
	if repo.deletedUserID != "user-1" {
		t.Fatalf("expected user-1 to be deleted, got %q", repo.deletedUserID)
	}
}
