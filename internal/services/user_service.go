package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/dailydiet/internal/models"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type ProfileUserRepository interface {
	FindByID(ctx context.Context, userID string) (models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	UpdateByID(ctx context.Context, userID string, updates map[string]any) error
	DeleteAccountAndRelatedData(ctx context.Context, userID string) error
}

// ProfileUpdateInput holds a partial profile change; unset fields stay untouched
// and null clears the optional ones.
type ProfileUpdateInput struct {
	FirstName Optional[string]
	LastName  Optional[string]
	PhotoURL  Optional[string]
	Weight    Optional[float64]
	Height    Optional[float64]
	Goal      Optional[string]
}

type UserService struct {
	users ProfileUserRepository
	now   func() time.Time
}

func NewUserService(users ProfileUserRepository) *UserService {
	return &UserService{users: users, now: time.Now}
}

func (service *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	users, err := service.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (service *UserService) UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (models.User, error) {
	updates, err := input.updates()
	if err != nil {
		return models.User{}, err
	}
	updates["updated_at"] = service.now()

	if err := service.users.UpdateByID(ctx, userID, updates); err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	user, err := service.users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("reload profile: %w", err)
	}
	return user, nil
}

func (service *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if err := service.users.DeleteAccountAndRelatedData(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func (input ProfileUpdateInput) updates() (map[string]any, error) {
	validation := &ValidationError{}
	updates := make(map[string]any)

	if input.FirstName.Set {
		firstName := strings.TrimSpace(input.FirstName.Value)
		if input.FirstName.Null || firstName == "" {
			validation.add("firstName", "first name must not be empty")
		} else {
			updates["first_name"] = firstName
		}
	}
	if input.LastName.Set {
		lastName := strings.TrimSpace(input.LastName.Value)
		if input.LastName.Null || lastName == "" {
			validation.add("lastName", "last name must not be empty")
		} else {
			updates["last_name"] = lastName
		}
	}
	if input.PhotoURL.Set {
		switch {
		case input.PhotoURL.Null:
			updates["photo_url"] = nil
		case IsValidPhotoURL(input.PhotoURL.Value):
			updates["photo_url"] = strings.TrimSpace(input.PhotoURL.Value)
		default:
			validation.add("photoUrl", "invalid url")
		}
	}
	if input.Weight.Set {
		if input.Weight.present() && !IsValidBodyMeasurement(input.Weight.Value) {
			validation.add("weight", "weight "+bodyMeasurementMessage)
		} else {
			updates["weight"] = nullableValue(input.Weight)
		}
	}
	if input.Height.Set {
		if input.Height.present() && !IsValidBodyMeasurement(input.Height.Value) {
			validation.add("height", "height "+bodyMeasurementMessage)
		} else {
			updates["height"] = nullableValue(input.Height)
		}
	}
	if input.Goal.Set {
		switch {
		case input.Goal.Null:
			updates["goal"] = nil
		case models.IsValidGoal(input.Goal.Value):
			updates["goal"] = input.Goal.Value
		default:
			validation.add("goal", "goal must be one of: "+strings.Join(models.Goals(), ", "))
		}
	}

	if err := validation.errOrNil(); err != nil {
		return nil, err
	}
	return updates, nil
}

func nullableValue[T any](field Optional[T]) any {
	if field.Null {
		return nil
	}
	return field.Value
}
