package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/terraincognita07/dailydiet/internal/models"
	"gorm.io/datatypes"
)

// RecentModificationsLimit caps how many log entries a listing returns.
const RecentModificationsLimit = 100

type MealModificationRepository interface {
	Create(ctx context.Context, entry *models.MealModification) error
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.MealModification, error)
}

type MealSnapshot struct {
	ID          Optional[string]  `json:"id"`
	Name        Optional[string]  `json:"name"`
	Description Optional[string]  `json:"description"`
	Date        Optional[string]  `json:"date"`
	Time        Optional[string]  `json:"time"`
	OnDiet      Optional[bool]    `json:"onDiet"`
	Calories    Optional[float64] `json:"calories"`
}

type ModificationInput struct {
	MealID   string
	Type     string
	MealData *MealSnapshot
}

type MealModificationService struct {
	entries MealModificationRepository
}

func NewMealModificationService(entries MealModificationRepository) *MealModificationService {
	return &MealModificationService{entries: entries}
}

func (service *MealModificationService) Record(ctx context.Context, userID string, input ModificationInput) (models.MealModification, error) {
	snapshot, err := input.snapshot()
	if err != nil {
		return models.MealModification{}, err
	}

	entry := models.MealModification{
		ID:       uuid.NewString(),
		UserID:   userID,
		MealID:   strings.TrimSpace(input.MealID),
		Type:     input.Type,
		MealData: snapshot,
	}
	if err := service.entries.Create(ctx, &entry); err != nil {
		return models.MealModification{}, fmt.Errorf("record meal modification: %w", err)
	}
	return entry, nil
}

func (service *MealModificationService) ListRecent(ctx context.Context, userID string) ([]models.MealModification, error) {
	entries, err := service.entries.ListRecentByUser(ctx, userID, RecentModificationsLimit)
	if err != nil {
		return nil, fmt.Errorf("list meal modifications: %w", err)
	}
	return entries, nil
}

type mealSnapshotPayload struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	OnDiet      bool     `json:"onDiet"`
	Calories    *float64 `json:"calories,omitempty"`
}

func (input ModificationInput) snapshot() (datatypes.JSON, error) {
	validation := &ValidationError{}

	if _, err := uuid.Parse(strings.TrimSpace(input.MealID)); err != nil {
		validation.add("mealId", "mealId must be a uuid")
	}
	if !models.IsValidModificationType(input.Type) {
		validation.add("type", "type must be one of: create, update, delete")
	}
	if input.MealData == nil {
		validation.add("mealData", "mealData is required")
		return nil, validation
	}

	data := input.MealData
	payload := mealSnapshotPayload{
		ID:          data.ID.Value,
		Name:        data.Name.Value,
		Description: data.Description.Value,
		Date:        data.Date.Value,
		Time:        data.Time.Value,
		OnDiet:      data.OnDiet.Value,
	}
	if _, err := uuid.Parse(data.ID.Value); !data.ID.present() || err != nil {
		validation.add("mealData.id", "id must be a uuid")
	}
	requiredFields := []struct {
		name  string
		value Optional[string]
	}{
		{name: "mealData.name", value: data.Name},
		{name: "mealData.description", value: data.Description},
		{name: "mealData.date", value: data.Date},
		{name: "mealData.time", value: data.Time},
	}
	for _, field := range requiredFields {
		if !field.value.present() {
			validation.add(field.name, "required")
		}
	}
	if !data.OnDiet.present() {
		validation.add("mealData.onDiet", "onDiet must be a boolean")
	}
	if data.Calories.present() {
		calories := data.Calories.Value
		payload.Calories = &calories
	}

	if err := validation.errOrNil(); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode meal snapshot: %w", err)
	}
	return datatypes.JSON(encoded), nil
}
