package services

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/dailydiet/internal/models"
)

const MinPasswordLength = 6

// Weight and height are stored as NUMERIC(5,2).
const maxBodyMeasurement = 1000

const bodyMeasurementMessage = "must be greater than 0 and less than 1000"

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

type RegistrationInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	PhotoURL  *string
	Weight    *float64
	Height    *float64
	Goal      *string
}

type LoginInput struct {
	Email    string
	Password string
}

// Normalize trims the input in place and reports every invalid field.
func (input *RegistrationInput) Normalize() error {
	validation := &ValidationError{}

	input.Email = NormalizeAuthEmail(input.Email)
	if input.Email == "" {
		validation.add("email", "invalid email")
	}
	if utf8.RuneCountInString(input.Password) < MinPasswordLength {
		validation.add("password", "password must be at least 6 characters")
	}
	input.FirstName = strings.TrimSpace(input.FirstName)
	if input.FirstName == "" {
		validation.add("firstName", "first name must not be empty")
	}
	input.LastName = strings.TrimSpace(input.LastName)
	if input.LastName == "" {
		validation.add("lastName", "last name must not be empty")
	}
	if input.PhotoURL != nil && !IsValidPhotoURL(*input.PhotoURL) {
		validation.add("photoUrl", "invalid url")
	}
	if input.Weight != nil && !IsValidBodyMeasurement(*input.Weight) {
		validation.add("weight", "weight "+bodyMeasurementMessage)
	}
	if input.Height != nil && !IsValidBodyMeasurement(*input.Height) {
		validation.add("height", "height "+bodyMeasurementMessage)
	}
	if input.Goal != nil && !models.IsValidGoal(*input.Goal) {
		validation.add("goal", "goal must be one of: "+strings.Join(models.Goals(), ", "))
	}

	return validation.errOrNil()
}

func (input *LoginInput) Normalize() error {
	validation := &ValidationError{}

	input.Email = NormalizeAuthEmail(input.Email)
	if input.Email == "" {
		validation.add("email", "invalid email")
	}
	if utf8.RuneCountInString(input.Password) < MinPasswordLength {
		validation.add("password", "invalid password")
	}

	return validation.errOrNil()
}

func IsValidPhotoURL(raw string) bool {
	parsed, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

func IsValidBodyMeasurement(value float64) bool {
	return value > 0 && value < maxBodyMeasurement
}
