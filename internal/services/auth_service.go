package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/terraincognita07/dailydiet/internal/models"
	"github.com/terraincognita07/dailydiet/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PasswordHashCost is the bcrypt cost used for every stored password.
const PasswordHashCost = 10

var (
	ErrEmailAlreadyUsed   = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(ctx context.Context, email string) (bool, error)
	FindByNormalizedEmail(ctx context.Context, email string) (models.User, error)
	FindBySessionToken(ctx context.Context, token string) (models.User, bool, error)
	Create(ctx context.Context, user *models.User) error
	SetSessionToken(ctx context.Context, userID string, token string) error
	ClearSessionToken(ctx context.Context, token string) error
}

type AuthService struct {
	users    AuthUserRepository
	newToken func() (string, error)
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{
		users:    users,
		newToken: security.NewSessionToken,
	}
}

// Register creates the account and returns it with the session token it now holds.
// presentedToken is the token the caller already carries, if any.
func (service *AuthService) Register(ctx context.Context, input RegistrationInput, presentedToken string) (models.User, string, error) {
	if err := input.Normalize(); err != nil {
		return models.User{}, "", err
	}

	exists, err := service.users.ExistsByNormalizedEmail(ctx, input.Email)
	if err != nil {
		return models.User{}, "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return models.User{}, "", ErrEmailAlreadyUsed
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), PasswordHashCost)
	if err != nil {
		return models.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	userID := uuid.NewString()
	token, err := service.sessionTokenFor(ctx, userID, presentedToken)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		ID:           userID,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhotoURL:     trimmedOrNil(input.PhotoURL),
		Weight:       input.Weight,
		Height:       input.Height,
		Goal:         input.Goal,
		SessionToken: &token,
	}
	if err := service.users.Create(ctx, &user); err != nil {
		// The unique index settles races between concurrent registrations.
		if exists, checkErr := service.users.ExistsByNormalizedEmail(ctx, input.Email); checkErr == nil && exists {
			return models.User{}, "", ErrEmailAlreadyUsed
		}
		return models.User{}, "", fmt.Errorf("create user: %w", err)
	}
	return user, token, nil
}

// Login verifies the credentials and makes the returned token the user's
// only active session.
func (service *AuthService) Login(ctx context.Context, input LoginInput, presentedToken string) (models.User, string, error) {
	if err := input.Normalize(); err != nil {
		return models.User{}, "", err
	}

	user, err := service.users.FindByNormalizedEmail(ctx, input.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, "", fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := service.sessionTokenFor(ctx, user.ID, presentedToken)
	if err != nil {
		return models.User{}, "", err
	}
	if err := service.users.SetSessionToken(ctx, user.ID, token); err != nil {
		return models.User{}, "", fmt.Errorf("store session token: %w", err)
	}
	user.SessionToken = &token
	return user, token, nil
}

func (service *AuthService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	if err := service.users.ClearSessionToken(ctx, token); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

func (service *AuthService) ResolveSession(ctx context.Context, token string) (models.User, error) {
	if strings.TrimSpace(token) == "" {
		return models.User{}, ErrSessionNotFound
	}
	user, found, err := service.users.FindBySessionToken(ctx, token)
	if err != nil {
		return models.User{}, fmt.Errorf("resolve session: %w", err)
	}
	if !found {
		return models.User{}, ErrSessionNotFound
	}
	return user, nil
}

// sessionTokenFor reuses the presented token unless another user holds it.
func (service *AuthService) sessionTokenFor(ctx context.Context, userID string, presentedToken string) (string, error) {
	presentedToken = strings.TrimSpace(presentedToken)
	if presentedToken != "" {
		owner, found, err := service.users.FindBySessionToken(ctx, presentedToken)
		if err != nil {
			return "", fmt.Errorf("check session token: %w", err)
		}
		if !found || owner.ID == userID {
			return presentedToken, nil
		}
	}

	token, err := service.newToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return token, nil
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
