package api

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/dailydiet/internal/services"
)

type Handler struct {
	authService         *services.AuthService
	userService         *services.UserService
	mealService         *services.MealService
	modificationService *services.MealModificationService

	secretKey           []byte
	cookieSecure        bool
	exposeUserDirectory bool
	logger              *slog.Logger
}

// Options carries the runtime settings NewHandler needs besides the database.
type Options struct {
	SecretKey           string
	CookieSecure        bool
	ExposeUserDirectory bool
	Location            *time.Location
	Logger              *slog.Logger
}

const sessionCookieTTL = 7 * 24 * time.Hour

type sessionClaims struct {
	Token string `json:"sid"`
	jwt.RegisteredClaims
}

type registerPayload struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	PhotoURL  *string  `json:"photoUrl"`
	Weight    *float64 `json:"weight"`
	Height    *float64 `json:"height"`
	Goal      *string  `json:"goal"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profilePayload struct {
	FirstName services.Optional[string]  `json:"firstName"`
	LastName  services.Optional[string]  `json:"lastName"`
	PhotoURL  services.Optional[string]  `json:"photoUrl"`
	Weight    services.Optional[float64] `json:"weight"`
	Height    services.Optional[float64] `json:"height"`
	Goal      services.Optional[string]  `json:"goal"`
}

type mealPayload struct {
	Name        services.Optional[string]  `json:"name"`
	Description services.Optional[string]  `json:"description"`
	Date        services.Optional[string]  `json:"date"`
	Time        services.Optional[string]  `json:"time"`
	OnDiet      services.Optional[bool]    `json:"onDiet"`
	Calories    services.Optional[float64] `json:"calories"`
}

type mealModificationPayload struct {
	MealID   string                 `json:"mealId"`
	Type     string                 `json:"type"`
	MealData *services.MealSnapshot `json:"mealData"`
}
