package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errMissingSessionCookie = errors.New("missing session cookie")
	errInvalidSessionCookie = errors.New("invalid session cookie")
)

func (handler *Handler) sessionTokenFromCookie(c *fiber.Ctx) (string, error) {
	rawCookie := strings.TrimSpace(c.Cookies(sessionCookieName))
	if rawCookie == "" {
		return "", errMissingSessionCookie
	}
	return handler.decodeSessionCookie(rawCookie)
}

func (handler *Handler) decodeSessionCookie(rawCookie string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(rawCookie, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", errInvalidSessionCookie
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return "", errInvalidSessionCookie
	}
	if strings.TrimSpace(claims.Token) == "" {
		return "", errInvalidSessionCookie
	}
	return claims.Token, nil
}

// presentedSessionToken is the token a caller already holds, or "" when the
// cookie is missing or cannot be trusted.
func (handler *Handler) presentedSessionToken(c *fiber.Ctx) string {
	token, err := handler.sessionTokenFromCookie(c)
	if err != nil {
		return ""
	}
	return token
}
