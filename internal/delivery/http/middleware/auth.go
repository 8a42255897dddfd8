package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spotshot-api/internal/pkg/errors"
	"github.com/spotshot-api/internal/pkg/utils"
)

// UserIDKey - ключ Locals с идентификатором пользователя
const UserIDKey = "userID"

// Auth проверяет access-токен Supabase (HS256) и кладёт subject
// в Locals. Без валидного токена запрос отклоняется.
func Auth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := subjectFromHeader(c, jwtSecret)
		if userID == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// OptionalAuth кладёт subject в Locals, если токен есть и валиден.
// Запросы без токена проходят дальше анонимно - читающие ручки
// используют userID только для расчёта видимости.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID := subjectFromHeader(c, jwtSecret); userID != "" {
			c.Locals(UserIDKey, userID)
		}
		return c.Next()
	}
}

// UserID возвращает идентификатор пользователя из Locals ("" для анонима)
func UserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(UserIDKey).(string); ok {
		return v
	}
	return ""
}

func subjectFromHeader(c *fiber.Ctx, jwtSecret string) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}

	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return ""
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}

	return subject
}
