package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"impar-backend/config"
)

// AuthorizationOptional разбирает Bearer токен, если он передан,
// но пропускает запрос дальше и без него (анонимные респонденты).
func AuthorizationOptional() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return ctx.Next()
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.Conf.Auth.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			// невалидный токен считаем анонимным запросом
			return ctx.Next()
		}
		ctx.Locals("user", token)
		return ctx.Next()
	}
}
