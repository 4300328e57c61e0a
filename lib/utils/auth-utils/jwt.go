package authutils

import (
	"hr-pipeline-backend/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimSubject      = "sub"
	ClaimCapabilities = "caps"
)

// GetToken токен доступа, выдается внешним сервисом авторизации. Используется в тестах и утилитах
func GetToken(secret, userID string, capabilities models.Capabilities, ttl time.Duration) (tokenString string, err error) {
	caps := make([]string, 0, len(capabilities))
	for _, capability := range capabilities {
		caps = append(caps, string(capability))
	}
	claims := jwt.MapClaims{
		ClaimSubject:      userID,
		ClaimCapabilities: caps,
		"exp":             time.Now().Add(ttl).Unix(),
		"iat":             time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

// ActorFromClaims caps может прийти как массив строк или строка через запятую
func ActorFromClaims(claims jwt.MapClaims) models.Actor {
	actor := models.Actor{}
	if sub, ok := claims[ClaimSubject].(string); ok {
		actor.ID = sub
	}
	var caps []string
	switch value := claims[ClaimCapabilities].(type) {
	case []interface{}:
		for _, item := range value {
			if capability, ok := item.(string); ok {
				caps = append(caps, capability)
			}
		}
	case []string:
		caps = value
	case string:
		caps = splitCaps(value)
	}
	actor.Capabilities = models.ParseCapabilities(caps)
	return actor
}

func splitCaps(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
