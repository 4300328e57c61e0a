package middleware

import (
	"hr-pipeline-backend/config"
	"hr-pipeline-backend/fiberlog"
	authutils "hr-pipeline-backend/lib/utils/auth-utils"
	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		SuccessHandler: func(ctx *fiber.Ctx) error {
			userID := GetUserID(ctx)
			if userID == "" {
				return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("в токене не указан пользователь"))
			}
			ctx.Locals(fiberlog.TagActor, userID)
			return ctx.Next()
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
		},
	})
}

func GetUserID(ctx *fiber.Ctx) string {
	return GetActor(ctx).ID
}

// GetActor инициатор запроса из токена, Origin - адрес клиента
func GetActor(ctx *fiber.Ctx) models.Actor {
	actor := authutils.ActorFromClaims(authutils.GetClaims(ctx))
	actor.Origin = ctx.IP()
	return actor
}
