package controllers

import (
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/middleware"
	apimodels "hr-pipeline-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) QueryParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка распознавания параметров запроса")
		return errors.New("не удалось получить параметры запроса")
	}
	return nil
}

// GetID идентификатор из пути, должен быть uuid
func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := ctx.Params(name)
	if value == "" {
		return "", errors.Errorf("не указан параметр %v", name)
	}
	if _, err := uuid.Parse(value); err != nil {
		return "", errors.Errorf("некорректный параметр %v", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path()).
		WithField("actor_id", middleware.GetUserID(ctx))
}

func (c *BaseAPIController) SendBadRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
}

// SendError ответ по типу ошибки, текст необработанных ошибок заменяется на message
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error, message string) error {
	kind := apperrors.KindOf(err)
	status := StatusByKind(kind)
	if kind == apperrors.KindInternal {
		c.GetLogger(ctx).WithError(err).Error(message)
		return ctx.Status(status).JSON(apimodels.NewError(message))
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return ctx.Status(status).JSON(apimodels.NewError(appErr.Error()))
	}
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}

func StatusByKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindForbidden:
		return fiber.StatusForbidden
	case apperrors.KindInvalidTransition:
		return fiber.StatusConflict
	case apperrors.KindRuleViolation:
		return fiber.StatusUnprocessableEntity
	case apperrors.KindAlreadyInTerminalState, apperrors.KindAlreadyCompleted, apperrors.KindConflict:
		return fiber.StatusConflict
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
