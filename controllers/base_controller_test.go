package controllers

import (
	"encoding/json"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	apimodels "hr-pipeline-backend/models/api"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSendError(t *testing.T) {
	controller := BaseAPIController{}
	app := fiber.New()
	app.Get("/:kind", func(ctx *fiber.Ctx) error {
		switch ctx.Params("kind") {
		case "not_found":
			return controller.SendError(ctx, apperrors.NotFound("отклик не найден"), "ошибка")
		case "transition":
			return controller.SendError(ctx, apperrors.InvalidTransition([]string{"SCREENING"}, "переход недопустим"), "ошибка")
		case "rule":
			return controller.SendError(ctx, apperrors.RuleViolation("средняя оценка ниже 6"), "ошибка")
		case "wrapped":
			return controller.SendError(ctx, errors.Wrap(apperrors.Conflict("дубликат"), "tx"), "ошибка")
		}
		return controller.SendError(ctx, errors.New("pq: connection refused"), "ошибка получения отклика")
	})

	check := func(t *testing.T, path string, status int, message string) {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		require.Equal(t, status, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var payload apimodels.Response
		require.NoError(t, json.Unmarshal(body, &payload))
		require.Equal(t, "fail", payload.Status)
		require.Equal(t, message, payload.Message)
	}

	t.Run(`typed errors keep message`, func(t *testing.T) {
		check(t, "/not_found", fiber.StatusNotFound, "отклик не найден")
		check(t, "/transition", fiber.StatusConflict, "переход недопустим (допустимые переходы: SCREENING)")
		check(t, "/rule", fiber.StatusUnprocessableEntity, "средняя оценка ниже 6")
		check(t, "/wrapped", fiber.StatusConflict, "дубликат")
	})

	t.Run(`internal error hidden`, func(t *testing.T) {
		check(t, "/internal", fiber.StatusInternalServerError, "ошибка получения отклика")
	})

	t.Run(`status mapping`, func(t *testing.T) {
		require.Equal(t, fiber.StatusConflict, StatusByKind(apperrors.KindAlreadyCompleted))
		require.Equal(t, fiber.StatusBadRequest, StatusByKind(apperrors.KindValidation))
		require.Equal(t, fiber.StatusForbidden, StatusByKind(apperrors.KindForbidden))
	})
}
