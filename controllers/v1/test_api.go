package apiv1

import (
	"hr-pipeline-backend/controllers"
	testhandler "hr-pipeline-backend/lib/test"
	"hr-pipeline-backend/middleware"
	apimodels "hr-pipeline-backend/models/api"
	testapimodels "hr-pipeline-backend/models/api/test"

	"github.com/gofiber/fiber/v2"
)

type testApiController struct {
	controllers.BaseAPIController
}

func InitTestApiRouters(app *fiber.App) {
	controller := testApiController{}
	app.Route("test", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("deactivate", controller.deactivate)
			idRoute.Post("invite", controller.invite)
		})
	})
}

// @Summary Создание
// @Tags Тестирование
// @Description Создание теста: внешняя ссылка или внутренний тест с вопросами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 testapimodels.TestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=testapimodels.TestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/test [post]
func (c *testApiController) create(ctx *fiber.Ctx) error {
	var payload testapimodels.TestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := testhandler.Instance.Create(ctx.UserContext(), middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка создания теста")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение по ИД
// @Tags Тестирование
// @Description Тест. Кандидату - без правильных ответов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=testapimodels.TestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/test/{id} [get]
func (c *testApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := testhandler.Instance.GetByID(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения теста")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Деактивация
// @Tags Тестирование
// @Description Деактивация теста, новые приглашения на него невозможны
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=testapimodels.TestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/test/{id}/deactivate [put]
func (c *testApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := testhandler.Instance.Deactivate(ctx.UserContext(), middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка деактивации теста")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Приглашение на тест
// @Tags Тестирование
// @Description Приглашение кандидата на тест, отклик переводится в TEST_INVITED
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "test ID"
// @Param	body body	 testapimodels.InviteRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=testapimodels.AttemptView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/test/{id}/invite [post]
func (c *testApiController) invite(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload testapimodels.InviteRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if payload.ApplicationID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан отклик"))
	}
	resp, err := testhandler.Instance.InviteToTest(ctx.UserContext(), middleware.GetActor(ctx), payload.ApplicationID, id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка приглашения на тест")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
