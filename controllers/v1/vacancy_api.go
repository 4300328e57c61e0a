package apiv1

import (
	"hr-pipeline-backend/controllers"
	applicationhandler "hr-pipeline-backend/lib/application"
	testhandler "hr-pipeline-backend/lib/test"
	vacancyhandler "hr-pipeline-backend/lib/vacancy"
	"hr-pipeline-backend/middleware"
	apimodels "hr-pipeline-backend/models/api"
	applicationapimodels "hr-pipeline-backend/models/api/application"
	vacancyapimodels "hr-pipeline-backend/models/api/vacancy"

	"github.com/gofiber/fiber/v2"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app *fiber.App) {
	controller := vacancyApiController{}
	app.Route("vacancy", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("status", controller.changeStatus)
			idRoute.Put("publish", controller.publish)
			idRoute.Post("apply", controller.apply)
			idRoute.Get("applications", controller.applications)
			idRoute.Get("tests", controller.tests)
		})
	})
}

// @Summary Создание
// @Tags Вакансия
// @Description Создание вакансии в статусе OPEN, без публикации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy [post]
func (c *vacancyApiController) create(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	id, err := vacancyhandler.Instance.Create(ctx.UserContext(), middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список
// @Tags Вакансия
// @Description Список вакансий. Кандидату доступны только опубликованные
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/list [post]
func (c *vacancyApiController) list(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	list, rowCount, err := vacancyhandler.Instance.List(middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получение по ИД
// @Tags Вакансия
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [get]
func (c *vacancyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := vacancyhandler.Instance.GetByID(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Смена статуса
// @Tags Вакансия
// @Description Смена статуса вакансии (OPEN/PAUSED/CLOSED)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 vacancyapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/status [put]
func (c *vacancyApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload vacancyapimodels.StatusChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	err = vacancyhandler.Instance.ChangeStatus(ctx.UserContext(), middleware.GetActor(ctx), id, payload.Status)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка смены статуса вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Публикация
// @Tags Вакансия
// @Description Публикация/снятие с публикации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 vacancyapimodels.PublishRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/publish [put]
func (c *vacancyApiController) publish(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload vacancyapimodels.PublishRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	err = vacancyhandler.Instance.Publish(ctx.UserContext(), middleware.GetActor(ctx), id, payload.IsPublished)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка публикации вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклик на вакансию
// @Tags Отклик
// @Description Отклик кандидата, требуется сопроводительное письмо, резюме или структурированное CV
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "vacancy ID"
// @Param	body body	 applicationapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/apply [post]
func (c *vacancyApiController) apply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload applicationapimodels.ApplyRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := applicationhandler.Instance.Apply(ctx.UserContext(), middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка создания отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклики по вакансии
// @Tags Отклик
// @Description Отклики по вакансии, для сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "vacancy ID"
// @Param   status          	query   string  				    	false        "статус"
// @Param   page          		query   int  				    	false        "страница"
// @Param   limit          		query   int  				    	false        "записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/applications [get]
func (c *vacancyApiController) applications(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload applicationapimodels.ApplicationFilter
	if err = c.QueryParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	list, rowCount, err := applicationhandler.Instance.ListByVacancy(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения откликов по вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Тесты вакансии
// @Tags Тестирование
// @Description Тесты вакансии. Кандидату - только активные и без правильных ответов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "vacancy ID"
// @Success 200 {object} apimodels.Response{data=[]testapimodels.TestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/tests [get]
func (c *vacancyApiController) tests(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	list, err := testhandler.Instance.ListByVacancy(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения тестов вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
