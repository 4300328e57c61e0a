package apiv1

import (
	"hr-pipeline-backend/controllers"
	applicationhandler "hr-pipeline-backend/lib/application"
	evaluationhandler "hr-pipeline-backend/lib/evaluation"
	interviewhandler "hr-pipeline-backend/lib/interview"
	managerrecommendationhandler "hr-pipeline-backend/lib/manager-recommendation"
	testhandler "hr-pipeline-backend/lib/test"
	"hr-pipeline-backend/middleware"
	apimodels "hr-pipeline-backend/models/api"
	applicationapimodels "hr-pipeline-backend/models/api/application"
	evaluationapimodels "hr-pipeline-backend/models/api/evaluation"
	testapimodels "hr-pipeline-backend/models/api/test"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Post("cv", controller.uploadCV)
		router.Get("my", controller.my)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("status", controller.changeStatus)
			idRoute.Put("withdraw", controller.withdraw)
			idRoute.Get("interviews", controller.interviews)
			idRoute.Route("evaluation", func(evaluationRoute fiber.Router) {
				evaluationRoute.Post("", controller.evaluate)
				evaluationRoute.Get("list", controller.evaluationList)
				evaluationRoute.Get("stats", controller.evaluationStats)
			})
			idRoute.Route("manager_recommendation", func(recommendationRoute fiber.Router) {
				recommendationRoute.Post("", controller.recommend)
				recommendationRoute.Get("list", controller.recommendationList)
			})
			idRoute.Route("test", func(testRoute fiber.Router) {
				testRoute.Post("submit", controller.submitQuiz)
				testRoute.Put("external_complete", controller.externalComplete)
				testRoute.Get("attempt", controller.attempt)
			})
		})
	})
}

// @Summary Загрузка резюме
// @Tags Отклик
// @Description Загрузка файла резюме, возвращает ссылку для отклика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file formData file true "файл резюме"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.CVUploadView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/cv [post]
func (c *applicationApiController) uploadCV(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	buffer, err := file.Open()
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("Ошибка при получении файла резюме")
		return c.SendBadRequest(ctx, err)
	}
	defer buffer.Close()
	contentType := file.Header.Get(fiber.HeaderContentType)
	ref, err := applicationhandler.Instance.UploadCV(ctx.UserContext(), middleware.GetActor(ctx), file.Filename, buffer, file.Size, contentType)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка загрузки резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationapimodels.CVUploadView{CVFileRef: ref}))
}

// @Summary Мои отклики
// @Tags Отклик
// @Description Отклики текущего кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status          	query   string  				    	false        "статус"
// @Param   page          		query   int  				    	false        "страница"
// @Param   limit          		query   int  				    	false        "записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/my [get]
func (c *applicationApiController) my(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationFilter
	if err := c.QueryParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	list, rowCount, err := applicationhandler.Instance.ListMine(middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получение по ИД
// @Tags Отклик
// @Description Отклик с текущим этапом и допустимыми переходами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := applicationhandler.Instance.GetByID(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Смена статуса
// @Tags Отклик
// @Description Перевод отклика по воронке. Для OFFERED/ACCEPTED требуется средняя оценка не ниже 6
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicationapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/status [put]
func (c *applicationApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload applicationapimodels.StatusChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := applicationhandler.Instance.UpdateStatus(ctx.UserContext(), middleware.GetActor(ctx), id, payload.Status, payload.Notes)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка смены статуса отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отзыв отклика
// @Tags Отклик
// @Description Отзыв отклика кандидатом из любого нефинального статуса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicationapimodels.WithdrawRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/withdraw [put]
func (c *applicationApiController) withdraw(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload applicationapimodels.WithdrawRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := applicationhandler.Instance.Withdraw(ctx.UserContext(), middleware.GetActor(ctx), id, payload.Reason)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка отзыва отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Собеседования по отклику
// @Tags Собеседование
// @Description Собеседования по отклику. Кандидату - без отзывов интервьюеров
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/interviews [get]
func (c *applicationApiController) interviews(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	list, err := interviewhandler.Instance.ListByApplication(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения собеседований")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Оценка кандидата
// @Tags Оценка
// @Description Оценка кандидата по шкале 1-10
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 evaluationapimodels.EvaluationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.EvaluationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/evaluation [post]
func (c *applicationApiController) evaluate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload evaluationapimodels.EvaluationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := evaluationhandler.Instance.Create(ctx.UserContext(), middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка сохранения оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список оценок
// @Tags Оценка
// @Description Список оценок по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response{data=[]evaluationapimodels.EvaluationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/evaluation/list [get]
func (c *applicationApiController) evaluationList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	list, err := evaluationhandler.Instance.List(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения оценок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Сводка оценок
// @Tags Оценка
// @Description Количество, средняя/максимальная/минимальная оценка и распределение рекомендаций
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.StatsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/evaluation/stats [get]
func (c *applicationApiController) evaluationStats(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := evaluationhandler.Instance.Stats(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения сводки оценок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Рекомендация руководителя
// @Tags Оценка
// @Description Рекомендация руководителя подразделения вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 evaluationapimodels.ManagerRecommendationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.ManagerRecommendationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/manager_recommendation [post]
func (c *applicationApiController) recommend(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload evaluationapimodels.ManagerRecommendationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := managerrecommendationhandler.Instance.Create(ctx.UserContext(), middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка сохранения рекомендации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Рекомендации руководителей
// @Tags Оценка
// @Description Рекомендации по отклику, конфиденциальные - только руководителям и администраторам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response{data=[]evaluationapimodels.ManagerRecommendationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/manager_recommendation/list [get]
func (c *applicationApiController) recommendationList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	list, err := managerrecommendationhandler.Instance.List(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения рекомендаций")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Ответы на тест
// @Tags Тестирование
// @Description Отправка ответов на внутренний тест, подсчет баллов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 testapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=testapimodels.AttemptView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/test/submit [post]
func (c *applicationApiController) submitQuiz(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload testapimodels.SubmitRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := testhandler.Instance.SubmitQuiz(ctx.UserContext(), middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка сохранения ответов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Внешний тест пройден
// @Tags Тестирование
// @Description Отметка о прохождении внешнего теста
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 testapimodels.ExternalCompleteRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=testapimodels.AttemptView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/test/external_complete [put]
func (c *applicationApiController) externalComplete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload testapimodels.ExternalCompleteRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := testhandler.Instance.MarkExternalComplete(ctx.UserContext(), middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка отметки о прохождении теста")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Результат тестирования
// @Tags Тестирование
// @Description Попытка прохождения теста по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param   test_id          	query   string  				    	false        "тест, по умолчанию последний назначенный"
// @Success 200 {object} apimodels.Response{data=testapimodels.AttemptView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/test/attempt [get]
func (c *applicationApiController) attempt(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := testhandler.Instance.GetAttempt(middleware.GetActor(ctx), id, ctx.Query("test_id"))
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения результата тестирования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
