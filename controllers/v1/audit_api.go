package apiv1

import (
	"hr-pipeline-backend/controllers"
	audithandler "hr-pipeline-backend/lib/audit"
	"hr-pipeline-backend/middleware"
	apimodels "hr-pipeline-backend/models/api"
	auditapimodels "hr-pipeline-backend/models/api/audit"

	"github.com/gofiber/fiber/v2"
)

type auditApiController struct {
	controllers.BaseAPIController
}

func InitAuditApiRouters(app *fiber.App) {
	controller := auditApiController{}
	app.Route("audit", func(router fiber.Router) {
		router.Get("list", controller.list)
	})
}

// @Summary Журнал аудита
// @Tags Аудит
// @Description Журнал изменений по сущности, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   entity_type          query   string  				    	false        "тип сущности"
// @Param   entity_id          	query   string  				    	false        "ИД сущности"
// @Param   actor_id          	query   string  				    	false        "инициатор"
// @Param   page          		query   int  				    	false        "страница"
// @Param   limit          		query   int  				    	false        "записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]auditapimodels.AuditView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/audit/list [get]
func (c *auditApiController) list(ctx *fiber.Ctx) error {
	var payload auditapimodels.AuditFilter
	if err := c.QueryParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	list, rowCount, err := audithandler.Instance.List(middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения журнала аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
