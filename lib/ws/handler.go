package ws

import (
	notificationhandler "hr-pipeline-backend/lib/notification"
	wsclient "hr-pipeline-backend/lib/ws/client"
	connectionhub "hr-pipeline-backend/lib/ws/hub/connection-hub"
	"hr-pipeline-backend/middleware"
	"hr-pipeline-backend/models"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const actorKey = "ws_actor"

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		ctx.Locals(actorKey, middleware.GetActor(ctx))
		return ctx.Next()
	})
	app.Get("/", websocket.New(notificationHandler))
}

// @Summary Уведомления в реальном времени
// @Tags Websocket
// @Description При подключении отправляются непрочитанные уведомления, далее новые по мере появления.
// @Description Клиент может отметить уведомление прочитанным сообщением {"action":"read","notification_id":"..."}
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 401
// @Failure 426
// @router /ws [get]
func notificationHandler(c *websocket.Conn) {
	actor, _ := c.Locals(actorKey).(models.Actor)
	if actor.ID == "" {
		_ = c.Close()
		return
	}
	onRead := func(notificationID string) {
		if err := notificationhandler.Instance.MarkRead(actor, notificationID); err != nil {
			log.WithField("user_id", actor.ID).
				WithField("notification_id", notificationID).
				WithError(err).
				Warn("ошибка отметки уведомления прочитанным")
		}
	}
	client := wsclient.NewClient(actor.ID, c, onRead)
	connectionhub.Instance.AddClient(actor.ID, c)
	defer connectionhub.Instance.DeleteClient(actor.ID)
	client.Dispatch()
}
