package middleware

import (
	"encoding/json"
	"fmt"
	apimodels "hr-pipeline-backend/models/api"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

var errNotifyClient = &http.Client{Timeout: 5 * time.Second}

// ErrNotify отправка сведений об ошибках 5xx во внешний сборщик (alertmanager webhook и т.п.)
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		var data apimodels.Response
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
			log.WithError(unmErr).Warn("ошибка разбора ответа для уведомления об ошибке")
		}
		msg := data.Message
		if msg == "" {
			msg = string(c.Response().Body())
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		payload := fmt.Sprintf(`{"code":%d,"method":%q,"path":%q,"actor_id":%q,"error":%q}`,
			statusCode, c.Method(), path, GetUserID(c), msg)

		go func() {
			resp, reqErr := errNotifyClient.Post(addr, fiber.MIMEApplicationJSON, strings.NewReader(payload))
			if reqErr != nil {
				log.WithError(reqErr).Warn("ошибка отправки уведомления об ошибке")
				return
			}
			_ = resp.Body.Close()
		}()
		return err
	}
}
