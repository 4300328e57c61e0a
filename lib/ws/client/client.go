package wsclient

import (
	"encoding/json"
	wsmodels "hr-pipeline-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type ReadFunc func(notificationID string)

func NewClient(userID string, c *websocket.Conn, onRead ReadFunc) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
		onRead: onRead,
	}
}

type WsClient struct {
	conn   *websocket.Conn
	userID string
	onRead ReadFunc
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

func (c *WsClient) Dispatch() {
	logger := log.WithField("user_id", c.userID)
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				logger.WithError(err).Error("ошибка получения сообщения")
			}
			break
		}
		var msg wsmodels.ClientMessage
		if err = json.Unmarshal(data, &msg); err != nil {
			logger.WithError(err).Debug("некорректное сообщение от клиента")
			continue
		}
		switch msg.Action {
		case wsmodels.ClientActionRead:
			if c.onRead != nil && msg.NotificationID != "" {
				c.onRead(msg.NotificationID)
			}
		default:
			logger.WithField("action", msg.Action).Debug("неизвестное действие клиента")
		}
	}
}
