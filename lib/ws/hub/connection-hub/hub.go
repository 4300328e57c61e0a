package connectionhub

import (
	"sync"

	"hr-pipeline-backend/db"
	notificationstore "hr-pipeline-backend/lib/notification/store"
	wsmodels "hr-pipeline-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage) bool
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

// количество непрочитанных уведомлений, отправляемых при подключении
const pendingLimit = 20

func Init() {
	Instance = New(db.DB)
}

func New(DB *gorm.DB) Provider {
	return &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(DB),
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   notificationstore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	sess, ok := i.clients[userID]
	if ok {
		delete(i.clients, userID)
	}
	i.mu.Unlock()
	if !ok {
		return
	}
	sess.stop()
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
	go i.sendPending(userID)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[msg.ToUserID]
	if !ok {
		return false
	}
	return sess.push(msg)
}

func (i *impl) SendClose(userID string) {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// sendPending отправляет непрочитанные уведомления, накопленные пока пользователь был не в сети
func (i *impl) sendPending(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.List(userID, true, 1, pendingLimit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка непрочитанных уведомлений")
		return
	}
	for n := len(list) - 1; n >= 0; n-- {
		item := list[n]
		if !i.IsConnected(userID) {
			return
		}
		i.SendMessage(wsmodels.ServerMessage{
			ToUserID:       userID,
			NotificationID: item.ID,
			Time:           item.CreatedAt.Format(wsmodels.TimeLayout),
			Code:           string(item.Type),
			Title:          item.Title,
			Msg:            item.Message,
		})
	}
}
