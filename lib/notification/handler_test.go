package notificationhandler

import (
	"context"
	"hr-pipeline-backend/db"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"
	notificationapimodels "hr-pipeline-backend/models/api/notification"
	dbmodels "hr-pipeline-backend/models/db"
	wsmodels "hr-pipeline-backend/models/ws"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
)

type fakeHub struct {
	mu        sync.Mutex
	connected map[string]bool
	sent      []wsmodels.ServerMessage
}

func (f *fakeHub) AddClient(userID string, conn *websocket.Conn) {}

func (f *fakeHub) DeleteClient(userID string) {}

func (f *fakeHub) SendClose(userID string) {}

func (f *fakeHub) IsConnected(userID string) bool {
	return f.connected[userID]
}

func (f *fakeHub) SendMessage(msg wsmodels.ServerMessage) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return true
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) SendEMail(from, to, message, subject string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailer) IsConfigured() bool {
	return true
}

func TestSend(t *testing.T) {
	DB, err := db.OpenInMemory("notification_send")
	require.NoError(t, err)
	online := dbmodels.User{Email: "online@example.com", IsActive: true}
	require.NoError(t, DB.Create(&online).Error)
	offline := dbmodels.User{Email: "offline@example.com", IsActive: true}
	require.NoError(t, DB.Create(&offline).Error)
	blocked := dbmodels.User{Email: "blocked@example.com", IsActive: false}
	require.NoError(t, DB.Create(&blocked).Error)

	hub := &fakeHub{connected: map[string]bool{online.ID: true}}
	mailer := &fakeMailer{}
	handler := New(DB, hub, mailer, Options{From: "hr@example.com", RatePerSec: 1000, Burst: 10, Parallelism: 2})

	senderID := "sender"
	handler.Send(context.Background(), Request{
		SenderID:    &senderID,
		ReceiverIDs: []string{online.ID, offline.ID, online.ID, "", blocked.ID},
		Data:        models.GetNotifyInterviewCancelled("Собеседование", "вакансия закрыта"),
		Metadata:    map[string]any{"interview_id": "i1"},
	})

	var stored []dbmodels.Notification
	require.NoError(t, DB.Find(&stored).Error)
	require.Len(t, stored, 3)
	for _, rec := range stored {
		require.Equal(t, models.NotifyInterviewCancelled, rec.Type)
		require.Equal(t, "sender", *rec.SenderID)
		require.JSONEq(t, `{"interview_id":"i1"}`, string(rec.Metadata))
	}

	require.Len(t, hub.sent, 1)
	require.Equal(t, online.ID, hub.sent[0].ToUserID)
	require.Equal(t, string(models.NotifyInterviewCancelled), hub.sent[0].Code)
	require.NotEmpty(t, hub.sent[0].NotificationID)

	require.ElementsMatch(t, []string{"online@example.com", "offline@example.com"}, mailer.sent)

	t.Run(`no receivers`, func(t *testing.T) {
		handler.Send(context.Background(), Request{Data: models.GetNotifyInterviewCancelled("Собеседование", "")})
		var count int64
		require.NoError(t, DB.Model(&dbmodels.Notification{}).Count(&count).Error)
		require.Equal(t, int64(3), count)
	})
}

func TestReadState(t *testing.T) {
	DB, err := db.OpenInMemory("notification_read")
	require.NoError(t, err)
	handler := New(DB, nil, nil, Options{RatePerSec: 1000, Burst: 10})
	owner := models.Actor{ID: "owner"}
	stranger := models.Actor{ID: "stranger"}

	for n := 0; n < 3; n++ {
		handler.Send(context.Background(), Request{
			ReceiverIDs: []string{owner.ID},
			Data:        models.GetNotifyInterviewerAssigned("Собеседование", time.Now()),
		})
	}

	list, count, err := handler.List(owner, notificationapimodels.NotificationFilter{Pagination: apimodels.Pagination{Limit: 2, Page: 1}})
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
	require.Len(t, list, 2)

	list, _, err = handler.List(owner, notificationapimodels.NotificationFilter{Pagination: apimodels.Pagination{Limit: 2, Page: 5}})
	require.NoError(t, err)
	require.Empty(t, list)

	t.Run(`mark one`, func(t *testing.T) {
		all, _, err := handler.List(owner, notificationapimodels.NotificationFilter{})
		require.NoError(t, err)
		target := all[0].ID

		require.True(t, apperrors.Is(handler.MarkRead(stranger, target), apperrors.KindNotFound))
		require.True(t, apperrors.Is(handler.MarkRead(owner, "missing"), apperrors.KindNotFound))
		require.NoError(t, handler.MarkRead(owner, target))
		require.NoError(t, handler.MarkRead(owner, target))

		unread, count, err := handler.List(owner, notificationapimodels.NotificationFilter{UnreadOnly: true})
		require.NoError(t, err)
		require.Equal(t, int64(2), count)
		for _, rec := range unread {
			require.NotEqual(t, target, rec.ID)
			require.False(t, rec.IsRead)
		}
	})

	t.Run(`mark all`, func(t *testing.T) {
		require.NoError(t, handler.MarkAllRead(owner))
		_, count, err := handler.List(owner, notificationapimodels.NotificationFilter{UnreadOnly: true})
		require.NoError(t, err)
		require.Zero(t, count)

		all, _, err := handler.List(owner, notificationapimodels.NotificationFilter{})
		require.NoError(t, err)
		for _, rec := range all {
			require.True(t, rec.IsRead)
			require.NotNil(t, rec.ReadAt)
		}
	})
}
