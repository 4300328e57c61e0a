package notificationhandler

import (
	"context"
	"encoding/json"
	"hr-pipeline-backend/config"
	"hr-pipeline-backend/db"
	notificationstore "hr-pipeline-backend/lib/notification/store"
	"hr-pipeline-backend/lib/smtp"
	usersstore "hr-pipeline-backend/lib/users/store"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	connectionhub "hr-pipeline-backend/lib/ws/hub/connection-hub"
	"hr-pipeline-backend/models"
	notificationapimodels "hr-pipeline-backend/models/api/notification"
	dbmodels "hr-pipeline-backend/models/db"
	wsmodels "hr-pipeline-backend/models/ws"
	"slices"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Request уведомление для одного или нескольких получателей
type Request struct {
	SenderID    *string
	ReceiverIDs []string
	Data        models.NotificationData
	Metadata    map[string]any
}

type Provider interface {
	Send(ctx context.Context, req Request)
	List(actor models.Actor, filter notificationapimodels.NotificationFilter) ([]notificationapimodels.NotificationView, int64, error)
	MarkRead(actor models.Actor, notificationID string) error
	MarkAllRead(actor models.Actor) error
}

var Instance Provider

type Options struct {
	From        string
	RatePerSec  float64
	Burst       int
	Parallelism int
}

func NewHandler() {
	Instance = New(db.DB, connectionhub.Instance, smtp.Instance, Options{
		From:        config.Conf.Smtp.From,
		RatePerSec:  config.Conf.Notify.RatePerSec,
		Burst:       config.Conf.Notify.Burst,
		Parallelism: config.Conf.Notify.Parallelism,
	})
}

// New hub и mailer могут быть nil, тогда соответствующий канал доставки отключен
func New(DB *gorm.DB, hub connectionhub.Provider, mailer smtp.Provider, opt Options) Provider {
	if opt.RatePerSec <= 0 {
		opt.RatePerSec = 5
	}
	if opt.Burst <= 0 {
		opt.Burst = 1
	}
	if opt.Parallelism <= 0 {
		opt.Parallelism = 1
	}
	return impl{
		store:       notificationstore.NewInstance(DB),
		userStore:   usersstore.NewInstance(DB),
		hub:         hub,
		mailer:      mailer,
		from:        opt.From,
		limiter:     rate.NewLimiter(rate.Limit(opt.RatePerSec), opt.Burst),
		parallelism: opt.Parallelism,
	}
}

type impl struct {
	store       notificationstore.Provider
	userStore   usersstore.Provider
	hub         connectionhub.Provider
	mailer      smtp.Provider
	from        string
	limiter     *rate.Limiter
	parallelism int
}

func (i impl) Send(ctx context.Context, req Request) {
	logger := log.WithField("notification_type", req.Data.Type)
	receiverIDs := uniqueIDs(req.ReceiverIDs)
	if len(receiverIDs) == 0 {
		return
	}
	var metadata datatypes.JSON
	if len(req.Metadata) != 0 {
		body, err := json.Marshal(req.Metadata)
		if err != nil {
			logger.WithError(err).Error("ошибка сериализации метаданных уведомления")
		} else {
			metadata = body
		}
	}
	users, err := i.userStore.GetByIDs(receiverIDs)
	if err != nil {
		logger.WithError(err).Error("ошибка получения получателей уведомления")
		users = nil
	}
	emails := map[string]string{}
	for _, user := range users {
		if user.IsActive && user.Email != "" {
			emails[user.ID] = user.Email
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(i.parallelism)
	for _, receiverID := range receiverIDs {
		rec := dbmodels.Notification{
			SenderID:   req.SenderID,
			ReceiverID: receiverID,
			Type:       req.Data.Type,
			Title:      req.Data.Title,
			Message:    req.Data.Msg,
			Metadata:   metadata,
		}
		id, err := i.store.Create(rec)
		if err != nil {
			logger.
				WithField("receiver_id", receiverID).
				WithError(err).
				Error("ошибка сохранения уведомления")
			continue
		}
		rec.ID = id
		rec.CreatedAt = time.Now()
		email := emails[receiverID]
		group.Go(func() error {
			i.deliver(groupCtx, rec, email)
			return nil
		})
	}
	_ = group.Wait()
}

func (i impl) deliver(ctx context.Context, rec dbmodels.Notification, email string) {
	logger := log.
		WithField("notification_id", rec.ID).
		WithField("receiver_id", rec.ReceiverID)
	if err := i.limiter.Wait(ctx); err != nil {
		logger.WithError(err).Warn("доставка уведомления отменена")
		return
	}
	if i.hub != nil && i.hub.IsConnected(rec.ReceiverID) {
		sent := i.hub.SendMessage(wsmodels.ServerMessage{
			ToUserID:       rec.ReceiverID,
			NotificationID: rec.ID,
			Time:           rec.CreatedAt.Format(wsmodels.TimeLayout),
			Code:           string(rec.Type),
			Title:          rec.Title,
			Msg:            rec.Message,
		})
		if !sent {
			logger.Warn("уведомление не доставлено по ws")
		}
	}
	if email != "" && i.mailer != nil && i.mailer.IsConfigured() {
		if err := i.mailer.SendEMail(i.from, email, rec.Message, rec.Title); err != nil {
			logger.WithError(err).Error("ошибка отправки уведомления на почту")
		}
	}
}

func (i impl) List(actor models.Actor, filter notificationapimodels.NotificationFilter) ([]notificationapimodels.NotificationView, int64, error) {
	logger := log.WithField("receiver_id", actor.ID)
	rowCount, err := i.store.ListCount(actor.ID, filter.UnreadOnly)
	if err != nil {
		logger.WithError(err).Error("ошибка получения количества уведомлений")
		return nil, 0, errors.New("ошибка получения количества уведомлений")
	}
	page, limit := filter.GetPage()
	if int64((page-1)*limit) > rowCount {
		return []notificationapimodels.NotificationView{}, rowCount, nil
	}
	list, err := i.store.List(actor.ID, filter.UnreadOnly, page, limit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка уведомлений")
		return nil, 0, errors.New("ошибка получения списка уведомлений")
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) MarkRead(actor models.Actor, notificationID string) error {
	logger := log.
		WithField("receiver_id", actor.ID).
		WithField("notification_id", notificationID)
	rec, err := i.store.GetByID(notificationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения уведомления")
		return errors.New("ошибка получения уведомления")
	}
	if rec == nil || rec.ReceiverID != actor.ID {
		return apperrors.NotFound("уведомление не найдено")
	}
	if rec.IsRead {
		return nil
	}
	_, err = i.store.MarkRead(actor.ID, []string{notificationID}, time.Now().UTC())
	if err != nil {
		logger.WithError(err).Error("ошибка отметки уведомления прочитанным")
		return errors.New("ошибка отметки уведомления прочитанным")
	}
	return nil
}

func (i impl) MarkAllRead(actor models.Actor) error {
	err := i.store.MarkAllRead(actor.ID, time.Now().UTC())
	if err != nil {
		log.WithField("receiver_id", actor.ID).
			WithError(err).
			Error("ошибка отметки уведомлений прочитанными")
		return errors.New("ошибка отметки уведомлений прочитанными")
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || slices.Contains(result, id) {
			continue
		}
		result = append(result, id)
	}
	return result
}
