package audithandler

import (
	"context"
	"hr-pipeline-backend/db"
	auditstore "hr-pipeline-backend/lib/audit/store"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	auditapimodels "hr-pipeline-backend/models/api/audit"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Record(ctx context.Context, rec dbmodels.AuditLog) error
	List(actor models.Actor, filter auditapimodels.AuditFilter) ([]auditapimodels.AuditView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB)
}

func New(DB *gorm.DB) Provider {
	return impl{
		store: auditstore.NewInstance(DB),
	}
}

type impl struct {
	store auditstore.Provider
}

func (i impl) Record(ctx context.Context, rec dbmodels.AuditLog) error {
	logger := log.
		WithField("action", rec.Action).
		WithField("entity_type", rec.EntityType).
		WithField("entity_id", rec.EntityID).
		WithField("actor_id", rec.ActorID)
	if ctx.Err() != nil {
		logger.Warn("запись аудита выполняется после остановки сервиса")
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения записи аудита")
		return errors.Wrap(err, "ошибка сохранения записи аудита")
	}
	return nil
}

func (i impl) List(actor models.Actor, filter auditapimodels.AuditFilter) ([]auditapimodels.AuditView, int64, error) {
	if !actor.Has(models.CapabilityAdmin) {
		return nil, 0, apperrors.Forbidden("журнал аудита доступен только администратору")
	}
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения количества записей аудита")
		return nil, 0, errors.New("ошибка получения количества записей аудита")
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []auditapimodels.AuditView{}, rowCount, nil
	}
	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения журнала аудита")
		return nil, 0, errors.New("ошибка получения журнала аудита")
	}
	result := make([]auditapimodels.AuditView, 0, len(list))
	for _, rec := range list {
		result = append(result, auditapimodels.Convert(rec))
	}
	return result, rowCount, nil
}
