package notificationstore

import (
	dbmodels "hr-pipeline-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	GetByID(id string) (rec *dbmodels.Notification, err error)
	ListCount(receiverID string, unreadOnly bool) (count int64, err error)
	List(receiverID string, unreadOnly bool, page, limit int) (list []dbmodels.Notification, err error)
	MarkRead(receiverID string, ids []string, readAt time.Time) (int64, error)
	MarkAllRead(receiverID string, readAt time.Time) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Notification, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ListCount(receiverID string, unreadOnly bool) (count int64, err error) {
	err = i.receiverTx(receiverID, unreadOnly).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) List(receiverID string, unreadOnly bool, page, limit int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.receiverTx(receiverID, unreadOnly).
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(receiverID string, ids []string, readAt time.Time) (int64, error) {
	tx := i.db.
		Model(&dbmodels.Notification{}).
		Where("receiver_id = ?", receiverID).
		Where("id in (?)", ids).
		Where("is_read = ?", false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": readAt,
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) MarkAllRead(receiverID string, readAt time.Time) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("receiver_id = ?", receiverID).
		Where("is_read = ?", false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": readAt,
		}).
		Error
}

func (i impl) receiverTx(receiverID string, unreadOnly bool) *gorm.DB {
	tx := i.db.Model(dbmodels.Notification{}).
		Where("receiver_id = ?", receiverID)
	if unreadOnly {
		tx = tx.Where("is_read = ?", false)
	}
	return tx
}
