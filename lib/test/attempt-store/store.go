package attemptstore

import (
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.TestAttempt) (id string, err error)
	Get(testID, applicationID string) (rec *dbmodels.TestAttempt, err error)
	// GetLatest последняя попытка по отклику, используется когда тест не указан явно
	GetLatest(applicationID string) (rec *dbmodels.TestAttempt, err error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TestAttempt) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Get(testID, applicationID string) (rec *dbmodels.TestAttempt, err error) {
	err = i.db.
		Model(&dbmodels.TestAttempt{}).
		Where("test_id = ? and application_id = ?", testID, applicationID).
		Preload("Test").
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

func (i impl) GetLatest(applicationID string) (rec *dbmodels.TestAttempt, err error) {
	err = i.db.
		Model(&dbmodels.TestAttempt{}).
		Where("application_id = ?", applicationID).
		Preload("Test").
		Order("invited_at desc").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.TestAttempt{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}
