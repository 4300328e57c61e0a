package teststore

import (
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Test) (id string, err error)
	GetByID(id string) (rec *dbmodels.Test, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByVacancy(vacancyID string, onlyActive bool) (list []dbmodels.Test, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Test) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Test, err error) {
	err = i.db.
		Model(&dbmodels.Test{}).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Test{}).
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

func (i impl) ListByVacancy(vacancyID string, onlyActive bool) (list []dbmodels.Test, err error) {
	list = []dbmodels.Test{}
	tx := i.db.
		Model(&dbmodels.Test{}).
		Where("vacancy_id = ?", vacancyID)
	if onlyActive {
		tx = tx.Where("is_active = ?", true)
	}
	err = tx.
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
