package managerrecommendationstore

import (
	dbmodels "hr-pipeline-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ManagerRecommendation) (id string, err error)
	List(applicationID string, withConfidential bool) (list []dbmodels.ManagerRecommendation, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ManagerRecommendation) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(applicationID string, withConfidential bool) (list []dbmodels.ManagerRecommendation, err error) {
	list = []dbmodels.ManagerRecommendation{}
	tx := i.db.
		Model(&dbmodels.ManagerRecommendation{}).
		Where("application_id = ?", applicationID)
	if !withConfidential {
		tx = tx.Where("is_confidential = ?", false)
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
