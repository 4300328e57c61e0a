package interviewstore

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	GetByID(id string) (rec *dbmodels.Interview, err error)
	GetForUpdate(id string) (rec *dbmodels.Interview, err error)
	Update(id string, updMap map[string]interface{}) error
	CountByApplication(applicationID string) (count int64, err error)
	ListByApplication(applicationID string) (list []dbmodels.Interview, err error)
	ListByInterviewer(interviewerID string, onlyOpen bool) (list []dbmodels.Interview, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Interview, err error) {
	err = i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Preload("Assignments").
		Preload("Application").
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

// GetForUpdate чтение с блокировкой строки собеседования, назначения читаются в той же транзакции
func (i impl) GetForUpdate(id string) (rec *dbmodels.Interview, err error) {
	err = i.db.
		Model(&dbmodels.Interview{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
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
		Model(&dbmodels.Interview{}).
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

func (i impl) CountByApplication(applicationID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Interview{}).
		Where("application_id = ?", applicationID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Model(&dbmodels.Interview{}).
		Where("application_id = ?", applicationID).
		Preload("Assignments").
		Order("scheduled_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByInterviewer(interviewerID string, onlyOpen bool) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	tx := i.db.
		Model(&dbmodels.Interview{}).
		Where("id in (?)", i.db.
			Model(&dbmodels.InterviewerAssignment{}).
			Select("interview_id").
			Where("interviewer_id = ?", interviewerID))
	if onlyOpen {
		tx = tx.Where("status in (?)", []models.InterviewStatus{models.InterviewStatusScheduled, models.InterviewStatusRescheduled})
	}
	err = tx.
		Preload("Assignments").
		Order("scheduled_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
