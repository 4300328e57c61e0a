package assignmentstore

import (
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.InterviewerAssignment) (id string, err error)
	Get(interviewID, interviewerID string) (rec *dbmodels.InterviewerAssignment, err error)
	List(interviewID string) (list []dbmodels.InterviewerAssignment, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(interviewID string, interviewerIDs []string) error
	ExistsForApplication(applicationID, interviewerID string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.InterviewerAssignment) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Get(interviewID, interviewerID string) (rec *dbmodels.InterviewerAssignment, err error) {
	err = i.db.
		Model(&dbmodels.InterviewerAssignment{}).
		Where("interview_id = ?", interviewID).
		Where("interviewer_id = ?", interviewerID).
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

func (i impl) List(interviewID string) (list []dbmodels.InterviewerAssignment, err error) {
	list = []dbmodels.InterviewerAssignment{}
	err = i.db.
		Model(&dbmodels.InterviewerAssignment{}).
		Where("interview_id = ?", interviewID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.InterviewerAssignment{}).
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

func (i impl) Delete(interviewID string, interviewerIDs []string) error {
	if len(interviewerIDs) == 0 {
		return nil
	}
	return i.db.
		Where("interview_id = ?", interviewID).
		Where("interviewer_id in (?)", interviewerIDs).
		Delete(&dbmodels.InterviewerAssignment{}).
		Error
}

// ExistsForApplication назначен ли интервьюер хотя бы на одно собеседование отклика
func (i impl) ExistsForApplication(applicationID, interviewerID string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.InterviewerAssignment{}).
		Joins("JOIN interviews ON interviews.id = interviewer_assignments.interview_id").
		Where("interviews.application_id = ?", applicationID).
		Where("interviewer_assignments.interviewer_id = ?", interviewerID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
