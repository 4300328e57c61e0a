package dbmodels

import (
	"hr-pipeline-backend/models"

	"gorm.io/datatypes"
)

type Application struct {
	BaseModel
	VacancyID        string                   `gorm:"type:varchar(36);uniqueIndex:idx_application_vacancy_applicant"`
	Vacancy          *Vacancy                 `gorm:"foreignKey:VacancyID"`
	ApplicantID      string                   `gorm:"type:varchar(36);uniqueIndex:idx_application_vacancy_applicant;index"`
	Status           models.ApplicationStatus `gorm:"type:varchar(50);index"`
	Notes            string
	MotivationLetter string
	StructuredCV     datatypes.JSON
	CVFileRef        string `gorm:"type:varchar(255)"`
	WithdrawReason   string
	// Version счетчик изменений для оптимистичной блокировки
	Version int `gorm:"not null;default:1"`
}

func (a Application) HasCV() bool {
	return a.CVFileRef != "" || len(a.StructuredCV) != 0
}

type ApplicationFilter struct {
	VacancyID   string
	ApplicantID string
	Status      models.ApplicationStatus
	Page        int
	Limit       int
}
