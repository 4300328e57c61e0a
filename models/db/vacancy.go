package dbmodels

import (
	"hr-pipeline-backend/models"
)

type Vacancy struct {
	BaseModel
	Title        string `gorm:"type:varchar(255)"`
	Description  string
	DepartmentID *string              `gorm:"type:varchar(36)"`
	Department   *Department          `gorm:"foreignKey:DepartmentID"`
	AuthorID     string               `gorm:"type:varchar(36)"`
	Status       models.VacancyStatus `gorm:"type:varchar(50)"`
	IsPublished  bool
}

// IsAcceptingApplications вакансия открыта и опубликована
func (v Vacancy) IsAcceptingApplications() bool {
	return v.Status == models.VacancyStatusOpen && v.IsPublished
}
