package vacancyapimodels

import (
	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"
	dbmodels "hr-pipeline-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type VacancyData struct {
	Title        string `json:"title"`         // название вакансии
	Description  string `json:"description"`   // требования/обязанности/условия
	DepartmentID string `json:"department_id"` // ид подразделения
}

func (v VacancyData) Validate() error {
	if v.Title == "" {
		return errors.New("не указано название вакансии")
	}
	return nil
}

type StatusChangeRequest struct {
	Status models.VacancyStatus `json:"status"` // новый статус
}

func (r StatusChangeRequest) Validate() error {
	return r.Status.Validate()
}

type PublishRequest struct {
	IsPublished bool `json:"is_published"` // опубликовать/снять с публикации
}

func (r PublishRequest) Validate() error {
	return nil
}

type VacancyFilter struct {
	apimodels.Pagination
	Status       models.VacancyStatus `json:"status"`        // статус
	DepartmentID string               `json:"department_id"` // подразделение
	Search       string               `json:"search"`        // поиск по названию
}

func (r VacancyFilter) Validate() error {
	if r.Status != "" {
		return r.Status.Validate()
	}
	return nil
}

type VacancyView struct {
	ID             string               `json:"id"`
	CreatedAt      time.Time            `json:"created_at"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	DepartmentID   string               `json:"department_id"`
	DepartmentName string               `json:"department_name"`
	AuthorID       string               `json:"author_id"`
	Status         models.VacancyStatus `json:"status"`
	StatusName     string               `json:"status_name"`
	IsPublished    bool                 `json:"is_published"`
}

func Convert(rec dbmodels.Vacancy) VacancyView {
	result := VacancyView{
		ID:          rec.ID,
		CreatedAt:   rec.CreatedAt,
		Title:       rec.Title,
		Description: rec.Description,
		AuthorID:    rec.AuthorID,
		Status:      rec.Status,
		StatusName:  rec.Status.ToHuman(),
		IsPublished: rec.IsPublished,
	}
	if rec.DepartmentID != nil {
		result.DepartmentID = *rec.DepartmentID
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	return result
}
