package applicationapimodels

import (
	"encoding/json"
	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"
	dbmodels "hr-pipeline-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

type ApplyRequest struct {
	MotivationLetter string          `json:"motivation_letter"`                  // Сопроводительное письмо
	CVFileRef        string          `json:"cv_file_ref"`                        // Ссылка на загруженный файл резюме
	StructuredCV     json.RawMessage `json:"structured_cv" swaggertype:"object"` // Резюме в структурированном виде
}

func (r ApplyRequest) Validate() error {
	if r.CVFileRef == "" && len(r.StructuredCV) == 0 {
		return errors.New("необходимо приложить файл резюме или заполнить резюме")
	}
	if len(r.StructuredCV) != 0 && !json.Valid(r.StructuredCV) {
		return errors.New("некорректный формат резюме")
	}
	return nil
}

type StatusChangeRequest struct {
	Status models.ApplicationStatus `json:"status"` // Новый статус
	Notes  string                   `json:"notes"`  // Комментарий
}

func (r StatusChangeRequest) Validate() error {
	return r.Status.Validate()
}

type WithdrawRequest struct {
	Reason string `json:"reason"` // Причина отзыва
}

func (r WithdrawRequest) Validate() error {
	return nil
}

type ApplicationFilter struct {
	apimodels.Pagination
	Status models.ApplicationStatus `json:"status" query:"status"` // Статус
}

func (r ApplicationFilter) Validate() error {
	if r.Status != "" {
		return r.Status.Validate()
	}
	return nil
}

type CVUploadView struct {
	CVFileRef string `json:"cv_file_ref"` // Ссылка на файл для отклика
}

type ApplicationView struct {
	ID                 string                     `json:"id"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
	VacancyID          string                     `json:"vacancy_id"`
	VacancyTitle       string                     `json:"vacancy_title"`
	ApplicantID        string                     `json:"applicant_id"`
	Status             models.ApplicationStatus   `json:"status"`
	StatusName         string                     `json:"status_name"`
	Phase              models.ApplicationStatus   `json:"phase"`
	AllowedTransitions []models.ApplicationStatus `json:"allowed_transitions"`
	Notes              string                     `json:"notes"`
	MotivationLetter   string                     `json:"motivation_letter"`
	StructuredCV       datatypes.JSON             `json:"structured_cv" swaggertype:"object"`
	CVFileRef          string                     `json:"cv_file_ref"`
	WithdrawReason     string                     `json:"withdraw_reason"`
}

func Convert(rec dbmodels.Application) ApplicationView {
	result := ApplicationView{
		ID:                 rec.ID,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
		VacancyID:          rec.VacancyID,
		ApplicantID:        rec.ApplicantID,
		Status:             rec.Status,
		StatusName:         rec.Status.ToHuman(),
		Phase:              rec.Status.Phase(),
		AllowedTransitions: rec.Status.AllowedTransitions(),
		Notes:              rec.Notes,
		MotivationLetter:   rec.MotivationLetter,
		StructuredCV:       rec.StructuredCV,
		CVFileRef:          rec.CVFileRef,
		WithdrawReason:     rec.WithdrawReason,
	}
	if rec.Vacancy != nil {
		result.VacancyTitle = rec.Vacancy.Title
	}
	return result
}
