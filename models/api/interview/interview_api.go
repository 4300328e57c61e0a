package interviewapimodels

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"slices"
	"time"

	"github.com/pkg/errors"
)

type ScheduleRequest struct {
	ApplicationID   string    `json:"application_id"`   // Отклик
	Title           string    `json:"title"`            // Название
	Round           int       `json:"round"`            // Раунд, если не указан - следующий по счету
	ScheduledAt     time.Time `json:"scheduled_at"`     // Время начала
	DurationMinutes int       `json:"duration_minutes"` // Длительность, мин
	Location        string    `json:"location"`         // Место проведения
	MeetingLink     string    `json:"meeting_link"`     // Ссылка на встречу
	Notes           string    `json:"notes"`            // Заметки
	InterviewerIDs  []string  `json:"interviewer_ids"`  // Интервьюеры
}

func (r ScheduleRequest) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("не указан отклик")
	}
	if r.Title == "" {
		return errors.New("не указано название собеседования")
	}
	if r.ScheduledAt.IsZero() {
		return errors.New("не указано время собеседования")
	}
	if r.DurationMinutes <= 0 {
		return errors.New("не указана длительность собеседования")
	}
	if r.Round < 0 {
		return errors.New("некорректный номер раунда")
	}
	return validateInterviewerIDs(r.InterviewerIDs)
}

type RescheduleRequest struct {
	ScheduledAt     time.Time `json:"scheduled_at"`     // Новое время
	DurationMinutes *int      `json:"duration_minutes"` // Новая длительность
	Location        *string   `json:"location"`         // Новое место
	Notes           *string   `json:"notes"`            // Заметки
	Reason          string    `json:"reason"`           // Причина переноса
}

func (r RescheduleRequest) Validate() error {
	if r.ScheduledAt.IsZero() {
		return errors.New("не указано новое время собеседования")
	}
	if r.Reason == "" {
		return errors.New("не указана причина переноса")
	}
	if r.DurationMinutes != nil && *r.DurationMinutes <= 0 {
		return errors.New("некорректная длительность собеседования")
	}
	return nil
}

type CancelRequest struct {
	Reason string `json:"reason"` // Причина отмены
}

func (r CancelRequest) Validate() error {
	if r.Reason == "" {
		return errors.New("не указана причина отмены")
	}
	return nil
}

type AssignRequest struct {
	InterviewerIDs []string `json:"interviewer_ids"` // Интервьюеры
}

func (r AssignRequest) Validate() error {
	return validateInterviewerIDs(r.InterviewerIDs)
}

type CompleteRequest struct {
	Feedback       string                `json:"feedback"`       // Отзыв
	Rating         *int                  `json:"rating"`         // Оценка 1-10
	Recommendation models.Recommendation `json:"recommendation"` // Рекомендация
	Attended       *bool                 `json:"attended"`       // Кандидат присутствовал
}

func (r CompleteRequest) Validate() error {
	if r.Rating != nil {
		if err := models.ValidateRating(*r.Rating); err != nil {
			return err
		}
	}
	return r.Recommendation.Validate()
}

func validateInterviewerIDs(ids []string) error {
	if len(ids) == 0 {
		return errors.New("не указаны интервьюеры")
	}
	for n, id := range ids {
		if id == "" {
			return errors.New("пустой идентификатор интервьюера")
		}
		if slices.Contains(ids[:n], id) {
			return errors.Errorf("интервьюер %v указан несколько раз", id)
		}
	}
	return nil
}

type AssignmentView struct {
	InterviewerID  string                `json:"interviewer_id"`
	Feedback       string                `json:"feedback,omitempty"`
	Rating         *int                  `json:"rating,omitempty"`
	Recommendation models.Recommendation `json:"recommendation,omitempty"`
	Attended       *bool                 `json:"attended,omitempty"`
	CompletedAt    *time.Time            `json:"completed_at"`
}

type InterviewView struct {
	ID               string                 `json:"id"`
	CreatedAt        time.Time              `json:"created_at"`
	ApplicationID    string                 `json:"application_id"`
	Title            string                 `json:"title"`
	Round            int                    `json:"round"`
	ScheduledAt      time.Time              `json:"scheduled_at"`
	DurationMinutes  int                    `json:"duration_minutes"`
	Location         string                 `json:"location"`
	MeetingLink      string                 `json:"meeting_link"`
	Notes            string                 `json:"notes"`
	Status           models.InterviewStatus `json:"status"`
	StatusName       string                 `json:"status_name"`
	CancelReason     string                 `json:"cancel_reason"`
	RescheduleReason string                 `json:"reschedule_reason"`
	CreatedBy        string                 `json:"created_by"`
	CompletedAt      *time.Time             `json:"completed_at"`
	Assignments      []AssignmentView       `json:"assignments"`
}

// Convert withFeedback=false скрывает отзывы интервьюеров
func Convert(rec dbmodels.Interview, withFeedback bool) InterviewView {
	result := InterviewView{
		ID:               rec.ID,
		CreatedAt:        rec.CreatedAt,
		ApplicationID:    rec.ApplicationID,
		Title:            rec.Title,
		Round:            rec.Round,
		ScheduledAt:      rec.ScheduledAt,
		DurationMinutes:  rec.DurationMinutes,
		Location:         rec.Location,
		MeetingLink:      rec.MeetingLink,
		Status:           rec.Status,
		StatusName:       rec.Status.ToHuman(),
		CancelReason:     rec.CancelReason,
		RescheduleReason: rec.RescheduleReason,
		CreatedBy:        rec.CreatedBy,
		CompletedAt:      rec.CompletedAt,
		Assignments:      make([]AssignmentView, 0, len(rec.Assignments)),
	}
	if withFeedback {
		result.Notes = rec.Notes
	}
	for _, assignment := range rec.Assignments {
		view := AssignmentView{
			InterviewerID: assignment.InterviewerID,
			CompletedAt:   assignment.CompletedAt,
		}
		if withFeedback {
			view.Feedback = assignment.Feedback
			view.Rating = assignment.Rating
			view.Recommendation = assignment.Recommendation
			view.Attended = assignment.Attended
		}
		result.Assignments = append(result.Assignments, view)
	}
	return result
}
