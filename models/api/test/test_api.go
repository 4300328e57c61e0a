package testapimodels

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type TestData struct {
	VacancyID       string          `json:"vacancy_id"`       // Вакансия
	Title           string          `json:"title"`            // Название
	Description     string          `json:"description"`      // Описание
	Type            models.TestType `json:"type"`             // Тип теста EXTERNAL_LINK/INTERNAL_QUIZ
	ExternalURL     string          `json:"external_url"`     // Ссылка на внешний тест
	DurationMinutes *int            `json:"duration_minutes"` // Длительность, мин
	PassingScore    *float64        `json:"passing_score"`    // Проходной процент
	Deadline        *time.Time      `json:"deadline"`         // Срок прохождения
	Questions       []QuestionData  `json:"questions"`        // Вопросы теста
}

type QuestionData struct {
	ID                string              `json:"id"`                 // Идентификатор, генерируется если не указан
	Type              models.QuestionType `json:"type"`               // Тип вопроса
	Text              string              `json:"text"`               // Текст вопроса
	Options           []string            `json:"options"`            // Варианты ответа
	CorrectAnswer     string              `json:"correct_answer"`     // Правильный ответ
	AcceptableAnswers []string            `json:"acceptable_answers"` // Допустимые варианты для SHORT_ANSWER
	Points            int                 `json:"points"`             // Баллы
}

func (r TestData) Validate() error {
	if r.VacancyID == "" {
		return errors.New("не указана вакансия")
	}
	if r.Title == "" {
		return errors.New("не указано название теста")
	}
	if err := r.Type.Validate(); err != nil {
		return err
	}
	if r.PassingScore != nil && (*r.PassingScore < 0 || *r.PassingScore > 100) {
		return errors.New("проходной процент должен быть от 0 до 100")
	}
	if r.DurationMinutes != nil && *r.DurationMinutes <= 0 {
		return errors.New("некорректная длительность теста")
	}
	switch r.Type {
	case models.TestTypeExternalLink:
		if r.ExternalURL == "" {
			return errors.New("не указана ссылка на тест")
		}
		if _, err := url.ParseRequestURI(r.ExternalURL); err != nil {
			return errors.New("некорректная ссылка на тест")
		}
	case models.TestTypeInternalQuiz:
		if r.DurationMinutes == nil {
			return errors.New("не указана длительность теста")
		}
		if r.PassingScore == nil {
			return errors.New("не указан проходной процент")
		}
		if len(r.Questions) == 0 {
			return errors.New("тест должен содержать хотя бы один вопрос")
		}
		for idx, question := range r.Questions {
			if err := question.Validate(); err != nil {
				return errors.Wrapf(err, "вопрос %v", idx+1)
			}
		}
	}
	return nil
}

func (r QuestionData) Validate() error {
	if err := r.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("не указан текст вопроса")
	}
	if r.Points < 0 {
		return errors.New("количество баллов не может быть отрицательным")
	}
	switch r.Type {
	case models.QuestionTypeMultipleChoice:
		if len(r.Options) < 2 {
			return errors.New("нужно указать не менее двух вариантов ответа")
		}
		if strings.TrimSpace(r.CorrectAnswer) == "" {
			return errors.New("не указан правильный ответ")
		}
	case models.QuestionTypeTrueFalse:
		if _, err := strconv.ParseBool(strings.TrimSpace(r.CorrectAnswer)); err != nil {
			return errors.New("правильный ответ должен быть true или false")
		}
	case models.QuestionTypeShortAnswer:
		if strings.TrimSpace(r.CorrectAnswer) == "" && len(r.AcceptableAnswers) == 0 {
			return errors.New("не указан правильный ответ")
		}
	}
	return nil
}

// ToQuestion вопрос для сохранения, для TRUE_FALSE ответ хранится как bool
func (r QuestionData) ToQuestion() dbmodels.TestQuestion {
	result := dbmodels.TestQuestion{
		ID:                r.ID,
		Type:              r.Type,
		Text:              r.Text,
		Options:           r.Options,
		CorrectAnswer:     strings.TrimSpace(r.CorrectAnswer),
		AcceptableAnswers: r.AcceptableAnswers,
		Points:            r.Points,
	}
	if r.Type == models.QuestionTypeTrueFalse {
		value, _ := strconv.ParseBool(strings.TrimSpace(r.CorrectAnswer))
		result.CorrectBool = &value
		result.CorrectAnswer = ""
	}
	return result
}

type InviteRequest struct {
	ApplicationID string `json:"application_id"` // Отклик
}

type AnswerData struct {
	QuestionID string            `json:"question_id"` // Вопрос
	Kind       models.AnswerKind `json:"kind"`        // Тип ответа TEXT/NUMBER/BOOLEAN
	Text       *string           `json:"text"`        // Текстовый ответ
	Number     *float64          `json:"number"`      // Числовой ответ
	Bool       *bool             `json:"bool"`        // Да/нет
}

func (r AnswerData) Validate() error {
	if r.QuestionID == "" {
		return errors.New("не указан вопрос")
	}
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	switch r.Kind {
	case models.AnswerKindText:
		if r.Text == nil {
			return errors.New("не указан текст ответа")
		}
	case models.AnswerKindNumber:
		if r.Number == nil {
			return errors.New("не указано числовое значение ответа")
		}
	case models.AnswerKindBoolean:
		if r.Bool == nil {
			return errors.New("не указано значение ответа")
		}
	}
	return nil
}

func (r AnswerData) ToAnswer() dbmodels.QuizAnswer {
	result := dbmodels.QuizAnswer{
		QuestionID: r.QuestionID,
		Kind:       r.Kind,
	}
	switch r.Kind {
	case models.AnswerKindText:
		result.Text = *r.Text
	case models.AnswerKindNumber:
		result.Number = r.Number
	case models.AnswerKindBoolean:
		result.Bool = r.Bool
	}
	return result
}

type SubmitRequest struct {
	TestID  string       `json:"test_id"` // Тест, если не указан - последний назначенный
	Answers []AnswerData `json:"answers"` // Ответы
}

func (r SubmitRequest) Validate() error {
	for idx, answer := range r.Answers {
		if err := answer.Validate(); err != nil {
			return errors.Wrapf(err, "ответ %v", idx+1)
		}
	}
	return nil
}

type ExternalCompleteRequest struct {
	TestID string `json:"test_id"` // Тест, если не указан - последний назначенный
	Notes  string `json:"notes"`   // Комментарий
}

type QuestionView struct {
	ID                string              `json:"id"`
	Type              models.QuestionType `json:"type"`
	Text              string              `json:"text"`
	Options           []string            `json:"options,omitempty"`
	Points            int                 `json:"points"`
	CorrectAnswer     string              `json:"correct_answer,omitempty"`
	AcceptableAnswers []string            `json:"acceptable_answers,omitempty"`
}

type TestView struct {
	ID              string          `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	VacancyID       string          `json:"vacancy_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Type            models.TestType `json:"type"`
	ExternalURL     string          `json:"external_url,omitempty"`
	DurationMinutes *int            `json:"duration_minutes,omitempty"`
	PassingScore    *float64        `json:"passing_score,omitempty"`
	TotalPoints     int             `json:"total_points"`
	IsActive        bool            `json:"is_active"`
	Deadline        *time.Time      `json:"deadline,omitempty"`
	Questions       []QuestionView  `json:"questions,omitempty"`
}

// Convert withAnswers=false - вопросы без правильных ответов, для кандидата
func Convert(rec dbmodels.Test, withAnswers bool) TestView {
	result := TestView{
		ID:              rec.ID,
		CreatedAt:       rec.CreatedAt,
		VacancyID:       rec.VacancyID,
		Title:           rec.Title,
		Description:     rec.Description,
		Type:            rec.Type,
		ExternalURL:     rec.ExternalURL,
		DurationMinutes: rec.DurationMinutes,
		PassingScore:    rec.PassingScore,
		TotalPoints:     rec.TotalPoints,
		IsActive:        rec.IsActive,
		Deadline:        rec.Deadline,
	}
	for _, question := range rec.Questions.Questions {
		view := QuestionView{
			ID:      question.ID,
			Type:    question.Type,
			Text:    question.Text,
			Options: question.Options,
			Points:  question.Points,
		}
		if withAnswers {
			view.CorrectAnswer = question.CorrectAnswer
			if question.CorrectBool != nil {
				view.CorrectAnswer = strconv.FormatBool(*question.CorrectBool)
			}
			view.AcceptableAnswers = question.AcceptableAnswers
		}
		result.Questions = append(result.Questions, view)
	}
	return result
}

type AttemptView struct {
	ID                string                `json:"id"`
	TestID            string                `json:"test_id"`
	ApplicationID     string                `json:"application_id"`
	InvitedAt         time.Time             `json:"invited_at"`
	Deadline          time.Time             `json:"deadline"`
	Answers           []dbmodels.QuizAnswer `json:"answers,omitempty"`
	Score             *int                  `json:"score,omitempty"`
	Percentage        *float64              `json:"percentage,omitempty"`
	IsPassed          *bool                 `json:"is_passed,omitempty"`
	ExternalCompleted bool                  `json:"external_completed"`
	Notes             string                `json:"notes,omitempty"`
	CompletedAt       *time.Time            `json:"completed_at,omitempty"`
}

func ConvertAttempt(rec dbmodels.TestAttempt) AttemptView {
	return AttemptView{
		ID:                rec.ID,
		TestID:            rec.TestID,
		ApplicationID:     rec.ApplicationID,
		InvitedAt:         rec.InvitedAt,
		Deadline:          rec.Deadline,
		Answers:           rec.Answers.Answers,
		Score:             rec.Score,
		Percentage:        rec.Percentage,
		IsPassed:          rec.IsPassed,
		ExternalCompleted: rec.ExternalCompleted,
		Notes:             rec.Notes,
		CompletedAt:       rec.CompletedAt,
	}
}
