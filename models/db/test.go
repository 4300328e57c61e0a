package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"hr-pipeline-backend/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type Test struct {
	BaseModel
	VacancyID       string `gorm:"type:varchar(36);index"`
	Title           string `gorm:"type:varchar(255)"`
	Description     string
	Type            models.TestType `gorm:"type:varchar(50)"`
	ExternalURL     string
	DurationMinutes *int
	PassingScore    *float64
	Questions       TestQuestions
	TotalPoints     int
	IsActive        bool
	Deadline        *time.Time
	CreatedBy       string `gorm:"type:varchar(36)"`
}

type TestQuestions struct {
	Questions []TestQuestion `json:"questions"`
}

type TestQuestion struct {
	ID                string              `json:"id"`
	Type              models.QuestionType `json:"type"`
	Text              string              `json:"text"`
	Options           []string            `json:"options,omitempty"`
	CorrectAnswer     string              `json:"correct_answer,omitempty"`
	CorrectBool       *bool               `json:"correct_bool,omitempty"`
	AcceptableAnswers []string            `json:"acceptable_answers,omitempty"`
	Points            int                 `json:"points"`
}

func (j TestQuestions) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *TestQuestions) Scan(value interface{}) error {
	return scanJSON(value, j)
}

func (TestQuestions) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonDBDataType(db)
}

type TestAttempt struct {
	BaseModel
	TestID            string `gorm:"type:varchar(36);uniqueIndex:idx_attempt_test_application"`
	Test              *Test  `gorm:"foreignKey:TestID"`
	ApplicationID     string `gorm:"type:varchar(36);uniqueIndex:idx_attempt_test_application;index"`
	InvitedAt         time.Time
	Deadline          time.Time
	Answers           AttemptAnswers
	Score             *int
	Percentage        *float64
	IsPassed          *bool
	ExternalCompleted bool
	Notes             string
	CompletedAt       *time.Time
}

func (a TestAttempt) IsCompleted() bool {
	return a.CompletedAt != nil
}

type AttemptAnswers struct {
	Answers []QuizAnswer `json:"answers"`
}

// QuizAnswer ответ кандидата, заполняется одно из значений по Kind
type QuizAnswer struct {
	QuestionID string            `json:"question_id"`
	Kind       models.AnswerKind `json:"kind"`
	Text       string            `json:"text,omitempty"`
	Number     *float64          `json:"number,omitempty"`
	Bool       *bool             `json:"bool,omitempty"`
	Points     int               `json:"points"` // начисленные баллы
}

func (j AttemptAnswers) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *AttemptAnswers) Scan(value interface{}) error {
	return scanJSON(value, j)
}

func (AttemptAnswers) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonDBDataType(db)
}
