package models

import "github.com/pkg/errors"

type TestType string

const (
	TestTypeExternalLink TestType = "EXTERNAL_LINK"
	TestTypeInternalQuiz TestType = "INTERNAL_QUIZ"
)

func (t TestType) Validate() error {
	switch t {
	case TestTypeExternalLink, TestTypeInternalQuiz:
		return nil
	}
	return errors.Errorf("неизвестный тип теста: %v", t)
}

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionTypeTrueFalse      QuestionType = "TRUE_FALSE"
	QuestionTypeShortAnswer    QuestionType = "SHORT_ANSWER"
)

func (t QuestionType) Validate() error {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeTrueFalse, QuestionTypeShortAnswer:
		return nil
	}
	return errors.Errorf("неизвестный тип вопроса: %v", t)
}

// AnswerKind тип значения в ответе кандидата
type AnswerKind string

const (
	AnswerKindText    AnswerKind = "TEXT"
	AnswerKindNumber  AnswerKind = "NUMBER"
	AnswerKindBoolean AnswerKind = "BOOLEAN"
)

func (k AnswerKind) Validate() error {
	switch k {
	case AnswerKindText, AnswerKindNumber, AnswerKindBoolean:
		return nil
	}
	return errors.Errorf("неизвестный тип ответа: %v", k)
}

// DefaultTestDeadlineDays срок прохождения теста, если у теста не задан свой
const DefaultTestDeadlineDays = 7
