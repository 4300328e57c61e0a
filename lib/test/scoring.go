package testhandler

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"math"
	"slices"
	"strconv"
	"strings"
)

type QuizResult struct {
	Answers    []dbmodels.QuizAnswer
	Score      int
	Total      int
	Percentage float64
	IsPassed   bool
}

// ScoreQuiz подсчет баллов. Результат зависит только от вопросов и ответов:
// на каждый вопрос учитывается первый ответ, ответы на неизвестные вопросы игнорируются
func ScoreQuiz(questions []dbmodels.TestQuestion, answers []dbmodels.QuizAnswer, passingScore float64) QuizResult {
	byQuestion := make(map[string]dbmodels.QuizAnswer, len(answers))
	for _, answer := range answers {
		if _, ok := byQuestion[answer.QuestionID]; !ok {
			byQuestion[answer.QuestionID] = answer
		}
	}
	result := QuizResult{
		Answers: make([]dbmodels.QuizAnswer, 0, len(questions)),
	}
	for _, question := range questions {
		result.Total += question.Points
		answer, ok := byQuestion[question.ID]
		if !ok {
			continue
		}
		if isCorrect(question, answer) {
			answer.Points = question.Points
			result.Score += question.Points
		} else {
			answer.Points = 0
		}
		result.Answers = append(result.Answers, answer)
	}
	// квиз без баллов проходится с порогом 0%
	if result.Total == 0 {
		result.IsPassed = true
		return result
	}
	exact := float64(result.Score) / float64(result.Total) * 100
	result.Percentage = math.Round(exact*100) / 100
	result.IsPassed = exact >= passingScore
	return result
}

func isCorrect(question dbmodels.TestQuestion, answer dbmodels.QuizAnswer) bool {
	switch question.Type {
	case models.QuestionTypeTrueFalse:
		if answer.Kind != models.AnswerKindBoolean || answer.Bool == nil || question.CorrectBool == nil {
			return false
		}
		return *answer.Bool == *question.CorrectBool
	case models.QuestionTypeMultipleChoice:
		value, ok := answerText(answer)
		return ok && sameText(value, question.CorrectAnswer)
	case models.QuestionTypeShortAnswer:
		value, ok := answerText(answer)
		if !ok {
			return false
		}
		if question.CorrectAnswer != "" && sameText(value, question.CorrectAnswer) {
			return true
		}
		return slices.ContainsFunc(question.AcceptableAnswers, func(acceptable string) bool {
			return sameText(value, acceptable)
		})
	}
	return false
}

// answerText текстовое представление ответа, числа сравниваются в канонической записи
func answerText(answer dbmodels.QuizAnswer) (string, bool) {
	switch answer.Kind {
	case models.AnswerKindText:
		return answer.Text, true
	case models.AnswerKindNumber:
		if answer.Number == nil {
			return "", false
		}
		return strconv.FormatFloat(*answer.Number, 'f', -1, 64), true
	}
	return "", false
}

func sameText(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
