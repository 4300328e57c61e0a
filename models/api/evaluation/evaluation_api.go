package evaluationapimodels

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type EvaluationData struct {
	Capability     models.Capability     `json:"capability"`     // Роль, в которой выставляется оценка (recruiter, interviewer, manager, admin)
	Rating         int                   `json:"rating"`         // Оценка 1-10
	Strengths      string                `json:"strengths"`      // Сильные стороны
	Weaknesses     string                `json:"weaknesses"`     // Слабые стороны
	Comments       string                `json:"comments"`       // Комментарий
	Recommendation models.Recommendation `json:"recommendation"` // Рекомендация
}

func (r EvaluationData) Validate() error {
	if r.Capability != "" {
		if err := r.Capability.Validate(); err != nil {
			return err
		}
	}
	if err := models.ValidateRating(r.Rating); err != nil {
		return err
	}
	return r.Recommendation.Validate()
}

type EvaluationView struct {
	ID                  string                `json:"id"`
	CreatedAt           time.Time             `json:"created_at"`
	ApplicationID       string                `json:"application_id"`
	EvaluatorID         string                `json:"evaluator_id"`
	EvaluatorCapability models.Capability     `json:"evaluator_capability"`
	Rating              int                   `json:"rating"`
	Strengths           string                `json:"strengths"`
	Weaknesses          string                `json:"weaknesses"`
	Comments            string                `json:"comments"`
	Recommendation      models.Recommendation `json:"recommendation"`
}

func Convert(rec dbmodels.Evaluation) EvaluationView {
	return EvaluationView{
		ID:                  rec.ID,
		CreatedAt:           rec.CreatedAt,
		ApplicationID:       rec.ApplicationID,
		EvaluatorID:         rec.EvaluatorID,
		EvaluatorCapability: rec.EvaluatorCapability,
		Rating:              rec.Rating,
		Strengths:           rec.Strengths,
		Weaknesses:          rec.Weaknesses,
		Comments:            rec.Comments,
		Recommendation:      rec.Recommendation,
	}
}

type StatsView struct {
	ApplicationID        string                        `json:"application_id"`
	TotalEvaluations     int                           `json:"total_evaluations"`
	AverageRating        float64                       `json:"average_rating"`
	HighestRating        int                           `json:"highest_rating"`
	LowestRating         int                           `json:"lowest_rating"`
	RecommendationCounts map[models.Recommendation]int `json:"recommendation_counts"`
	OfferAllowed         bool                          `json:"offer_allowed"` // выполнено условие по оценкам для оффера
}

func ConvertStats(rec dbmodels.EvaluationSummary) StatsView {
	return StatsView{
		ApplicationID:        rec.ApplicationID,
		TotalEvaluations:     rec.TotalEvaluations,
		AverageRating:        rec.AverageRating,
		HighestRating:        rec.HighestRating,
		LowestRating:         rec.LowestRating,
		RecommendationCounts: rec.RecommendationCounts,
		OfferAllowed:         rec.TotalEvaluations > 0 && rec.AverageRating >= models.MinOfferRating,
	}
}

type ManagerRecommendationData struct {
	SuggestedDecision models.SuggestedDecision `json:"suggested_decision"` // Предлагаемое решение HIRE/REJECT/HOLD
	Comment           string                   `json:"comment"`            // Обоснование
	IsConfidential    bool                     `json:"is_confidential"`    // Видно только руководителям и администраторам
}

func (r ManagerRecommendationData) Validate() error {
	if err := r.SuggestedDecision.Validate(); err != nil {
		return err
	}
	if r.Comment == "" {
		return errors.New("не указано обоснование решения")
	}
	return nil
}

type ManagerRecommendationView struct {
	ID                string                   `json:"id"`
	CreatedAt         time.Time                `json:"created_at"`
	ApplicationID     string                   `json:"application_id"`
	ManagerID         string                   `json:"manager_id"`
	SuggestedDecision models.SuggestedDecision `json:"suggested_decision"`
	Comment           string                   `json:"comment"`
	IsConfidential    bool                     `json:"is_confidential"`
}

func ConvertRecommendation(rec dbmodels.ManagerRecommendation) ManagerRecommendationView {
	return ManagerRecommendationView{
		ID:                rec.ID,
		CreatedAt:         rec.CreatedAt,
		ApplicationID:     rec.ApplicationID,
		ManagerID:         rec.ManagerID,
		SuggestedDecision: rec.SuggestedDecision,
		Comment:           rec.Comment,
		IsConfidential:    rec.IsConfidential,
	}
}
