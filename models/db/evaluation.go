package dbmodels

import (
	"hr-pipeline-backend/models"
)

type Evaluation struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	EvaluatorID   string `gorm:"type:varchar(36);index"`
	// EvaluatorCapability роль, в которой выставлена оценка
	EvaluatorCapability models.Capability `gorm:"type:varchar(50)"`
	Rating              int               `gorm:"not null"`
	Strengths           string
	Weaknesses          string
	Comments            string
	Recommendation      models.Recommendation `gorm:"type:varchar(50)"`
}

type ManagerRecommendation struct {
	BaseModel
	ApplicationID     string                   `gorm:"type:varchar(36);index"`
	ManagerID         string                   `gorm:"type:varchar(36);index"`
	SuggestedDecision models.SuggestedDecision `gorm:"type:varchar(50)"`
	Comment           string
	IsConfidential    bool
}

// EvaluationSummary агрегат оценок по отклику
type EvaluationSummary struct {
	ApplicationID        string
	TotalEvaluations     int
	AverageRating        float64
	HighestRating        int
	LowestRating         int
	RecommendationCounts map[models.Recommendation]int
}
