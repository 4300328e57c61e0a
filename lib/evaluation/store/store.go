package evaluationstore

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Evaluation) (id string, err error)
	List(applicationID string) (list []dbmodels.Evaluation, err error)
	Stats(applicationID string) (dbmodels.EvaluationSummary, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Evaluation) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(applicationID string) (list []dbmodels.Evaluation, err error) {
	list = []dbmodels.Evaluation{}
	err = i.db.
		Model(&dbmodels.Evaluation{}).
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Stats пересчитывается при каждом вызове по всем оценкам отклика
func (i impl) Stats(applicationID string) (dbmodels.EvaluationSummary, error) {
	list, err := i.List(applicationID)
	if err != nil {
		return dbmodels.EvaluationSummary{}, err
	}
	return Summarize(applicationID, list), nil
}

func Summarize(applicationID string, list []dbmodels.Evaluation) dbmodels.EvaluationSummary {
	result := dbmodels.EvaluationSummary{
		ApplicationID:        applicationID,
		RecommendationCounts: map[models.Recommendation]int{},
	}
	if len(list) == 0 {
		return result
	}
	sum := 0
	result.LowestRating = list[0].Rating
	for _, rec := range list {
		sum += rec.Rating
		if rec.Rating > result.HighestRating {
			result.HighestRating = rec.Rating
		}
		if rec.Rating < result.LowestRating {
			result.LowestRating = rec.Rating
		}
		if rec.Recommendation != "" {
			result.RecommendationCounts[rec.Recommendation]++
		}
	}
	result.TotalEvaluations = len(list)
	result.AverageRating = float64(sum) / float64(len(list))
	return result
}
