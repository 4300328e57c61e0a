package models

import "github.com/pkg/errors"

type Recommendation string

const (
	RecommendationStrongYes Recommendation = "STRONG_YES"
	RecommendationYes       Recommendation = "YES"
	RecommendationNeutral   Recommendation = "NEUTRAL"
	RecommendationNo        Recommendation = "NO"
	RecommendationStrongNo  Recommendation = "STRONG_NO"
)

var recommendationHumanName = map[Recommendation]string{
	RecommendationStrongYes: "Однозначно да",
	RecommendationYes:       "Да",
	RecommendationNeutral:   "Нейтрально",
	RecommendationNo:        "Нет",
	RecommendationStrongNo:  "Однозначно нет",
}

func (r Recommendation) ToHuman() string {
	if human, exist := recommendationHumanName[r]; exist {
		return human
	}
	return string(r)
}

// Validate пустая рекомендация допустима
func (r Recommendation) Validate() error {
	if r == "" {
		return nil
	}
	if _, exist := recommendationHumanName[r]; !exist {
		return errors.Errorf("неизвестная рекомендация: %v", r)
	}
	return nil
}

type SuggestedDecision string

const (
	SuggestedDecisionHire   SuggestedDecision = "HIRE"
	SuggestedDecisionReject SuggestedDecision = "REJECT"
	SuggestedDecisionHold   SuggestedDecision = "HOLD"
)

var suggestedDecisionHumanName = map[SuggestedDecision]string{
	SuggestedDecisionHire:   "Нанять",
	SuggestedDecisionReject: "Отказать",
	SuggestedDecisionHold:   "Отложить решение",
}

func (d SuggestedDecision) ToHuman() string {
	if human, exist := suggestedDecisionHumanName[d]; exist {
		return human
	}
	return string(d)
}

func (d SuggestedDecision) Validate() error {
	if _, exist := suggestedDecisionHumanName[d]; !exist {
		return errors.Errorf("неизвестное решение: %v", d)
	}
	return nil
}

const (
	MinRating = 1
	MaxRating = 10
)

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errors.Errorf("оценка должна быть в диапазоне от %d до %d", MinRating, MaxRating)
	}
	return nil
}
