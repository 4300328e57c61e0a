package models

import "github.com/pkg/errors"

type EntityType string

const (
	EntityApplication           EntityType = "application"
	EntityEvaluation            EntityType = "evaluation"
	EntityManagerRecommendation EntityType = "manager_recommendation"
	EntityInterview             EntityType = "interview"
	EntityTest                  EntityType = "test"
	EntityTestAttempt           EntityType = "test_attempt"
	EntityVacancy               EntityType = "vacancy"
)

func (e EntityType) Validate() error {
	switch e {
	case EntityApplication, EntityEvaluation, EntityManagerRecommendation, EntityInterview,
		EntityTest, EntityTestAttempt, EntityVacancy:
		return nil
	}
	return errors.Errorf("неизвестный тип сущности: %v", e)
}

type AuditAction string

const (
	AuditApplicationCreated    AuditAction = "application_created"
	AuditApplicationStatus     AuditAction = "application_status_changed"
	AuditApplicationWithdrawn  AuditAction = "application_withdrawn"
	AuditEvaluationCreated     AuditAction = "evaluation_created"
	AuditRecommendationCreated AuditAction = "manager_recommendation_created"
	AuditInterviewScheduled    AuditAction = "interview_scheduled"
	AuditInterviewRescheduled  AuditAction = "interview_rescheduled"
	AuditInterviewCancelled    AuditAction = "interview_cancelled"
	AuditInterviewersAssigned  AuditAction = "interviewers_assigned"
	AuditInterviewFeedback     AuditAction = "interview_feedback_submitted"
	AuditInterviewCompleted    AuditAction = "interview_completed"
	AuditTestCreated           AuditAction = "test_created"
	AuditTestDeactivated       AuditAction = "test_deactivated"
	AuditTestInvited           AuditAction = "test_invited"
	AuditTestSubmitted         AuditAction = "test_submitted"
	AuditTestExternalCompleted AuditAction = "test_external_completed"
	AuditVacancyCreated        AuditAction = "vacancy_created"
	AuditVacancyStatus         AuditAction = "vacancy_status_changed"
	AuditVacancyPublication    AuditAction = "vacancy_publication_changed"
)
