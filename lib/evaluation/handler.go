package evaluationhandler

import (
	"context"
	"hr-pipeline-backend/db"
	applicationstore "hr-pipeline-backend/lib/application/store"
	evaluationstore "hr-pipeline-backend/lib/evaluation/store"
	assignmentstore "hr-pipeline-backend/lib/interview/assignment-store"
	sideeffects "hr-pipeline-backend/lib/side-effects"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	evaluationapimodels "hr-pipeline-backend/models/api/evaluation"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, actor models.Actor, applicationID string, data evaluationapimodels.EvaluationData) (evaluationapimodels.EvaluationView, error)
	List(actor models.Actor, applicationID string) ([]evaluationapimodels.EvaluationView, error)
	Stats(actor models.Actor, applicationID string) (evaluationapimodels.StatsView, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB, sideeffects.Instance)
}

func New(DB *gorm.DB, effects sideeffects.Provider) Provider {
	return impl{
		store:            evaluationstore.NewInstance(DB),
		applicationStore: applicationstore.NewInstance(DB),
		assignmentStore:  assignmentstore.NewInstance(DB),
		effects:          effects,
	}
}

type impl struct {
	store            evaluationstore.Provider
	applicationStore applicationstore.Provider
	assignmentStore  assignmentstore.Provider
	effects          sideeffects.Provider
}

func (i impl) getLogger(actor models.Actor, applicationID string) *log.Entry {
	return log.
		WithField("actor_id", actor.ID).
		WithField("application_id", applicationID)
}

// evaluatorCapability роль, в которой оценивает пользователь. Без явного указания
// выбирается самая широкая из имеющихся
func evaluatorCapability(actor models.Actor, requested models.Capability) (models.Capability, error) {
	if requested != "" {
		if !actor.Has(requested) {
			return "", apperrors.Forbidden("у пользователя нет роли '%v'", requested.ToHuman())
		}
		switch requested {
		case models.CapabilityRecruiter, models.CapabilityAdmin, models.CapabilityInterviewer, models.CapabilityManager:
			return requested, nil
		}
		return "", apperrors.Forbidden("роль '%v' не может оценивать кандидатов", requested.ToHuman())
	}
	for _, capability := range []models.Capability{models.CapabilityAdmin, models.CapabilityRecruiter, models.CapabilityManager, models.CapabilityInterviewer} {
		if actor.Has(capability) {
			return capability, nil
		}
	}
	return "", apperrors.Forbidden("оценивать кандидатов могут только рекрутеры и интервьюеры")
}

func (i impl) Create(ctx context.Context, actor models.Actor, applicationID string, data evaluationapimodels.EvaluationData) (evaluationapimodels.EvaluationView, error) {
	logger := i.getLogger(actor, applicationID)
	capability, err := evaluatorCapability(actor, data.Capability)
	if err != nil {
		return evaluationapimodels.EvaluationView{}, err
	}
	if err = models.ValidateRating(data.Rating); err != nil {
		return evaluationapimodels.EvaluationView{}, apperrors.Validation("%v", err)
	}
	if err = data.Recommendation.Validate(); err != nil {
		return evaluationapimodels.EvaluationView{}, apperrors.Validation("%v", err)
	}
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения отклика")
		return evaluationapimodels.EvaluationView{}, errors.New("ошибка получения отклика")
	}
	if app == nil {
		return evaluationapimodels.EvaluationView{}, apperrors.NotFound("отклик не найден")
	}
	if capability == models.CapabilityInterviewer || capability == models.CapabilityManager {
		assigned, err := i.assignmentStore.ExistsForApplication(applicationID, actor.ID)
		if err != nil {
			logger.WithError(err).Error("ошибка проверки назначения интервьюера")
			return evaluationapimodels.EvaluationView{}, errors.New("ошибка проверки назначения интервьюера")
		}
		if !assigned {
			return evaluationapimodels.EvaluationView{}, apperrors.Forbidden("интервьюер может оценивать только кандидатов своих собеседований")
		}
	}
	rec := dbmodels.Evaluation{
		ApplicationID:       applicationID,
		EvaluatorID:         actor.ID,
		EvaluatorCapability: capability,
		Rating:              data.Rating,
		Strengths:           data.Strengths,
		Weaknesses:          data.Weaknesses,
		Comments:            data.Comments,
		Recommendation:      data.Recommendation,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения оценки")
		return evaluationapimodels.EvaluationView{}, errors.New("ошибка сохранения оценки")
	}
	rec.ID = id
	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditEvaluationCreated,
		EntityType: models.EntityEvaluation,
		EntityID:   id,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Добавлена оценка кандидата",
			Data: []dbmodels.FieldChanges{
				{Field: "application_id", NewValue: applicationID},
				{Field: "rating", NewValue: data.Rating},
				{Field: "recommendation", NewValue: data.Recommendation},
			},
		},
	})
	return evaluationapimodels.Convert(rec), nil
}

func (i impl) List(actor models.Actor, applicationID string) ([]evaluationapimodels.EvaluationView, error) {
	if !actor.Capabilities.IsStaff() {
		return nil, apperrors.Forbidden("нет доступа к оценкам")
	}
	list, err := i.store.List(applicationID)
	if err != nil {
		i.getLogger(actor, applicationID).WithError(err).Error("ошибка получения оценок")
		return nil, errors.New("ошибка получения оценок")
	}
	result := make([]evaluationapimodels.EvaluationView, 0, len(list))
	for _, rec := range list {
		result = append(result, evaluationapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) Stats(actor models.Actor, applicationID string) (evaluationapimodels.StatsView, error) {
	if !actor.Capabilities.IsStaff() {
		return evaluationapimodels.StatsView{}, apperrors.Forbidden("нет доступа к оценкам")
	}
	stats, err := i.store.Stats(applicationID)
	if err != nil {
		i.getLogger(actor, applicationID).WithError(err).Error("ошибка расчета статистики оценок")
		return evaluationapimodels.StatsView{}, errors.New("ошибка расчета статистики оценок")
	}
	return evaluationapimodels.ConvertStats(stats), nil
}
