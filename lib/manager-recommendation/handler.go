package managerrecommendationhandler

import (
	"context"
	"hr-pipeline-backend/db"
	applicationstore "hr-pipeline-backend/lib/application/store"
	managerrecommendationstore "hr-pipeline-backend/lib/manager-recommendation/store"
	sideeffects "hr-pipeline-backend/lib/side-effects"
	usersstore "hr-pipeline-backend/lib/users/store"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	evaluationapimodels "hr-pipeline-backend/models/api/evaluation"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, actor models.Actor, applicationID string, data evaluationapimodels.ManagerRecommendationData) (evaluationapimodels.ManagerRecommendationView, error)
	List(actor models.Actor, applicationID string) ([]evaluationapimodels.ManagerRecommendationView, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB, sideeffects.Instance)
}

func New(DB *gorm.DB, effects sideeffects.Provider) Provider {
	return impl{
		store:            managerrecommendationstore.NewInstance(DB),
		applicationStore: applicationstore.NewInstance(DB),
		userStore:        usersstore.NewInstance(DB),
		effects:          effects,
	}
}

type impl struct {
	store            managerrecommendationstore.Provider
	applicationStore applicationstore.Provider
	userStore        usersstore.Provider
	effects          sideeffects.Provider
}

func (i impl) Create(ctx context.Context, actor models.Actor, applicationID string, data evaluationapimodels.ManagerRecommendationData) (evaluationapimodels.ManagerRecommendationView, error) {
	logger := log.
		WithField("actor_id", actor.ID).
		WithField("application_id", applicationID)
	if !actor.Has(models.CapabilityManager) {
		return evaluationapimodels.ManagerRecommendationView{}, apperrors.Forbidden("рекомендацию может оставить только руководитель")
	}
	if err := data.Validate(); err != nil {
		return evaluationapimodels.ManagerRecommendationView{}, apperrors.Validation("%v", err)
	}
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения отклика")
		return evaluationapimodels.ManagerRecommendationView{}, errors.New("ошибка получения отклика")
	}
	if app == nil || app.Vacancy == nil {
		return evaluationapimodels.ManagerRecommendationView{}, apperrors.NotFound("отклик не найден")
	}
	if app.Vacancy.DepartmentID == nil {
		return evaluationapimodels.ManagerRecommendationView{}, apperrors.Forbidden("вакансия не привязана к подразделению")
	}
	department, err := i.userStore.GetDepartment(*app.Vacancy.DepartmentID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения подразделения")
		return evaluationapimodels.ManagerRecommendationView{}, errors.New("ошибка получения подразделения")
	}
	if department == nil || department.ManagerID != actor.ID {
		return evaluationapimodels.ManagerRecommendationView{}, apperrors.Forbidden("рекомендацию может оставить только руководитель подразделения вакансии")
	}
	rec := dbmodels.ManagerRecommendation{
		ApplicationID:     applicationID,
		ManagerID:         actor.ID,
		SuggestedDecision: data.SuggestedDecision,
		Comment:           data.Comment,
		IsConfidential:    data.IsConfidential,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения рекомендации")
		return evaluationapimodels.ManagerRecommendationView{}, errors.New("ошибка сохранения рекомендации")
	}
	rec.ID = id
	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditRecommendationCreated,
		EntityType: models.EntityManagerRecommendation,
		EntityID:   id,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Добавлена рекомендация руководителя",
			Data: []dbmodels.FieldChanges{
				{Field: "application_id", NewValue: applicationID},
				{Field: "suggested_decision", NewValue: data.SuggestedDecision},
				{Field: "is_confidential", NewValue: data.IsConfidential},
			},
		},
	})
	return evaluationapimodels.ConvertRecommendation(rec), nil
}

func (i impl) List(actor models.Actor, applicationID string) ([]evaluationapimodels.ManagerRecommendationView, error) {
	if !actor.Capabilities.IsStaff() {
		return nil, apperrors.Forbidden("нет доступа к рекомендациям")
	}
	withConfidential := actor.Capabilities.HasAny(models.CapabilityManager, models.CapabilityAdmin)
	list, err := i.store.List(applicationID, withConfidential)
	if err != nil {
		log.WithField("application_id", applicationID).WithError(err).Error("ошибка получения рекомендаций")
		return nil, errors.New("ошибка получения рекомендаций")
	}
	result := make([]evaluationapimodels.ManagerRecommendationView, 0, len(list))
	for _, rec := range list {
		result = append(result, evaluationapimodels.ConvertRecommendation(rec))
	}
	return result, nil
}
