package vacancyhandler

import (
	"context"
	"hr-pipeline-backend/db"
	sideeffects "hr-pipeline-backend/lib/side-effects"
	usersstore "hr-pipeline-backend/lib/users/store"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	vacancystore "hr-pipeline-backend/lib/vacancy/store"
	"hr-pipeline-backend/models"
	vacancyapimodels "hr-pipeline-backend/models/api/vacancy"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, actor models.Actor, data vacancyapimodels.VacancyData) (id string, err error)
	GetByID(actor models.Actor, id string) (vacancyapimodels.VacancyView, error)
	List(actor models.Actor, filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, int64, error)
	ChangeStatus(ctx context.Context, actor models.Actor, id string, status models.VacancyStatus) error
	Publish(ctx context.Context, actor models.Actor, id string, isPublished bool) error
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB, sideeffects.Instance)
}

func New(DB *gorm.DB, effects sideeffects.Provider) Provider {
	return impl{
		db:        DB,
		store:     vacancystore.NewInstance(DB),
		userStore: usersstore.NewInstance(DB),
		effects:   effects,
	}
}

type impl struct {
	db        *gorm.DB
	store     vacancystore.Provider
	userStore usersstore.Provider
	effects   sideeffects.Provider
}

func (i impl) getLogger(actor models.Actor, vacancyID string) *log.Entry {
	logger := log.WithField("actor_id", actor.ID)
	if vacancyID != "" {
		logger = logger.WithField("vacancy_id", vacancyID)
	}
	return logger
}

func (i impl) Create(ctx context.Context, actor models.Actor, data vacancyapimodels.VacancyData) (id string, err error) {
	if !actor.Capabilities.CanManagePipeline() {
		return "", apperrors.Forbidden("создавать вакансии может только рекрутер или администратор")
	}
	logger := i.getLogger(actor, "")
	rec := dbmodels.Vacancy{
		Title:       data.Title,
		Description: data.Description,
		AuthorID:    actor.ID,
		Status:      models.VacancyStatusDraft,
	}
	if data.DepartmentID != "" {
		department, err := i.userStore.GetDepartment(data.DepartmentID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения подразделения")
			return "", errors.New("ошибка получения подразделения")
		}
		if department == nil {
			return "", apperrors.NotFound("подразделение не найдено")
		}
		rec.DepartmentID = &department.ID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания вакансии")
		return "", errors.New("ошибка создания вакансии")
	}
	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditVacancyCreated,
		EntityType: models.EntityVacancy,
		EntityID:   id,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Создана вакансия",
			Data: []dbmodels.FieldChanges{
				{Field: "title", NewValue: rec.Title},
				{Field: "status", NewValue: rec.Status},
			},
		},
	})
	return id, nil
}

func (i impl) GetByID(actor models.Actor, id string) (vacancyapimodels.VacancyView, error) {
	rec, err := i.get(actor, id)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	if !actor.Capabilities.IsStaff() && !rec.IsPublished {
		return vacancyapimodels.VacancyView{}, apperrors.NotFound("вакансия не найдена")
	}
	return vacancyapimodels.Convert(*rec), nil
}

func (i impl) List(actor models.Actor, filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, int64, error) {
	logger := i.getLogger(actor, "")
	onlyPublished := !actor.Capabilities.IsStaff()
	rowCount, err := i.store.ListCount(filter, onlyPublished)
	if err != nil {
		logger.WithError(err).Error("ошибка получения количества вакансий")
		return nil, 0, errors.New("ошибка получения количества вакансий")
	}
	page, limit := filter.GetPage()
	if int64((page-1)*limit) > rowCount {
		return []vacancyapimodels.VacancyView{}, rowCount, nil
	}
	list, err := i.store.List(filter, onlyPublished)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка вакансий")
		return nil, 0, errors.New("ошибка получения списка вакансий")
	}
	result := make([]vacancyapimodels.VacancyView, 0, len(list))
	for _, rec := range list {
		result = append(result, vacancyapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ChangeStatus(ctx context.Context, actor models.Actor, id string, status models.VacancyStatus) error {
	if !actor.Capabilities.CanManagePipeline() {
		return apperrors.Forbidden("менять статус вакансии может только рекрутер или администратор")
	}
	rec, err := i.get(actor, id)
	if err != nil {
		return err
	}
	if rec.Status == status {
		return nil
	}
	if !rec.Status.IsAllowChange(status) {
		return apperrors.InvalidTransition(nil, "смена статуса вакансии с '%v' на '%v' недопустима", rec.Status.ToHuman(), status.ToHuman())
	}
	err = i.store.Update(id, map[string]interface{}{"status": status})
	if err != nil {
		i.getLogger(actor, id).WithError(err).Error("ошибка смены статуса вакансии")
		return errors.New("ошибка смены статуса вакансии")
	}
	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditVacancyStatus,
		EntityType: models.EntityVacancy,
		EntityID:   id,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Изменен статус вакансии",
			Data:        []dbmodels.FieldChanges{{Field: "status", OldValue: rec.Status, NewValue: status}},
		},
	})
	return nil
}

func (i impl) Publish(ctx context.Context, actor models.Actor, id string, isPublished bool) error {
	if !actor.Capabilities.CanManagePipeline() {
		return apperrors.Forbidden("публиковать вакансии может только рекрутер или администратор")
	}
	rec, err := i.get(actor, id)
	if err != nil {
		return err
	}
	if rec.IsPublished == isPublished {
		return nil
	}
	if isPublished && rec.Status != models.VacancyStatusOpen {
		return apperrors.RuleViolation("опубликовать можно только открытую вакансию")
	}
	err = i.store.Update(id, map[string]interface{}{"is_published": isPublished})
	if err != nil {
		i.getLogger(actor, id).WithError(err).Error("ошибка публикации вакансии")
		return errors.New("ошибка публикации вакансии")
	}
	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditVacancyPublication,
		EntityType: models.EntityVacancy,
		EntityID:   id,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Изменена публикация вакансии",
			Data:        []dbmodels.FieldChanges{{Field: "is_published", OldValue: rec.IsPublished, NewValue: isPublished}},
		},
	})
	return nil
}

func (i impl) get(actor models.Actor, id string) (*dbmodels.Vacancy, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		i.getLogger(actor, id).WithError(err).Error("ошибка получения вакансии")
		return nil, errors.New("ошибка получения вакансии")
	}
	if rec == nil {
		return nil, apperrors.NotFound("вакансия не найдена")
	}
	return rec, nil
}
