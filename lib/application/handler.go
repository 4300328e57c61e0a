package applicationhandler

import (
	"context"
	"hr-pipeline-backend/config"
	"hr-pipeline-backend/db"
	applicationstore "hr-pipeline-backend/lib/application/store"
	cvstorage "hr-pipeline-backend/lib/cv-storage"
	evaluationstore "hr-pipeline-backend/lib/evaluation/store"
	notificationhandler "hr-pipeline-backend/lib/notification"
	sideeffects "hr-pipeline-backend/lib/side-effects"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/lib/utils/lock"
	vacancystore "hr-pipeline-backend/lib/vacancy/store"
	"hr-pipeline-backend/models"
	applicationapimodels "hr-pipeline-backend/models/api/application"
	dbmodels "hr-pipeline-backend/models/db"
	"io"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Provider interface {
	Apply(ctx context.Context, actor models.Actor, vacancyID string, data applicationapimodels.ApplyRequest) (applicationapimodels.ApplicationView, error)
	Withdraw(ctx context.Context, actor models.Actor, applicationID, reason string) (applicationapimodels.ApplicationView, error)
	UpdateStatus(ctx context.Context, actor models.Actor, applicationID string, newStatus models.ApplicationStatus, notes string) (applicationapimodels.ApplicationView, error)
	GetByID(actor models.Actor, applicationID string) (applicationapimodels.ApplicationView, error)
	ListByVacancy(actor models.Actor, vacancyID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error)
	ListMine(actor models.Actor, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error)
	UploadCV(ctx context.Context, actor models.Actor, fileName string, fileReader io.Reader, fileSize int64, contentType string) (string, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB, sideeffects.Instance, cvstorage.Instance, time.Duration(config.Conf.Pipeline.LockWaitMs)*time.Millisecond)
}

func New(DB *gorm.DB, effects sideeffects.Provider, cvStorage cvstorage.Provider, lockWait time.Duration) Provider {
	return impl{
		db:           DB,
		store:        applicationstore.NewInstance(DB),
		vacancyStore: vacancystore.NewInstance(DB),
		effects:      effects,
		cvStorage:    cvStorage,
		lockWait:     lockWait,
	}
}

type impl struct {
	db           *gorm.DB
	store        applicationstore.Provider
	vacancyStore vacancystore.Provider
	effects      sideeffects.Provider
	cvStorage    cvstorage.Provider
	lockWait     time.Duration
}

func (i impl) getLogger(actor models.Actor, applicationID string) *log.Entry {
	logger := log.WithField("actor_id", actor.ID)
	if applicationID != "" {
		logger = logger.WithField("application_id", applicationID)
	}
	return logger
}

func (i impl) Apply(ctx context.Context, actor models.Actor, vacancyID string, data applicationapimodels.ApplyRequest) (applicationapimodels.ApplicationView, error) {
	if !actor.Has(models.CapabilityApplicant) {
		return applicationapimodels.ApplicationView{}, apperrors.Forbidden("откликнуться на вакансию может только кандидат")
	}
	if err := data.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, apperrors.Validation("%v", err)
	}
	logger := i.getLogger(actor, "").WithField("vacancy_id", vacancyID)
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансии")
		return applicationapimodels.ApplicationView{}, errors.New("ошибка получения вакансии")
	}
	if vacancy == nil {
		return applicationapimodels.ApplicationView{}, apperrors.NotFound("вакансия не найдена")
	}
	if !vacancy.IsAcceptingApplications() {
		return applicationapimodels.ApplicationView{}, apperrors.RuleViolation("вакансия не принимает отклики")
	}
	existed, err := i.store.FindByVacancyAndApplicant(vacancyID, actor.ID)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки существующего отклика")
		return applicationapimodels.ApplicationView{}, errors.New("ошибка проверки существующего отклика")
	}
	if existed != nil {
		return applicationapimodels.ApplicationView{}, apperrors.Conflict("вы уже откликнулись на эту вакансию")
	}
	if data.CVFileRef != "" {
		if i.cvStorage == nil {
			return applicationapimodels.ApplicationView{}, errors.New("хранилище резюме не настроено")
		}
		found, err := i.cvStorage.Exists(ctx, actor.ID, data.CVFileRef)
		if err != nil {
			logger.WithError(err).Error("ошибка проверки файла резюме")
			return applicationapimodels.ApplicationView{}, errors.New("ошибка проверки файла резюме")
		}
		if !found {
			return applicationapimodels.ApplicationView{}, apperrors.NotFound("файл резюме не найден")
		}
	}
	rec := dbmodels.Application{
		VacancyID:        vacancyID,
		ApplicantID:      actor.ID,
		Status:           models.ApplicationStatusApplied,
		MotivationLetter: data.MotivationLetter,
		CVFileRef:        data.CVFileRef,
		Version:          1,
	}
	if len(data.StructuredCV) != 0 {
		rec.StructuredCV = datatypes.JSON(data.StructuredCV)
	}
	id, err := i.store.Create(rec)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return applicationapimodels.ApplicationView{}, apperrors.Conflict("вы уже откликнулись на эту вакансию")
		}
		logger.WithError(err).Error("ошибка создания отклика")
		return applicationapimodels.ApplicationView{}, errors.New("ошибка создания отклика")
	}
	rec.ID = id
	rec.Vacancy = vacancy

	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditApplicationCreated,
		EntityType: models.EntityApplication,
		EntityID:   id,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Кандидат откликнулся на вакансию",
			Data: []dbmodels.FieldChanges{
				{Field: "vacancy_id", NewValue: vacancyID},
				{Field: "status", NewValue: rec.Status},
			},
		},
	})
	i.effects.Notify(notificationhandler.Request{
		SenderID:    &actor.ID,
		ReceiverIDs: []string{vacancy.AuthorID},
		Data:        models.GetNotifyApplicationReceived(vacancy.Title),
		Metadata:    map[string]any{"application_id": id, "vacancy_id": vacancyID},
	})
	return applicationapimodels.Convert(rec), nil
}

func (i impl) Withdraw(ctx context.Context, actor models.Actor, applicationID, reason string) (applicationapimodels.ApplicationView, error) {
	logger := i.getLogger(actor, applicationID)
	var result dbmodels.Application
	var from models.ApplicationStatus
	err := lock.Do(ctx, lock.ApplicationKey(applicationID), i.lockWait, func() error {
		return i.db.Transaction(func(tx *gorm.DB) error {
			store := applicationstore.NewInstance(tx)
			app, err := store.GetForUpdate(applicationID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения отклика")
			}
			if app == nil {
				return apperrors.NotFound("отклик не найден")
			}
			if app.ApplicantID != actor.ID {
				return apperrors.Forbidden("отозвать отклик может только сам кандидат")
			}
			if !app.Status.CanWithdraw() {
				return apperrors.AlreadyInTerminalState("отклик уже в финальном статусе '%v'", app.Status.ToHuman())
			}
			err = store.UpdateVersioned(app.ID, app.Version, map[string]interface{}{
				"status":          models.ApplicationStatusWithdrawn,
				"withdraw_reason": reason,
			})
			if err != nil {
				return versionError(err)
			}
			from = app.Status
			app.Status = models.ApplicationStatusWithdrawn
			app.WithdrawReason = reason
			app.Version++
			result = *app
			return nil
		})
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, i.internalError(logger, err, "ошибка отзыва отклика")
	}
	vacancy := i.loadVacancy(logger, result.VacancyID)
	result.Vacancy = vacancy

	audit := StatusChangeAudit(actor, applicationID, from, models.ApplicationStatusWithdrawn, "Кандидат отозвал отклик")
	audit.Action = models.AuditApplicationWithdrawn
	audit.Changes.Data = append(audit.Changes.Data, dbmodels.FieldChanges{Field: "withdraw_reason", NewValue: reason})
	i.effects.Audit(audit)
	if vacancy != nil {
		i.effects.Notify(notificationhandler.Request{
			SenderID:    &actor.ID,
			ReceiverIDs: []string{vacancy.AuthorID},
			Data:        models.GetNotifyApplicationWithdrawn(vacancy.Title, reason),
			Metadata:    map[string]any{"application_id": applicationID, "vacancy_id": vacancy.ID},
		})
	}
	return applicationapimodels.Convert(result), nil
}

func (i impl) UpdateStatus(ctx context.Context, actor models.Actor, applicationID string, newStatus models.ApplicationStatus, notes string) (applicationapimodels.ApplicationView, error) {
	if !actor.Capabilities.CanManagePipeline() {
		return applicationapimodels.ApplicationView{}, apperrors.Forbidden("менять статус отклика может только рекрутер или администратор")
	}
	if err := newStatus.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, apperrors.Validation("%v", err)
	}
	logger := i.getLogger(actor, applicationID).WithField("new_status", newStatus)
	var result dbmodels.Application
	var from models.ApplicationStatus
	changed := false
	err := lock.Do(ctx, lock.ApplicationKey(applicationID), i.lockWait, func() error {
		return i.db.Transaction(func(tx *gorm.DB) error {
			store := applicationstore.NewInstance(tx)
			app, err := store.GetForUpdate(applicationID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения отклика")
			}
			if app == nil {
				return apperrors.NotFound("отклик не найден")
			}
			from = app.Status
			result = *app
			if app.Status == newStatus {
				return nil
			}
			if !app.Status.IsAllowChange(newStatus) {
				return transitionError(app.Status, newStatus)
			}
			stats, err := evaluationstore.NewInstance(tx).Stats(app.ID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения оценок отклика")
			}
			if err = CheckRuleGate(app.Status, newStatus, stats); err != nil {
				return err
			}
			updMap := map[string]interface{}{
				"status": newStatus,
			}
			if notes != "" {
				updMap["notes"] = notes
			}
			if err = store.UpdateVersioned(app.ID, app.Version, updMap); err != nil {
				return versionError(err)
			}
			result.Status = newStatus
			if notes != "" {
				result.Notes = notes
			}
			result.Version++
			changed = true
			return nil
		})
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, i.internalError(logger, err, "ошибка смены статуса отклика")
	}
	vacancy := i.loadVacancy(logger, result.VacancyID)
	result.Vacancy = vacancy
	if !changed {
		return applicationapimodels.Convert(result), nil
	}

	audit := StatusChangeAudit(actor, applicationID, from, newStatus, "Изменен статус отклика")
	if notes != "" {
		audit.Changes.Data = append(audit.Changes.Data, dbmodels.FieldChanges{Field: "notes", NewValue: notes})
	}
	i.effects.Audit(audit)
	// кандидат узнает о решении, даже если вакансию не удалось прочитать
	vacancyTitle := unknownVacancyTitle
	if vacancy != nil {
		vacancyTitle = vacancy.Title
	}
	if data, ok := models.GetNotifyApplicationDecision(vacancyTitle, newStatus); ok {
		i.effects.Notify(notificationhandler.Request{
			SenderID:    &actor.ID,
			ReceiverIDs: []string{result.ApplicantID},
			Data:        data,
			Metadata:    map[string]any{"application_id": applicationID, "status": newStatus},
		})
	}
	return applicationapimodels.Convert(result), nil
}

func (i impl) GetByID(actor models.Actor, applicationID string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		i.getLogger(actor, applicationID).WithError(err).Error("ошибка получения отклика")
		return applicationapimodels.ApplicationView{}, errors.New("ошибка получения отклика")
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, apperrors.NotFound("отклик не найден")
	}
	if rec.ApplicantID != actor.ID && !actor.Capabilities.IsStaff() {
		return applicationapimodels.ApplicationView{}, apperrors.Forbidden("нет доступа к отклику")
	}
	return applicationapimodels.Convert(*rec), nil
}

func (i impl) ListByVacancy(actor models.Actor, vacancyID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	if !actor.Capabilities.IsStaff() {
		return nil, 0, apperrors.Forbidden("нет доступа к откликам вакансии")
	}
	return i.list(actor, dbmodels.ApplicationFilter{VacancyID: vacancyID, Status: filter.Status}, filter)
}

func (i impl) ListMine(actor models.Actor, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	return i.list(actor, dbmodels.ApplicationFilter{ApplicantID: actor.ID, Status: filter.Status}, filter)
}

func (i impl) UploadCV(ctx context.Context, actor models.Actor, fileName string, fileReader io.Reader, fileSize int64, contentType string) (string, error) {
	if !actor.Has(models.CapabilityApplicant) {
		return "", apperrors.Forbidden("загрузить резюме может только кандидат")
	}
	if i.cvStorage == nil {
		return "", errors.New("хранилище резюме не настроено")
	}
	ref, err := i.cvStorage.Upload(ctx, actor.ID, fileName, fileReader, fileSize, contentType)
	if err != nil {
		i.getLogger(actor, "").WithError(err).Error("ошибка загрузки резюме")
		return "", errors.New("ошибка загрузки резюме")
	}
	return ref, nil
}

func (i impl) list(actor models.Actor, dbFilter dbmodels.ApplicationFilter, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	logger := i.getLogger(actor, "")
	rowCount, err := i.store.ListCount(dbFilter)
	if err != nil {
		logger.WithError(err).Error("ошибка получения количества откликов")
		return nil, 0, errors.New("ошибка получения количества откликов")
	}
	dbFilter.Page, dbFilter.Limit = filter.GetPage()
	if int64((dbFilter.Page-1)*dbFilter.Limit) > rowCount {
		return []applicationapimodels.ApplicationView{}, rowCount, nil
	}
	list, err := i.store.List(dbFilter)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка откликов")
		return nil, 0, errors.New("ошибка получения списка откликов")
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

const unknownVacancyTitle = "без названия"

func (i impl) loadVacancy(logger *log.Entry, vacancyID string) *dbmodels.Vacancy {
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансии отклика")
		return nil
	}
	return vacancy
}

// internalError ошибки бизнес-логики возвращаются как есть, остальные логируются и скрываются
func (i impl) internalError(logger *log.Entry, err error, message string) error {
	if apperrors.KindOf(err) != apperrors.KindInternal {
		return err
	}
	logger.WithError(err).Error(message)
	return errors.New(message)
}

func versionError(err error) error {
	if errors.Is(err, applicationstore.ErrVersionConflict) {
		return apperrors.Conflict("отклик изменен другим запросом, повторите попытку")
	}
	return errors.Wrap(err, "ошибка сохранения отклика")
}
