package testhandler

import (
	"context"
	"hr-pipeline-backend/config"
	"hr-pipeline-backend/db"
	applicationhandler "hr-pipeline-backend/lib/application"
	applicationstore "hr-pipeline-backend/lib/application/store"
	notificationhandler "hr-pipeline-backend/lib/notification"
	sideeffects "hr-pipeline-backend/lib/side-effects"
	attemptstore "hr-pipeline-backend/lib/test/attempt-store"
	teststore "hr-pipeline-backend/lib/test/store"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/lib/utils/lock"
	vacancystore "hr-pipeline-backend/lib/vacancy/store"
	"hr-pipeline-backend/models"
	testapimodels "hr-pipeline-backend/models/api/test"
	dbmodels "hr-pipeline-backend/models/db"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, actor models.Actor, data testapimodels.TestData) (testapimodels.TestView, error)
	GetByID(actor models.Actor, testID string) (testapimodels.TestView, error)
	ListByVacancy(actor models.Actor, vacancyID string) ([]testapimodels.TestView, error)
	Deactivate(ctx context.Context, actor models.Actor, testID string) (testapimodels.TestView, error)
	InviteToTest(ctx context.Context, actor models.Actor, applicationID, testID string) (testapimodels.AttemptView, error)
	SubmitQuiz(ctx context.Context, actor models.Actor, applicationID string, request testapimodels.SubmitRequest) (testapimodels.AttemptView, error)
	MarkExternalComplete(ctx context.Context, actor models.Actor, applicationID string, request testapimodels.ExternalCompleteRequest) (testapimodels.AttemptView, error)
	GetAttempt(actor models.Actor, applicationID, testID string) (testapimodels.AttemptView, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB, sideeffects.Instance, time.Duration(config.Conf.Pipeline.LockWaitMs)*time.Millisecond)
}

func New(DB *gorm.DB, effects sideeffects.Provider, lockWait time.Duration) Provider {
	return impl{
		db:               DB,
		store:            teststore.NewInstance(DB),
		attemptStore:     attemptstore.NewInstance(DB),
		applicationStore: applicationstore.NewInstance(DB),
		vacancyStore:     vacancystore.NewInstance(DB),
		effects:          effects,
		lockWait:         lockWait,
	}
}

type impl struct {
	db               *gorm.DB
	store            teststore.Provider
	attemptStore     attemptstore.Provider
	applicationStore applicationstore.Provider
	vacancyStore     vacancystore.Provider
	effects          sideeffects.Provider
	lockWait         time.Duration
}

func (i impl) getLogger(actor models.Actor, testID string) *log.Entry {
	logger := log.WithField("actor_id", actor.ID)
	if testID != "" {
		logger = logger.WithField("test_id", testID)
	}
	return logger
}

func (i impl) Create(ctx context.Context, actor models.Actor, data testapimodels.TestData) (testapimodels.TestView, error) {
	if !actor.Capabilities.CanManagePipeline() {
		return testapimodels.TestView{}, apperrors.Forbidden("создавать тесты может только рекрутер или администратор")
	}
	if err := data.Validate(); err != nil {
		return testapimodels.TestView{}, apperrors.Validation("%v", err)
	}
	logger := i.getLogger(actor, "").WithField("vacancy_id", data.VacancyID)
	vacancy, err := i.vacancyStore.GetByID(data.VacancyID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансии")
		return testapimodels.TestView{}, errors.New("ошибка получения вакансии")
	}
	if vacancy == nil {
		return testapimodels.TestView{}, apperrors.NotFound("вакансия не найдена")
	}
	rec := dbmodels.Test{
		VacancyID:   data.VacancyID,
		Title:       data.Title,
		Description: data.Description,
		Type:        data.Type,
		IsActive:    true,
		Deadline:    data.Deadline,
		CreatedBy:   actor.ID,
	}
	switch data.Type {
	case models.TestTypeExternalLink:
		rec.ExternalURL = data.ExternalURL
		rec.DurationMinutes = data.DurationMinutes
		rec.PassingScore = data.PassingScore
	case models.TestTypeInternalQuiz:
		rec.DurationMinutes = data.DurationMinutes
		rec.PassingScore = data.PassingScore
		ids := map[string]bool{}
		for _, questionData := range data.Questions {
			question := questionData.ToQuestion()
			if question.ID == "" {
				question.ID = uuid.NewString()
			}
			if ids[question.ID] {
				return testapimodels.TestView{}, apperrors.Validation("повторяющийся идентификатор вопроса: %v", question.ID)
			}
			ids[question.ID] = true
			rec.TotalPoints += question.Points
			rec.Questions.Questions = append(rec.Questions.Questions, question)
		}
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания теста")
		return testapimodels.TestView{}, errors.New("ошибка создания теста")
	}

	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditTestCreated,
		EntityType: models.EntityTest,
		EntityID:   rec.ID,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Создан тест",
			Data: []dbmodels.FieldChanges{
				{Field: "vacancy_id", NewValue: rec.VacancyID},
				{Field: "type", NewValue: rec.Type},
				{Field: "total_points", NewValue: rec.TotalPoints},
			},
		},
	})
	return testapimodels.Convert(rec, true), nil
}

func (i impl) GetByID(actor models.Actor, testID string) (testapimodels.TestView, error) {
	rec, err := i.store.GetByID(testID)
	if err != nil {
		i.getLogger(actor, testID).WithError(err).Error("ошибка получения теста")
		return testapimodels.TestView{}, errors.New("ошибка получения теста")
	}
	if rec == nil {
		return testapimodels.TestView{}, apperrors.NotFound("тест не найден")
	}
	return testapimodels.Convert(*rec, actor.Capabilities.IsStaff()), nil
}

func (i impl) ListByVacancy(actor models.Actor, vacancyID string) ([]testapimodels.TestView, error) {
	isStaff := actor.Capabilities.IsStaff()
	list, err := i.store.ListByVacancy(vacancyID, !isStaff)
	if err != nil {
		i.getLogger(actor, "").WithField("vacancy_id", vacancyID).WithError(err).Error("ошибка получения тестов вакансии")
		return nil, errors.New("ошибка получения тестов вакансии")
	}
	result := make([]testapimodels.TestView, 0, len(list))
	for _, rec := range list {
		result = append(result, testapimodels.Convert(rec, isStaff))
	}
	return result, nil
}

func (i impl) Deactivate(ctx context.Context, actor models.Actor, testID string) (testapimodels.TestView, error) {
	if !actor.Capabilities.CanManagePipeline() {
		return testapimodels.TestView{}, apperrors.Forbidden("деактивировать тест может только рекрутер или администратор")
	}
	logger := i.getLogger(actor, testID)
	rec, err := i.store.GetByID(testID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения теста")
		return testapimodels.TestView{}, errors.New("ошибка получения теста")
	}
	if rec == nil {
		return testapimodels.TestView{}, apperrors.NotFound("тест не найден")
	}
	if !rec.IsActive {
		return testapimodels.Convert(*rec, true), nil
	}
	if err = i.store.Update(testID, map[string]interface{}{"is_active": false}); err != nil {
		logger.WithError(err).Error("ошибка деактивации теста")
		return testapimodels.TestView{}, errors.New("ошибка деактивации теста")
	}
	rec.IsActive = false

	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditTestDeactivated,
		EntityType: models.EntityTest,
		EntityID:   rec.ID,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Тест деактивирован",
			Data:        []dbmodels.FieldChanges{{Field: "is_active", OldValue: true, NewValue: false}},
		},
	})
	return testapimodels.Convert(*rec, true), nil
}

func (i impl) InviteToTest(ctx context.Context, actor models.Actor, applicationID, testID string) (testapimodels.AttemptView, error) {
	if !actor.Capabilities.CanManagePipeline() {
		return testapimodels.AttemptView{}, apperrors.Forbidden("приглашать на тестирование может только рекрутер или администратор")
	}
	logger := i.getLogger(actor, testID).WithField("application_id", applicationID)
	var attempt dbmodels.TestAttempt
	var test dbmodels.Test
	var app dbmodels.Application
	var from models.ApplicationStatus
	statusChanged := false
	err := lock.Do(ctx, lock.ApplicationKey(applicationID), i.lockWait, func() error {
		return i.db.Transaction(func(tx *gorm.DB) error {
			appRec, err := applicationstore.NewInstance(tx).GetForUpdate(applicationID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения отклика")
			}
			if appRec == nil {
				return apperrors.NotFound("отклик не найден")
			}
			testRec, err := teststore.NewInstance(tx).GetByID(testID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения теста")
			}
			if testRec == nil {
				return apperrors.NotFound("тест не найден")
			}
			if testRec.VacancyID != appRec.VacancyID {
				return apperrors.RuleViolation("тест не относится к вакансии отклика")
			}
			if !testRec.IsActive {
				return apperrors.RuleViolation("тест неактивен")
			}
			store := attemptstore.NewInstance(tx)
			existed, err := store.Get(testID, applicationID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения попытки")
			}
			if existed != nil {
				return apperrors.Conflict("кандидат уже приглашен на этот тест")
			}
			from = appRec.Status
			statusChanged, err = applicationhandler.AdvanceToSubStatus(tx, appRec, models.ApplicationStatusTestInvited)
			if err != nil {
				return err
			}
			now := time.Now().UTC()
			attempt = dbmodels.TestAttempt{
				TestID:        testID,
				ApplicationID: applicationID,
				InvitedAt:     now,
				Deadline:      now.AddDate(0, 0, models.DefaultTestDeadlineDays),
			}
			if testRec.Deadline != nil {
				attempt.Deadline = testRec.Deadline.UTC()
			}
			attempt.ID, err = store.Create(attempt)
			if err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.Conflict("кандидат уже приглашен на этот тест")
				}
				return errors.Wrap(err, "ошибка создания попытки")
			}
			test = *testRec
			app = *appRec
			return nil
		})
	})
	if err != nil {
		return testapimodels.AttemptView{}, i.internalError(logger, err, "ошибка приглашения на тестирование")
	}

	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditTestInvited,
		EntityType: models.EntityTestAttempt,
		EntityID:   attempt.ID,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Кандидат приглашен на тестирование",
			Data: []dbmodels.FieldChanges{
				{Field: "test_id", NewValue: testID},
				{Field: "application_id", NewValue: applicationID},
				{Field: "deadline", NewValue: attempt.Deadline},
			},
		},
	})
	if statusChanged {
		i.effects.Audit(applicationhandler.StatusChangeAudit(actor, applicationID, from, app.Status, "Кандидат приглашен на тестирование"))
	}
	i.effects.Notify(notificationhandler.Request{
		SenderID:    &actor.ID,
		ReceiverIDs: []string{app.ApplicantID},
		Data:        models.GetNotifyTestInvitation(test.Title, attempt.Deadline),
		Metadata:    map[string]any{"application_id": applicationID, "test_id": testID, "attempt_id": attempt.ID},
	})
	return testapimodels.ConvertAttempt(attempt), nil
}

func (i impl) SubmitQuiz(ctx context.Context, actor models.Actor, applicationID string, request testapimodels.SubmitRequest) (testapimodels.AttemptView, error) {
	if err := request.Validate(); err != nil {
		return testapimodels.AttemptView{}, apperrors.Validation("%v", err)
	}
	logger := i.getLogger(actor, request.TestID).WithField("application_id", applicationID)
	answers := make([]dbmodels.QuizAnswer, 0, len(request.Answers))
	for _, answer := range request.Answers {
		answers = append(answers, answer.ToAnswer())
	}
	var result QuizResult
	attempt, from, statusChanged, err := i.completeAttempt(ctx, actor, applicationID, request.TestID, false,
		func(tx *gorm.DB, attempt *dbmodels.TestAttempt, test dbmodels.Test) error {
			if test.Type != models.TestTypeInternalQuiz {
				return apperrors.RuleViolation("ответы принимаются только для внутреннего теста")
			}
			passingScore := 0.0
			if test.PassingScore != nil {
				passingScore = *test.PassingScore
			}
			result = ScoreQuiz(test.Questions.Questions, answers, passingScore)
			now := time.Now().UTC()
			attempt.Answers = dbmodels.AttemptAnswers{Answers: result.Answers}
			attempt.Score = &result.Score
			attempt.Percentage = &result.Percentage
			attempt.IsPassed = &result.IsPassed
			attempt.CompletedAt = &now
			return attemptstore.NewInstance(tx).Update(attempt.ID, map[string]interface{}{
				"answers":      attempt.Answers,
				"score":        result.Score,
				"percentage":   result.Percentage,
				"is_passed":    result.IsPassed,
				"completed_at": now,
			})
		})
	if err != nil {
		return testapimodels.AttemptView{}, i.internalError(logger, err, "ошибка сохранения ответов")
	}

	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditTestSubmitted,
		EntityType: models.EntityTestAttempt,
		EntityID:   attempt.ID,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Кандидат прошел тест",
			Data: []dbmodels.FieldChanges{
				{Field: "score", NewValue: result.Score},
				{Field: "percentage", NewValue: result.Percentage},
				{Field: "is_passed", NewValue: result.IsPassed},
			},
		},
	})
	if statusChanged {
		i.effects.Audit(applicationhandler.StatusChangeAudit(actor, applicationID, from, models.ApplicationStatusTestCompleted, "Тестирование завершено"))
	}
	return testapimodels.ConvertAttempt(attempt), nil
}

func (i impl) MarkExternalComplete(ctx context.Context, actor models.Actor, applicationID string, request testapimodels.ExternalCompleteRequest) (testapimodels.AttemptView, error) {
	logger := i.getLogger(actor, request.TestID).WithField("application_id", applicationID)
	attempt, from, statusChanged, err := i.completeAttempt(ctx, actor, applicationID, request.TestID, actor.Capabilities.IsStaff(),
		func(tx *gorm.DB, attempt *dbmodels.TestAttempt, test dbmodels.Test) error {
			if test.Type != models.TestTypeExternalLink {
				return apperrors.RuleViolation("отметить выполнение можно только для внешнего теста")
			}
			now := time.Now().UTC()
			attempt.ExternalCompleted = true
			attempt.Notes = request.Notes
			attempt.CompletedAt = &now
			return attemptstore.NewInstance(tx).Update(attempt.ID, map[string]interface{}{
				"external_completed": true,
				"notes":              request.Notes,
				"completed_at":       now,
			})
		})
	if err != nil {
		return testapimodels.AttemptView{}, i.internalError(logger, err, "ошибка отметки о выполнении теста")
	}

	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditTestExternalCompleted,
		EntityType: models.EntityTestAttempt,
		EntityID:   attempt.ID,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Внешний тест отмечен выполненным",
			Data:        []dbmodels.FieldChanges{{Field: "notes", NewValue: request.Notes}},
		},
	})
	if statusChanged {
		i.effects.Audit(applicationhandler.StatusChangeAudit(actor, applicationID, from, models.ApplicationStatusTestCompleted, "Тестирование завершено"))
	}
	return testapimodels.ConvertAttempt(attempt), nil
}

func (i impl) GetAttempt(actor models.Actor, applicationID, testID string) (testapimodels.AttemptView, error) {
	logger := i.getLogger(actor, testID).WithField("application_id", applicationID)
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения отклика")
		return testapimodels.AttemptView{}, errors.New("ошибка получения отклика")
	}
	if app == nil {
		return testapimodels.AttemptView{}, apperrors.NotFound("отклик не найден")
	}
	if app.ApplicantID != actor.ID && !actor.Capabilities.IsStaff() {
		return testapimodels.AttemptView{}, apperrors.Forbidden("нет доступа к результатам тестирования")
	}
	attempt, err := findAttempt(i.attemptStore, applicationID, testID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения попытки")
		return testapimodels.AttemptView{}, errors.New("ошибка получения попытки")
	}
	if attempt == nil {
		return testapimodels.AttemptView{}, apperrors.NotFound("приглашение на тест не найдено")
	}
	return testapimodels.ConvertAttempt(*attempt), nil
}

type completeFunc func(tx *gorm.DB, attempt *dbmodels.TestAttempt, test dbmodels.Test) error

// completeAttempt завершение попытки под блокировкой отклика, затем перевод отклика в TEST_COMPLETED
func (i impl) completeAttempt(ctx context.Context, actor models.Actor, applicationID, testID string, allowStaff bool, complete completeFunc) (attempt dbmodels.TestAttempt, from models.ApplicationStatus, statusChanged bool, err error) {
	err = lock.Do(ctx, lock.ApplicationKey(applicationID), i.lockWait, func() error {
		return i.db.Transaction(func(tx *gorm.DB) error {
			app, err := applicationstore.NewInstance(tx).GetForUpdate(applicationID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения отклика")
			}
			if app == nil {
				return apperrors.NotFound("отклик не найден")
			}
			if app.ApplicantID != actor.ID && !allowStaff {
				return apperrors.Forbidden("пройти тест может только автор отклика")
			}
			rec, err := findAttempt(attemptstore.NewInstance(tx), applicationID, testID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения попытки")
			}
			if rec == nil || rec.Test == nil {
				return apperrors.NotFound("приглашение на тест не найдено")
			}
			if rec.IsCompleted() {
				return apperrors.AlreadyCompleted("тест уже пройден")
			}
			if err = complete(tx, rec, *rec.Test); err != nil {
				return err
			}
			from = app.Status
			statusChanged, err = applicationhandler.AdvanceToSubStatus(tx, app, models.ApplicationStatusTestCompleted)
			if err != nil {
				return err
			}
			attempt = *rec
			return nil
		})
	})
	return attempt, from, statusChanged, err
}

func findAttempt(store attemptstore.Provider, applicationID, testID string) (*dbmodels.TestAttempt, error) {
	if testID == "" {
		return store.GetLatest(applicationID)
	}
	return store.Get(testID, applicationID)
}

func (i impl) internalError(logger *log.Entry, err error, message string) error {
	if apperrors.KindOf(err) != apperrors.KindInternal {
		return err
	}
	logger.WithError(err).Error(message)
	return errors.New(message)
}
