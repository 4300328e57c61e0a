package interviewhandler

import (
	"context"
	"hr-pipeline-backend/config"
	"hr-pipeline-backend/db"
	applicationhandler "hr-pipeline-backend/lib/application"
	applicationstore "hr-pipeline-backend/lib/application/store"
	assignmentstore "hr-pipeline-backend/lib/interview/assignment-store"
	interviewstore "hr-pipeline-backend/lib/interview/store"
	notificationhandler "hr-pipeline-backend/lib/notification"
	sideeffects "hr-pipeline-backend/lib/side-effects"
	usersstore "hr-pipeline-backend/lib/users/store"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/lib/utils/lock"
	"hr-pipeline-backend/models"
	interviewapimodels "hr-pipeline-backend/models/api/interview"
	dbmodels "hr-pipeline-backend/models/db"
	"slices"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Schedule(ctx context.Context, actor models.Actor, request interviewapimodels.ScheduleRequest) (interviewapimodels.InterviewView, error)
	Reschedule(ctx context.Context, actor models.Actor, interviewID string, request interviewapimodels.RescheduleRequest) (interviewapimodels.InterviewView, error)
	Cancel(ctx context.Context, actor models.Actor, interviewID string, reason string) (interviewapimodels.InterviewView, error)
	AssignInterviewers(ctx context.Context, actor models.Actor, interviewID string, interviewerIDs []string) (interviewapimodels.InterviewView, error)
	Complete(ctx context.Context, actor models.Actor, interviewID string, request interviewapimodels.CompleteRequest) (interviewapimodels.InterviewView, error)
	GetByID(actor models.Actor, interviewID string) (interviewapimodels.InterviewView, error)
	ListByApplication(actor models.Actor, applicationID string) ([]interviewapimodels.InterviewView, error)
	ListMine(actor models.Actor, onlyOpen bool) ([]interviewapimodels.InterviewView, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB, sideeffects.Instance, time.Duration(config.Conf.Pipeline.LockWaitMs)*time.Millisecond)
}

func New(DB *gorm.DB, effects sideeffects.Provider, lockWait time.Duration) Provider {
	return impl{
		db:               DB,
		store:            interviewstore.NewInstance(DB),
		assignmentStore:  assignmentstore.NewInstance(DB),
		applicationStore: applicationstore.NewInstance(DB),
		userStore:        usersstore.NewInstance(DB),
		effects:          effects,
		lockWait:         lockWait,
	}
}

type impl struct {
	db               *gorm.DB
	store            interviewstore.Provider
	assignmentStore  assignmentstore.Provider
	applicationStore applicationstore.Provider
	userStore        usersstore.Provider
	effects          sideeffects.Provider
	lockWait         time.Duration
}

func (i impl) getLogger(actor models.Actor, interviewID string) *log.Entry {
	logger := log.WithField("actor_id", actor.ID)
	if interviewID != "" {
		logger = logger.WithField("interview_id", interviewID)
	}
	return logger
}

func (i impl) Schedule(ctx context.Context, actor models.Actor, request interviewapimodels.ScheduleRequest) (interviewapimodels.InterviewView, error) {
	if !actor.Capabilities.CanOrganizeInterview() {
		return interviewapimodels.InterviewView{}, apperrors.Forbidden("назначать собеседования может только рекрутер, руководитель или администратор")
	}
	if err := request.Validate(); err != nil {
		return interviewapimodels.InterviewView{}, apperrors.Validation("%v", err)
	}
	logger := i.getLogger(actor, "").WithField("application_id", request.ApplicationID)
	if err := i.checkInterviewers(request.InterviewerIDs); err != nil {
		return interviewapimodels.InterviewView{}, i.internalError(logger, err, "ошибка проверки интервьюеров")
	}
	var interview dbmodels.Interview
	var app dbmodels.Application
	var from models.ApplicationStatus
	statusChanged := false
	err := lock.Do(ctx, lock.ApplicationKey(request.ApplicationID), i.lockWait, func() error {
		return i.db.Transaction(func(tx *gorm.DB) error {
			appRec, err := applicationstore.NewInstance(tx).GetForUpdate(request.ApplicationID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения отклика")
			}
			if appRec == nil {
				return apperrors.NotFound("отклик не найден")
			}
			store := interviewstore.NewInstance(tx)
			round := request.Round
			if round == 0 {
				count, err := store.CountByApplication(appRec.ID)
				if err != nil {
					return errors.Wrap(err, "ошибка подсчета собеседований")
				}
				round = int(count) + 1
			}
			from = appRec.Status
			statusChanged, err = applicationhandler.MoveToSubStatus(tx, appRec, models.InterviewRoundStatus(round))
			if err != nil {
				return err
			}
			interview = dbmodels.Interview{
				ApplicationID:   appRec.ID,
				Title:           request.Title,
				Round:           round,
				ScheduledAt:     request.ScheduledAt.UTC(),
				DurationMinutes: request.DurationMinutes,
				Location:        request.Location,
				MeetingLink:     request.MeetingLink,
				Notes:           request.Notes,
				Status:          models.InterviewStatusScheduled,
				CreatedBy:       actor.ID,
			}
			interview.ID, err = store.Create(interview)
			if err != nil {
				return errors.Wrap(err, "ошибка создания собеседования")
			}
			assignments, err := createAssignments(tx, interview.ID, request.InterviewerIDs)
			if err != nil {
				return err
			}
			interview.Assignments = assignments
			app = *appRec
			return nil
		})
	})
	if err != nil {
		return interviewapimodels.InterviewView{}, i.internalError(logger, err, "ошибка назначения собеседования")
	}

	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditInterviewScheduled,
		EntityType: models.EntityInterview,
		EntityID:   interview.ID,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Назначено собеседование",
			Data: []dbmodels.FieldChanges{
				{Field: "application_id", NewValue: app.ID},
				{Field: "round", NewValue: interview.Round},
				{Field: "scheduled_at", NewValue: interview.ScheduledAt},
				{Field: "interviewer_ids", NewValue: request.InterviewerIDs},
			},
		},
	})
	if statusChanged {
		i.effects.Audit(applicationhandler.StatusChangeAudit(actor, app.ID, from, app.Status, "Отклик переведен на этап собеседования"))
	}
	metadata := map[string]any{"interview_id": interview.ID, "application_id": app.ID}
	i.effects.Notify(notificationhandler.Request{
		SenderID:    &actor.ID,
		ReceiverIDs: []string{app.ApplicantID},
		Data:        models.GetNotifyInterviewScheduled(interview.Title, interview.ScheduledAt, interview.DurationMinutes, interview.Location),
		Metadata:    metadata,
	})
	i.effects.Notify(notificationhandler.Request{
		SenderID:    &actor.ID,
		ReceiverIDs: request.InterviewerIDs,
		Data:        models.GetNotifyInterviewerAssigned(interview.Title, interview.ScheduledAt),
		Metadata:    metadata,
	})
	return interviewapimodels.Convert(interview, true), nil
}

func (i impl) Reschedule(ctx context.Context, actor models.Actor, interviewID string, request interviewapimodels.RescheduleRequest) (interviewapimodels.InterviewView, error) {
	if !actor.Capabilities.CanOrganizeInterview() {
		return interviewapimodels.InterviewView{}, apperrors.Forbidden("переносить собеседования может только рекрутер, руководитель или администратор")
	}
	logger := i.getLogger(actor, interviewID)
	var oldTime time.Time
	interview, err := i.mutateOpen(ctx, interviewID, func(tx *gorm.DB, rec *dbmodels.Interview) error {
		if err := request.Validate(); err != nil {
			return apperrors.Validation("%v", err)
		}
		oldTime = rec.ScheduledAt
		updMap := map[string]interface{}{
			"scheduled_at":      request.ScheduledAt.UTC(),
			"status":            models.InterviewStatusRescheduled,
			"reschedule_reason": request.Reason,
		}
		rec.ScheduledAt = request.ScheduledAt.UTC()
		rec.Status = models.InterviewStatusRescheduled
		rec.RescheduleReason = request.Reason
		if request.DurationMinutes != nil {
			updMap["duration_minutes"] = *request.DurationMinutes
			rec.DurationMinutes = *request.DurationMinutes
		}
		if request.Location != nil {
			updMap["location"] = *request.Location
			rec.Location = *request.Location
		}
		if request.Notes != nil {
			updMap["notes"] = *request.Notes
			rec.Notes = *request.Notes
		}
		return interviewstore.NewInstance(tx).Update(rec.ID, updMap)
	})
	if err != nil {
		return interviewapimodels.InterviewView{}, i.internalError(logger, err, "ошибка переноса собеседования")
	}

	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditInterviewRescheduled,
		EntityType: models.EntityInterview,
		EntityID:   interview.ID,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: request.Reason,
			Data:        []dbmodels.FieldChanges{{Field: "scheduled_at", OldValue: oldTime, NewValue: interview.ScheduledAt}},
		},
	})
	i.notifyParticipants(actor, interview, models.GetNotifyInterviewRescheduled(interview.Title, oldTime, interview.ScheduledAt, request.Reason))
	return interviewapimodels.Convert(interview, true), nil
}

func (i impl) Cancel(ctx context.Context, actor models.Actor, interviewID string, reason string) (interviewapimodels.InterviewView, error) {
	if !actor.Capabilities.CanOrganizeInterview() {
		return interviewapimodels.InterviewView{}, apperrors.Forbidden("отменять собеседования может только рекрутер, руководитель или администратор")
	}
	logger := i.getLogger(actor, interviewID)
	var oldStatus models.InterviewStatus
	interview, err := i.mutateOpen(ctx, interviewID, func(tx *gorm.DB, rec *dbmodels.Interview) error {
		if reason == "" {
			return apperrors.Validation("не указана причина отмены")
		}
		oldStatus = rec.Status
		rec.Status = models.InterviewStatusCancelled
		rec.CancelReason = reason
		return interviewstore.NewInstance(tx).Update(rec.ID, map[string]interface{}{
			"status":        models.InterviewStatusCancelled,
			"cancel_reason": reason,
		})
	})
	if err != nil {
		return interviewapimodels.InterviewView{}, i.internalError(logger, err, "ошибка отмены собеседования")
	}

	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditInterviewCancelled,
		EntityType: models.EntityInterview,
		EntityID:   interview.ID,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: reason,
			Data:        []dbmodels.FieldChanges{{Field: "status", OldValue: oldStatus, NewValue: interview.Status}},
		},
	})
	i.notifyParticipants(actor, interview, models.GetNotifyInterviewCancelled(interview.Title, reason))
	return interviewapimodels.Convert(interview, true), nil
}

func (i impl) AssignInterviewers(ctx context.Context, actor models.Actor, interviewID string, interviewerIDs []string) (interviewapimodels.InterviewView, error) {
	if !actor.Capabilities.CanOrganizeInterview() {
		return interviewapimodels.InterviewView{}, apperrors.Forbidden("назначать интервьюеров может только рекрутер, руководитель или администратор")
	}
	logger := i.getLogger(actor, interviewID)
	request := interviewapimodels.AssignRequest{InterviewerIDs: interviewerIDs}
	if err := request.Validate(); err != nil {
		return interviewapimodels.InterviewView{}, apperrors.Validation("%v", err)
	}
	if err := i.checkInterviewers(interviewerIDs); err != nil {
		return interviewapimodels.InterviewView{}, i.internalError(logger, err, "ошибка проверки интервьюеров")
	}
	var added, removed []string
	justCompleted := false
	interview, err := i.mutateOpen(ctx, interviewID, func(tx *gorm.DB, rec *dbmodels.Interview) error {
		existed := rec.InterviewerIDs()
		for _, id := range interviewerIDs {
			if !slices.Contains(existed, id) {
				added = append(added, id)
			}
		}
		for _, id := range existed {
			if !slices.Contains(interviewerIDs, id) {
				removed = append(removed, id)
			}
		}
		if err := assignmentstore.NewInstance(tx).Delete(rec.ID, removed); err != nil {
			return errors.Wrap(err, "ошибка снятия интервьюеров")
		}
		rec.Assignments = slices.DeleteFunc(rec.Assignments, func(assignment dbmodels.InterviewerAssignment) bool {
			return slices.Contains(removed, assignment.InterviewerID)
		})
		assignments, err := createAssignments(tx, rec.ID, added)
		if err != nil {
			return err
		}
		rec.Assignments = append(rec.Assignments, assignments...)
		// после снятия интервьюера отзывы могут оказаться у всех оставшихся
		if len(removed) > 0 && allCompleted(rec.Assignments) {
			now := time.Now().UTC()
			err = interviewstore.NewInstance(tx).Update(rec.ID, map[string]interface{}{
				"status":       models.InterviewStatusCompleted,
				"completed_at": now,
			})
			if err != nil {
				return errors.Wrap(err, "ошибка завершения собеседования")
			}
			rec.Status = models.InterviewStatusCompleted
			rec.CompletedAt = &now
			justCompleted = true
		}
		return nil
	})
	if err != nil {
		return interviewapimodels.InterviewView{}, i.internalError(logger, err, "ошибка назначения интервьюеров")
	}
	if len(added) == 0 && len(removed) == 0 {
		return interviewapimodels.Convert(interview, true), nil
	}

	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditInterviewersAssigned,
		EntityType: models.EntityInterview,
		EntityID:   interview.ID,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Изменен состав интервьюеров",
			Data: []dbmodels.FieldChanges{
				{Field: "added_interviewer_ids", NewValue: added},
				{Field: "removed_interviewer_ids", OldValue: removed},
			},
		},
	})
	if justCompleted {
		i.effects.Audit(dbmodels.AuditLog{
			ActorID:    actor.ID,
			Action:     models.AuditInterviewCompleted,
			EntityType: models.EntityInterview,
			EntityID:   interview.ID,
			Origin:     actor.Origin,
			Changes: dbmodels.EntityChanges{
				Description: "Все оставшиеся интервьюеры оставили отзывы",
				Data:        []dbmodels.FieldChanges{{Field: "status", NewValue: interview.Status}},
			},
		})
	}
	if len(added) > 0 {
		i.effects.Notify(notificationhandler.Request{
			SenderID:    &actor.ID,
			ReceiverIDs: added,
			Data:        models.GetNotifyInterviewerAssigned(interview.Title, interview.ScheduledAt),
			Metadata:    map[string]any{"interview_id": interview.ID, "application_id": interview.ApplicationID},
		})
	}
	return interviewapimodels.Convert(interview, true), nil
}

func (i impl) Complete(ctx context.Context, actor models.Actor, interviewID string, request interviewapimodels.CompleteRequest) (interviewapimodels.InterviewView, error) {
	logger := i.getLogger(actor, interviewID)
	if err := request.Validate(); err != nil {
		return interviewapimodels.InterviewView{}, apperrors.Validation("%v", err)
	}
	var interview dbmodels.Interview
	justCompleted := false
	err := lock.Do(ctx, lock.InterviewKey(interviewID), i.lockWait, func() error {
		return i.db.Transaction(func(tx *gorm.DB) error {
			store := interviewstore.NewInstance(tx)
			assignmentStore := assignmentstore.NewInstance(tx)
			rec, err := store.GetForUpdate(interviewID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения собеседования")
			}
			if rec == nil {
				return apperrors.NotFound("собеседование не найдено")
			}
			assignment, err := assignmentStore.Get(interviewID, actor.ID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения назначения интервьюера")
			}
			if assignment == nil {
				return apperrors.Forbidden("оставить отзыв может только назначенный интервьюер")
			}
			if rec.Status == models.InterviewStatusCancelled {
				return apperrors.AlreadyInTerminalState("собеседование отменено")
			}
			updMap := map[string]interface{}{
				"feedback":       request.Feedback,
				"rating":         request.Rating,
				"recommendation": request.Recommendation,
				"attended":       request.Attended,
			}
			// время завершения фиксируется только при первом отзыве
			if assignment.CompletedAt == nil {
				updMap["completed_at"] = time.Now().UTC()
			}
			if err = assignmentStore.Update(assignment.ID, updMap); err != nil {
				return errors.Wrap(err, "ошибка сохранения отзыва")
			}
			assignments, err := assignmentStore.List(interviewID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения назначений")
			}
			rec.Assignments = assignments
			if rec.Status != models.InterviewStatusCompleted && allCompleted(assignments) {
				now := time.Now().UTC()
				err = store.Update(rec.ID, map[string]interface{}{
					"status":       models.InterviewStatusCompleted,
					"completed_at": now,
				})
				if err != nil {
					return errors.Wrap(err, "ошибка завершения собеседования")
				}
				rec.Status = models.InterviewStatusCompleted
				rec.CompletedAt = &now
				justCompleted = true
			}
			interview = *rec
			return nil
		})
	})
	if err != nil {
		return interviewapimodels.InterviewView{}, i.internalError(logger, err, "ошибка сохранения отзыва")
	}

	feedback := []dbmodels.FieldChanges{
		{Field: "interviewer_id", NewValue: actor.ID},
		{Field: "recommendation", NewValue: request.Recommendation},
	}
	if request.Rating != nil {
		feedback = append(feedback, dbmodels.FieldChanges{Field: "rating", NewValue: *request.Rating})
	}
	i.effects.Audit(dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditInterviewFeedback,
		EntityType: models.EntityInterview,
		EntityID:   interview.ID,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: "Интервьюер оставил отзыв",
			Data:        feedback,
		},
	})
	if justCompleted {
		i.effects.Audit(dbmodels.AuditLog{
			ActorID:    actor.ID,
			Action:     models.AuditInterviewCompleted,
			EntityType: models.EntityInterview,
			EntityID:   interview.ID,
			Origin:     actor.Origin,
			Changes: dbmodels.EntityChanges{
				Description: "Все интервьюеры оставили отзывы",
				Data:        []dbmodels.FieldChanges{{Field: "status", NewValue: interview.Status}},
			},
		})
	}
	return interviewapimodels.Convert(interview, true), nil
}

func (i impl) GetByID(actor models.Actor, interviewID string) (interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(interviewID)
	if err != nil {
		i.getLogger(actor, interviewID).WithError(err).Error("ошибка получения собеседования")
		return interviewapimodels.InterviewView{}, errors.New("ошибка получения собеседования")
	}
	if rec == nil {
		return interviewapimodels.InterviewView{}, apperrors.NotFound("собеседование не найдено")
	}
	if actor.Capabilities.IsStaff() {
		return interviewapimodels.Convert(*rec, true), nil
	}
	if rec.Application != nil && rec.Application.ApplicantID == actor.ID {
		return interviewapimodels.Convert(*rec, false), nil
	}
	return interviewapimodels.InterviewView{}, apperrors.Forbidden("нет доступа к собеседованию")
}

func (i impl) ListByApplication(actor models.Actor, applicationID string) ([]interviewapimodels.InterviewView, error) {
	logger := i.getLogger(actor, "").WithField("application_id", applicationID)
	withFeedback := actor.Capabilities.IsStaff()
	if !withFeedback {
		app, err := i.applicationStore.GetByID(applicationID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения отклика")
			return nil, errors.New("ошибка получения отклика")
		}
		if app == nil {
			return nil, apperrors.NotFound("отклик не найден")
		}
		if app.ApplicantID != actor.ID {
			return nil, apperrors.Forbidden("нет доступа к собеседованиям отклика")
		}
	}
	list, err := i.store.ListByApplication(applicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения собеседований")
		return nil, errors.New("ошибка получения собеседований")
	}
	result := make([]interviewapimodels.InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, interviewapimodels.Convert(rec, withFeedback))
	}
	return result, nil
}

func (i impl) ListMine(actor models.Actor, onlyOpen bool) ([]interviewapimodels.InterviewView, error) {
	list, err := i.store.ListByInterviewer(actor.ID, onlyOpen)
	if err != nil {
		i.getLogger(actor, "").WithError(err).Error("ошибка получения собеседований интервьюера")
		return nil, errors.New("ошибка получения собеседований интервьюера")
	}
	result := make([]interviewapimodels.InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, interviewapimodels.Convert(rec, true))
	}
	return result, nil
}

// mutateOpen изменение незавершенного собеседования под блокировкой
func (i impl) mutateOpen(ctx context.Context, interviewID string, mutate func(tx *gorm.DB, rec *dbmodels.Interview) error) (dbmodels.Interview, error) {
	var result dbmodels.Interview
	err := lock.Do(ctx, lock.InterviewKey(interviewID), i.lockWait, func() error {
		return i.db.Transaction(func(tx *gorm.DB) error {
			rec, err := interviewstore.NewInstance(tx).GetForUpdate(interviewID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения собеседования")
			}
			if rec == nil {
				return apperrors.NotFound("собеседование не найдено")
			}
			if rec.Status.IsTerminal() {
				return apperrors.AlreadyInTerminalState("собеседование уже в статусе '%v'", rec.Status.ToHuman())
			}
			rec.Assignments, err = assignmentstore.NewInstance(tx).List(interviewID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения назначений")
			}
			if err = mutate(tx, rec); err != nil {
				return err
			}
			result = *rec
			return nil
		})
	})
	return result, err
}

// checkInterviewers все пользователи существуют, активны и могут проводить собеседования
func (i impl) checkInterviewers(ids []string) error {
	users, err := i.userStore.GetByIDs(ids)
	if err != nil {
		return errors.Wrap(err, "ошибка получения интервьюеров")
	}
	for _, id := range ids {
		idx := slices.IndexFunc(users, func(user dbmodels.User) bool {
			return user.ID == id
		})
		if idx < 0 {
			return apperrors.Validation("интервьюер %v не найден", id)
		}
		user := users[idx]
		if !user.IsActive {
			return apperrors.Validation("пользователь %v неактивен", user.GetFullName())
		}
		if !user.Capabilities.CanInterview() {
			return apperrors.Validation("пользователь %v не может проводить собеседования", user.GetFullName())
		}
	}
	return nil
}

func (i impl) notifyParticipants(actor models.Actor, interview dbmodels.Interview, data models.NotificationData) {
	receivers := interview.InterviewerIDs()
	app, err := i.applicationStore.GetByID(interview.ApplicationID)
	if err != nil {
		i.getLogger(actor, interview.ID).WithError(err).Error("ошибка получения отклика для уведомления")
	}
	if app != nil {
		receivers = append(receivers, app.ApplicantID)
	}
	i.effects.Notify(notificationhandler.Request{
		SenderID:    &actor.ID,
		ReceiverIDs: receivers,
		Data:        data,
		Metadata:    map[string]any{"interview_id": interview.ID, "application_id": interview.ApplicationID},
	})
}

func (i impl) internalError(logger *log.Entry, err error, message string) error {
	if apperrors.KindOf(err) != apperrors.KindInternal {
		return err
	}
	logger.WithError(err).Error(message)
	return errors.New(message)
}

func createAssignments(tx *gorm.DB, interviewID string, interviewerIDs []string) ([]dbmodels.InterviewerAssignment, error) {
	store := assignmentstore.NewInstance(tx)
	result := make([]dbmodels.InterviewerAssignment, 0, len(interviewerIDs))
	for _, interviewerID := range interviewerIDs {
		rec := dbmodels.InterviewerAssignment{
			InterviewID:   interviewID,
			InterviewerID: interviewerID,
		}
		id, err := store.Create(rec)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.Conflict("интервьюер уже назначен на собеседование")
			}
			return nil, errors.Wrap(err, "ошибка назначения интервьюера")
		}
		rec.ID = id
		result = append(result, rec)
	}
	return result, nil
}

func allCompleted(assignments []dbmodels.InterviewerAssignment) bool {
	if len(assignments) == 0 {
		return false
	}
	for _, assignment := range assignments {
		if !assignment.IsCompleted() {
			return false
		}
	}
	return true
}
