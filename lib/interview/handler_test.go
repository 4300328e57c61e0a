package interviewhandler

import (
	"context"
	"fmt"
	"hr-pipeline-backend/db"
	audithandler "hr-pipeline-backend/lib/audit"
	notificationhandler "hr-pipeline-backend/lib/notification"
	sideeffects "hr-pipeline-backend/lib/side-effects"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	interviewapimodels "hr-pipeline-backend/models/api/interview"
	dbmodels "hr-pipeline-backend/models/db"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	handler   Provider
	recruiter models.Actor
	alice     models.Actor
	bob       models.Actor
	vacancy   dbmodels.Vacancy
}

func newFixture(t *testing.T, name string) fixture {
	DB, err := db.OpenInMemory(name)
	require.NoError(t, err)
	effects := sideeffects.NewInline(audithandler.New(DB), notificationhandler.New(DB, nil, nil, notificationhandler.Options{RatePerSec: 1000, Burst: 100}))
	f := fixture{db: DB, handler: New(DB, effects, 5*time.Second)}
	f.recruiter = f.createUser(t, true, models.CapabilityRecruiter)
	f.alice = f.createUser(t, true, models.CapabilityInterviewer)
	f.bob = f.createUser(t, true, models.CapabilityManager)
	f.vacancy = dbmodels.Vacancy{Title: "Go-разработчик", AuthorID: f.recruiter.ID, Status: models.VacancyStatusOpen, IsPublished: true}
	require.NoError(t, DB.Create(&f.vacancy).Error)
	return f
}

func (f fixture) createUser(t *testing.T, active bool, capabilities ...models.Capability) models.Actor {
	rec := dbmodels.User{FirstName: "Тест", Capabilities: capabilities, IsActive: active}
	require.NoError(t, f.db.Create(&rec).Error)
	return models.Actor{ID: rec.ID, Capabilities: rec.Capabilities}
}

func (f fixture) createApplication(t *testing.T, status models.ApplicationStatus) (dbmodels.Application, models.Actor) {
	applicant := f.createUser(t, true, models.CapabilityApplicant)
	rec := dbmodels.Application{
		VacancyID:    f.vacancy.ID,
		ApplicantID:  applicant.ID,
		Status:       status,
		StructuredCV: []byte(`{}`),
		Version:      1,
	}
	require.NoError(t, f.db.Create(&rec).Error)
	return rec, applicant
}

func (f fixture) applicationStatus(t *testing.T, applicationID string) models.ApplicationStatus {
	var rec dbmodels.Application
	require.NoError(t, f.db.First(&rec, "id = ?", applicationID).Error)
	return rec.Status
}

func (f fixture) notificationTypes(t *testing.T, receiverID string) []models.NotificationType {
	var list []dbmodels.Notification
	require.NoError(t, f.db.Where("receiver_id = ?", receiverID).Order("created_at").Find(&list).Error)
	result := make([]models.NotificationType, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.Type)
	}
	return result
}

func (f fixture) scheduleRequest(applicationID string, interviewers ...string) interviewapimodels.ScheduleRequest {
	return interviewapimodels.ScheduleRequest{
		ApplicationID:   applicationID,
		Title:           "Техническое собеседование",
		ScheduledAt:     time.Now().Add(24 * time.Hour),
		DurationMinutes: 60,
		Location:        "Переговорная 1",
		InterviewerIDs:  interviewers,
	}
}

func TestSchedule(t *testing.T) {
	f := newFixture(t, "interview_schedule")
	ctx := context.Background()

	t.Run(`rounds move application`, func(t *testing.T) {
		app, applicant := f.createApplication(t, models.ApplicationStatusTestCompleted)
		first, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID))
		require.NoError(t, err)
		require.Equal(t, 1, first.Round)
		require.Equal(t, models.InterviewStatusScheduled, first.Status)
		require.Len(t, first.Assignments, 1)
		require.Equal(t, models.ApplicationStatusInterviewR1, f.applicationStatus(t, app.ID))

		second, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID, f.bob.ID))
		require.NoError(t, err)
		require.Equal(t, 2, second.Round)
		require.Equal(t, models.ApplicationStatusInterviewR2, f.applicationStatus(t, app.ID))

		// явно указанный раунд определяет подстатус внутри этапа собеседований
		request := f.scheduleRequest(app.ID, f.alice.ID)
		request.Round = 1
		_, err = f.handler.Schedule(ctx, f.recruiter, request)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusInterviewR1, f.applicationStatus(t, app.ID))

		require.Equal(t, []models.NotificationType{
			models.NotifyInterviewScheduled,
			models.NotifyInterviewScheduled,
			models.NotifyInterviewScheduled,
		}, f.notificationTypes(t, applicant.ID))
		require.Len(t, f.notificationTypes(t, f.bob.ID), 1)
	})

	t.Run(`applied goes straight to interview`, func(t *testing.T) {
		app, _ := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID))
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusInterviewR1, f.applicationStatus(t, app.ID))
	})

	t.Run(`offered application is not rolled back`, func(t *testing.T) {
		app, _ := f.createApplication(t, models.ApplicationStatusOffered)
		_, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID))
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))
		require.Equal(t, models.ApplicationStatusOffered, f.applicationStatus(t, app.ID))

		var count int64
		require.NoError(t, f.db.Model(&dbmodels.Interview{}).Where("application_id = ?", app.ID).Count(&count).Error)
		require.Zero(t, count)
	})

	t.Run(`terminal application`, func(t *testing.T) {
		app, _ := f.createApplication(t, models.ApplicationStatusWithdrawn)
		_, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID))
		require.True(t, apperrors.Is(err, apperrors.KindAlreadyInTerminalState))
	})

	t.Run(`interviewers check`, func(t *testing.T) {
		app, applicant := f.createApplication(t, models.ApplicationStatusScreening)
		_, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, "missing"))
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		inactive := f.createUser(t, false, models.CapabilityInterviewer)
		_, err = f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, inactive.ID))
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		_, err = f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, applicant.ID))
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		_, err = f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID, f.alice.ID))
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
		require.Equal(t, models.ApplicationStatusScreening, f.applicationStatus(t, app.ID))
	})

	t.Run(`access`, func(t *testing.T) {
		app, applicant := f.createApplication(t, models.ApplicationStatusScreening)
		_, err := f.handler.Schedule(ctx, f.alice, f.scheduleRequest(app.ID, f.alice.ID))
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
		_, err = f.handler.Schedule(ctx, applicant, f.scheduleRequest(app.ID, f.alice.ID))
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))

		_, err = f.handler.Schedule(ctx, f.bob, f.scheduleRequest(app.ID, f.alice.ID))
		require.NoError(t, err)
		_, err = f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest("missing", f.alice.ID))
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})
}

func TestRescheduleAndCancel(t *testing.T) {
	f := newFixture(t, "interview_reschedule")
	ctx := context.Background()
	app, applicant := f.createApplication(t, models.ApplicationStatusScreening)
	interview, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID))
	require.NoError(t, err)

	t.Run(`reschedule`, func(t *testing.T) {
		_, err := f.handler.Reschedule(ctx, f.recruiter, interview.ID, interviewapimodels.RescheduleRequest{ScheduledAt: time.Now()})
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		location := "Онлайн"
		newTime := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
		view, err := f.handler.Reschedule(ctx, f.recruiter, interview.ID, interviewapimodels.RescheduleRequest{
			ScheduledAt: newTime,
			Location:    &location,
			Reason:      "интервьюер заболел",
		})
		require.NoError(t, err)
		require.Equal(t, models.InterviewStatusRescheduled, view.Status)
		require.True(t, newTime.Equal(view.ScheduledAt))
		require.Equal(t, "Онлайн", view.Location)
		require.Equal(t, 60, view.DurationMinutes)
		require.Equal(t, "интервьюер заболел", view.RescheduleReason)

		require.Contains(t, f.notificationTypes(t, applicant.ID), models.NotifyInterviewRescheduled)
		require.Contains(t, f.notificationTypes(t, f.alice.ID), models.NotifyInterviewRescheduled)
	})

	t.Run(`cancel`, func(t *testing.T) {
		_, err := f.handler.Cancel(ctx, f.alice, interview.ID, "нет времени")
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
		_, err = f.handler.Cancel(ctx, f.recruiter, interview.ID, "")
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		view, err := f.handler.Cancel(ctx, f.recruiter, interview.ID, "вакансия закрыта")
		require.NoError(t, err)
		require.Equal(t, models.InterviewStatusCancelled, view.Status)
		require.Equal(t, "вакансия закрыта", view.CancelReason)
		require.Contains(t, f.notificationTypes(t, applicant.ID), models.NotifyInterviewCancelled)

		_, err = f.handler.Cancel(ctx, f.recruiter, interview.ID, "повторно")
		require.True(t, apperrors.Is(err, apperrors.KindAlreadyInTerminalState))
		_, err = f.handler.Reschedule(ctx, f.recruiter, interview.ID, interviewapimodels.RescheduleRequest{ScheduledAt: time.Now(), Reason: "перенос"})
		require.True(t, apperrors.Is(err, apperrors.KindAlreadyInTerminalState))
		_, err = f.handler.AssignInterviewers(ctx, f.recruiter, interview.ID, []string{f.bob.ID})
		require.True(t, apperrors.Is(err, apperrors.KindAlreadyInTerminalState))

		rating := 8
		_, err = f.handler.Complete(ctx, f.alice, interview.ID, interviewapimodels.CompleteRequest{Rating: &rating})
		require.True(t, apperrors.Is(err, apperrors.KindAlreadyInTerminalState))
	})

	t.Run(`not found`, func(t *testing.T) {
		_, err := f.handler.Cancel(ctx, f.recruiter, "missing", "причина")
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})
}

func TestAssignInterviewers(t *testing.T) {
	f := newFixture(t, "interview_assign")
	ctx := context.Background()
	app, _ := f.createApplication(t, models.ApplicationStatusScreening)
	interview, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID))
	require.NoError(t, err)

	assigned := func(view interviewapimodels.InterviewView) []string {
		result := make([]string, 0, len(view.Assignments))
		for _, assignment := range view.Assignments {
			result = append(result, assignment.InterviewerID)
		}
		return result
	}

	t.Run(`add interviewer`, func(t *testing.T) {
		view, err := f.handler.AssignInterviewers(ctx, f.recruiter, interview.ID, []string{f.alice.ID, f.bob.ID})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{f.alice.ID, f.bob.ID}, assigned(view))
	})

	t.Run(`missing ids are unassigned`, func(t *testing.T) {
		view, err := f.handler.AssignInterviewers(ctx, f.recruiter, interview.ID, []string{f.bob.ID})
		require.NoError(t, err)
		require.Equal(t, []string{f.bob.ID}, assigned(view))

		stored, err := f.handler.GetByID(f.recruiter, interview.ID)
		require.NoError(t, err)
		require.Equal(t, []string{f.bob.ID}, assigned(stored))

		_, err = f.handler.Complete(ctx, f.alice, interview.ID, interviewapimodels.CompleteRequest{})
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))

		// bob уведомлен только о первом назначении
		require.Equal(t, []models.NotificationType{models.NotifyInterviewerAssigned}, f.notificationTypes(t, f.bob.ID))
	})

	t.Run(`same set changes nothing`, func(t *testing.T) {
		var before int64
		require.NoError(t, f.db.Model(&dbmodels.AuditLog{}).Where("entity_id = ?", interview.ID).Count(&before).Error)
		view, err := f.handler.AssignInterviewers(ctx, f.recruiter, interview.ID, []string{f.bob.ID})
		require.NoError(t, err)
		require.Equal(t, []string{f.bob.ID}, assigned(view))
		var after int64
		require.NoError(t, f.db.Model(&dbmodels.AuditLog{}).Where("entity_id = ?", interview.ID).Count(&after).Error)
		require.Equal(t, before, after)
	})

	t.Run(`empty list`, func(t *testing.T) {
		_, err := f.handler.AssignInterviewers(ctx, f.recruiter, interview.ID, nil)
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run(`unassigning last pending interviewer completes interview`, func(t *testing.T) {
		other, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID, f.bob.ID))
		require.NoError(t, err)
		_, err = f.handler.Complete(ctx, f.alice, other.ID, interviewapimodels.CompleteRequest{Feedback: "хорошо"})
		require.NoError(t, err)

		view, err := f.handler.AssignInterviewers(ctx, f.recruiter, other.ID, []string{f.alice.ID})
		require.NoError(t, err)
		require.Equal(t, models.InterviewStatusCompleted, view.Status)
		require.NotNil(t, view.CompletedAt)

		var audits int64
		require.NoError(t, f.db.Model(&dbmodels.AuditLog{}).Where("entity_id = ? and action = ?", other.ID, models.AuditInterviewCompleted).Count(&audits).Error)
		require.Equal(t, int64(1), audits)
	})
}

func TestCompleteOrder(t *testing.T) {
	f := newFixture(t, "interview_complete_order")
	ctx := context.Background()
	carol := f.createUser(t, true, models.CapabilityInterviewer)
	interviewers := []models.Actor{f.alice, f.bob, carol}
	orders := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	for _, order := range orders {
		t.Run(fmt.Sprintf(`order %v`, order), func(t *testing.T) {
			app, _ := f.createApplication(t, models.ApplicationStatusScreening)
			interview, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID, f.bob.ID, carol.ID))
			require.NoError(t, err)

			for n, idx := range order {
				view, err := f.handler.Complete(ctx, interviewers[idx], interview.ID, interviewapimodels.CompleteRequest{Feedback: "отзыв"})
				require.NoError(t, err)
				if n < len(order)-1 {
					require.Equal(t, models.InterviewStatusScheduled, view.Status)
					require.Nil(t, view.CompletedAt)
				} else {
					require.Equal(t, models.InterviewStatusCompleted, view.Status)
					require.NotNil(t, view.CompletedAt)
				}
			}
		})
	}
}

func TestCompleteConcurrently(t *testing.T) {
	f := newFixture(t, "interview_complete_concurrent")
	ctx := context.Background()
	carol := f.createUser(t, true, models.CapabilityInterviewer)
	interviewers := []models.Actor{f.alice, f.bob, carol}
	app, _ := f.createApplication(t, models.ApplicationStatusScreening)
	interview, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID, f.bob.ID, carol.ID))
	require.NoError(t, err)

	errs := make([]error, len(interviewers))
	wg := sync.WaitGroup{}
	for n, interviewer := range interviewers {
		wg.Add(1)
		go func(n int, interviewer models.Actor) {
			defer wg.Done()
			_, errs[n] = f.handler.Complete(ctx, interviewer, interview.ID, interviewapimodels.CompleteRequest{Feedback: "отзыв"})
		}(n, interviewer)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	view, err := f.handler.GetByID(f.recruiter, interview.ID)
	require.NoError(t, err)
	require.Equal(t, models.InterviewStatusCompleted, view.Status)
	var audits int64
	require.NoError(t, f.db.Model(&dbmodels.AuditLog{}).Where("entity_id = ? and action = ?", interview.ID, models.AuditInterviewCompleted).Count(&audits).Error)
	require.Equal(t, int64(1), audits)
}

func TestComplete(t *testing.T) {
	f := newFixture(t, "interview_complete")
	ctx := context.Background()
	app, applicant := f.createApplication(t, models.ApplicationStatusScreening)
	interview, err := f.handler.Schedule(ctx, f.recruiter, f.scheduleRequest(app.ID, f.alice.ID, f.bob.ID))
	require.NoError(t, err)
	rating := 7
	attended := true

	t.Run(`validation and access`, func(t *testing.T) {
		bad := 11
		_, err := f.handler.Complete(ctx, f.alice, interview.ID, interviewapimodels.CompleteRequest{Rating: &bad})
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
		_, err = f.handler.Complete(ctx, f.alice, interview.ID, interviewapimodels.CompleteRequest{Recommendation: "MAYBE"})
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
		_, err = f.handler.Complete(ctx, f.recruiter, interview.ID, interviewapimodels.CompleteRequest{})
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
		_, err = f.handler.Complete(ctx, f.alice, "missing", interviewapimodels.CompleteRequest{})
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run(`completed after all feedback`, func(t *testing.T) {
		view, err := f.handler.Complete(ctx, f.alice, interview.ID, interviewapimodels.CompleteRequest{
			Feedback:       "сильный кандидат",
			Rating:         &rating,
			Recommendation: models.RecommendationYes,
			Attended:       &attended,
		})
		require.NoError(t, err)
		require.Equal(t, models.InterviewStatusScheduled, view.Status)
		require.Nil(t, view.CompletedAt)

		// повторный отзыв обновляет, но не завершает собеседование
		view, err = f.handler.Complete(ctx, f.alice, interview.ID, interviewapimodels.CompleteRequest{Feedback: "уточнение", Rating: &rating})
		require.NoError(t, err)
		require.Equal(t, models.InterviewStatusScheduled, view.Status)

		view, err = f.handler.Complete(ctx, f.bob, interview.ID, interviewapimodels.CompleteRequest{Recommendation: models.RecommendationNeutral})
		require.NoError(t, err)
		require.Equal(t, models.InterviewStatusCompleted, view.Status)
		require.NotNil(t, view.CompletedAt)
		for _, assignment := range view.Assignments {
			require.NotNil(t, assignment.CompletedAt)
		}

		// поздний отзыв после завершения допустим
		_, err = f.handler.Complete(ctx, f.bob, interview.ID, interviewapimodels.CompleteRequest{Recommendation: models.RecommendationYes})
		require.NoError(t, err)

		_, err = f.handler.Reschedule(ctx, f.recruiter, interview.ID, interviewapimodels.RescheduleRequest{ScheduledAt: time.Now(), Reason: "перенос"})
		require.True(t, apperrors.Is(err, apperrors.KindAlreadyInTerminalState))

		var audits []dbmodels.AuditLog
		require.NoError(t, f.db.Where("entity_id = ? and action = ?", interview.ID, models.AuditInterviewCompleted).Find(&audits).Error)
		require.Len(t, audits, 1)
	})

	t.Run(`views`, func(t *testing.T) {
		staffView, err := f.handler.GetByID(f.recruiter, interview.ID)
		require.NoError(t, err)
		require.Len(t, staffView.Assignments, 2)
		feedback := ""
		for _, assignment := range staffView.Assignments {
			if assignment.InterviewerID == f.alice.ID {
				feedback = assignment.Feedback
			}
		}
		require.Equal(t, "уточнение", feedback)

		candidateView, err := f.handler.GetByID(applicant, interview.ID)
		require.NoError(t, err)
		for _, assignment := range candidateView.Assignments {
			require.Empty(t, assignment.Feedback)
			require.Nil(t, assignment.Rating)
		}

		stranger := f.createUser(t, true, models.CapabilityApplicant)
		_, err = f.handler.GetByID(stranger, interview.ID)
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
		_, err = f.handler.ListByApplication(stranger, app.ID)
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))

		list, err := f.handler.ListByApplication(applicant, app.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)

		mine, err := f.handler.ListMine(f.alice, false)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		mine, err = f.handler.ListMine(f.alice, true)
		require.NoError(t, err)
		require.Empty(t, mine)
	})
}
