package testhandler

import (
	"context"
	"hr-pipeline-backend/db"
	audithandler "hr-pipeline-backend/lib/audit"
	notificationhandler "hr-pipeline-backend/lib/notification"
	sideeffects "hr-pipeline-backend/lib/side-effects"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	testapimodels "hr-pipeline-backend/models/api/test"
	dbmodels "hr-pipeline-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	handler   Provider
	recruiter models.Actor
	vacancy   dbmodels.Vacancy
}

func newFixture(t *testing.T, name string) fixture {
	DB, err := db.OpenInMemory(name)
	require.NoError(t, err)
	effects := sideeffects.NewInline(audithandler.New(DB), notificationhandler.New(DB, nil, nil, notificationhandler.Options{RatePerSec: 1000, Burst: 100}))
	recruiter := dbmodels.User{Email: "hr@example.com", Capabilities: models.Capabilities{models.CapabilityRecruiter}, IsActive: true}
	require.NoError(t, DB.Create(&recruiter).Error)
	vacancy := dbmodels.Vacancy{Title: "Go-разработчик", AuthorID: recruiter.ID, Status: models.VacancyStatusOpen, IsPublished: true}
	require.NoError(t, DB.Create(&vacancy).Error)
	return fixture{
		db:        DB,
		handler:   New(DB, effects, 5*time.Second),
		recruiter: models.Actor{ID: recruiter.ID, Capabilities: recruiter.Capabilities},
		vacancy:   vacancy,
	}
}

func (f fixture) createApplication(t *testing.T, status models.ApplicationStatus) (dbmodels.Application, models.Actor) {
	applicant := dbmodels.User{Capabilities: models.Capabilities{models.CapabilityApplicant}, IsActive: true}
	require.NoError(t, f.db.Create(&applicant).Error)
	rec := dbmodels.Application{
		VacancyID:    f.vacancy.ID,
		ApplicantID:  applicant.ID,
		Status:       status,
		StructuredCV: []byte(`{}`),
		Version:      1,
	}
	require.NoError(t, f.db.Create(&rec).Error)
	return rec, models.Actor{ID: applicant.ID, Capabilities: applicant.Capabilities}
}

func (f fixture) applicationStatus(t *testing.T, applicationID string) models.ApplicationStatus {
	var rec dbmodels.Application
	require.NoError(t, f.db.First(&rec, "id = ?", applicationID).Error)
	return rec.Status
}

func quizData(vacancyID string) testapimodels.TestData {
	duration := 30
	passing := 60.0
	return testapimodels.TestData{
		VacancyID:       vacancyID,
		Title:           "Основы Go",
		Type:            models.TestTypeInternalQuiz,
		DurationMinutes: &duration,
		PassingScore:    &passing,
		Questions: []testapimodels.QuestionData{
			{ID: "q1", Type: models.QuestionTypeMultipleChoice, Text: "Примитив синхронизации?", Options: []string{"chan", "slice"}, CorrectAnswer: "chan", Points: 5},
			{ID: "q2", Type: models.QuestionTypeTrueFalse, Text: "map потокобезопасен?", CorrectAnswer: "false", Points: 5},
		},
	}
}

func externalData(vacancyID string) testapimodels.TestData {
	return testapimodels.TestData{
		VacancyID:   vacancyID,
		Title:       "Алгоритмы",
		Type:        models.TestTypeExternalLink,
		ExternalURL: "https://tests.example.com/algo",
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t, "test_create")
	ctx := context.Background()
	applicant := models.Actor{ID: "a1", Capabilities: models.Capabilities{models.CapabilityApplicant}}

	t.Run(`only pipeline managers`, func(t *testing.T) {
		_, err := f.handler.Create(ctx, applicant, quizData(f.vacancy.ID))
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
	})

	t.Run(`validation`, func(t *testing.T) {
		data := quizData(f.vacancy.ID)
		data.Questions = nil
		_, err := f.handler.Create(ctx, f.recruiter, data)
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		data = externalData(f.vacancy.ID)
		data.ExternalURL = "not a url"
		_, err = f.handler.Create(ctx, f.recruiter, data)
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		data = quizData(f.vacancy.ID)
		data.Questions[1].ID = "q1"
		_, err = f.handler.Create(ctx, f.recruiter, data)
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run(`unknown vacancy`, func(t *testing.T) {
		_, err := f.handler.Create(ctx, f.recruiter, quizData("missing"))
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run(`create and hide answers`, func(t *testing.T) {
		data := quizData(f.vacancy.ID)
		data.Questions[0].ID = ""
		view, err := f.handler.Create(ctx, f.recruiter, data)
		require.NoError(t, err)
		require.Equal(t, 10, view.TotalPoints)
		require.True(t, view.IsActive)
		require.NotEmpty(t, view.Questions[0].ID)
		require.Equal(t, "false", view.Questions[1].CorrectAnswer)

		candidateView, err := f.handler.GetByID(applicant, view.ID)
		require.NoError(t, err)
		require.Empty(t, candidateView.Questions[0].CorrectAnswer)
		require.Empty(t, candidateView.Questions[1].CorrectAnswer)

		_, err = f.handler.Deactivate(ctx, f.recruiter, view.ID)
		require.NoError(t, err)
		_, err = f.handler.Deactivate(ctx, f.recruiter, view.ID)
		require.NoError(t, err)

		list, err := f.handler.ListByVacancy(applicant, f.vacancy.ID)
		require.NoError(t, err)
		require.Empty(t, list)
		list, err = f.handler.ListByVacancy(f.recruiter, f.vacancy.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)

		var audits []dbmodels.AuditLog
		require.NoError(t, f.db.Where("entity_id = ?", view.ID).Find(&audits).Error)
		require.Len(t, audits, 2)
	})
}

func TestInviteToTest(t *testing.T) {
	f := newFixture(t, "test_invite")
	ctx := context.Background()
	quiz, err := f.handler.Create(ctx, f.recruiter, quizData(f.vacancy.ID))
	require.NoError(t, err)

	t.Run(`invite moves to TEST_INVITED`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		attempt, err := f.handler.InviteToTest(ctx, f.recruiter, app.ID, quiz.ID)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusTestInvited, f.applicationStatus(t, app.ID))
		require.WithinDuration(t, time.Now().AddDate(0, 0, models.DefaultTestDeadlineDays), attempt.Deadline, time.Minute)

		var list []dbmodels.Notification
		require.NoError(t, f.db.Where("receiver_id = ?", owner.ID).Find(&list).Error)
		require.Len(t, list, 1)
		require.Equal(t, models.NotifyTestInvitation, list[0].Type)

		_, err = f.handler.InviteToTest(ctx, f.recruiter, app.ID, quiz.ID)
		require.True(t, apperrors.Is(err, apperrors.KindConflict))
	})

	t.Run(`test deadline is used`, func(t *testing.T) {
		data := externalData(f.vacancy.ID)
		deadline := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
		data.Deadline = &deadline
		external, err := f.handler.Create(ctx, f.recruiter, data)
		require.NoError(t, err)
		app, _ := f.createApplication(t, models.ApplicationStatusScreening)
		attempt, err := f.handler.InviteToTest(ctx, f.recruiter, app.ID, external.ID)
		require.NoError(t, err)
		require.True(t, deadline.Equal(attempt.Deadline))
	})

	t.Run(`later phase is kept`, func(t *testing.T) {
		app, _ := f.createApplication(t, models.ApplicationStatusInterviewR1)
		_, err := f.handler.InviteToTest(ctx, f.recruiter, app.ID, quiz.ID)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusInterviewR1, f.applicationStatus(t, app.ID))
	})

	t.Run(`rules`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.InviteToTest(ctx, owner, app.ID, quiz.ID)
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))

		_, err = f.handler.InviteToTest(ctx, f.recruiter, "missing", quiz.ID)
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
		_, err = f.handler.InviteToTest(ctx, f.recruiter, app.ID, "missing")
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))

		otherVacancy := dbmodels.Vacancy{Title: "Другая", AuthorID: f.recruiter.ID, Status: models.VacancyStatusOpen}
		require.NoError(t, f.db.Create(&otherVacancy).Error)
		other, err := f.handler.Create(ctx, f.recruiter, quizData(otherVacancy.ID))
		require.NoError(t, err)
		_, err = f.handler.InviteToTest(ctx, f.recruiter, app.ID, other.ID)
		require.True(t, apperrors.Is(err, apperrors.KindRuleViolation))

		inactive, err := f.handler.Create(ctx, f.recruiter, quizData(f.vacancy.ID))
		require.NoError(t, err)
		_, err = f.handler.Deactivate(ctx, f.recruiter, inactive.ID)
		require.NoError(t, err)
		_, err = f.handler.InviteToTest(ctx, f.recruiter, app.ID, inactive.ID)
		require.True(t, apperrors.Is(err, apperrors.KindRuleViolation))

		rejected, _ := f.createApplication(t, models.ApplicationStatusRejected)
		_, err = f.handler.InviteToTest(ctx, f.recruiter, rejected.ID, quiz.ID)
		require.True(t, apperrors.Is(err, apperrors.KindAlreadyInTerminalState))
	})
}

func TestSubmitQuiz(t *testing.T) {
	f := newFixture(t, "test_submit")
	ctx := context.Background()
	quiz, err := f.handler.Create(ctx, f.recruiter, quizData(f.vacancy.ID))
	require.NoError(t, err)
	chanAnswer := "chan"
	no := false

	t.Run(`submit once`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.InviteToTest(ctx, f.recruiter, app.ID, quiz.ID)
		require.NoError(t, err)

		request := testapimodels.SubmitRequest{
			Answers: []testapimodels.AnswerData{
				{QuestionID: "q1", Kind: models.AnswerKindText, Text: &chanAnswer},
				{QuestionID: "q2", Kind: models.AnswerKindBoolean, Bool: &no},
			},
		}
		_, err = f.handler.SubmitQuiz(ctx, f.recruiter, app.ID, request)
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))

		attempt, err := f.handler.SubmitQuiz(ctx, owner, app.ID, request)
		require.NoError(t, err)
		require.Equal(t, 10, *attempt.Score)
		require.Equal(t, 100.0, *attempt.Percentage)
		require.True(t, *attempt.IsPassed)
		require.NotNil(t, attempt.CompletedAt)
		require.Equal(t, models.ApplicationStatusTestCompleted, f.applicationStatus(t, app.ID))

		_, err = f.handler.SubmitQuiz(ctx, owner, app.ID, request)
		require.True(t, apperrors.Is(err, apperrors.KindAlreadyCompleted))

		stored, err := f.handler.GetAttempt(owner, app.ID, quiz.ID)
		require.NoError(t, err)
		require.Equal(t, 10, *stored.Score)
		require.Len(t, stored.Answers, 2)
	})

	t.Run(`failed quiz still completes`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusScreening)
		_, err := f.handler.InviteToTest(ctx, f.recruiter, app.ID, quiz.ID)
		require.NoError(t, err)
		attempt, err := f.handler.SubmitQuiz(ctx, owner, app.ID, testapimodels.SubmitRequest{TestID: quiz.ID})
		require.NoError(t, err)
		require.Equal(t, 0, *attempt.Score)
		require.False(t, *attempt.IsPassed)
		require.Equal(t, models.ApplicationStatusTestCompleted, f.applicationStatus(t, app.ID))
	})

	t.Run(`half correct is below passing score`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.InviteToTest(ctx, f.recruiter, app.ID, quiz.ID)
		require.NoError(t, err)
		yes := true
		attempt, err := f.handler.SubmitQuiz(ctx, owner, app.ID, testapimodels.SubmitRequest{
			Answers: []testapimodels.AnswerData{
				{QuestionID: "q1", Kind: models.AnswerKindText, Text: &chanAnswer},
				{QuestionID: "q2", Kind: models.AnswerKindBoolean, Bool: &yes},
			},
		})
		require.NoError(t, err)
		require.Equal(t, 5, *attempt.Score)
		require.Equal(t, 50.0, *attempt.Percentage)
		require.False(t, *attempt.IsPassed)
		require.Equal(t, models.ApplicationStatusTestCompleted, f.applicationStatus(t, app.ID))
	})

	t.Run(`withdrawn application cannot submit`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.InviteToTest(ctx, f.recruiter, app.ID, quiz.ID)
		require.NoError(t, err)
		require.NoError(t, f.db.Model(&dbmodels.Application{}).Where("id = ?", app.ID).Update("status", models.ApplicationStatusWithdrawn).Error)

		_, err = f.handler.SubmitQuiz(ctx, owner, app.ID, testapimodels.SubmitRequest{})
		require.True(t, apperrors.Is(err, apperrors.KindAlreadyInTerminalState))
		attempt, err := f.handler.GetAttempt(owner, app.ID, "")
		require.NoError(t, err)
		require.Nil(t, attempt.CompletedAt)
	})

	t.Run(`no invitation`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.SubmitQuiz(ctx, owner, app.ID, testapimodels.SubmitRequest{})
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run(`invalid answer`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		request := testapimodels.SubmitRequest{Answers: []testapimodels.AnswerData{{QuestionID: "q1", Kind: models.AnswerKindNumber}}}
		_, err := f.handler.SubmitQuiz(ctx, owner, app.ID, request)
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})
}

func TestMarkExternalComplete(t *testing.T) {
	f := newFixture(t, "test_external")
	ctx := context.Background()
	external, err := f.handler.Create(ctx, f.recruiter, externalData(f.vacancy.ID))
	require.NoError(t, err)
	quiz, err := f.handler.Create(ctx, f.recruiter, quizData(f.vacancy.ID))
	require.NoError(t, err)

	t.Run(`staff marks completion`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.InviteToTest(ctx, f.recruiter, app.ID, external.ID)
		require.NoError(t, err)

		stranger := models.Actor{ID: "other", Capabilities: models.Capabilities{models.CapabilityApplicant}}
		_, err = f.handler.MarkExternalComplete(ctx, stranger, app.ID, testapimodels.ExternalCompleteRequest{})
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
		_, err = f.handler.GetAttempt(stranger, app.ID, external.ID)
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))

		attempt, err := f.handler.MarkExternalComplete(ctx, f.recruiter, app.ID, testapimodels.ExternalCompleteRequest{TestID: external.ID, Notes: "результат 85/100"})
		require.NoError(t, err)
		require.True(t, attempt.ExternalCompleted)
		require.Equal(t, "результат 85/100", attempt.Notes)
		require.Equal(t, models.ApplicationStatusTestCompleted, f.applicationStatus(t, app.ID))

		_, err = f.handler.MarkExternalComplete(ctx, owner, app.ID, testapimodels.ExternalCompleteRequest{})
		require.True(t, apperrors.Is(err, apperrors.KindAlreadyCompleted))
	})

	t.Run(`type mismatch`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.InviteToTest(ctx, f.recruiter, app.ID, quiz.ID)
		require.NoError(t, err)
		_, err = f.handler.MarkExternalComplete(ctx, owner, app.ID, testapimodels.ExternalCompleteRequest{})
		require.True(t, apperrors.Is(err, apperrors.KindRuleViolation))
		require.Equal(t, models.ApplicationStatusTestInvited, f.applicationStatus(t, app.ID))
	})
}
