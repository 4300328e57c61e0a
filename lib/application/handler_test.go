package applicationhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"hr-pipeline-backend/db"
	audithandler "hr-pipeline-backend/lib/audit"
	notificationhandler "hr-pipeline-backend/lib/notification"
	sideeffects "hr-pipeline-backend/lib/side-effects"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	applicationapimodels "hr-pipeline-backend/models/api/application"
	dbmodels "hr-pipeline-backend/models/db"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCVStorage struct {
	files map[string]bool
}

func (f *fakeCVStorage) Upload(ctx context.Context, applicantID, fileName string, fileReader io.Reader, fileSize int64, contentType string) (string, error) {
	ref := fmt.Sprintf("cv-%d.pdf", len(f.files)+1)
	f.files[applicantID+"/"+ref] = true
	return ref, nil
}

func (f *fakeCVStorage) Exists(ctx context.Context, applicantID, ref string) (bool, error) {
	return f.files[applicantID+"/"+ref], nil
}

type fixture struct {
	db        *gorm.DB
	handler   Provider
	storage   *fakeCVStorage
	recruiter models.Actor
	applicant models.Actor
	vacancy   dbmodels.Vacancy
}

func newFixture(t *testing.T, name string) fixture {
	DB, err := db.OpenInMemory(name)
	require.NoError(t, err)
	effects := sideeffects.NewInline(audithandler.New(DB), notificationhandler.New(DB, nil, nil, notificationhandler.Options{RatePerSec: 1000, Burst: 100}))

	recruiter := dbmodels.User{Email: "hr@example.com", FirstName: "Анна", Capabilities: models.Capabilities{models.CapabilityRecruiter}, IsActive: true}
	require.NoError(t, DB.Create(&recruiter).Error)
	applicant := dbmodels.User{Email: "cand@example.com", FirstName: "Иван", Capabilities: models.Capabilities{models.CapabilityApplicant}, IsActive: true}
	require.NoError(t, DB.Create(&applicant).Error)
	vacancy := dbmodels.Vacancy{Title: "Go-разработчик", AuthorID: recruiter.ID, Status: models.VacancyStatusOpen, IsPublished: true}
	require.NoError(t, DB.Create(&vacancy).Error)

	storage := &fakeCVStorage{files: map[string]bool{}}
	return fixture{
		db:        DB,
		handler:   New(DB, effects, storage, 5*time.Second),
		storage:   storage,
		recruiter: models.Actor{ID: recruiter.ID, Capabilities: recruiter.Capabilities, Origin: "127.0.0.1"},
		applicant: models.Actor{ID: applicant.ID, Capabilities: applicant.Capabilities, Origin: "127.0.0.1"},
		vacancy:   vacancy,
	}
}

// createApplication отклик в заданном статусе от отдельного кандидата
func (f fixture) createApplication(t *testing.T, status models.ApplicationStatus) (dbmodels.Application, models.Actor) {
	applicant := dbmodels.User{Capabilities: models.Capabilities{models.CapabilityApplicant}, IsActive: true}
	require.NoError(t, f.db.Create(&applicant).Error)
	rec := dbmodels.Application{
		VacancyID:    f.vacancy.ID,
		ApplicantID:  applicant.ID,
		Status:       status,
		StructuredCV: []byte(`{"skills":["go"]}`),
		Version:      1,
	}
	require.NoError(t, f.db.Create(&rec).Error)
	return rec, models.Actor{ID: applicant.ID, Capabilities: applicant.Capabilities}
}

func (f fixture) addEvaluation(t *testing.T, applicationID string, rating int) {
	rec := dbmodels.Evaluation{
		ApplicationID:       applicationID,
		EvaluatorID:         f.recruiter.ID,
		EvaluatorCapability: models.CapabilityRecruiter,
		Rating:              rating,
	}
	require.NoError(t, f.db.Create(&rec).Error)
}

func (f fixture) auditActions(t *testing.T, entityID string) []models.AuditAction {
	var list []dbmodels.AuditLog
	require.NoError(t, f.db.Where("entity_id = ?", entityID).Order("created_at").Find(&list).Error)
	result := make([]models.AuditAction, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.Action)
	}
	return result
}

func (f fixture) notifications(t *testing.T, receiverID string) []dbmodels.Notification {
	var list []dbmodels.Notification
	require.NoError(t, f.db.Where("receiver_id = ?", receiverID).Find(&list).Error)
	return list
}

func TestApply(t *testing.T) {
	f := newFixture(t, "application_apply")
	ctx := context.Background()
	request := applicationapimodels.ApplyRequest{
		MotivationLetter: "Хочу у вас работать",
		StructuredCV:     json.RawMessage(`{"experience":"5 лет"}`),
	}

	t.Run(`only applicant can apply`, func(t *testing.T) {
		_, err := f.handler.Apply(ctx, f.recruiter, f.vacancy.ID, request)
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
	})

	t.Run(`cv is required`, func(t *testing.T) {
		_, err := f.handler.Apply(ctx, f.applicant, f.vacancy.ID, applicationapimodels.ApplyRequest{})
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run(`unknown vacancy`, func(t *testing.T) {
		_, err := f.handler.Apply(ctx, f.applicant, "missing", request)
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run(`draft vacancy does not accept applications`, func(t *testing.T) {
		draft := dbmodels.Vacancy{Title: "Черновик", AuthorID: f.recruiter.ID, Status: models.VacancyStatusDraft}
		require.NoError(t, f.db.Create(&draft).Error)
		_, err := f.handler.Apply(ctx, f.applicant, draft.ID, request)
		require.True(t, apperrors.Is(err, apperrors.KindRuleViolation))
	})

	t.Run(`uploaded cv must exist`, func(t *testing.T) {
		_, err := f.handler.Apply(ctx, f.applicant, f.vacancy.ID, applicationapimodels.ApplyRequest{CVFileRef: "nope.pdf"})
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run(`apply and duplicate`, func(t *testing.T) {
		view, err := f.handler.Apply(ctx, f.applicant, f.vacancy.ID, request)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusApplied, view.Status)
		require.Equal(t, f.vacancy.Title, view.VacancyTitle)
		require.Equal(t, []models.AuditAction{models.AuditApplicationCreated}, f.auditActions(t, view.ID))

		list := f.notifications(t, f.recruiter.ID)
		require.Len(t, list, 1)
		require.Equal(t, models.NotifyApplicationReceived, list[0].Type)

		_, err = f.handler.Apply(ctx, f.applicant, f.vacancy.ID, request)
		require.True(t, apperrors.Is(err, apperrors.KindConflict))
	})

	t.Run(`apply with uploaded cv`, func(t *testing.T) {
		other := models.Actor{ID: "applicant-cv", Capabilities: models.Capabilities{models.CapabilityApplicant}}
		ref, err := f.handler.UploadCV(ctx, other, "Резюме.PDF", strings.NewReader("%PDF"), 4, "application/pdf")
		require.NoError(t, err)
		view, err := f.handler.Apply(ctx, other, f.vacancy.ID, applicationapimodels.ApplyRequest{CVFileRef: ref})
		require.NoError(t, err)
		require.Equal(t, ref, view.CVFileRef)
	})
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t, "application_update_status")
	ctx := context.Background()

	t.Run(`applicant cannot change status`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.UpdateStatus(ctx, owner, app.ID, models.ApplicationStatusScreening, "")
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
	})

	t.Run(`unknown status`, func(t *testing.T) {
		app, _ := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.UpdateStatus(ctx, f.recruiter, app.ID, "HIRED", "")
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run(`skip phase is rejected with allowed list`, func(t *testing.T) {
		app, _ := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusInterview, "")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))
		var appErr *apperrors.Error
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, []string{"SCREENING", "REJECTED", "WITHDRAWN"}, appErr.Allowed)
	})

	t.Run(`full happy path`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		view, err := f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusScreening, "резюме подходит")
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusScreening, view.Status)
		require.Equal(t, "резюме подходит", view.Notes)

		_, err = f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusInterview, "")
		require.NoError(t, err)

		_, err = f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusOffered, "")
		require.True(t, apperrors.Is(err, apperrors.KindRuleViolation))

		f.addEvaluation(t, app.ID, 5)
		_, err = f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusOffered, "")
		require.True(t, apperrors.Is(err, apperrors.KindRuleViolation))

		f.addEvaluation(t, app.ID, 9)
		_, err = f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusOffered, "")
		require.NoError(t, err)

		view, err = f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusAccepted, "")
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusAccepted, view.Status)
		require.Empty(t, view.AllowedTransitions)

		_, err = f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusRejected, "")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))

		require.Len(t, f.auditActions(t, app.ID), 4)
		decisions := f.notifications(t, owner.ID)
		require.Len(t, decisions, 1)
		require.Equal(t, models.NotifyApplicationAccepted, decisions[0].Type)

		var stored dbmodels.Application
		require.NoError(t, f.db.First(&stored, "id = ?", app.ID).Error)
		require.Equal(t, 5, stored.Version)
	})

	t.Run(`same status is a no-op`, func(t *testing.T) {
		app, _ := f.createApplication(t, models.ApplicationStatusScreening)
		view, err := f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusScreening, "")
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusScreening, view.Status)
		require.Empty(t, f.auditActions(t, app.ID))
	})

	t.Run(`sub status may move to its phase`, func(t *testing.T) {
		app, _ := f.createApplication(t, models.ApplicationStatusTestCompleted)
		view, err := f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusInterview, "")
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusInterview, view.Status)
	})

	t.Run(`reject notifies applicant`, func(t *testing.T) {
		app, owner := f.createApplication(t, models.ApplicationStatusInterviewR2)
		_, err := f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusRejected, "не подходит")
		require.NoError(t, err)
		list := f.notifications(t, owner.ID)
		require.Len(t, list, 1)
		require.Equal(t, models.NotifyApplicationRejected, list[0].Type)
	})

	t.Run(`decision is sent without vacancy`, func(t *testing.T) {
		owner := dbmodels.User{Capabilities: models.Capabilities{models.CapabilityApplicant}, IsActive: true}
		require.NoError(t, f.db.Create(&owner).Error)
		app := dbmodels.Application{VacancyID: "deleted-vacancy", ApplicantID: owner.ID, Status: models.ApplicationStatusScreening, StructuredCV: []byte(`{}`), Version: 1}
		require.NoError(t, f.db.Create(&app).Error)

		_, err := f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusRejected, "")
		require.NoError(t, err)
		list := f.notifications(t, owner.ID)
		require.Len(t, list, 1)
		require.Equal(t, models.NotifyApplicationRejected, list[0].Type)
		require.Contains(t, list[0].Message, "без названия")
	})
}

func TestWithdraw(t *testing.T) {
	f := newFixture(t, "application_withdraw")
	ctx := context.Background()

	nonTerminal := []models.ApplicationStatus{
		models.ApplicationStatusApplied,
		models.ApplicationStatusScreening,
		models.ApplicationStatusTestInvited,
		models.ApplicationStatusTestCompleted,
		models.ApplicationStatusInterview,
		models.ApplicationStatusInterviewR1,
		models.ApplicationStatusInterviewR2,
		models.ApplicationStatusOffered,
	}
	for _, status := range nonTerminal {
		t.Run(fmt.Sprintf(`withdraw from %v`, status), func(t *testing.T) {
			app, owner := f.createApplication(t, status)
			view, err := f.handler.Withdraw(ctx, owner, app.ID, "нашел другую работу")
			require.NoError(t, err)
			require.Equal(t, models.ApplicationStatusWithdrawn, view.Status)
			require.Equal(t, "нашел другую работу", view.WithdrawReason)

			_, err = f.handler.Withdraw(ctx, owner, app.ID, "")
			require.True(t, apperrors.Is(err, apperrors.KindAlreadyInTerminalState))
			require.Equal(t, []models.AuditAction{models.AuditApplicationWithdrawn}, f.auditActions(t, app.ID))
		})
	}

	for _, status := range []models.ApplicationStatus{models.ApplicationStatusAccepted, models.ApplicationStatusRejected} {
		t.Run(fmt.Sprintf(`withdraw from terminal %v`, status), func(t *testing.T) {
			app, owner := f.createApplication(t, status)
			_, err := f.handler.Withdraw(ctx, owner, app.ID, "")
			require.True(t, apperrors.Is(err, apperrors.KindAlreadyInTerminalState))
		})
	}

	t.Run(`only owner can withdraw`, func(t *testing.T) {
		app, _ := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.Withdraw(ctx, f.applicant, app.ID, "")
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
		_, err = f.handler.Withdraw(ctx, f.recruiter, app.ID, "")
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
	})

	t.Run(`vacancy author is notified`, func(t *testing.T) {
		before := len(f.notifications(t, f.recruiter.ID))
		app, owner := f.createApplication(t, models.ApplicationStatusApplied)
		_, err := f.handler.Withdraw(ctx, owner, app.ID, "")
		require.NoError(t, err)
		list := f.notifications(t, f.recruiter.ID)
		require.Len(t, list, before+1)
	})
}

func TestRejectWithdrawRace(t *testing.T) {
	f := newFixture(t, "application_race")
	ctx := context.Background()

	for n := 0; n < 10; n++ {
		app, owner := f.createApplication(t, models.ApplicationStatusInterviewR1)
		var rejectErr, withdrawErr error
		wg := sync.WaitGroup{}
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, rejectErr = f.handler.UpdateStatus(ctx, f.recruiter, app.ID, models.ApplicationStatusRejected, "")
		}()
		go func() {
			defer wg.Done()
			_, withdrawErr = f.handler.Withdraw(ctx, owner, app.ID, "")
		}()
		wg.Wait()

		require.True(t, (rejectErr == nil) != (withdrawErr == nil), "должна пройти ровно одна операция")
		var stored dbmodels.Application
		require.NoError(t, f.db.First(&stored, "id = ?", app.ID).Error)
		require.Equal(t, 2, stored.Version)
		if rejectErr == nil {
			require.Equal(t, models.ApplicationStatusRejected, stored.Status)
			require.True(t, apperrors.Is(withdrawErr, apperrors.KindAlreadyInTerminalState))
		} else {
			require.Equal(t, models.ApplicationStatusWithdrawn, stored.Status)
			require.True(t, apperrors.Is(rejectErr, apperrors.KindInvalidTransition))
		}
		require.Len(t, f.auditActions(t, app.ID), 1)
	}
}

func TestApplicationAccess(t *testing.T) {
	f := newFixture(t, "application_access")

	app, owner := f.createApplication(t, models.ApplicationStatusApplied)
	f.createApplication(t, models.ApplicationStatusScreening)
	f.createApplication(t, models.ApplicationStatusScreening)

	t.Run(`GetByID check`, func(t *testing.T) {
		view, err := f.handler.GetByID(owner, app.ID)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusApplied, view.Phase)

		_, err = f.handler.GetByID(f.recruiter, app.ID)
		require.NoError(t, err)

		_, err = f.handler.GetByID(f.applicant, app.ID)
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))

		_, err = f.handler.GetByID(f.recruiter, "missing")
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run(`ListByVacancy check`, func(t *testing.T) {
		_, _, err := f.handler.ListByVacancy(owner, f.vacancy.ID, applicationapimodels.ApplicationFilter{})
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))

		list, rowCount, err := f.handler.ListByVacancy(f.recruiter, f.vacancy.ID, applicationapimodels.ApplicationFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(3), rowCount)
		require.Len(t, list, 3)

		filter := applicationapimodels.ApplicationFilter{Status: models.ApplicationStatusScreening}
		filter.Limit = 1
		list, rowCount, err = f.handler.ListByVacancy(f.recruiter, f.vacancy.ID, filter)
		require.NoError(t, err)
		require.Equal(t, int64(2), rowCount)
		require.Len(t, list, 1)
	})

	t.Run(`ListMine check`, func(t *testing.T) {
		list, rowCount, err := f.handler.ListMine(owner, applicationapimodels.ApplicationFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(1), rowCount)
		require.Equal(t, app.ID, list[0].ID)
	})
}
