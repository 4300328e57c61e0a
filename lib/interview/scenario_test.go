package interviewhandler_test

import (
	"context"
	"hr-pipeline-backend/db"
	applicationhandler "hr-pipeline-backend/lib/application"
	audithandler "hr-pipeline-backend/lib/audit"
	evaluationhandler "hr-pipeline-backend/lib/evaluation"
	interviewhandler "hr-pipeline-backend/lib/interview"
	notificationhandler "hr-pipeline-backend/lib/notification"
	sideeffects "hr-pipeline-backend/lib/side-effects"
	testhandler "hr-pipeline-backend/lib/test"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	evaluationapimodels "hr-pipeline-backend/models/api/evaluation"
	interviewapimodels "hr-pipeline-backend/models/api/interview"
	testapimodels "hr-pipeline-backend/models/api/test"
	dbmodels "hr-pipeline-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createActor(t *testing.T, DB *gorm.DB, capability models.Capability) models.Actor {
	rec := dbmodels.User{FirstName: string(capability), Capabilities: models.Capabilities{capability}, IsActive: true}
	require.NoError(t, DB.Create(&rec).Error)
	return models.Actor{ID: rec.ID, Capabilities: rec.Capabilities}
}

func TestHiringScenario(t *testing.T) {
	DB, err := db.OpenInMemory("hiring_scenario")
	require.NoError(t, err)
	ctx := context.Background()
	effects := sideeffects.NewInline(audithandler.New(DB), notificationhandler.New(DB, nil, nil, notificationhandler.Options{RatePerSec: 1000, Burst: 100}))
	applications := applicationhandler.New(DB, effects, nil, 5*time.Second)
	tests := testhandler.New(DB, effects, 5*time.Second)
	interviews := interviewhandler.New(DB, effects, 5*time.Second)
	evaluations := evaluationhandler.New(DB, effects)

	recruiter := createActor(t, DB, models.CapabilityRecruiter)
	interviewer := createActor(t, DB, models.CapabilityInterviewer)
	outsider := createActor(t, DB, models.CapabilityInterviewer)
	applicant := createActor(t, DB, models.CapabilityApplicant)

	vacancy := dbmodels.Vacancy{Title: "Go-разработчик", AuthorID: recruiter.ID, Status: models.VacancyStatusOpen, IsPublished: true}
	require.NoError(t, DB.Create(&vacancy).Error)
	app := dbmodels.Application{
		VacancyID:    vacancy.ID,
		ApplicantID:  applicant.ID,
		Status:       models.ApplicationStatusApplied,
		StructuredCV: []byte(`{"skills":["go","postgres"]}`),
		Version:      1,
	}
	require.NoError(t, DB.Create(&app).Error)

	_, err = applications.UpdateStatus(ctx, recruiter, app.ID, models.ApplicationStatusScreening, "резюме подходит")
	require.NoError(t, err)

	duration := 20
	passing := 50.0
	quiz, err := tests.Create(ctx, recruiter, testapimodels.TestData{
		VacancyID:       vacancy.ID,
		Title:           "Основы Go",
		Type:            models.TestTypeInternalQuiz,
		DurationMinutes: &duration,
		PassingScore:    &passing,
		Questions: []testapimodels.QuestionData{
			{ID: "q1", Type: models.QuestionTypeShortAnswer, Text: "Ключевое слово запуска горутины?", CorrectAnswer: "go", Points: 1},
		},
	})
	require.NoError(t, err)
	_, err = tests.InviteToTest(ctx, recruiter, app.ID, quiz.ID)
	require.NoError(t, err)
	answer := "go"
	attempt, err := tests.SubmitQuiz(ctx, applicant, app.ID, testapimodels.SubmitRequest{
		TestID:  quiz.ID,
		Answers: []testapimodels.AnswerData{{QuestionID: "q1", Kind: models.AnswerKindText, Text: &answer}},
	})
	require.NoError(t, err)
	require.True(t, *attempt.IsPassed)

	interview, err := interviews.Schedule(ctx, recruiter, interviewapimodels.ScheduleRequest{
		ApplicationID:   app.ID,
		Title:           "Техническое собеседование",
		ScheduledAt:     time.Now().Add(24 * time.Hour),
		DurationMinutes: 60,
		InterviewerIDs:  []string{interviewer.ID},
	})
	require.NoError(t, err)

	// оффер без оценок запрещен
	_, err = applications.UpdateStatus(ctx, recruiter, app.ID, models.ApplicationStatusOffered, "")
	require.True(t, apperrors.Is(err, apperrors.KindRuleViolation))

	rating := 8
	_, err = interviews.Complete(ctx, interviewer, interview.ID, interviewapimodels.CompleteRequest{
		Feedback:       "уверенно решил задачу",
		Rating:         &rating,
		Recommendation: models.RecommendationYes,
	})
	require.NoError(t, err)

	_, err = evaluations.Create(ctx, outsider, app.ID, evaluationapimodels.EvaluationData{Rating: 10})
	require.True(t, apperrors.Is(err, apperrors.KindForbidden))
	_, err = evaluations.Create(ctx, interviewer, app.ID, evaluationapimodels.EvaluationData{Rating: 8, Recommendation: models.RecommendationYes})
	require.NoError(t, err)
	_, err = evaluations.Create(ctx, recruiter, app.ID, evaluationapimodels.EvaluationData{Rating: 5})
	require.NoError(t, err)

	stats, err := evaluations.Stats(recruiter, app.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalEvaluations)
	require.Equal(t, 6.5, stats.AverageRating)
	require.True(t, stats.OfferAllowed)

	// принять можно только после оффера
	_, err = applications.UpdateStatus(ctx, recruiter, app.ID, models.ApplicationStatusAccepted, "")
	require.Error(t, err)

	_, err = applications.UpdateStatus(ctx, recruiter, app.ID, models.ApplicationStatusOffered, "")
	require.NoError(t, err)
	view, err := applications.UpdateStatus(ctx, recruiter, app.ID, models.ApplicationStatusAccepted, "")
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatusAccepted, view.Status)

	var final dbmodels.Application
	require.NoError(t, DB.First(&final, "id = ?", app.ID).Error)
	// SCREENING, TEST_INVITED, TEST_COMPLETED, INTERVIEW_R1, OFFERED, ACCEPTED
	require.Equal(t, 7, final.Version)

	var statusAudits []dbmodels.AuditLog
	require.NoError(t, DB.Where("entity_id = ? and action = ?", app.ID, models.AuditApplicationStatus).Find(&statusAudits).Error)
	require.Len(t, statusAudits, 6)

	_, err = applications.Withdraw(ctx, applicant, app.ID, "передумал")
	require.True(t, apperrors.Is(err, apperrors.KindAlreadyInTerminalState))
}
