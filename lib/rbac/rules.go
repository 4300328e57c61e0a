package rbac

import (
	"hr-pipeline-backend/models"
)

var (
	PipelineSet  = []models.Capability{models.CapabilityRecruiter, models.CapabilityAdmin}
	OrganizerSet = []models.Capability{models.CapabilityRecruiter, models.CapabilityManager, models.CapabilityAdmin}
	EvaluatorSet = []models.Capability{models.CapabilityRecruiter, models.CapabilityInterviewer, models.CapabilityManager, models.CapabilityAdmin}
	StaffSet     = EvaluatorSet
	ApplicantSet = []models.Capability{models.CapabilityApplicant}
	AllSet       = []models.Capability{models.CapabilityApplicant, models.CapabilityRecruiter, models.CapabilityInterviewer, models.CapabilityManager, models.CapabilityAdmin}
	AdminSet     = []models.Capability{models.CapabilityAdmin}
)

// правила уровня маршрута, владение записью проверяется в обработчиках
func (i *impl) initRules() {
	i.vacancyRules()
	i.applicationRules()
	i.evaluationRules()
	i.interviewRules()
	i.testRules()
	i.auditRules()
	i.usersRules()
}

func (i *impl) mustRegister(module models.Module, permission models.Permission, capabilities []models.Capability, swaggerPattern string) {
	if err := i.RegisterRule(module, permission, capabilities, swaggerPattern, nil); err != nil {
		panic(err.Error())
	}
}

func (i *impl) vacancyRules() {
	i.mustRegister(models.VacancyModule, models.ViewPermission, AllSet, "/api/v1/vacancy/list [post]")
	i.mustRegister(models.VacancyModule, models.ViewPermission, AllSet, "/api/v1/vacancy/{id} [get]")
	i.mustRegister(models.VacancyModule, models.CreatePermission, PipelineSet, "/api/v1/vacancy [post]")
	i.mustRegister(models.VacancyModule, models.EditPermission, PipelineSet, "/api/v1/vacancy/{id}/status [put]")
	i.mustRegister(models.VacancyModule, models.EditPermission, PipelineSet, "/api/v1/vacancy/{id}/publish [put]")
}

func (i *impl) applicationRules() {
	i.mustRegister(models.ApplicationModule, models.CreatePermission, ApplicantSet, "/api/v1/vacancy/{id}/apply [post]")
	i.mustRegister(models.ApplicationModule, models.CreatePermission, ApplicantSet, "/api/v1/application/cv [post]")
	i.mustRegister(models.ApplicationModule, models.ViewPermission, StaffSet, "/api/v1/vacancy/{id}/applications [get]")
	i.mustRegister(models.ApplicationModule, models.ViewPermission, AllSet, "/api/v1/application/my [get]")
	i.mustRegister(models.ApplicationModule, models.ViewPermission, AllSet, "/api/v1/application/{id} [get]")
	i.mustRegister(models.ApplicationModule, models.FlowPermission, PipelineSet, "/api/v1/application/{id}/status [put]")
	i.mustRegister(models.ApplicationModule, models.FlowPermission, ApplicantSet, "/api/v1/application/{id}/withdraw [put]")
}

func (i *impl) evaluationRules() {
	i.mustRegister(models.EvaluationModule, models.CreatePermission, EvaluatorSet, "/api/v1/application/{id}/evaluation [post]")
	i.mustRegister(models.EvaluationModule, models.ViewPermission, StaffSet, "/api/v1/application/{id}/evaluation/list [get]")
	i.mustRegister(models.EvaluationModule, models.ViewPermission, StaffSet, "/api/v1/application/{id}/evaluation/stats [get]")
	i.mustRegister(models.EvaluationModule, models.CreatePermission, []models.Capability{models.CapabilityManager}, "/api/v1/application/{id}/manager_recommendation [post]")
	i.mustRegister(models.EvaluationModule, models.ViewPermission, StaffSet, "/api/v1/application/{id}/manager_recommendation/list [get]")
}

func (i *impl) interviewRules() {
	i.mustRegister(models.InterviewModule, models.CreatePermission, OrganizerSet, "/api/v1/interview [post]")
	i.mustRegister(models.InterviewModule, models.ViewPermission, AllSet, "/api/v1/interview/{id} [get]")
	i.mustRegister(models.InterviewModule, models.ViewPermission, EvaluatorSet, "/api/v1/interview/my [get]")
	i.mustRegister(models.InterviewModule, models.ViewPermission, AllSet, "/api/v1/application/{id}/interviews [get]")
	i.mustRegister(models.InterviewModule, models.EditPermission, OrganizerSet, "/api/v1/interview/{id}/reschedule [put]")
	i.mustRegister(models.InterviewModule, models.EditPermission, OrganizerSet, "/api/v1/interview/{id}/cancel [put]")
	i.mustRegister(models.InterviewModule, models.EditPermission, OrganizerSet, "/api/v1/interview/{id}/interviewers [put]")
	i.mustRegister(models.InterviewModule, models.FlowPermission, EvaluatorSet, "/api/v1/interview/{id}/complete [put]")
}

func (i *impl) testRules() {
	i.mustRegister(models.TestModule, models.CreatePermission, PipelineSet, "/api/v1/test [post]")
	i.mustRegister(models.TestModule, models.ViewPermission, AllSet, "/api/v1/test/{id} [get]")
	i.mustRegister(models.TestModule, models.EditPermission, PipelineSet, "/api/v1/test/{id}/deactivate [put]")
	i.mustRegister(models.TestModule, models.ViewPermission, AllSet, "/api/v1/vacancy/{id}/tests [get]")
	i.mustRegister(models.TestModule, models.FlowPermission, PipelineSet, "/api/v1/test/{id}/invite [post]")
	i.mustRegister(models.TestModule, models.FlowPermission, ApplicantSet, "/api/v1/application/{id}/test/submit [post]")
	i.mustRegister(models.TestModule, models.FlowPermission, AllSet, "/api/v1/application/{id}/test/external_complete [put]")
	i.mustRegister(models.TestModule, models.ViewPermission, AllSet, "/api/v1/application/{id}/test/attempt [get]")
}

func (i *impl) auditRules() {
	i.mustRegister(models.AuditModule, models.ViewPermission, AdminSet, "/api/v1/audit/list [get]")
}

func (i *impl) usersRules() {
	i.mustRegister(models.UsersModule, models.CreatePermission, AdminSet, "/api/v1/users [post]")
	i.mustRegister(models.UsersModule, models.EditPermission, AdminSet, "/api/v1/users/{id} [put]")
	i.mustRegister(models.UsersModule, models.ViewPermission, StaffSet, "/api/v1/users/{id} [get]")
	i.mustRegister(models.UsersModule, models.ViewPermission, StaffSet, "/api/v1/users/list [post]")
	i.mustRegister(models.UsersModule, models.CreatePermission, AdminSet, "/api/v1/department [post]")
	i.mustRegister(models.UsersModule, models.ViewPermission, StaffSet, "/api/v1/department/list [get]")
}
