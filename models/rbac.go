package models

type RbacFunc func(userID string, capabilities Capabilities, path string) bool

type Module string

const (
	VacancyModule      Module = "VACANCY"
	ApplicationModule  Module = "APPLICATION"
	EvaluationModule   Module = "EVALUATION"
	InterviewModule    Module = "INTERVIEW"
	TestModule         Module = "TEST"
	NotificationModule Module = "NOTIFICATION"
	AuditModule        Module = "AUDIT"
	UsersModule        Module = "USERS"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	FlowPermission   Permission = "FLOW"
)
