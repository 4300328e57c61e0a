package initializers

import (
	"context"
	"hr-pipeline-backend/config"
	"hr-pipeline-backend/fiberlog"
	applicationhandler "hr-pipeline-backend/lib/application"
	audithandler "hr-pipeline-backend/lib/audit"
	cvstorage "hr-pipeline-backend/lib/cv-storage"
	evaluationhandler "hr-pipeline-backend/lib/evaluation"
	interviewhandler "hr-pipeline-backend/lib/interview"
	managerrecommendationhandler "hr-pipeline-backend/lib/manager-recommendation"
	notificationhandler "hr-pipeline-backend/lib/notification"
	"hr-pipeline-backend/lib/rbac"
	sideeffects "hr-pipeline-backend/lib/side-effects"
	testhandler "hr-pipeline-backend/lib/test"
	usershandler "hr-pipeline-backend/lib/users"
	vacancyhandler "hr-pipeline-backend/lib/vacancy"
	connectionhub "hr-pipeline-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

// SideEffectsDone закрывается после выполнения очереди аудита и уведомлений при остановке
var SideEffectsDone <-chan struct{}

// InitAllServices порядок важен: обработчики берут зависимости из уже созданных Instance
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()
	rbac.NewHandler()
	cvstorage.NewHandler()
	usershandler.NewHandler()
	notificationhandler.NewHandler()
	audithandler.NewHandler()
	sideeffects.NewHandler()
	vacancyhandler.NewHandler()
	applicationhandler.NewHandler()
	evaluationhandler.NewHandler()
	managerrecommendationhandler.NewHandler()
	interviewhandler.NewHandler()
	testhandler.NewHandler()
	SideEffectsDone = sideeffects.Start(ctx)
}
