package initializers

import (
	"context"

	"impar-backend/config"
	"impar-backend/fiberlog"
	"impar-backend/lib/analytics"
	authhandler "impar-backend/lib/auth"
	xlsexport "impar-backend/lib/export/xls"
	filestorage "impar-backend/lib/file-storage"
	gpthandler "impar-backend/lib/gpt"
	recoveryhandler "impar-backend/lib/recovery"
	recoveryworker "impar-backend/lib/recovery/worker"
	responsehandler "impar-backend/lib/response"
	suggestionhandler "impar-backend/lib/suggestion"
	"impar-backend/lib/survey"
	teamapplicationhandler "impar-backend/lib/team-application"
	usershandler "impar-backend/lib/users"
	connectionhub "impar-backend/lib/ws/hub/connection-hub"
	s3client "impar-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewInstance(s3client.Client)
	authhandler.NewHandler()
	usershandler.NewHandler()
	survey.NewHandler()
	responsehandler.NewHandler()
	xlsexport.NewHandler()
	analytics.NewHandler()
	suggestionhandler.NewHandler()
	teamapplicationhandler.NewHandler()
	recoveryhandler.NewHandler()
	gpthandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача пометки просроченных кодов восстановления пароля
	recoveryworker.StartWorker(ctx)
}
