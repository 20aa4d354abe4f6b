package initializers

import (
	"context"
	"time"

	"gorm.io/gorm"
	"talent-park-backend/config"
	"talent-park-backend/fiberlog"
	applicationhandler "talent-park-backend/lib/application"
	xlsexport "talent-park-backend/lib/export/xls"
	jobhandler "talent-park-backend/lib/job"
	newsletterworker "talent-park-backend/lib/newsletter/worker"
	usershandler "talent-park-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

// Services are the handles main owns for the lifetime of the process.
type Services struct {
	DB            *gorm.DB
	NewsletterJob *newsletterworker.Job
}

func InitAllServices(ctx context.Context) *Services {
	LoggerConfig = InitLogger()
	config.InitConfig()
	conn := InitDBConnection()
	fileStorage := InitS3()
	emailProvider := InitSmtp()

	usershandler.NewHandler(conn, fileStorage)
	jobhandler.NewHandler(conn)
	applicationhandler.NewHandler(conn, fileStorage)
	xlsexport.NewHandler()

	newsletterJob := newsletterworker.StartWorker(ctx, conn, emailProvider,
		time.Duration(config.Conf.Newsletter.FirstRunDelayInSec)*time.Second,
		time.Duration(config.Conf.Newsletter.RunIntervalInSec)*time.Second,
		time.Duration(config.Conf.Newsletter.SendTimeoutInSec)*time.Second)

	return &Services{
		DB:            conn,
		NewsletterJob: newsletterJob,
	}
}
