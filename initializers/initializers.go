package initializers

import (
	"context"
	"time"
	"venue-hiring-backend/config"
	"venue-hiring-backend/db"
	"venue-hiring-backend/fiberlog"
	applicationhandler "venue-hiring-backend/lib/applications"
	xlsexport "venue-hiring-backend/lib/export/xls"
	hiringhandler "venue-hiring-backend/lib/hiring"
	jobboardhandler "venue-hiring-backend/lib/job-board"
	"venue-hiring-backend/lib/schema"
	schemarefreshworker "venue-hiring-backend/lib/schema/refresh-worker"
	"venue-hiring-backend/lib/smtp"
	initchecker "venue-hiring-backend/lib/utils/init-checker"
	venuestaffhandler "venue-hiring-backend/lib/venue-staff"
	dbmodels "venue-hiring-backend/models/db"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	initchecker.CheckInit(
		"db", db.DB,
		"smtp", smtp.Instance,
	)
	schema.NewHandler(db.DB, *config.Conf.Schema.ProbeOnce, dbmodels.KnownTables...)
	xlsexport.NewHandler()
	jobboardhandler.NewHandler(db.DB, schema.Instance)
	applicationhandler.NewHandler(db.DB, schema.Instance)
	hiringhandler.NewHandler(db.DB, schema.Instance, smtp.Instance, hiringhandler.Config{
		RequireProcedure: *config.Conf.Hiring.RequireProcedure,
		NotifyFrom:       config.Conf.Hiring.NotifyFrom,
	})
	venuestaffhandler.NewHandler(db.DB, schema.Instance, xlsexport.Instance)
	initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// only a probe-once snapshot needs refreshing
	schemarefreshworker.StartWorker(ctx, schema.Instance,
		time.Duration(config.Conf.Schema.RefreshIntervalSec)*time.Second)
}
