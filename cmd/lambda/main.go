package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleetdesk/internal/config"
	"fleetdesk/internal/logger"
	"fleetdesk/internal/routes"
	"fleetdesk/internal/serverless"
	"fleetdesk/internal/store"
)

// The router and database handle are built once per cold start and
// reused by every invocation. No event hub: websockets need a long-lived process.
func main() {
	cfg := config.Load()
	logger.Setup("", cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database setup failed")
	}

	r := routes.SetupRouter(routes.Deps{
		Store:            store.New(db),
		ContactRecipient: cfg.ContactRecipient,
		CORSOrigins:      cfg.CORSOrigins,
	})

	lambda.Start(serverless.NewHandler(r))
}
