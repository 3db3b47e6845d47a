//go:build lambda

package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/kibahcorps/schedule1-go/internal/adapters/functionurl"
	"github.com/kibahcorps/schedule1-go/internal/infrastructure/bootstrap"
	"github.com/kibahcorps/schedule1-go/internal/infrastructure/config"
)

func main() {
	// Configuration comes from S1_* environment variables; there is no config file in the bundle
	cfg := config.LoadConfigOrDefault("")
	cfg.Metrics.Enabled = false

	app, err := bootstrap.New(cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer app.Close()

	lambda.Start(functionurl.NewHandler(app.Mediator).Handle)
}
