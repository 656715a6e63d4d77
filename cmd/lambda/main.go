package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/chat-educacional/internal/config"
	"github.com/saulo-duarte/chat-educacional/internal/container"
)

func main() {
	settings, err := config.LoadSettings(os.Getenv("CONFIG_FILE"))
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to load settings")
	}
	config.Init(settings)

	c, err := container.New(context.Background(), settings)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to start service")
	}

	adapter := httpadapter.NewV2(c.Router())
	lambda.Start(adapter.ProxyWithContext)
}
