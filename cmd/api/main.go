package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/container"
	"github.com/studyforge/studyforge-lambda/internal/router"
)

var adapter *httpadapter.HandlerAdapter

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		QuizGenHandler:   c.QuizGenContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		FlashcardHandler: c.FlashcardContainer.Handler,
		NoteHandler:      c.NoteContainer.Handler,
		ChatHandler:      c.ChatContainer.Handler,
		CommunityHandler: c.CommunityContainer.Handler,
		GFormHandler:     c.GFormContainer.Handler,
		ActivityHandler:  c.ActivityContainer.Handler,
	})

	if os.Getenv("LOCAL_MODE") == "true" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		config.Logger().Infof("Servidor local ouvindo em :%s", port)
		if err := http.ListenAndServe(":"+port, r); err != nil {
			config.Logger().WithError(err).Fatal("Servidor local encerrado")
		}
		return
	}

	adapter = httpadapter.New(r)
	lambda.Start(handler)
}
