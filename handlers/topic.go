// handlers/topic.go
package handlers

import (
	"debate-arena/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTopicRoutes(app *fiber.App, topicService *services.TopicService) {
	app.Get("/genres", topicService.GenresHandler)
	app.Get("/topics/:genre", topicService.TopicsHandler)
}
