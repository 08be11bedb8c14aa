// handlers/debate.go
package handlers

import (
	"debate-arena/services"

	"github.com/gofiber/fiber/v2"
)

func SetupDebateRoutes(app *fiber.App, debateService *services.DebateService) {
	app.Post("/create-room/:player_name", debateService.CreateRoomHandler)
	app.Post("/join-room/:room_key", debateService.JoinRoomHandler)
	app.Post("/submit-argument/:room_key/:player_name", debateService.SubmitArgumentHandler)
	app.Post("/abort-debate/:room_key/:player_name", debateService.AbortDebateHandler)
	app.Get("/room-status/:room_key", debateService.RoomStatusHandler)
}
