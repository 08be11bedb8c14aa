// handlers/player.go
package handlers

import (
	"debate-arena/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPlayerRoutes(app *fiber.App, playerService *services.PlayerService) {
	app.Post("/players/create", playerService.CreatePlayerHandler)
	app.Get("/players/:username", playerService.GetPlayerHandler)
	app.Get("/player/history/:username", playerService.PlayerHistoryHandler)
}
