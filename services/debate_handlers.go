// services/debate_handlers.go
package services

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CreateRoomHandler handles POST /create-room/:player_name?topic=...
func (s *DebateService) CreateRoomHandler(c *fiber.Ctx) error {
	playerName := c.Params("player_name")
	topic := c.Query("topic")

	room, err := s.CreateRoom(c.Context(), playerName, topic)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"room_key": room.RoomKey,
		"topic":    room.Topic,
	})
}

type joinRoomRequest struct {
	PlayerName string `json:"player_name"`
}

// JoinRoomHandler handles POST /join-room/:room_key
func (s *DebateService) JoinRoomHandler(c *fiber.Ctx) error {
	var req joinRoomRequest
	if err := c.BodyParser(&req); err != nil || req.PlayerName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "player_name is required"})
	}

	room, err := s.JoinRoom(c.Context(), c.Params("room_key"), req.PlayerName)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Joined successfully",
		"room":    room,
	})
}

type submitArgumentRequest struct {
	Argument string `json:"argument"`
}

// SubmitArgumentHandler handles POST /submit-argument/:room_key/:player_name
func (s *DebateService) SubmitArgumentHandler(c *fiber.Ctx) error {
	var req submitArgumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "argument is required"})
	}

	result, err := s.SubmitArgument(c.Context(), c.Params("room_key"), c.Params("player_name"), req.Argument)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(result)
}

// AbortDebateHandler handles POST /abort-debate/:room_key/:player_name
func (s *DebateService) AbortDebateHandler(c *fiber.Ctx) error {
	playerName := c.Params("player_name")

	room, err := s.AbortDebate(c.Context(), c.Params("room_key"), playerName)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"status":  room.Status,
		"message": fmt.Sprintf("Debate aborted by %s. A %d-point penalty has been applied.", playerName, AbortPenalty),
		"player":  playerName,
	})
}

// RoomStatusHandler handles GET /room-status/:room_key
func (s *DebateService) RoomStatusHandler(c *fiber.Ctx) error {
	status, err := s.RoomStatus(c.Params("room_key"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(status)
}
