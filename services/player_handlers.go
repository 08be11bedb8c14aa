// services/player_handlers.go
package services

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/gofiber/fiber/v2"
)

// Usernames become object-store keys, so keep them to a safe charset.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

type createPlayerRequest struct {
	PlayerName string `json:"player_name"`
}

// CreatePlayerHandler handles POST /players/create
func (s *PlayerService) CreatePlayerHandler(c *fiber.Ctx) error {
	var req createPlayerRequest
	if err := c.BodyParser(&req); err != nil || req.PlayerName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "player_name is required"})
	}
	if !usernamePattern.MatchString(req.PlayerName) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "player_name must be 1-32 characters of letters, digits, _ or -",
		})
	}

	player, err := s.CreatePlayer(c.Context(), req.PlayerName)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Player %s created successfully", player.Username),
		"player":  player,
	})
}

// GetPlayerHandler handles GET /players/:username
func (s *PlayerService) GetPlayerHandler(c *fiber.Ctx) error {
	player, err := s.GetPlayer(c.Context(), c.Params("username"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(player)
}

// PlayerHistoryHandler handles GET /player/history/:username — profile,
// leaderboard rank and the player's persisted match records.
func (s *PlayerService) PlayerHistoryHandler(c *fiber.Ctx) error {
	username := c.Params("username")

	player, err := s.GetPlayer(c.Context(), username)
	if err != nil {
		return errorResponse(c, err)
	}

	rank, total, err := s.Rank(c.Context(), username)
	if err != nil {
		return errorResponse(c, err)
	}

	history, err := s.MatchHistory(c.Context(), username)
	if err != nil {
		return errorResponse(c, err)
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].Timestamp.After(history[j].Timestamp)
	})

	return c.JSON(fiber.Map{
		"player":         player,
		"rank":           rank,
		"total_players":  total,
		"debate_history": history,
	})
}
