// services/topic_handlers.go
package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"debate-arena/models"
)

// GenresHandler handles GET /genres
func (s *TopicService) GenresHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"genres": s.Genres()})
}

// TopicsHandler handles GET /topics/:genre
func (s *TopicService) TopicsHandler(c *fiber.Ctx) error {
	topics, err := s.TopicsForGenre(c.Context(), c.Params("genre"))
	if err != nil {
		if errors.Is(err, models.ErrInvalidGenre) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":        "Invalid genre",
				"valid_genres": s.ValidGenres(),
			})
		}
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"topics": topics})
}
