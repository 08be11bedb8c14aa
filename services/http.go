// services/http.go
package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"debate-arena/models"
)

// statusForError maps the domain error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrRoomNotFound),
		errors.Is(err, models.ErrPlayerNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrPlayerNotInDebate):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrRoomFull),
		errors.Is(err, models.ErrAlreadyInDebate),
		errors.Is(err, models.ErrNotYourTurn),
		errors.Is(err, models.ErrDebateNotInProgress),
		errors.Is(err, models.ErrUsernameTaken),
		errors.Is(err, models.ErrUsernameReserved),
		errors.Is(err, models.ErrTopicRequired),
		errors.Is(err, models.ErrArgumentRequired),
		errors.Is(err, models.ErrInvalidGenre),
		errors.Is(err, models.ErrInvalidMatchInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
}
