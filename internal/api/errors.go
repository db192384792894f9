package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, errors.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errors.ErrInvalidFEN), errors.Is(err, errors.ErrMalformedMove):
		return fiber.StatusBadRequest
	case errors.Is(err, errors.ErrStaleUpdate):
		return fiber.StatusConflict
	case errors.Is(err, errors.ErrIllegalMove),
		errors.Is(err, errors.ErrNoPieceAtSource),
		errors.Is(err, errors.ErrNotFound):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func (h *Handler) handleError(c *fiber.Ctx, err error) error {
	code := statusOf(err)
	if code >= fiber.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	body := fiber.Map{"error": err.Error()}
	var de *errors.DecodeError
	if errors.As(err, &de) {
		body["rank"] = de.Rank
		body["column"] = de.Column
	}
	return c.Status(code).JSON(body)
}
