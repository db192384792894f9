package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/render"
	"github.com/lgbarn/chesscore-go/internal/session"
)

// Move sources accepted by PlayMove and the websocket stream.
const (
	SourceLocal   = "local"
	SourceServer  = "server"
	SourcePremove = "premove"
)

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	UCI    string `json:"uci"`
	Source string `json:"source"`
}

type syncRequest struct {
	FEN   string   `json:"fen"`
	Moves []string `json:"moves"`
}

// parseBody decodes an optional JSON body into out.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	return nil
}

func (h *Handler) session(c *fiber.Ctx) (*session.Session, error) {
	return h.manager.Get(c.Params("id"))
}

// ListGames returns the ids of live sessions.
func (h *Handler) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"games": h.manager.IDs()})
}

// CreateGame starts a session from an optional FEN.
func (h *Handler) CreateGame(c *fiber.Ctx) error {
	var req createRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	s, err := h.manager.Create(strings.TrimSpace(req.FEN))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(s.Snapshot())
}

// GetGame returns the current snapshot.
func (h *Handler) GetGame(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(s.Snapshot())
}

// DeleteGame ends a session.
func (h *Handler) DeleteGame(c *fiber.Ctx) error {
	if err := h.manager.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Destinations lists the generator's targets for ?square=.
func (h *Handler) Destinations(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	square := c.Query("square")
	squares, err := s.Destinations(square)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"square": square, "destinations": squares})
}

// PlayMove applies a move from the given source. The default source is
// the local player.
func (h *Handler) PlayMove(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var req moveRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	snap, err := play(s, req.Source, req.UCI)
	if err != nil {
		return err
	}
	return c.JSON(snap)
}

// CancelPremove drops a queued premove.
func (h *Handler) CancelPremove(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(s.CancelPremove())
}

// Sync replaces the session state with the server's view.
func (h *Handler) Sync(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var req syncRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	snap, err := s.Sync(req.FEN, req.Moves)
	if err != nil {
		return err
	}
	return c.JSON(snap)
}

// Diagram renders the current position as SVG. Query parameters: flip,
// coords, size and square (adds destination dots for that square).
func (h *Handler) Diagram(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	snap := s.Snapshot()

	opts := render.Options{
		Flip:        c.QueryBool("flip"),
		Coordinates: c.QueryBool("coords"),
		SquareSize:  c.QueryInt("size", render.DefaultSquareSize),
	}
	if snap.LastMove != "" {
		if last, err := engine.ParseMove(snap.LastMove); err == nil {
			opts.LastMove = &last
		}
	}
	if square := c.Query("square"); square != "" {
		from, ok := chess.ParseSquare(square)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid square %q", square))
		}
		if p, ok := snap.Position.Board.Occupant(from); ok {
			opts.Destinations = engine.LegalDestinations(&snap.Position.Board, from, p.Side)
		}
	}

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return render.SVG(c, &snap.Position.Board, opts)
}

// play dispatches a move by source.
func play(s *session.Session, source, uci string) (session.Snapshot, error) {
	switch source {
	case "", SourceLocal:
		return s.PlayLocal(uci)
	case SourceServer:
		return s.ApplyServerMove(uci)
	case SourcePremove:
		return s.QueuePremove(uci)
	}
	return session.Snapshot{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown move source %q", source))
}
