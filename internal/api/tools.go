package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

type fenRequest struct {
	FEN string `json:"fen"`
}

type fenResponse struct {
	Valid      bool   `json:"valid"`
	FEN        string `json:"fen,omitempty"`
	SideToMove string `json:"sideToMove,omitempty"`
	Error      string `json:"error,omitempty"`
	Rank       int    `json:"rank,omitempty"`
	Column     int    `json:"column,omitempty"`
}

type sanRequest struct {
	FEN string `json:"fen"`
	UCI string `json:"uci"`
}

type sanResponse struct {
	SAN       string `json:"san"`
	Algebraic string `json:"algebraic"`
	Kind      string `json:"kind"`
	FEN       string `json:"fen"`
}

// ValidateFEN reports whether a FEN decodes, and its normalised form.
// Invalid input is a successful request with valid=false.
func (h *Handler) ValidateFEN(c *fiber.Ctx) error {
	var req fenRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	pos, err := engine.ParseFEN(req.FEN)
	if err != nil {
		resp := fenResponse{Error: err.Error()}
		var de *errors.DecodeError
		if errors.As(err, &de) {
			resp.Rank, resp.Column = de.Rank, de.Column
		}
		return c.JSON(resp)
	}
	return c.JSON(fenResponse{
		Valid:      true,
		FEN:        engine.EncodePosition(pos),
		SideToMove: pos.State.SideToMove.String(),
	})
}

// SAN converts a coordinate move to notation and returns the position
// after it. An empty FEN means the standard starting position.
func (h *Handler) SAN(c *fiber.Ctx) error {
	var req sanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.FEN == "" {
		req.FEN = engine.InitialFEN
	}
	pos, err := engine.ParseFEN(req.FEN)
	if err != nil {
		return err
	}
	move, err := engine.ParseMove(req.UCI)
	if err != nil {
		return err
	}

	resp := sanResponse{
		SAN:       notation.ToSAN(pos, move),
		Algebraic: notation.ToAlgebraic(&pos.Board, move),
	}
	apply := engine.ApplyToPosition
	if h.strict {
		apply = engine.ApplyStrict
	}
	result, err := apply(pos, move)
	if err != nil {
		return err
	}
	resp.Kind = result.Kind().String()
	resp.FEN = engine.EncodePosition(pos)
	return c.JSON(resp)
}
