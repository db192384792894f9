package replay

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// Puzzle is a puzzle ready to be played: the start position plus the
// validated solution.
type Puzzle struct {
	ID       string
	Setup    *History // intro moves from the source game, if any
	Position *chess.Position
	Solution []chess.Move
	// SolutionSAN renders each solution move from the position before it.
	SolutionSAN []string
	Rating      int
	Themes      []string
}

// Puzzle prepares a puzzle record. With PGN, the first InitialPly+1 plies
// of the game are replayed and the resulting position is the puzzle
// position; otherwise FEN is decoded. Every solution move must apply.
func (r *Replayer) Puzzle(rec PuzzleRecord) (*Puzzle, error) {
	var setup *History
	var err error
	if rec.PGN != "" {
		setup, err = r.replayTokens(rec.ID, rec.FEN, notation.Tokenize(rec.PGN), rec.InitialPly+1)
	} else {
		setup, err = r.start(rec.ID, rec.FEN)
		if err == nil {
			r.finish(setup)
		}
	}
	if err != nil {
		return nil, err
	}

	p := &Puzzle{
		ID:       rec.ID,
		Setup:    setup,
		Position: setup.Final.Copy(),
		Rating:   rec.Rating,
		Themes:   rec.Themes,
	}

	pos := p.Position.Copy()
	for i, uci := range rec.Solution {
		move, err := engine.ParseMove(uci)
		if err == nil {
			san := r.san(pos, move)
			if _, err = r.applySolution(pos, move); err == nil {
				p.Solution = append(p.Solution, move)
				p.SolutionSAN = append(p.SolutionSAN, san)
			}
		}
		if err != nil {
			return nil, &errors.GameError{Err: err, GameID: rec.ID, PlyNum: i + 1, MoveText: uci}
		}
	}
	return p, nil
}

func (r *Replayer) applySolution(pos *chess.Position, move chess.Move) (chess.MoveResult, error) {
	if r.strict {
		return engine.ApplyStrict(pos, move)
	}
	return engine.ApplyToPosition(pos, move)
}

// SideToSolve returns the side making the first solution move.
func (p *Puzzle) SideToSolve() chess.Side {
	return p.Position.State.SideToMove
}

// Check reports whether uci matches solution move index. A promotion
// letter must match too.
func (p *Puzzle) Check(index int, uci string) bool {
	if index < 0 || index >= len(p.Solution) {
		return false
	}
	move, err := engine.ParseMove(uci)
	if err != nil {
		return false
	}
	return move == p.Solution[index]
}

// PositionAfter returns a copy of the puzzle position after the first n
// solution moves.
func (p *Puzzle) PositionAfter(n int) *chess.Position {
	pos := p.Position.Copy()
	for _, move := range p.Solution[:min(max(n, 0), len(p.Solution))] {
		_, _ = engine.ApplyToPosition(pos, move)
	}
	return pos
}
