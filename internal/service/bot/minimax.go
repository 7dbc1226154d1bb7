package bot

import (
	"fmt"
	"math"

	"github.com/iamasit07/connect4-cli/internal/domain"
)

type search struct {
	board    *domain.Board
	ai       domain.PlayerID
	opponent domain.PlayerID
	depth    int
	prune    bool

	nodes   int
	cutoffs int
}

// play applies a move that is already known to be legal.
func (s *search) play(column int, player domain.PlayerID) {
	if _, err := s.board.Apply(column, player); err != nil {
		panic(fmt.Errorf("%w: %v", domain.ErrPrecondition, err))
	}
}

// minimax scores the current board from the AI's point of view. Every Apply
// made here is undone before the call returns.
func (s *search) minimax(depth, alpha, beta int, isMaximizing bool) int {
	s.nodes++
	consumed := s.depth - depth

	// Terminal conditions, faster wins and slower losses score better
	if s.board.IsWin(s.ai) {
		return WinScore - consumed
	}
	if s.board.IsWin(s.opponent) {
		return LossScore + consumed
	}
	if s.board.IsFull() {
		return DrawScore
	}
	if depth == 0 {
		return s.board.Evaluate(s.ai)
	}

	if isMaximizing {
		maxEval := math.MinInt
		for col := 0; col < domain.Columns; col++ {
			if !s.board.IsValidMove(col) {
				continue
			}
			s.play(col, s.ai)
			eval := s.minimax(depth-1, alpha, beta, false)
			s.board.Undo(col)

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if s.prune && alpha >= beta {
				s.cutoffs++
				break // Beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for col := 0; col < domain.Columns; col++ {
		if !s.board.IsValidMove(col) {
			continue
		}
		s.play(col, s.opponent)
		eval := s.minimax(depth-1, alpha, beta, true)
		s.board.Undo(col)

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if s.prune && alpha >= beta {
			s.cutoffs++
			break // Alpha cutoff
		}
	}
	return minEval
}
