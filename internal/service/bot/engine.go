package bot

import (
	"fmt"
	"math"
	"time"

	"github.com/iamasit07/connect4-cli/internal/domain"
)

const (
	// SearchDepth is how many plies the computer looks ahead.
	SearchDepth = 5

	// WinScore dominates any value Evaluate can produce.
	WinScore  = 10000000
	LossScore = -WinScore
	DrawScore = 0
)

// Engine runs depth-bounded minimax over a single board, mutating it in place
// and restoring it before returning.
type Engine struct {
	// DisablePruning turns alpha-beta cut-offs off. The chosen column and
	// score are the same either way; only the node count changes.
	DisablePruning bool
}

// Decision is the outcome of one search.
type Decision struct {
	Column  int
	Score   int
	Depth   int
	Nodes   int
	Cutoffs int
	Elapsed time.Duration
}

// SelectMove searches with alpha-beta pruning enabled.
func SelectMove(board *domain.Board, player domain.PlayerID, depth int) Decision {
	return Engine{}.SelectMove(board, player, depth)
}

// SelectMove returns the best column for player, ties going to the lowest
// column. The board must not be finished; passing one panics.
func (e Engine) SelectMove(board *domain.Board, player domain.PlayerID, depth int) Decision {
	if !player.Valid() {
		panic(fmt.Errorf("%w: search for player %d", domain.ErrPrecondition, player))
	}
	if depth < 1 {
		panic(fmt.Errorf("%w: search depth %d", domain.ErrPrecondition, depth))
	}
	if result := board.Result(); result.IsFinished() {
		panic(fmt.Errorf("%w: search on a %s board", domain.ErrPrecondition, result.Status))
	}

	start := time.Now()
	s := &search{
		board:    board,
		ai:       player,
		opponent: player.Opponent(),
		depth:    depth,
		prune:    !e.DisablePruning,
	}

	bestCol := -1
	bestScore := math.MinInt
	alpha := math.MinInt
	beta := math.MaxInt

	for col := 0; col < domain.Columns; col++ {
		if !board.IsValidMove(col) {
			continue
		}

		s.play(col, player)
		score := s.minimax(depth-1, alpha, beta, false)
		board.Undo(col)

		if score > bestScore {
			bestScore = score
			bestCol = col
		}
		alpha = max(alpha, bestScore)
	}

	return Decision{
		Column:  bestCol,
		Score:   bestScore,
		Depth:   depth,
		Nodes:   s.nodes,
		Cutoffs: s.cutoffs,
		Elapsed: time.Since(start),
	}
}
