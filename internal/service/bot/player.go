package bot

import (
	"context"
	"log"

	"github.com/iamasit07/connect4-cli/internal/domain"
)

// MoveCache remembers decisions for positions already searched. The search is
// deterministic, so a cached column is exactly what a fresh search would pick.
type MoveCache interface {
	GetMove(ctx context.Context, board *domain.Board, player domain.PlayerID, depth int) (int, bool, error)
	SetMove(ctx context.Context, board *domain.Board, player domain.PlayerID, depth, column int) error
}

// Player is the computer move source.
type Player struct {
	ID     domain.PlayerID
	Depth  int
	engine Engine
	cache  MoveCache
}

// NewPlayer builds the computer opponent. cache may be nil.
func NewPlayer(id domain.PlayerID, cache MoveCache) *Player {
	return &Player{
		ID:    id,
		Depth: SearchDepth,
		cache: cache,
	}
}

// NextMove picks a column for the current board. It only fails when the
// context is already done.
func (p *Player) NextMove(ctx context.Context, board *domain.Board) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	if p.cache != nil {
		col, found, err := p.cache.GetMove(ctx, board, p.ID, p.Depth)
		switch {
		case err != nil:
			log.Printf("[BOT] Move cache lookup failed: %v", err)
		case found && board.IsValidMove(col):
			log.Printf("[BOT] Cache hit at ply %d: column %d", board.Plies(), col)
			return col, nil
		case found:
			log.Printf("[BOT] Ignoring cached column %d, no longer playable", col)
		}
	}

	decision := p.engine.SelectMove(board, p.ID, p.Depth)
	log.Printf("[BOT] Player %d chose column %d (score %d, depth %d, %d nodes, %d cutoffs, %s)",
		p.ID, decision.Column, decision.Score, decision.Depth, decision.Nodes, decision.Cutoffs, decision.Elapsed)

	if p.cache != nil {
		if err := p.cache.SetMove(ctx, board, p.ID, p.Depth, decision.Column); err != nil {
			log.Printf("[BOT] Failed to cache move: %v", err)
		}
	}
	return decision.Column, nil
}
