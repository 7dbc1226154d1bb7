package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/iamasit07/connect4-cli/internal/domain"
	"github.com/iamasit07/connect4-cli/pkg/uid"
)

// MoveSource is anything that can pick a column for the current board: the
// console human and the computer both satisfy it.
type MoveSource interface {
	NextMove(ctx context.Context, board *domain.Board) (int, error)
}

// Observer is told about everything that happens during a game.
type Observer interface {
	GameStarted(gameID string, board *domain.Board)
	TurnStarted(player domain.PlayerID)
	MoveMade(move domain.Move, board *domain.Board)
	GameOver(result domain.GameResult, board *domain.Board)
}

type Session struct {
	GameID     string
	Game       *domain.Game
	Players    map[domain.PlayerID]MoveSource
	CreatedAt  time.Time
	FinishedAt time.Time
	observer   Observer
}

// NewSession pairs two move sources; player1 moves first.
func NewSession(player1, player2 MoveSource, observer Observer) *Session {
	return &Session{
		GameID: uid.GenerateGameID(),
		Game:   domain.NewGame(),
		Players: map[domain.PlayerID]MoveSource{
			domain.Player1: player1,
			domain.Player2: player2,
		},
		CreatedAt: time.Now(),
		observer:  observer,
	}
}

// Run alternates turns until the game is won or drawn. A move source is never
// asked for a move on a finished board.
func (s *Session) Run(ctx context.Context) (domain.GameResult, error) {
	log.Printf("[GAME] Starting game %s", s.GameID)
	s.observer.GameStarted(s.GameID, s.Game.Board)

	for !s.Game.IsFinished() {
		if err := s.PlayTurn(ctx); err != nil {
			log.Printf("[GAME] Game %s stopped after %d moves: %v", s.GameID, len(s.Game.Moves), err)
			return s.Game.Result(), err
		}
	}

	s.FinishedAt = time.Now()
	result := s.Game.Result()
	duration := s.FinishedAt.Sub(s.CreatedAt).Round(time.Millisecond)
	if result.Status == domain.StatusWon {
		log.Printf("[GAME] Game %s won by player %d after %d moves (%s)", s.GameID, result.Winner, len(s.Game.Moves), duration)
	} else {
		log.Printf("[GAME] Game %s drawn after %d moves (%s)", s.GameID, len(s.Game.Moves), duration)
	}

	s.observer.GameOver(result, s.Game.Board)
	return result, nil
}

// PlayTurn asks the current player's source for a column and applies it.
func (s *Session) PlayTurn(ctx context.Context) error {
	if s.Game.IsFinished() {
		return fmt.Errorf("%w: game %s is already %s", domain.ErrInvalidMove, s.GameID, s.Game.Status)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	current := s.Game.CurrentPlayer
	source, ok := s.Players[current]
	if !ok || source == nil {
		return fmt.Errorf("no move source for player %d", current)
	}

	s.observer.TurnStarted(current)
	column, err := source.NextMove(ctx, s.Game.Board)
	if err != nil {
		return fmt.Errorf("player %d: %w", current, err)
	}

	if !s.Game.Board.IsValidMove(column) {
		return fmt.Errorf("%w: player %d chose column %d, legal columns are %v",
			domain.ErrInvalidMove, current, column, s.Game.Board.LegalMoves())
	}

	row, err := s.Game.MakeMove(current, column)
	if err != nil {
		return err
	}

	log.Printf("[GAME] %s: player %d -> column %d (row %d)", s.GameID, current, column, row)
	s.observer.MoveMade(s.Game.Moves[len(s.Game.Moves)-1], s.Game.Board)
	return nil
}
