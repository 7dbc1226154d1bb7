package domain

import "fmt"

// Move records one drop in a finished or running game.
type Move struct {
	Player PlayerID
	Column int
	Row    int
}

type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	Moves         []Move
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Player1,
		Status:        StatusActive,
		Winner:        Empty,
	}
}

func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.Status != StatusActive {
		return -1, fmt.Errorf("%w: game is already %s", ErrInvalidMove, g.Status)
	}

	if player != g.CurrentPlayer {
		return -1, fmt.Errorf("%w: not player %d's turn", ErrInvalidMove, player)
	}

	row, err := g.Board.Apply(column, player)
	if err != nil {
		return -1, err
	}
	g.Moves = append(g.Moves, Move{Player: player, Column: column, Row: row})

	if g.Board.IsWinAt(row, column, player) {
		g.Status = StatusWon
		g.Winner = player
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = player.Opponent()
	return row, nil
}

func (g *Game) Result() GameResult {
	return GameResult{Status: g.Status, Winner: g.Winner}
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
