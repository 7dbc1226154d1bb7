package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other player. Empty has no opponent and maps to itself.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

// Symbol is the single character used to draw a piece.
func (p PlayerID) Symbol() string {
	switch p {
	case Player1:
		return "X"
	case Player2:
		return "O"
	}
	return "."
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4

	CenterColumn = Columns / 2
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// GameResult is derived from the grid every time it is asked for.
type GameResult struct {
	Status GameStatus
	Winner PlayerID
}

func (r GameResult) IsFinished() bool {
	return r.Status == StatusWon || r.Status == StatusDraw
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrColumnFull    Error = "column is full"
	ErrOutOfRange    Error = "column out of range"
	ErrPrecondition  Error = "precondition violated"
	ErrInvalidPlayer Error = "invalid player"
	ErrBadDiagram    Error = "malformed board diagram"
)
