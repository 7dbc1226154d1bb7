package domain

import (
	"fmt"
	"strings"
)

// Board is the grid plus the per-column fill heights. Row 0 is the top row,
// row Rows-1 the bottom one. The zero value is an empty board.
type Board struct {
	cells   [Rows][Columns]PlayerID
	heights [Columns]int
	plies   int
}

func NewBoard() *Board {
	return &Board{}
}

// Cell returns the piece at (row, column), Empty when out of bounds.
func (b *Board) Cell(row, column int) PlayerID {
	if !inBounds(row, column) {
		return Empty
	}
	return b.cells[row][column]
}

// Plies is the number of pieces currently on the board.
func (b *Board) Plies() int {
	return b.plies
}

// Count returns how many pieces the player has on the board.
func (b *Board) Count(player PlayerID) int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if b.cells[r][c] == player {
				n++
			}
		}
	}
	return n
}

// Turn returns the player expected to move next. Player1 always opens.
func (b *Board) Turn() PlayerID {
	if b.plies%2 == 0 {
		return Player1
	}
	return Player2
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here cells[0] represents the top row (0 -> top and 5 -> bottom)
	return b.cells[0][column] == Empty
}

// LegalMoves lists the playable columns in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.IsValidMove(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// Apply drops a piece for player into column and returns the row it landed in.
// On error the board is left untouched.
func (b *Board) Apply(column int, player PlayerID) (int, error) {
	if !player.Valid() {
		return -1, fmt.Errorf("%w: %w %d", ErrInvalidMove, ErrInvalidPlayer, player)
	}
	if column < 0 || column >= Columns {
		return -1, fmt.Errorf("%w: %w (column %d)", ErrInvalidMove, ErrOutOfRange, column)
	}
	if b.heights[column] == Rows {
		return -1, fmt.Errorf("%w: %w (column %d)", ErrInvalidMove, ErrColumnFull, column)
	}

	row := Rows - 1 - b.heights[column]
	b.cells[row][column] = player
	b.heights[column]++
	b.plies++
	return row, nil
}

// Undo lifts the topmost piece out of column. The caller guarantees it was the
// last piece applied there; undoing an empty column panics.
func (b *Board) Undo(column int) {
	if column < 0 || column >= Columns || b.heights[column] == 0 {
		panic(fmt.Errorf("%w: undo on empty or unknown column %d", ErrPrecondition, column))
	}
	b.heights[column]--
	row := Rows - 1 - b.heights[column]
	b.cells[row][column] = Empty
	b.plies--
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// String draws the board top row first, one space between cells, using the
// symbols understood by BoardFromRows.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.cells[r][c].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BoardFromRows builds a board from a diagram: Rows lines, top first, each with
// Columns cells drawn as '.', 'X' (Player1) or 'O' (Player2). Spaces are
// ignored. The diagram must respect gravity and move alternation.
func BoardFromRows(rows ...string) (*Board, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrBadDiagram, Rows, len(rows))
	}

	b := NewBoard()
	for r, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != Columns {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrBadDiagram, r, len(line))
		}
		for c, ch := range line {
			switch ch {
			case '.':
			case 'X', 'x':
				b.cells[r][c] = Player1
			case 'O', 'o':
				b.cells[r][c] = Player2
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d", ErrBadDiagram, ch, r)
			}
		}
	}

	for c := 0; c < Columns; c++ {
		height := 0
		for r := Rows - 1; r >= 0; r-- {
			if b.cells[r][c] == Empty {
				break
			}
			height++
		}
		for r := Rows - 1 - height; r >= 0; r-- {
			if b.cells[r][c] != Empty {
				return nil, fmt.Errorf("%w: floating piece at row %d column %d", ErrBadDiagram, r, c)
			}
		}
		b.heights[c] = height
		b.plies += height
	}

	if diff := b.Count(Player1) - b.Count(Player2); diff != 0 && diff != 1 {
		return nil, fmt.Errorf("%w: piece counts differ by %d", ErrBadDiagram, diff)
	}
	return b, nil
}

func inBounds(row, column int) bool {
	return row >= 0 && row < Rows && column >= 0 && column < Columns
}
