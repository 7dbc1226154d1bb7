package domain

// window is four cells in a line, stored as (row, column) pairs.
type window [ToWin][2]int

// forward directions only: right, down, down-right, up-right
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// windows holds every line of ToWin cells on the board.
var windows = buildWindows()

func buildWindows() []window {
	var ws []window
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			for _, d := range directions {
				endRow := row + d[0]*(ToWin-1)
				endCol := col + d[1]*(ToWin-1)
				if !inBounds(endRow, endCol) {
					continue
				}
				var w window
				for i := 0; i < ToWin; i++ {
					w[i] = [2]int{row + d[0]*i, col + d[1]*i}
				}
				ws = append(ws, w)
			}
		}
	}
	return ws
}

// IsWin reports whether player owns four contiguous cells anywhere.
func (b *Board) IsWin(player PlayerID) bool {
	if player == Empty {
		return false
	}
	for _, w := range windows {
		if b.cells[w[0][0]][w[0][1]] == player &&
			b.cells[w[1][0]][w[1][1]] == player &&
			b.cells[w[2][0]][w[2][1]] == player &&
			b.cells[w[3][0]][w[3][1]] == player {
			return true
		}
	}
	return false
}

// IsWinAt only checks the lines through (row, column), which is enough right
// after a piece landed there.
func (b *Board) IsWinAt(row, column int, player PlayerID) bool {
	if player == Empty || b.Cell(row, column) != player {
		return false
	}
	for _, d := range directions {
		count := 1 + b.countInDirection(row, column, d[0], d[1], player) +
			b.countInDirection(row, column, -d[0], -d[1], player)
		if count >= ToWin {
			return true
		}
	}
	return false
}

// this counts the number of disks in a specific direction
func (b *Board) countInDirection(row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for inBounds(r, c) && b.cells[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b.cells[0][c] == Empty {
			return false
		}
	}
	return true
}

// Result recomputes the outcome from the grid.
func (b *Board) Result() GameResult {
	for _, p := range []PlayerID{Player1, Player2} {
		if b.IsWin(p) {
			return GameResult{Status: StatusWon, Winner: p}
		}
	}
	if b.IsFull() {
		return GameResult{Status: StatusDraw}
	}
	return GameResult{Status: StatusActive}
}
