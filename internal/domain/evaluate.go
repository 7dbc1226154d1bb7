package domain

// Heuristic weights for a single window.
const (
	ScoreFour          = 100
	ScoreThreeOpen     = 5
	ScoreTwoOpen       = 2
	ScoreOpponentThree = -4
	ScoreCenterPiece   = 3
)

// Evaluate scores the position from player's point of view. It is not
// antisymmetric: Evaluate(p.Opponent()) is not -Evaluate(p).
func (b *Board) Evaluate(player PlayerID) int {
	opponent := player.Opponent()
	score := 0

	for r := 0; r < Rows; r++ {
		if b.cells[r][CenterColumn] == player {
			score += ScoreCenterPiece
		}
	}

	for _, w := range windows {
		var own, empty, opp int
		for _, cell := range w {
			switch b.cells[cell[0]][cell[1]] {
			case player:
				own++
			case Empty:
				empty++
			case opponent:
				opp++
			}
		}
		score += scoreWindow(own, empty, opp)
	}
	return score
}

func scoreWindow(own, empty, opp int) int {
	score := 0
	switch {
	case own == 4:
		score += ScoreFour
	case own == 3 && empty == 1:
		score += ScoreThreeOpen
	case own == 2 && empty == 2:
		score += ScoreTwoOpen
	}

	if opp == 3 && empty == 1 {
		score += ScoreOpponentThree
	}
	return score
}
