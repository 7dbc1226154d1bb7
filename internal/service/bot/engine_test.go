package bot

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/iamasit07/connect4-cli/internal/domain"
)

func mustBoard(t *testing.T, rows ...string) *domain.Board {
	t.Helper()
	b, err := domain.BoardFromRows(rows...)
	if err != nil {
		t.Fatalf("bad diagram: %v", err)
	}
	return b
}

func TestSelectMoveTakesImmediateWin(t *testing.T) {
	b := mustBoard(t,
		".......",
		".......",
		".......",
		".......",
		"OOO....",
		"XXX....",
	)

	d := SelectMove(b, domain.Player1, SearchDepth)
	if d.Column != 3 {
		t.Fatalf("expected winning column 3, got %d", d.Column)
	}
	if d.Score != WinScore-1 {
		t.Fatalf("expected score %d for a win in one, got %d", WinScore-1, d.Score)
	}
}

func TestSelectMoveBlocksImmediateThreat(t *testing.T) {
	b := mustBoard(t,
		".......",
		".......",
		".......",
		".......",
		"OO.....",
		"XXX....",
	)

	d := SelectMove(b, domain.Player2, SearchDepth)
	if d.Column != 3 {
		t.Fatalf("expected blocking column 3, got %d (score %d)", d.Column, d.Score)
	}
	if d.Score <= LossScore+2 {
		t.Fatalf("blocking should avoid the immediate loss, got score %d", d.Score)
	}
}

func TestSelectMovePrefersLowestColumnOnTies(t *testing.T) {
	// Only the centre column is filled, so the position is mirror symmetric and
	// every column c scores the same as 6-c.
	b := mustBoard(t,
		"...X...",
		"...O...",
		"...X...",
		"...O...",
		"...X...",
		"...O...",
	)

	for _, depth := range []int{1, 2, 3, SearchDepth} {
		d := SelectMove(b, domain.Player1, depth)
		if d.Column >= domain.CenterColumn {
			t.Fatalf("depth %d: expected the lower of two mirrored columns, got %d", depth, d.Column)
		}
	}
}

func TestSelectMoveDepthOneMatchesEvaluate(t *testing.T) {
	b := mustBoard(t,
		".......",
		".......",
		".......",
		"...O...",
		"..XX...",
		".OXO...",
	)
	ai := domain.Player1

	bestCol, bestScore := -1, 0
	for _, col := range b.LegalMoves() {
		b.Apply(col, ai)
		score := b.Evaluate(ai)
		if b.IsWin(ai) {
			score = WinScore - 1
		}
		b.Undo(col)
		if bestCol == -1 || score > bestScore {
			bestCol, bestScore = col, score
		}
	}

	d := SelectMove(b, ai, 1)
	if d.Column != bestCol || d.Score != bestScore {
		t.Fatalf("expected column %d score %d, got column %d score %d", bestCol, bestScore, d.Column, d.Score)
	}
}

func TestPruningDoesNotChangeDecision(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	boards := []*domain.Board{domain.NewBoard()}
	for len(boards) < 12 {
		b := domain.NewBoard()
		plies := 4 + rng.Intn(16)
		for i := 0; i < plies; i++ {
			legal := b.LegalMoves()
			col := legal[rng.Intn(len(legal))]
			b.Apply(col, b.Turn())
			if b.Result().IsFinished() {
				b.Undo(col)
				break
			}
		}
		boards = append(boards, b)
	}

	for i, b := range boards {
		player := b.Turn()
		for depth := 1; depth <= SearchDepth; depth++ {
			pruned := Engine{}.SelectMove(b, player, depth)
			full := Engine{DisablePruning: true}.SelectMove(b, player, depth)

			if pruned.Column != full.Column || pruned.Score != full.Score {
				t.Fatalf("board %d depth %d: pruned (%d, %d) != full (%d, %d)\n%s",
					i, depth, pruned.Column, pruned.Score, full.Column, full.Score, b)
			}
			if pruned.Nodes > full.Nodes {
				t.Fatalf("board %d depth %d: pruning visited more nodes (%d > %d)", i, depth, pruned.Nodes, full.Nodes)
			}
			if full.Cutoffs != 0 {
				t.Fatalf("unpruned search reported %d cutoffs", full.Cutoffs)
			}
		}
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	b := mustBoard(t,
		".......",
		".......",
		"...X...",
		"..OO...",
		".XXO...",
		"OXXOX.O",
	)
	before := *b

	SelectMove(b, domain.Player1, SearchDepth)
	if *b != before {
		t.Fatalf("search left the board modified:\n%s", b)
	}
	Engine{DisablePruning: true}.SelectMove(b, domain.Player1, 3)
	if *b != before {
		t.Fatalf("unpruned search left the board modified:\n%s", b)
	}
}

func TestSelectMovePanicsOnFinishedBoard(t *testing.T) {
	tests := map[string][]string{
		"draw": {
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
			"OOXXOOX",
		},
		"won": {
			".......",
			".......",
			".......",
			".......",
			"OOO....",
			"XXXX...",
		},
	}

	for name, rows := range tests {
		t.Run(name, func(t *testing.T) {
			b := mustBoard(t, rows...)
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, domain.ErrPrecondition) {
					t.Fatalf("expected ErrPrecondition panic, got %v", err)
				}
			}()
			SelectMove(b, domain.Player2, SearchDepth)
		})
	}
}
