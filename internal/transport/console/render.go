package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/iamasit07/connect4-cli/internal/config"
	"github.com/iamasit07/connect4-cli/internal/domain"
	"github.com/mattn/go-isatty"
)

const bannerWidth = 50

// Renderer prints the game to a terminal. It implements game.Observer.
type Renderer struct {
	out    io.Writer
	ai     domain.PlayerID
	depth  int
	pieces map[domain.PlayerID]*color.Color
}

func NewRenderer(out io.Writer, ai domain.PlayerID, depth int, useColor bool) *Renderer {
	pieces := map[domain.PlayerID]*color.Color{
		domain.Player1: color.New(color.FgRed, color.Bold),
		domain.Player2: color.New(color.FgYellow, color.Bold),
		domain.Empty:   color.New(color.FgHiBlack),
	}
	for _, c := range pieces {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &Renderer{out: out, ai: ai, depth: depth, pieces: pieces}
}

// UseColor resolves the configured mode against the output file.
func UseColor(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Renderer) GameStarted(gameID string, board *domain.Board) {
	human := r.ai.Opponent()
	line := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(r.out, "\n%s\n        CONNECT 4 - Player vs AI\n%s\n", line, line)
	fmt.Fprintf(r.out, "\nYou are Player %d (%s)\n", human, r.piece(human))
	fmt.Fprintf(r.out, "AI is Player %d (%s)\n", r.ai, r.piece(r.ai))
	fmt.Fprintln(r.out, "Try to connect 4 pieces horizontally, vertically, or diagonally!")
	if human == domain.Player1 {
		fmt.Fprintln(r.out, "You move first.")
	} else {
		fmt.Fprintln(r.out, "The AI moves first.")
	}
	fmt.Fprintf(r.out, "\nEnter column number (0-%d) to drop your piece\n", domain.Columns-1)
	fmt.Fprintln(r.out, line)
	r.PrintBoard(board)
}

func (r *Renderer) TurnStarted(player domain.PlayerID) {
	if player == r.ai {
		fmt.Fprintf(r.out, "\nAI is thinking (searching %d moves ahead)...\n", r.depth)
	}
}

func (r *Renderer) MoveMade(move domain.Move, board *domain.Board) {
	if move.Player == r.ai {
		fmt.Fprintf(r.out, "AI placed piece in column %d\n", move.Column)
	}
	r.PrintBoard(board)
}

func (r *Renderer) GameOver(result domain.GameResult, board *domain.Board) {
	switch {
	case result.Status == domain.StatusDraw:
		fmt.Fprintln(r.out, "Game is a draw!")
	case result.Winner == r.ai:
		fmt.Fprintln(r.out, "AI wins! Better luck next time!")
	default:
		fmt.Fprintln(r.out, "Congratulations! You won!")
	}
	fmt.Fprintln(r.out, "\nThanks for playing!")
}

// Interrupted is printed when the player leaves mid-game.
func (r *Renderer) Interrupted() {
	fmt.Fprintln(r.out, "\n\nGame terminated by user.")
}

// PrintBoard draws the grid top row first with the column numbers underneath.
func (r *Renderer) PrintBoard(board *domain.Board) {
	var sb strings.Builder
	rule := strings.Repeat("=", domain.Columns*3)

	sb.WriteString("\n" + rule + "\n")
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			sb.WriteString(" " + r.piece(board.Cell(row, col)) + " ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(rule + "\n")
	for col := 0; col < domain.Columns; col++ {
		fmt.Fprintf(&sb, " %d ", col)
	}
	sb.WriteString("\n\n")

	io.WriteString(r.out, sb.String())
}

func (r *Renderer) piece(p domain.PlayerID) string {
	return r.pieces[p].Sprint(p.Symbol())
}
