package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-cli/internal/domain"
)

// HumanSource reads columns typed at the console.
type HumanSource struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewHumanSource(in io.Reader, out io.Writer) *HumanSource {
	return &HumanSource{reader: bufio.NewReader(in), out: out}
}

// NextMove prompts until the player types a playable column. It returns a
// wrapped io.EOF once input runs out.
func (h *HumanSource) NextMove(ctx context.Context, board *domain.Board) (int, error) {
	last := domain.Columns - 1
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		fmt.Fprintf(h.out, "Enter column (0-%d): ", last)
		line, readErr := h.reader.ReadString('\n')
		text := strings.TrimSpace(line)
		if readErr != nil && text == "" {
			if errors.Is(readErr, io.EOF) {
				fmt.Fprintln(h.out)
				return -1, fmt.Errorf("input closed: %w", io.EOF)
			}
			return -1, fmt.Errorf("failed to read move: %w", readErr)
		}

		column, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintf(h.out, "Invalid input! Enter a number between 0-%d\n", last)
			continue
		}
		if column < 0 || column > last {
			fmt.Fprintf(h.out, "Invalid column! Choose 0-%d\n", last)
			continue
		}
		if !board.IsValidMove(column) {
			fmt.Fprintln(h.out, "Column is full! Choose another column")
			continue
		}
		return column, nil
	}
}
