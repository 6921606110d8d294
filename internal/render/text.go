package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

const cellWidth = 3

// Text draws the board with a column header and box borders.
func Text(board entity.Board) string {
	var sb strings.Builder

	sb.WriteString(header())
	sb.WriteString(border("┌", "┬", "┐"))

	for row := 0; row < entity.Rows; row++ {
		if row > 0 {
			sb.WriteString(border("├", "┼", "┤"))
		}

		sb.WriteString("│")
		for column := 0; column < entity.Columns; column++ {
			sb.WriteString(" ")
			sb.WriteString(symbol(board[row][column]))
			sb.WriteString(" │")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(border("└", "┴", "┘"))

	return sb.String()
}

func Write(w io.Writer, board entity.Board) error {
	if _, err := io.WriteString(w, Text(board)); err != nil {
		return errors.WithMessage(err, "write board")
	}

	return nil
}

func header() string {
	var sb strings.Builder

	for column := 0; column < entity.Columns; column++ {
		sb.WriteString("  ")
		sb.WriteString(strconv.Itoa(column))
		sb.WriteString(" ")
	}
	sb.WriteString("\n")

	return sb.String()
}

func border(left, middle, right string) string {
	segments := make([]string, entity.Columns)
	for i := range segments {
		segments[i] = strings.Repeat("─", cellWidth)
	}

	return left + strings.Join(segments, middle) + right + "\n"
}

func symbol(icon entity.Icon) string {
	if icon == entity.EmptyCell {
		return " "
	}

	return string(icon)
}
