package entity

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
)

const (
	Rows    = 7
	Columns = 8

	// Cells is the length of a flattened board.
	Cells = Rows * Columns
)

var (
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrUnknownIcon      = errors.New("unknown icon")
	ErrFloatingPiece    = errors.New("piece is not supported by the cell below")
)

// Board is the 7x8 grid. Row 0 is the top row, row Rows-1 the bottom one.
// It is a value type: assigning it copies every cell.
type Board [Rows][Columns]Icon

// Drop places icon in the lowest empty cell of column and returns its row.
func (that *Board) Drop(column int, icon Icon) (int, error) {
	if column < 0 || column >= Columns {
		return -1, errors.WithMessagef(apperror.ErrInvalidColumn, "column %d", column)
	}

	if !icon.IsPlayer() {
		return -1, errors.WithMessagef(ErrUnknownIcon, "icon %q", icon)
	}

	for row := Rows - 1; row >= 0; row-- {
		if that[row][column] == EmptyCell {
			that[row][column] = icon
			return row, nil
		}
	}

	return -1, errors.WithMessagef(apperror.ErrColumnFull, "column %d", column)
}

// IsColumnOpen reports whether column still accepts a piece.
func (that *Board) IsColumnOpen(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	return that[0][column] == EmptyCell
}

func (that *Board) OpenColumns() []int {
	open := make([]int, 0, Columns)
	for column := 0; column < Columns; column++ {
		if that.IsColumnOpen(column) {
			open = append(open, column)
		}
	}

	return open
}

// Clone returns an independent copy.
func (that *Board) Clone() Board {
	return *that
}

func (that *Board) IsEmpty() bool {
	return that.Count() == 0
}

func (that *Board) IsFull() bool {
	for column := 0; column < Columns; column++ {
		if that.IsColumnOpen(column) {
			return false
		}
	}

	return true
}

// Count returns the number of pieces on the board.
func (that *Board) Count() int {
	count := 0
	for row := range that {
		for column := range that[row] {
			if that[row][column] != EmptyCell {
				count++
			}
		}
	}

	return count
}

// Flatten returns the cells row-major, the shape used on the wire.
func (that *Board) Flatten() []Icon {
	cells := make([]Icon, 0, Cells)
	for row := range that {
		cells = append(cells, that[row][:]...)
	}

	return cells
}

// BoardFromFlat rebuilds a board from its row-major form.
func BoardFromFlat(cells []Icon) (Board, error) {
	var board Board

	if len(cells) != Cells {
		return board, errors.WithMessagef(ErrInvalidBoardSize, "got %d cells, want %d", len(cells), Cells)
	}

	for i, cell := range cells {
		if cell != EmptyCell && !cell.IsPlayer() {
			return board, errors.WithMessagef(ErrUnknownIcon, "cell %d holds %q", i, cell)
		}

		board[i/Columns][i%Columns] = cell
	}

	if err := board.validateGravity(); err != nil {
		return Board{}, err
	}

	return board, nil
}

func (that *Board) validateGravity() error {
	for column := 0; column < Columns; column++ {
		for row := 0; row < Rows-1; row++ {
			if that[row][column] != EmptyCell && that[row+1][column] == EmptyCell {
				return errors.WithMessagef(ErrFloatingPiece, "row %d column %d", row, column)
			}
		}
	}

	return nil
}

func (that Board) String() string {
	return fmt.Sprintf("%v", that.Flatten())
}
