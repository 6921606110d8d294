package connect4

import "github.com/rocketscienceinc/connect4-backend/internal/entity"

// RunLength is the number of aligned pieces that wins the game.
const RunLength = 4

// directions are (row, column) steps: horizontal, vertical, diagonal down-right, diagonal up-right.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// DetectWin reports whether icon has four in a row anywhere on the board.
func DetectWin(board *entity.Board, icon entity.Icon) bool {
	if !icon.IsPlayer() {
		return false
	}

	for row := 0; row < entity.Rows; row++ {
		for column := 0; column < entity.Columns; column++ {
			if board[row][column] != icon {
				continue
			}

			for _, direction := range directions {
				if hasRun(board, icon, row, column, direction[0], direction[1]) {
					return true
				}
			}
		}
	}

	return false
}

// DetectAnyWin returns the winning icon or entity.EmptyCell.
func DetectAnyWin(board *entity.Board) entity.Icon {
	for _, icon := range []entity.Icon{entity.IconX, entity.IconO} {
		if DetectWin(board, icon) {
			return icon
		}
	}

	return entity.EmptyCell
}

func hasRun(board *entity.Board, icon entity.Icon, row, column, rowStep, columnStep int) bool {
	for i := 1; i < RunLength; i++ {
		r, c := row+i*rowStep, column+i*columnStep
		if r < 0 || r >= entity.Rows || c < 0 || c >= entity.Columns {
			return false
		}

		if board[r][c] != icon {
			return false
		}
	}

	return true
}
