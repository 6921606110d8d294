package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

func newSearcher(t *testing.T, horizon int) *Searcher {
	t.Helper()

	searcher, err := New(zap.NewNop(), WithHorizon(horizon))
	require.NoError(t, err)

	return searcher
}

func TestNew(t *testing.T) {
	t.Run("Default horizon", func(t *testing.T) {
		searcher, err := New(zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, DefaultHorizon, searcher.Horizon())
	})

	t.Run("Horizon out of range", func(t *testing.T) {
		for _, horizon := range []int{0, -1, MaxHorizon + 1} {
			_, err := New(zap.NewNop(), WithHorizon(horizon))

			require.ErrorIs(t, err, ErrInvalidHorizon)
		}
	})
}

func TestSearcher_Search(t *testing.T) {
	t.Run("Empty board plays the centre without simulating", func(t *testing.T) {
		// Given: an empty board
		var board entity.Board

		// When: searching
		result, err := newSearcher(t, MaxHorizon).Search(context.Background(), board, entity.IconX)

		// Then: column 3 is returned and no node was visited
		require.NoError(t, err)
		assert.Equal(t, 3, result.Column)
		assert.Zero(t, result.Nodes)
	})

	t.Run("Takes the immediate win at every horizon", func(t *testing.T) {
		// Given: X holds columns 0..2 of the bottom row, O stacked on 0 and 1
		var board entity.Board
		for _, column := range []int{0, 1, 2} {
			_, err := board.Drop(column, entity.IconX)
			require.NoError(t, err)
		}
		for _, column := range []int{0, 1} {
			_, err := board.Drop(column, entity.IconO)
			require.NoError(t, err)
		}

		for horizon := 1; horizon <= 4; horizon++ {
			// When: X searches
			result, err := newSearcher(t, horizon).Search(context.Background(), board, entity.IconX)

			// Then: column 3 completes the row
			require.NoError(t, err)
			assert.Equal(t, 3, result.Column, "horizon %d", horizon)
			assert.Equal(t, RootWinScore-1, result.Scores[3])
		}
	})

	t.Run("Blocks the opponent's immediate win", func(t *testing.T) {
		// Given: O holds columns 0..2 of the bottom row and X is to move
		var board entity.Board
		for _, column := range []int{0, 1, 2} {
			_, err := board.Drop(column, entity.IconO)
			require.NoError(t, err)
		}
		for _, column := range []int{0, 1} {
			_, err := board.Drop(column, entity.IconX)
			require.NoError(t, err)
		}

		// When: X searches two plies ahead
		result, err := newSearcher(t, 2).Search(context.Background(), board, entity.IconX)

		// Then: X blocks at column 3
		require.NoError(t, err)
		assert.Equal(t, 3, result.Column)
		assert.Less(t, result.Scores[4], result.Scores[3])
		assert.Positive(t, result.Nodes)
	})

	t.Run("Full columns get the sentinel and are never chosen", func(t *testing.T) {
		// Given: columns 0..6 are full, only column 7 is open
		board := fullBoardExcept(t, 7)

		// When: searching
		result, err := newSearcher(t, 3).Search(context.Background(), board, entity.IconO)

		// Then: column 7 is the only candidate
		require.NoError(t, err)
		assert.Equal(t, 7, result.Column)
		for column := 0; column < 7; column++ {
			assert.Equal(t, FullColumnScore, result.Scores[column])
		}
	})

	t.Run("Full board is ErrNoLegalMove", func(t *testing.T) {
		board := fullBoardExcept(t, -1)

		result, err := newSearcher(t, 2).Search(context.Background(), board, entity.IconX)

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
		assert.Equal(t, -1, result.Column)
	})

	t.Run("Search does not mutate the caller's board", func(t *testing.T) {
		var board entity.Board
		_, err := board.Drop(4, entity.IconO)
		require.NoError(t, err)
		before := board

		_, err = newSearcher(t, 3).Search(context.Background(), board, entity.IconX)

		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Rejects an empty icon", func(t *testing.T) {
		var board entity.Board

		_, err := newSearcher(t, 1).Search(context.Background(), board, entity.EmptyCell)

		require.ErrorIs(t, err, entity.ErrUnknownIcon)
	})
}

func TestSearcher_SearchCancelled(t *testing.T) {
	t.Run("Already cancelled context returns at once", func(t *testing.T) {
		// Given: a board with one piece and a cancelled context
		var board entity.Board
		_, err := board.Drop(3, entity.IconX)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: searching at the deepest horizon
		result, err := newSearcher(t, MaxHorizon).Search(ctx, board, entity.IconO)

		// Then: the context error is returned without a column
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, -1, result.Column)
	})

	t.Run("Deadline stops a deep search early", func(t *testing.T) {
		var board entity.Board
		_, err := board.Drop(3, entity.IconX)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		started := time.Now()
		_, err = newSearcher(t, MaxHorizon).Search(ctx, board, entity.IconO)

		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(started), 5*time.Second)
	})
}

func TestSearcher_winScore(t *testing.T) {
	searcher := newSearcher(t, 4)

	tests := []struct {
		name    string
		shallow int
		deep    int
		isSelf  bool
	}{
		{name: "Shallow wins are worth more for self", shallow: 2, deep: 4, isSelf: true},
		{name: "Shallow losses cost more for the opponent", shallow: 2, deep: 4, isSelf: false},
		{name: "Adjacent plies keep the order for self", shallow: 3, deep: 4, isSelf: true},
		{name: "Adjacent plies keep the order for the opponent", shallow: 2, deep: 3, isSelf: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: scoring a win at a shallow and a deep ply
			shallow := searcher.winScore(tt.shallow, tt.isSelf)
			deep := searcher.winScore(tt.deep, tt.isSelf)

			// Then: self prefers the shallow win, the opponent's shallow win hurts more
			if tt.isSelf {
				assert.Greater(t, shallow, deep)
				assert.Positive(t, deep)
			} else {
				assert.Less(t, shallow, deep)
				assert.Negative(t, deep)
			}
		})
	}

	t.Run("Opponent wins weigh ten times a win for self", func(t *testing.T) {
		for ply := 2; ply <= 4; ply++ {
			assert.Equal(t, -opponentWeight*searcher.winScore(ply, true), searcher.winScore(ply, false))
		}
	})

	t.Run("Exact weights at horizon 4", func(t *testing.T) {
		assert.Equal(t, int64(3), searcher.winScore(2, true))
		assert.Equal(t, int64(1), searcher.winScore(4, true))
		assert.Equal(t, int64(-30), searcher.winScore(2, false))
		assert.Equal(t, int64(-10), searcher.winScore(4, false))
	})
}

func TestSearcher_explorePanicsPastHorizon(t *testing.T) {
	searcher := newSearcher(t, 2)
	var board entity.Board

	assert.Panics(t, func() {
		searcher.explore(context.Background(), board, 3, entity.IconO, entity.IconX, nil)
	})
}

// fullBoardExcept fills every column but open. Pass -1 to fill the whole board.
func fullBoardExcept(t *testing.T, open int) entity.Board {
	t.Helper()

	var board entity.Board
	for column := 0; column < entity.Columns; column++ {
		if column == open {
			continue
		}
		for row := entity.Rows - 1; row >= 0; row-- {
			icon := entity.IconX
			if (row/2+column/2)%2 == 1 {
				icon = entity.IconO
			}
			board[row][column] = icon
		}
	}

	return board
}
