package search

import (
	"maps"
	"slices"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
)

// SelectBest returns the column with the highest score. Ties go to the lowest column.
func SelectBest(scores map[int]int64) (int, error) {
	if len(scores) == 0 {
		return -1, apperror.ErrNoLegalMove
	}

	best := -1
	var bestScore int64

	for _, column := range slices.Sorted(maps.Keys(scores)) {
		if best == -1 || scores[column] > bestScore {
			best, bestScore = column, scores[column]
		}
	}

	return best, nil
}
