package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
	"github.com/rocketscienceinc/connect4-backend/internal/entity"
	"github.com/rocketscienceinc/connect4-backend/internal/search"
)

var ErrSearchTimeout = errors.New("search timed out")

type searcher interface {
	Search(ctx context.Context, board entity.Board, self entity.Icon) (search.Result, error)
}

// BotService picks columns for a non-human participant.
type BotService interface {
	ChooseColumn(ctx context.Context, board entity.Board, icon entity.Icon) (int, error)
}

type botService struct {
	logger   *zap.Logger
	searcher searcher
	timeout  time.Duration
}

func NewBotService(logger *zap.Logger, searcher searcher, timeout time.Duration) BotService {
	return &botService{
		logger:   logger.With(zap.String("component", "BotService")),
		searcher: searcher,
		timeout:  timeout,
	}
}

// ChooseColumn runs the search under the configured timeout. A search that does not
// finish in time is cancelled and the centre-most open column is played instead.
func (that *botService) ChooseColumn(ctx context.Context, board entity.Board, icon entity.Icon) (int, error) {
	log := that.logger.With(zap.String("method", "ChooseColumn"), zap.String("icon", string(icon)))

	searchCtx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	result, err := that.searcher.Search(searchCtx, board, icon)
	switch {
	case err == nil:
		log.Debug("column chosen",
			zap.Int("column", result.Column),
			zap.Int64("nodes", result.Nodes),
			zap.Duration("duration", result.Duration),
		)

		return result.Column, nil
	case ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded):
		column, fallbackErr := FallbackColumn(board)
		if fallbackErr != nil {
			return -1, fallbackErr
		}

		log.Warn("search abandoned, playing fallback column",
			zap.Error(errors.WithMessage(ErrSearchTimeout, err.Error())),
			zap.Int("column", column),
			zap.Int64("nodes", result.Nodes),
		)

		return column, nil
	default:
		return -1, errors.WithMessage(err, "failed to search")
	}
}

// FallbackColumn returns the open column closest to the centre, the left one on ties.
func FallbackColumn(board entity.Board) (int, error) {
	centre := (entity.Columns - 1) / 2

	for offset := 0; offset < entity.Columns; offset++ {
		for _, column := range []int{centre - offset, centre + offset + 1} {
			if board.IsColumnOpen(column) {
				return column, nil
			}
		}
	}

	return -1, apperror.ErrNoLegalMove
}
