package player

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

type columnChooser interface {
	ChooseColumn(ctx context.Context, board entity.Board, icon entity.Icon) (int, error)
}

// Bot lets the look-ahead search pick every move.
type Bot struct {
	seat
	logger  *zap.Logger
	chooser columnChooser
}

func NewBot(logger *zap.Logger, backend Backend, chooser columnChooser, opts ...Option) *Bot {
	bot := &Bot{
		seat:    newSeat(backend, opts),
		chooser: chooser,
	}
	bot.logger = logger.With(zap.String("component", "Bot"), zap.String("player_id", bot.id))

	return bot
}

func (that *Bot) MakeMove(ctx context.Context) error {
	board, err := that.backend.Board(ctx)
	if err != nil {
		return errors.WithMessage(err, "failed to get board")
	}

	column, err := that.chooser.ChooseColumn(ctx, board, that.icon)
	if err != nil {
		return errors.WithMessage(err, "failed to choose column")
	}

	if err = that.backend.MakeMove(ctx, that.id, column); err != nil {
		return errors.WithMessagef(err, "failed to play column %d", column)
	}

	that.logger.Debug("move made", zap.Int("column", column))

	return nil
}

func (that *Bot) Celebrate(ctx context.Context) error {
	status, err := that.Status(ctx)
	if err != nil {
		return err
	}

	that.logger.Info(that.outcome(status), zap.String("icon", string(that.icon)), zap.Int("turn", status.Turn))

	return nil
}
