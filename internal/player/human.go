package player

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
)

type columnReader interface {
	ReadColumn(ctx context.Context) (int, error)
	Println(message string)
}

// Human asks a person for every move.
type Human struct {
	seat
	input columnReader
}

func NewHuman(backend Backend, input columnReader, opts ...Option) *Human {
	return &Human{
		seat:  newSeat(backend, opts),
		input: input,
	}
}

// MakeMove keeps asking until the game accepts a column.
func (that *Human) MakeMove(ctx context.Context) error {
	for {
		column, err := that.input.ReadColumn(ctx)
		if err != nil {
			return errors.WithMessage(err, "failed to read column")
		}

		err = that.backend.MakeMove(ctx, that.id, column)
		if err == nil {
			return nil
		}

		if !apperror.IsRejection(err) {
			return errors.WithMessage(err, "failed to make move")
		}

		that.input.Println("Move rejected: " + err.Error())
	}
}

func (that *Human) Celebrate(ctx context.Context) error {
	status, err := that.Status(ctx)
	if err != nil {
		return err
	}

	that.input.Println(that.outcome(status))

	return nil
}
