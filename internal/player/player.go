package player

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rocketscienceinc/connect4-backend/internal/entity"
	"github.com/rocketscienceinc/connect4-backend/internal/render"
)

// Player is one participant, whatever drives its moves.
type Player interface {
	ID() string
	Register(ctx context.Context) (entity.Icon, error)
	IsMyTurn(ctx context.Context) (bool, error)
	Status(ctx context.Context) (entity.Status, error)
	MakeMove(ctx context.Context) error
	Visualize(ctx context.Context) error
	Celebrate(ctx context.Context) error
}

// Backend is the game a player talks to, in-process or over HTTP.
type Backend interface {
	Register(ctx context.Context, playerID string) (entity.Icon, error)
	Status(ctx context.Context) (entity.Status, error)
	Board(ctx context.Context) (entity.Board, error)
	MakeMove(ctx context.Context, playerID string, column int) error
}

type Option func(*seat)

func WithID(id string) Option {
	return func(that *seat) {
		that.id = id
	}
}

func WithOutput(out io.Writer) Option {
	return func(that *seat) {
		that.out = out
	}
}

// seat holds what every variant shares: identity, icon and the backend.
type seat struct {
	id      string
	icon    entity.Icon
	backend Backend
	out     io.Writer
}

func newSeat(backend Backend, opts []Option) seat {
	s := seat{
		id:      uuid.NewString(),
		backend: backend,
		out:     io.Discard,
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

func (that *seat) ID() string {
	return that.id
}

func (that *seat) Icon() entity.Icon {
	return that.icon
}

func (that *seat) Register(ctx context.Context) (entity.Icon, error) {
	icon, err := that.backend.Register(ctx, that.id)
	if err != nil {
		return entity.EmptyCell, errors.WithMessage(err, "failed to register")
	}

	that.icon = icon

	return icon, nil
}

func (that *seat) Status(ctx context.Context) (entity.Status, error) {
	status, err := that.backend.Status(ctx)
	if err != nil {
		return entity.Status{}, errors.WithMessage(err, "failed to get status")
	}

	return status, nil
}

func (that *seat) IsMyTurn(ctx context.Context) (bool, error) {
	status, err := that.Status(ctx)
	if err != nil {
		return false, err
	}

	return status.IsOngoing() && status.ActivePlayerID == that.id, nil
}

func (that *seat) Visualize(ctx context.Context) error {
	board, err := that.backend.Board(ctx)
	if err != nil {
		return errors.WithMessage(err, "failed to get board")
	}

	return render.Write(that.out, board)
}

// outcome describes the finished game from this seat's point of view.
func (that *seat) outcome(status entity.Status) string {
	switch {
	case status.Draw:
		return "Draw, the board is full."
	case status.Winner == that.icon:
		return "I Player [" + string(that.icon) + "] won!"
	default:
		return "Player [" + string(status.Winner) + "] won, I Player [" + string(that.icon) + "] lost."
	}
}
