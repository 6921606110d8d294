package player

import (
	"context"

	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

type uGame interface {
	Register(ctx context.Context, playerID string) (entity.Icon, error)
	Status(ctx context.Context) entity.Status
	Board(ctx context.Context) entity.Board
	MakeMove(ctx context.Context, playerID string, column int) (entity.Status, error)
}

// LocalBackend plays against a game running in the same process.
type LocalBackend struct {
	uGame uGame
}

func NewLocalBackend(uGame uGame) *LocalBackend {
	return &LocalBackend{uGame: uGame}
}

func (that *LocalBackend) Register(ctx context.Context, playerID string) (entity.Icon, error) {
	return that.uGame.Register(ctx, playerID)
}

func (that *LocalBackend) Status(ctx context.Context) (entity.Status, error) {
	return that.uGame.Status(ctx), nil
}

func (that *LocalBackend) Board(ctx context.Context) (entity.Board, error) {
	return that.uGame.Board(ctx), nil
}

func (that *LocalBackend) MakeMove(ctx context.Context, playerID string, column int) error {
	_, err := that.uGame.MakeMove(ctx, playerID, column)
	return err
}
