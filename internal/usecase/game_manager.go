package usecase

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

type gameSession interface {
	Register(playerID string) (entity.Icon, bool, error)
	Status() entity.Status
	Board() entity.Board
	Snapshot() (entity.Status, entity.Board)
	SubmitMove(column int, playerID string) (int, error)
	Reset()
}

// Publisher delivers game events to observers.
type Publisher interface {
	Publish(ctx context.Context, event entity.Event) error
}

type GameManager struct {
	logger     *zap.Logger
	session    gameSession
	publishers []Publisher
}

func NewGameManager(logger *zap.Logger, session gameSession, publishers ...Publisher) *GameManager {
	return &GameManager{
		logger: logger.With(zap.String("component", "GameManager")),

		session:    session,
		publishers: publishers,
	}
}

func (that *GameManager) Register(ctx context.Context, playerID string) (entity.Icon, error) {
	log := that.logger.With(zap.String("method", "Register"), zap.String("player_id", playerID))

	icon, seated, err := that.session.Register(playerID)
	if err != nil {
		log.Info("registration rejected", zap.Error(err))
		return entity.EmptyCell, errors.WithMessage(err, "failed to register player")
	}

	if !seated {
		return icon, nil
	}

	log.Info("player registered", zap.String("icon", string(icon)))

	that.publish(ctx, entity.Event{
		Type:     entity.EventRegistered,
		PlayerID: playerID,
		Icon:     icon,
		Column:   -1,
		Row:      -1,
	})

	return icon, nil
}

func (that *GameManager) Status(_ context.Context) entity.Status {
	return that.session.Status()
}

func (that *GameManager) Board(_ context.Context) entity.Board {
	return that.session.Board()
}

// MakeMove submits column for playerID and returns the status after the move.
func (that *GameManager) MakeMove(ctx context.Context, playerID string, column int) (entity.Status, error) {
	log := that.logger.With(
		zap.String("method", "MakeMove"),
		zap.String("player_id", playerID),
		zap.Int("column", column),
	)

	row, err := that.session.SubmitMove(column, playerID)
	if err != nil {
		if apperror.IsRejection(err) {
			log.Info("move rejected", zap.Error(err))
		} else {
			log.Error("failed to make move", zap.Error(err))
		}

		return that.session.Status(), errors.WithMessage(err, "failed to make move")
	}

	status, board := that.session.Snapshot()
	icon := board[row][column]
	log.Debug("move accepted", zap.Int("row", row), zap.Int("turn", status.Turn))

	that.publish(ctx, entity.Event{
		Type:     entity.EventMove,
		PlayerID: playerID,
		Icon:     icon,
		Column:   column,
		Row:      row,
	})

	if status.IsFinished() {
		log.Info("game finished", zap.String("winner", string(status.Winner)), zap.Bool("draw", status.Draw))

		that.publish(ctx, entity.Event{
			Type:   entity.EventFinished,
			Icon:   status.Winner,
			Column: -1,
			Row:    -1,
		})
	}

	return status, nil
}

func (that *GameManager) Reset(ctx context.Context) {
	that.session.Reset()
	that.logger.Info("session reset", zap.String("method", "Reset"))

	that.publish(ctx, entity.Event{Type: entity.EventReset, Column: -1, Row: -1})
}

// publish fills in the snapshot fields and fans the event out. Failures are only logged.
func (that *GameManager) publish(ctx context.Context, event entity.Event) {
	status, board := that.session.Snapshot()

	event.Status = status
	event.Board = board.Flatten()
	event.Time = time.Now().UTC()

	for _, publisher := range that.publishers {
		if err := publisher.Publish(ctx, event); err != nil {
			that.logger.Warn("failed to publish event",
				zap.String("method", "publish"),
				zap.String("type", event.Type),
				zap.Error(err),
			)
		}
	}
}
