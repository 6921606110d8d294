package player

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

const DefaultPollInterval = time.Second

// Coordinator drives one player through a game: register, wait, move, celebrate.
type Coordinator struct {
	logger       *zap.Logger
	player       Player
	pollInterval time.Duration
}

func NewCoordinator(logger *zap.Logger, player Player, pollInterval time.Duration) *Coordinator {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &Coordinator{
		logger:       logger.With(zap.String("component", "Coordinator"), zap.String("player_id", player.ID())),
		player:       player,
		pollInterval: pollInterval,
	}
}

// Play registers the player and returns the final status once the game is over.
func (that *Coordinator) Play(ctx context.Context) (entity.Status, error) {
	log := that.logger.With(zap.String("method", "Play"))

	icon, err := that.player.Register(ctx)
	if err != nil {
		return entity.Status{}, err
	}

	log.Info("registered", zap.String("icon", string(icon)))

	ticker := time.NewTicker(that.pollInterval)
	defer ticker.Stop()

	announced := false

	for {
		status, err := that.player.Status(ctx)
		if err != nil {
			return entity.Status{}, err
		}

		switch {
		case status.IsFinished():
			if err = that.player.Visualize(ctx); err != nil {
				log.Warn("failed to visualize", zap.Error(err))
			}
			if err = that.player.Celebrate(ctx); err != nil {
				return status, err
			}
			return status, nil
		case status.IsOngoing() && status.ActivePlayerID == that.player.ID():
			if err = that.player.Visualize(ctx); err != nil {
				log.Warn("failed to visualize", zap.Error(err))
			}
			if err = that.player.MakeMove(ctx); err != nil {
				if !apperror.IsRejection(err) {
					return status, err
				}
				log.Info("move rejected, retrying", zap.Error(err))
			}
			continue
		case status.IsWaiting():
			// Registering is idempotent, so this only takes a seat again after a reset.
			if _, err = that.player.Register(ctx); err != nil {
				return status, err
			}
			if !announced {
				log.Info("waiting for the other player")
				announced = true
			}
		}

		select {
		case <-ctx.Done():
			return status, errors.WithMessage(ctx.Err(), "game interrupted")
		case <-ticker.C:
		}
	}
}

// Run plays game after game, taking a seat again whenever the session is reset.
func (that *Coordinator) Run(ctx context.Context) error {
	log := that.logger.With(zap.String("method", "Run"))

	for {
		if err := that.waitForOpenSeat(ctx); err != nil {
			return err
		}

		if ctx.Err() != nil {
			return nil
		}

		status, err := that.Play(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case errors.Is(err, apperror.ErrGameFull):
			log.Info("seat taken, waiting for the next game")
		case err != nil:
			log.Error("game aborted", zap.Error(err))
		default:
			log.Info("game over", zap.String("winner", string(status.Winner)), zap.Bool("draw", status.Draw))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(that.pollInterval):
		}
	}
}

// waitForOpenSeat returns once the session accepts registrations again.
func (that *Coordinator) waitForOpenSeat(ctx context.Context) error {
	ticker := time.NewTicker(that.pollInterval)
	defer ticker.Stop()

	for {
		status, err := that.player.Status(ctx)
		if err != nil {
			that.logger.Warn("failed to get status", zap.Error(err))
		} else if status.IsWaiting() {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
