package application

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/connect4-backend/internal/config"
	"github.com/rocketscienceinc/connect4-backend/internal/connect4"
	"github.com/rocketscienceinc/connect4-backend/internal/player"
	"github.com/rocketscienceinc/connect4-backend/internal/search"
	"github.com/rocketscienceinc/connect4-backend/internal/service"
	"github.com/rocketscienceinc/connect4-backend/internal/transport/redis"
	"github.com/rocketscienceinc/connect4-backend/internal/usecase"
	"github.com/rocketscienceinc/connect4-backend/transport/rest"
	"github.com/rocketscienceinc/connect4-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *zap.Logger, conf *config.Config) error {
	log := logger.With(zap.String("component", "app"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session := connect4.NewSession()

	hub := websocket.New(logger, session)
	publishers := []usecase.Publisher{hub}

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisClient, err := redis.Connect(ctx, redisAddrString)
		if err != nil {
			return errors.WithMessage(err, "could not connect to redis")
		}

		redisPublisher := redis.NewPublisher(logger, redisClient, conf.Redis.Channel)
		defer func() {
			if err = redisPublisher.Close(); err != nil {
				log.Error("could not close redis publisher", zap.Error(err))
			}
		}()

		publishers = append(publishers, redisPublisher)
	}

	gameManager := usecase.NewGameManager(logger, session, publishers...)

	server := rest.NewServer(logger, conf.HTTPPort, rest.NewHandlers(logger, gameManager), hub)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return server.Start(groupCtx)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		hub.Close()
		return nil
	})

	if conf.Bot.Enabled {
		searcher, err := search.New(logger, search.WithHorizon(conf.Search.Horizon))
		if err != nil {
			return errors.WithMessage(err, "could not create searcher")
		}

		bot := player.NewBot(
			logger,
			player.NewLocalBackend(gameManager),
			service.NewBotService(logger, searcher, conf.Search.Timeout),
			player.WithID(conf.Bot.PlayerID),
		)
		coordinator := player.NewCoordinator(logger, bot, conf.Bot.PollInterval)

		group.Go(func() error {
			log.Info("bot seated", zap.String("player_id", bot.ID()), zap.Int("horizon", conf.Search.Horizon))
			return coordinator.Run(groupCtx)
		})
	}

	if err := group.Wait(); err != nil {
		return errors.WithMessage(err, "application stopped with error")
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
