package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/connect4-backend/internal/client"
	"github.com/rocketscienceinc/connect4-backend/internal/player"
	"github.com/rocketscienceinc/connect4-backend/internal/search"
	"github.com/rocketscienceinc/connect4-backend/internal/service"
)

const (
	modeHuman = "human"
	modeBot   = "bot"
)

var ErrUnknownMode = errors.New("unknown player mode")

type options struct {
	server  string
	mode    string
	id      string
	horizon int
	timeout time.Duration
	poll    time.Duration
	debug   bool
}

func main() {
	opts := parseFlags()

	logger, err := newLogger(opts.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err = run(logger, opts); err != nil {
		logger.Error("player stopped", zap.Error(err))
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.server, "server", "http://localhost:5000", "game server base url")
	flag.StringVar(&opts.mode, "mode", modeHuman, "who plays the seat: human or bot")
	flag.StringVar(&opts.id, "id", "", "player id, random when empty")
	flag.IntVar(&opts.horizon, "horizon", search.DefaultHorizon, "bot search horizon in plies")
	flag.DurationVar(&opts.timeout, "timeout", 30*time.Second, "bot time limit per move")
	flag.DurationVar(&opts.poll, "poll", player.DefaultPollInterval, "status polling interval")
	flag.BoolVar(&opts.debug, "debug", false, "verbose logging")
	flag.Parse()

	return opts
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return zapConfig.Build()
}

func run(logger *zap.Logger, opts options) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend := client.New(opts.server)

	seatOpts := []player.Option{player.WithOutput(os.Stdout)}
	if opts.id != "" {
		seatOpts = append(seatOpts, player.WithID(opts.id))
	}

	var p player.Player

	switch opts.mode {
	case modeHuman:
		p = player.NewHuman(backend, player.NewConsole(os.Stdin, os.Stdout), seatOpts...)
	case modeBot:
		searcher, err := search.New(logger, search.WithHorizon(opts.horizon))
		if err != nil {
			return errors.WithMessage(err, "could not create searcher")
		}

		p = player.NewBot(logger, backend, service.NewBotService(logger, searcher, opts.timeout), seatOpts...)
	default:
		return errors.WithMessagef(ErrUnknownMode, "%q", opts.mode)
	}

	status, err := player.NewCoordinator(logger, p, opts.poll).Play(ctx)
	if err != nil {
		return errors.WithMessage(err, "game aborted")
	}

	logger.Info("game over", zap.String("winner", string(status.Winner)), zap.Bool("draw", status.Draw))

	return nil
}
