package search

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/connect4-backend/internal/connect4"
	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

const (
	MinHorizon     = 1
	MaxHorizon     = 10
	DefaultHorizon = 6

	// FullColumnScore marks a column that cannot be played.
	FullColumnScore int64 = -10_000_000

	// RootWinScore outweighs any sum a subtree of MaxHorizon plies can reach.
	RootWinScore int64 = 1 << 50

	opponentWeight = 10
)

var ErrInvalidHorizon = errors.New("search horizon is out of range")

// Result is the outcome of one search call.
type Result struct {
	Column   int
	Scores   map[int]int64
	Nodes    int64
	Duration time.Duration
}

type Option func(*Searcher)

func WithHorizon(horizon int) Option {
	return func(that *Searcher) {
		that.horizon = horizon
	}
}

// Searcher picks a column by exhaustive look-ahead to a fixed horizon.
type Searcher struct {
	logger  *zap.Logger
	horizon int
}

func New(logger *zap.Logger, opts ...Option) (*Searcher, error) {
	searcher := &Searcher{
		logger:  logger,
		horizon: DefaultHorizon,
	}

	for _, opt := range opts {
		opt(searcher)
	}

	if searcher.horizon < MinHorizon || searcher.horizon > MaxHorizon {
		return nil, errors.WithMessagef(ErrInvalidHorizon, "got %d, want %d..%d", searcher.horizon, MinHorizon, MaxHorizon)
	}

	return searcher, nil
}

func (that *Searcher) Horizon() int {
	return that.horizon
}

// Search scores every root column for self and returns the best one. Once ctx is done
// the workers stop and the context error is returned.
func (that *Searcher) Search(ctx context.Context, board entity.Board, self entity.Icon) (Result, error) {
	log := that.logger.With(zap.String("method", "Search"), zap.String("icon", string(self)))

	if !self.IsPlayer() {
		return Result{Column: -1}, errors.WithMessagef(entity.ErrUnknownIcon, "icon %q", self)
	}

	if board.IsEmpty() {
		return Result{Column: (entity.Columns - 1) / 2}, nil
	}

	started := time.Now()
	nodes := atomic.NewInt64(0)

	var columnScores [entity.Columns]int64
	group, groupCtx := errgroup.WithContext(ctx)

	for column := 0; column < entity.Columns; column++ {
		group.Go(func() error {
			columnScores[column] = that.scoreRoot(groupCtx, board, column, self, nodes)
			return groupCtx.Err()
		})
	}

	if err := group.Wait(); err != nil {
		log.Debug("search cancelled", zap.Int64("nodes", nodes.Load()), zap.Error(err))
		return Result{Column: -1, Nodes: nodes.Load(), Duration: time.Since(started)}, errors.WithMessage(err, "search cancelled")
	}

	scores := make(map[int]int64, entity.Columns)
	open := make(map[int]int64, entity.Columns)
	for column, score := range columnScores {
		scores[column] = score
		if board.IsColumnOpen(column) {
			open[column] = score
		}
	}

	result := Result{
		Scores:   scores,
		Nodes:    nodes.Load(),
		Duration: time.Since(started),
	}

	column, err := SelectBest(open)
	if err != nil {
		result.Column = -1
		return result, err
	}

	result.Column = column

	log.Debug("search finished",
		zap.Int("column", column),
		zap.Int64("nodes", result.Nodes),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}

// scoreRoot works on its own copy of board, so root tasks share nothing but the counter.
func (that *Searcher) scoreRoot(ctx context.Context, board entity.Board, column int, self entity.Icon, nodes *atomic.Int64) int64 {
	if !board.IsColumnOpen(column) {
		return FullColumnScore
	}

	if _, err := board.Drop(column, self); err != nil {
		panic(errors.WithMessagef(err, "drop into open column %d", column))
	}
	nodes.Inc()

	if connect4.DetectWin(&board, self) {
		return RootWinScore - 1
	}

	if that.horizon == 1 || board.IsFull() {
		return 0
	}

	return that.explore(ctx, board, 2, self.Opponent(), self, nodes)
}

// explore sums the scores of every line reachable from board with mover to play at ply.
// A done ctx cuts the walk short; the partial sum is discarded by Search.
func (that *Searcher) explore(ctx context.Context, board entity.Board, ply int, mover, self entity.Icon, nodes *atomic.Int64) int64 {
	if ply > that.horizon {
		panic(errors.Errorf("search went past the horizon: ply %d, horizon %d", ply, that.horizon))
	}

	select {
	case <-ctx.Done():
		return 0
	default:
	}

	var total int64

	for column := 0; column < entity.Columns; column++ {
		if !board.IsColumnOpen(column) {
			continue
		}

		child := board.Clone()
		if _, err := child.Drop(column, mover); err != nil {
			panic(errors.WithMessagef(err, "drop into open column %d", column))
		}
		nodes.Inc()

		if connect4.DetectWin(&child, mover) {
			total += that.winScore(ply, mover == self)
			continue
		}

		if ply == that.horizon || child.IsFull() {
			continue
		}

		total += that.explore(ctx, child, ply+1, mover.Opponent(), self, nodes)
	}

	return total
}

// winScore favours shallow wins for self and punishes shallow losses harder.
func (that *Searcher) winScore(ply int, isSelf bool) int64 {
	weight := int64(that.horizon - ply + 1)
	if isSelf {
		return weight
	}

	return -opponentWeight * weight
}
