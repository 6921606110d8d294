package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
	"github.com/rocketscienceinc/connect4-backend/internal/connect4"
	"github.com/rocketscienceinc/connect4-backend/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/connect4-backend/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

func xStarts() entity.Icon { return entity.IconX }

func isEvent(eventType string) interface{} {
	return mock.MatchedBy(func(event entity.Event) bool {
		return event.Type == eventType
	})
}

func TestGameManager_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Publishes a registered event", func(t *testing.T) {
		// Given: a manager with a mock publisher
		publisher := mockedUseCase.NewMockPublisher(t)
		manager := NewGameManager(zap.NewNop(), connect4.NewSession(), publisher)

		publisher.EXPECT().
			Publish(mock.Anything, mock.MatchedBy(func(event entity.Event) bool {
				return event.Type == entity.EventRegistered &&
					event.PlayerID == "p1" &&
					event.Icon == entity.IconX &&
					len(event.Board) == entity.Cells &&
					event.Status.IsWaiting()
			})).
			Return(nil).
			Once()

		// When: registering the first player
		icon, err := manager.Register(ctx, "p1")

		// Then: X is assigned
		require.NoError(t, err)
		assert.Equal(t, entity.IconX, icon)
	})

	t.Run("Rejected registration publishes nothing", func(t *testing.T) {
		// Given: a full session
		publisher := mockedUseCase.NewMockPublisher(t)
		manager := NewGameManager(zap.NewNop(), connect4.NewSession(), publisher)

		publisher.EXPECT().Publish(mock.Anything, isEvent(entity.EventRegistered)).Return(nil).Twice()

		_, err := manager.Register(ctx, "p1")
		require.NoError(t, err)
		_, err = manager.Register(ctx, "p2")
		require.NoError(t, err)

		// When: a third player registers
		_, err = manager.Register(ctx, "p3")

		// Then: ErrGameFull and no extra event
		require.ErrorIs(t, err, apperror.ErrGameFull)
	})

	t.Run("Registering the same id again publishes nothing", func(t *testing.T) {
		// Given: a manager with a mock publisher expecting one event
		publisher := mockedUseCase.NewMockPublisher(t)
		manager := NewGameManager(zap.NewNop(), connect4.NewSession(), publisher)

		publisher.EXPECT().Publish(mock.Anything, isEvent(entity.EventRegistered)).Return(nil).Once()

		// When: the same player registers on every poll
		for i := 0; i < 10; i++ {
			icon, err := manager.Register(ctx, "bot")

			// Then: it keeps its seat
			require.NoError(t, err)
			assert.Equal(t, entity.IconX, icon)
		}
	})

	t.Run("Publisher failure does not fail the registration", func(t *testing.T) {
		publisher := mockedUseCase.NewMockPublisher(t)
		manager := NewGameManager(zap.NewNop(), connect4.NewSession(), publisher)

		publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errRedisDown).Once()

		icon, err := manager.Register(ctx, "p1")

		require.NoError(t, err)
		assert.Equal(t, entity.IconX, icon)
	})
}

func TestGameManager_MakeMove(t *testing.T) {
	ctx := context.Background()

	newManager := func(t *testing.T) (*GameManager, *mockedUseCase.MockPublisher) {
		t.Helper()

		publisher := mockedUseCase.NewMockPublisher(t)
		manager := NewGameManager(zap.NewNop(), connect4.NewSession(connect4.WithStarterPicker(xStarts)), publisher)

		publisher.EXPECT().Publish(mock.Anything, isEvent(entity.EventRegistered)).Return(nil).Twice()

		_, err := manager.Register(ctx, "p1")
		require.NoError(t, err)
		_, err = manager.Register(ctx, "p2")
		require.NoError(t, err)

		return manager, publisher
	}

	t.Run("Accepted move publishes a move event", func(t *testing.T) {
		// Given: a started game where p1 (X) moves first
		manager, publisher := newManager(t)

		publisher.EXPECT().
			Publish(mock.Anything, mock.MatchedBy(func(event entity.Event) bool {
				return event.Type == entity.EventMove &&
					event.Icon == entity.IconX &&
					event.Column == 3 &&
					event.Row == entity.Rows-1 &&
					event.Board[(entity.Rows-1)*entity.Columns+3] == entity.IconX
			})).
			Return(nil).
			Once()

		// When: p1 drops into column 3
		status, err := manager.MakeMove(ctx, "p1", 3)

		// Then: p2 is active
		require.NoError(t, err)
		assert.Equal(t, "p2", status.ActivePlayerID)
		assert.Equal(t, 1, status.Turn)
	})

	t.Run("Rejected move leaves the state unchanged", func(t *testing.T) {
		// Given: a started game where p1 moves first
		manager, _ := newManager(t)

		// When: p2 moves out of turn
		status, err := manager.MakeMove(ctx, "p2", 0)

		// Then: ErrNotYourTurn and nothing was published
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Zero(t, status.Turn)
		board := manager.Board(ctx)
		assert.True(t, board.IsEmpty())
	})

	t.Run("Winning move publishes a finished event", func(t *testing.T) {
		// Given: p1 has three pieces on the bottom row
		manager, publisher := newManager(t)

		publisher.EXPECT().Publish(mock.Anything, isEvent(entity.EventMove)).Return(nil).Times(7)
		publisher.EXPECT().
			Publish(mock.Anything, mock.MatchedBy(func(event entity.Event) bool {
				return event.Type == entity.EventFinished && event.Icon == entity.IconX && event.Status.IsFinished()
			})).
			Return(nil).
			Once()

		for _, column := range []int{2, 3, 4} {
			_, err := manager.MakeMove(ctx, "p1", column)
			require.NoError(t, err)
			_, err = manager.MakeMove(ctx, "p2", 0)
			require.NoError(t, err)
		}

		// When: p1 completes the row
		status, err := manager.MakeMove(ctx, "p1", 5)

		// Then: X wins
		require.NoError(t, err)
		assert.Equal(t, entity.IconX, status.Winner)
		assert.True(t, status.IsFinished())
	})
}

func TestGameManager_Reset(t *testing.T) {
	ctx := context.Background()

	// Given: a manager with one registered player
	publisher := mockedUseCase.NewMockPublisher(t)
	manager := NewGameManager(zap.NewNop(), connect4.NewSession(), publisher)

	publisher.EXPECT().Publish(mock.Anything, isEvent(entity.EventRegistered)).Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, isEvent(entity.EventReset)).Return(nil).Once()

	_, err := manager.Register(ctx, "p1")
	require.NoError(t, err)

	// When: resetting
	manager.Reset(ctx)

	// Then: the session waits for players again
	status := manager.Status(ctx)
	assert.True(t, status.IsWaiting())
	assert.Zero(t, status.Turn)
}

func TestGameManager_EventsAreConsistent(t *testing.T) {
	ctx := context.Background()

	// Given: a publisher that records every event
	publisher := mockedUseCase.NewMockPublisher(t)
	manager := NewGameManager(zap.NewNop(), connect4.NewSession(connect4.WithStarterPicker(xStarts)), publisher)

	var mu sync.Mutex
	var events []entity.Event
	publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event entity.Event) {
			mu.Lock()
			events = append(events, event)
			mu.Unlock()
		}).
		Return(nil).
		Maybe()

	// When: moves and resets race each other
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			_, _ = manager.Register(ctx, "p1")
			_, _ = manager.Register(ctx, "p2")
			for column := 0; column < entity.Columns; column++ {
				_, _ = manager.MakeMove(ctx, "p1", column)
				_, _ = manager.MakeMove(ctx, "p2", column)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			manager.Reset(ctx)
		}
	}()
	wg.Wait()

	// Then: every event carries a status that matches its board
	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, events)
	for _, event := range events {
		board, err := entity.BoardFromFlat(event.Board)
		require.NoError(t, err)
		assert.Equal(t, event.Status.Turn, board.Count(), "event %s", event.Type)
	}
}
