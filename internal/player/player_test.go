package player

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
	"github.com/rocketscienceinc/connect4-backend/internal/entity"
	"github.com/rocketscienceinc/connect4-backend/internal/search"
	"github.com/rocketscienceinc/connect4-backend/internal/service"
	mockedPlayer "github.com/rocketscienceinc/connect4-backend/mocks/player"
)

var errConnectionRefused = errors.New("connection refused")

func newBotService(t *testing.T, horizon int) service.BotService {
	t.Helper()

	searcher, err := search.New(zap.NewNop(), search.WithHorizon(horizon))
	require.NoError(t, err)

	return service.NewBotService(zap.NewNop(), searcher, 5*time.Second)
}

func TestSeat(t *testing.T) {
	ctx := context.Background()

	t.Run("Generates an id when none is given", func(t *testing.T) {
		backend := mockedPlayer.NewMockBackend(t)

		first := NewHuman(backend, NewConsole(strings.NewReader(""), &bytes.Buffer{}))
		second := NewHuman(backend, NewConsole(strings.NewReader(""), &bytes.Buffer{}))

		assert.NotEmpty(t, first.ID())
		assert.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("Register stores the icon", func(t *testing.T) {
		// Given: a backend that hands out O
		backend := mockedPlayer.NewMockBackend(t)
		backend.EXPECT().Register(mock.Anything, "me").Return(entity.IconO, nil).Once()
		human := NewHuman(backend, nil, WithID("me"))

		// When: registering
		icon, err := human.Register(ctx)

		// Then: the seat remembers it
		require.NoError(t, err)
		assert.Equal(t, entity.IconO, icon)
		assert.Equal(t, entity.IconO, human.Icon())
	})

	t.Run("IsMyTurn compares the active player", func(t *testing.T) {
		backend := mockedPlayer.NewMockBackend(t)
		backend.EXPECT().Status(mock.Anything).
			Return(entity.Status{Status: entity.StatusOngoing, ActivePlayerID: "me"}, nil).Once()
		backend.EXPECT().Status(mock.Anything).
			Return(entity.Status{Status: entity.StatusOngoing, ActivePlayerID: "you"}, nil).Once()
		human := NewHuman(backend, nil, WithID("me"))

		mine, err := human.IsMyTurn(ctx)
		require.NoError(t, err)
		assert.True(t, mine)

		mine, err = human.IsMyTurn(ctx)
		require.NoError(t, err)
		assert.False(t, mine)
	})

	t.Run("Visualize renders the board", func(t *testing.T) {
		var board entity.Board
		_, err := board.Drop(1, entity.IconX)
		require.NoError(t, err)

		backend := mockedPlayer.NewMockBackend(t)
		backend.EXPECT().Board(mock.Anything).Return(board, nil).Once()

		var out bytes.Buffer
		human := NewHuman(backend, nil, WithOutput(&out))

		require.NoError(t, human.Visualize(ctx))
		assert.Contains(t, out.String(), "│   │ X │")
	})
}

func TestHuman_MakeMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Re-prompts after a rejected move", func(t *testing.T) {
		// Given: the backend rejects column 2 and accepts column 3
		backend := mockedPlayer.NewMockBackend(t)
		backend.EXPECT().MakeMove(mock.Anything, "me", 2).Return(apperror.ErrColumnFull).Once()
		backend.EXPECT().MakeMove(mock.Anything, "me", 3).Return(nil).Once()

		var out bytes.Buffer
		human := NewHuman(backend, NewConsole(strings.NewReader("2\n3\n"), &out), WithID("me"))

		// When: the human moves
		err := human.MakeMove(ctx)

		// Then: the move lands on the second attempt
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Move rejected: column is full")
	})

	t.Run("Transport errors abort the move", func(t *testing.T) {
		backend := mockedPlayer.NewMockBackend(t)
		backend.EXPECT().MakeMove(mock.Anything, "me", 0).Return(errConnectionRefused).Once()

		human := NewHuman(backend, NewConsole(strings.NewReader("0\n1\n"), &bytes.Buffer{}), WithID("me"))

		err := human.MakeMove(ctx)

		require.ErrorIs(t, err, errConnectionRefused)
	})

	t.Run("Celebrate prints the outcome", func(t *testing.T) {
		backend := mockedPlayer.NewMockBackend(t)
		backend.EXPECT().Register(mock.Anything, "me").Return(entity.IconX, nil).Once()
		backend.EXPECT().Status(mock.Anything).
			Return(entity.Status{Status: entity.StatusFinished, Winner: entity.IconX}, nil).Once()

		var out bytes.Buffer
		human := NewHuman(backend, NewConsole(strings.NewReader(""), &out), WithID("me"))
		_, err := human.Register(ctx)
		require.NoError(t, err)

		require.NoError(t, human.Celebrate(ctx))
		assert.Contains(t, out.String(), "I Player [X] won!")
	})
}

func TestBot_MakeMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays the winning column", func(t *testing.T) {
		// Given: O can win at column 3
		var board entity.Board
		for _, column := range []int{0, 1, 2} {
			_, err := board.Drop(column, entity.IconO)
			require.NoError(t, err)
		}

		backend := mockedPlayer.NewMockBackend(t)
		backend.EXPECT().Register(mock.Anything, "bot").Return(entity.IconO, nil).Once()
		backend.EXPECT().Board(mock.Anything).Return(board, nil).Once()
		backend.EXPECT().MakeMove(mock.Anything, "bot", 3).Return(nil).Once()

		bot := NewBot(zap.NewNop(), backend, newBotService(t, 2), WithID("bot"))
		_, err := bot.Register(ctx)
		require.NoError(t, err)

		// When: the bot moves
		err = bot.MakeMove(ctx)

		// Then: it completes the row
		require.NoError(t, err)
	})

	t.Run("Board errors are returned", func(t *testing.T) {
		backend := mockedPlayer.NewMockBackend(t)
		backend.EXPECT().Board(mock.Anything).Return(entity.Board{}, errConnectionRefused).Once()

		bot := NewBot(zap.NewNop(), backend, newBotService(t, 1), WithID("bot"))

		err := bot.MakeMove(ctx)

		require.ErrorIs(t, err, errConnectionRefused)
	})
}
