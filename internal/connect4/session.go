package connect4

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

// StarterPicker chooses the icon that moves first once both seats are taken.
type StarterPicker func() entity.Icon

// RandomStarter picks either icon with equal probability.
func RandomStarter() entity.Icon {
	if rand.Intn(2) == 0 {
		return entity.IconX
	}

	return entity.IconO
}

type SessionOption func(*Session)

func WithStarterPicker(picker StarterPicker) SessionOption {
	return func(that *Session) {
		that.pickStarter = picker
	}
}

// Session is the authoritative state of one game. It is safe for concurrent use:
// moves are serialized and readers always observe a complete move.
type Session struct {
	mu sync.RWMutex

	board  entity.Board
	seats  map[entity.Icon]string
	active entity.Icon
	winner entity.Icon
	turn   int
	draw   bool

	pickStarter StarterPicker
}

func NewSession(opts ...SessionOption) *Session {
	session := &Session{
		seats:       make(map[entity.Icon]string, 2),
		pickStarter: RandomStarter,
	}

	for _, opt := range opts {
		opt(session)
	}

	return session
}

// Register seats playerID. The first player gets X, the second O. The returned flag is
// false when playerID already held a seat and nothing changed.
func (that *Session) Register(playerID string) (entity.Icon, bool, error) {
	if playerID == "" {
		return entity.EmptyCell, false, apperror.ErrInvalidPlayer
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if icon, ok := that.iconOf(playerID); ok {
		return icon, false, nil
	}

	switch len(that.seats) {
	case 0:
		that.seats[entity.IconX] = playerID
		return entity.IconX, true, nil
	case 1:
		that.seats[entity.IconO] = playerID
		that.active = that.pickStarter()
		if !that.active.IsPlayer() {
			that.active = entity.IconX
		}
		return entity.IconO, true, nil
	default:
		return entity.EmptyCell, false, errors.WithMessagef(apperror.ErrGameFull, "player %s", playerID)
	}
}

func (that *Session) Status() entity.Status {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.status()
}

// Snapshot returns the status and a board copy taken under the same lock.
func (that *Session) Snapshot() (entity.Status, entity.Board) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.status(), that.board.Clone()
}

// Board returns a copy of the live board.
func (that *Session) Board() entity.Board {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.board.Clone()
}

// Players returns the seated players, X first.
func (that *Session) Players() []entity.Player {
	that.mu.RLock()
	defer that.mu.RUnlock()

	players := make([]entity.Player, 0, len(that.seats))
	for _, icon := range []entity.Icon{entity.IconX, entity.IconO} {
		if id, ok := that.seats[icon]; ok {
			players = append(players, entity.Player{ID: id, Icon: icon})
		}
	}

	return players
}

// SubmitMove drops the active player's piece into column. A nil error means the move
// was accepted; any rejection leaves the session unchanged.
func (that *Session) SubmitMove(column int, playerID string) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.isFinished() {
		return -1, apperror.ErrGameFinished
	}

	if !that.isStarted() {
		return -1, apperror.ErrGameIsNotStarted
	}

	if that.seats[that.active] != playerID {
		return -1, errors.WithMessagef(apperror.ErrNotYourTurn, "player %s", playerID)
	}

	row, err := that.board.Drop(column, that.active)
	if err != nil {
		return -1, err
	}

	that.turn++

	if winner := DetectAnyWin(&that.board); winner != entity.EmptyCell {
		that.winner = winner
		return row, nil
	}

	if that.board.IsFull() {
		that.draw = true
		return row, nil
	}

	that.active = that.active.Opponent()

	return row, nil
}

// Reset discards the board and both registrations.
func (that *Session) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.board = entity.Board{}
	that.seats = make(map[entity.Icon]string, 2)
	that.active = entity.EmptyCell
	that.winner = entity.EmptyCell
	that.turn = 0
	that.draw = false
}

func (that *Session) status() entity.Status {
	status := entity.Status{
		Winner: that.winner,
		Turn:   that.turn,
		Draw:   that.draw,
	}

	switch {
	case that.isFinished():
		status.Status = entity.StatusFinished
	case that.isStarted():
		status.Status = entity.StatusOngoing
		status.ActiveIcon = that.active
		status.ActivePlayerID = that.seats[that.active]
	default:
		status.Status = entity.StatusWaiting
	}

	return status
}

func (that *Session) iconOf(playerID string) (entity.Icon, bool) {
	for icon, id := range that.seats {
		if id == playerID {
			return icon, true
		}
	}

	return entity.EmptyCell, false
}

func (that *Session) isStarted() bool {
	return len(that.seats) == 2
}

func (that *Session) isFinished() bool {
	return that.winner != entity.EmptyCell || that.draw
}
