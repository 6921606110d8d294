package apperror

import "github.com/pkg/errors"

var (
	ErrColumnFull       = errors.New("column is full")
	ErrInvalidColumn    = errors.New("column index is out of range")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrGameFull         = errors.New("game is full")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrInvalidPlayer    = errors.New("player id is required")
	ErrNoLegalMove      = errors.New("no legal move left")
)

// codes are the stable identifiers of rule violations on the wire.
var codes = map[string]error{
	"column_full":      ErrColumnFull,
	"invalid_column":   ErrInvalidColumn,
	"not_your_turn":    ErrNotYourTurn,
	"game_full":        ErrGameFull,
	"game_finished":    ErrGameFinished,
	"game_not_started": ErrGameIsNotStarted,
	"invalid_player":   ErrInvalidPlayer,
	"no_legal_move":    ErrNoLegalMove,
}

// IsRejection reports whether err is an expected rule violation rather than a failure.
func IsRejection(err error) bool {
	return Code(err) != ""
}

// Code returns the wire code of the rule violation wrapped in err, or "".
func Code(err error) string {
	if err == nil {
		return ""
	}

	for code, target := range codes {
		if errors.Is(err, target) {
			return code
		}
	}

	return ""
}

// FromCode rebuilds an error received over the wire so errors.Is keeps working.
func FromCode(code, message string) error {
	if target, ok := codes[code]; ok {
		return errors.WithMessage(target, message)
	}

	return errors.New(message)
}
