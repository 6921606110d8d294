package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

// Icon marks the pieces of one participant.
type Icon string

const (
	IconX Icon = "X"
	IconO Icon = "O"

	EmptyCell Icon = ""
)

func (that Icon) IsPlayer() bool {
	return that == IconX || that == IconO
}

// Opponent returns the other participant's icon.
func (that Icon) Opponent() Icon {
	switch that {
	case IconX:
		return IconO
	case IconO:
		return IconX
	default:
		return EmptyCell
	}
}

// Status is the read-only view of a game session.
type Status struct {
	ActivePlayerID string `json:"active_player_id"`
	ActiveIcon     Icon   `json:"active_icon"`
	Winner         Icon   `json:"winner"`
	Turn           int    `json:"turn"`
	Status         string `json:"status"`
	Draw           bool   `json:"draw"`
}

func (that Status) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that Status) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Status) IsWaiting() bool {
	return that.Status == StatusWaiting
}
