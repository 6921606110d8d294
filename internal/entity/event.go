package entity

import "time"

const (
	EventRegistered = "registered"
	EventMove       = "move"
	EventFinished   = "finished"
	EventReset      = "reset"
)

// Event is broadcast to observers after every state change of the session.
type Event struct {
	Type     string    `json:"type"`
	PlayerID string    `json:"player_id,omitempty"`
	Icon     Icon      `json:"icon,omitempty"`
	Column   int       `json:"column"`
	Row      int       `json:"row"`
	Status   Status    `json:"status"`
	Board    []Icon    `json:"board"`
	Time     time.Time `json:"time"`
}
