package entity

// Player is a registered participant of the session.
type Player struct {
	ID   string `json:"id"`
	Icon Icon   `json:"icon,omitempty"`
}
