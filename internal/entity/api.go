package entity

type RegisterRequest struct {
	PlayerID string `json:"player_id"`
}

type RegisterResponse struct {
	PlayerIcon Icon   `json:"player_icon,omitempty"`
	Error      string `json:"error,omitempty"`
	Code       string `json:"code,omitempty"`
}

type MoveRequest struct {
	Column   int    `json:"column"`
	PlayerID string `json:"player_id"`
}

type MoveResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// BoardResponse carries the board flattened row-major.
type BoardResponse struct {
	Board []Icon `json:"board"`
}
