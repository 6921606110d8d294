package websocket

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

const (
	actionStatus = "game:status"
	actionBoard  = "game:board"
	actionEvent  = "game:event"
	actionError  = "error"
	actionPing   = "ping"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string              `json:"action"`
	Payload jsoniter.RawMessage `json:"payload,omitempty"`
}

type ResponsePayload struct {
	Status *entity.Status `json:"status,omitempty"`
	Board  []entity.Icon  `json:"board,omitempty"`
	Event  *entity.Event  `json:"event,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func encodeMessage(action string, payload ResponsePayload) ([]byte, error) {
	body, err := jsoniter.Marshal(payload)
	if err != nil {
		return nil, errors.WithMessage(err, "marshal payload")
	}

	message, err := jsoniter.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return nil, errors.WithMessage(err, "marshal message")
	}

	return message, nil
}

func decodeMessage(data []byte) (*Message, error) {
	message := new(Message)
	if err := jsoniter.Unmarshal(data, message); err != nil {
		return nil, errors.WithMessage(err, "unmarshal message")
	}

	return message, nil
}
