package websocket

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

const (
	sendBufferSize   = 16
	idlePingInterval = 30 * time.Second
	writeWait        = 10 * time.Second
)

// snapshotter is the read side of the game session.
type snapshotter interface {
	Status() entity.Status
	Board() entity.Board
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Server streams game events to every connected observer and answers snapshot requests.
type Server struct {
	logger   *zap.Logger
	game     snapshotter
	upgrader websocket.Upgrader

	connectionsMutex sync.Mutex
	connections      map[*client]struct{}
	subscribers      *atomic.Int64

	handlers map[string]func(ctx context.Context, message *Message, client *client) error
}

func New(logger *zap.Logger, game snapshotter) *Server {
	server := &Server{
		logger: logger.With(zap.String("component", "websocket")),
		game:   game,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},

		connections: make(map[*client]struct{}),
		subscribers: atomic.NewInt64(0),

		handlers: make(map[string]func(context.Context, *Message, *client) error),
	}

	server.handlers[actionStatus] = server.handleStatus
	server.handlers[actionBoard] = server.handleBoard

	return server
}

// ServeHTTP upgrades the connection and keeps it registered until the peer goes away.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With(zap.String("method", "ServeHTTP"))

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", zap.Error(err))
		return
	}

	// the http server's read timeout must not cut long-lived subscribers off
	_ = conn.SetReadDeadline(time.Time{})

	peer := &client{conn: conn, send: make(chan []byte, sendBufferSize)}
	that.register(peer)

	log.Info("WebSocket connection established", zap.Int64("subscribers", that.subscribers.Load()))

	go func() {
		defer conn.Close()
		if err := writeWithHeartbeat(conn, peer.send); err != nil {
			log.Debug("writer stopped", zap.Error(err))
		}
	}()

	ctx := req.Context()
	if err = that.handleStatus(ctx, nil, peer); err != nil {
		log.Error("failed to send initial status", zap.Error(err))
	}

	that.handleMessages(ctx, peer)
}

// Publish fans the event out to every subscriber. Slow subscribers drop the event.
func (that *Server) Publish(_ context.Context, event entity.Event) error {
	data, err := encodeMessage(actionEvent, ResponsePayload{Event: &event})
	if err != nil {
		return errors.WithMessage(err, "failed to encode event")
	}

	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	for peer := range that.connections {
		select {
		case peer.send <- data:
		default:
			that.logger.Warn("subscriber is too slow, event dropped", zap.String("type", event.Type))
		}
	}

	return nil
}

func (that *Server) Subscribers() int64 {
	return that.subscribers.Load()
}

// Close disconnects every subscriber.
func (that *Server) Close() {
	that.connectionsMutex.Lock()
	peers := make([]*client, 0, len(that.connections))
	for peer := range that.connections {
		peers = append(peers, peer)
	}
	that.connectionsMutex.Unlock()

	for _, peer := range peers {
		that.unregister(peer)
		_ = peer.conn.Close()
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, peer *client) {
	log := that.logger.With(zap.String("method", "handleMessages"))
	defer that.unregister(peer)

	for {
		_, data, err := peer.conn.ReadMessage()
		if err != nil {
			log.Debug("connection closed", zap.Error(err))
			return
		}

		message, err := decodeMessage(data)
		if err != nil {
			log.Warn("failed to decode message", zap.Error(err))
			that.sendError(peer, "invalid message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", zap.String("action", message.Action))
			that.sendError(peer, "unknown action")
			continue
		}

		if err = handler(ctx, message, peer); err != nil {
			log.Error("error processing message", zap.String("action", message.Action), zap.Error(err))
		}
	}
}

func (that *Server) handleStatus(_ context.Context, _ *Message, peer *client) error {
	status := that.game.Status()

	return that.send(peer, actionStatus, ResponsePayload{Status: &status})
}

func (that *Server) handleBoard(_ context.Context, _ *Message, peer *client) error {
	board := that.game.Board()

	return that.send(peer, actionBoard, ResponsePayload{Board: board.Flatten()})
}

func (that *Server) sendError(peer *client, reason string) {
	if err := that.send(peer, actionError, ResponsePayload{Error: reason}); err != nil {
		that.logger.Error("failed to send error", zap.Error(err))
	}
}

func (that *Server) send(peer *client, action string, payload ResponsePayload) error {
	data, err := encodeMessage(action, payload)
	if err != nil {
		return err
	}

	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	if _, ok := that.connections[peer]; !ok {
		return nil
	}

	select {
	case peer.send <- data:
	default:
		return errors.Errorf("send buffer of %s is full", action)
	}

	return nil
}

func (that *Server) register(peer *client) {
	that.connectionsMutex.Lock()
	that.connections[peer] = struct{}{}
	that.connectionsMutex.Unlock()

	that.subscribers.Inc()
}

func (that *Server) unregister(peer *client) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	if _, ok := that.connections[peer]; ok {
		delete(that.connections, peer)
		close(peer.send)
		that.subscribers.Dec()
	}
}

// writeWithHeartbeat drains send into conn and pings idle peers.
func writeWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(idlePingInterval)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-send:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
				return nil
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return errors.WithMessage(err, "write message")
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, []byte(actionPing), time.Now().Add(writeWait)); err != nil {
				return errors.WithMessage(err, "write ping")
			}
		}
	}
}
