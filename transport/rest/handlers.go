package rest

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	Register(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Board(w http.ResponseWriter, r *http.Request)
	MakeMove(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type uGame interface {
	Register(ctx context.Context, playerID string) (entity.Icon, error)
	Status(ctx context.Context) entity.Status
	Board(ctx context.Context) entity.Board
	MakeMove(ctx context.Context, playerID string, column int) (entity.Status, error)
	Reset(ctx context.Context)
}

type handlers struct {
	logger *zap.Logger
	uGame  uGame
}

func NewHandlers(logger *zap.Logger, uGame uGame) Handlers {
	return &handlers{
		logger: logger.With(zap.String("component", "rest")),
		uGame:  uGame,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) Register(w http.ResponseWriter, r *http.Request) {
	var request entity.RegisterRequest
	if err := jsoniter.NewDecoder(r.Body).Decode(&request); err != nil {
		that.writeJSON(w, http.StatusBadRequest, entity.RegisterResponse{Error: "invalid payload"})
		return
	}

	icon, err := that.uGame.Register(r.Context(), request.PlayerID)
	if err != nil {
		that.writeJSON(w, statusCode(err), entity.RegisterResponse{Error: err.Error(), Code: apperror.Code(err)})
		return
	}

	that.writeJSON(w, http.StatusOK, entity.RegisterResponse{PlayerIcon: icon})
}

func (that *handlers) Status(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.uGame.Status(r.Context()))
}

func (that *handlers) Board(w http.ResponseWriter, r *http.Request) {
	board := that.uGame.Board(r.Context())

	that.writeJSON(w, http.StatusOK, entity.BoardResponse{Board: board.Flatten()})
}

func (that *handlers) MakeMove(w http.ResponseWriter, r *http.Request) {
	var request entity.MoveRequest
	if err := jsoniter.NewDecoder(r.Body).Decode(&request); err != nil {
		that.writeJSON(w, http.StatusBadRequest, entity.MoveResponse{Error: "invalid payload"})
		return
	}

	if _, err := that.uGame.MakeMove(r.Context(), request.PlayerID, request.Column); err != nil {
		that.writeJSON(w, statusCode(err), entity.MoveResponse{Error: err.Error(), Code: apperror.Code(err)})
		return
	}

	that.writeJSON(w, http.StatusOK, entity.MoveResponse{Success: true})
}

func (that *handlers) Reset(w http.ResponseWriter, r *http.Request) {
	that.uGame.Reset(r.Context())

	that.writeJSON(w, http.StatusOK, entity.MoveResponse{Success: true})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := jsoniter.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", zap.Error(err))
	}
}

// statusCode maps rule violations to 400 and everything else to 500.
func statusCode(err error) int {
	if apperror.IsRejection(err) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
