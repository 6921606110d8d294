package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/rocketscienceinc/connect4-backend/internal/apperror"
	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

const (
	clientTimeout = 5 * time.Second

	registerEndpoint = "/connect4/register"
	statusEndpoint   = "/connect4/status"
	boardEndpoint    = "/connect4/board"
	makeMoveEndpoint = "/connect4/make_move"
	resetEndpoint    = "/connect4/reset"
)

// Client talks to a remote game server over its JSON API.
type Client struct {
	baseURL string
	cli     *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cli:     &http.Client{Timeout: clientTimeout},
	}
}

func (that *Client) Register(ctx context.Context, playerID string) (entity.Icon, error) {
	response := new(entity.RegisterResponse)

	status, err := that.do(ctx, http.MethodPost, registerEndpoint, entity.RegisterRequest{PlayerID: playerID}, response)
	if err != nil {
		return entity.EmptyCell, err
	}

	if status != http.StatusOK {
		return entity.EmptyCell, apperror.FromCode(response.Code, response.Error)
	}

	return response.PlayerIcon, nil
}

func (that *Client) Status(ctx context.Context) (entity.Status, error) {
	response := entity.Status{}

	status, err := that.do(ctx, http.MethodGet, statusEndpoint, nil, &response)
	if err != nil {
		return entity.Status{}, err
	}

	if status != http.StatusOK {
		return entity.Status{}, errors.Errorf("unexpected response status '%d'", status)
	}

	return response, nil
}

func (that *Client) Board(ctx context.Context) (entity.Board, error) {
	response := new(entity.BoardResponse)

	status, err := that.do(ctx, http.MethodGet, boardEndpoint, nil, response)
	if err != nil {
		return entity.Board{}, err
	}

	if status != http.StatusOK {
		return entity.Board{}, errors.Errorf("unexpected response status '%d'", status)
	}

	board, err := entity.BoardFromFlat(response.Board)
	if err != nil {
		return entity.Board{}, errors.WithMessage(err, "decode board")
	}

	return board, nil
}

// MakeMove returns nil when the server accepted the move.
func (that *Client) MakeMove(ctx context.Context, playerID string, column int) error {
	response := new(entity.MoveResponse)

	status, err := that.do(ctx, http.MethodPost, makeMoveEndpoint, entity.MoveRequest{Column: column, PlayerID: playerID}, response)
	if err != nil {
		return err
	}

	if status != http.StatusOK || !response.Success {
		return apperror.FromCode(response.Code, response.Error)
	}

	return nil
}

func (that *Client) Reset(ctx context.Context) error {
	response := new(entity.MoveResponse)

	status, err := that.do(ctx, http.MethodPost, resetEndpoint, nil, response)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return errors.Errorf("unexpected response status '%d'", status)
	}

	return nil
}

// do sends body as JSON and decodes the response into out whatever the status code.
func (that *Client) do(ctx context.Context, method, endpoint string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := jsoniter.Marshal(body)
		if err != nil {
			return 0, errors.WithMessage(err, "marshal json body")
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, that.baseURL+endpoint, reader)
	if err != nil {
		return 0, errors.WithMessagef(err, "new %s request", strings.ToLower(method))
	}

	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	resp, err := that.cli.Do(request)
	if err != nil {
		return 0, errors.WithMessagef(err, "call http endpoint '%s'", endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err = jsoniter.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, errors.WithMessagef(err, "decode json response body of '%s' (status %d)", endpoint, resp.StatusCode)
	}

	return resp.StatusCode, nil
}
