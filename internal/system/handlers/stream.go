package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/params"
	"oasis-server/internal/shared/response"
	"oasis-server/internal/system"
)

const writeWait = 10 * time.Second

// StreamMessage is one frame of the search stream.
type StreamMessage struct {
	Type    string               `json:"type"`
	Attempt *system.Attempt      `json:"attempt,omitempty"`
	Result  *system.SearchResult `json:"result,omitempty"`
	Error   string               `json:"error,omitempty"`
	Code    string               `json:"code,omitempty"`
}

func (h *SystemHandler) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origin == h.allowedOrigin
		},
	}
}

// Stream handles GET /api/systems/search/stream. It upgrades to a websocket
// and sends every "every"-th attempt, each match, then a result or error
// frame. The search stops when the client disconnects.
func (h *SystemHandler) Stream(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "search_stream", "remote_addr", r.RemoteAddr)

	// Parameters are checked before the upgrade so bad input gets a plain 400.
	req, seed, err := searchRequest(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	every, err := streamEvery(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	conn, err := h.upgrader().Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reading is only used to notice the client going away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Debug("Stream client read error", "error", err)
				}
				return
			}
		}
	}()

	send := func(msg StreamMessage) error {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		return conn.WriteJSON(msg)
	}

	result, err := h.service.Search(ctx, req, seed, func(a system.Attempt) error {
		if !a.Matched && a.Number%every != 0 {
			return nil
		}
		return send(StreamMessage{Type: "attempt", Attempt: &a})
	})

	if err != nil {
		if ctx.Err() != nil {
			logger.Debug("Search stream cancelled by client")
			return
		}
		_ = send(StreamMessage{Type: "error", Error: errors.PublicMessage(err), Code: string(errors.GetType(err))})
	} else {
		_ = send(StreamMessage{Type: "result", Result: result})
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

func streamEvery(r *http.Request) (int, error) {
	every, err := params.Int(r, "every", 1)
	if err != nil {
		return 0, err
	}
	if every < 1 {
		return 0, errors.Validation("every must be positive")
	}
	return every, nil
}
