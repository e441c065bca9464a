package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialStream(t *testing.T, h *SystemHandler, query string, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(h.Stream))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/systems/search/stream" + query
	return websocket.DefaultDialer.Dial(url, header)
}

func readUntilDone(t *testing.T, conn *websocket.Conn) []StreamMessage {
	t.Helper()
	var frames []StreamMessage
	for {
		if err := conn.SetReadDeadline(time.Now().Add(10 * time.Second)); err != nil {
			t.Fatal(err)
		}
		var msg StreamMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return frames
			}
			t.Fatalf("read: %v", err)
		}
		frames = append(frames, msg)
	}
}

func TestStreamReportsAttemptsAndResult(t *testing.T) {
	h, _ := newHandler()
	conn, _, err := dialStream(t, h, "?class=M&seed=4", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	frames := readUntilDone(t, conn)
	if len(frames) < 2 {
		t.Fatalf("got %d frames", len(frames))
	}

	last := frames[len(frames)-1]
	if last.Type != "result" || last.Result == nil || last.Result.Star.Code != "M" {
		t.Fatalf("last frame = %+v", last)
	}
	attempts := frames[:len(frames)-1]
	if len(attempts) != last.Result.Attempts {
		t.Fatalf("%d attempt frames for %d attempts", len(attempts), last.Result.Attempts)
	}
	for i, f := range attempts {
		if f.Type != "attempt" || f.Attempt.Number != i+1 {
			t.Fatalf("frame %d = %+v", i, f)
		}
	}
	if !attempts[len(attempts)-1].Attempt.Matched {
		t.Fatal("final attempt not marked as matched")
	}
}

func TestStreamThinsAttempts(t *testing.T) {
	h, _ := newHandler()
	conn, _, err := dialStream(t, h, "?class=BH&type=ELW&seed=4&every=100", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	for _, f := range readUntilDone(t, conn) {
		if f.Type == "attempt" && !f.Attempt.Matched && f.Attempt.Number%100 != 0 {
			t.Fatalf("unexpected attempt frame %d", f.Attempt.Number)
		}
	}
}

func TestStreamSendsErrorFrame(t *testing.T) {
	h, _ := newHandler()
	conn, _, err := dialStream(t, h, "?class=NOPE", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	frames := readUntilDone(t, conn)
	if len(frames) != 1 || frames[0].Type != "error" || frames[0].Code != "validation" {
		t.Fatalf("frames = %+v", frames)
	}
}

func TestStreamRejectsBadParamsBeforeUpgrade(t *testing.T) {
	h, _ := newHandler()
	_, resp, err := dialStream(t, h, "?class=M&every=0", nil)
	if err == nil {
		t.Fatal("dial succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("response = %v", resp)
	}
}

func TestStreamChecksOrigin(t *testing.T) {
	h, _ := newHandler()
	_, resp, err := dialStream(t, h, "?class=M", http.Header{"Origin": {"http://evil.test"}})
	if err == nil {
		t.Fatal("foreign origin accepted")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("response = %v", resp)
	}

	conn, _, err := dialStream(t, h, "?class=M", http.Header{"Origin": {origin}})
	if err != nil {
		t.Fatalf("frontend origin rejected: %v", err)
	}
	conn.Close()
}
