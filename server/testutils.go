package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/gofish/config"
	"github.com/minaorangina/gofish/protocol"
	"github.com/minaorangina/gofish/store"
)

func testConfig() config.Config {
	return config.Config{
		Port:       8000,
		MaxTicks:   50000,
		MinPlayers: 2,
		MaxPlayers: 10,
	}
}

func newTestServer() *MatchServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(store.NewInMemoryMatchStore(), testConfig(), logger)
}

func mustMakeJson(t *testing.T, data interface{}) []byte {
	t.Helper()

	bytes, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err.Error())
	}
	return bytes
}

func newCreateMatchRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/matches", bytes.NewReader(data))
	request.Header.Set("Content-Type", "application/json")
	return request
}

func decodeSummary(t *testing.T, body io.Reader) protocol.MatchSummary {
	t.Helper()

	var summary protocol.MatchSummary
	if err := json.NewDecoder(body).Decode(&summary); err != nil {
		t.Fatalf("could not decode summary: %s", err)
	}
	return summary
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("did not get correct status, got %d, want %d", got, want)
	}
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("could not open a ws connection on %s %v", url, err)
	}
	resp.Body.Close()
	return ws
}

func wsURL(serverURL, path string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + path
}
