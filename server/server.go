package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/gofish/config"
	"github.com/minaorangina/gofish/engine"
	"github.com/minaorangina/gofish/game"
	"github.com/minaorangina/gofish/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewMatchReq struct {
	Names               []string `json:"names"`
	Seed                int64    `json:"seed"`
	ExtraTurnOnHit      *bool    `json:"extra_turn_on_hit,omitempty"`
	ConsiderOnlyAskable *bool    `json:"consider_only_askable,omitempty"`
}

type ListMatchesRes struct {
	MatchIDs []string `json:"match_ids"`
}

// MatchServer runs automated matches and lets clients watch them
type MatchServer struct {
	store  store.MatchStore
	cfg    config.Config
	logger *slog.Logger
	http.Server
}

// NewServer creates a new MatchServer
func NewServer(s store.MatchStore, cfg config.Config, logger *slog.Logger) *MatchServer {
	if logger == nil {
		logger = slog.Default()
	}

	ms := &MatchServer{
		store:  s,
		cfg:    cfg,
		logger: logger,
	}
	ms.Addr = fmt.Sprintf(":%d", cfg.Port)

	router := http.NewServeMux()
	router.HandleFunc("POST /matches", ms.HandleNewMatch)
	router.HandleFunc("GET /matches", ms.HandleListMatches)
	router.HandleFunc("GET /matches/{id}", ms.HandleFindMatch)
	router.HandleFunc("GET /matches/{id}/events", ms.HandleEvents)

	accessLog := slog.NewLogLogger(logger.Handler(), slog.LevelInfo).Writer()
	ms.Handler = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handlers.CombinedLoggingHandler(accessLog, router))

	return ms
}

// ServeHTTP serves http
func (ms *MatchServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ms.Handler.ServeHTTP(w, r)
}

// HandleNewMatch plays a match to the end and stores it
func (ms *MatchServer) HandleNewMatch(w http.ResponseWriter, r *http.Request) {
	var data NewMatchReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		ms.writeParseError(err, w)
		return
	}

	opts := ms.cfg.MatchOpts()
	opts.Logger = ms.logger
	if data.Seed != 0 {
		opts.Seed = data.Seed
	}
	if data.ExtraTurnOnHit != nil {
		opts.Rules.GrantExtraTurnOnHit = *data.ExtraTurnOnHit
	}
	if data.ConsiderOnlyAskable != nil {
		opts.ConsiderOnlyAskable = *data.ConsiderOnlyAskable
	}

	m, err := engine.NewMatch(data.Names, opts)
	if errors.Is(err, game.ErrConfig) {
		writeText(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		ms.writeInternalError(err, w)
		return
	}

	if err := m.Run(ms.cfg.MaxTicks); err != nil && !errors.Is(err, engine.ErrTickLimit) {
		ms.writeInternalError(err, w)
		return
	}

	if err := ms.store.Add(m); err != nil {
		ms.writeInternalError(err, w)
		return
	}

	ms.writeJSON(w, http.StatusCreated, m.Summary())
}

func (ms *MatchServer) HandleListMatches(w http.ResponseWriter, r *http.Request) {
	ms.writeJSON(w, http.StatusOK, ListMatchesRes{MatchIDs: ms.store.IDs()})
}

func (ms *MatchServer) HandleFindMatch(w http.ResponseWriter, r *http.Request) {
	m, ok := ms.findMatch(w, r)
	if !ok {
		return
	}
	ms.writeJSON(w, http.StatusOK, m.Summary())
}

// HandleEvents replays a match's events over a websocket, then closes it
func (ms *MatchServer) HandleEvents(w http.ResponseWriter, r *http.Request) {
	m, ok := ms.findMatch(w, r)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		ms.logger.Warn("websocket upgrade failed", "match", m.ID(), "err", err)
		return
	}
	defer conn.Close()

	for _, e := range m.Events() {
		if err := conn.WriteJSON(e); err != nil {
			ms.logger.Warn("could not send event", "match", m.ID(), "seq", e.Seq, "err", err)
			return
		}
	}

	closing := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match replayed")
	if err := conn.WriteMessage(websocket.CloseMessage, closing); err != nil {
		ms.logger.Warn("could not close websocket", "match", m.ID(), "err", err)
	}
}

func (ms *MatchServer) findMatch(w http.ResponseWriter, r *http.Request) (*engine.Match, bool) {
	matchID := r.PathValue("id")
	m, err := ms.store.Find(matchID)
	if errors.Is(err, store.ErrUnknownMatchID) {
		writeText(w, http.StatusNotFound, unknownMatchIDMsg(matchID))
		return nil, false
	}
	if err != nil {
		ms.writeInternalError(err, w)
		return nil, false
	}
	return m, true
}

func (ms *MatchServer) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		ms.writeInternalError(err, w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func (ms *MatchServer) writeParseError(err error, w http.ResponseWriter) {
	if errors.Is(err, io.EOF) {
		writeText(w, http.StatusBadRequest, "Missing body")
		return
	}
	writeText(w, http.StatusBadRequest, fmt.Sprintf("could not parse body: %s", err))
}

func (ms *MatchServer) writeInternalError(err error, w http.ResponseWriter) {
	ms.logger.Error("request failed", "err", err)
	writeText(w, http.StatusInternalServerError, "something went wrong")
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

func unknownMatchIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown match ID '%s'", unknownID)
}
