package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/minaorangina/gofish/deck"
	"github.com/minaorangina/gofish/game"
	"github.com/minaorangina/gofish/protocol"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrTickLimit    = errors.New("match did not finish within the tick limit")
	ErrAwaitingMove = errors.New("match is waiting for a manual player")
	ErrUnknownSeat  = errors.New("no player in that seat")
)

// MatchOpts configures a Match
type MatchOpts struct {
	// Seed drives the shuffle and every AI decision. Zero picks a time-based seed.
	Seed                int64
	Rules               game.Rules
	ConsiderOnlyAskable bool
	// Manual lists the seats that get no AI
	Manual []int
	Logger *slog.Logger
	// OnEvent is called for every event, in order, after it is recorded.
	// It runs without the match lock held, so it may call back into the Match.
	OnEvent func(protocol.Event)
}

// Match is one identified game, with its event history.
// A Match is safe for concurrent use.
type Match struct {
	id      string
	seed    int64
	names   []string
	logger  *slog.Logger
	onEvent func(protocol.Event)

	mu         sync.Mutex
	game       *game.Game
	events     []protocol.Event
	pending    []protocol.Event
	delivering bool
	ticks      int
}

// NewID returns a fresh match id
func NewID() string {
	return uuid.NewV4().String()
}

// NewMatch deals a new match for the named players
func NewMatch(names []string, opts MatchOpts) (*Match, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Match{
		id:      NewID(),
		seed:    seed,
		names:   append([]string{}, names...),
		onEvent: opts.OnEvent,
		events:  []protocol.Event{},
	}
	m.logger = logger.With("match", m.id)

	rng := rand.New(rand.NewSource(seed))
	g, err := game.New(names, game.Opts{
		Rules:   opts.Rules,
		Rand:    rng,
		OnEvent: m.record,
	})
	if err != nil {
		return nil, fmt.Errorf("could not deal match: %w", err)
	}
	m.game = g

	manual := map[int]struct{}{}
	for _, seat := range opts.Manual {
		if g.Player(seat) == nil {
			return nil, fmt.Errorf("%w: manual seat %d", ErrUnknownSeat, seat)
		}
		manual[seat] = struct{}{}
	}
	for _, p := range g.Players() {
		if _, ok := manual[p.Index()]; ok {
			continue
		}
		p.SetAI(game.NewAIPolicy(rng, opts.ConsiderOnlyAskable))
	}

	m.logger.Info("match dealt",
		"players", len(names),
		"seed", seed,
		"pool", g.PoolSize(),
	)
	m.deliver()

	return m, nil
}

func (m *Match) ID() string {
	return m.id
}

func (m *Match) Seed() int64 {
	return m.seed
}

// Run ticks the game until it ends. It stops early with ErrAwaitingMove when a
// manual player is active, and with ErrTickLimit after maxTicks ticks.
func (m *Match) Run(maxTicks int) error {
	for ticks := 0; ; ticks++ {
		done, err := m.step(ticks, maxTicks)
		m.deliver()
		if done || err != nil {
			return err
		}
	}
}

// step plays a single tick under the lock
func (m *Match) step(ticks, maxTicks int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.game.GameEnded() {
		m.logger.Info("match finished", "ticks", m.ticks, "winner", m.game.Standings()[0].Name)
		return true, nil
	}
	if ticks >= maxTicks {
		m.logger.Warn("tick limit reached", "ticks", m.ticks)
		return false, fmt.Errorf("%w: %d", ErrTickLimit, maxTicks)
	}
	if err := m.game.Tick(); err != nil {
		return false, err
	}
	m.ticks++
	if m.game.Waiting() {
		return false, ErrAwaitingMove
	}
	return false, nil
}

// Ask plays a move for the player in seat, typically a manual one
func (m *Match) Ask(seat, opponent int, rank deck.Rank) error {
	defer m.deliver()

	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.game.Player(seat)
	if p == nil {
		return fmt.Errorf("%w: %d", ErrUnknownSeat, seat)
	}
	return m.game.Ask(p, opponent, rank)
}

// Finished reports whether every card has been booked
func (m *Match) Finished() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.game.GameEnded()
}

// Waiting reports whether the match is held up by a manual player
func (m *Match) Waiting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.game.Waiting()
}

// Events returns a copy of everything that has happened so far
func (m *Match) Events() []protocol.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := make([]protocol.Event, len(m.events))
	copy(events, m.events)
	return events
}

// Summary returns the public record of the match
func (m *Match) Summary() protocol.MatchSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	return protocol.MatchSummary{
		MatchID:   m.id,
		Seed:      m.seed,
		Players:   append([]string{}, m.names...),
		Ticks:     m.ticks,
		Finished:  m.game.GameEnded(),
		Standings: m.game.Standings(),
	}
}

// record runs inside game calls, so mu is already held (or the match is
// still being built). Listeners are called later, by deliver.
func (m *Match) record(e protocol.Event) {
	m.events = append(m.events, e)
	if m.onEvent != nil {
		m.pending = append(m.pending, e)
	}
	m.logger.Debug("game event",
		"seq", e.Seq,
		"kind", e.Kind.String(),
		"player", e.Player,
		"opponent", e.Opponent,
		"rank", e.Rank.String(),
		"count", e.Count,
	)
}

// deliver hands pending events to OnEvent with mu released. Only one caller
// delivers at a time, so listeners see events in order even when they call
// Ask themselves; nested calls leave their events to the outer loop.
func (m *Match) deliver() {
	m.mu.Lock()
	if m.delivering {
		m.mu.Unlock()
		return
	}
	m.delivering = true

	for len(m.pending) > 0 {
		batch := m.pending
		m.pending = nil
		m.mu.Unlock()

		for _, e := range batch {
			m.onEvent(e)
		}

		m.mu.Lock()
	}
	m.delivering = false
	m.mu.Unlock()
}
