package game

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/minaorangina/gofish/deck"
	"github.com/minaorangina/gofish/protocol"
)

// Game is a single match of Go Fish. It is not safe for concurrent use.
type Game struct {
	players []*Player
	pool    deck.Deck
	active  int
	waiting bool
	rules   Rules
	onEvent func(protocol.Event)
	seq     int
}

// Opts configures a new Game. Zero values fall back to defaults.
type Opts struct {
	Rules Rules
	// Deck is dealt as-is, without shuffling. When nil a shuffled standard deck is used.
	Deck deck.Deck
	// Rand shuffles the deck. Defaults to a time-seeded source.
	Rand deck.Rand
	// OnEvent receives every event the game emits
	OnEvent func(protocol.Event)
}

// New deals a new game for the named players
func New(names []string, opts Opts) (*Game, error) {
	rules := opts.Rules
	if rules.MinPlayers == 0 {
		rules.MinPlayers = defaultMinPlayers
	}
	if rules.MaxPlayers == 0 {
		rules.MaxPlayers = defaultMaxPlayers
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}
	if err := rules.checkNumPlayers(len(names)); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var pool deck.Deck
	if opts.Deck != nil {
		seen := make(map[deck.Card]struct{}, len(opts.Deck))
		for _, c := range opts.Deck {
			if !c.Rank.Valid() || !c.Suit.Valid() {
				return nil, fmt.Errorf("%w: %+v", ErrInvalidCard, c)
			}
			if _, ok := seen[c]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
			}
			seen[c] = struct{}{}
		}
		pool = append(deck.Deck{}, opts.Deck...)
	} else {
		pool = deck.New()
		pool.Shuffle(rng)
	}

	perPlayer := cardsPerPlayer(len(names))
	if len(pool) < perPlayer*len(names) {
		return nil, fmt.Errorf("%w: %d cards for %d players", ErrDeckTooSmall, len(pool), len(names))
	}

	g := &Game{
		players: make([]*Player, 0, len(names)),
		rules:   rules,
		onEvent: opts.OnEvent,
	}

	// initial card deal
	for i, name := range names {
		p := newPlayer(name, i)
		for _, c := range pool.Deal(perPlayer) {
			p.hand.addCard(c)
		}
		g.players = append(g.players, p)
	}
	for _, p := range g.players {
		g.checkBooks(p)
	}

	g.pool = pool

	return g, nil
}

// Players returns the players in turn order
func (g *Game) Players() []*Player {
	ps := make([]*Player, len(g.players))
	copy(ps, g.players)
	return ps
}

// Player returns the player at index i, or nil
func (g *Game) Player(i int) *Player {
	if i < 0 || i >= len(g.players) {
		return nil
	}
	return g.players[i]
}

// Active returns the player whose turn it is
func (g *Game) Active() *Player {
	return g.players[g.active]
}

func (g *Game) ActiveIndex() int {
	return g.active
}

// Waiting reports whether the game is suspended until a manual player asks
func (g *Game) Waiting() bool {
	return g.waiting
}

func (g *Game) PoolSize() int {
	return len(g.pool)
}

func (g *Game) PoolIsEmpty() bool {
	return len(g.pool) == 0
}

// GameEnded reports whether every hand is empty
func (g *Game) GameEnded() bool {
	for _, p := range g.players {
		if p.hand.Count() > 0 {
			return false
		}
	}
	return true
}

// Tick plays the active player's turn if it is automated.
// For a manual player it marks the game as waiting and returns.
func (g *Game) Tick() error {
	if g.GameEnded() {
		return nil
	}

	p := g.Active()
	if p.policy == nil {
		if !g.waiting {
			g.waiting = true
			g.emit(protocol.Event{Kind: protocol.AwaitingMove, Player: p.index, Opponent: -1})
		}
		return nil
	}

	return p.policy.TakeTurn(g, p)
}

// Ask has the active player ask the player at askedIdx for every card of rank.
// A miss draws one card from the pool, if there is one.
func (g *Game) Ask(asker *Player, askedIdx int, rank deck.Rank) error {
	if asker == nil || asker != g.Active() {
		return fmt.Errorf("%w: %s", ErrNotYourTurn, describe(asker))
	}
	if askedIdx < 0 || askedIdx >= len(g.players) || askedIdx == asker.index {
		return fmt.Errorf("%w: %s cannot ask player %d", ErrInvalidOpponent, asker.name, askedIdx)
	}
	if !rank.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	if g.GameEnded() {
		return ErrGameOver
	}

	asked := g.players[askedIdx]
	taken := asked.hand.removeCardsWithRank(rank)

	if len(taken) == 0 {
		g.takeFromPool(asker, askedIdx, rank)
	} else {
		for _, c := range taken {
			asker.hand.addCard(c)
		}
		g.emit(protocol.Event{Kind: protocol.CardsTaken, Player: asker.index, Opponent: askedIdx, Rank: rank, Count: len(taken)})
	}

	g.checkBooks(asker)

	if !(g.rules.GrantExtraTurnOnHit && len(taken) > 0) {
		g.turn()
	}
	g.waiting = false

	if g.GameEnded() {
		g.emit(protocol.Event{Kind: protocol.GameOver, Player: asker.index, Opponent: -1})
	}

	return nil
}

// Standings ranks players by books, most first, ties by seat
func (g *Game) Standings() []protocol.Standing {
	ps := g.Players()
	sort.SliceStable(ps, func(i, j int) bool {
		return len(ps[i].books) > len(ps[j].books)
	})

	standings := make([]protocol.Standing, 0, len(ps))
	for i, p := range ps {
		standings = append(standings, protocol.Standing{
			Place: i + 1,
			Index: p.index,
			Name:  p.name,
			Books: len(p.books),
		})
	}
	return standings
}

func (g *Game) takeFromPool(asker *Player, askedIdx int, rank deck.Rank) {
	drawn := g.pool.Deal(1)
	if len(drawn) == 0 {
		g.emit(protocol.Event{Kind: protocol.PoolEmpty, Player: asker.index, Opponent: askedIdx, Rank: rank})
		return
	}
	asker.hand.addCard(drawn[0])
	g.emit(protocol.Event{Kind: protocol.WentFishing, Player: asker.index, Opponent: askedIdx, Rank: rank, Count: 1})
}

func (g *Game) checkBooks(p *Player) {
	for _, b := range p.checkBooks() {
		g.emit(protocol.Event{Kind: protocol.BookFormed, Player: p.index, Opponent: -1, Rank: b.Rank, Count: bookSize})
	}
}

// turn hands the turn to the next player in seat order
func (g *Game) turn() {
	g.active = (g.active + 1) % len(g.players)
	g.emit(protocol.Event{Kind: protocol.TurnPassed, Player: g.active, Opponent: -1})
}

func (g *Game) emit(e protocol.Event) {
	g.seq++
	e.Seq = g.seq
	if g.onEvent != nil {
		g.onEvent(e)
	}
}

func describe(p *Player) string {
	if p == nil {
		return "no player"
	}
	return fmt.Sprintf("%s (seat %d)", p.name, p.index)
}
