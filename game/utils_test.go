package game

import (
	"testing"

	"github.com/minaorangina/gofish/deck"
	"github.com/minaorangina/gofish/protocol"
)

func card(r deck.Rank, s deck.Suit) deck.Card {
	return deck.NewCard(r, s)
}

// stackedDeck builds a deck that deals hands[i] to player i,
// with the rest of a standard deck left as the pool
func stackedDeck(hands ...[]deck.Card) deck.Deck {
	used := map[deck.Card]struct{}{}
	for _, h := range hands {
		for _, c := range h {
			used[c] = struct{}{}
		}
	}

	d := deck.Deck{}
	for _, c := range deck.New() {
		if _, ok := used[c]; !ok {
			d = append(d, c)
		}
	}

	return append(d, handsOnly(hands...)...)
}

// handsOnly builds a deck holding nothing but the given hands
func handsOnly(hands ...[]deck.Card) deck.Deck {
	d := deck.Deck{}
	for i := len(hands) - 1; i >= 0; i-- {
		d = append(d, hands[i]...)
	}
	return d
}

var (
	clubsHand = []deck.Card{
		card(deck.Ace, deck.Clubs), card(deck.Two, deck.Clubs), card(deck.Three, deck.Clubs),
		card(deck.Four, deck.Clubs), card(deck.Five, deck.Clubs), card(deck.Six, deck.Clubs),
		card(deck.Seven, deck.Clubs),
	}
	mixedHand = []deck.Card{
		card(deck.Ace, deck.Diamonds), card(deck.Two, deck.Diamonds), card(deck.Two, deck.Hearts),
		card(deck.Eight, deck.Clubs), card(deck.Nine, deck.Clubs), card(deck.Ten, deck.Clubs),
		card(deck.Jack, deck.Clubs),
	}
)

// totalCards counts every card in hands, books and the pool
func totalCards(g *Game) int {
	total := g.PoolSize()
	for _, p := range g.players {
		total += p.hand.Count() + bookSize*len(p.books)
	}
	return total
}

func assertConservation(t *testing.T, g *Game, deckSize int) {
	t.Helper()

	if got := totalCards(g); got != deckSize {
		t.Fatalf("card count drifted: got %d, want %d", got, deckSize)
	}
	for _, p := range g.players {
		sum := 0
		for rank := deck.Ace; rank <= deck.King; rank++ {
			n := p.hand.CountOf(rank)
			if n >= bookSize {
				t.Fatalf("%s holds %d of %s after a book check", p.name, n, rank)
			}
			sum += n
		}
		if sum != p.hand.Count() {
			t.Fatalf("%s hand count %d does not match groups %d", p.name, p.hand.Count(), sum)
		}
	}
}

// scriptedRand returns values in order, wrapping each into range
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

type eventLog struct {
	events []protocol.Event
}

func (l *eventLog) record(e protocol.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) kinds() []protocol.Kind {
	ks := []protocol.Kind{}
	for _, e := range l.events {
		ks = append(ks, e.Kind)
	}
	return ks
}
