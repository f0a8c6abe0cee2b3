package deck

// Rand is a uniform random source. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Deck represents a deck of cards
type Deck []Card

// New creates a standard deck of cards in a fixed order
func New() Deck {
	cards := make(Deck, 0, NumRanks*NumSuits)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle permutes the deck in place (Fisher-Yates)
func (d Deck) Shuffle(r Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal deals n number of cards from the end of the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	dealt := make([]Card, n)
	copy(dealt, (*d)[startingIndex:])
	*d = (*d)[:startingIndex]
	return dealt
}
