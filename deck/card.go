package deck

import "fmt"

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks in a standard deck
const NumRanks = 13

// Plural names more than one card of the rank
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.String() + "s"
}

func (r Rank) String() string {
	if r < 0 || int(r) >= len(rankNames) {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Valid reports whether r is a rank of a standard deck
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

func (s Suit) String() string {
	if s < 0 || int(s) >= len(suitNames) {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Valid reports whether s is a suit of a standard deck
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Card represents a playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card. It panics if rank or suit are out of range.
func NewCard(rank Rank, suit Suit) Card {
	if !rank.Valid() || !suit.Valid() {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
