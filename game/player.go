package game

import "github.com/minaorangina/gofish/deck"

// Book is a completed set of four cards of one rank
type Book struct {
	Rank  deck.Rank
	Cards [bookSize]deck.Card
}

// Player is a seat in a game. A Player with no TurnPolicy is manual.
type Player struct {
	name   string
	index  int
	hand   Hand
	books  []Book
	policy TurnPolicy
}

func newPlayer(name string, index int) *Player {
	return &Player{name: name, index: index, books: []Book{}}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Index() int {
	return p.index
}

// Hand returns a read-only view of the player's hand
func (p *Player) Hand() *Hand {
	return &p.hand
}

// Books returns a copy of the player's books in the order they were made
func (p *Player) Books() []Book {
	books := make([]Book, len(p.books))
	copy(books, p.books)
	return books
}

func (p *Player) NumBooks() int {
	return len(p.books)
}

// CanBeAsked reports whether the player has any cards to give
func (p *Player) CanBeAsked() bool {
	return p.hand.CanBeAsked()
}

// SetAI attaches a turn policy. A nil policy makes the player manual.
func (p *Player) SetAI(policy TurnPolicy) {
	p.policy = policy
}

// Manual reports whether the player waits for moves from outside
func (p *Player) Manual() bool {
	return p.policy == nil
}

// checkBooks moves complete books from the hand to the player's books
func (p *Player) checkBooks() []Book {
	books := p.hand.extractBooks()
	p.books = append(p.books, books...)
	return books
}
