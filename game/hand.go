package game

import (
	"sort"

	"github.com/minaorangina/gofish/deck"
)

// bookSize is the number of same-rank cards that make a book
const bookSize = 4

// Hand holds a player's cards grouped by rank.
// Only the Game mutates a Hand.
type Hand struct {
	groups [deck.NumRanks][]deck.Card
	count  int
}

// Count returns the number of cards in the hand
func (h *Hand) Count() int {
	return h.count
}

// CountOf returns the number of cards of the given rank
func (h *Hand) CountOf(rank deck.Rank) int {
	if !rank.Valid() {
		return 0
	}
	return len(h.groups[rank])
}

// CanBeAsked reports whether the hand holds any cards
func (h *Hand) CanBeAsked() bool {
	return h.count > 0
}

// Cards returns a copy of the hand, ordered by rank then suit
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, 0, h.count)
	for _, group := range h.groups {
		cards = append(cards, group...)
	}
	return cards
}

func (h *Hand) addCard(c deck.Card) {
	group := append(h.groups[c.Rank], c)
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Suit < group[j].Suit
	})
	h.groups[c.Rank] = group
	h.count++
}

func (h *Hand) removeCardsWithRank(rank deck.Rank) []deck.Card {
	if !rank.Valid() {
		return []deck.Card{}
	}
	removed := h.groups[rank]
	if removed == nil {
		removed = []deck.Card{}
	}
	h.groups[rank] = nil
	h.count -= len(removed)
	return removed
}

// extractBooks removes every complete book, lowest rank first
func (h *Hand) extractBooks() []Book {
	var books []Book
	for rank := range h.groups {
		for len(h.groups[rank]) >= bookSize {
			group := h.groups[rank]
			book := Book{Rank: deck.Rank(rank)}
			copy(book.Cards[:], group[:bookSize])
			h.groups[rank] = append([]deck.Card(nil), group[bookSize:]...)
			h.count -= bookSize
			books = append(books, book)
		}
	}
	return books
}
