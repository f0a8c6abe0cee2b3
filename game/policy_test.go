package game

import (
	"testing"

	"github.com/minaorangina/gofish/deck"
	utils "github.com/minaorangina/gofish/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIPolicyChooseRank(t *testing.T) {
	ai := NewAIPolicy(seeded(1), false)

	cases := []struct {
		name  string
		cards []deck.Card
		want  deck.Rank
	}{
		{"empty hand asks for aces", nil, deck.Ace},
		{"largest group wins", []deck.Card{
			card(deck.Two, deck.Clubs), card(deck.Jack, deck.Clubs), card(deck.Jack, deck.Hearts),
		}, deck.Jack},
		{"ties go to the lowest rank", []deck.Card{
			card(deck.Queen, deck.Clubs), card(deck.Queen, deck.Hearts),
			card(deck.Five, deck.Clubs), card(deck.Five, deck.Spades),
		}, deck.Five},
	}

	for _, c := range cases {
		h := &Hand{}
		for _, cd := range c.cards {
			h.addCard(cd)
		}
		utils.TableFailureIfNotEqual(t, c.name, ai.ChooseRank(h), c.want)
	}
}

func TestAIPolicyChooseOpponent(t *testing.T) {
	g, err := New(names(4), Opts{Rand: seeded(2)})
	require.NoError(t, err)
	players := g.Players()

	t.Run("never asks itself", func(t *testing.T) {
		ai := NewAIPolicy(seeded(9), false)
		picked := map[int]int{}
		for i := 0; i < 300; i++ {
			idx := ai.ChooseOpponent(players[1], players)
			require.NotEqual(t, 1, idx)
			picked[idx]++
		}
		utils.AssertEqual(t, len(picked), 3)
	})

	t.Run("re-samples until it draws someone else", func(t *testing.T) {
		rng := &scriptedRand{values: []int{2, 2, 3}}
		ai := NewAIPolicy(rng, false)

		utils.AssertEqual(t, ai.ChooseOpponent(players[2], players), 3)
		utils.AssertEqual(t, rng.calls, 3)
	})

	t.Run("may pick an empty-handed player by default", func(t *testing.T) {
		for rank := deck.Ace; rank <= deck.King; rank++ {
			players[3].hand.removeCardsWithRank(rank)
		}
		require.False(t, players[3].CanBeAsked())

		ai := NewAIPolicy(&scriptedRand{values: []int{3}}, false)
		utils.AssertEqual(t, ai.ChooseOpponent(players[0], players), 3)
	})

	t.Run("only askable players when configured", func(t *testing.T) {
		ai := NewAIPolicy(seeded(4), true)
		for i := 0; i < 100; i++ {
			idx := ai.ChooseOpponent(players[0], players)
			assert.Contains(t, []int{1, 2}, idx)
		}
	})

	t.Run("falls back to anyone when nobody can be asked", func(t *testing.T) {
		for _, p := range players[1:] {
			for rank := deck.Ace; rank <= deck.King; rank++ {
				p.hand.removeCardsWithRank(rank)
			}
		}
		ai := NewAIPolicy(seeded(4), true)
		idx := ai.ChooseOpponent(players[0], players)
		assert.Contains(t, []int{1, 2, 3}, idx)
	})

	t.Run("nobody to ask in a one-player game", func(t *testing.T) {
		ai := NewAIPolicy(seeded(4), false)
		utils.AssertEqual(t, ai.ChooseOpponent(players[0], players[:1]), -1)
	})
}

func TestAIPolicyTakeTurn(t *testing.T) {
	g, err := New([]string{"Ada", "Grace"}, Opts{Deck: stackedDeck(mixedHand, clubsHand)})
	require.NoError(t, err)
	ada := g.Player(0)
	ai := NewAIPolicy(seeded(3), false)

	require.NoError(t, ai.TakeTurn(g, ada))

	t.Log("Ada holds two Twos, so she asks Grace for them")
	utils.AssertEqual(t, ada.Hand().CountOf(deck.Two), 3)
	utils.AssertEqual(t, g.ActiveIndex(), 1)

	t.Log("A policy acting for the wrong player is refused")
	utils.AssertErrorIs(t, ai.TakeTurn(g, ada), ErrNotYourTurn)
}
