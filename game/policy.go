package game

import "github.com/minaorangina/gofish/deck"

// TurnPolicy decides an automated player's move.
// TakeTurn is expected to call g.Ask on behalf of self.
type TurnPolicy interface {
	TakeTurn(g *Game, self *Player) error
}

// AIPolicy asks for the rank it holds most of, from a random opponent
type AIPolicy struct {
	rng deck.Rand
	// ConsiderOnlyAskable restricts opponents to players holding cards
	ConsiderOnlyAskable bool
}

// NewAIPolicy constructs an AIPolicy drawing on rng
func NewAIPolicy(rng deck.Rand, considerOnlyAskable bool) *AIPolicy {
	return &AIPolicy{rng: rng, ConsiderOnlyAskable: considerOnlyAskable}
}

func (a *AIPolicy) TakeTurn(g *Game, self *Player) error {
	rank := a.ChooseRank(self.Hand())
	opponent := a.ChooseOpponent(self, g.Players())
	return g.Ask(self, opponent, rank)
}

// ChooseRank picks the largest rank group, the lowest rank on a tie.
// An empty hand asks for Aces.
func (a *AIPolicy) ChooseRank(h *Hand) deck.Rank {
	best, bestCount := deck.Ace, 0
	for rank := deck.Ace; rank <= deck.King; rank++ {
		if n := h.CountOf(rank); n > bestCount {
			best, bestCount = rank, n
		}
	}
	return best
}

// ChooseOpponent picks another player uniformly at random.
// It returns -1 when there is nobody else to ask.
func (a *AIPolicy) ChooseOpponent(self *Player, players []*Player) int {
	if len(players) < 2 {
		return -1
	}
	if a.ConsiderOnlyAskable {
		candidates := []int{}
		for _, p := range players {
			if p.index != self.index && p.CanBeAsked() {
				candidates = append(candidates, p.index)
			}
		}
		if len(candidates) > 0 {
			return candidates[a.rng.Intn(len(candidates))]
		}
	}

	for {
		idx := a.rng.Intn(len(players))
		if idx != self.index {
			return idx
		}
	}
}
