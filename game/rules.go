package game

import "fmt"

const (
	defaultMinPlayers = 2
	defaultMaxPlayers = 10

	twoPlayerHandSize = 7
	handSize          = 5
)

// Rules holds the house rules a game is played with
type Rules struct {
	MinPlayers int
	MaxPlayers int
	// GrantExtraTurnOnHit keeps the turn with a player whose ask was answered
	GrantExtraTurnOnHit bool
}

// DefaultRules returns the standard rules: 2-10 players, the turn always passes
func DefaultRules() Rules {
	return Rules{
		MinPlayers: defaultMinPlayers,
		MaxPlayers: defaultMaxPlayers,
	}
}

func (r Rules) validate() error {
	if r.MinPlayers < 1 {
		return fmt.Errorf("%w: minimum players must be at least 1, got %d", ErrInvalidRules, r.MinPlayers)
	}
	if r.MaxPlayers < r.MinPlayers {
		return fmt.Errorf("%w: maximum players %d is below minimum %d", ErrInvalidRules, r.MaxPlayers, r.MinPlayers)
	}
	return nil
}

func (r Rules) checkNumPlayers(n int) error {
	if n < r.MinPlayers {
		return fmt.Errorf("%w: got %d, minimum is %d", ErrTooFewPlayers, n, r.MinPlayers)
	}
	if n > r.MaxPlayers {
		return fmt.Errorf("%w: got %d, maximum is %d", ErrTooManyPlayers, n, r.MaxPlayers)
	}
	return nil
}

// cardsPerPlayer is 7 for a two-player game and 5 otherwise
func cardsPerPlayer(numPlayers int) int {
	if numPlayers == 2 {
		return twoPlayerHandSize
	}
	return handSize
}
