package game

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is wrapped by every error that prevents a game from being built
	ErrConfig = errors.New("invalid game configuration")
	// ErrProtocol is wrapped by every error caused by a call the game cannot accept
	ErrProtocol = errors.New("protocol violation")

	ErrTooFewPlayers  = fmt.Errorf("%w: too few players", ErrConfig)
	ErrTooManyPlayers = fmt.Errorf("%w: too many players", ErrConfig)
	ErrInvalidRules   = fmt.Errorf("%w: invalid rules", ErrConfig)
	ErrDeckTooSmall   = fmt.Errorf("%w: not enough cards to deal", ErrConfig)
	ErrInvalidCard    = fmt.Errorf("%w: card out of range", ErrConfig)
	ErrDuplicateCard  = fmt.Errorf("%w: card appears twice in the deck", ErrConfig)

	ErrNotYourTurn     = fmt.Errorf("%w: player is not the active player", ErrProtocol)
	ErrInvalidOpponent = fmt.Errorf("%w: invalid opponent", ErrProtocol)
	ErrInvalidRank     = fmt.Errorf("%w: invalid rank", ErrProtocol)
	ErrGameOver        = fmt.Errorf("%w: game is already over", ErrProtocol)
)
