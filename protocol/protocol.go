package protocol

import "fmt"

// Kind represents the kind of a game event
type Kind int

const (
	BookFormed Kind = iota
	CardsTaken      // the asked player handed over cards
	WentFishing     // the asker drew from the pool
	PoolEmpty       // the ask missed and there was nothing to draw
	TurnPassed
	AwaitingMove // a manual player is active
	GameOver
)

var kindNames = []string{
	"BookFormed",
	"CardsTaken",
	"WentFishing",
	"PoolEmpty",
	"TurnPassed",
	"AwaitingMove",
	"GameOver",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText encodes a Kind by name
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown event kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a Kind from its name
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", text)
}
