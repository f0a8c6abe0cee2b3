package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/minaorangina/gofish/protocol"
	"github.com/pterm/pterm"
)

// SendText writes formatted text to w
func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// Narrator prints game events as they happen
type Narrator struct {
	w     io.Writer
	names []string
}

func NewNarrator(w io.Writer, names []string) *Narrator {
	return &Narrator{w: w, names: names}
}

// Event prints one event. It can be used as a MatchOpts.OnEvent listener.
func (n *Narrator) Event(e protocol.Event) {
	if text := EventText(e, n.names); text != "" {
		SendText(n.w, "%s\n", text)
	}
}

// EventText describes an event in words. Turn changes print nothing.
func EventText(e protocol.Event, names []string) string {
	player := pterm.LightCyan(nameOf(e.Player, names))
	opponent := pterm.LightCyan(nameOf(e.Opponent, names))

	switch e.Kind {
	case protocol.CardsTaken:
		return fmt.Sprintf("%s asked %s for %s and got %d 🎣", player, opponent, e.Rank.Plural(), e.Count)
	case protocol.WentFishing:
		return fmt.Sprintf("%s asked %s for %s: go fish!", player, opponent, e.Rank.Plural())
	case protocol.PoolEmpty:
		return fmt.Sprintf("%s asked %s for %s: go fish, but the pool is empty", player, opponent, e.Rank.Plural())
	case protocol.BookFormed:
		return pterm.LightGreen(fmt.Sprintf("%s completed a book of %s 📚", nameOf(e.Player, names), e.Rank.Plural()))
	case protocol.AwaitingMove:
		return fmt.Sprintf("Waiting for %s to move", player)
	case protocol.GameOver:
		return pterm.LightYellow("All the books are made. Game over!")
	}
	return ""
}

// Scoreboard renders the final standings as a table
func Scoreboard(w io.Writer, standings []protocol.Standing) error {
	data := [][]string{{"Place", "Player", "Books"}}
	for _, s := range standings {
		data = append(data, []string{strconv.Itoa(s.Place), s.Name, strconv.Itoa(s.Books)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("could not render scoreboard: %w", err)
	}

	SendText(w, "%s\n", table)
	return nil
}

func nameOf(idx int, names []string) string {
	if idx < 0 || idx >= len(names) {
		return "nobody"
	}
	return names[idx]
}
