package protocol

import "github.com/minaorangina/gofish/deck"

// Event describes one thing that happened in a game.
// Player is the acting player; Opponent is -1 when the event has none.
type Event struct {
	Seq      int       `json:"seq"`
	Kind     Kind      `json:"kind"`
	Player   int       `json:"player"`
	Opponent int       `json:"opponent"`
	Rank     deck.Rank `json:"rank"`
	Count    int       `json:"count,omitempty"`
}

// Standing is one row of the final ranking
type Standing struct {
	Place int    `json:"place"`
	Index int    `json:"index"`
	Name  string `json:"name"`
	Books int    `json:"books"`
}

// MatchSummary is the public record of a match
type MatchSummary struct {
	MatchID   string     `json:"match_id"`
	Seed      int64      `json:"seed"`
	Players   []string   `json:"players"`
	Ticks     int        `json:"ticks"`
	Finished  bool       `json:"finished"`
	Standings []Standing `json:"standings"`
}
