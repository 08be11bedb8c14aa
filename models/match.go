package models

import "time"

// TieMarker is recorded as the winner of a drawn round or match.
const TieMarker = "Tie"

// ArgumentScores are the three oracle sub-scores for one argument, each
// in [0, 10].
type ArgumentScores struct {
	Logic          float64 `json:"logic"`
	Relevance      float64 `json:"relevance"`
	Persuasiveness float64 `json:"persuasiveness"`
}

// Total is the round score an argument contributes: the plain sum of the
// three sub-scores.
func (s ArgumentScores) Total() float64 {
	return s.Logic + s.Relevance + s.Persuasiveness
}

// RoundResult is the scored outcome of a single round. RoundWinner holds
// the winning player's name, or TieMarker when the totals are equal.
type RoundResult struct {
	Round        int            `json:"round"`
	Player1Score ArgumentScores `json:"player1_score"`
	Player2Score ArgumentScores `json:"player2_score"`
	RoundWinner  string         `json:"round_winner"`
}

// MatchPlayer is one side of a finished match as it appears in the
// persisted record.
type MatchPlayer struct {
	Name      string   `json:"name"`
	Arguments []string `json:"arguments"`
	RoundsWon int      `json:"rounds_won"`
}

type MatchPlayers struct {
	Player1 MatchPlayer `json:"player1"`
	Player2 MatchPlayer `json:"player2"`
}

// MatchRecord is the immutable result of a completed match, stored as
// debate_{gameID}.json. Written exactly once, never mutated.
type MatchRecord struct {
	GameID    string        `json:"game_id"`
	Topic     string        `json:"topic"`
	Players   MatchPlayers  `json:"players"`
	Rounds    []RoundResult `json:"rounds"`
	Winner    string        `json:"winner"`
	Reason    string        `json:"reason"`
	Timestamp time.Time     `json:"timestamp"`
}

// HasPlayer reports whether the named player took part in this match.
func (m *MatchRecord) HasPlayer(username string) bool {
	return m.Players.Player1.Name == username || m.Players.Player2.Name == username
}
