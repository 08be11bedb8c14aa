package models

import (
	"strings"
	"sync"
	"time"
)

// RoundsPerMatch is the fixed length of a debate: five rounds, one
// argument per player per round.
const RoundsPerMatch = 5

type RoomStatus string

const (
	StatusWaiting    RoomStatus = "waiting"
	StatusInProgress RoomStatus = "in_progress"
	StatusCompleted  RoomStatus = "completed"
	StatusAborted    RoomStatus = "aborted"
)

// Room is the live state of one debate. It only exists in memory for the
// lifetime of the process; the durable artifacts are the MatchRecord and
// the player profiles.
//
// Status moves waiting → in_progress → completed, or → aborted from
// either live state. Terminal states are never left.
type Room struct {
	RoomKey      string              `json:"room_key"`
	Topic        string              `json:"topic"`
	Player1      string              `json:"player1_name"`
	Player2      string              `json:"player2_name,omitempty"`
	Status       RoomStatus          `json:"status"`
	CurrentTurn  string              `json:"current_turn,omitempty"`
	Arguments    map[string][]string `json:"arguments"`
	AbortedBy    string              `json:"aborted_by,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	LastActivity time.Time           `json:"last_activity"`

	mu sync.Mutex
	// finalizing is set while match completion is being scored outside
	// the lock. Submits and aborts are rejected until the status flips.
	finalizing bool
}

// TurnEntry is one argument in the flattened, chronological transcript.
type TurnEntry struct {
	Player   string `json:"player"`
	Argument string `json:"argument"`
}

// SubmitOutcome reports what a single accepted submission did to the room.
// When RoundComplete is set, Player1Arg/Player2Arg carry the two arguments
// of the just-finished round. When MatchComplete is set, Player1Args and
// Player2Args are full copies of both five-argument sequences.
type SubmitOutcome struct {
	Round         int
	RoundComplete bool
	MatchComplete bool
	NextTurn      string
	Player1Arg    string
	Player2Arg    string
	Player1Args   []string
	Player2Args   []string
}

func NewRoom(roomKey, topic, player1 string) *Room {
	now := time.Now().UTC()
	return &Room{
		RoomKey:      roomKey,
		Topic:        topic,
		Player1:      player1,
		Status:       StatusWaiting,
		Arguments:    map[string][]string{player1: {}},
		CreatedAt:    now,
		LastActivity: now,
	}
}

// Join admits the second player and starts the debate. Player1 always
// opens, so the first turn goes to the creator.
func (r *Room) Join(player string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Player2 != "" {
		return ErrRoomFull
	}
	if player == r.Player1 {
		return ErrAlreadyInDebate
	}
	r.Player2 = player
	r.Status = StatusInProgress
	r.CurrentTurn = r.Player1
	r.Arguments[player] = []string{}
	r.LastActivity = time.Now().UTC()
	return nil
}

// Submit validates turn ownership, appends the argument and flips the
// turn, all atomically. A rejected submission leaves the room untouched.
// When the tenth argument lands the room is latched for finalization;
// the caller scores the match and then calls FinishMatch.
func (r *Room) Submit(player, text string) (SubmitOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Status != StatusInProgress || r.finalizing {
		return SubmitOutcome{}, ErrDebateNotInProgress
	}
	if player != r.CurrentTurn {
		return SubmitOutcome{}, ErrNotYourTurn
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return SubmitOutcome{}, ErrArgumentRequired
	}

	r.Arguments[player] = append(r.Arguments[player], text)
	if player == r.Player1 {
		r.CurrentTurn = r.Player2
	} else {
		r.CurrentTurn = r.Player1
	}
	r.LastActivity = time.Now().UTC()

	p1Args := r.Arguments[r.Player1]
	p2Args := r.Arguments[r.Player2]

	out := SubmitOutcome{
		Round:    min(len(p1Args), len(p2Args)),
		NextTurn: r.CurrentTurn,
	}
	if player == r.Player1 {
		out.Round++
	}

	if len(p1Args) == len(p2Args) {
		out.RoundComplete = true
		out.Player1Arg = p1Args[len(p1Args)-1]
		out.Player2Arg = p2Args[len(p2Args)-1]
	}
	if len(p1Args) == RoundsPerMatch && len(p2Args) == RoundsPerMatch {
		out.MatchComplete = true
		out.Player1Args = append([]string(nil), p1Args...)
		out.Player2Args = append([]string(nil), p2Args...)
		r.finalizing = true
	}
	return out, nil
}

// FinishMatch flips the room into its terminal completed state after the
// match has been scored and persisted.
func (r *Room) FinishMatch() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Status = StatusCompleted
	r.CurrentTurn = ""
	r.finalizing = false
	r.LastActivity = time.Now().UTC()
}

// Abort moves the room to the aborted terminal state. The penalty against
// the aborting player is the caller's responsibility.
func (r *Room) Abort(player string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if player != r.Player1 && player != r.Player2 {
		return ErrPlayerNotInDebate
	}
	if r.Status != StatusInProgress || r.finalizing {
		return ErrDebateNotInProgress
	}
	r.Status = StatusAborted
	r.AbortedBy = player
	r.CurrentTurn = ""
	r.LastActivity = time.Now().UTC()
	return nil
}

// Snapshot returns a consistent deep copy for read-only callers.
func (r *Room) Snapshot() *Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	args := make(map[string][]string, len(r.Arguments))
	for player, list := range r.Arguments {
		args[player] = append([]string(nil), list...)
	}
	return &Room{
		RoomKey:      r.RoomKey,
		Topic:        r.Topic,
		Player1:      r.Player1,
		Player2:      r.Player2,
		Status:       r.Status,
		CurrentTurn:  r.CurrentTurn,
		Arguments:    args,
		AbortedBy:    r.AbortedBy,
		CreatedAt:    r.CreatedAt,
		LastActivity: r.LastActivity,
	}
}

// Transcript flattens both argument lists into submission order: within
// each round player1's entry precedes player2's. Call on a Snapshot when
// the room may be live.
func (r *Room) Transcript() []TurnEntry {
	p1Args := r.Arguments[r.Player1]
	var p2Args []string
	if r.Player2 != "" {
		p2Args = r.Arguments[r.Player2]
	}

	entries := make([]TurnEntry, 0, len(p1Args)+len(p2Args))
	for i := 0; i < max(len(p1Args), len(p2Args)); i++ {
		if i < len(p1Args) {
			entries = append(entries, TurnEntry{Player: r.Player1, Argument: p1Args[i]})
		}
		if i < len(p2Args) {
			entries = append(entries, TurnEntry{Player: r.Player2, Argument: p2Args[i]})
		}
	}
	return entries
}

// IdleSince reports how long ago the room last saw activity.
func (r *Room) IdleSince(now time.Time) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return now.Sub(r.LastActivity)
}

// StatusNow reads the current status under the room lock.
func (r *Room) StatusNow() RoomStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Status
}
