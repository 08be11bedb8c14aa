// services/debate_service.go
package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"debate-arena/models"
	"debate-arena/utils"
)

// DebateService is the in-memory room registry plus the per-room state
// machine: it owns turn order, round and match completion, and drives the
// scorer, the rating updates and the record write when a match ends.
// Rooms live only for the process lifetime.
type DebateService struct {
	mu    sync.RWMutex
	rooms map[string]*models.Room

	players *PlayerService
	scorer  *Scorer
	store   ObjectStore
}

func NewDebateService(players *PlayerService, scorer *Scorer, store ObjectStore) *DebateService {
	return &DebateService{
		rooms:   make(map[string]*models.Room),
		players: players,
		scorer:  scorer,
		store:   store,
	}
}

// CreateRoom opens a new waiting room on the given topic. The room key is
// regenerated until it misses every live room.
func (s *DebateService) CreateRoom(ctx context.Context, playerName, topic string) (*models.Room, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, models.ErrTopicRequired
	}
	if _, err := s.players.GetPlayer(ctx, playerName); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var key string
	for {
		key = utils.GenerateRoomKey()
		if _, taken := s.rooms[key]; !taken {
			break
		}
	}

	room := models.NewRoom(key, topic, playerName)
	s.rooms[key] = room
	return room.Snapshot(), nil
}

func (s *DebateService) getRoom(key string) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[key]
	if !ok {
		return nil, models.ErrRoomNotFound
	}
	return room, nil
}

// JoinRoom admits the second player and starts the debate with player1 to
// move.
func (s *DebateService) JoinRoom(ctx context.Context, key, playerName string) (*models.Room, error) {
	if _, err := s.players.GetPlayer(ctx, playerName); err != nil {
		return nil, err
	}
	room, err := s.getRoom(key)
	if err != nil {
		return nil, err
	}
	if err := room.Join(playerName); err != nil {
		return nil, err
	}
	return room.Snapshot(), nil
}

// SubmitResult is what a single submission reports back to the player.
// RoundResult is advisory display-only scoring; the final record is
// re-scored from scratch at match completion.
type SubmitResult struct {
	Status       models.RoomStatus   `json:"status"`
	CurrentRound int                 `json:"current_round"`
	RoundResult  *models.RoundResult `json:"round_result,omitempty"`
	NextTurn     string              `json:"next_turn,omitempty"`
	FinalResult  *models.MatchRecord `json:"final_result,omitempty"`
}

// SubmitArgument appends one argument for the player whose turn it is.
// When the submission closes a round, that round is scored for display.
// When it closes the match, the whole debate is re-scored
// authoritatively, ratings are applied, and the record is persisted once.
// All oracle traffic happens outside the room lock; the room is latched
// against further writes while finalization runs.
func (s *DebateService) SubmitArgument(ctx context.Context, key, playerName, text string) (*SubmitResult, error) {
	room, err := s.getRoom(key)
	if err != nil {
		return nil, err
	}

	out, err := room.Submit(playerName, text)
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{
		Status:       models.StatusInProgress,
		CurrentRound: out.Round,
		NextTurn:     out.NextTurn,
	}

	if out.RoundComplete {
		roundResult := s.scorer.ScoreRound(ctx, room.Topic, out.Round,
			room.Player1, out.Player1Arg, room.Player2, out.Player2Arg)
		result.RoundResult = &roundResult
	}

	if !out.MatchComplete {
		return result, nil
	}

	record, err := s.finalizeMatch(ctx, room, out)
	if err != nil {
		return nil, err
	}
	result.Status = models.StatusCompleted
	result.NextTurn = ""
	result.FinalResult = record
	return result, nil
}

// finalizeMatch re-scores all five rounds, applies the rating deltas,
// persists the match record and flips the room to completed. Rating and
// store failures surface to the caller but never roll the room back: the
// session completes either way.
func (s *DebateService) finalizeMatch(ctx context.Context, room *models.Room, out models.SubmitOutcome) (*models.MatchRecord, error) {
	// The room stays latched (finalizing) until FinishMatch runs.
	defer room.FinishMatch()

	record, err := s.scorer.RunMatch(ctx, MatchInput{
		GameID:      room.RoomKey,
		Topic:       room.Topic,
		Player1:     room.Player1,
		Player2:     room.Player2,
		Player1Args: out.Player1Args,
		Player2Args: out.Player2Args,
	})
	if err != nil {
		return nil, err
	}

	var firstErr error
	if record.Winner != models.TieMarker {
		loser := room.Player2
		winnerRounds := record.Players.Player1.RoundsWon
		loserRounds := record.Players.Player2.RoundsWon
		if record.Winner == room.Player2 {
			loser = room.Player1
			winnerRounds, loserRounds = loserRounds, winnerRounds
		}
		if err := s.players.ApplyMatchResult(ctx, record.Winner, loser, winnerRounds, loserRounds); err != nil {
			log.Printf("[Debate] rating update failed for room %s: %v", room.RoomKey, err)
			firstErr = err
		}
	}

	data, err := json.Marshal(record)
	if err == nil {
		err = s.store.Put(ctx, matchKey(record.GameID), data)
	}
	if err != nil {
		log.Printf("[Debate] failed to persist record for room %s: %v", room.RoomKey, err)
		if firstErr == nil {
			firstErr = &models.PersistenceError{Op: "put", Key: matchKey(record.GameID), Err: err}
		}
	}

	if firstErr != nil {
		return record, firstErr
	}
	return record, nil
}

// AbortDebate lets a participant walk out of a live debate. The room
// flips to aborted atomically with the validation, then the fixed penalty
// lands on the aborting player. No match record is written.
func (s *DebateService) AbortDebate(ctx context.Context, key, playerName string) (*models.Room, error) {
	room, err := s.getRoom(key)
	if err != nil {
		return nil, err
	}
	if err := room.Abort(playerName); err != nil {
		return nil, err
	}
	if _, err := s.players.ApplyAbortPenalty(ctx, playerName); err != nil {
		log.Printf("[Debate] abort penalty failed for %s in room %s: %v", playerName, key, err)
		return nil, err
	}
	return room.Snapshot(), nil
}

// RoomStatusResult pairs a room snapshot with the flattened transcript.
type RoomStatusResult struct {
	Room         *models.Room       `json:"room"`
	AllArguments []models.TurnEntry `json:"all_arguments"`
}

// RoomStatus returns a consistent read-only view of the room.
func (s *DebateService) RoomStatus(key string) (*RoomStatusResult, error) {
	room, err := s.getRoom(key)
	if err != nil {
		return nil, err
	}
	snapshot := room.Snapshot()
	return &RoomStatusResult{
		Room:         snapshot,
		AllArguments: snapshot.Transcript(),
	}, nil
}

// RoomCount reports how many rooms are live.
func (s *DebateService) RoomCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// SweepRooms drops waiting rooms nobody joined within maxIdle and
// terminal rooms older than retention. Live debates are never touched.
func (s *DebateService) SweepRooms(maxIdle, retention time.Duration) int {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, room := range s.rooms {
		idle := room.IdleSince(now)
		switch room.StatusNow() {
		case models.StatusWaiting:
			if idle > maxIdle {
				delete(s.rooms, key)
				removed++
			}
		case models.StatusCompleted, models.StatusAborted:
			if idle > retention {
				delete(s.rooms, key)
				removed++
			}
		}
	}
	return removed
}
