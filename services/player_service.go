// services/player_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"debate-arena/models"
	"debate-arena/utils"
)

// AbortPenalty is the fixed score deduction for walking out of a live
// debate. The deduction never drives a score below zero.
const AbortPenalty = 30

// PlayerService owns the durable player profiles and is the only writer
// of rating changes.
type PlayerService struct {
	store ObjectStore
}

func NewPlayerService(store ObjectStore) *PlayerService {
	return &PlayerService{store: store}
}

// GetPlayer loads a profile by username.
func (s *PlayerService) GetPlayer(ctx context.Context, username string) (*models.Player, error) {
	data, err := s.store.Get(ctx, playerKey(username))
	if err != nil {
		if errors.Is(err, utils.ErrObjectNotFound) {
			return nil, models.ErrPlayerNotFound
		}
		return nil, &models.PersistenceError{Op: "get", Key: playerKey(username), Err: err}
	}
	var player models.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, fmt.Errorf("corrupt profile for %s: %w", username, err)
	}
	return &player, nil
}

// CreatePlayer registers a fresh profile, rejecting taken usernames.
// The tie marker is reserved: a player by that name would be
// indistinguishable from a tied match in persisted records.
func (s *PlayerService) CreatePlayer(ctx context.Context, username string) (*models.Player, error) {
	if username == models.TieMarker {
		return nil, models.ErrUsernameReserved
	}
	if _, err := s.GetPlayer(ctx, username); err == nil {
		return nil, models.ErrUsernameTaken
	} else if !errors.Is(err, models.ErrPlayerNotFound) {
		return nil, err
	}
	player := models.NewPlayer(username)
	if err := s.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *PlayerService) SavePlayer(ctx context.Context, player *models.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to encode profile for %s: %w", player.Username, err)
	}
	if err := s.store.Put(ctx, playerKey(player.Username), data); err != nil {
		return &models.PersistenceError{Op: "put", Key: playerKey(player.Username), Err: err}
	}
	return nil
}

// ApplyAbortPenalty deducts AbortPenalty points, floored at zero, and
// counts the aborted debate as a played game. Win/loss tallies are
// untouched.
func (s *PlayerService) ApplyAbortPenalty(ctx context.Context, username string) (*models.Player, error) {
	player, err := s.GetPlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	player.TotalScore -= AbortPenalty
	if player.TotalScore < 0 {
		player.TotalScore = 0
	}
	player.GamesPlayed++

	if err := s.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// ApplyMatchResult moves |winnerRounds-loserRounds| points from loser to
// winner and updates both win/loss/game tallies. Both profiles are loaded
// up front so a missing player fails the whole operation before either
// write; the loser's score is allowed to go negative.
func (s *PlayerService) ApplyMatchResult(ctx context.Context, winner, loser string, winnerRounds, loserRounds int) error {
	winnerProfile, err := s.GetPlayer(ctx, winner)
	if err != nil {
		return err
	}
	loserProfile, err := s.GetPlayer(ctx, loser)
	if err != nil {
		return err
	}

	delta := winnerRounds - loserRounds
	if delta < 0 {
		delta = -delta
	}

	winnerProfile.TotalScore += delta
	winnerProfile.Wins++
	winnerProfile.GamesPlayed++

	loserProfile.TotalScore -= delta
	loserProfile.Losses++
	loserProfile.GamesPlayed++

	if err := s.SavePlayer(ctx, winnerProfile); err != nil {
		return err
	}
	return s.SavePlayer(ctx, loserProfile)
}

// GetAllPlayers loads every profile for ranking. Unreadable profiles are
// skipped, not fatal.
func (s *PlayerService) GetAllPlayers(ctx context.Context) ([]models.Player, error) {
	keys, err := s.store.List(ctx, "player_")
	if err != nil {
		return nil, &models.PersistenceError{Op: "list", Key: "player_", Err: err}
	}

	players := make([]models.Player, 0, len(keys))
	for _, key := range keys {
		data, err := s.store.Get(ctx, key)
		if err != nil {
			log.Printf("[Players] failed to load %s: %v", key, err)
			continue
		}
		var player models.Player
		if err := json.Unmarshal(data, &player); err != nil {
			log.Printf("[Players] skipping corrupt profile %s: %v", key, err)
			continue
		}
		players = append(players, player)
	}
	return players, nil
}

// Rank returns the player's 1-based leaderboard position by total score
// and the total number of ranked players.
func (s *PlayerService) Rank(ctx context.Context, username string) (rank, total int, err error) {
	players, err := s.GetAllPlayers(ctx)
	if err != nil {
		return 0, 0, err
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].TotalScore > players[j].TotalScore
	})
	for i, p := range players {
		if p.Username == username {
			return i + 1, len(players), nil
		}
	}
	return 0, len(players), nil
}

// MatchHistory returns every persisted match the player took part in.
func (s *PlayerService) MatchHistory(ctx context.Context, username string) ([]models.MatchRecord, error) {
	keys, err := s.store.List(ctx, "debate_")
	if err != nil {
		return nil, &models.PersistenceError{Op: "list", Key: "debate_", Err: err}
	}

	history := make([]models.MatchRecord, 0)
	for _, key := range keys {
		data, err := s.store.Get(ctx, key)
		if err != nil {
			log.Printf("[Players] failed to load %s: %v", key, err)
			continue
		}
		var record models.MatchRecord
		if err := json.Unmarshal(data, &record); err != nil {
			log.Printf("[Players] skipping corrupt record %s: %v", key, err)
			continue
		}
		if record.HasPlayer(username) {
			history = append(history, record)
		}
	}
	return history, nil
}
