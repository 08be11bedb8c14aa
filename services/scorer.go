// services/scorer.go
package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"debate-arena/models"
)

// neutralSubScore replaces each sub-score when the oracle is unavailable.
// Oracle failure is absorbed here and never surfaces to the caller.
const neutralSubScore = 5.0

// Scorer turns oracle sub-scores into round results and whole-match
// records. It holds no state beyond the oracle handle.
type Scorer struct {
	oracle ScoreOracle
}

func NewScorer(oracle ScoreOracle) *Scorer {
	return &Scorer{oracle: oracle}
}

func (s *Scorer) scoreSide(ctx context.Context, argument, topic string, round int) models.ArgumentScores {
	scores, err := s.oracle.ScoreArgument(ctx, argument, topic, round)
	if err != nil {
		log.Printf("[Scorer] oracle failed for round %d, falling back to neutral scores: %v", round, err)
		return models.ArgumentScores{
			Logic:          neutralSubScore,
			Relevance:      neutralSubScore,
			Persuasiveness: neutralSubScore,
		}
	}
	return scores
}

// ScoreRound scores both players' arguments for one round. The two oracle
// calls are independent; a failing side gets the neutral fallback while
// the other side keeps its real scores. Equal totals tie the round.
func (s *Scorer) ScoreRound(ctx context.Context, topic string, round int, player1, arg1, player2, arg2 string) models.RoundResult {
	p1Scores := s.scoreSide(ctx, arg1, topic, round)
	p2Scores := s.scoreSide(ctx, arg2, topic, round)

	winner := models.TieMarker
	if p1Scores.Total() > p2Scores.Total() {
		winner = player1
	} else if p2Scores.Total() > p1Scores.Total() {
		winner = player2
	}

	return models.RoundResult{
		Round:        round,
		Player1Score: p1Scores,
		Player2Score: p2Scores,
		RoundWinner:  winner,
	}
}

// MatchInput is everything RunMatch needs to score a finished debate.
type MatchInput struct {
	GameID      string
	Topic       string
	Player1     string
	Player2     string
	Player1Args []string
	Player2Args []string
}

// RunMatch scores all five rounds and builds the match record. It does
// not persist anything; the caller writes the record exactly once.
// Argument sequences of the wrong length fail before any scoring.
func (s *Scorer) RunMatch(ctx context.Context, in MatchInput) (*models.MatchRecord, error) {
	if len(in.Player1Args) != models.RoundsPerMatch || len(in.Player2Args) != models.RoundsPerMatch {
		return nil, models.ErrInvalidMatchInput
	}

	gameID := in.GameID
	if gameID == "" {
		gameID = uuid.NewString()
	}

	rounds := make([]models.RoundResult, 0, models.RoundsPerMatch)
	p1Won, p2Won := 0, 0
	for i := 0; i < models.RoundsPerMatch; i++ {
		result := s.ScoreRound(ctx, in.Topic, i+1, in.Player1, in.Player1Args[i], in.Player2, in.Player2Args[i])
		rounds = append(rounds, result)
		switch result.RoundWinner {
		case in.Player1:
			p1Won++
		case in.Player2:
			p2Won++
		}
	}

	winner := models.TieMarker
	reason := fmt.Sprintf("Both players won %d rounds out of %d", p1Won, models.RoundsPerMatch)
	switch {
	case p1Won > p2Won:
		winner = in.Player1
		reason = fmt.Sprintf("Won %d rounds out of %d", p1Won, models.RoundsPerMatch)
	case p2Won > p1Won:
		winner = in.Player2
		reason = fmt.Sprintf("Won %d rounds out of %d", p2Won, models.RoundsPerMatch)
	}

	return &models.MatchRecord{
		GameID: gameID,
		Topic:  in.Topic,
		Players: models.MatchPlayers{
			Player1: models.MatchPlayer{Name: in.Player1, Arguments: in.Player1Args, RoundsWon: p1Won},
			Player2: models.MatchPlayer{Name: in.Player2, Arguments: in.Player2Args, RoundsWon: p2Won},
		},
		Rounds:    rounds,
		Winner:    winner,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}, nil
}
