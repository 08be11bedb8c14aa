package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debate-arena/models"
	"debate-arena/services"
)

type fakeOracle struct {
	scoreFn func(argument, topic string, turn int) (models.ArgumentScores, error)
}

func (f *fakeOracle) ScoreArgument(_ context.Context, argument, topic string, turn int) (models.ArgumentScores, error) {
	if f.scoreFn != nil {
		return f.scoreFn(argument, topic, turn)
	}
	return models.ArgumentScores{Logic: 5, Relevance: 5, Persuasiveness: 5}, nil
}

// scoreByPrefix gives alice-prefixed arguments a strong score and
// everything else a weak one, for deterministic outcomes.
func scoreByPrefix(argument, _ string, _ int) (models.ArgumentScores, error) {
	if strings.HasPrefix(argument, "alice") {
		return models.ArgumentScores{Logic: 9, Relevance: 8, Persuasiveness: 7}, nil
	}
	return models.ArgumentScores{Logic: 4, Relevance: 5, Persuasiveness: 3}, nil
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func TestScoreRound(t *testing.T) {
	t.Run("higher total wins the round", func(t *testing.T) {
		scorer := services.NewScorer(&fakeOracle{scoreFn: scoreByPrefix})

		result := scorer.ScoreRound(context.Background(), "topic", 2, "alice", "alice says", "bob", "bob says")

		assert.Equal(t, 2, result.Round)
		assert.Equal(t, "alice", result.RoundWinner)
		assert.InDelta(t, 24.0, result.Player1Score.Total(), 1e-9)
		assert.InDelta(t, 12.0, result.Player2Score.Total(), 1e-9)
	})

	t.Run("equal totals tie the round", func(t *testing.T) {
		scorer := services.NewScorer(&fakeOracle{})

		result := scorer.ScoreRound(context.Background(), "topic", 1, "alice", "a", "bob", "b")
		assert.Equal(t, models.TieMarker, result.RoundWinner)
	})

	t.Run("oracle failure falls back to neutral scores for the failing side only", func(t *testing.T) {
		scorer := services.NewScorer(&fakeOracle{scoreFn: func(argument, _ string, _ int) (models.ArgumentScores, error) {
			if strings.HasPrefix(argument, "bob") {
				return models.ArgumentScores{}, errors.New("oracle down")
			}
			return models.ArgumentScores{Logic: 9, Relevance: 9, Persuasiveness: 9}, nil
		}})

		result := scorer.ScoreRound(context.Background(), "topic", 1, "alice", "alice says", "bob", "bob says")

		assert.Equal(t, models.ArgumentScores{Logic: 5, Relevance: 5, Persuasiveness: 5}, result.Player2Score)
		assert.Equal(t, "alice", result.RoundWinner)
	})

	t.Run("total oracle outage ties every round", func(t *testing.T) {
		scorer := services.NewScorer(&fakeOracle{scoreFn: func(string, string, int) (models.ArgumentScores, error) {
			return models.ArgumentScores{}, errors.New("oracle down")
		}})

		result := scorer.ScoreRound(context.Background(), "topic", 1, "alice", "a", "bob", "b")
		assert.Equal(t, models.TieMarker, result.RoundWinner)
		assert.InDelta(t, 15.0, result.Player1Score.Total(), 1e-9)
	})
}

func TestRunMatch(t *testing.T) {
	t.Run("rejects wrong argument counts before scoring", func(t *testing.T) {
		calls := 0
		scorer := services.NewScorer(&fakeOracle{scoreFn: func(string, string, int) (models.ArgumentScores, error) {
			calls++
			return models.ArgumentScores{}, nil
		}})

		_, err := scorer.RunMatch(context.Background(), services.MatchInput{
			Player1:     "alice",
			Player2:     "bob",
			Player1Args: repeat("a", 4),
			Player2Args: repeat("b", 5),
		})

		assert.ErrorIs(t, err, models.ErrInvalidMatchInput)
		assert.Zero(t, calls)
	})

	t.Run("tallies five rounds and picks the winner", func(t *testing.T) {
		scorer := services.NewScorer(&fakeOracle{scoreFn: scoreByPrefix})

		record, err := scorer.RunMatch(context.Background(), services.MatchInput{
			GameID:      "GAME42",
			Topic:       "topic",
			Player1:     "alice",
			Player2:     "bob",
			Player1Args: repeat("alice arg", 5),
			Player2Args: repeat("bob arg", 5),
		})
		require.NoError(t, err)

		assert.Equal(t, "GAME42", record.GameID)
		assert.Len(t, record.Rounds, models.RoundsPerMatch)
		assert.Equal(t, 5, record.Players.Player1.RoundsWon)
		assert.Equal(t, 0, record.Players.Player2.RoundsWon)
		assert.Equal(t, "alice", record.Winner)
		assert.Equal(t, "Won 5 rounds out of 5", record.Reason)
		assert.False(t, record.Timestamp.IsZero())
	})

	t.Run("round wins and ties always account for all five rounds", func(t *testing.T) {
		// Rounds 1-2 to alice, 3 tied, 4-5 to bob.
		scorer := services.NewScorer(&fakeOracle{scoreFn: func(argument, _ string, turn int) (models.ArgumentScores, error) {
			switch {
			case turn <= 2 && strings.HasPrefix(argument, "alice"):
				return models.ArgumentScores{Logic: 9, Relevance: 9, Persuasiveness: 9}, nil
			case turn >= 4 && strings.HasPrefix(argument, "bob"):
				return models.ArgumentScores{Logic: 9, Relevance: 9, Persuasiveness: 9}, nil
			default:
				return models.ArgumentScores{Logic: 5, Relevance: 5, Persuasiveness: 5}, nil
			}
		}})

		record, err := scorer.RunMatch(context.Background(), services.MatchInput{
			Topic:       "topic",
			Player1:     "alice",
			Player2:     "bob",
			Player1Args: repeat("alice arg", 5),
			Player2Args: repeat("bob arg", 5),
		})
		require.NoError(t, err)

		ties := 0
		for _, round := range record.Rounds {
			if round.RoundWinner == models.TieMarker {
				ties++
			}
		}
		assert.Equal(t, models.RoundsPerMatch,
			record.Players.Player1.RoundsWon+record.Players.Player2.RoundsWon+ties)
		assert.Equal(t, models.TieMarker, record.Winner)
		assert.Equal(t, "Both players won 2 rounds out of 5", record.Reason)
	})

	t.Run("generates a game id when none is supplied", func(t *testing.T) {
		scorer := services.NewScorer(&fakeOracle{})

		record, err := scorer.RunMatch(context.Background(), services.MatchInput{
			Player1:     "alice",
			Player2:     "bob",
			Player1Args: repeat("a", 5),
			Player2Args: repeat("b", 5),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, record.GameID)
	})
}
