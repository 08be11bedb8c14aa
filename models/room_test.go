package models_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debate-arena/models"
)

func TestNewRoom(t *testing.T) {
	room := models.NewRoom("ABC123", "Is cereal a soup?", "alice")

	assert.Equal(t, "ABC123", room.RoomKey)
	assert.Equal(t, "Is cereal a soup?", room.Topic)
	assert.Equal(t, "alice", room.Player1)
	assert.Empty(t, room.Player2)
	assert.Equal(t, models.StatusWaiting, room.Status)
	assert.Empty(t, room.CurrentTurn)
	assert.Equal(t, []string{}, room.Arguments["alice"])
	assert.WithinDuration(t, time.Now(), room.CreatedAt, time.Second)
}

func TestRoomJoin(t *testing.T) {
	t.Run("starts the debate with player1 to move", func(t *testing.T) {
		room := models.NewRoom("ABC123", "topic", "alice")

		require.NoError(t, room.Join("bob"))

		assert.Equal(t, "bob", room.Player2)
		assert.Equal(t, models.StatusInProgress, room.Status)
		assert.Equal(t, "alice", room.CurrentTurn)
		assert.Equal(t, []string{}, room.Arguments["bob"])
	})

	t.Run("rejects a third player", func(t *testing.T) {
		room := models.NewRoom("ABC123", "topic", "alice")
		require.NoError(t, room.Join("bob"))

		err := room.Join("carol")
		assert.ErrorIs(t, err, models.ErrRoomFull)
		assert.Equal(t, "bob", room.Player2)
	})

	t.Run("rejects the creator joining their own room", func(t *testing.T) {
		room := models.NewRoom("ABC123", "topic", "alice")

		err := room.Join("alice")
		assert.ErrorIs(t, err, models.ErrAlreadyInDebate)
		assert.Equal(t, models.StatusWaiting, room.Status)
	})
}

func TestRoomSubmit(t *testing.T) {
	newLiveRoom := func(t *testing.T) *models.Room {
		t.Helper()
		room := models.NewRoom("ABC123", "topic", "alice")
		require.NoError(t, room.Join("bob"))
		return room
	}

	t.Run("rejects submissions before the debate starts", func(t *testing.T) {
		room := models.NewRoom("ABC123", "topic", "alice")

		_, err := room.Submit("alice", "opening")
		assert.ErrorIs(t, err, models.ErrDebateNotInProgress)
		assert.Empty(t, room.Arguments["alice"])
	})

	t.Run("rejects out-of-turn submissions without mutating", func(t *testing.T) {
		room := newLiveRoom(t)

		_, err := room.Submit("bob", "me first")
		assert.ErrorIs(t, err, models.ErrNotYourTurn)
		assert.Equal(t, "alice", room.CurrentTurn)
		assert.Empty(t, room.Arguments["bob"])

		// A stranger is never the current turn either.
		_, err = room.Submit("carol", "hello")
		assert.ErrorIs(t, err, models.ErrNotYourTurn)
	})

	t.Run("rejects blank arguments", func(t *testing.T) {
		room := newLiveRoom(t)

		_, err := room.Submit("alice", "   ")
		assert.ErrorIs(t, err, models.ErrArgumentRequired)
		assert.Equal(t, "alice", room.CurrentTurn)
	})

	t.Run("alternates turns and detects round completion", func(t *testing.T) {
		room := newLiveRoom(t)

		out, err := room.Submit("alice", "a1")
		require.NoError(t, err)
		assert.Equal(t, 1, out.Round)
		assert.False(t, out.RoundComplete)
		assert.Equal(t, "bob", out.NextTurn)

		out, err = room.Submit("bob", "b1")
		require.NoError(t, err)
		assert.Equal(t, 1, out.Round)
		assert.True(t, out.RoundComplete)
		assert.Equal(t, "a1", out.Player1Arg)
		assert.Equal(t, "b1", out.Player2Arg)
		assert.False(t, out.MatchComplete)
		assert.Equal(t, "alice", out.NextTurn)
	})

	t.Run("latches the room when the tenth argument lands", func(t *testing.T) {
		room := newLiveRoom(t)

		var out models.SubmitOutcome
		var err error
		for i := 1; i <= models.RoundsPerMatch; i++ {
			out, err = room.Submit("alice", fmt.Sprintf("a%d", i))
			require.NoError(t, err)
			out, err = room.Submit("bob", fmt.Sprintf("b%d", i))
			require.NoError(t, err)
		}

		assert.True(t, out.MatchComplete)
		assert.Len(t, out.Player1Args, models.RoundsPerMatch)
		assert.Len(t, out.Player2Args, models.RoundsPerMatch)

		// Finalization is in flight: no more writes.
		_, err = room.Submit("alice", "one more")
		assert.ErrorIs(t, err, models.ErrDebateNotInProgress)
		assert.ErrorIs(t, room.Abort("alice"), models.ErrDebateNotInProgress)

		room.FinishMatch()
		assert.Equal(t, models.StatusCompleted, room.Status)
		assert.Empty(t, room.CurrentTurn)

		_, err = room.Submit("alice", "too late")
		assert.ErrorIs(t, err, models.ErrDebateNotInProgress)
	})

	t.Run("keeps argument counts within one of each other", func(t *testing.T) {
		room := newLiveRoom(t)

		for i := 1; i <= 3; i++ {
			_, err := room.Submit("alice", fmt.Sprintf("a%d", i))
			require.NoError(t, err)
			diff := len(room.Arguments["alice"]) - len(room.Arguments["bob"])
			assert.Equal(t, 1, diff)

			_, err = room.Submit("bob", fmt.Sprintf("b%d", i))
			require.NoError(t, err)
			assert.Equal(t, len(room.Arguments["alice"]), len(room.Arguments["bob"]))
		}
	})
}

func TestRoomAbort(t *testing.T) {
	t.Run("only participants may abort", func(t *testing.T) {
		room := models.NewRoom("ABC123", "topic", "alice")
		require.NoError(t, room.Join("bob"))

		assert.ErrorIs(t, room.Abort("carol"), models.ErrPlayerNotInDebate)
	})

	t.Run("aborting requires a live debate", func(t *testing.T) {
		room := models.NewRoom("ABC123", "topic", "alice")
		assert.ErrorIs(t, room.Abort("alice"), models.ErrDebateNotInProgress)
	})

	t.Run("abort is terminal", func(t *testing.T) {
		room := models.NewRoom("ABC123", "topic", "alice")
		require.NoError(t, room.Join("bob"))

		require.NoError(t, room.Abort("bob"))
		assert.Equal(t, models.StatusAborted, room.Status)
		assert.Equal(t, "bob", room.AbortedBy)

		assert.ErrorIs(t, room.Abort("alice"), models.ErrDebateNotInProgress)
		_, err := room.Submit("alice", "still here")
		assert.ErrorIs(t, err, models.ErrDebateNotInProgress)
	})
}

func TestRoomTranscript(t *testing.T) {
	room := models.NewRoom("ABC123", "topic", "alice")
	require.NoError(t, room.Join("bob"))

	_, err := room.Submit("alice", "a1")
	require.NoError(t, err)
	_, err = room.Submit("bob", "b1")
	require.NoError(t, err)
	_, err = room.Submit("alice", "a2")
	require.NoError(t, err)

	entries := room.Snapshot().Transcript()
	assert.Equal(t, []models.TurnEntry{
		{Player: "alice", Argument: "a1"},
		{Player: "bob", Argument: "b1"},
		{Player: "alice", Argument: "a2"},
	}, entries)
}

func TestRoomSnapshot(t *testing.T) {
	room := models.NewRoom("ABC123", "topic", "alice")
	require.NoError(t, room.Join("bob"))
	_, err := room.Submit("alice", "a1")
	require.NoError(t, err)

	snap := room.Snapshot()
	snap.Arguments["alice"][0] = "tampered"
	snap.Status = models.StatusAborted

	assert.Equal(t, "a1", room.Arguments["alice"][0])
	assert.Equal(t, models.StatusInProgress, room.Status)
}
