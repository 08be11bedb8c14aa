package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the debate domain. Handlers map these onto HTTP
// statuses; services wrap them with context via fmt.Errorf("%w").
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomFull            = errors.New("room is full")
	ErrAlreadyInDebate     = errors.New("player already in this debate")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrDebateNotInProgress = errors.New("debate not in progress")
	ErrPlayerNotInDebate   = errors.New("player not in this debate")

	ErrPlayerNotFound   = errors.New("player not found")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrUsernameReserved = errors.New("username is reserved")

	ErrTopicRequired    = errors.New("topic is required")
	ErrArgumentRequired = errors.New("argument text is required")
	ErrInvalidGenre     = errors.New("invalid genre")

	ErrInvalidMatchInput = errors.New("both players must complete all 5 arguments")
)

// PersistenceError marks a failed read/write against the durable store.
// The in-memory session transition is NOT rolled back when one of these
// surfaces at match completion.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
