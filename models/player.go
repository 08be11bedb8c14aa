package models

import "time"

// Player is the durable profile stored as player_{username}.json in the
// object store. Mutated only by the rating service.
type Player struct {
	Username    string    `json:"username"`
	TotalScore  int       `json:"total_score"`
	GamesPlayed int       `json:"games_played"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewPlayer(username string) *Player {
	return &Player{
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
}
