package services

import "context"

// ObjectStore is the durable keyed-blob contract the services consume.
// *utils.ObjectStore satisfies it in production; tests plug in an
// in-memory map. No multi-key transactional guarantee is assumed.
type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	List(ctx context.Context, prefix string) ([]string, error)
}

func playerKey(username string) string {
	return "player_" + username + ".json"
}

func matchKey(gameID string) string {
	return "debate_" + gameID + ".json"
}
