package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"debate-arena/utils"
)

func TestGenerateRoomKey(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		key := utils.GenerateRoomKey()
		assert.Len(t, key, utils.RoomKeyLength)
		for _, r := range key {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q in %s", r, key)
		}
		seen[key] = true
	}
	// 200 draws from a 36^6 space should essentially never all collide.
	assert.Greater(t, len(seen), 1)
}
