// utils/keys.go
package utils

import "math/rand"

const roomKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RoomKeyLength is the fixed length of generated room keys.
const RoomKeyLength = 6

// GenerateRoomKey returns a random uppercase-alphanumeric room key.
// Uniqueness is the caller's problem: collisions against live rooms must
// be detected and retried.
func GenerateRoomKey() string {
	b := make([]byte, RoomKeyLength)
	for i := range b {
		b[i] = roomKeyAlphabet[rand.Intn(len(roomKeyAlphabet))]
	}
	return string(b)
}
