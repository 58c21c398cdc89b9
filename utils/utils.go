package utils

import (
	"math/rand"
	"time"
)

const userCodeCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateUserCode generates a short shareable code like "USER3F9K2A" used to
// address friend requests without exposing an email address.
func GenerateUserCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := make([]byte, 6)
	for i := range code {
		code[i] = userCodeCharset[rng.Intn(len(userCodeCharset))]
	}
	return "USER" + string(code)
}
