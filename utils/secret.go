package utils

import (
	"crypto/rand"
	"log"
	"math/big"
)

const secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

const SecretKeyLength = 32

// GenerateSecretKey returns a fresh random signing secret. It is called
// once at startup, so every restart invalidates existing sessions.
func GenerateSecretKey() string {
	key := make([]byte, SecretKeyLength)
	max := big.NewInt(int64(len(secretAlphabet)))
	for i := range key {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			log.Fatalf("Failed to generate secret key: %v", err)
		}
		key[i] = secretAlphabet[n.Int64()]
	}
	return string(key)
}
