// utils.go

package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// ContentHash returns the hexadecimal SHA-256 digest of raw bytes. It is used
// for archive object metadata and snapshot deduplication.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func GenerateUniqueHash() string {
	// Combine the current time and random data for the hash input
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16) // 128 bits of random data
	_, err := rand.Read(randomBytes)
	if err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)

	// Compute SHA-256 hash
	hash := sha256.Sum256(hashInput)

	// Return the hexadecimal string representation of the hash
	return hex.EncodeToString(hash[:])
}
