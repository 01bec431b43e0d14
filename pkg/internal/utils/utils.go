package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateUniqueHash returns a random hex identifier for component metadata.
func GenerateUniqueHash() string {
	// Combine the current time and random data for the hash input
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16) // 128 bits of random data
	_, err := rand.Read(randomBytes)
	if err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)
	hash := sha256.Sum256(hashInput)

	return hex.EncodeToString(hash[:])
}

// NextOddAbove rounds n up to the nearest odd integer strictly greater than floor.
func NextOddAbove(n, floor int) int {
	if n <= floor {
		n = floor + 1
	}
	if n%2 == 0 {
		n++
	}
	return n
}

// Linspace fills a freshly allocated slice with n evenly spaced values from start to end
// inclusive. n must be at least 2.
func Linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}
