package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"
)

// APIKeySize is the number of random bytes in a generated API key.
const APIKeySize = 24

// RandomData returns a slice of the specified size containing random data.
func RandomData(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}

	data := make([]byte, size)
	_, err := rand.Read(data)
	if err != nil {
		return nil, fmt.Errorf("failed generating random data: %w", err)
	}

	return data, nil
}

// NewAPIKey generates a random API key, base58-encoded so it can be embedded
// in a Basic Authorization credential without escaping.
func NewAPIKey() (string, error) {
	data, err := RandomData(APIKeySize)
	if err != nil {
		return "", fmt.Errorf("failed generating API key: %w", err)
	}

	return base58.Encode(data), nil
}
