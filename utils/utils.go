package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	bureauIDMin  = 1000000
	bureauIDSpan = 9000000
)

// GenerateBureauID returns a random 7-digit decimal string. Uniqueness is the
// caller's job.
func GenerateBureauID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(bureauIDSpan))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(bureauIDMin+n.Int64(), 10), nil
}
