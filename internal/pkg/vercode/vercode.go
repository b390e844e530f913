// Package vercode generates fixed-length numeric verification codes.
package vercode

import (
	"crypto/rand"
	"math/big"

	"salon-booking/internal/pkg/errs"
)

// Generator produces random numeric codes. Collisions between live codes are
// tolerated; verification matches on (contact, code), not on code alone.
type Generator interface {
	Generate(length int) (string, error)
}

type CryptoGenerator struct{}

func NewCryptoGenerator() Generator {
	return &CryptoGenerator{}
}

func (g *CryptoGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", errs.New("code length must be positive")
	}

	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", errs.Wrap(err, "failed to generate random digit")
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}
