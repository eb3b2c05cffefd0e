package otp

import (
	"crypto/rand"
	"math/big"

	"github.com/xlzd/gotp"
)

const secretLength = 16

// Generator produces fixed-length numeric one-time codes.
type Generator interface {
	RandomCode(length int) string
}

type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

// RandomCode derives a numeric code of the given length from an HOTP over a
// fresh random secret.
func (g *GOTPGenerator) RandomCode(length int) string {
	hotp := gotp.NewHOTP(gotp.RandomSecret(secretLength), length, nil)

	return hotp.At(randomCounter())
}

func randomCounter() int {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<31))
	if err != nil {
		return 0
	}

	return int(n.Int64())
}
