package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneNumberValid(t *testing.T) {
	valid := []string{
		"+911234567890",
		"911234567890",
		"79161234567",
	}
	for _, number := range valid {
		assert.True(t, IsPhoneNumberValid(number), number)
	}

	invalid := []string{
		"",
		"12345",
		"+0123456789",
		"not-a-number",
		"+91 1234567890",
		"+9112345678901234567",
	}
	for _, number := range invalid {
		assert.False(t, IsPhoneNumberValid(number), number)
	}
}
