package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTime(t *testing.T) {
	valid := []string{"00:00", "09:05", "14:30", "23:59"}
	for _, s := range valid {
		assert.True(t, IsValidTime(s), s)
	}

	invalid := []string{"", "24:00", "9:00", "09:60", "09-30", "09:5", "0900", "09:00:00"}
	for _, s := range invalid {
		assert.False(t, IsValidTime(s), s)
	}
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2025-06-09"))
	assert.True(t, IsValidDate("2024-02-29")) // leap day

	invalid := []string{"", "2025-13-01", "2025-02-30", "09/06/2025", "2025-6-9"}
	for _, s := range invalid {
		assert.False(t, IsValidDate(s), s)
	}
}
