//go:build unit

package password_test

import (
	"testing"

	"flashbooth/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		score    int
		valid    bool
	}{
		{name: "all five criteria", password: "Str0ng!pass", score: 5, valid: true},
		{name: "missing special character", password: "Str0ngpass", score: 4, valid: false},
		{name: "missing digit", password: "Strong!pass", score: 4, valid: false},
		{name: "missing uppercase", password: "str0ng!pass", score: 4, valid: false},
		{name: "missing lowercase", password: "STR0NG!PASS", score: 4, valid: false},
		{name: "too short", password: "S0!a", score: 4, valid: false},
		{name: "empty", password: "", score: 0, valid: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := password.CheckStrength(tc.password)
			assert.Equal(t, tc.score, s.Score)
			assert.Equal(t, tc.valid, s.IsValid)
			assert.Len(t, s.Feedback, 5-tc.score)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, password.Validate("Str0ng!pass"))
	assert.ErrorIs(t, password.Validate("weakpass"), password.ErrWeakPassword)
}

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)

	assert.NoError(t, password.ComparePassword(hash, "Str0ng!pass"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong-password"), password.ErrComparisonFailed)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}
