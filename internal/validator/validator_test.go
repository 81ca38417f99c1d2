package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/codebreaker/internal/domain"
)

func TestValidate(t *testing.T) {
	v := New()
	cases := []struct {
		name   string
		guess  string
		length int
		want   string
		ok     bool
	}{
		{"exact", "AGENT", 5, "AGENT", true},
		{"lowercase", "agent", 5, "AGENT", true},
		{"trimmed", "  jazz ", 4, "JAZZ", true},
		{"seven", "whisper", 7, "WHISPER", true},
		{"too short", "AGEN", 5, "", false},
		{"too long", "AGENTS", 5, "", false},
		{"digit", "AG3NT", 5, "", false},
		{"space inside", "AG NT", 5, "", false},
		{"accented", "AGÉNT", 5, "", false},
		{"empty", "", 5, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := v.Validate(tc.guess, tc.length)
			if !tc.ok {
				require.ErrorIs(t, err, domain.ErrInvalidGuess)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
