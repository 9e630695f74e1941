package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInstitutionalEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"valid address", "sofia.ramirez01@utrgv.edu", true},
		{"uppercase is normalized", "Sofia.Ramirez01@UTRGV.EDU", true},
		{"surrounding whitespace", "  sofia@utrgv.edu  ", true},
		{"wrong domain", "sofia@gmail.com", false},
		{"subdomain trick", "sofia@utrgv.edu.evil.com", false},
		{"missing local part", "@utrgv.edu", false},
		{"not an email", "utrgv.edu", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsInstitutionalEmail(tt.email, "utrgv.edu"))
		})
	}
}

func TestParseCalendarDate(t *testing.T) {
	parsed, err := ParseCalendarDate("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.August, parsed.Month())
	assert.Equal(t, 29, parsed.Day())

	_, err = ParseCalendarDate("29/08/2026")
	assert.Error(t, err)

	_, err = ParseCalendarDate("2026-13-01")
	assert.Error(t, err)

	// Whitespace is tolerated
	_, err = ParseCalendarDate(" 2026-08-29 ")
	assert.NoError(t, err)
}
