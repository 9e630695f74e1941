package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucianaf/vspotlight/internal/pkg/apperrors"
)

func TestBuildEvent(t *testing.T) {
	event, err := buildEvent("  Bonfire  ", "2026-09-15", "Lawn", "S'mores and live music")
	require.NoError(t, err)
	assert.Equal(t, "Bonfire", event.Name)
	assert.Equal(t, "Lawn", event.Location)
	assert.Equal(t, "S'mores and live music", event.Description)
	assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), event.Date)
}

func TestBuildEventRejectsBlankFields(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		date      string
		location  string
		desc      string
	}{
		{"blank name", "   ", "2026-09-15", "Lawn", "desc"},
		{"blank location", "Bonfire", "2026-09-15", "", "desc"},
		{"blank description", "Bonfire", "2026-09-15", "Lawn", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildEvent(tt.eventName, tt.date, tt.location, tt.desc)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestBuildEventRejectsBadDate(t *testing.T) {
	_, err := buildEvent("Bonfire", "15/09/2026", "Lawn", "desc")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}
