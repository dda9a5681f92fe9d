package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-technique-api/internal/pkg/clock"
)

func TestRealIsUTC(t *testing.T) {
	now := clock.New().Now()
	assert.Equal(t, time.UTC, now.Location())
}

func TestManual(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewManual(start)

	assert.Equal(t, start, c.Now())

	c.Advance(25 * time.Hour)
	assert.Equal(t, start.Add(25*time.Hour), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
