package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

const (
	// TestTechniqueID is the default technique id of fixtures
	TestTechniqueID = "tech_test_001"

	// TestTechniqueName is the default technique name of fixtures
	TestTechniqueName = "Llamarada Carmesí"
)

// TestNow is the fixed instant used with manual clocks
var TestNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

// CreateTestTechnique returns an empty draft created at TestNow that
// expires a day later
func CreateTestTechnique(id string) *technique.Technique {
	t := technique.New(id)
	t.CreatedAt = TestNow.Unix()
	t.UpdatedAt = TestNow.Unix()
	t.ExpiresAt = TestNow.Add(24 * time.Hour).Unix()
	return t
}
