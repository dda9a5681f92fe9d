// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/rpg-technique-api/internal/engine"
	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/testutils"
)

// TechniqueBuilder provides a fluent interface for building test techniques.
// Effects are priced with the real engine so derived fields are consistent.
type TechniqueBuilder struct {
	technique *technique.Technique
}

// NewTechniqueBuilder creates a builder for an empty draft
func NewTechniqueBuilder() *TechniqueBuilder {
	return &TechniqueBuilder{technique: testutils.CreateTestTechnique(testutils.TestTechniqueID)}
}

// WithID sets the technique id
func (b *TechniqueBuilder) WithID(id string) *TechniqueBuilder {
	b.technique.ID = id
	return b
}

// WithName sets the name
func (b *TechniqueBuilder) WithName(name string) *TechniqueBuilder {
	b.technique.Name = name
	return b
}

// WithDescription sets the description
func (b *TechniqueBuilder) WithDescription(description string) *TechniqueBuilder {
	b.technique.Description = description
	return b
}

// WithLevel sets the power level the way the engine does, clearing effects
func (b *TechniqueBuilder) WithLevel(level technique.PowerLevel) *TechniqueBuilder {
	engine.ChangeLevel(b.technique, level)
	return b
}

// WithForce sets the dominant force
func (b *TechniqueBuilder) WithForce(force technique.Force) *TechniqueBuilder {
	b.technique.Force = force
	return b
}

// WithResistanceCost overrides the resistance cost
func (b *TechniqueBuilder) WithResistanceCost(cost int) *TechniqueBuilder {
	b.technique.ResistanceCost = cost
	return b
}

// WithEffect appends an instance of effect resolved from choices. Instance
// ids are <effect id>-<position>.
func (b *TechniqueBuilder) WithEffect(effect *technique.Effect, choices ...engine.Choice) *TechniqueBuilder {
	id := fmt.Sprintf("%s-%d", effect.ID, len(b.technique.Effects)+1)
	engine.AppendEffect(b.technique, id, effect, engine.ResolveSelections(effect, choices))
	return b
}

// WithExpiresAt sets the expiry (unix seconds)
func (b *TechniqueBuilder) WithExpiresAt(expiresAt int64) *TechniqueBuilder {
	b.technique.ExpiresAt = expiresAt
	return b
}

// Build returns a copy of the technique
func (b *TechniqueBuilder) Build() *technique.Technique {
	return b.technique.Clone()
}
