// Package engine prices techniques: it resolves option choices into costs,
// keeps the effect list's secondary surcharges consistent, tracks the budget
// and decides which effects are compatible with the chosen force.
//
// The package level functions are pure. Engine bundles them with the
// instance id generator for callers that own a technique.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-technique-api/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

// Engine applies the pricing rules to a technique owned by the caller
type Engine interface {
	// SetLevel changes the power level, clearing every effect
	// Returns errors.InvalidArgument for unknown levels
	SetLevel(t *technique.Technique, level technique.PowerLevel) error

	// SetForce changes the dominant force; technique.ForceNone clears it.
	// Already added effects are kept.
	// Returns errors.InvalidArgument for unknown forces
	SetForce(t *technique.Technique, force technique.Force) error

	// SetResistanceCost parses user input, coercing garbage to 0
	SetResistanceCost(t *technique.Technique, raw string)

	// ResolveSelections applies choices on top of the effect's defaults
	ResolveSelections(effect *technique.Effect, choices []Choice) []technique.SelectedOption

	// ValidateSelections checks stored selections against the catalog
	// Returns errors.InvalidArgument listing every offending option
	ValidateSelections(effect *technique.Effect, selected []technique.SelectedOption) error

	// CheckAddable enforces the admission rules of the service
	// Returns errors.FailedPrecondition without a level or for an effect
	// restricted under the chosen force
	CheckAddable(t *technique.Technique, effect *technique.Effect) error

	// AddEffect appends a new instance with a fresh id
	AddEffect(
		t *technique.Technique,
		effect *technique.Effect,
		selected []technique.SelectedOption,
	) *technique.EffectInstance

	// RemoveEffect deletes an instance and recomputes the list
	// Returns false when the instance does not exist
	RemoveEffect(t *technique.Technique, instanceID string) bool

	// Summarize computes the derived budget figures
	Summarize(t *technique.Technique) *Summary

	// Preview prices an effect against the technique without changing it
	Preview(t *technique.Technique, effect *technique.Effect, choices []Choice) *Preview
}
