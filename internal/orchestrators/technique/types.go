package technique

import (
	"github.com/KirkDiggler/rpg-technique-api/internal/engine"
	entities "github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/services/export"
)

// Limits on free text
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 2000
)

// Draft lifecycle types

// CreateTechniqueInput defines the request for creating a technique
type CreateTechniqueInput struct {
	Name        string // Optional
	Description string // Optional
}

// CreateTechniqueOutput defines the response for creating a technique
type CreateTechniqueOutput struct {
	Technique *entities.Technique
	Summary   *engine.Summary
}

// GetTechniqueInput defines the request for getting a technique
type GetTechniqueInput struct {
	TechniqueID string
}

// GetTechniqueOutput defines the response for getting a technique
type GetTechniqueOutput struct {
	Technique *entities.Technique
	Summary   *engine.Summary
}

// DeleteTechniqueInput defines the request for discarding a technique
type DeleteTechniqueInput struct {
	TechniqueID string
}

// DeleteTechniqueOutput defines the response for discarding a technique
type DeleteTechniqueOutput struct{}

// ResetTechniqueInput defines the request for resetting a technique
type ResetTechniqueInput struct {
	TechniqueID string
}

// ResetTechniqueOutput defines the response for resetting a technique
type ResetTechniqueOutput struct {
	Technique *entities.Technique
	Summary   *engine.Summary
}

// Section updates

// SetLevelInput defines the request for choosing a power level
type SetLevelInput struct {
	TechniqueID string
	Level       entities.PowerLevel
}

// SetLevelOutput defines the response for choosing a power level
type SetLevelOutput struct {
	Technique *entities.Technique
	Summary   *engine.Summary
	// RemovedEffects counts the instances cleared by the change
	RemovedEffects int
}

// SetForceInput defines the request for choosing the dominant force
type SetForceInput struct {
	TechniqueID string
	Force       entities.Force // ForceNone clears it
}

// SetForceOutput defines the response for choosing the dominant force.
// Summary.IncompatibleInstanceIDs lists kept instances the new force would
// not admit.
type SetForceOutput struct {
	Technique *entities.Technique
	Summary   *engine.Summary
}

// UpdateDetailsInput defines the request for editing name and description.
// Nil fields are left unchanged.
type UpdateDetailsInput struct {
	TechniqueID string
	Name        *string
	Description *string
}

// UpdateDetailsOutput defines the response for editing name and description
type UpdateDetailsOutput struct {
	Technique *entities.Technique
	Summary   *engine.Summary
}

// SetResistanceCostInput defines the request for overriding the resistance
// cost. Value is raw user input.
type SetResistanceCostInput struct {
	TechniqueID string
	Value       string
}

// SetResistanceCostOutput defines the response for overriding the
// resistance cost
type SetResistanceCostOutput struct {
	Technique *entities.Technique
	Summary   *engine.Summary
}

// Effects

// AddEffectInput defines the request for adding an effect
type AddEffectInput struct {
	TechniqueID string
	EffectID    string
	Choices     []engine.Choice
}

// AddEffectOutput defines the response for adding an effect
type AddEffectOutput struct {
	Technique *entities.Technique
	Instance  *entities.EffectInstance
	Summary   *engine.Summary
}

// RemoveEffectInput defines the request for removing an effect instance
type RemoveEffectInput struct {
	TechniqueID string
	InstanceID  string
}

// RemoveEffectOutput defines the response for removing an effect instance
type RemoveEffectOutput struct {
	Technique *entities.Technique
	Summary   *engine.Summary
}

// Catalog browsing

// ListCatalogInput defines the request for browsing the catalog
type ListCatalogInput struct {
	Force    entities.Force    // Optional, hides restricted effects
	Category entities.Category // Optional
}

// ListCatalogOutput defines the response for browsing the catalog
type ListCatalogOutput struct {
	Categories []entities.Category
	Effects    []*entities.Effect
}

// PreviewEffectInput defines the request for pricing an effect before
// adding it
type PreviewEffectInput struct {
	TechniqueID string // Optional, previews against an empty technique
	EffectID    string
	Choices     []engine.Choice
}

// PreviewEffectOutput defines the response for pricing an effect
type PreviewEffectOutput struct {
	Effect  *entities.Effect
	Preview *engine.Preview
}

// Export

// ExportTextInput defines the request for exporting a technique
type ExportTextInput struct {
	TechniqueID string
}

// ExportTextOutput defines the response for exporting a technique
type ExportTextOutput struct {
	Document *export.Document
}
