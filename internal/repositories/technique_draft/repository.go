// Package techniquedraft stores in-progress techniques for the length of a
// configuration session
package techniquedraft

//go:generate mockgen -destination=mock/mock_repository.go -package=techniquedraftmock github.com/KirkDiggler/rpg-technique-api/internal/repositories/technique_draft Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

// Repository defines the interface for technique draft storage.
// Drafts expire at their ExpiresAt; an expired draft is reported as missing.
type Repository interface {
	// Create stores a new draft
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a draft with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a draft by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the draft doesn't exist or expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing draft
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the draft doesn't exist or expired
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a draft
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the draft doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a draft
type CreateInput struct {
	Technique *technique.Technique
}

// CreateOutput defines the output for creating a draft
type CreateOutput struct {
	Technique *technique.Technique
}

// GetInput defines the input for getting a draft
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a draft
type GetOutput struct {
	Technique *technique.Technique
}

// UpdateInput defines the input for updating a draft
type UpdateInput struct {
	Technique *technique.Technique
}

// UpdateOutput defines the output for updating a draft
type UpdateOutput struct {
	Technique *technique.Technique
}

// DeleteInput defines the input for deleting a draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a draft
type DeleteOutput struct{}

const (
	// DefaultTTL applies to drafts without an expiry
	DefaultTTL = 24 * time.Hour

	errTechniqueNil = "technique cannot be nil"
	errIDEmpty      = "technique ID cannot be empty"
)
