// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	techniquedraft "github.com/KirkDiggler/rpg-technique-api/internal/repositories/technique_draft"
	techniquedraftmock "github.com/KirkDiggler/rpg-technique-api/internal/repositories/technique_draft/mock"
)

// ExpectDraftLoad makes the repository return a copy of t when it is read
func ExpectDraftLoad(ctx context.Context, repo *techniquedraftmock.MockRepository, t *technique.Technique) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, techniquedraft.GetInput{ID: t.ID}).
		Return(&techniquedraft.GetOutput{Technique: t.Clone()}, nil)
}

// ExpectDraftMissing makes the repository report id as missing
func ExpectDraftMissing(
	ctx context.Context,
	repo *techniquedraftmock.MockRepository,
	id string,
	err error,
) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, techniquedraft.GetInput{ID: id}).
		Return(nil, err)
}

// ExpectDraftStore accepts one update and echoes the stored technique back.
// When captured is not nil it receives the stored value.
func ExpectDraftStore(
	ctx context.Context,
	repo *techniquedraftmock.MockRepository,
	captured **technique.Technique,
) *gomock.Call {
	return repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input techniquedraft.UpdateInput) (*techniquedraft.UpdateOutput, error) {
			if captured != nil {
				*captured = input.Technique.Clone()
			}
			return &techniquedraft.UpdateOutput{Technique: input.Technique.Clone()}, nil
		})
}

// ExpectDraftCreate accepts one create and echoes the new technique back
func ExpectDraftCreate(
	ctx context.Context,
	repo *techniquedraftmock.MockRepository,
	captured **technique.Technique,
) *gomock.Call {
	return repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input techniquedraft.CreateInput) (*techniquedraft.CreateOutput, error) {
			if captured != nil {
				*captured = input.Technique.Clone()
			}
			return &techniquedraft.CreateOutput{Technique: input.Technique.Clone()}, nil
		})
}
