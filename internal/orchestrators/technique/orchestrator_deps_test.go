package technique_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/rpg-technique-api/internal/catalog/mock"
	"github.com/KirkDiggler/rpg-technique-api/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-technique-api/internal/engine/mock"
	entities "github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/metrics"
	"github.com/KirkDiggler/rpg-technique-api/internal/orchestrators/technique"
	clockmock "github.com/KirkDiggler/rpg-technique-api/internal/pkg/clock/mock"
	idgenmock "github.com/KirkDiggler/rpg-technique-api/internal/pkg/idgen/mock"
	techniquedraft "github.com/KirkDiggler/rpg-technique-api/internal/repositories/technique_draft"
	techniquedraftmock "github.com/KirkDiggler/rpg-technique-api/internal/repositories/technique_draft/mock"
	"github.com/KirkDiggler/rpg-technique-api/internal/testutils"
	"github.com/KirkDiggler/rpg-technique-api/internal/testutils/mocks"
)

type mockedDeps struct {
	repo    *techniquedraftmock.MockRepository
	catalog *catalogmock.MockCatalog
	engine  *enginemock.MockEngine
	idGen   *idgenmock.MockGenerator
	clock   *clockmock.MockClock
}

func newMockedOrchestrator(t *testing.T) (technique.Service, *mockedDeps) {
	ctrl := gomock.NewController(t)
	deps := &mockedDeps{
		repo:    techniquedraftmock.NewMockRepository(ctrl),
		catalog: catalogmock.NewMockCatalog(ctrl),
		engine:  enginemock.NewMockEngine(ctrl),
		idGen:   idgenmock.NewMockGenerator(ctrl),
		clock:   clockmock.NewMockClock(ctrl),
	}

	o, err := technique.NewOrchestrator(&technique.Config{
		Repository:  deps.repo,
		Catalog:     deps.catalog,
		Engine:      deps.engine,
		IDGenerator: deps.idGen,
		Clock:       deps.clock,
		EventBus:    events.NewBus(),
		Metrics:     metrics.New(),
	})
	require.NoError(t, err)
	return o, deps
}

func TestCreateTechniqueTakesIDAndTimeFromDependencies(t *testing.T) {
	ctx := context.Background()
	o, deps := newMockedOrchestrator(t)

	deps.idGen.EXPECT().Generate().Return(testutils.TestTechniqueID)
	deps.clock.EXPECT().Now().Return(testutils.TestNow).AnyTimes()
	deps.engine.EXPECT().Summarize(gomock.Any()).Return(&engine.Summary{})

	var stored *entities.Technique
	mocks.ExpectDraftCreate(ctx, deps.repo, &stored)

	out, err := o.CreateTechnique(ctx, &technique.CreateTechniqueInput{Name: testutils.TestTechniqueName})
	require.NoError(t, err)

	assert.Equal(t, testutils.TestTechniqueID, out.Technique.ID)
	require.NotNil(t, stored)
	assert.Equal(t, testutils.TestTechniqueID, stored.ID)
	assert.Equal(t, testutils.TestNow.Unix(), stored.CreatedAt)
	assert.Equal(t, testutils.TestNow.Unix(), stored.UpdatedAt)
	assert.Equal(t, testutils.TestNow.Add(techniquedraft.DefaultTTL).Unix(), stored.ExpiresAt)
}

func TestListCatalogFiltersCatalogEntries(t *testing.T) {
	ctx := context.Background()
	o, deps := newMockedOrchestrator(t)

	open := &entities.Effect{ID: "open", Category: entities.CategorySupport, Name: "Abierto"}
	restricted := &entities.Effect{
		ID:           "restricted",
		Category:     entities.CategorySupport,
		Name:         "Restringido",
		Restrictions: []entities.Force{entities.ForceChaos},
	}

	deps.catalog.EXPECT().Categories().Return([]entities.Category{entities.CategorySupport}).Times(2)
	deps.catalog.EXPECT().
		EffectsByCategory(entities.CategorySupport).
		Return([]*entities.Effect{open, restricted}).
		Times(2)

	out, err := o.ListCatalog(ctx, &technique.ListCatalogInput{
		Category: entities.CategorySupport,
		Force:    entities.ForceChaos,
	})
	require.NoError(t, err)
	assert.Equal(t, []entities.Category{entities.CategorySupport}, out.Categories)
	assert.Equal(t, []*entities.Effect{open}, out.Effects)

	out, err = o.ListCatalog(ctx, &technique.ListCatalogInput{Category: entities.CategorySupport})
	require.NoError(t, err)
	assert.Equal(t, []*entities.Effect{open, restricted}, out.Effects)
}
