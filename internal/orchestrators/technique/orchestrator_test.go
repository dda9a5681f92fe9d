package technique_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-technique-api/internal/catalog"
	"github.com/KirkDiggler/rpg-technique-api/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-technique-api/internal/engine/mock"
	entities "github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
	"github.com/KirkDiggler/rpg-technique-api/internal/metrics"
	"github.com/KirkDiggler/rpg-technique-api/internal/orchestrators/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-technique-api/internal/pkg/idgen"
	techniquedraft "github.com/KirkDiggler/rpg-technique-api/internal/repositories/technique_draft"
	techniquedraftmock "github.com/KirkDiggler/rpg-technique-api/internal/repositories/technique_draft/mock"
	"github.com/KirkDiggler/rpg-technique-api/internal/testutils"
	"github.com/KirkDiggler/rpg-technique-api/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-technique-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *techniquedraftmock.MockRepository
	catalog  *catalog.Static
	clock    *clock.Manual
	bus      events.EventBus
	recorder *metrics.Recorder
	cfg      *technique.Config

	orchestrator technique.Service
	ctx          context.Context

	mu        sync.Mutex
	published []string
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = techniquedraftmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.clock = clock.NewManual(testutils.TestNow)
	s.recorder = metrics.New()
	s.published = nil

	c, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = c

	eng, err := engine.New(&engine.Config{
		IDGenerator: idgen.NewSequential(""),
		Effects:     s.catalog,
	})
	s.Require().NoError(err)

	s.bus = events.NewBus()
	for _, eventType := range technique.EventTypes() {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.published = append(s.published, e.Type())
			return nil
		})
	}

	s.cfg = &technique.Config{
		Repository:  s.mockRepo,
		Catalog:     s.catalog,
		Engine:      eng,
		IDGenerator: idgen.NewSequential("tech"),
		Clock:       s.clock,
		EventBus:    s.bus,
		Metrics:     s.recorder,
	}
	s.orchestrator, err = technique.NewOrchestrator(s.cfg)
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) effect(id string) *entities.Effect {
	e, ok := s.catalog.Effect(id)
	s.Require().True(ok, "effect %s", id)
	return e
}

func (s *OrchestratorTestSuite) events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.published...)
}

func (s *OrchestratorTestSuite) counter(name, expected string) {
	s.NoError(testutil.GatherAndCompare(s.recorder.Registry(), strings.NewReader(expected), name))
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := technique.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = technique.NewOrchestrator(&technique.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	for _, field := range []string{"Repository", "Catalog", "Engine", "IDGenerator", "Clock", "EventBus", "Metrics"} {
		s.Contains(err.Error(), field)
	}
}

func (s *OrchestratorTestSuite) TestCreateTechnique() {
	var stored *entities.Technique
	mocks.ExpectDraftCreate(s.ctx, s.mockRepo, &stored)

	out, err := s.orchestrator.CreateTechnique(s.ctx, &technique.CreateTechniqueInput{
		Name: testutils.TestTechniqueName,
	})
	s.Require().NoError(err)

	s.Equal("tech_1", out.Technique.ID)
	s.Equal(testutils.TestTechniqueName, out.Technique.Name)
	s.Equal(entities.PowerLevelUnset, out.Technique.Level)
	s.Empty(out.Technique.Effects)
	s.Equal(testutils.TestNow.Unix(), stored.CreatedAt)
	s.Equal(testutils.TestNow.Add(techniquedraft.DefaultTTL).Unix(), stored.ExpiresAt)

	s.Equal(0, out.Summary.Budget)
	s.False(out.Summary.CanAdd)
	s.Equal([]string{technique.EventTechniqueCreated}, s.events())
	s.counter("technique_api_techniques_created_total", `
# HELP technique_api_techniques_created_total Total number of technique drafts created.
# TYPE technique_api_techniques_created_total counter
technique_api_techniques_created_total 1
`)
}

func (s *OrchestratorTestSuite) TestCreateTechniqueUsesConfiguredTTL() {
	s.cfg.DraftTTL = time.Hour
	o, err := technique.NewOrchestrator(s.cfg)
	s.Require().NoError(err)

	var stored *entities.Technique
	mocks.ExpectDraftCreate(s.ctx, s.mockRepo, &stored)

	_, err = o.CreateTechnique(s.ctx, &technique.CreateTechniqueInput{})
	s.Require().NoError(err)
	s.Equal(testutils.TestNow.Add(time.Hour).Unix(), stored.ExpiresAt)
}

func (s *OrchestratorTestSuite) TestCreateTechniqueValidation() {
	_, err := s.orchestrator.CreateTechnique(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.CreateTechnique(s.ctx, &technique.CreateTechniqueInput{
		Name: strings.Repeat("á", technique.MaxNameLength+1),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "name")
}

func (s *OrchestratorTestSuite) TestGetTechnique() {
	t := builders.NewTechniqueBuilder().
		WithLevel(entities.PowerLevel1).
		WithEffect(s.effect("of_bono_ataque"), engine.Choice{OptionID: "bonus_select", Value: "+2"}).
		Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	out, err := s.orchestrator.GetTechnique(s.ctx, &technique.GetTechniqueInput{TechniqueID: t.ID})
	s.Require().NoError(err)

	s.Equal(t.ID, out.Technique.ID)
	s.Len(out.Technique.Effects, 1)
	s.Equal(10, out.Summary.Budget)
	s.Equal(3, out.Summary.TotalCost)
	s.False(out.Summary.OverBudget)
	s.True(out.Summary.CanAdd)
	s.Empty(out.Summary.IncompatibleInstanceIDs)
}

func (s *OrchestratorTestSuite) TestGetTechniqueErrors() {
	s.Run("missing id", func() {
		_, err := s.orchestrator.GetTechnique(s.ctx, &technique.GetTechniqueInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("not found", func() {
		mocks.ExpectDraftMissing(s.ctx, s.mockRepo, "tech_missing", errors.NotFound("technique draft not found"))

		_, err := s.orchestrator.GetTechnique(s.ctx, &technique.GetTechniqueInput{TechniqueID: "tech_missing"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("stored effect left the catalog", func() {
		t := builders.NewTechniqueBuilder().WithLevel(entities.PowerLevel1).Build()
		t.Effects = append(t.Effects, entities.EffectInstance{ID: "gone-1", EffectID: "gone"})
		mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

		_, err := s.orchestrator.GetTechnique(s.ctx, &technique.GetTechniqueInput{TechniqueID: t.ID})
		s.True(errors.IsFailedPrecondition(err))
		s.Equal("gone-1", errors.GetMeta(err)["instance_id"])
	})

	s.Run("stored selection no longer offered", func() {
		t := builders.NewTechniqueBuilder().
			WithLevel(entities.PowerLevel1).
			WithEffect(s.effect("of_bono_ataque")).
			Build()
		t.Effects[0].SelectedOptions[0].Value = "+99"
		mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

		_, err := s.orchestrator.GetTechnique(s.ctx, &technique.GetTechniqueInput{TechniqueID: t.ID})
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) TestDeleteTechnique() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, techniquedraft.DeleteInput{ID: testutils.TestTechniqueID}).
		Return(&techniquedraft.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteTechnique(s.ctx, &technique.DeleteTechniqueInput{
		TechniqueID: testutils.TestTechniqueID,
	})
	s.Require().NoError(err)
	s.Equal([]string{technique.EventTechniqueDeleted}, s.events())
}

func (s *OrchestratorTestSuite) TestDeleteTechniqueNotFound() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, techniquedraft.DeleteInput{ID: "tech_missing"}).
		Return(nil, errors.NotFound("technique draft not found"))

	_, err := s.orchestrator.DeleteTechnique(s.ctx, &technique.DeleteTechniqueInput{TechniqueID: "tech_missing"})
	s.True(errors.IsNotFound(err))
	s.Empty(s.events())
}

func (s *OrchestratorTestSuite) TestResetTechniqueSkipsCatalogCheck() {
	t := builders.NewTechniqueBuilder().
		WithName("Vieja").
		WithLevel(entities.PowerLevel2).
		WithForce(entities.ForceChaos).
		Build()
	t.Effects = append(t.Effects, entities.EffectInstance{ID: "gone-1", EffectID: "gone"})
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	var stored *entities.Technique
	mocks.ExpectDraftStore(s.ctx, s.mockRepo, &stored)

	out, err := s.orchestrator.ResetTechnique(s.ctx, &technique.ResetTechniqueInput{TechniqueID: t.ID})
	s.Require().NoError(err)

	s.Equal(t.ID, stored.ID)
	s.Empty(stored.Name)
	s.Equal(entities.PowerLevelUnset, stored.Level)
	s.Equal(entities.ForceNone, stored.Force)
	s.Empty(stored.Effects)
	s.Equal(t.CreatedAt, stored.CreatedAt)
	s.Equal(0, out.Summary.TotalCost)
	s.Equal([]string{technique.EventTechniqueReset}, s.events())
}

func (s *OrchestratorTestSuite) TestSetLevelClearsEffects() {
	t := builders.NewTechniqueBuilder().
		WithLevel(entities.PowerLevel1).
		WithEffect(s.effect("of_bono_ataque")).
		WithEffect(s.effect("des_agotamiento")).
		WithResistanceCost(9).
		Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	s.clock.Advance(time.Minute)
	var stored *entities.Technique
	mocks.ExpectDraftStore(s.ctx, s.mockRepo, &stored)

	out, err := s.orchestrator.SetLevel(s.ctx, &technique.SetLevelInput{
		TechniqueID: t.ID,
		Level:       entities.PowerLevel2,
	})
	s.Require().NoError(err)

	s.Equal(2, out.RemovedEffects)
	s.Equal(entities.PowerLevel2, stored.Level)
	s.Empty(stored.Effects)
	s.Equal(4, stored.ResistanceCost)
	s.Equal(testutils.TestNow.Add(time.Minute).Unix(), stored.UpdatedAt)
	s.Equal(testutils.TestNow.Add(time.Minute+techniquedraft.DefaultTTL).Unix(), stored.ExpiresAt)
	s.Equal(15, out.Summary.Budget)
	s.Equal([]string{technique.EventLevelChanged}, s.events())
}

func (s *OrchestratorTestSuite) TestSetLevelRejectsUnknownLevel() {
	t := builders.NewTechniqueBuilder().Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	_, err := s.orchestrator.SetLevel(s.ctx, &technique.SetLevelInput{
		TechniqueID: t.ID,
		Level:       "Nivel 9",
	})
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.events())

	_, err = s.orchestrator.SetLevel(s.ctx, &technique.SetLevelInput{TechniqueID: t.ID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSetForceKeepsRestrictedEffects() {
	t := builders.NewTechniqueBuilder().
		WithLevel(entities.PowerLevel1).
		WithEffect(s.effect("of_bono_ataque")).
		WithEffect(s.effect("des_agotamiento")).
		Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	var stored *entities.Technique
	mocks.ExpectDraftStore(s.ctx, s.mockRepo, &stored)

	out, err := s.orchestrator.SetForce(s.ctx, &technique.SetForceInput{
		TechniqueID: t.ID,
		Force:       entities.ForceOrder,
	})
	s.Require().NoError(err)

	s.Equal(entities.ForceOrder, stored.Force)
	s.Len(stored.Effects, 2)
	s.Equal([]string{"of_bono_ataque-1"}, out.Summary.IncompatibleInstanceIDs)
	s.Equal([]string{technique.EventForceChanged}, s.events())
}

func (s *OrchestratorTestSuite) TestSetForceEngineError() {
	mockEngine := enginemock.NewMockEngine(s.ctrl)
	s.cfg.Engine = mockEngine
	o, err := technique.NewOrchestrator(s.cfg)
	s.Require().NoError(err)

	t := builders.NewTechniqueBuilder().Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)
	mockEngine.EXPECT().
		SetForce(gomock.Any(), entities.Force("Luz")).
		Return(errors.InvalidArgument(`unknown force "Luz"`))

	_, err = o.SetForce(s.ctx, &technique.SetForceInput{TechniqueID: t.ID, Force: "Luz"})
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.events())
}

func (s *OrchestratorTestSuite) TestUpdateDetails() {
	t := builders.NewTechniqueBuilder().
		WithName("Antes").
		WithDescription("Se queda").
		Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	var stored *entities.Technique
	mocks.ExpectDraftStore(s.ctx, s.mockRepo, &stored)

	name := "Después"
	_, err := s.orchestrator.UpdateDetails(s.ctx, &technique.UpdateDetailsInput{
		TechniqueID: t.ID,
		Name:        &name,
	})
	s.Require().NoError(err)

	s.Equal("Después", stored.Name)
	s.Equal("Se queda", stored.Description)
	s.Equal([]string{technique.EventDetailsUpdated}, s.events())
}

func (s *OrchestratorTestSuite) TestUpdateDetailsValidation() {
	long := strings.Repeat("x", technique.MaxDescriptionLength+1)
	_, err := s.orchestrator.UpdateDetails(s.ctx, &technique.UpdateDetailsInput{
		TechniqueID: testutils.TestTechniqueID,
		Description: &long,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "description")
}

func (s *OrchestratorTestSuite) TestSetResistanceCost() {
	testCases := []struct {
		raw      string
		expected int
	}{
		{"12", 12},
		{"7 puntos", 7},
		{"abc", 0},
		{"", 0},
	}

	for _, tc := range testCases {
		s.Run(tc.raw, func() {
			t := builders.NewTechniqueBuilder().WithLevel(entities.PowerLevel1).Build()
			mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

			var stored *entities.Technique
			mocks.ExpectDraftStore(s.ctx, s.mockRepo, &stored)

			_, err := s.orchestrator.SetResistanceCost(s.ctx, &technique.SetResistanceCostInput{
				TechniqueID: t.ID,
				Value:       tc.raw,
			})
			s.Require().NoError(err)
			s.Equal(tc.expected, stored.ResistanceCost)
		})
	}
}

func (s *OrchestratorTestSuite) TestAddEffect() {
	t := builders.NewTechniqueBuilder().WithLevel(entities.PowerLevel1).Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	var stored *entities.Technique
	mocks.ExpectDraftStore(s.ctx, s.mockRepo, &stored)

	out, err := s.orchestrator.AddEffect(s.ctx, &technique.AddEffectInput{
		TechniqueID: t.ID,
		EffectID:    "of_bono_ataque",
		Choices: []engine.Choice{
			{OptionID: "bonus_select", Value: "+2"},
			{OptionID: "sacrifice", Value: entities.BooleanOn},
		},
	})
	s.Require().NoError(err)

	s.Equal("of_bono_ataque-1", out.Instance.ID)
	s.False(out.Instance.IsSecondary)
	s.Equal(8, out.Instance.FinalCost)
	s.Require().Len(stored.Effects, 1)
	s.Equal(out.Instance.ID, stored.Effects[0].ID)
	s.Equal(8, out.Summary.TotalCost)
	s.Equal([]string{technique.EventEffectAdded}, s.events())
	s.counter("technique_api_effects_added_total", `
# HELP technique_api_effects_added_total Effect instances added, partitioned by category.
# TYPE technique_api_effects_added_total counter
technique_api_effects_added_total{category="Efectos ofensivos"} 1
`)
}

func (s *OrchestratorTestSuite) TestAddEffectSecondaryAndOverBudget() {
	t := builders.NewTechniqueBuilder().
		WithLevel(entities.PowerLevelSupport).
		WithEffect(s.effect("of_bono_ataque"), engine.Choice{OptionID: "bonus_select", Value: "+2"}).
		Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)
	mocks.ExpectDraftStore(s.ctx, s.mockRepo, nil)

	out, err := s.orchestrator.AddEffect(s.ctx, &technique.AddEffectInput{
		TechniqueID: t.ID,
		EffectID:    "of_bono_ataque",
	})
	s.Require().NoError(err)

	// +1 costs 2, plus the secondary surcharge
	s.True(out.Instance.IsSecondary)
	s.Equal(4, out.Instance.FinalCost)
	s.Equal(7, out.Summary.TotalCost)
	s.Equal(5, out.Summary.Budget)
	s.True(out.Summary.OverBudget)
}

func (s *OrchestratorTestSuite) TestAddEffectNegativeSecondaryHasNoSurcharge() {
	t := builders.NewTechniqueBuilder().
		WithLevel(entities.PowerLevel1).
		WithEffect(s.effect("of_bono_ataque")).
		Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)
	mocks.ExpectDraftStore(s.ctx, s.mockRepo, nil)

	out, err := s.orchestrator.AddEffect(s.ctx, &technique.AddEffectInput{
		TechniqueID: t.ID,
		EffectID:    "des_agotamiento",
	})
	s.Require().NoError(err)

	s.True(out.Instance.IsSecondary)
	s.Equal(-4, out.Instance.FinalCost)
	s.Equal(-2, out.Summary.TotalCost)
}

func (s *OrchestratorTestSuite) TestAddEffectRejected() {
	s.Run("unknown effect", func() {
		_, err := s.orchestrator.AddEffect(s.ctx, &technique.AddEffectInput{
			TechniqueID: testutils.TestTechniqueID,
			EffectID:    "nope",
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("no level", func() {
		t := builders.NewTechniqueBuilder().Build()
		mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

		_, err := s.orchestrator.AddEffect(s.ctx, &technique.AddEffectInput{
			TechniqueID: t.ID,
			EffectID:    "of_bono_ataque",
		})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("restricted by force", func() {
		t := builders.NewTechniqueBuilder().
			WithLevel(entities.PowerLevel1).
			WithForce(entities.ForceOrder).
			Build()
		mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

		_, err := s.orchestrator.AddEffect(s.ctx, &technique.AddEffectInput{
			TechniqueID: t.ID,
			EffectID:    "of_bono_ataque",
		})
		s.True(errors.IsFailedPrecondition(err))
		s.Equal("of_bono_ataque", errors.GetMeta(err)["effect_id"])
	})

	s.Run("missing ids", func() {
		_, err := s.orchestrator.AddEffect(s.ctx, &technique.AddEffectInput{})
		s.Require().Error(err)
		s.Contains(err.Error(), "technique_id")
		s.Contains(err.Error(), "effect_id")
	})

	s.Empty(s.events())
	s.counter("technique_api_effects_rejected_total", `
# HELP technique_api_effects_rejected_total Effect additions refused, partitioned by reason.
# TYPE technique_api_effects_rejected_total counter
technique_api_effects_rejected_total{reason="incompatible_force"} 1
technique_api_effects_rejected_total{reason="no_level"} 1
technique_api_effects_rejected_total{reason="unknown_effect"} 1
`)
}

func (s *OrchestratorTestSuite) TestRemoveEffectPromotesNextInstance() {
	t := builders.NewTechniqueBuilder().
		WithLevel(entities.PowerLevel1).
		WithEffect(s.effect("of_bono_ataque"), engine.Choice{OptionID: "bonus_select", Value: "+2"}).
		WithEffect(s.effect("of_bono_ataque")).
		Build()
	s.Require().Equal(4, t.Effects[1].FinalCost)
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	var stored *entities.Technique
	mocks.ExpectDraftStore(s.ctx, s.mockRepo, &stored)

	out, err := s.orchestrator.RemoveEffect(s.ctx, &technique.RemoveEffectInput{
		TechniqueID: t.ID,
		InstanceID:  "of_bono_ataque-1",
	})
	s.Require().NoError(err)

	s.Require().Len(stored.Effects, 1)
	s.Equal("of_bono_ataque-2", stored.Effects[0].ID)
	s.False(stored.Effects[0].IsSecondary)
	s.Equal(2, stored.Effects[0].FinalCost)
	s.Equal(2, out.Summary.TotalCost)
	s.Equal([]string{technique.EventEffectRemoved}, s.events())
}

func (s *OrchestratorTestSuite) TestRemoveEffectNotFound() {
	t := builders.NewTechniqueBuilder().WithLevel(entities.PowerLevel1).Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	_, err := s.orchestrator.RemoveEffect(s.ctx, &technique.RemoveEffectInput{
		TechniqueID: t.ID,
		InstanceID:  "of_bono_ataque-9",
	})
	s.True(errors.IsNotFound(err))
	s.Empty(s.events())
}

func (s *OrchestratorTestSuite) TestListCatalog() {
	out, err := s.orchestrator.ListCatalog(s.ctx, &technique.ListCatalogInput{})
	s.Require().NoError(err)
	s.Equal(entities.Categories(), out.Categories)
	s.Len(out.Effects, len(s.catalog.Effects()))

	out, err = s.orchestrator.ListCatalog(s.ctx, &technique.ListCatalogInput{
		Force:    entities.ForceOrder,
		Category: entities.CategoryOffensive,
	})
	s.Require().NoError(err)
	s.NotEmpty(out.Effects)
	for _, e := range out.Effects {
		s.Equal(entities.CategoryOffensive, e.Category)
		s.False(e.RestrictedFor(entities.ForceOrder), e.ID)
		s.NotEqual("of_bono_ataque", e.ID)
	}

	_, err = s.orchestrator.ListCatalog(s.ctx, &technique.ListCatalogInput{Force: "Luz", Category: "Magia"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "force")
	s.Contains(err.Error(), "category")
}

func (s *OrchestratorTestSuite) TestPreviewEffect() {
	s.Run("without a technique", func() {
		out, err := s.orchestrator.PreviewEffect(s.ctx, &technique.PreviewEffectInput{
			EffectID: "of_bono_ataque",
			Choices:  []engine.Choice{{OptionID: "bonus_select", Value: "+3"}},
		})
		s.Require().NoError(err)

		s.Equal("of_bono_ataque", out.Effect.ID)
		s.Equal(5, out.Preview.PreSurchargeCost)
		s.False(out.Preview.IsSecondary)
		s.Equal(5, out.Preview.FinalCost)
		s.False(out.Preview.CanAdd)
		s.True(out.Preview.Compatible)
	})

	s.Run("against a technique", func() {
		t := builders.NewTechniqueBuilder().
			WithLevel(entities.PowerLevel1).
			WithForce(entities.ForceOrder).
			WithEffect(s.effect("des_agotamiento")).
			Build()
		mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

		out, err := s.orchestrator.PreviewEffect(s.ctx, &technique.PreviewEffectInput{
			TechniqueID: t.ID,
			EffectID:    "of_bono_ataque",
		})
		s.Require().NoError(err)

		s.True(out.Preview.IsSecondary)
		s.Equal(engine.SecondarySurcharge, out.Preview.Surcharge)
		s.Equal(4, out.Preview.FinalCost)
		s.True(out.Preview.CanAdd)
		s.False(out.Preview.Compatible)
	})

	s.Run("unknown effect", func() {
		_, err := s.orchestrator.PreviewEffect(s.ctx, &technique.PreviewEffectInput{EffectID: "nope"})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestExportText() {
	t := builders.NewTechniqueBuilder().
		WithLevel(entities.PowerLevel1).
		WithEffect(s.effect("des_agotamiento")).
		Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	out, err := s.orchestrator.ExportText(s.ctx, &technique.ExportTextInput{TechniqueID: t.ID})
	s.Require().NoError(err)

	s.Equal("llamarada-carmesi", out.Document.Slug)
	s.Contains(out.Document.Text, "- Agotamiento (1 ronda): -4 PC")
	s.Contains(out.Document.Text, "PC Gastados: -4 / 10")
}

func (s *OrchestratorTestSuite) TestExportTextRequiresLevel() {
	t := builders.NewTechniqueBuilder().Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	_, err := s.orchestrator.ExportText(s.ctx, &technique.ExportTextInput{TechniqueID: t.ID})
	s.True(errors.IsFailedPrecondition(err))
	s.counter("technique_api_exports_total", `
# HELP technique_api_exports_total Text exports, partitioned by result.
# TYPE technique_api_exports_total counter
technique_api_exports_total{result="failure"} 1
`)
}

// Mutations on one technique are serialized, so concurrent additions are
// never lost.
func (s *OrchestratorTestSuite) TestAddEffectRejectsInvalidSelections() {
	mockEngine := enginemock.NewMockEngine(s.ctrl)
	s.cfg.Engine = mockEngine
	o, err := technique.NewOrchestrator(s.cfg)
	s.Require().NoError(err)

	t := builders.NewTechniqueBuilder().WithLevel(entities.PowerLevel1).Build()
	mocks.ExpectDraftLoad(s.ctx, s.mockRepo, t)

	effect := s.effect("pen_estado_alterado")
	selected := []entities.SelectedOption{
		{OptionID: "estado_select", Name: "Estado", Value: "Quemado", Cost: 6},
		{OptionID: "extra_estado_1", Name: "Estado Adicional 1", Value: "Quemado", Cost: 6},
	}
	mockEngine.EXPECT().CheckAddable(gomock.Any(), effect).Return(nil)
	mockEngine.EXPECT().ResolveSelections(effect, gomock.Any()).Return(selected)
	mockEngine.EXPECT().
		ValidateSelections(effect, selected).
		Return(errors.InvalidArgument(`extra_estado_1: state "Quemado" is already chosen`))

	_, err = o.AddEffect(s.ctx, &technique.AddEffectInput{TechniqueID: t.ID, EffectID: effect.ID})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "pen_estado_alterado")
	s.Empty(s.events())
	s.counter("technique_api_effects_rejected_total", `
# HELP technique_api_effects_rejected_total Effect additions refused, partitioned by reason.
# TYPE technique_api_effects_rejected_total counter
technique_api_effects_rejected_total{reason="invalid_selection"} 1
`)
}

func (s *OrchestratorTestSuite) TestAddedEffectStaysReadable() {
	s.cfg.Repository = techniquedraft.NewInMemory(s.clock)
	o, err := technique.NewOrchestrator(s.cfg)
	s.Require().NoError(err)

	created, err := o.CreateTechnique(s.ctx, &technique.CreateTechniqueInput{Name: testutils.TestTechniqueName})
	s.Require().NoError(err)
	id := created.Technique.ID
	_, err = o.SetLevel(s.ctx, &technique.SetLevelInput{TechniqueID: id, Level: entities.PowerLevel3})
	s.Require().NoError(err)

	added, err := o.AddEffect(s.ctx, &technique.AddEffectInput{
		TechniqueID: id,
		EffectID:    "pen_estado_alterado",
		Choices: []engine.Choice{
			{OptionID: "multiple_estados", Value: "2 estados"},
			{OptionID: "extra_estado_1", Value: "Quemado"},
			{OptionID: "estado_select", Value: "Quemado"},
		},
	})
	s.Require().NoError(err)

	states := map[string]string{}
	for _, so := range added.Instance.SelectedOptions {
		states[so.OptionID] = so.Value
	}
	s.Equal("Quemado", states["estado_select"])
	s.NotContains(states, "extra_estado_1")

	got, err := o.GetTechnique(s.ctx, &technique.GetTechniqueInput{TechniqueID: id})
	s.Require().NoError(err)
	s.Require().Len(got.Technique.Effects, 1)
	s.Equal(added.Instance.FinalCost, got.Technique.Effects[0].FinalCost)

	_, err = o.ExportText(s.ctx, &technique.ExportTextInput{TechniqueID: id})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestConcurrentAddEffect() {
	s.cfg.Repository = techniquedraft.NewInMemory(s.clock)
	o, err := technique.NewOrchestrator(s.cfg)
	s.Require().NoError(err)

	created, err := o.CreateTechnique(s.ctx, &technique.CreateTechniqueInput{})
	s.Require().NoError(err)
	_, err = o.SetLevel(s.ctx, &technique.SetLevelInput{
		TechniqueID: created.Technique.ID,
		Level:       entities.PowerLevel3,
	})
	s.Require().NoError(err)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := o.AddEffect(s.ctx, &technique.AddEffectInput{
				TechniqueID: created.Technique.ID,
				EffectID:    "des_agotamiento",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}

	out, err := o.GetTechnique(s.ctx, &technique.GetTechniqueInput{TechniqueID: created.Technique.ID})
	s.Require().NoError(err)
	s.Len(out.Technique.Effects, workers)
	s.Equal(-4*workers, out.Summary.TotalCost)
}
