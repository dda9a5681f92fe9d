package technique_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

type TechniqueTestSuite struct {
	suite.Suite
}

func TestTechniqueSuite(t *testing.T) {
	suite.Run(t, new(TechniqueTestSuite))
}

func (s *TechniqueTestSuite) TestPowerLevelLookup() {
	testCases := []struct {
		level      technique.PowerLevel
		resistance int
		budget     int
	}{
		{technique.PowerLevelSupport, 1, 5},
		{technique.PowerLevel1, 2, 10},
		{technique.PowerLevel2, 4, 15},
		{technique.PowerLevel3, 6, 25},
	}

	for _, tc := range testCases {
		s.Run(string(tc.level), func() {
			info, ok := tc.level.Info()
			s.Require().True(ok)
			s.Equal(tc.resistance, info.ResistanceCost)
			s.Equal(tc.budget, info.Budget)
		})
	}

	s.False(technique.PowerLevelUnset.IsValid())
	s.Len(technique.PowerLevels(), 4)
}

func (s *TechniqueTestSuite) TestParsePowerLevel() {
	level, ok := technique.ParsePowerLevel("support")
	s.True(ok)
	s.Equal(technique.PowerLevelSupport, level)

	level, ok = technique.ParsePowerLevel("Nivel 2")
	s.True(ok)
	s.Equal(technique.PowerLevel2, level)

	_, ok = technique.ParsePowerLevel("Nivel 4")
	s.False(ok)
}

func (s *TechniqueTestSuite) TestCategoriesInDisplayOrder() {
	categories := technique.Categories()
	s.Require().Len(categories, 9)
	s.Equal(technique.CategoryOffensive, categories[0])
	s.Equal(technique.CategoryDisadvantages, categories[8])
}

func (s *TechniqueTestSuite) TestForces() {
	s.Len(technique.Forces(), 6)
	s.True(technique.ForceChaos.IsValid())
	s.False(technique.ForceNone.IsValid())
}

func (s *TechniqueTestSuite) TestExtraSlotRule() {
	rule := &technique.ExtraSlotRule{SlotPrefix: "extra_estado_", SlotName: "Estado Adicional {n}"}

	s.Equal("extra_estado_2", rule.SlotID(2))
	s.Equal("Estado Adicional 3", rule.SlotDisplayName(3))

	n, ok := rule.SlotIndex("extra_estado_3")
	s.True(ok)
	s.Equal(3, n)

	_, ok = rule.SlotIndex("estado_select")
	s.False(ok)
	_, ok = rule.SlotIndex("extra_estado_0")
	s.False(ok)
}

func (s *TechniqueTestSuite) TestEffectLookups() {
	sacrifice := &technique.BooleanOption{ID: "sacrifice", Cost: 5}
	effect := &technique.Effect{
		ID:           "of_bono_ataque",
		Restrictions: []technique.Force{technique.ForceOrder},
		Options:      []technique.Option{sacrifice},
	}

	opt, ok := effect.Option("sacrifice")
	s.True(ok)
	s.Same(sacrifice, opt)

	_, ok = effect.Option("missing")
	s.False(ok)

	s.True(effect.RestrictedFor(technique.ForceOrder))
	s.False(effect.RestrictedFor(technique.ForceChaos))
}

func (s *TechniqueTestSuite) TestCloneIsDeep() {
	t := technique.New("tech_1")
	t.Effects = append(t.Effects, technique.EffectInstance{
		ID:              "inst_1",
		SelectedOptions: []technique.SelectedOption{{OptionID: "bonus_select", Value: "+1", Cost: 2}},
	})

	clone := t.Clone()
	clone.Effects[0].SelectedOptions[0].Cost = 99
	clone.Effects = append(clone.Effects, technique.EffectInstance{ID: "inst_2"})

	s.Equal(2, t.Effects[0].SelectedOptions[0].Cost)
	s.Len(t.Effects, 1)
}

func (s *TechniqueTestSuite) TestReset() {
	t := technique.New("tech_1")
	t.Name = "Llamarada"
	t.Level = technique.PowerLevel1
	t.Force = technique.ForceChaos
	t.ResistanceCost = 2
	t.Effects = append(t.Effects, technique.EffectInstance{ID: "inst_1"})

	t.Reset()

	s.Equal("tech_1", t.ID)
	s.Empty(t.Name)
	s.False(t.HasLevel())
	s.Equal(technique.ForceNone, t.Force)
	s.Zero(t.ResistanceCost)
	s.Empty(t.Effects)
}

func (s *TechniqueTestSuite) TestInstanceCosts() {
	inst := technique.EffectInstance{
		BaseCost: 3,
		SelectedOptions: []technique.SelectedOption{
			{OptionID: "a", Cost: 2},
			{OptionID: "b", Cost: -1},
		},
	}

	s.Equal(1, inst.OptionsCost())
	s.Equal(4, inst.PreSurchargeCost())
}
