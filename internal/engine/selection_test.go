package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-technique-api/internal/engine"
	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

type SelectionTestSuite struct {
	suite.Suite
	technique *technique.Technique
}

func TestSelectionSuite(t *testing.T) {
	suite.Run(t, new(SelectionTestSuite))
}

func (s *SelectionTestSuite) SetupTest() {
	s.technique = technique.New("tech_1")
	engine.ChangeLevel(s.technique, technique.PowerLevelSupport)
}

func (s *SelectionTestSuite) add(effect *technique.Effect, selected []technique.SelectedOption) *technique.EffectInstance {
	id := fmt.Sprintf("%s-%d", effect.ID, len(s.technique.Effects)+1)
	return engine.AppendEffect(s.technique, id, effect, selected)
}

func (s *SelectionTestSuite) assertPositions() {
	for i, inst := range s.technique.Effects {
		s.Equal(i > 0, inst.IsSecondary, "instance %d", i)
		pre := inst.PreSurchargeCost()
		surcharge := 0
		if inst.IsSecondary && pre > 0 {
			surcharge = 2
		}
		s.Equal(pre+surcharge, inst.FinalCost, "instance %d", i)
	}
}

func (s *SelectionTestSuite) TestSupportLevelExample() {
	first := s.add(strikeEffect, on("boost"))

	s.False(first.IsSecondary)
	s.Equal(5, first.FinalCost)
	s.Equal(5, engine.TotalCost(s.technique.Effects))
	s.False(engine.IsOverBudget(engine.TotalCost(s.technique.Effects), engine.BudgetFor(s.technique.Level)))

	second := s.add(guardEffect, nil)

	s.True(second.IsSecondary)
	s.Equal(5, second.FinalCost)
	s.Equal(10, engine.TotalCost(s.technique.Effects))
	s.True(engine.IsOverBudget(10, engine.BudgetFor(s.technique.Level)))
}

func (s *SelectionTestSuite) TestNonPositiveSecondaryHasNoSurcharge() {
	s.add(strikeEffect, nil)
	drawback := s.add(drawbackEffect, nil)
	free := s.add(freeEffect, nil)

	s.True(drawback.IsSecondary)
	s.Equal(-4, drawback.FinalCost)
	s.True(free.IsSecondary)
	s.Equal(0, free.FinalCost)
	s.Equal(-1, engine.TotalCost(s.technique.Effects))
}

func (s *SelectionTestSuite) TestRemovingFirstPromotesSecond() {
	first := s.add(strikeEffect, nil)
	s.add(guardEffect, nil)
	s.add(strikeEffect, on("boost"))
	s.Equal(3+5+7, engine.TotalCost(s.technique.Effects))

	s.True(engine.RemoveInstance(s.technique, first.ID))

	s.Require().Len(s.technique.Effects, 2)
	s.Equal("guard", s.technique.Effects[0].EffectID)
	s.False(s.technique.Effects[0].IsSecondary)
	s.Equal(3, s.technique.Effects[0].FinalCost)
	s.Equal(3+7, engine.TotalCost(s.technique.Effects))
	s.assertPositions()
}

func (s *SelectionTestSuite) TestRemoveAndReAddKeepsCost() {
	s.add(strikeEffect, nil)
	last := s.add(shotEffect, engine.DefaultSelections(shotEffect))
	before := last.FinalCost

	s.True(engine.RemoveInstance(s.technique, last.ID))
	again := s.add(shotEffect, engine.DefaultSelections(shotEffect))

	s.Equal(before, again.FinalCost)
}

func (s *SelectionTestSuite) TestRemoveUnknownLeavesListUntouched() {
	s.add(strikeEffect, nil)
	s.add(guardEffect, nil)
	before := append([]technique.EffectInstance(nil), s.technique.Effects...)

	s.False(engine.RemoveInstance(s.technique, "missing"))
	s.Equal(before, s.technique.Effects)
}

func (s *SelectionTestSuite) TestInvariantsHoldThroughMutations() {
	effects := []*technique.Effect{strikeEffect, drawbackEffect, guardEffect, freeEffect, shotEffect}
	for _, e := range effects {
		s.add(e, engine.DefaultSelections(e))
		s.assertPositions()
	}

	for len(s.technique.Effects) > 0 {
		middle := s.technique.Effects[len(s.technique.Effects)/2].ID
		s.Require().True(engine.RemoveInstance(s.technique, middle))
		s.assertPositions()

		sum := 0
		for _, inst := range s.technique.Effects {
			sum += inst.FinalCost
		}
		s.Equal(sum, engine.TotalCost(s.technique.Effects))
	}
	s.Zero(engine.TotalCost(s.technique.Effects))
}

func (s *SelectionTestSuite) TestAppendCopiesSelections() {
	selected := on("boost")
	inst := s.add(strikeEffect, selected)

	selected[0].Cost = 100
	s.Equal(2, inst.SelectedOptions[0].Cost)
	s.Equal("Golpe", inst.EffectName)
	s.Equal(technique.CategoryOffensive, inst.Category)
}
