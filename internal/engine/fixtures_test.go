package engine_test

import (
	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

// Small hand built effects keep the arithmetic in these tests obvious
var (
	boostOption = &technique.BooleanOption{ID: "boost", Name: "Potenciar (+2 PC)", Cost: 2}

	strikeEffect = &technique.Effect{
		ID:       "strike",
		Category: technique.CategoryOffensive,
		Name:     "Golpe",
		BaseCost: 3,
		Options:  []technique.Option{boostOption},
	}

	guardEffect = &technique.Effect{
		ID:           "guard",
		Category:     technique.CategoryDefensive,
		Name:         "Guardia",
		BaseCost:     3,
		Restrictions: []technique.Force{technique.ForceDestruction},
	}

	rangeOption = &technique.SelectOption{
		ID:   "range",
		Name: "Alcance",
		Values: []technique.OptionValue{
			{Label: "5 metros", Cost: 2},
			{Label: "10 metros", Cost: 4},
		},
	}

	shotEffect = &technique.Effect{
		ID:       "shot",
		Category: technique.CategoryOffensive,
		Name:     "Disparo",
		Options:  []technique.Option{rangeOption, boostOption},
	}

	drawbackEffect = &technique.Effect{
		ID:       "drawback",
		Category: technique.CategoryDisadvantages,
		Name:     "Agotamiento",
		BaseCost: -4,
	}

	freeEffect = &technique.Effect{
		ID:       "free",
		Category: technique.CategoryMiscellaneous,
		Name:     "Gratis",
	}
)

type lookup map[string]*technique.Effect

func (l lookup) Effect(id string) (*technique.Effect, bool) {
	e, ok := l[id]
	return e, ok
}

func fixtureLookup() lookup {
	return lookup{
		strikeEffect.ID:   strikeEffect,
		guardEffect.ID:    guardEffect,
		shotEffect.ID:     shotEffect,
		drawbackEffect.ID: drawbackEffect,
		freeEffect.ID:     freeEffect,
	}
}

func on(optionID string) []technique.SelectedOption {
	return []technique.SelectedOption{{OptionID: optionID, Value: technique.BooleanOn, Cost: 2}}
}
