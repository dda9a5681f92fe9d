package v1alpha1

import (
	techniquev1alpha1 "github.com/KirkDiggler/rpg-technique-api/gen/go/technique/api/v1alpha1"
	"github.com/KirkDiggler/rpg-technique-api/internal/engine"
	entities "github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/services/export"
)

func convertTechniqueToProto(t *entities.Technique) *techniquev1alpha1.Technique {
	if t == nil {
		return nil
	}

	effects := make([]*techniquev1alpha1.EffectInstance, 0, len(t.Effects))
	for i := range t.Effects {
		effects = append(effects, convertInstanceToProto(&t.Effects[i]))
	}

	return &techniquev1alpha1.Technique{
		Id:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		Level:          string(t.Level),
		Force:          string(t.Force),
		ResistanceCost: int32(t.ResistanceCost),
		Effects:        effects,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		ExpiresAt:      t.ExpiresAt,
	}
}

func convertInstanceToProto(inst *entities.EffectInstance) *techniquev1alpha1.EffectInstance {
	if inst == nil {
		return nil
	}

	return &techniquev1alpha1.EffectInstance{
		Id:              inst.ID,
		EffectId:        inst.EffectID,
		EffectName:      inst.EffectName,
		Category:        string(inst.Category),
		BaseCost:        int32(inst.BaseCost),
		SelectedOptions: convertSelectionsToProto(inst.SelectedOptions),
		IsSecondary:     inst.IsSecondary,
		FinalCost:       int32(inst.FinalCost),
	}
}

func convertSelectionsToProto(selected []entities.SelectedOption) []*techniquev1alpha1.SelectedOption {
	out := make([]*techniquev1alpha1.SelectedOption, 0, len(selected))
	for _, so := range selected {
		out = append(out, &techniquev1alpha1.SelectedOption{
			OptionId: so.OptionID,
			Name:     so.Name,
			Value:    so.Value,
			Cost:     int32(so.Cost),
		})
	}
	return out
}

func convertSummaryToProto(s *engine.Summary) *techniquev1alpha1.Summary {
	if s == nil {
		return nil
	}

	return &techniquev1alpha1.Summary{
		Budget:                  int32(s.Budget),
		TotalCost:               int32(s.TotalCost),
		OverBudget:              s.OverBudget,
		CanAdd:                  s.CanAdd,
		IncompatibleInstanceIds: s.IncompatibleInstanceIDs,
	}
}

func convertEffectToProto(e *entities.Effect) *techniquev1alpha1.Effect {
	if e == nil {
		return nil
	}

	restrictions := make([]string, 0, len(e.Restrictions))
	for _, f := range e.Restrictions {
		restrictions = append(restrictions, string(f))
	}

	return &techniquev1alpha1.Effect{
		Id:           e.ID,
		Category:     string(e.Category),
		Name:         e.Name,
		Description:  e.Description,
		BaseCost:     int32(e.BaseCost),
		Restrictions: restrictions,
		Options:      convertOptionsToProto(e.Options),
	}
}

func convertOptionsToProto(options []entities.Option) []*techniquev1alpha1.Option {
	out := make([]*techniquev1alpha1.Option, 0, len(options))
	for _, opt := range options {
		out = append(out, convertOptionToProto(opt))
	}
	return out
}

func convertOptionToProto(opt entities.Option) *techniquev1alpha1.Option {
	o := &techniquev1alpha1.Option{
		Id:          opt.GetID(),
		Kind:        string(opt.Kind()),
		Name:        opt.GetName(),
		Description: opt.GetDescription(),
	}

	switch v := opt.(type) {
	case *entities.SelectOption:
		o.Values = make([]*techniquev1alpha1.OptionValue, 0, len(v.Values))
		for _, val := range v.Values {
			o.Values = append(o.Values, &techniquev1alpha1.OptionValue{
				Label: val.Label,
				Cost:  int32(val.Cost),
			})
		}
	case *entities.BooleanOption:
		o.Cost = int32(v.Cost)
	}

	return o
}

func convertLevelsToProto(levels []entities.LevelInfo) []*techniquev1alpha1.Level {
	out := make([]*techniquev1alpha1.Level, 0, len(levels))
	for _, l := range levels {
		out = append(out, &techniquev1alpha1.Level{
			Level:          string(l.Level),
			ResistanceCost: int32(l.ResistanceCost),
			Budget:         int32(l.Budget),
		})
	}
	return out
}

func convertForcesToProto(forces []entities.ForceInfo) []*techniquev1alpha1.Force {
	out := make([]*techniquev1alpha1.Force, 0, len(forces))
	for _, f := range forces {
		out = append(out, &techniquev1alpha1.Force{
			Force:       string(f.Force),
			Description: f.Description,
			Color:       f.Color,
		})
	}
	return out
}

func convertChoicesFromProto(choices []*techniquev1alpha1.Choice) []engine.Choice {
	out := make([]engine.Choice, 0, len(choices))
	for _, c := range choices {
		if c == nil {
			continue
		}
		out = append(out, engine.Choice{OptionID: c.GetOptionId(), Value: c.GetValue()})
	}
	return out
}

// parseForce accepts the display name in any case, with or without accents
func parseForce(s string) (entities.Force, bool) {
	if s == "" {
		return entities.ForceNone, true
	}
	want := export.Slug(s)
	for _, info := range entities.Forces() {
		if export.Slug(string(info.Force)) == want {
			return info.Force, true
		}
	}
	return entities.Force(s), false
}

// parseCategory accepts the display name in any case, with or without
// accents
func parseCategory(s string) (entities.Category, bool) {
	if s == "" {
		return "", true
	}
	want := export.Slug(s)
	for _, c := range entities.Categories() {
		if export.Slug(string(c)) == want {
			return c, true
		}
	}
	return entities.Category(s), false
}
