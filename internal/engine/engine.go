package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
	"github.com/KirkDiggler/rpg-technique-api/internal/pkg/idgen"
)

// Config holds the dependencies of the engine
type Config struct {
	// IDGenerator produces the suffix of effect instance ids
	IDGenerator idgen.Generator
	// Effects resolves the catalog entries of added instances
	Effects EffectLookup
}

// Validate checks the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if cfg.Effects == nil {
		vb.RequiredField("Effects")
	}

	return vb.Build()
}

type engine struct {
	idGen   idgen.Generator
	effects EffectLookup
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid engine config")
	}

	return &engine{
		idGen:   cfg.IDGenerator,
		effects: cfg.Effects,
	}, nil
}

func (e *engine) SetLevel(t *technique.Technique, level technique.PowerLevel) error {
	if !level.IsValid() {
		return errors.InvalidArgumentf("unknown power level %q", level)
	}
	ChangeLevel(t, level)
	return nil
}

func (e *engine) SetForce(t *technique.Technique, force technique.Force) error {
	if force != technique.ForceNone && !force.IsValid() {
		return errors.InvalidArgumentf("unknown force %q", force)
	}
	t.Force = force
	return nil
}

func (e *engine) SetResistanceCost(t *technique.Technique, raw string) {
	t.ResistanceCost = ParseResistanceCost(raw)
}

func (e *engine) ResolveSelections(effect *technique.Effect, choices []Choice) []technique.SelectedOption {
	return ResolveSelections(effect, choices)
}

func (e *engine) ValidateSelections(effect *technique.Effect, selected []technique.SelectedOption) error {
	return ValidateSelections(effect, selected)
}

func (e *engine) CheckAddable(t *technique.Technique, effect *technique.Effect) error {
	if !CanAdd(t) {
		return errors.FailedPrecondition("choose a power level before adding effects")
	}
	if !IsCompatible(effect, t.Force) {
		return errors.FailedPreconditionf("effect %s is not available for force %s", effect.ID, t.Force).
			WithMeta("effect_id", effect.ID).
			WithMeta("force", string(t.Force))
	}
	return nil
}

func (e *engine) AddEffect(
	t *technique.Technique,
	effect *technique.Effect,
	selected []technique.SelectedOption,
) *technique.EffectInstance {
	id := fmt.Sprintf("%s-%s", effect.ID, e.idGen.Generate())
	return AppendEffect(t, id, effect, selected)
}

func (e *engine) RemoveEffect(t *technique.Technique, instanceID string) bool {
	return RemoveInstance(t, instanceID)
}

func (e *engine) Summarize(t *technique.Technique) *Summary {
	budget := BudgetFor(t.Level)
	total := TotalCost(t.Effects)

	return &Summary{
		Budget:                  budget,
		TotalCost:               total,
		OverBudget:              IsOverBudget(total, budget),
		CanAdd:                  CanAdd(t),
		IncompatibleInstanceIDs: IncompatibleInstances(t, e.effects),
	}
}

func (e *engine) Preview(t *technique.Technique, effect *technique.Effect, choices []Choice) *Preview {
	selected := ResolveSelections(effect, choices)
	pre := ResolveCost(effect, selected)
	surcharge := ProspectiveSurcharge(t, pre)

	return &Preview{
		Selected:         selected,
		Options:          VisibleOptions(effect, selected),
		PreSurchargeCost: pre,
		IsSecondary:      len(t.Effects) > 0,
		Surcharge:        surcharge,
		FinalCost:        pre + surcharge,
		Compatible:       IsCompatible(effect, t.Force),
		CanAdd:           CanAdd(t),
		FitsBudget:       FitsBudget(t, pre),
	}
}
