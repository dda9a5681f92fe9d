// Package technique implements the technique orchestrator. It owns the
// configuration session: every mutation loads the draft, applies one change
// through the engine, stores the result and publishes a domain event.
package technique

//go:generate mockgen -destination=mock/mock_service.go -package=techniquemock github.com/KirkDiggler/rpg-technique-api/internal/orchestrators/technique Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-technique-api/internal/catalog"
	"github.com/KirkDiggler/rpg-technique-api/internal/engine"
	entities "github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
	"github.com/KirkDiggler/rpg-technique-api/internal/metrics"
	"github.com/KirkDiggler/rpg-technique-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-technique-api/internal/pkg/idgen"
	techniquedraft "github.com/KirkDiggler/rpg-technique-api/internal/repositories/technique_draft"
	"github.com/KirkDiggler/rpg-technique-api/internal/services/export"
)

// Service defines the interface for technique operations
type Service interface {
	// Draft lifecycle
	CreateTechnique(ctx context.Context, input *CreateTechniqueInput) (*CreateTechniqueOutput, error)
	GetTechnique(ctx context.Context, input *GetTechniqueInput) (*GetTechniqueOutput, error)
	DeleteTechnique(ctx context.Context, input *DeleteTechniqueInput) (*DeleteTechniqueOutput, error)
	ResetTechnique(ctx context.Context, input *ResetTechniqueInput) (*ResetTechniqueOutput, error)

	// Section updates
	SetLevel(ctx context.Context, input *SetLevelInput) (*SetLevelOutput, error)
	SetForce(ctx context.Context, input *SetForceInput) (*SetForceOutput, error)
	UpdateDetails(ctx context.Context, input *UpdateDetailsInput) (*UpdateDetailsOutput, error)
	SetResistanceCost(ctx context.Context, input *SetResistanceCostInput) (*SetResistanceCostOutput, error)

	// Effects
	AddEffect(ctx context.Context, input *AddEffectInput) (*AddEffectOutput, error)
	RemoveEffect(ctx context.Context, input *RemoveEffectInput) (*RemoveEffectOutput, error)

	// Read only
	ListCatalog(ctx context.Context, input *ListCatalogInput) (*ListCatalogOutput, error)
	PreviewEffect(ctx context.Context, input *PreviewEffectInput) (*PreviewEffectOutput, error)
	ExportText(ctx context.Context, input *ExportTextInput) (*ExportTextOutput, error)
}

// Reasons reported when an effect cannot be added
const (
	rejectNoLevel    = "no_level"
	rejectIncompat   = "incompatible_force"
	rejectUnknownEff = "unknown_effect"
	rejectSelection  = "invalid_selection"
)

// Config holds the dependencies for the technique orchestrator
type Config struct {
	Repository  techniquedraft.Repository
	Catalog     catalog.Catalog
	Engine      engine.Engine
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus
	Metrics     *metrics.Recorder

	// DraftTTL is how long an untouched draft lives. Defaults to
	// techniquedraft.DefaultTTL.
	DraftTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Metrics == nil {
		vb.RequiredField("Metrics")
	}
	if c.DraftTTL < 0 {
		vb.Field("DraftTTL", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	repo     techniquedraft.Repository
	catalog  catalog.Catalog
	engine   engine.Engine
	idGen    idgen.Generator
	clock    clock.Clock
	eventBus events.EventBus
	metrics  *metrics.Recorder
	ttl      time.Duration

	locks *keyedMutex
}

// NewOrchestrator creates a new technique orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.DraftTTL
	if ttl == 0 {
		ttl = techniquedraft.DefaultTTL
	}

	return &orchestrator{
		repo:     cfg.Repository,
		catalog:  cfg.Catalog,
		engine:   cfg.Engine,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
		eventBus: cfg.EventBus,
		metrics:  cfg.Metrics,
		ttl:      ttl,
		locks:    newKeyedMutex(),
	}, nil
}

// Draft lifecycle methods

// CreateTechnique starts a new empty technique
func (o *orchestrator) CreateTechnique(
	ctx context.Context,
	input *CreateTechniqueInput,
) (*CreateTechniqueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", input.Name, MaxNameLength, vb)
	errors.ValidateMaxLength("description", input.Description, MaxDescriptionLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	t := entities.New(o.idGen.Generate())
	t.Name = input.Name
	t.Description = input.Description
	t.CreatedAt = o.clock.Now().Unix()
	o.touch(t)

	out, err := o.repo.Create(ctx, techniquedraft.CreateInput{Technique: t})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create technique")
	}

	slog.InfoContext(ctx, "Technique created", "technique_id", t.ID)
	o.metrics.TechniqueCreated()
	o.publish(ctx, EventTechniqueCreated, out.Technique, nil)

	return &CreateTechniqueOutput{
		Technique: out.Technique,
		Summary:   o.engine.Summarize(out.Technique),
	}, nil
}

// GetTechnique returns a technique with its derived figures
func (o *orchestrator) GetTechnique(ctx context.Context, input *GetTechniqueInput) (*GetTechniqueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireTechniqueID(input.TechniqueID); err != nil {
		return nil, err
	}

	t, err := o.load(ctx, input.TechniqueID, true)
	if err != nil {
		return nil, err
	}

	return &GetTechniqueOutput{
		Technique: t,
		Summary:   o.engine.Summarize(t),
	}, nil
}

// DeleteTechnique discards the session
func (o *orchestrator) DeleteTechnique(
	ctx context.Context,
	input *DeleteTechniqueInput,
) (*DeleteTechniqueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireTechniqueID(input.TechniqueID); err != nil {
		return nil, err
	}

	unlock := o.locks.lock(input.TechniqueID)
	defer unlock()

	if _, err := o.repo.Delete(ctx, techniquedraft.DeleteInput{ID: input.TechniqueID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete technique %s", input.TechniqueID)
	}

	slog.InfoContext(ctx, "Technique deleted", "technique_id", input.TechniqueID)
	o.metrics.TechniqueDeleted()
	o.publish(ctx, EventTechniqueDeleted, &entities.Technique{ID: input.TechniqueID}, nil)

	return &DeleteTechniqueOutput{}, nil
}

// ResetTechnique returns the technique to its initial empty state. Stored
// selections are not checked so a draft left behind by a catalog change
// can always be recovered.
func (o *orchestrator) ResetTechnique(
	ctx context.Context,
	input *ResetTechniqueInput,
) (*ResetTechniqueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireTechniqueID(input.TechniqueID); err != nil {
		return nil, err
	}

	t, err := o.mutate(ctx, input.TechniqueID, false, func(t *entities.Technique) error {
		t.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.metrics.TechniqueReset()
	o.publish(ctx, EventTechniqueReset, t, nil)

	return &ResetTechniqueOutput{
		Technique: t,
		Summary:   o.engine.Summarize(t),
	}, nil
}

// Section update methods

// SetLevel chooses the power level. Every effect is cleared.
func (o *orchestrator) SetLevel(ctx context.Context, input *SetLevelInput) (*SetLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("technique_id", input.TechniqueID, vb)
	errors.ValidateRequired("level", string(input.Level), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	removed := 0
	t, err := o.mutate(ctx, input.TechniqueID, true, func(t *entities.Technique) error {
		removed = len(t.Effects)
		return o.engine.SetLevel(t, input.Level)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Technique level changed",
		"technique_id", t.ID,
		"level", t.Level,
		"removed_effects", removed,
	)
	o.metrics.LevelChanged(string(t.Level))
	o.publish(ctx, EventLevelChanged, t, nil)

	return &SetLevelOutput{
		Technique:      t,
		Summary:        o.engine.Summarize(t),
		RemovedEffects: removed,
	}, nil
}

// SetForce chooses the dominant force. Effects already added are kept even
// when the new force restricts them; the summary lists them.
func (o *orchestrator) SetForce(ctx context.Context, input *SetForceInput) (*SetForceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireTechniqueID(input.TechniqueID); err != nil {
		return nil, err
	}

	t, err := o.mutate(ctx, input.TechniqueID, true, func(t *entities.Technique) error {
		return o.engine.SetForce(t, input.Force)
	})
	if err != nil {
		return nil, err
	}

	summary := o.engine.Summarize(t)
	if len(summary.IncompatibleInstanceIDs) > 0 {
		slog.InfoContext(ctx, "Force change kept restricted effects",
			"technique_id", t.ID,
			"force", t.Force,
			"instance_ids", summary.IncompatibleInstanceIDs,
		)
	}
	o.metrics.ForceChanged(string(t.Force))
	o.publish(ctx, EventForceChanged, t, nil)

	return &SetForceOutput{
		Technique: t,
		Summary:   summary,
	}, nil
}

// UpdateDetails edits the free text fields
func (o *orchestrator) UpdateDetails(ctx context.Context, input *UpdateDetailsInput) (*UpdateDetailsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("technique_id", input.TechniqueID, vb)
	if input.Name != nil {
		errors.ValidateMaxLength("name", *input.Name, MaxNameLength, vb)
	}
	if input.Description != nil {
		errors.ValidateMaxLength("description", *input.Description, MaxDescriptionLength, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	t, err := o.mutate(ctx, input.TechniqueID, true, func(t *entities.Technique) error {
		if input.Name != nil {
			t.Name = *input.Name
		}
		if input.Description != nil {
			t.Description = *input.Description
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventDetailsUpdated, t, nil)

	return &UpdateDetailsOutput{
		Technique: t,
		Summary:   o.engine.Summarize(t),
	}, nil
}

// SetResistanceCost overrides the resistance cost from raw input.
// Input without a leading number stores 0.
func (o *orchestrator) SetResistanceCost(
	ctx context.Context,
	input *SetResistanceCostInput,
) (*SetResistanceCostOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireTechniqueID(input.TechniqueID); err != nil {
		return nil, err
	}

	t, err := o.mutate(ctx, input.TechniqueID, true, func(t *entities.Technique) error {
		o.engine.SetResistanceCost(t, input.Value)
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventDetailsUpdated, t, nil)

	return &SetResistanceCostOutput{
		Technique: t,
		Summary:   o.engine.Summarize(t),
	}, nil
}

// Effect methods

// AddEffect appends an effect priced from its defaults and the choices
func (o *orchestrator) AddEffect(ctx context.Context, input *AddEffectInput) (*AddEffectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("technique_id", input.TechniqueID, vb)
	errors.ValidateRequired("effect_id", input.EffectID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	effect, ok := o.catalog.Effect(input.EffectID)
	if !ok {
		o.metrics.EffectRejected(rejectUnknownEff)
		return nil, errors.NotFoundf("effect %s not found", input.EffectID)
	}

	var added entities.EffectInstance
	t, err := o.mutate(ctx, input.TechniqueID, true, func(t *entities.Technique) error {
		if err := o.engine.CheckAddable(t, effect); err != nil {
			if t.HasLevel() {
				o.metrics.EffectRejected(rejectIncompat)
			} else {
				o.metrics.EffectRejected(rejectNoLevel)
			}
			return err
		}

		selected := o.engine.ResolveSelections(effect, input.Choices)
		if err := o.engine.ValidateSelections(effect, selected); err != nil {
			o.metrics.EffectRejected(rejectSelection)
			return errors.WrapWithCode(err, errors.CodeInvalidArgument,
				fmt.Sprintf("invalid selections for effect %s", effect.ID))
		}
		added = *o.engine.AddEffect(t, effect, selected)
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := o.engine.Summarize(t)
	slog.InfoContext(ctx, "Effect added",
		"technique_id", t.ID,
		"instance_id", added.ID,
		"effect_id", added.EffectID,
		"final_cost", added.FinalCost,
		"total_cost", summary.TotalCost,
		"budget", summary.Budget,
	)
	o.metrics.EffectAdded(string(effect.Category))
	o.publish(ctx, EventEffectAdded, t, &added)

	return &AddEffectOutput{
		Technique: t,
		Instance:  &added,
		Summary:   summary,
	}, nil
}

// RemoveEffect deletes an instance and reprices the rest
func (o *orchestrator) RemoveEffect(ctx context.Context, input *RemoveEffectInput) (*RemoveEffectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("technique_id", input.TechniqueID, vb)
	errors.ValidateRequired("instance_id", input.InstanceID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var removed entities.EffectInstance
	t, err := o.mutate(ctx, input.TechniqueID, true, func(t *entities.Technique) error {
		inst, ok := t.Instance(input.InstanceID)
		if !ok {
			return errors.NotFoundf("effect instance %s not found", input.InstanceID)
		}
		removed = *inst
		o.engine.RemoveEffect(t, input.InstanceID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Effect removed",
		"technique_id", t.ID,
		"instance_id", removed.ID,
	)
	o.metrics.EffectRemoved()
	o.publish(ctx, EventEffectRemoved, t, &removed)

	return &RemoveEffectOutput{
		Technique: t,
		Summary:   o.engine.Summarize(t),
	}, nil
}

// Read only methods

// ListCatalog returns the categories and the effects legal under a force
func (o *orchestrator) ListCatalog(_ context.Context, input *ListCatalogInput) (*ListCatalogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Force != entities.ForceNone && !input.Force.IsValid() {
		vb.Fieldf("force", "unknown force %q", input.Force)
	}
	if input.Category != "" && !input.Category.IsValid() {
		vb.Fieldf("category", "unknown category %q", input.Category)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var effects []*entities.Effect
	if input.Category != "" {
		effects = o.catalog.EffectsByCategory(input.Category)
	} else {
		effects = o.catalog.Effects()
	}

	return &ListCatalogOutput{
		Categories: o.catalog.Categories(),
		Effects:    engine.FilterCompatible(effects, input.Force),
	}, nil
}

// PreviewEffect prices an effect as if it were added now, without storing
// anything
func (o *orchestrator) PreviewEffect(
	ctx context.Context,
	input *PreviewEffectInput,
) (*PreviewEffectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("effect_id", input.EffectID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	effect, ok := o.catalog.Effect(input.EffectID)
	if !ok {
		return nil, errors.NotFoundf("effect %s not found", input.EffectID)
	}

	t := entities.New("")
	if input.TechniqueID != "" {
		loaded, err := o.load(ctx, input.TechniqueID, true)
		if err != nil {
			return nil, err
		}
		t = loaded
	}

	return &PreviewEffectOutput{
		Effect:  effect,
		Preview: o.engine.Preview(t, effect, input.Choices),
	}, nil
}

// ExportText renders the technique as plain text
func (o *orchestrator) ExportText(ctx context.Context, input *ExportTextInput) (*ExportTextOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireTechniqueID(input.TechniqueID); err != nil {
		return nil, err
	}

	t, err := o.load(ctx, input.TechniqueID, true)
	if err != nil {
		return nil, err
	}

	doc, err := export.Render(t)
	o.metrics.Exported(err == nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to export technique %s", t.ID)
	}

	return &ExportTextOutput{Document: doc}, nil
}

// Helpers

// mutate holds the technique's lock across load, change and store. The
// stored copy is returned.
func (o *orchestrator) mutate(
	ctx context.Context,
	id string,
	validate bool,
	change func(t *entities.Technique) error,
) (*entities.Technique, error) {
	unlock := o.locks.lock(id)
	defer unlock()

	t, err := o.load(ctx, id, validate)
	if err != nil {
		return nil, err
	}

	if err := change(t); err != nil {
		return nil, err
	}
	o.touch(t)

	out, err := o.repo.Update(ctx, techniquedraft.UpdateInput{Technique: t})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update technique %s", id)
	}
	return out.Technique, nil
}

// load fetches a draft. With validate set, every stored instance must still
// match the catalog.
func (o *orchestrator) load(ctx context.Context, id string, validate bool) (*entities.Technique, error) {
	out, err := o.repo.Get(ctx, techniquedraft.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get technique %s", id)
	}

	if validate {
		if err := o.checkStored(out.Technique); err != nil {
			slog.WarnContext(ctx, "Stored technique does not match the catalog",
				"technique_id", id,
				"error", err,
			)
			return nil, err
		}
	}
	return out.Technique, nil
}

func (o *orchestrator) checkStored(t *entities.Technique) error {
	for _, inst := range t.Effects {
		effect, ok := o.catalog.Effect(inst.EffectID)
		if !ok {
			return errors.FailedPreconditionf("effect %s is no longer in the catalog", inst.EffectID).
				WithMeta("instance_id", inst.ID)
		}
		if err := o.engine.ValidateSelections(effect, inst.SelectedOptions); err != nil {
			return errors.WrapWithCode(err, errors.CodeFailedPrecondition,
				fmt.Sprintf("instance %s no longer matches the catalog", inst.ID))
		}
	}
	return nil
}

// touch stamps activity and slides the expiry
func (o *orchestrator) touch(t *entities.Technique) {
	now := o.clock.Now()
	t.UpdatedAt = now.Unix()
	t.ExpiresAt = now.Add(o.ttl).Unix()
}

func requireTechniqueID(id string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("technique_id", id, vb)
	return vb.Build()
}
