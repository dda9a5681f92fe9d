// Package v1alpha1 handles the technique grpc service interface
package v1alpha1

import (
	"context"

	techniquev1alpha1 "github.com/KirkDiggler/rpg-technique-api/gen/go/technique/api/v1alpha1"
	entities "github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
	"github.com/KirkDiggler/rpg-technique-api/internal/orchestrators/technique"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	TechniqueService technique.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.TechniqueService == nil {
		return errors.InvalidArgument("technique service is required")
	}
	return nil
}

// Handler implements the technique gRPC service
type Handler struct {
	techniquev1alpha1.UnimplementedTechniqueServiceServer
	techniqueService technique.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		techniqueService: cfg.TechniqueService,
	}, nil
}

var _ techniquev1alpha1.TechniqueServiceServer = (*Handler)(nil)

// CreateTechnique starts a new technique draft
func (h *Handler) CreateTechnique(
	ctx context.Context,
	req *techniquev1alpha1.CreateTechniqueRequest,
) (*techniquev1alpha1.CreateTechniqueResponse, error) {
	output, err := h.techniqueService.CreateTechnique(ctx, &technique.CreateTechniqueInput{
		Name:        req.GetName(),
		Description: req.GetDescription(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &techniquev1alpha1.CreateTechniqueResponse{
		Technique: convertTechniqueToProto(output.Technique),
		Summary:   convertSummaryToProto(output.Summary),
	}, nil
}

// GetTechnique returns a technique with its budget figures
func (h *Handler) GetTechnique(
	ctx context.Context,
	req *techniquev1alpha1.GetTechniqueRequest,
) (*techniquev1alpha1.GetTechniqueResponse, error) {
	if req.GetTechniqueId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("technique_id is required"))
	}

	output, err := h.techniqueService.GetTechnique(ctx, &technique.GetTechniqueInput{
		TechniqueID: req.GetTechniqueId(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &techniquev1alpha1.GetTechniqueResponse{
		Technique: convertTechniqueToProto(output.Technique),
		Summary:   convertSummaryToProto(output.Summary),
	}, nil
}

// DeleteTechnique discards a technique draft
func (h *Handler) DeleteTechnique(
	ctx context.Context,
	req *techniquev1alpha1.DeleteTechniqueRequest,
) (*techniquev1alpha1.DeleteTechniqueResponse, error) {
	if req.GetTechniqueId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("technique_id is required"))
	}

	_, err := h.techniqueService.DeleteTechnique(ctx, &technique.DeleteTechniqueInput{
		TechniqueID: req.GetTechniqueId(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &techniquev1alpha1.DeleteTechniqueResponse{}, nil
}

// ResetTechnique clears a technique back to its initial state
func (h *Handler) ResetTechnique(
	ctx context.Context,
	req *techniquev1alpha1.ResetTechniqueRequest,
) (*techniquev1alpha1.ResetTechniqueResponse, error) {
	if req.GetTechniqueId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("technique_id is required"))
	}

	output, err := h.techniqueService.ResetTechnique(ctx, &technique.ResetTechniqueInput{
		TechniqueID: req.GetTechniqueId(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &techniquev1alpha1.ResetTechniqueResponse{
		Technique: convertTechniqueToProto(output.Technique),
		Summary:   convertSummaryToProto(output.Summary),
	}, nil
}

// SetLevel chooses the power level, clearing every effect
func (h *Handler) SetLevel(
	ctx context.Context,
	req *techniquev1alpha1.SetLevelRequest,
) (*techniquev1alpha1.SetLevelResponse, error) {
	if req.GetTechniqueId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("technique_id is required"))
	}
	level, ok := entities.ParsePowerLevel(req.GetLevel())
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown power level %q", req.GetLevel()))
	}

	output, err := h.techniqueService.SetLevel(ctx, &technique.SetLevelInput{
		TechniqueID: req.GetTechniqueId(),
		Level:       level,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &techniquev1alpha1.SetLevelResponse{
		Technique:      convertTechniqueToProto(output.Technique),
		Summary:        convertSummaryToProto(output.Summary),
		RemovedEffects: int32(output.RemovedEffects),
	}, nil
}

// SetForce chooses the dominant force
func (h *Handler) SetForce(
	ctx context.Context,
	req *techniquev1alpha1.SetForceRequest,
) (*techniquev1alpha1.SetForceResponse, error) {
	if req.GetTechniqueId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("technique_id is required"))
	}
	force, ok := parseForce(req.GetForce())
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown force %q", req.GetForce()))
	}

	output, err := h.techniqueService.SetForce(ctx, &technique.SetForceInput{
		TechniqueID: req.GetTechniqueId(),
		Force:       force,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &techniquev1alpha1.SetForceResponse{
		Technique: convertTechniqueToProto(output.Technique),
		Summary:   convertSummaryToProto(output.Summary),
	}, nil
}

// UpdateDetails edits name and description
func (h *Handler) UpdateDetails(
	ctx context.Context,
	req *techniquev1alpha1.UpdateDetailsRequest,
) (*techniquev1alpha1.UpdateDetailsResponse, error) {
	if req.GetTechniqueId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("technique_id is required"))
	}

	output, err := h.techniqueService.UpdateDetails(ctx, &technique.UpdateDetailsInput{
		TechniqueID: req.GetTechniqueId(),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &techniquev1alpha1.UpdateDetailsResponse{
		Technique: convertTechniqueToProto(output.Technique),
		Summary:   convertSummaryToProto(output.Summary),
	}, nil
}

// SetResistanceCost overrides the resistance cost
func (h *Handler) SetResistanceCost(
	ctx context.Context,
	req *techniquev1alpha1.SetResistanceCostRequest,
) (*techniquev1alpha1.SetResistanceCostResponse, error) {
	if req.GetTechniqueId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("technique_id is required"))
	}

	output, err := h.techniqueService.SetResistanceCost(ctx, &technique.SetResistanceCostInput{
		TechniqueID: req.GetTechniqueId(),
		Value:       req.GetValue(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &techniquev1alpha1.SetResistanceCostResponse{
		Technique: convertTechniqueToProto(output.Technique),
		Summary:   convertSummaryToProto(output.Summary),
	}, nil
}

// AddEffect adds a configured effect
func (h *Handler) AddEffect(
	ctx context.Context,
	req *techniquev1alpha1.AddEffectRequest,
) (*techniquev1alpha1.AddEffectResponse, error) {
	if req.GetTechniqueId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("technique_id is required"))
	}
	if req.GetEffectId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("effect_id is required"))
	}

	output, err := h.techniqueService.AddEffect(ctx, &technique.AddEffectInput{
		TechniqueID: req.GetTechniqueId(),
		EffectID:    req.GetEffectId(),
		Choices:     convertChoicesFromProto(req.GetChoices()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &techniquev1alpha1.AddEffectResponse{
		Technique: convertTechniqueToProto(output.Technique),
		Instance:  convertInstanceToProto(output.Instance),
		Summary:   convertSummaryToProto(output.Summary),
	}, nil
}

// RemoveEffect removes an effect instance
func (h *Handler) RemoveEffect(
	ctx context.Context,
	req *techniquev1alpha1.RemoveEffectRequest,
) (*techniquev1alpha1.RemoveEffectResponse, error) {
	if req.GetTechniqueId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("technique_id is required"))
	}
	if req.GetInstanceId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("instance_id is required"))
	}

	output, err := h.techniqueService.RemoveEffect(ctx, &technique.RemoveEffectInput{
		TechniqueID: req.GetTechniqueId(),
		InstanceID:  req.GetInstanceId(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &techniquev1alpha1.RemoveEffectResponse{
		Technique: convertTechniqueToProto(output.Technique),
		Summary:   convertSummaryToProto(output.Summary),
	}, nil
}

// ListCatalog returns levels, forces, categories and the effects legal
// under the requested force
func (h *Handler) ListCatalog(
	ctx context.Context,
	req *techniquev1alpha1.ListCatalogRequest,
) (*techniquev1alpha1.ListCatalogResponse, error) {
	force, ok := parseForce(req.GetForce())
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown force %q", req.GetForce()))
	}
	category, ok := parseCategory(req.GetCategory())
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown category %q", req.GetCategory()))
	}

	output, err := h.techniqueService.ListCatalog(ctx, &technique.ListCatalogInput{
		Force:    force,
		Category: category,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	categories := make([]string, 0, len(output.Categories))
	for _, c := range output.Categories {
		categories = append(categories, string(c))
	}
	effects := make([]*techniquev1alpha1.Effect, 0, len(output.Effects))
	for _, e := range output.Effects {
		effects = append(effects, convertEffectToProto(e))
	}

	return &techniquev1alpha1.ListCatalogResponse{
		Categories: categories,
		Levels:     convertLevelsToProto(entities.PowerLevels()),
		Forces:     convertForcesToProto(entities.Forces()),
		Effects:    effects,
	}, nil
}

// PreviewEffect prices an effect without adding it
func (h *Handler) PreviewEffect(
	ctx context.Context,
	req *techniquev1alpha1.PreviewEffectRequest,
) (*techniquev1alpha1.PreviewEffectResponse, error) {
	if req.GetEffectId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("effect_id is required"))
	}

	output, err := h.techniqueService.PreviewEffect(ctx, &technique.PreviewEffectInput{
		TechniqueID: req.GetTechniqueId(),
		EffectID:    req.GetEffectId(),
		Choices:     convertChoicesFromProto(req.GetChoices()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	p := output.Preview
	return &techniquev1alpha1.PreviewEffectResponse{
		Effect:           convertEffectToProto(output.Effect),
		Selected:         convertSelectionsToProto(p.Selected),
		Options:          convertOptionsToProto(p.Options),
		PreSurchargeCost: int32(p.PreSurchargeCost),
		IsSecondary:      p.IsSecondary,
		Surcharge:        int32(p.Surcharge),
		FinalCost:        int32(p.FinalCost),
		Compatible:       p.Compatible,
		CanAdd:           p.CanAdd,
		FitsBudget:       p.FitsBudget,
	}, nil
}

// ExportText renders a technique as plain text
func (h *Handler) ExportText(
	ctx context.Context,
	req *techniquev1alpha1.ExportTextRequest,
) (*techniquev1alpha1.ExportTextResponse, error) {
	if req.GetTechniqueId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("technique_id is required"))
	}

	output, err := h.techniqueService.ExportText(ctx, &technique.ExportTextInput{
		TechniqueID: req.GetTechniqueId(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &techniquev1alpha1.ExportTextResponse{
		Text:     output.Document.Text,
		Slug:     output.Document.Slug,
		FileName: output.Document.FileName,
	}, nil
}
