package technique

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Domain events published after a mutation is stored. The source of every
// event is the technique; effect events target the instance.
const (
	EventTechniqueCreated = "technique.created"
	EventLevelChanged     = "technique.level_changed"
	EventForceChanged     = "technique.force_changed"
	EventDetailsUpdated   = "technique.details_updated"
	EventEffectAdded      = "technique.effect_added"
	EventEffectRemoved    = "technique.effect_removed"
	EventTechniqueReset   = "technique.reset"
	EventTechniqueDeleted = "technique.deleted"
)

// EventTypes lists every event the orchestrator publishes
func EventTypes() []string {
	return []string{
		EventTechniqueCreated,
		EventLevelChanged,
		EventForceChanged,
		EventDetailsUpdated,
		EventEffectAdded,
		EventEffectRemoved,
		EventTechniqueReset,
		EventTechniqueDeleted,
	}
}

// publish never fails the caller: the change is already stored
func (o *orchestrator) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.WarnContext(ctx, "Failed to publish technique event",
			"event", eventType,
			"technique_id", source.GetID(),
			"error", err,
		)
	}
}
