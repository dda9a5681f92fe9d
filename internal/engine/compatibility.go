package engine

import (
	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

// EffectLookup resolves catalog effects by id
type EffectLookup interface {
	Effect(id string) (*technique.Effect, bool)
}

// IsCompatible reports whether effect may be offered under force. With no
// force chosen everything is compatible; otherwise the restriction list is
// an exclusion set.
func IsCompatible(effect *technique.Effect, force technique.Force) bool {
	if force == technique.ForceNone {
		return true
	}
	return !effect.RestrictedFor(force)
}

// FilterCompatible keeps the effects compatible with force, in order
func FilterCompatible(effects []*technique.Effect, force technique.Force) []*technique.Effect {
	out := make([]*technique.Effect, 0, len(effects))
	for _, e := range effects {
		if IsCompatible(e, force) {
			out = append(out, e)
		}
	}
	return out
}

// IncompatibleInstances lists the ids of instances already in the technique
// whose effect is not compatible with its current force. Instances are never
// removed because of a force change; this is informational.
func IncompatibleInstances(t *technique.Technique, effects EffectLookup) []string {
	if t.Force == technique.ForceNone {
		return nil
	}
	var ids []string
	for _, inst := range t.Effects {
		effect, ok := effects.Effect(inst.EffectID)
		if !ok {
			continue
		}
		if !IsCompatible(effect, t.Force) {
			ids = append(ids, inst.ID)
		}
	}
	return ids
}
