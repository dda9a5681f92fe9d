package engine

import (
	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

// SecondarySurcharge is added to every secondary instance with a positive
// pre-surcharge cost
const SecondarySurcharge = 2

// Surcharge returns the surcharge owed by an instance
func Surcharge(isSecondary bool, preSurchargeCost int) int {
	if isSecondary && preSurchargeCost > 0 {
		return SecondarySurcharge
	}
	return 0
}

// AppendEffect adds an instance of effect at the end of the technique's list.
// It never rejects: budget and compatibility are the caller's concern.
func AppendEffect(
	t *technique.Technique,
	instanceID string,
	effect *technique.Effect,
	selected []technique.SelectedOption,
) *technique.EffectInstance {
	inst := technique.EffectInstance{
		ID:              instanceID,
		EffectID:        effect.ID,
		EffectName:      effect.Name,
		Category:        effect.Category,
		BaseCost:        effect.BaseCost,
		SelectedOptions: cloneSelections(selected),
		IsSecondary:     len(t.Effects) > 0,
	}
	pre := inst.PreSurchargeCost()
	inst.FinalCost = pre + Surcharge(inst.IsSecondary, pre)

	t.Effects = append(t.Effects, inst)
	return &t.Effects[len(t.Effects)-1]
}

// RemoveInstance deletes an instance and recomputes the remaining list.
// It reports false, leaving the list untouched, when the id is unknown.
func RemoveInstance(t *technique.Technique, instanceID string) bool {
	kept := make([]technique.EffectInstance, 0, len(t.Effects))
	found := false
	for _, inst := range t.Effects {
		if inst.ID == instanceID {
			found = true
			continue
		}
		kept = append(kept, inst)
	}
	if !found {
		return false
	}

	Recompute(kept)
	t.Effects = kept
	return true
}

// Recompute rewrites the derived fields of every instance from its position
func Recompute(instances []technique.EffectInstance) {
	for i := range instances {
		inst := &instances[i]
		inst.IsSecondary = i > 0
		pre := inst.PreSurchargeCost()
		inst.FinalCost = pre + Surcharge(inst.IsSecondary, pre)
	}
}
