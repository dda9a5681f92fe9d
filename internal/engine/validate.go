package engine

import (
	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
)

// ValidateSelections checks stored selections against the catalog: every
// option must belong to the effect (or be a visible extra slot), labels and
// costs must match the catalog and no state may be chosen twice
func ValidateSelections(effect *technique.Effect, selected []technique.SelectedOption) error {
	vb := errors.NewValidationBuilder()

	seen := make(map[string]bool, len(selected))
	slots := make(map[string]*technique.SelectOption)
	for _, slot := range ExtraSlotOptions(effect, selected) {
		slots[slot.ID] = slot
	}

	for _, so := range selected {
		if seen[so.OptionID] {
			vb.Field(so.OptionID, "is selected more than once")
			continue
		}
		seen[so.OptionID] = true

		if slot, ok := slots[so.OptionID]; ok {
			validateSelectValue(vb, slot, so)
			continue
		}
		if effect.ExtraSlots != nil {
			if _, isSlot := effect.ExtraSlots.SlotIndex(so.OptionID); isSlot {
				vb.Field(so.OptionID, "extra slot is not available")
				continue
			}
		}

		opt, ok := effect.Option(so.OptionID)
		if !ok {
			vb.Fieldf(so.OptionID, "is not an option of %s", effect.ID)
			continue
		}
		switch o := opt.(type) {
		case *technique.SelectOption:
			validateSelectValue(vb, o, so)
		case *technique.BooleanOption:
			if so.Value != technique.BooleanOn {
				vb.Fieldf(so.OptionID, "boolean value must be %q", technique.BooleanOn)
			}
			if so.Cost != o.Cost {
				vb.Fieldf(so.OptionID, "cost %d does not match catalog cost %d", so.Cost, o.Cost)
			}
		}
	}

	if rule := effect.ExtraSlots; rule != nil {
		states := make(map[string]string)
		for _, so := range selected {
			if !isStateRecord(rule, so.OptionID) {
				continue
			}
			if other, dup := states[so.Value]; dup {
				vb.Fieldf(so.OptionID, "state %q is already chosen in %s", so.Value, other)
				continue
			}
			states[so.Value] = so.OptionID
		}
	}

	return vb.Build()
}

func validateSelectValue(vb *errors.ValidationBuilder, opt *technique.SelectOption, so technique.SelectedOption) {
	v, ok := opt.Value(so.Value)
	if !ok {
		vb.Fieldf(so.OptionID, "value %q is not offered", so.Value)
		return
	}
	if v.Cost != so.Cost {
		vb.Fieldf(so.OptionID, "cost %d does not match catalog cost %d", so.Cost, v.Cost)
	}
}
