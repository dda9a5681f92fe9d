package engine

import (
	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

// ExtraSlotCount is the number of extra slots the count option currently
// allows: its first value yields 0 and each later value one more
func ExtraSlotCount(effect *technique.Effect, selected []technique.SelectedOption) int {
	rule := effect.ExtraSlots
	if rule == nil {
		return 0
	}
	opt, ok := effect.Option(rule.CountOptionID)
	if !ok {
		return 0
	}
	count, ok := opt.(*technique.SelectOption)
	if !ok {
		return 0
	}
	i := indexOf(selected, rule.CountOptionID)
	if i < 0 {
		return 0
	}
	if n := count.IndexOf(selected[i].Value); n > 0 {
		return n
	}
	return 0
}

// ExtraSlotOptions synthesizes the visible extra slot options. Each slot
// offers the source values not already chosen in another slot; a slot keeps
// offering its own current choice.
func ExtraSlotOptions(effect *technique.Effect, selected []technique.SelectedOption) []*technique.SelectOption {
	n := ExtraSlotCount(effect, selected)
	if n == 0 {
		return nil
	}

	rule := effect.ExtraSlots
	out := make([]*technique.SelectOption, 0, n)
	for i := 1; i <= n; i++ {
		slotID := rule.SlotID(i)
		out = append(out, &technique.SelectOption{
			ID:          slotID,
			Name:        rule.SlotDisplayName(i),
			Description: rule.SlotDescription,
			Values:      slotValues(effect, selected, slotID),
		})
	}
	return out
}

func sourceOption(effect *technique.Effect) *technique.SelectOption {
	opt, ok := effect.Option(effect.ExtraSlots.SourceOptionID)
	if !ok {
		return nil
	}
	src, _ := opt.(*technique.SelectOption)
	return src
}

// isStateRecord reports whether a record holds a state: the primary source
// option or any extra slot
func isStateRecord(rule *technique.ExtraSlotRule, optionID string) bool {
	if optionID == rule.SourceOptionID {
		return true
	}
	_, ok := rule.SlotIndex(optionID)
	return ok
}

func slotValues(effect *technique.Effect, selected []technique.SelectedOption, slotID string) []technique.OptionValue {
	src := sourceOption(effect)
	if src == nil {
		return nil
	}

	rule := effect.ExtraSlots
	taken := make(map[string]bool)
	own := ""
	for _, so := range selected {
		if so.OptionID == slotID {
			own = so.Value
			continue
		}
		if isStateRecord(rule, so.OptionID) {
			taken[so.Value] = true
		}
	}

	values := make([]technique.OptionValue, 0, len(src.Values))
	for _, v := range src.Values {
		if taken[v.Label] && v.Label != own {
			continue
		}
		values = append(values, v)
	}
	return values
}

func applySlotChoice(
	effect *technique.Effect,
	selected []technique.SelectedOption,
	n int,
	value string,
) []technique.SelectedOption {
	rule := effect.ExtraSlots
	slotID := rule.SlotID(n)

	if value == "" {
		return remove(selected, slotID)
	}
	if n > ExtraSlotCount(effect, selected) {
		return selected
	}

	for _, v := range slotValues(effect, selected, slotID) {
		if v.Label == value {
			return upsert(selected, technique.SelectedOption{
				OptionID: slotID,
				Name:     rule.SlotDisplayName(n),
				Value:    v.Label,
				Cost:     v.Cost,
			})
		}
	}
	return selected
}

// releaseSlotsHolding clears the extra slots holding label once the source
// option takes it
func releaseSlotsHolding(
	rule *technique.ExtraSlotRule,
	selected []technique.SelectedOption,
	label string,
) []technique.SelectedOption {
	out := selected[:0]
	for _, so := range selected {
		if _, ok := rule.SlotIndex(so.OptionID); ok && so.Value == label {
			continue
		}
		out = append(out, so)
	}
	return out
}

// pruneExtraSlots drops slot records whose index is beyond the current count
func pruneExtraSlots(effect *technique.Effect, selected []technique.SelectedOption) []technique.SelectedOption {
	rule := effect.ExtraSlots
	if rule == nil {
		return selected
	}
	n := ExtraSlotCount(effect, selected)
	out := selected[:0]
	for _, so := range selected {
		if i, ok := rule.SlotIndex(so.OptionID); ok && i > n {
			continue
		}
		out = append(out, so)
	}
	return out
}
