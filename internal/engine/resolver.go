package engine

import (
	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

// Choice requests a value for one option of an effect. For boolean options
// the value technique.BooleanOn switches the option on and anything else
// switches it off. For extra slots an empty value clears the slot.
type Choice struct {
	OptionID string
	Value    string
}

// ResolveCost is the pre-surcharge cost of an effect with the given
// selections. Boolean options without a record contribute nothing.
func ResolveCost(effect *technique.Effect, selected []technique.SelectedOption) int {
	total := effect.BaseCost
	for _, so := range selected {
		total += so.Cost
	}
	return total
}

// DefaultSelections picks the first value of every select option and leaves
// booleans off
func DefaultSelections(effect *technique.Effect) []technique.SelectedOption {
	out := make([]technique.SelectedOption, 0, len(effect.Options))
	for _, opt := range effect.Options {
		sel, ok := opt.(*technique.SelectOption)
		if !ok || len(sel.Values) == 0 {
			continue
		}
		out = append(out, technique.SelectedOption{
			OptionID: sel.ID,
			Name:     sel.Name,
			Value:    sel.Values[0].Label,
			Cost:     sel.Values[0].Cost,
		})
	}
	return out
}

// ResolveSelections starts from the defaults and applies choices in order
func ResolveSelections(effect *technique.Effect, choices []Choice) []technique.SelectedOption {
	selected := DefaultSelections(effect)
	for _, c := range choices {
		selected = ApplyChoice(effect, selected, c.OptionID, c.Value)
	}
	return selected
}

// ApplyChoice returns the selections after choosing value for optionID.
// The input slice is never modified. Labels that are not offered and
// unknown option ids leave the selections as they were.
func ApplyChoice(
	effect *technique.Effect,
	selected []technique.SelectedOption,
	optionID, value string,
) []technique.SelectedOption {
	out := cloneSelections(selected)

	if rule := effect.ExtraSlots; rule != nil {
		if n, ok := rule.SlotIndex(optionID); ok {
			return pruneExtraSlots(effect, applySlotChoice(effect, out, n, value))
		}
	}

	opt, ok := effect.Option(optionID)
	if !ok {
		return out
	}

	switch o := opt.(type) {
	case *technique.SelectOption:
		v, found := o.Value(value)
		if !found {
			return out
		}
		out = upsert(out, technique.SelectedOption{OptionID: o.ID, Name: o.Name, Value: v.Label, Cost: v.Cost})
		if rule := effect.ExtraSlots; rule != nil && o.ID == rule.SourceOptionID {
			out = releaseSlotsHolding(rule, out, v.Label)
		}
	case *technique.BooleanOption:
		if value == technique.BooleanOn {
			if indexOf(out, o.ID) < 0 {
				out = append(out, technique.SelectedOption{
					OptionID: o.ID,
					Name:     o.Name,
					Value:    technique.BooleanOn,
					Cost:     o.Cost,
				})
			}
		} else {
			out = remove(out, o.ID)
		}
	}

	return pruneExtraSlots(effect, out)
}

// VisibleOptions lists the catalog options followed by the extra slots the
// current selections make available
func VisibleOptions(effect *technique.Effect, selected []technique.SelectedOption) []technique.Option {
	out := make([]technique.Option, 0, len(effect.Options))
	out = append(out, effect.Options...)
	for _, slot := range ExtraSlotOptions(effect, selected) {
		out = append(out, slot)
	}
	return out
}

func cloneSelections(selected []technique.SelectedOption) []technique.SelectedOption {
	return append([]technique.SelectedOption{}, selected...)
}

func indexOf(selected []technique.SelectedOption, optionID string) int {
	for i, so := range selected {
		if so.OptionID == optionID {
			return i
		}
	}
	return -1
}

func upsert(selected []technique.SelectedOption, record technique.SelectedOption) []technique.SelectedOption {
	if i := indexOf(selected, record.OptionID); i >= 0 {
		selected[i] = record
		return selected
	}
	return append(selected, record)
}

func remove(selected []technique.SelectedOption, optionID string) []technique.SelectedOption {
	out := selected[:0]
	for _, so := range selected {
		if so.OptionID != optionID {
			out = append(out, so)
		}
	}
	return out
}
