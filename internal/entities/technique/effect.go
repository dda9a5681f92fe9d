package technique

import (
	"strconv"
	"strings"
)

// Effect is a catalog entry: a purchasable ability or drawback
type Effect struct {
	ID           string
	Category     Category
	Name         string
	Description  string
	BaseCost     int
	Restrictions []Force
	Options      []Option
	ExtraSlots   *ExtraSlotRule
}

// Option returns the catalog option with the given id
func (e *Effect) Option(id string) (Option, bool) {
	for _, o := range e.Options {
		if o.GetID() == id {
			return o, true
		}
	}
	return nil, false
}

// RestrictedFor reports whether f is in the effect's exclusion list
func (e *Effect) RestrictedFor(f Force) bool {
	for _, r := range e.Restrictions {
		if r == f {
			return true
		}
	}
	return false
}

// ExtraSlotRule describes options synthesized at selection time: the value
// chosen for the count option decides how many extra slots exist, and every
// slot offers the values of the source option.
type ExtraSlotRule struct {
	CountOptionID   string
	SourceOptionID  string
	SlotPrefix      string
	SlotName        string
	SlotDescription string
}

// SlotID returns the option id of slot n (1 based)
func (r *ExtraSlotRule) SlotID(n int) string {
	return r.SlotPrefix + strconv.Itoa(n)
}

// SlotDisplayName returns the name of slot n. "{n}" in SlotName is replaced
// by the slot number.
func (r *ExtraSlotRule) SlotDisplayName(n int) string {
	return strings.ReplaceAll(r.SlotName, "{n}", strconv.Itoa(n))
}

// SlotIndex parses an option id produced by SlotID
func (r *ExtraSlotRule) SlotIndex(optionID string) (int, bool) {
	if !strings.HasPrefix(optionID, r.SlotPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(optionID, r.SlotPrefix))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
