package technique

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity types reported through core.Entity
const (
	EntityTypeTechnique      = "technique"
	EntityTypeEffectInstance = "effect_instance"
)

// SelectedOption records one choice made for an effect instance.
// Boolean options are on when a record exists; their Value is BooleanOn.
type SelectedOption struct {
	OptionID string `json:"option_id"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Cost     int    `json:"cost"`
}

// EffectInstance is one effect added to a technique. IsSecondary and
// FinalCost are derived from the instance's position and are rewritten
// whenever the list changes.
type EffectInstance struct {
	ID              string           `json:"id"`
	EffectID        string           `json:"effect_id"`
	EffectName      string           `json:"effect_name"`
	Category        Category         `json:"category"`
	BaseCost        int              `json:"base_cost"`
	SelectedOptions []SelectedOption `json:"selected_options"`
	IsSecondary     bool             `json:"is_secondary"`
	FinalCost       int              `json:"final_cost"`
}

// GetID implements core.Entity
func (i *EffectInstance) GetID() string { return i.ID }

// GetType implements core.Entity
func (i *EffectInstance) GetType() string { return EntityTypeEffectInstance }

// OptionsCost sums the cost deltas of the selected options
func (i *EffectInstance) OptionsCost() int {
	total := 0
	for _, so := range i.SelectedOptions {
		total += so.Cost
	}
	return total
}

// PreSurchargeCost is the base cost plus selected options
func (i *EffectInstance) PreSurchargeCost() int {
	return i.BaseCost + i.OptionsCost()
}

// Technique is the aggregate being configured
type Technique struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Level          PowerLevel       `json:"level,omitempty"`
	Force          Force            `json:"force,omitempty"`
	ResistanceCost int              `json:"resistance_cost"`
	Effects        []EffectInstance `json:"effects"`
	CreatedAt      int64            `json:"created_at"`
	UpdatedAt      int64            `json:"updated_at"`
	ExpiresAt      int64            `json:"expires_at"`
}

// New returns an empty technique with the given id
func New(id string) *Technique {
	return &Technique{ID: id, Effects: []EffectInstance{}}
}

// GetID implements core.Entity
func (t *Technique) GetID() string { return t.ID }

// GetType implements core.Entity
func (t *Technique) GetType() string { return EntityTypeTechnique }

// HasLevel reports whether a power level has been chosen
func (t *Technique) HasLevel() bool {
	return t.Level != PowerLevelUnset
}

// Instance returns the effect instance with the given id
func (t *Technique) Instance(id string) (*EffectInstance, bool) {
	for i := range t.Effects {
		if t.Effects[i].ID == id {
			return &t.Effects[i], true
		}
	}
	return nil, false
}

// Reset returns the technique to its initial empty state, keeping its
// identity and timestamps
func (t *Technique) Reset() {
	t.Name = ""
	t.Description = ""
	t.Level = PowerLevelUnset
	t.Force = ForceNone
	t.ResistanceCost = 0
	t.Effects = []EffectInstance{}
}

// Clone returns a deep copy
func (t *Technique) Clone() *Technique {
	out := *t
	out.Effects = make([]EffectInstance, len(t.Effects))
	for i, inst := range t.Effects {
		out.Effects[i] = inst
		out.Effects[i].SelectedOptions = append([]SelectedOption(nil), inst.SelectedOptions...)
	}
	return &out
}

var (
	_ core.Entity = (*Technique)(nil)
	_ core.Entity = (*EffectInstance)(nil)
)
