package technique

// OptionKind tells the two option variants apart on the wire
type OptionKind string

// Option kinds
const (
	OptionKindSelect  OptionKind = "select"
	OptionKindBoolean OptionKind = "boolean"
)

// BooleanOn is the label stored for a boolean option that is switched on
const BooleanOn = "true"

// Option is a configurable sub-choice of an effect. It is implemented only
// by *SelectOption and *BooleanOption.
type Option interface {
	GetID() string
	GetName() string
	GetDescription() string
	Kind() OptionKind

	option()
}

// OptionValue is one choice of a select option
type OptionValue struct {
	Label string
	Cost  int
}

// SelectOption requires exactly one of its values to be chosen
type SelectOption struct {
	ID          string
	Name        string
	Description string
	Values      []OptionValue
}

// GetID returns the option id
func (o *SelectOption) GetID() string { return o.ID }

// GetName returns the display name
func (o *SelectOption) GetName() string { return o.Name }

// GetDescription returns the optional description
func (o *SelectOption) GetDescription() string { return o.Description }

// Kind returns OptionKindSelect
func (o *SelectOption) Kind() OptionKind { return OptionKindSelect }

func (o *SelectOption) option() {}

// Value looks up a value by label
func (o *SelectOption) Value(label string) (OptionValue, bool) {
	for _, v := range o.Values {
		if v.Label == label {
			return v, true
		}
	}
	return OptionValue{}, false
}

// IndexOf returns the position of label in the value list, -1 when absent
func (o *SelectOption) IndexOf(label string) int {
	for i, v := range o.Values {
		if v.Label == label {
			return i
		}
	}
	return -1
}

// BooleanOption adds its cost only while switched on
type BooleanOption struct {
	ID          string
	Name        string
	Description string
	Cost        int
}

// GetID returns the option id
func (o *BooleanOption) GetID() string { return o.ID }

// GetName returns the display name
func (o *BooleanOption) GetName() string { return o.Name }

// GetDescription returns the optional description
func (o *BooleanOption) GetDescription() string { return o.Description }

// Kind returns OptionKindBoolean
func (o *BooleanOption) Kind() OptionKind { return OptionKindBoolean }

func (o *BooleanOption) option() {}
