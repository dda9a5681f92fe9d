package catalog

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
)

type rawFile struct {
	Templates map[string]rawOption `yaml:"templates"`
	Effects   []rawEffect          `yaml:"effects"`
}

type rawEffect struct {
	ID           string         `yaml:"id"`
	Category     string         `yaml:"category"`
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description"`
	BaseCost     int            `yaml:"base_cost"`
	Restrictions []string       `yaml:"restrictions"`
	ExtraSlots   *rawExtraSlots `yaml:"extra_slots"`
	Options      []rawOption    `yaml:"options"`
}

type rawExtraSlots struct {
	CountOption     string `yaml:"count_option"`
	SourceOption    string `yaml:"source_option"`
	SlotPrefix      string `yaml:"slot_prefix"`
	SlotName        string `yaml:"slot_name"`
	SlotDescription string `yaml:"slot_description"`
}

// rawOption is either an inline option or a template reference. Template
// parameters (turn_cost) live next to the reference.
type rawOption struct {
	Template string `yaml:"template"`
	TurnCost int    `yaml:"turn_cost"`

	ID          string     `yaml:"id"`
	Type        string     `yaml:"type"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Cost        int        `yaml:"cost"`
	Values      []rawValue `yaml:"values"`
}

type rawValue struct {
	Label      string `yaml:"label"`
	Cost       int    `yaml:"cost"`
	Multiplier int    `yaml:"multiplier"`
}

// parser resolves template references. A template instantiated twice with
// the same parameters yields the same Option value.
type parser struct {
	templates map[string]rawOption
	resolved  map[string]technique.Option
}

func parse(data []byte) ([]*technique.Effect, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog yaml")
	}
	if len(raw.Effects) == 0 {
		return nil, errors.InvalidArgument("catalog has no effects")
	}

	p := &parser{templates: raw.Templates, resolved: make(map[string]technique.Option)}

	seen := make(map[string]bool, len(raw.Effects))
	effects := make([]*technique.Effect, 0, len(raw.Effects))
	for i, re := range raw.Effects {
		effect, err := p.effect(re)
		if err != nil {
			return nil, errors.Wrapf(err, "effect %d (%s)", i, re.ID).WithMeta("effect_id", re.ID)
		}
		if seen[effect.ID] {
			return nil, errors.InvalidArgumentf("duplicate effect id %s", effect.ID)
		}
		seen[effect.ID] = true
		effects = append(effects, effect)
	}

	return effects, nil
}

func (p *parser) effect(re rawEffect) (*technique.Effect, error) {
	if re.ID == "" {
		return nil, errors.InvalidArgument("effect id is required")
	}
	if re.Name == "" {
		return nil, errors.InvalidArgument("effect name is required")
	}

	category := technique.Category(re.Category)
	if !category.IsValid() {
		return nil, errors.InvalidArgumentf("unknown category %q", re.Category)
	}

	effect := &technique.Effect{
		ID:          re.ID,
		Category:    category,
		Name:        re.Name,
		Description: re.Description,
		BaseCost:    re.BaseCost,
	}

	for _, name := range re.Restrictions {
		force := technique.Force(name)
		if !force.IsValid() {
			return nil, errors.InvalidArgumentf("unknown force %q in restrictions", name)
		}
		effect.Restrictions = append(effect.Restrictions, force)
	}

	optionIDs := make(map[string]bool, len(re.Options))
	for _, ro := range re.Options {
		opt, err := p.option(ro)
		if err != nil {
			return nil, err
		}
		if optionIDs[opt.GetID()] {
			return nil, errors.InvalidArgumentf("duplicate option id %s", opt.GetID())
		}
		optionIDs[opt.GetID()] = true
		effect.Options = append(effect.Options, opt)
	}

	if re.ExtraSlots != nil {
		rule, err := extraSlots(effect, re.ExtraSlots)
		if err != nil {
			return nil, err
		}
		effect.ExtraSlots = rule
	}

	return effect, nil
}

func (p *parser) option(ro rawOption) (technique.Option, error) {
	if ro.Template == "" {
		return buildOption(ro, 0)
	}

	key := ro.Template + "/" + strconv.Itoa(ro.TurnCost)
	if opt, ok := p.resolved[key]; ok {
		return opt, nil
	}

	tmpl, ok := p.templates[ro.Template]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown option template %q", ro.Template)
	}
	opt, err := buildOption(tmpl, ro.TurnCost)
	if err != nil {
		return nil, errors.Wrapf(err, "template %s", ro.Template)
	}
	p.resolved[key] = opt
	return opt, nil
}

func buildOption(ro rawOption, turnCost int) (technique.Option, error) {
	if ro.ID == "" {
		return nil, errors.InvalidArgument("option id is required")
	}

	switch technique.OptionKind(ro.Type) {
	case technique.OptionKindBoolean:
		return &technique.BooleanOption{
			ID:          ro.ID,
			Name:        ro.Name,
			Description: ro.Description,
			Cost:        ro.Cost,
		}, nil
	case technique.OptionKindSelect:
		if len(ro.Values) == 0 {
			return nil, errors.InvalidArgumentf("select option %s has no values", ro.ID)
		}
		opt := &technique.SelectOption{ID: ro.ID, Name: ro.Name, Description: ro.Description}
		labels := make(map[string]bool, len(ro.Values))
		for _, rv := range ro.Values {
			cost := rv.Cost + rv.Multiplier*turnCost
			label := strings.ReplaceAll(rv.Label, "{cost}", strconv.Itoa(cost))
			if label == "" {
				return nil, errors.InvalidArgumentf("select option %s has an empty label", ro.ID)
			}
			if labels[label] {
				return nil, errors.InvalidArgumentf("select option %s repeats label %q", ro.ID, label)
			}
			labels[label] = true
			opt.Values = append(opt.Values, technique.OptionValue{Label: label, Cost: cost})
		}
		return opt, nil
	default:
		return nil, errors.InvalidArgumentf("option %s has unknown type %q", ro.ID, ro.Type)
	}
}

func extraSlots(effect *technique.Effect, rs *rawExtraSlots) (*technique.ExtraSlotRule, error) {
	for _, id := range []string{rs.CountOption, rs.SourceOption} {
		opt, ok := effect.Option(id)
		if !ok {
			return nil, errors.InvalidArgumentf("extra slots reference unknown option %q", id)
		}
		if _, isSelect := opt.(*technique.SelectOption); !isSelect {
			return nil, errors.InvalidArgumentf("extra slots option %s must be a select", id)
		}
	}
	if rs.SlotPrefix == "" {
		return nil, errors.InvalidArgument("extra slots need a slot prefix")
	}
	for _, opt := range effect.Options {
		if strings.HasPrefix(opt.GetID(), rs.SlotPrefix) {
			return nil, errors.InvalidArgumentf("option %s collides with slot prefix %s", opt.GetID(), rs.SlotPrefix)
		}
	}

	return &technique.ExtraSlotRule{
		CountOptionID:   rs.CountOption,
		SourceOptionID:  rs.SourceOption,
		SlotPrefix:      rs.SlotPrefix,
		SlotName:        rs.SlotName,
		SlotDescription: rs.SlotDescription,
	}, nil
}
