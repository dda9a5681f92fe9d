package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

// BudgetFor returns the PC budget of a level, 0 when no level is chosen
func BudgetFor(level technique.PowerLevel) int {
	info, ok := level.Info()
	if !ok {
		return 0
	}
	return info.Budget
}

// ResistanceCostFor returns the base resistance cost of a level
func ResistanceCostFor(level technique.PowerLevel) int {
	info, ok := level.Info()
	if !ok {
		return 0
	}
	return info.ResistanceCost
}

// TotalCost sums the final cost of every instance. It may be negative.
func TotalCost(instances []technique.EffectInstance) int {
	total := 0
	for _, inst := range instances {
		total += inst.FinalCost
	}
	return total
}

// IsOverBudget reports total > budget
func IsOverBudget(total, budget int) bool {
	return total > budget
}

// CanAdd is the advisory admission check: effects can be added once a power
// level is chosen, whatever the budget says
func CanAdd(t *technique.Technique) bool {
	return t.HasLevel()
}

// ProspectiveSurcharge is the surcharge an effect with the given
// pre-surcharge cost would pay if appended now
func ProspectiveSurcharge(t *technique.Technique, preSurchargeCost int) int {
	return Surcharge(len(t.Effects) > 0, preSurchargeCost)
}

// FitsBudget is the strict admission check: a level is chosen and the
// candidate, surcharge included, keeps the total within budget
func FitsBudget(t *technique.Technique, preSurchargeCost int) bool {
	if !t.HasLevel() {
		return false
	}
	total := TotalCost(t.Effects) + preSurchargeCost + ProspectiveSurcharge(t, preSurchargeCost)
	return total <= BudgetFor(t.Level)
}

// ChangeLevel sets the power level, discards every instance and resets the
// resistance cost to the level's base value
func ChangeLevel(t *technique.Technique, level technique.PowerLevel) {
	t.Level = level
	t.Effects = []technique.EffectInstance{}
	t.ResistanceCost = ResistanceCostFor(level)
}

// MaxResistanceCost caps the magnitude of a parsed resistance cost
const MaxResistanceCost = math.MaxInt32

// ParseResistanceCost reads a leading integer from user input, the way a
// form field does: "12" and "12 pts" give 12, anything without leading
// digits gives 0. Values too large saturate at MaxResistanceCost.
func ParseResistanceCost(raw string) int {
	s := raw
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n') {
		s = s[1:]
	}

	sign := 1
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		d := int(r - '0')
		if n > (MaxResistanceCost-d)/10 {
			n = MaxResistanceCost
		} else {
			n = n*10 + d
		}
		digits++
	}
	if digits == 0 {
		return 0
	}
	return sign * n
}
