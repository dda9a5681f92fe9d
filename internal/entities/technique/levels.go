package technique

// PowerLevel is the tier that sets a technique's PC budget.
// The zero value means no level has been chosen yet.
type PowerLevel string

// Power levels in ascending order
const (
	PowerLevelUnset   PowerLevel = ""
	PowerLevelSupport PowerLevel = "Apoyo"
	PowerLevel1       PowerLevel = "Nivel 1"
	PowerLevel2       PowerLevel = "Nivel 2"
	PowerLevel3       PowerLevel = "Nivel 3"
)

// LevelInfo is the fixed lookup entry of a power level
type LevelInfo struct {
	Level          PowerLevel
	ResistanceCost int
	Budget         int
}

var levelTable = []LevelInfo{
	{Level: PowerLevelSupport, ResistanceCost: 1, Budget: 5},
	{Level: PowerLevel1, ResistanceCost: 2, Budget: 10},
	{Level: PowerLevel2, ResistanceCost: 4, Budget: 15},
	{Level: PowerLevel3, ResistanceCost: 6, Budget: 25},
}

// PowerLevels returns every level in ascending order
func PowerLevels() []LevelInfo {
	out := make([]LevelInfo, len(levelTable))
	copy(out, levelTable)
	return out
}

// Info returns the lookup entry of the level
func (l PowerLevel) Info() (LevelInfo, bool) {
	for _, info := range levelTable {
		if info.Level == l {
			return info, true
		}
	}
	return LevelInfo{}, false
}

// IsValid reports whether l is one of the known levels
func (l PowerLevel) IsValid() bool {
	_, ok := l.Info()
	return ok
}

// ParsePowerLevel maps user input to a level. Besides the display names it
// accepts the short forms "support", "1", "2" and "3".
func ParsePowerLevel(s string) (PowerLevel, bool) {
	switch s {
	case "support", "apoyo":
		return PowerLevelSupport, true
	case "1":
		return PowerLevel1, true
	case "2":
		return PowerLevel2, true
	case "3":
		return PowerLevel3, true
	}
	l := PowerLevel(s)
	return l, l.IsValid()
}
