package technique

// Force is the dominant thematic force of a technique. The zero value means
// no force has been chosen.
type Force string

// Forces
const (
	ForceNone           Force = ""
	ForceDestruction    Force = "Destrucción"
	ForceConservation   Force = "Conservación"
	ForceTransformation Force = "Transformación"
	ForceCreation       Force = "Creación"
	ForceOrder          Force = "Orden"
	ForceChaos          Force = "Caos"
)

// ForceInfo describes a force for display
type ForceInfo struct {
	Force       Force
	Description string
	Color       string
}

var forceTable = []ForceInfo{
	{ForceDestruction, "La senda de quienes rompen y terminan. Daño y combate.", "rose"},
	{ForceConservation, "La senda del cuidado y la preservación. Curación y defensas.", "emerald"},
	{ForceTransformation, "La senda del cambio constante. Control elemental y del entorno.", "amber"},
	{ForceCreation, "La senda de dar forma a lo nuevo. Invocaciones e ilusiones.", "sky"},
	{ForceOrder, "La senda del equilibrio y la estructura. Control y sellos.", "zinc"},
	{ForceChaos, "La senda de lo indomable y contradictorio. Efectos aleatorios y daño persistente.", "violet"},
}

// Forces returns every force in display order
func Forces() []ForceInfo {
	out := make([]ForceInfo, len(forceTable))
	copy(out, forceTable)
	return out
}

// Info returns the display entry of the force
func (f Force) Info() (ForceInfo, bool) {
	for _, info := range forceTable {
		if info.Force == f {
			return info, true
		}
	}
	return ForceInfo{}, false
}

// IsValid reports whether f is one of the known forces
func (f Force) IsValid() bool {
	_, ok := f.Info()
	return ok
}
