package technique

// Category groups catalog effects
type Category string

// Categories
const (
	CategoryOffensive     Category = "Efectos ofensivos"
	CategoryDefensive     Category = "Efectos defensivos"
	CategoryMovement      Category = "Efectos de Movimiento"
	CategorySupport       Category = "Efectos de Apoyo"
	CategoryPenalty       Category = "Efectos de penalización"
	CategorySummoning     Category = "Convocatoria"
	CategoryMiscellaneous Category = "Efectos Varios"
	CategoryDomain        Category = "Efectos de Dominio"
	CategoryDisadvantages Category = "Desventajas"
)

var categoryOrder = []Category{
	CategoryOffensive,
	CategoryDefensive,
	CategoryMovement,
	CategorySupport,
	CategoryPenalty,
	CategorySummoning,
	CategoryMiscellaneous,
	CategoryDomain,
	CategoryDisadvantages,
}

// Categories returns every category in display order
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range categoryOrder {
		if known == c {
			return true
		}
	}
	return false
}
