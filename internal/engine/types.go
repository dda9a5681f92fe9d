package engine

import (
	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
)

// Summary holds the derived budget figures of a technique
type Summary struct {
	Budget                  int
	TotalCost               int
	OverBudget              bool
	CanAdd                  bool
	IncompatibleInstanceIDs []string
}

// Preview is the price of an effect if it were added now
type Preview struct {
	Selected         []technique.SelectedOption
	Options          []technique.Option
	PreSurchargeCost int
	IsSecondary      bool
	Surcharge        int
	FinalCost        int
	Compatible       bool
	CanAdd           bool
	FitsBudget       bool
}
