package client

import (
	"fmt"
	"strings"
	"time"

	techniquev1alpha1 "github.com/KirkDiggler/rpg-technique-api/gen/go/technique/api/v1alpha1"
	"github.com/KirkDiggler/rpg-technique-api/internal/services/export"
)

func printTechnique(t *techniquev1alpha1.Technique, s *techniquev1alpha1.Summary) {
	if t == nil {
		return
	}

	fmt.Printf("Technique ID: %s\n", t.Id)
	fmt.Printf("Name: %s\n", orDash(t.Name))
	if t.Description != "" {
		fmt.Printf("Description: %s\n", t.Description)
	}
	fmt.Printf("Level: %s\n", orDash(t.Level))
	fmt.Printf("Force: %s\n", orDash(t.Force))
	fmt.Printf("Resistance Cost: %d\n", t.ResistanceCost)
	if t.ExpiresAt > 0 {
		fmt.Printf("Expires At: %s\n", time.Unix(t.ExpiresAt, 0).Format(time.RFC3339))
	}

	if s != nil {
		fmt.Printf("\nBudget: %d / %d PC", s.TotalCost, s.Budget)
		if s.OverBudget {
			fmt.Printf(" (over budget)")
		}
		fmt.Println()
	}

	fmt.Printf("\nEffects (%d):\n", len(t.Effects))
	if len(t.Effects) == 0 {
		fmt.Printf("  (none)\n")
	}
	for _, inst := range t.Effects {
		printInstance(inst)
	}

	if s != nil && len(s.IncompatibleInstanceIds) > 0 {
		fmt.Printf("\n⚠️  Incompatible with %s: %s\n", t.Force, strings.Join(s.IncompatibleInstanceIds, ", "))
	}
}

func printInstance(inst *techniquev1alpha1.EffectInstance) {
	if inst == nil {
		return
	}

	secondary := ""
	if inst.IsSecondary {
		secondary = " [secondary]"
	}
	fmt.Printf("  - %s (%s) %s: %s%s\n",
		inst.EffectName, inst.Id, inst.Category, export.SignedCost(int(inst.FinalCost)), secondary)
	for _, so := range inst.SelectedOptions {
		fmt.Printf("      %s = %s (%s)\n", so.Name, so.Value, export.SignedCost(int(so.Cost)))
	}
}

func printEffect(e *techniquev1alpha1.Effect) {
	restricted := ""
	if len(e.Restrictions) > 0 {
		restricted = fmt.Sprintf(" [not with %s]", strings.Join(e.Restrictions, ", "))
	}
	fmt.Printf("  %s - %s (%s)%s\n", e.Id, e.Name, export.SignedCost(int(e.BaseCost)), restricted)
	for _, opt := range e.Options {
		switch {
		case len(opt.Values) > 0:
			labels := make([]string, 0, len(opt.Values))
			for _, v := range opt.Values {
				labels = append(labels, fmt.Sprintf("%s %s", v.Label, export.SignedCost(int(v.Cost))))
			}
			fmt.Printf("      %s (%s): %s\n", opt.Id, opt.Kind, strings.Join(labels, " | "))
		case opt.Cost != 0:
			fmt.Printf("      %s (%s): %s\n", opt.Id, opt.Kind, export.SignedCost(int(opt.Cost)))
		default:
			fmt.Printf("      %s (%s)\n", opt.Id, opt.Kind)
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
