package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	techniquev1alpha1 "github.com/KirkDiggler/rpg-technique-api/gen/go/technique/api/v1alpha1"
)

var (
	catalogForce    string
	catalogCategory string
)

var listCatalogCmd = &cobra.Command{
	Use:   "list-catalog",
	Short: "List levels, forces and effects",
	Long:  `List the reference data. --force hides effects restricted for that force.`,
	RunE:  runListCatalog,
}

func init() {
	listCatalogCmd.Flags().StringVar(&catalogForce, "force", "", "Only effects legal under this force")
	listCatalogCmd.Flags().StringVar(&catalogCategory, "category", "", "Only effects of this category")
}

func runListCatalog(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCatalog(ctx, &techniquev1alpha1.ListCatalogRequest{
		Force:    catalogForce,
		Category: catalogCategory,
	})
	if err != nil {
		return callError("list catalog", err)
	}

	fmt.Printf("Levels:\n")
	for _, l := range resp.Levels {
		fmt.Printf("  %s: budget %d PC, resistance %d\n", l.Level, l.Budget, l.ResistanceCost)
	}

	fmt.Printf("\nForces:\n")
	for _, f := range resp.Forces {
		fmt.Printf("  %s (%s): %s\n", f.Force, f.Color, f.Description)
	}

	byCategory := make(map[string][]*techniquev1alpha1.Effect, len(resp.Categories))
	for _, e := range resp.Effects {
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}

	fmt.Printf("\nEffects (%d):\n", len(resp.Effects))
	for _, category := range resp.Categories {
		effects := byCategory[category]
		if len(effects) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", category)
		for _, e := range effects {
			printEffect(e)
		}
	}

	return nil
}
