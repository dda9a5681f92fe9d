package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	techniquev1alpha1 "github.com/KirkDiggler/rpg-technique-api/gen/go/technique/api/v1alpha1"
)

var (
	effectID   string
	instanceID string
	rawChoices []string
)

var addEffectCmd = &cobra.Command{
	Use:   "add-effect",
	Short: "Add an effect to a technique",
	Long: `Add a catalog effect configured by repeated --choice option=value flags.
Booleans take "true"; extra slots take the label to pick.`,
	RunE: runAddEffect,
}

var removeEffectCmd = &cobra.Command{
	Use:   "remove-effect",
	Short: "Remove an effect instance from a technique",
	RunE:  runRemoveEffect,
}

var previewEffectCmd = &cobra.Command{
	Use:   "preview-effect",
	Short: "Price an effect without adding it",
	Long: `Price an effect with the given choices. With --technique-id the price
includes the secondary surcharge and the budget check of that technique.`,
	RunE: runPreviewEffect,
}

func init() {
	addEffectCmd.Flags().StringVar(&techniqueID, "technique-id", "", "Technique ID (required)")
	addEffectCmd.Flags().StringVar(&effectID, "effect-id", "", "Effect ID (required)")
	addEffectCmd.Flags().StringArrayVar(&rawChoices, "choice", nil, "Option choice as option=value, repeatable")
	_ = addEffectCmd.MarkFlagRequired("technique-id") // nolint:errcheck // safe to ignore in init
	_ = addEffectCmd.MarkFlagRequired("effect-id")    // nolint:errcheck // safe to ignore in init

	removeEffectCmd.Flags().StringVar(&techniqueID, "technique-id", "", "Technique ID (required)")
	removeEffectCmd.Flags().StringVar(&instanceID, "instance-id", "", "Effect instance ID (required)")
	_ = removeEffectCmd.MarkFlagRequired("technique-id") // nolint:errcheck // safe to ignore in init
	_ = removeEffectCmd.MarkFlagRequired("instance-id")  // nolint:errcheck // safe to ignore in init

	previewEffectCmd.Flags().StringVar(&techniqueID, "technique-id", "", "Technique ID (optional)")
	previewEffectCmd.Flags().StringVar(&effectID, "effect-id", "", "Effect ID (required)")
	previewEffectCmd.Flags().StringArrayVar(&rawChoices, "choice", nil, "Option choice as option=value, repeatable")
	_ = previewEffectCmd.MarkFlagRequired("effect-id") // nolint:errcheck // safe to ignore in init
}

func runAddEffect(_ *cobra.Command, _ []string) error {
	choices, err := parseChoices(rawChoices)
	if err != nil {
		return err
	}

	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AddEffect(ctx, &techniquev1alpha1.AddEffectRequest{
		TechniqueId: techniqueID,
		EffectId:    effectID,
		Choices:     choices,
	})
	if err != nil {
		return callError("add effect", err)
	}

	fmt.Printf("✅ Effect added\n")
	printInstance(resp.Instance)
	fmt.Println()
	printTechnique(resp.Technique, resp.Summary)
	return nil
}

func runRemoveEffect(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RemoveEffect(ctx, &techniquev1alpha1.RemoveEffectRequest{
		TechniqueId: techniqueID,
		InstanceId:  instanceID,
	})
	if err != nil {
		return callError("remove effect", err)
	}

	fmt.Printf("✅ Effect %s removed\n\n", instanceID)
	printTechnique(resp.Technique, resp.Summary)
	return nil
}

func runPreviewEffect(_ *cobra.Command, _ []string) error {
	choices, err := parseChoices(rawChoices)
	if err != nil {
		return err
	}

	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PreviewEffect(ctx, &techniquev1alpha1.PreviewEffectRequest{
		TechniqueId: techniqueID,
		EffectId:    effectID,
		Choices:     choices,
	})
	if err != nil {
		return callError("preview effect", err)
	}

	printEffect(resp.Effect)
	if len(resp.Options) > len(resp.Effect.Options) {
		fmt.Printf("\nExtra slots:\n")
		for _, opt := range resp.Options[len(resp.Effect.Options):] {
			fmt.Printf("  %s: %s\n", opt.Id, opt.Name)
		}
	}

	fmt.Printf("\nSelected:\n")
	if len(resp.Selected) == 0 {
		fmt.Printf("  (none)\n")
	}
	for _, so := range resp.Selected {
		fmt.Printf("  %s = %s (%d PC)\n", so.Name, so.Value, so.Cost)
	}

	fmt.Printf("\nCost: %d PC", resp.PreSurchargeCost)
	if resp.IsSecondary {
		fmt.Printf(" + %d PC secondary surcharge", resp.Surcharge)
	}
	fmt.Printf(" = %d PC\n", resp.FinalCost)
	fmt.Printf("Compatible: %v\n", resp.Compatible)
	fmt.Printf("Can Add: %v\n", resp.CanAdd)
	fmt.Printf("Fits Budget: %v\n", resp.FitsBudget)
	return nil
}
