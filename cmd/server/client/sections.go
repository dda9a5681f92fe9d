package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	techniquev1alpha1 "github.com/KirkDiggler/rpg-technique-api/gen/go/technique/api/v1alpha1"
)

var (
	level          string
	force          string
	detailsName    string
	detailsDesc    string
	resistanceCost string
)

var setLevelCmd = &cobra.Command{
	Use:   "set-level",
	Short: "Set the power level of a technique",
	Long: `Set the power level: Apoyo, Nivel 1, Nivel 2 or Nivel 3 (or support, 1, 2, 3).
Changing the level removes every effect.`,
	RunE: runSetLevel,
}

var setForceCmd = &cobra.Command{
	Use:   "set-force",
	Short: "Set the dominant force of a technique",
	Long:  `Set the dominant force. Accents and case are ignored; an empty value clears it.`,
	RunE:  runSetForce,
}

var updateDetailsCmd = &cobra.Command{
	Use:   "update-details",
	Short: "Update name and description of a technique",
	Long:  `Update name and description. Only the flags given are changed.`,
	RunE:  runUpdateDetails,
}

var setResistanceCmd = &cobra.Command{
	Use:   "set-resistance",
	Short: "Override the resistance cost of a technique",
	RunE:  runSetResistance,
}

func init() {
	for _, cmd := range []*cobra.Command{setLevelCmd, setForceCmd, updateDetailsCmd, setResistanceCmd} {
		cmd.Flags().StringVar(&techniqueID, "technique-id", "", "Technique ID (required)")
		_ = cmd.MarkFlagRequired("technique-id") // nolint:errcheck // safe to ignore in init
	}

	setLevelCmd.Flags().StringVar(&level, "level", "", "Power level (required)")
	_ = setLevelCmd.MarkFlagRequired("level") // nolint:errcheck // safe to ignore in init

	setForceCmd.Flags().StringVar(&force, "force", "", "Dominant force")

	updateDetailsCmd.Flags().StringVar(&detailsName, "name", "", "Technique name")
	updateDetailsCmd.Flags().StringVar(&detailsDesc, "description", "", "Technique description")

	setResistanceCmd.Flags().StringVar(&resistanceCost, "value", "", "Resistance cost (required)")
	_ = setResistanceCmd.MarkFlagRequired("value") // nolint:errcheck // safe to ignore in init
}

func runSetLevel(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetLevel(ctx, &techniquev1alpha1.SetLevelRequest{
		TechniqueId: techniqueID,
		Level:       level,
	})
	if err != nil {
		return callError("set level", err)
	}

	fmt.Printf("✅ Level set to %s\n", resp.Technique.Level)
	if resp.RemovedEffects > 0 {
		fmt.Printf("⚠️  %d effect(s) removed\n", resp.RemovedEffects)
	}
	fmt.Println()
	printTechnique(resp.Technique, resp.Summary)
	return nil
}

func runSetForce(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetForce(ctx, &techniquev1alpha1.SetForceRequest{
		TechniqueId: techniqueID,
		Force:       force,
	})
	if err != nil {
		return callError("set force", err)
	}

	fmt.Printf("✅ Force set to %s\n\n", orDash(resp.Technique.Force))
	printTechnique(resp.Technique, resp.Summary)
	return nil
}

func runUpdateDetails(cmd *cobra.Command, _ []string) error {
	req := &techniquev1alpha1.UpdateDetailsRequest{TechniqueId: techniqueID}
	if cmd.Flags().Changed("name") {
		req.Name = &detailsName
	}
	if cmd.Flags().Changed("description") {
		req.Description = &detailsDesc
	}
	if req.Name == nil && req.Description == nil {
		return fmt.Errorf("nothing to update, pass --name or --description")
	}

	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.UpdateDetails(ctx, req)
	if err != nil {
		return callError("update details", err)
	}

	fmt.Printf("✅ Details updated\n\n")
	printTechnique(resp.Technique, resp.Summary)
	return nil
}

func runSetResistance(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetResistanceCost(ctx, &techniquev1alpha1.SetResistanceCostRequest{
		TechniqueId: techniqueID,
		Value:       resistanceCost,
	})
	if err != nil {
		return callError("set resistance cost", err)
	}

	fmt.Printf("✅ Resistance cost set to %d\n\n", resp.Technique.ResistanceCost)
	printTechnique(resp.Technique, resp.Summary)
	return nil
}
