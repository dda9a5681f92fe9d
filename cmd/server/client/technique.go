package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	techniquev1alpha1 "github.com/KirkDiggler/rpg-technique-api/gen/go/technique/api/v1alpha1"
)

var (
	createName        string
	createDescription string
	techniqueID       string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new technique draft",
	Long:  `Create a new technique draft to start configuring a technique.`,
	RunE:  runCreate,
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a technique draft",
	RunE:  runGet,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a technique draft",
	RunE:  runDelete,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a technique draft to its initial state",
	Long:  `Clear name, description, level, force and every effect of a draft, keeping its ID.`,
	RunE:  runReset,
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Technique name (optional)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Technique description (optional)")

	for _, cmd := range []*cobra.Command{getCmd, deleteCmd, resetCmd} {
		cmd.Flags().StringVar(&techniqueID, "technique-id", "", "Technique ID (required)")
		_ = cmd.MarkFlagRequired("technique-id") // nolint:errcheck // safe to ignore in init
	}
}

func runCreate(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Creating technique draft...")

	resp, err := client.CreateTechnique(ctx, &techniquev1alpha1.CreateTechniqueRequest{
		Name:        createName,
		Description: createDescription,
	})
	if err != nil {
		return callError("create technique", err)
	}

	fmt.Printf("✅ Technique draft created successfully!\n\n")
	printTechnique(resp.Technique, resp.Summary)

	id := resp.Technique.Id
	fmt.Printf("\n💡 Next steps:\n")
	fmt.Printf("1. Choose a level: technique-api client set-level --technique-id %s --level 1\n", id)
	fmt.Printf("2. Choose a force: technique-api client set-force --technique-id %s --force Destrucción\n", id)
	fmt.Printf("3. Browse effects: technique-api client list-catalog --force Destrucción\n")
	fmt.Printf("4. Add effects: technique-api client add-effect --technique-id %s --effect-id <id>\n", id)
	fmt.Printf("5. Export: technique-api client export --technique-id %s\n", id)

	return nil
}

func runGet(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetTechnique(ctx, &techniquev1alpha1.GetTechniqueRequest{TechniqueId: techniqueID})
	if err != nil {
		return callError("get technique", err)
	}

	printTechnique(resp.Technique, resp.Summary)
	return nil
}

func runDelete(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteTechnique(ctx, &techniquev1alpha1.DeleteTechniqueRequest{TechniqueId: techniqueID}); err != nil {
		return callError("delete technique", err)
	}

	fmt.Printf("✅ Technique %s deleted\n", techniqueID)
	return nil
}

func runReset(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResetTechnique(ctx, &techniquev1alpha1.ResetTechniqueRequest{TechniqueId: techniqueID})
	if err != nil {
		return callError("reset technique", err)
	}

	fmt.Printf("✅ Technique reset\n\n")
	printTechnique(resp.Technique, resp.Summary)
	return nil
}
