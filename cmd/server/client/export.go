package client

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	techniquev1alpha1 "github.com/KirkDiggler/rpg-technique-api/gen/go/technique/api/v1alpha1"
)

var (
	exportOut  string
	exportFile bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a technique as plain text",
	Long: `Print the technique as plain text, or write it with --out <path>.
--file writes it under the suggested name in the current directory.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&techniqueID, "technique-id", "", "Technique ID (required)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write the text to this path")
	exportCmd.Flags().BoolVar(&exportFile, "file", false, "Write the text to the suggested file name")
	_ = exportCmd.MarkFlagRequired("technique-id") // nolint:errcheck // safe to ignore in init
	exportCmd.MarkFlagsMutuallyExclusive("out", "file")
}

func runExport(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ExportText(ctx, &techniquev1alpha1.ExportTextRequest{TechniqueId: techniqueID})
	if err != nil {
		return callError("export technique", err)
	}

	path := exportOut
	if exportFile {
		path = resp.FileName
	}
	if path == "" {
		fmt.Print(resp.Text)
		return nil
	}

	if err := os.WriteFile(path, []byte(resp.Text), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Printf("Wrote %s", path)
	fmt.Printf("✅ Technique exported to %s\n", path)
	return nil
}
