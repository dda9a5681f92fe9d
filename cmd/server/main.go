// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-technique-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "technique-api",
	Short: "Technique configurator gRPC Server",
	Long: `Technique API provides a gRPC interface for configuring RPG techniques:
choose a power level and a dominant force, add priced effects from the catalog
and export the result as text.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
