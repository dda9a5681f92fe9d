// Package client provides test commands for the Technique API gRPC service
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	techniquev1alpha1 "github.com/KirkDiggler/rpg-technique-api/gen/go/technique/api/v1alpha1"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Technique API",
	Long:  `Client commands allow you to build techniques by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Draft lifecycle
	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(deleteCmd)
	ClientCmd.AddCommand(resetCmd)

	// Sections
	ClientCmd.AddCommand(setLevelCmd)
	ClientCmd.AddCommand(setForceCmd)
	ClientCmd.AddCommand(updateDetailsCmd)
	ClientCmd.AddCommand(setResistanceCmd)

	// Effects
	ClientCmd.AddCommand(addEffectCmd)
	ClientCmd.AddCommand(removeEffectCmd)
	ClientCmd.AddCommand(previewEffectCmd)

	// Reference data and output
	ClientCmd.AddCommand(listCatalogCmd)
	ClientCmd.AddCommand(exportCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createTechniqueClient creates a technique service client
func createTechniqueClient() (techniquev1alpha1.TechniqueServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	client := techniquev1alpha1.NewTechniqueServiceClient(conn)
	return client, cleanup, nil
}

// callError turns a gRPC status back into a readable error
func callError(action string, err error) error {
	err = errors.FromGRPCError(err)
	return fmt.Errorf("failed to %s: [%s] %s", action, errors.GetCode(err), errors.GetMessage(err))
}

// parseChoices reads option=value pairs. The value may be empty.
func parseChoices(raw []string) ([]*techniquev1alpha1.Choice, error) {
	choices := make([]*techniquev1alpha1.Choice, 0, len(raw))
	for _, r := range raw {
		optionID, value, ok := strings.Cut(r, "=")
		optionID = strings.TrimSpace(optionID)
		if !ok || optionID == "" {
			return nil, fmt.Errorf("invalid choice %q, expected option=value", r)
		}
		choices = append(choices, &techniquev1alpha1.Choice{OptionId: optionID, Value: value})
	}
	return choices, nil
}
