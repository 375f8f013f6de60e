package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shasta-io/shasta/pkg/shasta"
)

// ErrInfraScopeRequired is returned when neither --org-id nor --venue-id is given.
var ErrInfraScopeRequired = errors.New("either --org-id or --venue-id is required")

// NewInfraCommand creates the infrastructure command group.
func NewInfraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "infra",
		Aliases: []string{"infrastructure"},
		Short:   "Manage infrastructure records",
		Long:    "List, register, and delete infrastructure records (managed network devices)",
	}

	cmd.AddCommand(newInfraListCommand())
	cmd.AddCommand(newInfraTypesCommand())
	cmd.AddCommand(newInfraAddCommand())
	cmd.AddCommand(newInfraDeleteCommand())

	return cmd
}

func newInfraListCommand() *cobra.Command {
	var (
		orgID   int64
		venueID int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List infrastructure records",
		Long:  "List the infrastructure records of an organization or a venue",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var infra *shasta.InfrastructureList

			switch {
			case venueID != 0:
				infra, err = client.Infrastructure().ListByVenue(ctx, venueID)
			case orgID != 0:
				infra, err = client.Infrastructure().ListByOrganization(ctx, orgID)
			default:
				return ErrInfraScopeRequired
			}

			if err != nil {
				return fmt.Errorf("failed to list infrastructure: %w", err)
			}

			return outputInfrastructure(infra)
		},
	}

	cmd.Flags().Int64Var(&orgID, "org-id", 0, "organization ID")
	cmd.Flags().Int64Var(&venueID, "venue-id", 0, "venue ID")

	return cmd
}

func outputInfrastructure(infra *shasta.InfrastructureList) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(infra)
	case OutputFormatYAML:
		return StandardYAMLRenderer(infra)
	default:
		return renderInfrastructureTable(infra)
	}
}

func renderInfrastructureTable(infra *shasta.InfrastructureList) error {
	if len(infra.Data) == 0 {
		_, _ = os.Stdout.WriteString("No infrastructure found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "MAC", "Type", "Venue")

	for _, record := range infra.Data {
		_ = table.Append(
			strconv.FormatInt(record.ID, 10),
			record.DisplayName,
			record.MACAddress,
			strconv.FormatInt(record.InfraTypeID, 10),
			strconv.FormatInt(record.VenueID, 10))
	}

	_ = table.Render()

	return nil
}

func newInfraTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List infrastructure types",
		Long:  "List the infrastructure types available to the MSP org",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			types, err := client.Infrastructure().ListTypes(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list infra types: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(types)
			case OutputFormatYAML:
				return StandardYAMLRenderer(types)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Description")

				for _, infraType := range types.Data {
					_ = table.Append(strconv.FormatInt(infraType.ID, 10), infraType.Name, infraType.Description)
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func newInfraAddCommand() *cobra.Command {
	var (
		orgID       int64
		venueID     int64
		infraTypeID int64
		macAddress  string
		name        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an infrastructure record",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if orgID == 0 {
				orgID = viper.GetInt64("org")
			}

			infra, err := client.Infrastructure().Create(context.Background(),
				shasta.NewInfrastructureCreateRequest(orgID, venueID, infraTypeID, macAddress, name))
			if err != nil {
				return fmt.Errorf("failed to create infrastructure: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created infrastructure '%s' (ID %d)\n", infra.DisplayName, infra.ID)

			return nil
		},
	}

	cmd.Flags().Int64Var(&orgID, "org-id", 0, "organization ID (defaults to the MSP org)")
	cmd.Flags().Int64Var(&venueID, "venue-id", 0, "venue ID")
	cmd.Flags().Int64Var(&infraTypeID, "type", 0, "infrastructure type ID")
	cmd.Flags().StringVar(&macAddress, "mac", "", "device MAC address")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("venue-id")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("mac")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newInfraDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INFRA_ID",
		Short: "Delete an infrastructure record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infraID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid infrastructure ID '%s': %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			status, err := client.Infrastructure().Delete(context.Background(), infraID)
			if err != nil {
				return fmt.Errorf("failed to delete infrastructure: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleted infrastructure %d (status %d)\n", infraID, status)

			return nil
		},
	}
}
