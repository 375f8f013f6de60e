package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shasta-io/shasta/pkg/shasta"
)

// NewVenuesCommand creates the venues command group.
func NewVenuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "venues",
		Aliases: []string{"venue"},
		Short:   "Manage venues",
		Long:    "List, create, and delete venues within an organization",
	}

	cmd.AddCommand(newVenuesListCommand())
	cmd.AddCommand(newVenuesCreateCommand())
	cmd.AddCommand(newVenuesDeleteCommand())

	return cmd
}

func newVenuesListCommand() *cobra.Command {
	var (
		orgID  int64
		search string
		offset int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List venues",
		Long:  "List the venues of an organization, optionally filtered by a search query",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if orgID == 0 {
				orgID = viper.GetInt64("org")
			}

			params := shasta.NewListParams().
				WithWindow(offset, limit).
				WithSearch(search)

			venues, err := client.Venues().List(context.Background(), orgID, params)
			if err != nil {
				return fmt.Errorf("failed to list venues: %w", err)
			}

			return outputVenues(venues)
		},
	}

	cmd.Flags().Int64Var(&orgID, "org-id", 0, "organization ID (defaults to the MSP org)")
	cmd.Flags().StringVar(&search, "search", "", "search query")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().IntVar(&limit, "limit", shasta.DefaultLimit, "results per page")

	return cmd
}

func outputVenues(venues *shasta.VenueList) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(venues)
	case OutputFormatYAML:
		return StandardYAMLRenderer(venues)
	default:
		return renderVenueTable(venues)
	}
}

func renderVenueTable(venues *shasta.VenueList) error {
	if len(venues.Data) == 0 {
		_, _ = os.Stdout.WriteString("No venues found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Org", "Address")

	for _, venue := range venues.Data {
		address := ""
		if venue.VenueAddress != nil {
			address = venue.VenueAddress.AddressLine
		}

		_ = table.Append(
			strconv.FormatInt(venue.ID, 10),
			venue.Name,
			strconv.FormatInt(venue.OrgID, 10),
			address)
	}

	_ = table.Render()

	return nil
}

func newVenuesCreateCommand() *cobra.Command {
	var (
		orgID   int64
		name    string
		address string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a venue",
		Long:  "Create a new venue; the address is used for both the venue and shipping records",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if orgID == 0 {
				orgID = viper.GetInt64("org")
			}

			venue, err := client.Venues().Create(context.Background(),
				shasta.NewVenueCreateRequest(orgID, name, address))
			if err != nil {
				return fmt.Errorf("failed to create venue: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created venue '%s' (ID %d)\n", venue.Name, venue.ID)

			return nil
		},
	}

	cmd.Flags().Int64Var(&orgID, "org-id", 0, "organization ID (defaults to the MSP org)")
	cmd.Flags().StringVar(&name, "name", "", "venue name")
	cmd.Flags().StringVar(&address, "address", "", "venue address")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newVenuesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete VENUE_ID",
		Short: "Delete a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			venueID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid venue ID '%s': %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			status, err := client.Venues().Delete(context.Background(), venueID)
			if err != nil {
				return fmt.Errorf("failed to delete venue: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleted venue %d (status %d)\n", venueID, status)

			return nil
		},
	}
}
