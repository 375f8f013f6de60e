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

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organizations", "org"},
		Short:   "Manage organizations",
		Long:    "List, create, and delete business organizations under the MSP account",
	}

	cmd.AddCommand(newOrgsListCommand())
	cmd.AddCommand(newOrgsCreateCommand())
	cmd.AddCommand(newOrgsDeleteCommand())

	return cmd
}

func newOrgsListCommand() *cobra.Command {
	var (
		search  string
		offset  int
		limit   int
		order   string
		orderBy string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long:  "List the child organizations of the configured MSP org, optionally filtered by a search query",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrgsListCommand(search, offset, limit, order, orderBy)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search query")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().IntVar(&limit, "limit", shasta.DefaultLimit, "results per page")
	cmd.Flags().StringVar(&order, "order", shasta.OrderDescending, "sort order (ASC or DESC)")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "field to sort by")

	return cmd
}

func runOrgsListCommand(search string, offset, limit int, order, orderBy string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := shasta.NewListParams().
		WithWindow(offset, limit).
		WithOrderBy(orderBy).
		WithSearch(search)
	params.Order = order

	orgs, err := client.Organizations().List(context.Background(), params)
	if err != nil {
		return fmt.Errorf("failed to list organizations: %w", err)
	}

	return outputOrganizations(orgs)
}

func outputOrganizations(orgs *shasta.OrganizationList) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(orgs)
	case OutputFormatYAML:
		return StandardYAMLRenderer(orgs)
	default:
		return renderOrganizationTable(orgs)
	}
}

func renderOrganizationTable(orgs *shasta.OrganizationList) error {
	if len(orgs.Data) == 0 {
		_, _ = os.Stdout.WriteString("No organizations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Parent")

	for _, org := range orgs.Data {
		_ = table.Append(
			strconv.FormatInt(org.ID, 10),
			org.DisplayName,
			strconv.FormatInt(org.TypeID, 10),
			strconv.FormatInt(org.ParentID, 10))
	}

	_ = table.Render()

	if orgs.TotalCount > len(orgs.Data) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d organizations. Use --offset and --limit to page.\n",
			len(orgs.Data), orgs.TotalCount)
	}

	return nil
}

func newOrgsCreateCommand() *cobra.Command {
	var (
		name     string
		typeID   int64
		parentID int64
		address  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an organization",
		Long:  "Create a new child organization; the address is used for both the org and billing records",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if parentID == 0 {
				parentID = viper.GetInt64("org")
			}

			org, err := client.Organizations().Create(context.Background(),
				shasta.NewOrganizationCreateRequest(name, typeID, parentID, address))
			if err != nil {
				return fmt.Errorf("failed to create organization: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created organization '%s' (ID %d)\n", org.DisplayName, org.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "organization display name")
	cmd.Flags().Int64Var(&typeID, "type", 0, "organization type ID")
	cmd.Flags().Int64Var(&parentID, "parent", 0, "parent organization ID (defaults to the MSP org)")
	cmd.Flags().StringVar(&address, "address", "", "organization address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newOrgsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ORG_ID",
		Short: "Delete an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid organization ID '%s': %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			status, err := client.Organizations().Delete(context.Background(), orgID)
			if err != nil {
				return fmt.Errorf("failed to delete organization: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleted organization %d (status %d)\n", orgID, status)

			return nil
		},
	}
}
