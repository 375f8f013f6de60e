package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shasta-io/shasta/internal/constants"
	"github.com/shasta-io/shasta/internal/http"
	"github.com/shasta-io/shasta/pkg/shasta"
)

// VenuesClient implements shasta.VenuesClient.
type VenuesClient struct {
	httpClient *http.Client
}

// NewVenuesClient creates a new venues client.
func NewVenuesClient(httpClient *http.Client) *VenuesClient {
	return &VenuesClient{
		httpClient: httpClient,
	}
}

// List implements shasta.VenuesClient.List.
func (c *VenuesClient) List(ctx context.Context, orgID int64, params *shasta.ListParams) (*shasta.VenueList, error) {
	if params == nil {
		params = shasta.NewListParams()
	}

	if params.OrderBy == "" {
		params.OrderBy = constants.VenueOrderBy
	}

	values := params.ToValues()
	values.Set("orgId", strconv.FormatInt(orgID, 10))

	resp, err := c.httpClient.Get(ctx, "/venues", values)
	if err != nil {
		return nil, fmt.Errorf("listing venues: %w", err)
	}

	var list shasta.VenueList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing venues list: %w", err)
	}

	return &list, nil
}

// Create implements shasta.VenuesClient.Create.
func (c *VenuesClient) Create(ctx context.Context, request *shasta.VenueCreateRequest) (*shasta.Venue, error) {
	resp, err := c.httpClient.Post(ctx, "/venues", request)
	if err != nil {
		return nil, fmt.Errorf("creating venue: %w", err)
	}

	var venue shasta.Venue

	err = json.Unmarshal(resp.Body, &venue)
	if err != nil {
		return nil, fmt.Errorf("parsing venue response: %w", err)
	}

	return &venue, nil
}

// Delete implements shasta.VenuesClient.Delete.
func (c *VenuesClient) Delete(ctx context.Context, venueID int64) (int, error) {
	path := "/venues/" + strconv.FormatInt(venueID, 10)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		if resp != nil {
			return resp.StatusCode, fmt.Errorf("deleting venue: %w", err)
		}

		return 0, fmt.Errorf("deleting venue: %w", err)
	}

	return resp.StatusCode, nil
}
