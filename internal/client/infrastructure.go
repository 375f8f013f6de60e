package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shasta-io/shasta/internal/http"
	"github.com/shasta-io/shasta/pkg/shasta"
)

// InfrastructureClient implements shasta.InfrastructureClient.
type InfrastructureClient struct {
	httpClient *http.Client
	mspOrgID   int64
}

// NewInfrastructureClient creates a new infrastructure client. Infra type
// lookups are scoped to the given MSP org.
func NewInfrastructureClient(httpClient *http.Client, mspOrgID int64) *InfrastructureClient {
	return &InfrastructureClient{
		httpClient: httpClient,
		mspOrgID:   mspOrgID,
	}
}

// ListByOrganization implements shasta.InfrastructureClient.ListByOrganization.
func (c *InfrastructureClient) ListByOrganization(ctx context.Context, orgID int64) (*shasta.InfrastructureList, error) {
	path := "/infrastructure/organization/" + strconv.FormatInt(orgID, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing infrastructure for organization: %w", err)
	}

	var list shasta.InfrastructureList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing infrastructure list: %w", err)
	}

	return &list, nil
}

// ListByVenue implements shasta.InfrastructureClient.ListByVenue.
func (c *InfrastructureClient) ListByVenue(ctx context.Context, venueID int64) (*shasta.InfrastructureList, error) {
	path := "/infrastructure/venue/" + strconv.FormatInt(venueID, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing infrastructure for venue: %w", err)
	}

	var list shasta.InfrastructureList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing infrastructure list: %w", err)
	}

	return &list, nil
}

// ListTypes implements shasta.InfrastructureClient.ListTypes.
func (c *InfrastructureClient) ListTypes(ctx context.Context) (*shasta.InfraTypeList, error) {
	query := url.Values{}
	query.Set("orgId", strconv.FormatInt(c.mspOrgID, 10))

	resp, err := c.httpClient.Get(ctx, "/infrastructure/infratype", query)
	if err != nil {
		return nil, fmt.Errorf("listing infra types: %w", err)
	}

	var list shasta.InfraTypeList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing infra types list: %w", err)
	}

	return &list, nil
}

// Create implements shasta.InfrastructureClient.Create.
func (c *InfrastructureClient) Create(ctx context.Context, request *shasta.InfrastructureCreateRequest) (*shasta.Infrastructure, error) {
	resp, err := c.httpClient.Post(ctx, "/infrastructure", request)
	if err != nil {
		return nil, fmt.Errorf("creating infrastructure: %w", err)
	}

	var infra shasta.Infrastructure

	err = json.Unmarshal(resp.Body, &infra)
	if err != nil {
		return nil, fmt.Errorf("parsing infrastructure response: %w", err)
	}

	return &infra, nil
}

// Delete implements shasta.InfrastructureClient.Delete.
func (c *InfrastructureClient) Delete(ctx context.Context, infraID int64) (int, error) {
	path := "/infrastructure/" + strconv.FormatInt(infraID, 10)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		if resp != nil {
			return resp.StatusCode, fmt.Errorf("deleting infrastructure: %w", err)
		}

		return 0, fmt.Errorf("deleting infrastructure: %w", err)
	}

	return resp.StatusCode, nil
}
