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

// OrganizationsClient implements shasta.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *http.Client
	mspOrgID   int64
}

// NewOrganizationsClient creates a new organizations client scoped to the
// given MSP org.
func NewOrganizationsClient(httpClient *http.Client, mspOrgID int64) *OrganizationsClient {
	return &OrganizationsClient{
		httpClient: httpClient,
		mspOrgID:   mspOrgID,
	}
}

// List implements shasta.OrganizationsClient.List.
func (c *OrganizationsClient) List(ctx context.Context, params *shasta.ListParams) (*shasta.OrganizationList, error) {
	path := "/organization/" + strconv.FormatInt(c.mspOrgID, 10) + "/child"

	if params == nil {
		params = shasta.NewListParams()
	}

	if params.OrderBy == "" {
		params.OrderBy = constants.OrgOrderBy
	}

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	var list shasta.OrganizationList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing organizations list: %w", err)
	}

	return &list, nil
}

// Create implements shasta.OrganizationsClient.Create.
func (c *OrganizationsClient) Create(ctx context.Context, request *shasta.OrganizationCreateRequest) (*shasta.Organization, error) {
	resp, err := c.httpClient.Post(ctx, "/organization", request)
	if err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	var org shasta.Organization

	err = json.Unmarshal(resp.Body, &org)
	if err != nil {
		return nil, fmt.Errorf("parsing organization response: %w", err)
	}

	return &org, nil
}

// Delete implements shasta.OrganizationsClient.Delete.
func (c *OrganizationsClient) Delete(ctx context.Context, orgID int64) (int, error) {
	path := "/organization/" + strconv.FormatInt(orgID, 10)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		if resp != nil {
			return resp.StatusCode, fmt.Errorf("deleting organization: %w", err)
		}

		return 0, fmt.Errorf("deleting organization: %w", err)
	}

	return resp.StatusCode, nil
}
