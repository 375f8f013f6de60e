package shasta

import (
	"context"
	"time"
)

// OrganizationsClient manages business organizations under the MSP account.
type OrganizationsClient interface {
	// List returns the child organizations of the configured MSP org,
	// optionally filtered by params.Search.
	List(ctx context.Context, params *ListParams) (*OrganizationList, error)
	// Create creates a new child organization.
	Create(ctx context.Context, request *OrganizationCreateRequest) (*Organization, error)
	// Delete removes an organization and returns the HTTP status code.
	Delete(ctx context.Context, orgID int64) (int, error)
}

// VenuesClient manages venues within an organization.
type VenuesClient interface {
	// List returns the venues of an organization, optionally filtered by
	// params.Search.
	List(ctx context.Context, orgID int64, params *ListParams) (*VenueList, error)
	// Create creates a new venue.
	Create(ctx context.Context, request *VenueCreateRequest) (*Venue, error)
	// Delete removes a venue and returns the HTTP status code.
	Delete(ctx context.Context, venueID int64) (int, error)
}

// InfrastructureClient manages infrastructure records.
type InfrastructureClient interface {
	// ListByOrganization returns the infra records of an organization.
	ListByOrganization(ctx context.Context, orgID int64) (*InfrastructureList, error)
	// ListByVenue returns the infra records of a venue.
	ListByVenue(ctx context.Context, venueID int64) (*InfrastructureList, error)
	// ListTypes returns the infra types available to the MSP org.
	ListTypes(ctx context.Context) (*InfraTypeList, error)
	// Create registers a new infra record.
	Create(ctx context.Context, request *InfrastructureCreateRequest) (*Infrastructure, error)
	// Delete removes an infra record and returns the HTTP status code.
	Delete(ctx context.Context, infraID int64) (int, error)
}

// Client provides access to the Shasta API resource clients.
type Client interface {
	Organizations() OrganizationsClient
	Venues() VenuesClient
	Infrastructure() InfrastructureClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a shasta.Client.
//
// APIEndpoint, OrgID, and AccessToken are required. The endpoint is
// normalized by shastaclient.New (trailing slash trimmed, "https://" added
// when no scheme is present). The access token is sent read-only as a
// Bearer Authorization header on every request; token acquisition and
// refresh are out of scope for this client.
//
// Retry behavior: requests that fail with HTTP 429 are retried up to
// RetryMax times, waiting RetryWaitMin * BackoffFactor^attempt between
// attempts (capped at RetryWaitMax). Any other failure status is surfaced
// immediately. Zero values fall back to the package defaults (5 retries,
// factor 2, 1s..30s waits).
type Config struct {
	// APIEndpoint: base URL for the Shasta API (e.g., "https://api.shastacloud.com").
	APIEndpoint string
	// OrgID: the MSP organization ID that scopes child-org and infra-type lookups.
	OrgID int64
	// AccessToken: static Bearer token used on every request.
	AccessToken string

	// Optional configurations
	// HTTPTimeout: per-request timeout of the underlying HTTP client.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries after a rate-limited attempt.
	RetryMax int
	// RetryWaitMin: base wait before the first retry.
	RetryWaitMin time.Duration
	// RetryWaitMax: upper bound on any single backoff wait.
	RetryWaitMax time.Duration
	// BackoffFactor: exponential growth factor of the backoff wait.
	BackoffFactor float64
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// SkipTLSVerify: if true, TLS verification is skipped, and only when
	// SHASTA_DEV_MODE is set. Intended for local development.
	SkipTLSVerify bool
}
