package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API defaults.
const (
	// DefaultAPIEndpoint is the staging Shasta API endpoint.
	DefaultAPIEndpoint = "https://api-stg.shastacloud.com"

	// DefaultMSPOrgID is the MSP organization most tooling operates under.
	DefaultMSPOrgID int64 = 317
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Rate-limited requests wait
// RetryWaitMin * BackoffFactor^attempt between attempts.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 5

	// DefaultBackoffFactor is the default exponential backoff factor.
	DefaultBackoffFactor = 2.0

	// DefaultRetryWaitMin is the base wait before the first retry.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// List defaults.
const (
	// StandardPageSize is the default number of results per list request.
	StandardPageSize = 10

	// OrgOrderBy is the default sort field for organization lists.
	OrgOrderBy = "orgId"

	// VenueOrderBy is the default sort field for venue lists.
	VenueOrderBy = "venueId"
)
