// Package client implements the shasta.Client interface on top of the
// retrying HTTP transport.
package client

import (
	"crypto/tls"
	nethttp "net/http"

	"github.com/shasta-io/shasta/internal/auth"
	"github.com/shasta-io/shasta/internal/constants"
	"github.com/shasta-io/shasta/internal/http"
	"github.com/shasta-io/shasta/pkg/shasta"
)

// Client implements the shasta.Client interface.
type Client struct {
	httpClient *http.Client
	orgID      int64
	logger     shasta.Logger

	organizations  shasta.OrganizationsClient
	venues         shasta.VenuesClient
	infrastructure shasta.InfrastructureClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *shasta.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		retryMax := constants.DefaultRetryMax
		if config.RetryMax > 0 {
			retryMax = config.RetryMax
		}

		retryWaitMin := constants.DefaultRetryWaitMin
		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		retryWaitMax := constants.DefaultRetryWaitMax
		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(retryMax, retryWaitMin, retryWaitMax))
	}

	if config.BackoffFactor > 0 {
		httpOpts = append(httpOpts, http.WithBackoffFactor(config.BackoffFactor))
	}

	if config.SkipTLSVerify {
		timeout := constants.DefaultHTTPTimeout
		if config.HTTPTimeout > 0 {
			timeout = config.HTTPTimeout
		}

		// The shastaclient facade gates this behind SHASTA_DEV_MODE.
		httpOpts = append(httpOpts, http.WithHTTPClient(&nethttp.Client{
			Timeout: timeout,
			Transport: &nethttp.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402 -- Protected by development environment check in shastaclient
			},
		}))
	}

	return httpOpts
}

// New creates a new Shasta API client. The endpoint is expected to already
// be normalized by the shastaclient facade.
func New(config *shasta.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, shasta.ErrAPIEndpointRequired
	}

	if config.OrgID == 0 {
		return nil, shasta.ErrOrgIDRequired
	}

	var tokenManager auth.TokenManager
	if config.AccessToken != "" {
		tokenManager = auth.NewStaticTokenManager(config.AccessToken)
	}

	httpClient := http.NewClient(config.APIEndpoint, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		orgID:      config.OrgID,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Organizations implements shasta.Client.Organizations.
func (c *Client) Organizations() shasta.OrganizationsClient {
	return c.organizations
}

// Venues implements shasta.Client.Venues.
func (c *Client) Venues() shasta.VenuesClient {
	return c.venues
}

// Infrastructure implements shasta.Client.Infrastructure.
func (c *Client) Infrastructure() shasta.InfrastructureClient {
	return c.infrastructure
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.organizations = NewOrganizationsClient(c.httpClient, c.orgID)
	c.venues = NewVenuesClient(c.httpClient)
	c.infrastructure = NewInfrastructureClient(c.httpClient, c.orgID)
}

// loggerAdapter adapts shasta.Logger to http.Logger.
type loggerAdapter struct {
	logger shasta.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
