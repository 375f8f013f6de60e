// Package shastaclient provides the main entry point for creating Shasta
// API clients.
package shastaclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/shasta-io/shasta/internal/client"
	"github.com/shasta-io/shasta/pkg/shasta"
)

// New creates a new Shasta API client from the given configuration.
func New(config *shasta.Config) (shasta.Client, error) {
	if config == nil {
		return nil, shasta.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, shasta.ErrAPIEndpointRequired
	}

	if config.AccessToken == "" {
		return nil, shasta.ErrAccessTokenRequired
	}

	if config.OrgID == 0 {
		return nil, shasta.ErrOrgIDRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	if config.SkipTLSVerify && !isDevelopmentEnvironment() {
		return nil, fmt.Errorf("%w (set SHASTA_DEV_MODE=true)", shasta.ErrSkipTLSOnlyInDev)
	}

	shastaClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return shastaClient, nil
}

// NewWithToken creates a client from the three required inputs, using
// defaults for everything else.
func NewWithToken(apiEndpoint string, orgID int64, accessToken string) (shasta.Client, error) {
	return New(&shasta.Config{
		APIEndpoint: apiEndpoint,
		OrgID:       orgID,
		AccessToken: accessToken,
	})
}

// isDevelopmentEnvironment checks if we're in a development environment.
func isDevelopmentEnvironment() bool {
	devMode := os.Getenv("SHASTA_DEV_MODE")

	return devMode == "true" || devMode == "1"
}
