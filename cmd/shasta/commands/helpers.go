package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/shasta-io/shasta/pkg/shasta"
	"github.com/shasta-io/shasta/pkg/shastaclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrNotAuthenticated = errors.New("not authenticated, use 'shasta login' first")
	ErrOrgNotConfigured = errors.New("no MSP organization configured, pass --org or use 'shasta login'")
)

// CreateClient builds an API client from the resolved viper configuration.
func CreateClient() (shasta.Client, error) {
	apiEndpoint := viper.GetString("api")
	token := viper.GetString("token")
	orgID := viper.GetInt64("org")

	if token == "" {
		return nil, ErrNotAuthenticated
	}

	if orgID == 0 {
		return nil, ErrOrgNotConfigured
	}

	client, err := shastaclient.New(&shasta.Config{
		APIEndpoint: apiEndpoint,
		OrgID:       orgID,
		AccessToken: token,
		Debug:       viper.GetBool("verbose"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer encodes data as indented JSON on stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML on stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}
