package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/shasta-io/shasta/internal/constants"
	"github.com/shasta-io/shasta/pkg/shasta"
	"github.com/shasta-io/shasta/pkg/shastaclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		orgID       int64
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the Shasta API",
		Long:  "Store an API token and MSP organization for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			// Get API endpoint
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				fmt.Printf("API endpoint [%s]: ", constants.DefaultAPIEndpoint)
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)

				if apiEndpoint == "" {
					apiEndpoint = constants.DefaultAPIEndpoint
				}
			}

			// Get MSP organization ID
			if orgID == 0 {
				orgID = viper.GetInt64("org")
			}

			if orgID == 0 {
				fmt.Printf("MSP organization ID [%d]: ", constants.DefaultMSPOrgID)
				orgInput, _ := reader.ReadString('\n')
				orgInput = strings.TrimSpace(orgInput)

				if orgInput == "" {
					orgID = constants.DefaultMSPOrgID
				} else {
					parsed, err := strconv.ParseInt(orgInput, 10, 64)
					if err != nil {
						return fmt.Errorf("invalid organization ID '%s': %w", orgInput, err)
					}

					orgID = parsed
				}
			}

			// Get API token without echoing it
			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			if token == "" {
				return ErrNotAuthenticated
			}

			// Create client
			client, err := shastaclient.New(&shasta.Config{
				APIEndpoint: apiEndpoint,
				OrgID:       orgID,
				AccessToken: token,
				HTTPTimeout: constants.ShortHTTPTimeout,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials with a cheap list call
			orgs, err := client.Organizations().List(context.Background(),
				shasta.NewListParams().WithWindow(0, 1))
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			if err := saveCredentials(apiEndpoint, orgID, token); err != nil {
				return err
			}

			fmt.Printf("Logged in to %s (org %d, %d child organizations visible)\n",
				apiEndpoint, orgID, orgs.TotalCount)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "api", "", "API endpoint URL")
	cmd.Flags().Int64Var(&orgID, "org", 0, "MSP organization ID")
	cmd.Flags().StringVar(&token, "token", "", "API token (prompted if omitted)")

	return cmd
}

// loginConfig is the on-disk shape of ~/.shasta/config.yml.
type loginConfig struct {
	API   string `yaml:"api"`
	Org   int64  `yaml:"org"`
	Token string `yaml:"token"`
}

func saveCredentials(apiEndpoint string, orgID int64, token string) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}

		configDir := filepath.Join(home, ".shasta")
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(loginConfig{
		API:   apiEndpoint,
		Org:   orgID,
		Token: token,
	})
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// Token goes to disk, keep the file private
	if err := os.WriteFile(configFile, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	viper.Set("api", apiEndpoint)
	viper.Set("org", orgID)
	viper.Set("token", token)

	return nil
}
