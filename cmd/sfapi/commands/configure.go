package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

// NewConfigureCommand creates the configure command, which stores the
// credential tuple in the CLI config file.
func NewConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Store API credentials in the config file",
		Long:  "Interactively store the SuperFaktura email, API key, company ID and country in ~/.sfapi/config.yml.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			fmt.Print("Email: ")
			email, _ := reader.ReadString('\n')
			email = strings.TrimSpace(email)

			fmt.Print("API key: ")
			byteKey, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read API key: %w", err)
			}

			fmt.Println()

			fmt.Print("Company ID (optional): ")
			companyID, _ := reader.ReadString('\n')
			companyID = strings.TrimSpace(companyID)

			fmt.Printf("Country (default %s): ", sfapi.DefaultCountry)
			country, _ := reader.ReadString('\n')
			country = strings.TrimSpace(country)

			if country == "" {
				country = sfapi.DefaultCountry
			}

			if _, err := sfapi.ResolveBaseURL("", country); err != nil {
				return err
			}

			viper.Set("email", email)
			viper.Set("api_key", string(byteKey))
			viper.Set("company_id", companyID)
			viper.Set("country", country)

			configFile := viper.ConfigFileUsed()
			if configFile == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("finding home directory: %w", err)
				}

				configFile = filepath.Join(home, ".sfapi", "config.yml")
			}

			if err := viper.WriteConfigAs(configFile); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			if err := os.Chmod(configFile, constants.ConfigFilePerm); err != nil {
				return fmt.Errorf("restricting config permissions: %w", err)
			}

			fmt.Println("Configuration saved to", configFile)

			return nil
		},
	}
}
