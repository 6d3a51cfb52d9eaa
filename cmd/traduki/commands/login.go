package commands

import (
	"context"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/traduki-io/traduki/pkg/tdclient"
	"github.com/traduki-io/traduki/pkg/traduki"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		token        string
		organization string
		baseURL      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Traduki",
		Long:  "Authenticate with a Traduki deployment using a personal access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("Personal access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = string(byteToken)

				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			if organization == "" {
				organization = viper.GetString("organization")
			}

			if baseURL == "" {
				baseURL = viper.GetString("base-url")
			}

			config := &traduki.Config{
				Token:        token,
				Organization: organization,
				BaseURL:      baseURL,
			}

			client, err := tdclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the token before persisting anything.
			ctx := context.Background()

			user, err := client.Users().GetAuthenticated(ctx)
			if err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}

			viper.Set("token", token)
			viper.Set("organization", organization)
			viper.Set("base-url", baseURL)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to %s as %s\n", client.URL(), user.Username)

			return nil
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "personal access token")
	cmd.Flags().StringVarP(&organization, "organization", "o", "", "enterprise organization domain")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "API host override")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Traduki",
		Long:  "Clear the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")
			viper.Set("organization", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
