package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/traduki-io/traduki/internal/constants"
	"gopkg.in/yaml.v3"
)

// configKeys lists the settings the config command may read or write.
var configKeys = []string{"token", "organization", "base-url", "output"}

// Config represents the persisted CLI configuration.
type Config struct {
	Token        string `json:"token,omitempty"        yaml:"token,omitempty"`
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
	BaseURL      string `json:"base-url,omitempty"     yaml:"base-url,omitempty"`
	Output       string `json:"output,omitempty"       yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Traduki CLI configuration stored in ~/.traduki/config.yaml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			switch viper.GetString("output") {
			case OutputFormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", defaultJSONIndent)

				return encoder.Encode(config)
			case OutputFormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(config)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")
				_ = table.Append("token", maskToken(config.Token))
				_ = table.Append("organization", config.Organization)
				_ = table.Append("base-url", config.BaseURL)
				_ = table.Append("output", config.Output)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			if !isKnownConfigKey(key) {
				return fmt.Errorf("%w: %s (known keys: %s)", ErrConfigKeyUnknown, key, strings.Join(configKeys, ", "))
			}

			if value == "" {
				return fmt.Errorf("%w: %s", ErrConfigValueMissing, key)
			}

			viper.Set(key, value)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value and persist the change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			if !isKnownConfigKey(key) {
				return fmt.Errorf("%w: %s (known keys: %s)", ErrConfigKeyUnknown, key, strings.Join(configKeys, ", "))
			}

			viper.Set(key, "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		Token:        viper.GetString("token"),
		Organization: viper.GetString("organization"),
		BaseURL:      viper.GetString("base-url"),
		Output:       viper.GetString("output"),
	}
}

func saveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".traduki")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yaml")
	}

	data, err := yaml.Marshal(loadConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	// The token lives in this file, so keep it owner-readable only.
	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isKnownConfigKey(key string) bool {
	for _, known := range configKeys {
		if key == known {
			return true
		}
	}

	return false
}

func maskToken(token string) string {
	const visible = 4

	if token == "" {
		return ""
	}

	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}

	return token[:visible] + strings.Repeat("*", len(token)-visible)
}
