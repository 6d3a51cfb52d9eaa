// Package commands implements the traduki CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/traduki-io/traduki/pkg/tdclient"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

const defaultJSONIndent = "  "

// Common static errors used throughout the commands package.
var (
	ErrTokenRequired       = errors.New("token is required (run 'traduki login' or set --token)")
	ErrProjectFlagNeeded   = errors.New("project is required (use --project)")
	ErrProjectNameRequired = errors.New("project name is required (use --name)")
	ErrConfigKeyUnknown    = errors.New("unknown configuration key")
	ErrConfigValueMissing  = errors.New("configuration value is required")
)

// parseID parses a numeric resource identifier from a CLI argument.
func parseID(arg, resource string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID %q: %w", resource, arg, err)
	}

	return id, nil
}

// formatTimestamp renders a timestamp for table output, empty when unset.
func formatTimestamp(ts *traduki.Timestamp) string {
	if ts == nil {
		return ""
	}

	return ts.Format("2006-01-02 15:04:05")
}

// CreateClient builds a Traduki client from the resolved CLI configuration.
func CreateClient() (traduki.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	config := &traduki.Config{
		Token:        token,
		Organization: viper.GetString("organization"),
		BaseURL:      viper.GetString("base-url"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewCLILogger()
	}

	return tdclient.New(config)
}

// StandardJSONRenderer writes v to stdout as indented JSON.
func StandardJSONRenderer(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	return encoder.Encode(v)
}

// StandardYAMLRenderer writes v to stdout as YAML.
func StandardYAMLRenderer(v any) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(v)
}

// cliLogger adapts zerolog to the traduki.Logger interface.
type cliLogger struct {
	log zerolog.Logger
}

// NewCLILogger creates a console logger writing to stderr.
func NewCLILogger() traduki.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}

	return &cliLogger{
		log: zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

func (l *cliLogger) Debug(msg string, fields map[string]any) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *cliLogger) Info(msg string, fields map[string]any) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *cliLogger) Warn(msg string, fields map[string]any) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *cliLogger) Error(msg string, fields map[string]any) {
	l.log.Error().Fields(fields).Msg(msg)
}
