// Package tdclient provides the main entry point for creating Traduki API
// clients.
package tdclient

import (
	"fmt"
	"strings"

	"github.com/traduki-io/traduki/internal/client"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// New creates a Traduki API client from configuration. The deployment
// variant follows from Organization: when set, the client targets the
// enterprise tenant at ORGANIZATION.api.traduki.com and unlocks the
// enterprise-only resources; otherwise it targets the public deployment.
//
// Construction performs no I/O; the transport and any configured cache
// backend are materialized on first use.
func New(config *traduki.Config) (traduki.Client, error) {
	if config == nil {
		return nil, traduki.ErrConfigRequired
	}

	if config.Protocol != "" && config.Protocol != "http" && config.Protocol != "https" {
		return nil, fmt.Errorf("%w: %s", traduki.ErrInvalidProtocol, config.Protocol)
	}

	// A full URL in BaseURL is split into protocol and host so the two
	// settings cannot disagree.
	if strings.Contains(config.BaseURL, "://") {
		protocol, host, _ := strings.Cut(config.BaseURL, "://")
		if protocol != "http" && protocol != "https" {
			return nil, fmt.Errorf("%w: %s", traduki.ErrInvalidProtocol, protocol)
		}

		config.Protocol = protocol
		config.BaseURL = host
	}

	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a client for the public deployment from a personal
// access token.
func NewWithToken(token string) (traduki.Client, error) {
	return New(&traduki.Config{Token: token})
}

// NewEnterprise creates a client for an enterprise organization tenant.
func NewEnterprise(token, organization string) (traduki.Client, error) {
	return New(&traduki.Config{Token: token, Organization: organization})
}
