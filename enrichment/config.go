package enrichment

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the outbound endpoints for the three upstream providers.
// Credentials live in secrets, not here.
type Config struct {
	CRMBaseURL     string
	LookupBaseURL  string
	WorkAPIBaseURL string
}

func loadConfig() (Config, error) {
	cfg := Config{
		CRMBaseURL:     os.Getenv("CRM_BASE_URL"),
		LookupBaseURL:  os.Getenv("LOOKUP_BASE_URL"),
		WorkAPIBaseURL: envOr("ENRICHMENT_API_BASE_URL", "https://completa.workbuscas.com"),
	}
	// An explicit gateway takes precedence over the CRM's direct API.
	if gateway := os.Getenv("CRM_GATEWAY_URL"); strings.TrimSpace(gateway) != "" {
		cfg.CRMBaseURL = gateway
	}

	if err := requireURL("CRM_BASE_URL", cfg.CRMBaseURL); err != nil {
		return Config{}, err
	}
	if err := requireURL("LOOKUP_BASE_URL", cfg.LookupBaseURL); err != nil {
		return Config{}, err
	}
	if err := requireURL("ENRICHMENT_API_BASE_URL", cfg.WorkAPIBaseURL); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func requireURL(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", name)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("%s must start with http:// or https://", name)
	}
	return nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
