package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type displayConfig struct {
	Clockify struct {
		URL         string `yaml:"url"`
		APIKey      string `yaml:"api_key"`
		WorkspaceID string `yaml:"workspace_id"`
	} `yaml:"clockify"`
	Transfer struct {
		TimezoneOffset string `yaml:"timezone_offset"`
		Unprocessed    string `yaml:"unprocessed"`
	} `yaml:"transfer"`
	ProjectMap map[string]string `yaml:"project_map"`
	ProjectIDs map[string]string `yaml:"project_ids"`
}

// DisplayYAML renders cfg as YAML with the API key masked.
func DisplayYAML(cfg Config) (string, error) {
	var view displayConfig
	view.Clockify.URL = cfg.Clockify.URL
	view.Clockify.APIKey = MaskSecret(cfg.Clockify.APIKey)
	view.Clockify.WorkspaceID = cfg.Clockify.WorkspaceID
	view.Transfer.TimezoneOffset = cfg.Transfer.TimezoneOffset.String()
	view.Transfer.Unprocessed = cfg.Transfer.Unprocessed
	view.ProjectMap = cfg.ProjectMap
	view.ProjectIDs = cfg.ProjectIDs

	out, err := yaml.Marshal(view)
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}
	return string(out), nil
}

// MaskSecret keeps the last four characters of secret.
func MaskSecret(secret string) string {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
