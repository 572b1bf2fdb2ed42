package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyClockifyURL            = "clockify.url"
	KeyClockifyAPIKey         = "clockify.api_key"
	KeyClockifyWorkspaceID    = "clockify.workspace_id"
	KeyTransferTimezoneOffset = "transfer.timezone_offset"
	KeyTransferUnprocessed    = "transfer.unprocessed"
	KeyProjectMap             = "project_map"
	KeyProjectIDs             = "project_ids"

	// EnvPrefix prefixes environment overrides, e.g. CLOCKTRANSFER_CLOCKIFY_API_KEY.
	EnvPrefix = "CLOCKTRANSFER"

	DefaultClockifyURL    = "https://api.clockify.me/api/v1"
	DefaultTimezoneOffset = 4 * time.Hour

	UnprocessedFailed = "failed"
	UnprocessedAll    = "all"
)

type Config struct {
	Clockify ClockifyConfig `mapstructure:"clockify" validate:"required"`
	Transfer TransferConfig `mapstructure:"transfer"`

	// ProjectMap maps a Jira project key to a Clockify project name that is
	// looked up remotely. ProjectIDs maps a key straight to a project ID.
	ProjectMap map[string]string `mapstructure:"project_map"`
	ProjectIDs map[string]string `mapstructure:"project_ids"`
}

type ClockifyConfig struct {
	URL         string `mapstructure:"url" validate:"required,url"`
	APIKey      string `mapstructure:"api_key" validate:"required"`
	WorkspaceID string `mapstructure:"workspace_id" validate:"required"`
}

type TransferConfig struct {
	// TimezoneOffset is added to every work date before submission. The
	// export carries naive local times while Clockify expects UTC.
	TimezoneOffset time.Duration `mapstructure:"timezone_offset"`
	Unprocessed    string        `mapstructure:"unprocessed" validate:"oneof=failed all"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// BindEnv enables CLOCKTRANSFER_* environment overrides on the global Viper.
func BindEnv() {
	bindEnv(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// LoadCredentials loads and validates only the Clockify URL and API key, for
// commands that run before a workspace is configured.
func LoadCredentials() (*ClockifyConfig, error) {
	return loadCredentialsFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
// Environment overrides apply, so a key kept in the environment still passes.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	bindEnv(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# clocktransfer configuration
clockify:
  # The Clockify API base path.
  url: "https://api.clockify.me/api/v1"
  # Your Clockify API key (or set CLOCKTRANSFER_CLOCKIFY_API_KEY).
  api_key: ""
  # Your Clockify workspace ID (see: clocktransfer workspaces).
  workspace_id: ""

transfer:
  # Added to every Jira work date before submitting to Clockify.
  timezone_offset: "4h"
  # Rows written to the unprocessed-issues file when a run has failures:
  # "failed" writes only the failed rows, "all" writes the whole input.
  unprocessed: "failed"

# Jira project key -> Clockify project name (resolved via the projects API).
#
# project_map:
#   PROJ: Project Name Goes Here
#   ANOTHER: Another Project Name Goes Here
project_map: {}

# Jira project key -> Clockify project ID (no lookup; see: clocktransfer projects).
#
# project_ids:
#   CAIC: 61eeee2d576a3b100a7ed74d
project_ids: {}
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Transfer.Unprocessed = strings.ToLower(strings.TrimSpace(cfg.Transfer.Unprocessed))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := NewProjectMapping(cfg.ProjectMap, cfg.ProjectIDs); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func loadCredentialsFromViper(v *viper.Viper) (*ClockifyConfig, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.StructPartial(cfg.Clockify, "URL", "APIKey"); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg.Clockify, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyClockifyURL, DefaultClockifyURL)
	v.SetDefault(KeyClockifyAPIKey, "")
	v.SetDefault(KeyClockifyWorkspaceID, "")
	v.SetDefault(KeyTransferTimezoneOffset, DefaultTimezoneOffset.String())
	v.SetDefault(KeyTransferUnprocessed, UnprocessedFailed)
	v.SetDefault(KeyProjectMap, map[string]string{})
	v.SetDefault(KeyProjectIDs, map[string]string{})
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Mapping returns the validated project mapping.
func (c Config) Mapping() (ProjectMapping, error) {
	return NewProjectMapping(c.ProjectMap, c.ProjectIDs)
}
