package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const configFileName = "club_awards_config.yaml"

// Config holds the application configuration loaded from YAML
type Config struct {
	// DatabaseURL is the postgres connection string
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// DataDir holds the CSV metric snapshots
	DataDir string `yaml:"dataDir"`

	// ReportsDir holds the per-club report documents
	ReportsDir string `yaml:"reportsDir"`

	// SnapshotRule is the RRULE describing the metric snapshot periods
	SnapshotRule string `yaml:"snapshotRule"`

	// MetricsSheetID enables loading metric snapshots from a Google
	// spreadsheet instead of the CSV files when set
	MetricsSheetID string `yaml:"metricsSheetID"`
	SocialTab      string `yaml:"socialTab"`
	MessagingTab   string `yaml:"messagingTab"`
	AttendanceTab  string `yaml:"attendanceTab"`
	AwardWinsTab   string `yaml:"awardWinsTab"`

	// OAuthClient holds the Google OAuth client credentials, required
	// only when MetricsSheetID is set
	OAuthClient *OAuthClientConfig `yaml:"oauthClient"`
}

// applyDefaults fills in the optional fields that have sensible defaults
func applyDefaults(cfg *Config) {
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = filepath.Join(cfg.DataDir, "reports")
	}
	if cfg.SnapshotRule == "" {
		cfg.SnapshotRule = "FREQ=MONTHLY;COUNT=12"
	}
	if cfg.SocialTab == "" {
		cfg.SocialTab = "Instagram"
	}
	if cfg.MessagingTab == "" {
		cfg.MessagingTab = "WhatsApp"
	}
	if cfg.AttendanceTab == "" {
		cfg.AttendanceTab = "Attendance"
	}
	if cfg.AwardWinsTab == "" {
		cfg.AwardWinsTab = "Awards"
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks required fields and that the snapshot rule parses
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if cfg.SnapshotRule != "" {
		if _, err := rrule.StrToRRule(cfg.SnapshotRule); err != nil {
			return fmt.Errorf("invalid rrule %q: %w", cfg.SnapshotRule, err)
		}
	}

	if cfg.MetricsSheetID != "" && cfg.OAuthClient == nil {
		return fmt.Errorf("validation failed: oauthClient is required when metricsSheetID is set")
	}

	return nil
}

// LoadFromPath loads and validates the configuration from the given file
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load finds the configuration file and loads it. The file is looked up in
// the current directory first, then under the user's home directory.
func Load() (*Config, error) {
	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, ".club-awards", configFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or %s", configFileName, filepath.Dir(homePath))
}
