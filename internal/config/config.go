package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const (
	BackendPostgres = "postgres"
	BackendSheets   = "sheets"

	defaultDraftDir    = "drafts"
	defaultWeeksBefore = 2
	defaultWeeksAfter  = 10
	defaultStaffTab    = "Öğretmenler"
)

// Closure marks days on which no duty is held, e.g. public holidays
type Closure struct {
	RRule  string `yaml:"rrule" validate:"required"`
	Reason string `yaml:"reason" validate:"required"`
}

// WeekPicker controls which weeks are offered for selection
type WeekPicker struct {
	Before *int `yaml:"before,omitempty" validate:"omitempty,min=0"`
	After  *int `yaml:"after,omitempty" validate:"omitempty,min=0"`
}

// Config represents the application configuration
type Config struct {
	Backend         string     `yaml:"backend" validate:"required,oneof=postgres sheets"`
	PostgresURL     string     `yaml:"postgresURL,omitempty" validate:"required_if=Backend postgres"`
	DatabaseSheetID string     `yaml:"databaseSheetID,omitempty" validate:"required_if=Backend sheets"`
	StaffSheetID    string     `yaml:"staffSheetID,omitempty" validate:"required_if=Backend sheets"`
	StaffTab        string     `yaml:"staffTab,omitempty"`
	RosterSheetID   string     `yaml:"rosterSheetID,omitempty"`
	DraftDir        string     `yaml:"draftDir,omitempty"`
	WeekPicker      WeekPicker `yaml:"weekPicker,omitempty"`
	Closures        []Closure  `yaml:"closures,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from duty_config.yaml, or
// duty_config.<env>.yaml when env is set.
// It looks for the config file in the current directory first, then in the user's home directory
func Load(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, closure := range cfg.Closures {
		if _, err := rrule.StrToRRule(closure.RRule); err != nil {
			return fmt.Errorf("invalid rrule in closures[%d]: %w", i, err)
		}
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.DraftDir == "" {
		c.DraftDir = defaultDraftDir
	}
	if c.StaffTab == "" {
		c.StaffTab = defaultStaffTab
	}
}

// WeeksBefore returns how many past weeks the week picker offers
func (c *Config) WeeksBefore() int {
	if c.WeekPicker.Before == nil {
		return defaultWeeksBefore
	}
	return *c.WeekPicker.Before
}

// WeeksAfter returns how many future weeks the week picker offers
func (c *Config) WeeksAfter() int {
	if c.WeekPicker.After == nil {
		return defaultWeeksAfter
	}
	return *c.WeekPicker.After
}

// NeedsGoogle reports whether any configured feature talks to Google Sheets
func (c *Config) NeedsGoogle() bool {
	return c.Backend == BackendSheets || c.StaffSheetID != "" || c.RosterSheetID != ""
}

// findConfigFile searches for duty_config[.<env>].yaml
func findConfigFile(env string) (string, error) {
	return locate(envFileName("duty_config", env, "yaml"))
}

// envFileName builds "<base>.<ext>", or "<base>.<env>.<ext>" when env is set
func envFileName(base, env, ext string) string {
	if env == "" {
		return base + "." + ext
	}
	return base + "." + env + "." + ext
}

// locate returns the path of fileName in the current directory, falling back to the home directory
func locate(fileName string) (string, error) {
	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", fileName)
}
