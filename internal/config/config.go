// internal/config/config.go
//
// This package handles configuration and the .profileflow directory.
// Every directory profileflow runs in gets a .profileflow/ folder holding the
// config file and the session journal. Profile data itself is never written.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/civil"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/profileflow/internal/profile"
	"github.com/kingrea/profileflow/internal/route"
	"github.com/kingrea/profileflow/internal/validate"
)

const (
	// AppDir is the name of the directory we create in the working directory
	AppDir = ".profileflow"

	defaultFirstDate = "1900-01-01"
	defaultLastDate  = "2050-12-31"
)

const defaultProjectConfigYAML = `# profileflow configuration
version: 1

session:
  # What logout erases besides the email.
  #   retain: keep name, date of birth, gender, address and country as prefill
  #   erase:  wipe every field
  logout_policy: retain
  # Route shown at startup. Form and details fall back to login until you log in.
  start_route: /

# Selectable range of the date-of-birth calendar.
date_picker:
  first_date: 1900-01-01
  last_date: 2050-12-31
`

// SessionConfig captures login/logout behavior.
type SessionConfig struct {
	LogoutPolicy string `yaml:"logout_policy"`
	StartRoute   string `yaml:"start_route"`
}

// DatePickerConfig bounds the calendar overlay.
type DatePickerConfig struct {
	FirstDate string `yaml:"first_date"`
	LastDate  string `yaml:"last_date"`
}

// ProjectConfig models .profileflow/config.yaml.
type ProjectConfig struct {
	Version    int              `yaml:"version"`
	Session    SessionConfig    `yaml:"session"`
	DatePicker DatePickerConfig `yaml:"date_picker"`
}

// Config holds the runtime configuration.
type Config struct {
	// ProjectDir is the directory profileflow was started in
	ProjectDir string

	// AppProjectDir is ProjectDir/.profileflow
	AppProjectDir string

	Project ProjectConfig
}

// InitAppDir creates the .profileflow directory structure and a default config.
//
// Structure created:
// .profileflow/
// ├── config.yaml
// └── logs/       <- session journal
func InitAppDir(projectDir string) error {
	appDir := filepath.Join(projectDir, AppDir)
	if err := os.MkdirAll(filepath.Join(appDir, "logs"), 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", appDir, err)
	}
	return ensureProjectConfig(filepath.Join(appDir, "config.yaml"))
}

// NewConfig loads the configuration for projectDir, falling back to defaults
// when no config file exists.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:    projectDir,
		AppProjectDir: filepath.Join(projectDir, AppDir),
		Project:       defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.AppProjectDir, "logs")
}

// JournalPath returns the session journal file.
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "journey.log")
}

// ProjectConfigPath returns the on-disk location for the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.AppProjectDir, "config.yaml")
}

// LogoutPolicy returns the parsed logout policy. The value was validated on
// load, so an unparsable entry can only come from direct struct edits.
func (c *Config) LogoutPolicy() profile.ClearPolicy {
	policy, err := profile.ParseClearPolicy(c.Project.Session.LogoutPolicy)
	if err != nil {
		return profile.ClearRetain
	}
	return policy
}

// StartRoute returns the route string shown at startup.
func (c *Config) StartRoute() string {
	return c.Project.Session.StartRoute
}

// DateBounds returns the first and last selectable calendar days.
func (c *Config) DateBounds() (civil.Date, civil.Date) {
	first, err := validate.ParseDate(c.Project.DatePicker.FirstDate)
	if err != nil {
		first, _ = validate.ParseDate(defaultFirstDate)
	}
	last, err := validate.ParseDate(c.Project.DatePicker.LastDate)
	if err != nil {
		last, _ = validate.ParseDate(defaultLastDate)
	}
	return first, last
}

// Override applies command-line values on top of the loaded file. Empty
// values leave the file's setting alone.
func (c *Config) Override(logoutPolicy, startRoute string) error {
	if strings.TrimSpace(logoutPolicy) != "" {
		c.Project.Session.LogoutPolicy = logoutPolicy
	}
	if strings.TrimSpace(startRoute) != "" {
		c.Project.Session.StartRoute = startRoute
	}
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SetLogoutPolicy updates the logout policy and persists it back to
// .profileflow/config.yaml.
func (c *Config) SetLogoutPolicy(value string) error {
	policy, err := profile.ParseClearPolicy(value)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Project.Session.LogoutPolicy = string(policy)
	return c.saveProjectConfig()
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Session: SessionConfig{
			LogoutPolicy: string(profile.ClearRetain),
			StartRoute:   route.PathLogin,
		},
		DatePicker: DatePickerConfig{
			FirstDate: defaultFirstDate,
			LastDate:  defaultLastDate,
		},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Session.LogoutPolicy) == "" {
		pc.Session.LogoutPolicy = string(profile.ClearRetain)
	}
	if strings.TrimSpace(pc.Session.StartRoute) == "" {
		pc.Session.StartRoute = route.PathLogin
	}
	if strings.TrimSpace(pc.DatePicker.FirstDate) == "" {
		pc.DatePicker.FirstDate = defaultFirstDate
	}
	if strings.TrimSpace(pc.DatePicker.LastDate) == "" {
		pc.DatePicker.LastDate = defaultLastDate
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Session.LogoutPolicy = strings.ToLower(strings.TrimSpace(pc.Session.LogoutPolicy))
	pc.Session.StartRoute = strings.TrimSpace(pc.Session.StartRoute)
	pc.DatePicker.FirstDate = strings.TrimSpace(pc.DatePicker.FirstDate)
	pc.DatePicker.LastDate = strings.TrimSpace(pc.DatePicker.LastDate)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if _, err := profile.ParseClearPolicy(pc.Session.LogoutPolicy); err != nil {
		return fmt.Errorf("session.logout_policy: %w", err)
	}
	first, err := validate.ParseDate(pc.DatePicker.FirstDate)
	if err != nil {
		return fmt.Errorf("date_picker.first_date: %w", err)
	}
	last, err := validate.ParseDate(pc.DatePicker.LastDate)
	if err != nil {
		return fmt.Errorf("date_picker.last_date: %w", err)
	}
	if last.Before(first) {
		return fmt.Errorf("date_picker.last_date %s is before first_date %s", last, first)
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.AppProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure app dir: %w", err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
