package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	GitHub   GitHubConfig   `toml:"github"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
}

// GitHubConfig identifies the private data repository holding the CSV file
// and the token used to read and commit it.
type GitHubConfig struct {
	Token    string `toml:"token"`
	Owner    string `toml:"owner"`
	DataRepo string `toml:"data_repo"`
	Branch   string `toml:"branch"`
	FilePath string `toml:"file_path"`
}

// DatabaseConfig contains sync journal database settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LogConfig contains file logging settings for TUI sessions.
type LogConfig struct {
	Path string `toml:"path"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Environment variables override file values afterwards, so the token can live
// in the environment (or a .env file) instead of on disk.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv overlays JOBTRACK_* environment variables onto the config.
// A .env file in the working directory is honored when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	overlay := map[string]*string{
		"JOBTRACK_GITHUB_TOKEN": &c.GitHub.Token,
		"JOBTRACK_GITHUB_OWNER": &c.GitHub.Owner,
		"JOBTRACK_DATA_REPO":    &c.GitHub.DataRepo,
		"JOBTRACK_BRANCH":       &c.GitHub.Branch,
		"JOBTRACK_FILE_PATH":    &c.GitHub.FilePath,
	}

	for name, field := range overlay {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}

	if c.GitHub.Token == "" {
		c.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}
}

// Validate checks that the settings required to reach the data repository are present.
func (c *Config) Validate() error {
	if c.GitHub.Token == "" {
		return fmt.Errorf("%w: set github.token or JOBTRACK_GITHUB_TOKEN", ErrMissingToken)
	}
	if c.GitHub.Owner == "" || c.GitHub.DataRepo == "" {
		return fmt.Errorf("%w: github.owner and github.data_repo are required", ErrInvalidConfig)
	}
	return nil
}
