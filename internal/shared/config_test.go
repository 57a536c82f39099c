package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("parses a valid file", func(t *testing.T) {
			t.Setenv("JOBTRACK_GITHUB_TOKEN", "")
			t.Setenv("GITHUB_TOKEN", "")

			path := filepath.Join(t.TempDir(), "config.toml")
			content := `
[github]
token = "ghp_test"
owner = "someone"
data_repo = "job-data"
branch = "main"
file_path = "jobs.csv"

[database]
path = ":memory:"
max_open_conns = 1
max_idle_conns = 1
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if config.GitHub.Owner != "someone" {
				t.Errorf("expected owner 'someone', got %s", config.GitHub.Owner)
			}
			if config.GitHub.DataRepo != "job-data" {
				t.Errorf("expected data_repo 'job-data', got %s", config.GitHub.DataRepo)
			}
			if config.GitHub.FilePath != "jobs.csv" {
				t.Errorf("expected file_path 'jobs.csv', got %s", config.GitHub.FilePath)
			}
		})

		t.Run("missing file", func(t *testing.T) {
			if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
				t.Error("expected error for missing file")
			}
		})

		t.Run("invalid TOML", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("[github\n"), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error for invalid TOML")
			}
		})

		t.Run("environment overrides file values", func(t *testing.T) {
			t.Setenv("JOBTRACK_GITHUB_TOKEN", "env_token")
			t.Setenv("JOBTRACK_BRANCH", "trunk")

			path := filepath.Join(t.TempDir(), "config.toml")
			content := `
[github]
token = "file_token"
branch = "main"
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if config.GitHub.Token != "env_token" {
				t.Errorf("expected token from environment, got %s", config.GitHub.Token)
			}
			if config.GitHub.Branch != "trunk" {
				t.Errorf("expected branch from environment, got %s", config.GitHub.Branch)
			}
		})

		t.Run("GITHUB_TOKEN fallback", func(t *testing.T) {
			t.Setenv("JOBTRACK_GITHUB_TOKEN", "")
			t.Setenv("GITHUB_TOKEN", "fallback_token")

			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("[github]\n"), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.GitHub.Token != "fallback_token" {
				t.Errorf("expected GITHUB_TOKEN fallback, got %s", config.GitHub.Token)
			}
		})
	})

	t.Run("DefaultConfig", func(t *testing.T) {
		t.Setenv("JOBTRACK_BRANCH", "")
		t.Setenv("JOBTRACK_FILE_PATH", "")

		config := DefaultConfig()
		if config.GitHub.Branch != "main" {
			t.Errorf("expected default branch 'main', got %s", config.GitHub.Branch)
		}
		if config.GitHub.FilePath != "jobs.csv" {
			t.Errorf("expected default file_path 'jobs.csv', got %s", config.GitHub.FilePath)
		}
		if config.Database.Path == "" {
			t.Error("expected a default database path")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		t.Run("creates the file", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := CreateConfigFile(path); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if _, err := os.Stat(path); err != nil {
				t.Errorf("expected config file to exist: %v", err)
			}
		})

		t.Run("refuses to overwrite", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
				t.Fatalf("failed to seed file: %v", err)
			}
			if err := CreateConfigFile(path); err == nil {
				t.Error("expected error when file exists")
			}
		})
	})

	t.Run("Validate", func(t *testing.T) {
		t.Run("complete settings", func(t *testing.T) {
			config := &Config{GitHub: GitHubConfig{Token: "t", Owner: "o", DataRepo: "r"}}
			if err := config.Validate(); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})

		t.Run("missing token", func(t *testing.T) {
			config := &Config{GitHub: GitHubConfig{Owner: "o", DataRepo: "r"}}
			if err := config.Validate(); err == nil {
				t.Error("expected error for missing token")
			}
		})

		t.Run("missing repository", func(t *testing.T) {
			config := &Config{GitHub: GitHubConfig{Token: "t"}}
			if err := config.Validate(); err == nil {
				t.Error("expected error for missing owner/repo")
			}
		})
	})
}
