package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigDir = ".dsa-tracker"

//go:embed config/settings.yaml
var defaultSettings string

// StorageSettings selects the input source: a GCS bucket when Bucket is set,
// a local directory otherwise.
type StorageSettings struct {
	Bucket          string `yaml:"bucket"`
	LocalDir        string `yaml:"local_dir"`
	InputName       string `yaml:"input_name"`
	ProcessedPrefix string `yaml:"processed_prefix"`
}

// ResolverSettings selects the name-resolution provider and model.
type ResolverSettings struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// SecretSettings names the credentials the run needs. With ProjectID set
// they are read from Google Secret Manager, otherwise from the environment.
type SecretSettings struct {
	ProjectID            string `yaml:"project_id"`
	APIKeySecret         string `yaml:"api_key_secret"`
	ServiceAccountSecret string `yaml:"service_account_secret"`
}

// Settings represents the YAML configuration structure.
type Settings struct {
	SpreadsheetName string           `yaml:"spreadsheet_name"`
	SpreadsheetID   string           `yaml:"spreadsheet_id"`
	WorksheetName   string           `yaml:"worksheet_name"`
	Storage         StorageSettings  `yaml:"storage"`
	Resolver        ResolverSettings `yaml:"resolver"`
	Secrets         SecretSettings   `yaml:"secrets"`
}

// loadSettings loads settings from settingsPath, falling back to the
// embedded defaults when the file is absent, then applies environment
// overrides so the job can be reconfigured without editing the file.
func loadSettings(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if os.IsNotExist(err) {
		data = []byte(defaultSettings)
	} else if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", settingsPath, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}

	applyDefaults(&settings)
	applyEnvOverrides(&settings)

	return &settings, nil
}

// applyDefaults fills in anything a partial settings file left empty.
func applyDefaults(settings *Settings) {
	if settings.SpreadsheetName == "" {
		settings.SpreadsheetName = "Master DSA Sheet"
	}
	if settings.WorksheetName == "" {
		settings.WorksheetName = "Sheet1"
	}
	if settings.Storage.LocalDir == "" {
		settings.Storage.LocalDir = "."
	}
	if settings.Storage.InputName == "" {
		settings.Storage.InputName = "problems.txt"
	}
	if settings.Storage.ProcessedPrefix == "" {
		settings.Storage.ProcessedPrefix = "processed_problems/"
	}
	if settings.Resolver.Provider == "" {
		settings.Resolver.Provider = "gemini"
	}
	if settings.Resolver.Model == "" {
		settings.Resolver.Model = "gemini-1.5-flash"
	}
	if settings.Secrets.APIKeySecret == "" {
		settings.Secrets.APIKeySecret = "gemini-api-key"
	}
	if settings.Secrets.ServiceAccountSecret == "" {
		settings.Secrets.ServiceAccountSecret = "dsa-tracker-service-account-key"
	}
}

// applyEnvOverrides lets Cloud Run deployments reconfigure the job through
// environment variables without shipping a settings file.
func applyEnvOverrides(settings *Settings) {
	overrideFromEnv(&settings.SpreadsheetName, "SPREADSHEET_NAME")
	overrideFromEnv(&settings.SpreadsheetID, "SPREADSHEET_ID")
	overrideFromEnv(&settings.WorksheetName, "WORKSHEET_NAME")
	overrideFromEnv(&settings.Storage.Bucket, "GCS_BUCKET_NAME")
	overrideFromEnv(&settings.Storage.InputName, "INPUT_BLOB_NAME")
	overrideFromEnv(&settings.Storage.ProcessedPrefix, "PROCESSED_BLOB_PREFIX")
	overrideFromEnv(&settings.Resolver.Model, "RESOLVER_MODEL")
	overrideFromEnv(&settings.Secrets.ProjectID, "GOOGLE_CLOUD_PROJECT")
	overrideFromEnv(&settings.Secrets.APIKeySecret, "GEMINI_API_KEY_SECRET_NAME")
	overrideFromEnv(&settings.Secrets.ServiceAccountSecret, "SERVICE_ACCOUNT_KEY_JSON_SECRET_NAME")
}

func overrideFromEnv(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

// getConfigPath returns the path to a config file in the .dsa-tracker directory
func getConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// ensureConfigExists creates the config directory and writes the default
// settings file if it doesn't exist.
func ensureConfigExists() error {
	if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	settingsPath := getConfigPath("settings.yaml")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := os.WriteFile(settingsPath, []byte(defaultSettings), 0644); err != nil {
			return fmt.Errorf("writing default settings: %w", err)
		}
	}

	return nil
}
