package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only configuration schema version this build understands.
const SupportedVersion = "1.0"

// Load loads a blogkit configuration file.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		// Don't fail if .env doesn't exist, just log it
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Version != SupportedVersion {
		return nil, fmt.Errorf("unsupported configuration version: %s (expected %s)", config.Version, SupportedVersion)
	}

	// Apply defaults before validation so canonical values drive the checks
	applyDefaults(&config)

	if err := ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

// applyDefaults applies default values to configuration
func applyDefaults(config *Config) {
	if config.Content.Dir == "" {
		config.Content.Dir = "./blog"
	}
	if config.Blog.PageSize <= 0 {
		config.Blog.PageSize = 10
	}
	if config.Blog.AuthorsBasePath == "" {
		config.Blog.AuthorsBasePath = "/blog/authors"
	}
	if config.Output.Directory == "" {
		config.Output.Directory = "./site"
	}
	if config.Preview != nil && config.Preview.Port == 0 {
		config.Preview.Port = 1313
	}
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		Version: SupportedVersion,
		Site: SiteConfig{
			Title:   "My Blog",
			BaseURL: "https://example.com",
		},
		Content: ContentConfig{
			Dir:         "./blog",
			AuthorsFile: "./blog/authors.yml",
		},
		Blog: BlogConfig{
			PageSize:        10,
			AuthorsBasePath: "/blog/authors",
		},
		Output: OutputConfig{
			Directory: "./site",
		},
		Preview: &PreviewConfig{Port: 1313},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	// #nosec G306 -- configuration files are not secrets
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// exampleAuthors seeds the scaffolded authors map. The top-level key is what
// posts reference from their `authors` front matter.
const exampleAuthors = `jdoe:
  name: Jane Doe
  title: Staff Writer
  url: https://example.com/jdoe
  page: true
`

// InitAuthorsFile writes an example authors map, creating the content
// directory if needed. An existing file is left alone unless force is set.
func InitAuthorsFile(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}

	// #nosec G306 -- content files are not secrets
	if err := os.WriteFile(path, []byte(exampleAuthors), 0o644); err != nil {
		return fmt.Errorf("failed to write authors map file: %w", err)
	}

	return nil
}
