package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ValidateConfig validates the complete configuration structure.
func ValidateConfig(cfg *Config) error {
	validator := newConfigurationValidator(cfg)
	return validator.validate()
}

// configurationValidator coordinates validation across all configuration domains.
type configurationValidator struct {
	config *Config
}

// newConfigurationValidator creates a comprehensive configuration validator.
func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

// validate performs configuration validation using domain-specific methods.
func (cv *configurationValidator) validate() error {
	if err := cv.validateSite(); err != nil {
		return err
	}
	if err := cv.validateContent(); err != nil {
		return err
	}
	if err := cv.validateBlog(); err != nil {
		return err
	}
	if err := cv.validateOutput(); err != nil {
		return err
	}
	return cv.validatePreview()
}

// validateSite validates site identity and base URL.
func (cv *configurationValidator) validateSite() error {
	site := cv.config.Site
	if site.BaseURL == "" {
		return errors.New("site base_url must be configured")
	}
	u, err := url.Parse(site.BaseURL)
	if err != nil {
		return fmt.Errorf("site base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("site base_url must use http or https, got %q", site.BaseURL)
	}
	return nil
}

// validateContent validates content locations.
func (cv *configurationValidator) validateContent() error {
	if cv.config.Content.Dir == "" {
		return errors.New("content dir cannot be empty")
	}
	return nil
}

// validateBlog validates listing generation settings.
func (cv *configurationValidator) validateBlog() error {
	blog := cv.config.Blog
	if blog.PageSize <= 0 {
		return fmt.Errorf("blog page_size must be positive, got %d", blog.PageSize)
	}
	if !strings.HasPrefix(blog.AuthorsBasePath, "/") {
		return fmt.Errorf("blog authors_base_path must start with /, got %q", blog.AuthorsBasePath)
	}
	return nil
}

// validateOutput validates output configuration.
func (cv *configurationValidator) validateOutput() error {
	if cv.config.Output.Directory == "" {
		return errors.New("output directory cannot be empty")
	}
	return nil
}

// validatePreview validates preview server configuration.
func (cv *configurationValidator) validatePreview() error {
	if cv.config.Preview == nil {
		return nil
	}
	port := cv.config.Preview.Port
	if port < 1 || port > 65535 {
		return fmt.Errorf("preview port must be between 1 and 65535, got %d", port)
	}
	return nil
}
