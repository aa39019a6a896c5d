package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/matheuskafuri/pageboard/internal/category"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const defaultDetailsLink = "moreDetails.html"

// Article is an initial card of the page.
type Article struct {
	Category string `yaml:"category"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
}

type Config struct {
	DetailsLink string          `yaml:"details_link"`
	BaseURL     string          `yaml:"base_url,omitempty"`
	LogFile     string          `yaml:"log_file,omitempty"`
	SeedFeed    string          `yaml:"seed_feed,omitempty"`
	Filters     map[string]bool `yaml:"filters,omitempty"`
	Articles    []Article       `yaml:"articles"`
}

// Link returns the "Read more..." destination of new cards.
func (c *Config) Link() string {
	if c.DetailsLink == "" {
		return defaultDetailsLink
	}
	return c.DetailsLink
}

// Checked returns the initial checkbox state for a category. Categories not
// listed under filters start checked.
func (c *Config) Checked(cat category.Category) bool {
	checked, ok := c.Filters[string(cat)]
	if !ok {
		return true
	}
	return checked
}

// ResolveLink turns a card link into an absolute URL using base_url.
func (c *Config) ResolveLink(link string) (string, error) {
	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid link %q: %w", link, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	if c.BaseURL == "" {
		return "", fmt.Errorf("cannot open %q: base_url is not configured", link)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base_url: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "pageboard", "config.yaml")
}

// LogPath is where --debug writes when log_file is not set.
func LogPath() string {
	return filepath.Join(xdg.StateHome, "pageboard", "pageboard.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	return decode(data, "embedded config")
}

func decode(data []byte, src string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", src, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return cfg, nil
}

// Load reads the config at path, or the default location when path is empty.
// A missing file is created from the embedded defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// best effort; the embedded copy is used either way
		_ = writeDefaults(path)
		return loadDefaults()
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return decode(data, "config "+path)
}

func writeDefaults(path string) error {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return fmt.Errorf("base_url: invalid url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base_url: scheme must be http or https, got %q", u.Scheme)
		}
	}
	// Filters are keyed by canonical tag from here on; Checked relies on it.
	filters := make(map[string]bool, len(cfg.Filters))
	for name, checked := range cfg.Filters {
		c, ok := category.Parse(name)
		if !ok {
			return fmt.Errorf("filters: unknown category %q (valid: opinion, recipe, update)", name)
		}
		if prev, dup := filters[string(c)]; dup && prev != checked {
			return fmt.Errorf("filters: conflicting entries for %s", c)
		}
		filters[string(c)] = checked
	}
	if cfg.Filters != nil {
		cfg.Filters = filters
	}
	for i, a := range cfg.Articles {
		if a.Title == "" {
			return fmt.Errorf("article %d: title is required", i)
		}
		if a.Category == "" {
			return fmt.Errorf("article %q: category is required", a.Title)
		}
	}
	return nil
}
