// Package config assembles the server configuration from the environment,
// an optional YAML settings file and the content tables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"lumakin.dev/internal/contact"
	"lumakin.dev/internal/content"
	"lumakin.dev/internal/emailjs"
	"lumakin.dev/internal/middleware"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string
	DataPath   string
	StaticDir  string
	LogLevel   string
	Content    *content.Store
	Site       *SiteConfig
	EmailJS    EmailJSConfig
	Contact    ContactLimit
	// TrustedProxies lists the reverse proxies, as IPs or CIDR prefixes,
	// whose X-Forwarded-For header identifies the visitor.
	TrustedProxies []string
}

// SiteConfig holds page settings
type SiteConfig struct {
	AccoladesPerPage    int           `yaml:"accolades_per_page"`
	TestimonialsPerPage int           `yaml:"testimonials_per_page"`
	CarouselInterval    time.Duration `yaml:"carousel_interval"`
	Theme               Theme         `yaml:"theme"`
}

// Theme holds color scheme settings
type Theme struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
	Error      string `yaml:"error"`
}

// EmailJSConfig holds the contact form's mail delivery settings. Empty
// identifiers are allowed; the form reports them when a visitor submits.
type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
	BaseURL    string
	Timeout    time.Duration
}

// ContactLimit throttles contact submissions per client.
type ContactLimit struct {
	PerMinute int
	Burst     int
}

// DefaultSiteConfig returns the settings used when no file is given.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		AccoladesPerPage:    4,
		TestimonialsPerPage: 3,
		CarouselInterval:    6 * time.Second,
		Theme: Theme{
			Background: "#f9fafb",
			Text:       "#111827",
			Accent:     "#1f2937",
			Error:      "#b91c1c",
		},
	}
}

// Load reads configuration from the environment and loads the content tables.
func Load() (*Config, error) {
	site, err := loadSiteConfig(os.Getenv("PORTFOLIO_SETTINGS"))
	if err != nil {
		return nil, err
	}

	dataPath := os.Getenv("PORTFOLIO_DATA_DIR")
	store, err := content.Load(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	cfg := &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		DataPath:   dataPath,
		StaticDir:  getEnv("STATIC_DIR", "static"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Content:    store,
		Site:       site,
		EmailJS: EmailJSConfig{
			ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
			TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
			PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
			PrivateKey: os.Getenv("EMAILJS_PRIVATE_KEY"),
			BaseURL:    getEnv("EMAILJS_BASE_URL", emailjs.DefaultBaseURL),
			Timeout:    getEnvDuration("EMAILJS_TIMEOUT", 15*time.Second),
		},
		Contact: ContactLimit{
			PerMinute: getEnvInt("CONTACT_RATE_LIMIT", 5),
			Burst:     getEnvInt("CONTACT_RATE_BURST", 2),
		},
		TrustedProxies: getEnvList("TRUSTED_PROXIES"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Missing EmailJS settings are not an error.
func (c *Config) Validate() error {
	if c.Site.AccoladesPerPage <= 0 {
		return fmt.Errorf("config error: 'accolades_per_page' must be positive")
	}
	if c.Site.TestimonialsPerPage <= 0 {
		return fmt.Errorf("config error: 'testimonials_per_page' must be positive")
	}
	if c.Site.CarouselInterval <= 0 {
		return fmt.Errorf("config error: 'carousel_interval' must be positive")
	}
	if c.EmailJS.Timeout <= 0 {
		return fmt.Errorf("config error: EMAILJS_TIMEOUT must be positive")
	}
	if c.Contact.PerMinute < 0 || c.Contact.Burst < 0 {
		return fmt.Errorf("config error: contact rate limit must be non-negative")
	}
	if _, err := middleware.ParseProxies(c.TrustedProxies); err != nil {
		return fmt.Errorf("config error: TRUSTED_PROXIES: %w", err)
	}
	return nil
}

// ContactConfig returns the settings the contact form needs.
func (c *Config) ContactConfig() contact.Config {
	return contact.Config{
		ServiceID:     c.EmailJS.ServiceID,
		TemplateID:    c.EmailJS.TemplateID,
		PublicKey:     c.EmailJS.PublicKey,
		PrivateKey:    c.EmailJS.PrivateKey,
		FallbackEmail: c.Content.Profile.Email,
	}
}

// loadSiteConfig reads a YAML settings file over the defaults. An empty
// path returns the defaults.
func loadSiteConfig(path string) (*SiteConfig, error) {
	site := DefaultSiteConfig()
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return site, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getEnvList(key string) []string {
	var list []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
