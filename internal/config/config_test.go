package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDR", "PORTFOLIO_DATA_DIR", "PORTFOLIO_SETTINGS", "STATIC_DIR", "LOG_LEVEL",
		"EMAILJS_SERVICE_ID", "EMAILJS_TEMPLATE_ID", "EMAILJS_PUBLIC_KEY", "EMAILJS_PRIVATE_KEY",
		"EMAILJS_BASE_URL", "EMAILJS_TIMEOUT", "CONTACT_RATE_LIMIT", "CONTACT_RATE_BURST",
		"TRUSTED_PROXIES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Site.AccoladesPerPage)
	assert.Equal(t, 3, cfg.Site.TestimonialsPerPage)
	assert.Equal(t, 6*time.Second, cfg.Site.CarouselInterval)
	assert.Equal(t, "https://api.emailjs.com", cfg.EmailJS.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.EmailJS.Timeout)
	assert.Equal(t, 5, cfg.Contact.PerMinute)
	assert.Empty(t, cfg.TrustedProxies)
	require.NotNil(t, cfg.Content)
	assert.NotEmpty(t, cfg.Content.Projects)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("EMAILJS_SERVICE_ID", "service_abc")
	t.Setenv("EMAILJS_TEMPLATE_ID", "template_xyz")
	t.Setenv("EMAILJS_PUBLIC_KEY", "pk")
	t.Setenv("EMAILJS_TIMEOUT", "3s")
	t.Setenv("CONTACT_RATE_LIMIT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, 3*time.Second, cfg.EmailJS.Timeout)
	assert.Equal(t, 5, cfg.Contact.PerMinute, "unparsable values fall back to the default")

	cc := cfg.ContactConfig()
	assert.Equal(t, "service_abc", cc.ServiceID)
	assert.Equal(t, "template_xyz", cc.TemplateID)
	assert.Equal(t, "pk", cc.PublicKey)
	assert.Equal(t, cfg.Content.Profile.Email, cc.FallbackEmail)
	assert.NoError(t, cc.Validate())
}

func TestLoad_MissingEmailJSIsNotFatal(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Error(t, cfg.ContactConfig().Validate())
}

func TestLoad_SettingsFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
accolades_per_page: 6
carousel_interval: 10s
theme:
  accent: "#ff0000"
`), 0644))
	t.Setenv("PORTFOLIO_SETTINGS", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Site.AccoladesPerPage)
	assert.Equal(t, 3, cfg.Site.TestimonialsPerPage, "unset keys keep defaults")
	assert.Equal(t, 10*time.Second, cfg.Site.CarouselInterval)
	assert.Equal(t, "#ff0000", cfg.Site.Theme.Accent)
	assert.Equal(t, "#111827", cfg.Site.Theme.Text)
}

func TestLoad_InvalidSettings(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("testimonials_per_page: 0\n"), 0644))
	t.Setenv("PORTFOLIO_SETTINGS", path)

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "testimonials_per_page")
}

func TestLoad_SettingsFileErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_SETTINGS", "/nonexistent/site.yaml")
	_, err := Load()
	assert.ErrorContains(t, err, "failed to read settings file")

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accolades_per_page: [oops"), 0644))
	t.Setenv("PORTFOLIO_SETTINGS", path)
	_, err = Load()
	assert.ErrorContains(t, err, "failed to parse settings file")
}

func TestLoad_BadDataDir(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_DATA_DIR", filepath.Join(t.TempDir(), "missing"))

	_, err := Load()
	assert.ErrorContains(t, err, "failed to load content")
}

func TestLoad_TrustedProxies(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.0.2.10,,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.10"}, cfg.TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,load-balancer")
	_, err = Load()
	assert.ErrorContains(t, err, "TRUSTED_PROXIES")
}
