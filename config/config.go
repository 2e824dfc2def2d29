package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is used when API_URL is unset.
	DefaultBaseURL = "http://localhost:5000"

	// ModeDevelopment enables auth-header injection on outgoing requests.
	ModeDevelopment = "development"
)

// Config holds the environment-derived settings for the request layer.
// Build it once at startup; it is read-only afterwards.
type Config struct {
	BaseURL     string // primary backend, API_URL
	Mode        string // runtime mode, APP_MODE
	GitlabToken string // GITLAB_TOKEN, optional
	AccessToken string // ACCESS_TOKEN, optional bearer token
}

// Load reads configuration from the environment. Explicit dotenv paths are
// loaded first when given; otherwise a .env in the working directory is
// tried. A missing .env file is not an error.
func Load(dotenvPaths ...string) *Config {
	if len(dotenvPaths) > 0 {
		_ = godotenv.Load(dotenvPaths...)
	} else {
		_ = godotenv.Load()
	}
	return &Config{
		BaseURL:     getEnv("API_URL", DefaultBaseURL),
		Mode:        os.Getenv("APP_MODE"),
		GitlabToken: os.Getenv("GITLAB_TOKEN"),
		AccessToken: os.Getenv("ACCESS_TOKEN"),
	}
}

// Development reports whether the runtime mode allows auth-header injection.
func (c *Config) Development() bool {
	return strings.EqualFold(c.Mode, ModeDevelopment)
}

// getEnv returns the environment variable value if set, or the default.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
