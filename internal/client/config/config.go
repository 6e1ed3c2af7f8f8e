package config

import "time"

// Config holds runtime settings for the siteadmin CLI.
//
// Fields:
//   - APIBaseURL: base URL of the users API (list/update/delete).
//   - AuthBaseURL: base URL serving login and registration. The site runs
//     these on a separate deployment; set it equal to APIBaseURL when not.
//   - SessionDB: SQLite DSN holding the persisted session token.
//   - RequestTimeout: per-request timeout; zero leaves the transport default.
//   - ContactDelay: simulated delivery time of the contact form.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string        `env:"API_URL"`
	AuthBaseURL    string        `env:"AUTH_URL"`
	SessionDB      string        `env:"SESSION_DB"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	ContactDelay   time.Duration `env:"CONTACT_DELAY"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

const (
	DefaultAPIBaseURL  = "https://backend-nextjs-virid.vercel.app"
	DefaultAuthBaseURL = "https://food-backend-three-topaz.vercel.app"
	DefaultSessionDB   = "siteadmin.db"
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.AuthBaseURL = DefaultAuthBaseURL
	c.SessionDB = DefaultSessionDB
	c.RequestTimeout = 0
	c.ContactDelay = 2 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if given), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
