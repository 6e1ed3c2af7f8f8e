// Package config loads runtime configuration for the siteadmin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. SITEADMIN_* environment variables, optionally seeded from ./.env.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   users API base URL
//	-u string   auth API base URL
//	-d string   session database DSN
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://backend.example",
//	  "auth_base_url": "https://auth.example",
//	  "session_db": "siteadmin.db",
//	  "request_timeout": "10s",
//	  "contact_delay": "2s",
//	  "log_level": "debug"
//	}
//
// # Environment
//
//	SITEADMIN_API_URL, SITEADMIN_AUTH_URL, SITEADMIN_SESSION_DB,
//	SITEADMIN_REQUEST_TIMEOUT, SITEADMIN_CONTACT_DELAY, SITEADMIN_LOG_LEVEL
package config
