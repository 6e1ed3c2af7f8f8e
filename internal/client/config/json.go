package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/siteadmin/internal/flagx"
	"github.com/dmitrijs2005/siteadmin/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations use
// timex.Duration so they may be written as "2s" or as nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	AuthBaseURL    string         `json:"auth_base_url"`
	SessionDB      string         `json:"session_db"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	ContactDelay   timex.Duration `json:"contact_delay"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the fields present in the file named by -c or
// -config. Absent or zero fields leave cfg untouched. It panics on read or
// decode errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.AuthBaseURL != "" {
		cfg.AuthBaseURL = jc.AuthBaseURL
	}
	if jc.SessionDB != "" {
		cfg.SessionDB = jc.SessionDB
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ContactDelay.Duration != 0 {
		cfg.ContactDelay = jc.ContactDelay.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
