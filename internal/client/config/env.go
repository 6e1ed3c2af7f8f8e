package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every variable name read by parseEnv.
const EnvPrefix = "SITEADMIN_"

// dotEnvFile is loaded, when present, before the environment is read.
// Variables already set in the process environment are not overridden.
var dotEnvFile = ".env"

// parseEnv overlays cfg with SITEADMIN_* variables. Unset variables keep the
// current value. It panics on a malformed value, same as the other layers.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotEnvFile); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			panic(err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
