package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/siteadmin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   users API base URL
//	-u string   auth API base URL
//	-d string   session database DSN
//	-t int      request timeout in seconds (0 = transport default); when
//	            absent, a timeout from JSON or the environment is kept as is
//	-l string   log level
//
// Only these flags are considered; everything else on the command line is
// filtered out with flagx.FilterArgs. It panics on a malformed value.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "users API base URL")
	fs.StringVar(&cfg.AuthBaseURL, "u", cfg.AuthBaseURL, "auth API base URL")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "session database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
