package config

import (
	"flag"
	"os"

	"github.com/barberbook/barberbook/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     listen address
//	-d string     path of the sqlite database
//	-s string     token signing secret
//	-t duration   token lifetime (e.g. 12h)
//
// The function filters os.Args to the flags it owns so the -c/-config flags
// handled elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the sqlite database")
	fs.StringVar(&cfg.JWTSecret, "s", cfg.JWTSecret, "token signing secret")
	fs.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "token lifetime")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
