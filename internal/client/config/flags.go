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
//	-a string   base URL of the backend API
//	-d string   path of the local sqlite database
//	-l string   path of the client log file
//
// The function filters os.Args to the flags it owns so the -c/-config flags
// handled elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend API")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local database")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "path of the log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
