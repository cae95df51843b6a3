package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/invtrack/internal/flagx"
)

// parseFlags populates Config from -a, -t and -token.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so subcommand flags do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-token"})
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the inventory API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "session token")
	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}

// CommandArgs returns os.Args without the program name and global flags.
func CommandArgs() []string {
	return flagx.StripArgs(os.Args[1:], GlobalFlags)
}
