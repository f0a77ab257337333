package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/flagx"
)

// Flags lists every flag the client configuration consumes, so the command
// line can be split into configuration and command arguments.
var Flags = []string{"-a", "-t", "-w", "-m", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-w", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.AccessToken, "t", cfg.AccessToken, "access token")
	timeout := fs.Int("w", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.MirrorPath, "m", cfg.MirrorPath, "local index mirror database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
