package config

import (
	"flag"
	"os"
	"time"

	"github.com/avasiljevs/assetledger/internal/flagx"
)

// parseFlags populates CLI Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   server gRPC endpoint (e.g., "127.0.0.1:50051")
//	-t int      per-request timeout, seconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server gRPC endpoint")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
