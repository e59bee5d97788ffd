package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// filterArgs returns only the allowed flags (and their values) from args.
// Each config stage parses its own flag set, so every stage must ignore the
// flags of the others instead of erroring on them.
//
// Both "-f value" and "-f=value" forms are supported.
func filterArgs(args []string, allowed ...string) []string {
	set := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		set[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := set[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := set[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// jsonConfigPath extracts the config file path from -c / -config without
// disturbing the rest of the command line.
func jsonConfigPath() string {
	var path string

	args := filterArgs(os.Args[1:], "-c", "-config")

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   backend base URL
//	-t int      request timeout in seconds
//	-d string   path to the local SQLite database
//	-l string   log level (debug, info, warn, error)
func parseFlags(cfg *Config) error {
	args := filterArgs(os.Args[1:], "-s", "-t", "-d", "-l")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "s", cfg.ServerBaseURL, "backend base URL")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
	return nil
}
