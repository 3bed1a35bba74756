package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

var errPortOutOfRange = errors.New("port must be in range 1..65535")

// ListenAddress is a flag.Value for the inspector's listen address.
type ListenAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from os.Args.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

// parseFlags parses args on a dedicated flag set.
//
// Flags:
//
//	-a movie API base URL
//	-d database DSN
//	-city city of the in-theater listing
//	-request-timeout request timeout (e.g., "15s")
//	-sync-interval background sync interval (e.g., "30m")
//	-devtools enable the state inspector
//	-devtools-address inspector address in format [host]:[port]
//	-history-limit number of recorded actions
//	-log-level minimal log level
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var devToolsAddress ListenAddress
	var apiAddress string
	var databaseDSN string
	var city string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var devToolsEnabled bool
	var historyLimit int
	var logLevel string
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("filmkeeper", flag.ContinueOnError)
	fs.StringVar(&apiAddress, "a", "", "Movie API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&city, "city", "", "City of the in-theater listing")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync interval (e.g., 30m)")
	fs.BoolVar(&devToolsEnabled, "devtools", false, "Enable state inspector")
	fs.Var(&devToolsAddress, "devtools-address", "Inspector net address host:port")
	fs.IntVar(&historyLimit, "history-limit", 0, "Number of recorded actions")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
			City:           city,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		DevTools: DevTools{
			Enabled:      devToolsEnabled,
			Address:      devToolsAddress.String(),
			HistoryLimit: historyLimit,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *ListenAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", "[ipv6]:port" or ":port". The host may be a name
// or an IP literal; the port must be in 1..65535.
func (a *ListenAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("port %q is not a number", rawPort)
	}
	if port < 1 || port > 65535 {
		return errPortOutOfRange
	}

	a.Host = host
	a.Port = port
	return nil
}
