package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a admin server address in format [host]:[port]
//	-adapter-address remote admin API address in format [host]:[port]
//	-driver database driver ("postgres" or "sqlite")
//	-d database DSN
//	-scripts batch script directory
//	-separator script command separator line
//	-backup-dir backup directory
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-adapter-timeout outbound request timeout (e.g., "30s", "1m")
//	-target-version upgrade target version (0 = newest supported)
//	-auto-upgrade upgrade the database on startup
func ParseFlags() *StructuredConfig {
	var serverAddress, adapterAddress NetAddress
	var driver string
	var databaseDSN string
	var scriptsDir string
	var separator string
	var backupDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var adapterTimeout time.Duration
	var targetVersion int
	var autoUpgrade bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&adapterAddress, "adapter-address", "Remote admin API address host:port")
	flag.StringVar(&driver, "driver", "", "Database driver (postgres, sqlite)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&scriptsDir, "scripts", "", "Batch script directory")
	flag.StringVar(&separator, "separator", "", "Script command separator line")
	flag.StringVar(&backupDir, "backup-dir", "", "Backup directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	flag.IntVar(&targetVersion, "target-version", 0, "Upgrade target version (0 = newest supported)")
	flag.BoolVar(&autoUpgrade, "auto-upgrade", false, "Upgrade the database on startup")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
			Scripts: Scripts{
				Dir:       scriptsDir,
				Separator: separator,
			},
			Backup: Backup{
				Dir: backupDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: adapterTimeout,
		},
		Upgrade: Upgrade{
			TargetVersion: targetVersion,
			Auto:          autoUpgrade,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
