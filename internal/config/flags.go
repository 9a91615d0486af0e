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
//	-a relay server listen address in format [host]:[port]
//	-d local database file path
//	-relay-address relay base URL used by the client
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-port-fallback-attempts ports tried when the configured one is busy
//	-weather-refresh-interval background weather refresh interval
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var relayAddress string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var portFallbackAttempts int
	var weatherRefreshInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&relayAddress, "relay-address", "", "Relay base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&portFallbackAttempts, "port-fallback-attempts", 0, "Ports tried when the configured one is busy")
	flag.DurationVar(&weatherRefreshInterval, "weather-refresh-interval", 0, "Weather refresh interval (e.g., 30m)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:          serverAddress.String(),
			RequestTimeout:       requestTimeout,
			PortFallbackAttempts: portFallbackAttempts,
		},
		Adapter: Adapter{
			HTTPAddress:    relayAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			WeatherRefreshInterval: weatherRefreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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
