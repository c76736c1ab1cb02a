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

// ParseFlags parses all configuration flags shared by the server and client
// binaries.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-f document file storage path (server)
//	-d database DSN (server)
//	-backend client store backend: "remote" or "local"
//	-server-url base URL of the configuration backend (client)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-autosave-delay debounce quiet period for client auto-save (e.g., "500ms")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var fileStoragePath string
	var databaseDSN string
	var storeBackend string
	var serverURL string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var autosaveDelay time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&fileStoragePath, "f", "", "Document file storage path")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&storeBackend, "backend", "", "Client store backend: remote or local")
	flag.StringVar(&serverURL, "server-url", "", "Configuration backend base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&autosaveDelay, "autosave-delay", 0, "Autosave debounce delay (e.g., 500ms)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			File:    File{Path: fileStoragePath},
			Backend: storeBackend,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{AutosaveDelay: autosaveDelay},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port are set.
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
