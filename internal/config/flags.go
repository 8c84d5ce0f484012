// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a local view API address in format [host]:[port]
//	-r remote inventory API address
//	-d snapshot database DSN
//	-s store selected on startup
//	-c/-config json file path with configs
//	-api-token bearer token for the remote API
//	-hash-key request signing key
//	-request-timeout remote request timeout (e.g. "15s")
//	-page-size remote page size
//	-refresh-interval background refresh interval (e.g. "1m")
//	-trace-stdout print spans to stdout
//	-tui run the terminal monitor
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("stock-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var remoteAddress string
	var databaseDSN string
	var storeID string
	var jsonConfigPath string
	var apiToken string
	var hashKey string
	var requestTimeout time.Duration
	var pageSize int
	var refreshInterval time.Duration
	var traceStdout bool
	var tui bool

	fs.Var(&serverAddress, "a", "Local view API address host:port")
	fs.StringVar(&remoteAddress, "r", "", "Remote inventory API address")
	fs.StringVar(&databaseDSN, "d", "", "Snapshot database DSN")
	fs.StringVar(&storeID, "s", "", "Store selected on startup")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&apiToken, "api-token", "", "Remote API bearer token")
	fs.StringVar(&hashKey, "hash-key", "", "Request signing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	fs.IntVar(&pageSize, "page-size", 0, "Remote page size")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 1m)")
	fs.BoolVar(&traceStdout, "trace-stdout", false, "Print spans to stdout")
	fs.BoolVar(&tui, "tui", false, "Run the terminal monitor")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:  hashKey,
			APIToken: apiToken,
			StoreID:  storeID,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
			PageSize:       pageSize,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		Telemetry:    Telemetry{Stdout: traceStdout},
		UI:           UI{Enabled: tui},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
