// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-adapter-address orders API address used by the client
//	-d database DSN
//	-settings settings store path
//	-c/-config json file path with configs
//	-store-id store identifier
//	-store-name store display name
//	-token orders API bearer token
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-adapter-timeout client request timeout
//	-page-size orders per page
//	-lookahead items before the end that trigger the next page
//	-minimal-interval minimal interval between view-appear syncs
//	-resync-interval periodic resync interval
//	-metrics-address metrics exporter address
//	-seed-orders number of generated orders served by the mock server
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var cfg StructuredConfig
	var breakerFailures uint

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "adapter-address", "", "Orders API address")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Settings.Path, "settings", "", "Settings store path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.Int64Var(&cfg.App.StoreID, "store-id", 0, "Store ID")
	fs.StringVar(&cfg.App.StoreName, "store-name", "", "Store name")
	fs.StringVar(&cfg.Adapter.Token, "token", "", "Orders API bearer token")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Orders API request timeout")
	fs.UintVar(&breakerFailures, "breaker-failures", 0, "Consecutive failures opening the circuit breaker")
	fs.DurationVar(&cfg.Adapter.BreakerTimeout, "breaker-timeout", 0, "Circuit breaker open timeout")
	fs.IntVar(&cfg.Sync.PageSize, "page-size", 0, "Orders per page")
	fs.IntVar(&cfg.Sync.Lookahead, "lookahead", 0, "Items before the end that trigger the next page")
	fs.DurationVar(&cfg.Sync.MinimalInterval, "minimal-interval", 0, "Minimal interval between view-appear syncs")
	fs.DurationVar(&cfg.Workers.ResyncInterval, "resync-interval", 0, "Periodic resync interval")
	fs.StringVar(&cfg.Metrics.Address, "metrics-address", "", "Metrics exporter address")
	fs.IntVar(&cfg.App.SeedOrders, "seed-orders", 0, "Generated orders per store")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Adapter.BreakerFailures = uint32(breakerFailures)

	return &cfg, nil
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
