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

// ParseFlags parses the gateway flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-redis redis address host:port
//	-b backend base URL
//	-base-url public base URL of the gateway
//	-c/-config json file path with configs
//	-session-sign-key session signing key
//	-session-duration session duration (e.g., "24h")
//	-identity-domain identity provider tenant domain
//	-identity-client-id identity client id
//	-identity-client-secret identity client secret
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, redisAddress, backendAddress, baseURL string
	var jsonConfigPath string
	var sessionSignKey string
	var sessionDuration, requestTimeout time.Duration
	var identityDomain, identityClientID, identityClientSecret string
	var logLevel string

	fs := flag.NewFlagSet("adspace", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	fs.StringVar(&backendAddress, "b", "", "Backend base URL")
	fs.StringVar(&baseURL, "base-url", "", "Public base URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session signing key")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 24h)")
	fs.StringVar(&identityDomain, "identity-domain", "", "Identity provider domain")
	fs.StringVar(&identityClientID, "identity-client-id", "", "Identity client id")
	fs.StringVar(&identityClientSecret, "identity-client-secret", "", "Identity client secret")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			BaseURL:         baseURL,
			SessionSignKey:  sessionSignKey,
			SessionDuration: sessionDuration,
			LogLevel:        logLevel,
		},
		Identity: Identity{
			Domain:       identityDomain,
			ClientID:     identityClientID,
			ClientSecret: identityClientSecret,
		},
		Backend: Backend{
			HTTPAddress: backendAddress,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{Addr: redisAddress},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
