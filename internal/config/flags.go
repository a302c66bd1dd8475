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

// parseFlags parses configuration flags from args. Positional arguments are
// kept in [StructuredConfig.Args].
//
// Flags:
//
//	-a loopback server address in format [host]:[port]
//	-d artifact registry DSN
//	-c/-config JSON or YAML config file path
//	-key secret key file path
//	-artifacts artifact directory
//	-scheme cipher scheme (cbc, gcm)
//	-allow comma separated allowed domains
//	-user-agent outbound User-Agent
//	-fetch-timeout outbound request timeout (e.g., "10s")
//	-max-image-size largest downloadable image in bytes
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-kdf-concurrency parallel key derivations
//	-sweep-interval blob sweep interval
//	-blob-ttl blob lifetime
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-safe-preview", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, configPath, secretKeyPath, artifactDir, scheme, allowed, userAgent string
	var fetchTimeout, requestTimeout, sweepInterval, blobTTL time.Duration
	var maxImageSize, kdfConcurrency int64

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Artifact registry DSN")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&secretKeyPath, "key", "", "Secret key file path")
	fs.StringVar(&artifactDir, "artifacts", "", "Artifact directory")
	fs.StringVar(&scheme, "scheme", "", "Cipher scheme (cbc, gcm)")
	fs.StringVar(&allowed, "allow", "", "Comma separated allowed domains")
	fs.StringVar(&userAgent, "user-agent", "", "Outbound User-Agent")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Outbound request timeout (e.g., 10s)")
	fs.Int64Var(&maxImageSize, "max-image-size", 0, "Largest downloadable image in bytes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&kdfConcurrency, "kdf-concurrency", 0, "Parallel key derivations")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Blob sweep interval")
	fs.DurationVar(&blobTTL, "blob-ttl", 0, "Blob lifetime")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SecretKeyPath:  secretKeyPath,
			ArtifactDir:    artifactDir,
			CipherScheme:   scheme,
			AllowedDomains: splitList(allowed),
		},
		Fetcher: Fetcher{
			UserAgent:      userAgent,
			RequestTimeout: fetchTimeout,
			MaxImageSize:   maxImageSize,
		},
		Crypto:  Crypto{KDFConcurrency: kdfConcurrency},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
			BlobTTL:       blobTTL,
		},
		FilePath: configPath,
		Args:     fs.Args(),
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// An unset address renders as the empty string.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
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
