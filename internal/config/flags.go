// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses the command-line arguments shared by both binaries.
//
// Flags:
//
//	-a API listen address in format [host]:[port]
//	-driver source database driver (mysql, pgx, sqlite3)
//	-d source database DSN
//	-prefix source table prefix
//	-source-url origin base URL override
//	-target receiving site base URL
//	-key receiving site press_sync_key
//	-objects object kind to sync
//	-taxonomies comma-separated taxonomies
//	-exact-progress report cumulative progress
//	-rps send rate limit, requests per second
//	-request-timeout outbound request timeout (e.g. "30s")
//	-api page-driving API address used by the driver
//	-headless run the driver without the progress UI
//	-page first page requested by the driver
//	-init-schema apply the sandbox schema before syncing
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("press-sync", flag.ContinueOnError)

	var serverAddress NetAddress
	var driverName, dsn, tablePrefix, siteURL string
	var target, key, objects, taxonomies string
	var exactProgress, headless, initSchema bool
	var rps float64
	var requestTimeout time.Duration
	var apiAddress, logLevel, jsonConfigPath string
	var startPage int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&driverName, "driver", "", "Source database driver (mysql, pgx, sqlite3)")
	fs.StringVar(&dsn, "d", "", "Source database DSN")
	fs.StringVar(&tablePrefix, "prefix", "", "Source table prefix")
	fs.StringVar(&siteURL, "source-url", "", "Origin base URL override")
	fs.StringVar(&target, "target", "", "Receiving site base URL")
	fs.StringVar(&key, "key", "", "Receiving site press_sync_key")
	fs.StringVar(&objects, "objects", "", "Object kind to sync")
	fs.StringVar(&taxonomies, "taxonomies", "", "Comma-separated taxonomies")
	fs.BoolVar(&exactProgress, "exact-progress", false, "Report cumulative progress")
	fs.Float64Var(&rps, "rps", 0, "Send rate limit, requests per second")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s)")
	fs.StringVar(&apiAddress, "api", "", "Page-driving API address")
	fs.BoolVar(&headless, "headless", false, "Run the driver without the progress UI")
	fs.IntVar(&startPage, "page", 0, "First page requested by the driver")
	fs.BoolVar(&initSchema, "init-schema", false, "Apply the sandbox schema before syncing")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Source: Source{
			DB: DB{
				Driver:      driverName,
				DSN:         dsn,
				TablePrefix: tablePrefix,
			},
			SiteURL: siteURL,
		},
		Target: Target{
			ConnectedServer:   target,
			PressSyncKey:      key,
			RequestTimeout:    requestTimeout,
			RequestsPerSecond: rps,
		},
		Sync: Sync{
			ObjectsToSync: objects,
			Taxonomies:    splitList(taxonomies),
			ExactProgress: exactProgress,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Driver: Driver{
			APIAddress: apiAddress,
			Headless:   headless,
			StartPage:  startPage,
			InitSchema: initSchema,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// String returns a canonical host:port string for a NetAddress.
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
