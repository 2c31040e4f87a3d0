// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// press-sync server and the migration driver. It is populated by merging
// values from a .env file, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// Source describes the installation objects are read from.
	Source Source `envPrefix:"SOURCE_"`

	// Target describes the receiving installation.
	Target Target `envPrefix:"TARGET_"`

	// Sync holds the persisted sync options consulted on every page call.
	Sync Sync `envPrefix:"SYNC_"`

	// Server holds the listen address of the page-driving API.
	Server Server `envPrefix:"SERVER_"`

	// Driver holds settings of the command-line migration driver.
	Driver Driver `envPrefix:"DRIVER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Source groups the settings of the source installation.
type Source struct {
	// DB holds the source database connection settings.
	DB DB `envPrefix:"DB_"`

	// SiteURL overrides the origin base URL otherwise read from the "home"
	// option of the source database.
	// Env: SOURCE_SITE_URL
	SiteURL string `env:"SITE_URL" validate:"omitempty,url"`

	// GMTOffset overrides the "gmt_offset" option of the source database.
	// Env: SOURCE_GMT_OFFSET
	GMTOffset string `env:"GMT_OFFSET" validate:"omitempty,numeric"`
}

// DB holds connection settings for the source database.
type DB struct {
	// Driver is the database/sql driver name: mysql, pgx or sqlite3.
	// Env: SOURCE_DB_DRIVER
	Driver string `env:"DRIVER" validate:"omitempty,oneof=mysql pgx sqlite3"`

	// DSN is the driver-specific Data Source Name
	// (e.g. "wp:secret@tcp(127.0.0.1:3306)/wordpress").
	// Env: SOURCE_DB_DSN
	DSN string `env:"DSN"`

	// TablePrefix is prepended to every table name (e.g. "wp_").
	// Env: SOURCE_DB_TABLE_PREFIX
	TablePrefix string `env:"TABLE_PREFIX" validate:"omitempty,sqlident"`
}

// Target holds the receiving installation and outbound request settings.
type Target struct {
	// ConnectedServer is the base URL of the receiving site.
	// Env: TARGET_CONNECTED_SERVER
	ConnectedServer string `env:"CONNECTED_SERVER" validate:"omitempty,url"`

	// PressSyncKey is the shared secret the receiving site expects.
	// Env: TARGET_PRESS_SYNC_KEY
	PressSyncKey string `env:"PRESS_SYNC_KEY"`

	// RequestTimeout bounds every outbound request.
	// Env: TARGET_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`

	// RequestsPerSecond throttles object sends. Zero means unlimited.
	// Env: TARGET_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND" validate:"gte=0"`
}

// Sync holds the options that decide what a page call syncs.
type Sync struct {
	// Method is recorded with every page for the operator's benefit.
	// Env: SYNC_METHOD
	Method string `env:"METHOD"`

	// ObjectsToSync is the default object kind.
	// Env: SYNC_OBJECTS_TO_SYNC
	ObjectsToSync string `env:"OBJECTS_TO_SYNC" validate:"omitempty,max=64"`

	// Taxonomies restricts the taxonomies resolved for content objects.
	// Empty means every taxonomy used by the kind.
	// Env: SYNC_TAXONOMIES
	Taxonomies []string `env:"TAXONOMIES" envSeparator:","`

	// ExactProgress switches progress reporting to the cumulative count.
	// Env: SYNC_EXACT_PROGRESS
	ExactProgress bool `env:"EXACT_PROGRESS"`
}

// Server holds network and timeout settings of the page-driving API.
type Server struct {
	// HTTPAddress is the TCP address the API listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
}

// Driver holds the settings of cmd/client.
type Driver struct {
	// APIAddress makes the driver call a running press-sync server instead
	// of syncing in-process (e.g. "http://localhost:8080").
	// Env: DRIVER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS" validate:"omitempty,url"`

	// Headless disables the progress UI and logs each page instead.
	// Env: DRIVER_HEADLESS
	Headless bool `env:"HEADLESS"`

	// StartPage is the first page requested.
	// Env: DRIVER_START_PAGE
	StartPage int `env:"START_PAGE" validate:"gte=0"`

	// LogFile receives driver logs while the progress UI owns the terminal.
	// Env: DRIVER_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// InitSchema applies the sandbox schema to the source database before
	// syncing. Intended for sqlite sources.
	// Env: DRIVER_INIT_SCHEMA
	InitSchema bool `env:"INIT_SCHEMA"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// GetStructuredConfig loads, merges, defaults and validates the configuration
// from all available sources in the following priority order (first
// non-zero value wins):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
