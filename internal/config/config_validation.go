// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultDriver is the database/sql driver used when none is configured.
	DefaultDriver = "mysql"
	// DefaultTablePrefix is the table prefix of a stock installation.
	DefaultTablePrefix = "wp_"
	// DefaultRequestTimeout bounds every request to the receiving site.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultObjectsToSync is synced when no kind is configured.
	DefaultObjectsToSync = "post"
)

var sqlIdentPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// defaults returns the values merged below every configured source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Source: Source{
			DB: DB{
				Driver:      DefaultDriver,
				TablePrefix: DefaultTablePrefix,
			},
		},
		Target: Target{
			RequestTimeout: DefaultRequestTimeout,
		},
		Sync: Sync{
			ObjectsToSync: DefaultObjectsToSync,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Minute,
		},
		Driver: Driver{
			StartPage: 1,
			LogFile:   "press-sync.log",
		},
		Log: Log{Level: "debug"},
	}
}

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("sqlident", func(fl validator.FieldLevel) bool {
		return sqlIdentPattern.MatchString(fl.Field().String())
	})

	return v
}

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Field formats are checked by struct tags; cross-field rules are
// checked here.
func (cfg *StructuredConfig) validate() error {
	if err := newConfigValidator().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if cfg.Driver.APIAddress == "" && cfg.Source.DB.DSN == "" {
		return ErrInvalidSourceConfigs
	}

	if cfg.Target.PressSyncKey != "" && strings.ContainsAny(cfg.Target.PressSyncKey, " \t\r\n") {
		return ErrInvalidTargetConfigs
	}

	return nil
}
