// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the press-sync server and migration driver.
//
// Configuration is assembled from multiple sources. The first source that
// sets a field wins:
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The merged result is validated with go-playground/validator before use.
// The main entry point is [GetStructuredConfig].
package config
