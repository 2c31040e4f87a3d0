// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig with JSON-friendly durations.
type StructuredJSONConfig struct {
	Source struct {
		DB struct {
			Driver      string `json:"driver"`
			DSN         string `json:"dsn"`
			TablePrefix string `json:"table_prefix"`
		} `json:"db,omitempty"`
		SiteURL   string `json:"site_url"`
		GMTOffset string `json:"gmt_offset"`
	} `json:"source,omitempty"`

	Target struct {
		ConnectedServer   string   `json:"connected_server"`
		PressSyncKey      string   `json:"press_sync_key"`
		RequestTimeout    Duration `json:"request_timeout"`
		RequestsPerSecond float64  `json:"requests_per_second"`
	} `json:"target,omitempty"`

	Sync struct {
		Method        string   `json:"sync_method"`
		ObjectsToSync string   `json:"objects_to_sync"`
		Taxonomies    []string `json:"taxonomies"`
		ExactProgress bool     `json:"exact_progress"`
	} `json:"sync,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Driver struct {
		APIAddress string `json:"api_address"`
		Headless   bool   `json:"headless"`
		StartPage  int    `json:"start_page"`
		LogFile    string `json:"log_file"`
		InitSchema bool   `json:"init_schema"`
	} `json:"driver,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Source: Source{
			DB: DB{
				Driver:      jsonCfg.Source.DB.Driver,
				DSN:         jsonCfg.Source.DB.DSN,
				TablePrefix: jsonCfg.Source.DB.TablePrefix,
			},
			SiteURL:   jsonCfg.Source.SiteURL,
			GMTOffset: jsonCfg.Source.GMTOffset,
		},
		Target: Target{
			ConnectedServer:   jsonCfg.Target.ConnectedServer,
			PressSyncKey:      jsonCfg.Target.PressSyncKey,
			RequestTimeout:    time.Duration(jsonCfg.Target.RequestTimeout),
			RequestsPerSecond: jsonCfg.Target.RequestsPerSecond,
		},
		Sync: Sync{
			Method:        jsonCfg.Sync.Method,
			ObjectsToSync: jsonCfg.Sync.ObjectsToSync,
			Taxonomies:    jsonCfg.Sync.Taxonomies,
			ExactProgress: jsonCfg.Sync.ExactProgress,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Driver: Driver{
			APIAddress: jsonCfg.Driver.APIAddress,
			Headless:   jsonCfg.Driver.Headless,
			StartPage:  jsonCfg.Driver.StartPage,
			LogFile:    jsonCfg.Driver.LogFile,
			InitSchema: jsonCfg.Driver.InitSchema,
		},
		Log: Log{Level: jsonCfg.Log.Level},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
