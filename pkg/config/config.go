// Zaparoo TimeTrust
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo TimeTrust.
//
// Zaparoo TimeTrust is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo TimeTrust is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo TimeTrust.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	AppName       = "timetrust"
	CfgEnv        = "TIMETRUST_CFG"
	CfgFile       = "config.toml"
	LogFile       = "timetrust.log"
)

// Defaults for the NTP corroboration strategy.
const (
	DefaultNTPServer   = "pool.ntp.org"
	DefaultTimeoutMs   = 5000
	DefaultThresholdMs = 30000
)

// Values is the on-disk configuration schema.
type Values struct {
	DeviceID     string `toml:"device_id,omitempty"`
	NTP          NTP    `toml:"ntp"`
	ConfigSchema int    `toml:"config_schema"`
	DebugLogging bool   `toml:"debug_logging"`
}

// NTP configures the reference time strategy.
type NTP struct {
	// Server is the NTP host queried for reference time.
	Server string `toml:"server" validate:"required,hostname|ip"`
	// TimeoutMs bounds a single NTP round trip.
	TimeoutMs int `toml:"timeout_ms" validate:"gt=0"`
	// ThresholdMs is the maximum tolerated absolute device/reference
	// difference before the clock is considered desynchronized.
	ThresholdMs int `toml:"threshold_ms" validate:"min=0"`
}

// BaseDefaults are the values used when no config file exists.
var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	NTP: NTP{
		Server:      DefaultNTPServer,
		TimeoutMs:   DefaultTimeoutMs,
		ThresholdMs: DefaultThresholdMs,
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Instance is a live config handle. Safe for concurrent use.
type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       sync.RWMutex
}

// DefaultConfigDir returns the xdg config directory for the library.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// NewConfig loads config from configDir, creating a default file if none
// exists. The TIMETRUST_CFG env var overrides the file path entirely.
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		if err := os.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads the config file from disk, layering file values over the
// instance defaults so fields absent from the file keep their defaults.
func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	newVals := c.defaults
	if err := toml.Unmarshal(data, &newVals); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	if err := validate.Struct(&newVals); err != nil {
		return fmt.Errorf("invalid config values: %w", err)
	}

	c.vals = newVals
	return nil
}

// Save writes the current values to disk.
func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	// generate a device id if one doesn't exist
	if c.vals.DeviceID == "" {
		newID := uuid.New().String()
		c.vals.DeviceID = newID
		log.Info().Msgf("generated new device id: %s", newID)
	}

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DeviceID returns this installation's stable identifier.
func (c *Instance) DeviceID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DeviceID
}

// DebugLogging returns whether debug logging is enabled.
func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

// SetDebugLogging enables or disables debug logging.
func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// NTPServer returns the configured NTP server.
func (c *Instance) NTPServer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.NTP.Server
}

// NTPTimeout returns the configured NTP round trip timeout.
func (c *Instance) NTPTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.vals.NTP.TimeoutMs) * time.Millisecond
}

// SyncThreshold returns the configured desynchronization tolerance.
func (c *Instance) SyncThreshold() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.vals.NTP.ThresholdMs) * time.Millisecond
}
