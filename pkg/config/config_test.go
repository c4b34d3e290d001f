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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, CfgFile))
	assert.Equal(t, DefaultNTPServer, cfg.NTPServer())
	assert.Equal(t, DefaultTimeoutMs*time.Millisecond, cfg.NTPTimeout())
	assert.Equal(t, DefaultThresholdMs*time.Millisecond, cfg.SyncThreshold())
	assert.NotEmpty(t, cfg.DeviceID(), "a device id should be generated on first save")
	assert.False(t, cfg.DebugLogging())
}

func TestNewConfigLoadsExistingFile(t *testing.T) {
	dir := t.TempDir()

	data := `
config_schema = 1
debug_logging = true

[ntp]
server = "time.example.org"
timeout_ms = 2500
threshold_ms = 10000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(data), 0o600))

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, "time.example.org", cfg.NTPServer())
	assert.Equal(t, 2500*time.Millisecond, cfg.NTPTimeout())
	assert.Equal(t, 10*time.Second, cfg.SyncThreshold())
	assert.True(t, cfg.DebugLogging())
}

func TestLoadKeepsDefaultsForAbsentFields(t *testing.T) {
	dir := t.TempDir()

	data := `
config_schema = 1

[ntp]
server = "time.example.org"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(data), 0o600))

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, "time.example.org", cfg.NTPServer())
	assert.Equal(t, DefaultTimeoutMs*time.Millisecond, cfg.NTPTimeout())
	assert.Equal(t, DefaultThresholdMs*time.Millisecond, cfg.SyncThreshold())
}

func TestLoadRejectsSchemaMismatch(t *testing.T) {
	dir := t.TempDir()

	data := `
config_schema = 99

[ntp]
server = "pool.ntp.org"
timeout_ms = 5000
threshold_ms = 30000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(data), 0o600))

	_, err := NewConfig(dir, BaseDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version mismatch")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		ntp  string
	}{
		{
			name: "zero timeout",
			ntp:  "server = \"pool.ntp.org\"\ntimeout_ms = 0\nthreshold_ms = 30000",
		},
		{
			name: "negative threshold",
			ntp:  "server = \"pool.ntp.org\"\ntimeout_ms = 5000\nthreshold_ms = -1",
		},
		{
			name: "empty server",
			ntp:  "server = \"\"\ntimeout_ms = 5000\nthreshold_ms = 30000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			data := "config_schema = 1\n\n[ntp]\n" + tt.ntp + "\n"
			require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(data), 0o600))

			_, err := NewConfig(dir, BaseDefaults)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config values")
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetDebugLogging(true)
	require.NoError(t, cfg.Save())

	// Device ID must survive a save/load cycle unchanged.
	id := cfg.DeviceID()
	require.NoError(t, cfg.Load())

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, id, cfg.DeviceID())
}

func TestCfgEnvOverridesPath(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "custom", "my.toml")
	t.Setenv(CfgEnv, override)

	_, err := NewConfig(filepath.Join(dir, "ignored"), BaseDefaults)
	require.NoError(t, err)

	assert.FileExists(t, override)
	assert.NoFileExists(t, filepath.Join(dir, "ignored", CfgFile))
}
