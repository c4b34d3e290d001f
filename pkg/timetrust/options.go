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

package timetrust

import (
	"fmt"
	"time"

	"github.com/ZaparooProject/go-timetrust/pkg/config"
	"github.com/ZaparooProject/go-timetrust/pkg/ntp"
	"github.com/ZaparooProject/go-timetrust/pkg/platforms"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
)

// settings are the tunable comparison parameters, validated on every
// resolve so malformed caller input always surfaces as ErrInvalidArgument.
type settings struct {
	Server    string        `validate:"required,hostname|ip"`
	Threshold time.Duration `validate:"min=0"`
	Timeout   time.Duration `validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// options carries the engine's collaborators and default settings.
type options struct {
	probe    platforms.Probe
	client   ntp.Client
	clock    clockwork.Clock
	settings settings
}

// Option configures an Engine at construction or a single operation call.
type Option func(*options)

// WithProbe injects the platform auto-time setting probe. Pass nil to
// disable probing entirely and rely on the NTP strategy.
func WithProbe(p platforms.Probe) Option {
	return func(o *options) { o.probe = p }
}

// WithNTPClient injects the reference time source.
func WithNTPClient(c ntp.Client) Option {
	return func(o *options) { o.client = c }
}

// WithClock injects the device clock. Tests substitute a fake clock for
// deterministic comparisons.
func WithClock(clk clockwork.Clock) Option {
	return func(o *options) { o.clock = clk }
}

// WithServer sets the NTP server to query for reference time.
func WithServer(server string) Option {
	return func(o *options) { o.settings.Server = server }
}

// WithThreshold sets the maximum tolerated device/reference difference.
func WithThreshold(threshold time.Duration) Option {
	return func(o *options) { o.settings.Threshold = threshold }
}

// WithTimeout bounds a single NTP round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.settings.Timeout = timeout }
}

// WithConfig takes server, timeout and threshold from a loaded config
// instance.
func WithConfig(cfg *config.Instance) Option {
	return func(o *options) {
		o.settings.Server = cfg.NTPServer()
		o.settings.Timeout = cfg.NTPTimeout()
		o.settings.Threshold = cfg.SyncThreshold()
	}
}

// with clones the receiver, applies per-call options and validates the
// resulting settings.
func (o options) with(opts []Option) (options, error) {
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate.Struct(&o.settings); err != nil {
		return o, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return o, nil
}
