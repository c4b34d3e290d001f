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

// Package timetrust decides whether a device clock is under automatic
// synchronization or has been manually altered. Two strategies are
// combined: reading the platform's auto-time setting where one exists,
// and corroborating the device clock against an NTP reference within a
// tolerance threshold.
//
// Error policy differs by layer and is part of each operation's contract.
// IsDateTimeChanged is the lenient convenience entry point: it absorbs
// network failures into a conservative "changed" verdict and only fails
// on unsupported platforms or invalid arguments. The lower-level
// operations (DetectTimeSyncIssues, DetectTimeModification,
// PerformComprehensiveTimeAnalysis, FetchReferenceTime) are strict and
// surface every failure unchanged for callers that need diagnostics.
package timetrust

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ZaparooProject/go-timetrust/pkg/config"
	"github.com/ZaparooProject/go-timetrust/pkg/helpers/command"
	"github.com/ZaparooProject/go-timetrust/pkg/ntp"
	"github.com/ZaparooProject/go-timetrust/pkg/platforms"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Engine is the clock-trust decision facade. Construct with New; the
// zero value is not usable. Engines hold no mutable state and are safe
// for concurrent use. Each operation performs at most one platform probe
// read and one NTP round trip, then returns; there are no background
// goroutines, retries or persistent connections.
type Engine struct {
	base options
}

// New creates an Engine. Without options the engine uses the build
// platform's probe, a real NTP client against pool.ntp.org, a 5 second
// fetch timeout and a 30 second threshold.
func New(opts ...Option) (*Engine, error) {
	base := options{
		probe:  platforms.NewProbe(&command.RealExecutor{}),
		client: ntp.NewPoolClient(),
		clock:  clockwork.NewRealClock(),
		settings: settings{
			Server:    config.DefaultNTPServer,
			Timeout:   config.DefaultTimeoutMs * time.Millisecond,
			Threshold: config.DefaultThresholdMs * time.Millisecond,
		},
	}

	resolved, err := base.with(opts)
	if err != nil {
		return nil, err
	}

	return &Engine{base: resolved}, nil
}

// IsDateTimeChanged reports whether the device date/time appears to have
// been manually changed.
//
// The platform probe is consulted first: auto-time enabled means no
// change, disabled means changed. If the probe is unsupported or fails,
// the engine falls back to comparing the device clock against NTP. If
// the NTP fetch itself fails, the method reports true rather than
// erroring: without a reference the clock cannot be proven untouched,
// and hiding a real manual change is worse than over-reporting one.
func (e *Engine) IsDateTimeChanged(ctx context.Context) (bool, error) {
	if e.base.probe != nil && e.base.probe.Supported() {
		enabled, err := e.base.probe.AutoTimeEnabled(ctx)
		if err == nil {
			return !enabled, nil
		}
		if errors.Is(err, platforms.ErrNotSupported) {
			log.Debug().Str("platform", e.base.probe.ID()).
				Msg("auto-time probe unsupported, using ntp fallback")
		} else {
			log.Warn().Err(err).Str("platform", e.base.probe.ID()).
				Msg("auto-time probe failed, using ntp fallback")
		}
	}

	result, err := e.DetectTimeSyncIssues(ctx)
	if err != nil {
		var netErr *ntp.NetworkError
		if errors.As(err, &netErr) {
			log.Error().Err(err).Msg("ntp fetch failed, assuming date/time was changed")
			return true, nil
		}
		return false, err
	}

	return !result.Synchronized, nil
}

// CheckAutoDateTimeStatus reports the auto-time setting as a status enum.
//
// Deprecated: this is a thin adapter over IsDateTimeChanged with inverted
// boolean polarity, retained for backward compatibility. New callers
// should use IsDateTimeChanged.
func (e *Engine) CheckAutoDateTimeStatus(ctx context.Context) (AutoDateTimeStatus, error) {
	changed, err := e.IsDateTimeChanged(ctx)
	if err != nil {
		return AutoDateTimeOff, err
	}
	if changed {
		return AutoDateTimeOff, nil
	}
	return AutoDateTimeOn, nil
}

// DetectTimeSyncIssues fetches a reference time and compares the device
// clock against it. Strict: NTP failures propagate unchanged, with no
// conservative fallback. The fallback policy lives only in
// IsDateTimeChanged.
func (e *Engine) DetectTimeSyncIssues(
	ctx context.Context,
	opts ...Option,
) (TimeSyncResult, error) {
	resolved, err := e.base.with(opts)
	if err != nil {
		return TimeSyncResult{}, err
	}
	if resolved.client == nil {
		return TimeSyncResult{}, fmt.Errorf("%w: no ntp client configured", ErrUnsupportedPlatform)
	}

	reference, err := resolved.client.FetchTime(ctx, resolved.settings.Server, resolved.settings.Timeout)
	if err != nil {
		return TimeSyncResult{}, err
	}

	result := Compare(resolved.clock.Now(), reference, resolved.settings.Threshold)
	result.ReferenceSource = resolved.settings.Server
	return result, nil
}

// DetectTimeModification reports whether the device clock disagrees with
// the NTP reference beyond the threshold. Strict, like
// DetectTimeSyncIssues.
func (e *Engine) DetectTimeModification(ctx context.Context, opts ...Option) (bool, error) {
	result, err := e.DetectTimeSyncIssues(ctx, opts...)
	if err != nil {
		return false, err
	}
	return !result.Synchronized, nil
}

// PerformComprehensiveTimeAnalysis runs the auto-time status check and
// the NTP sync check and composes both verdicts. The two checks run
// concurrently; if either fails the whole call fails with no partial
// result.
func (e *Engine) PerformComprehensiveTimeAnalysis(
	ctx context.Context,
	opts ...Option,
) (ComprehensiveTimeAnalysis, error) {
	resolved, err := e.base.with(opts)
	if err != nil {
		return ComprehensiveTimeAnalysis{}, err
	}

	var (
		status  AutoDateTimeStatus
		syncRes TimeSyncResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, statusErr := e.CheckAutoDateTimeStatus(gctx)
		if statusErr != nil {
			return statusErr
		}
		status = s
		return nil
	})
	g.Go(func() error {
		r, syncErr := e.DetectTimeSyncIssues(gctx, opts...)
		if syncErr != nil {
			return syncErr
		}
		syncRes = r
		return nil
	})

	if err := g.Wait(); err != nil {
		return ComprehensiveTimeAnalysis{}, err
	}

	return ComprehensiveTimeAnalysis{
		ID:         uuid.New(),
		CapturedAt: resolved.clock.Now().UTC(),
		Status:     status,
		Sync:       syncRes,
	}, nil
}

// FetchReferenceTime returns the current UTC time from the configured
// NTP server. Strict: network failures propagate unchanged.
func (e *Engine) FetchReferenceTime(ctx context.Context, opts ...Option) (time.Time, error) {
	resolved, err := e.base.with(opts)
	if err != nil {
		return time.Time{}, err
	}
	if resolved.client == nil {
		return time.Time{}, fmt.Errorf("%w: no ntp client configured", ErrUnsupportedPlatform)
	}

	//nolint:wrapcheck // NetworkError must surface unchanged for errors.As
	return resolved.client.FetchTime(ctx, resolved.settings.Server, resolved.settings.Timeout)
}

// DeviceTime returns the current local device clock reading.
func (e *Engine) DeviceTime() time.Time {
	return e.base.clock.Now()
}
