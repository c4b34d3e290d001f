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

// Package platforms defines the auto-time setting probe capability and
// provides reference probes for platforms that expose the setting. The
// decision engine consumes the Probe interface only; any platform can be
// substituted by injecting a different implementation.
package platforms

import (
	"context"
	"errors"
)

var (
	// ErrNotSupported means the current platform has no readable
	// auto-time setting. Callers fall back to the NTP strategy.
	ErrNotSupported = errors.New("auto-time probe not supported on this platform")

	// ErrProbeFailed means the platform exposes the setting but reading
	// it failed unexpectedly. Treated like ErrNotSupported for fallback
	// purposes.
	ErrProbeFailed = errors.New("auto-time probe failed")
)

const (
	PlatformIDAndroid = "android"
	PlatformIDLinux   = "linux"
	PlatformIDWindows = "windows"
	PlatformIDNone    = "none"
)

// Probe reads the platform's automatic date/time setting.
type Probe interface {
	// ID returns the unique ID of the platform this probe reads.
	ID() string
	// Supported reports whether the probe can answer on this platform.
	// A discoverability check, not a health check: it must be cheap and
	// must not touch the setting itself.
	Supported() bool
	// AutoTimeEnabled reports whether the OS keeps the clock
	// synchronized automatically. Returns ErrNotSupported or an error
	// wrapping ErrProbeFailed when no answer is possible.
	AutoTimeEnabled(ctx context.Context) (bool, error)
}
