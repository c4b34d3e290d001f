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

package platforms

import "context"

// UnsupportedProbe is the probe for platforms with no readable auto-time
// setting, such as macOS and iOS. The engine relies entirely on the NTP
// fallback there.
type UnsupportedProbe struct{}

// NewUnsupportedProbe creates a probe that always reports unsupported.
func NewUnsupportedProbe() *UnsupportedProbe {
	return &UnsupportedProbe{}
}

// ID returns the none platform ID.
func (*UnsupportedProbe) ID() string {
	return PlatformIDNone
}

// Supported always reports false.
func (*UnsupportedProbe) Supported() bool {
	return false
}

// AutoTimeEnabled always returns ErrNotSupported.
func (*UnsupportedProbe) AutoTimeEnabled(_ context.Context) (bool, error) {
	return false, ErrNotSupported
}
