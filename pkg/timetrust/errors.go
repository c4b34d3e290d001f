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

import "errors"

var (
	// ErrUnsupportedPlatform means no probe can answer and no fallback
	// strategy is available. Fatal, surfaced to the caller.
	ErrUnsupportedPlatform = errors.New("no auto-time probe and no fallback strategy available")

	// ErrInvalidArgument means a caller supplied a malformed threshold,
	// timeout or server. Surfaced immediately, never silently clamped.
	ErrInvalidArgument = errors.New("invalid argument")
)
