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

//go:build windows

package platforms

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// w32TimeParametersKey holds the Windows Time service sync configuration.
// The Type value is "NTP" or "AllSync" when the clock synchronizes
// automatically and "NoSync" when it was set to manual.
const w32TimeParametersKey = `SYSTEM\CurrentControlSet\Services\W32Time\Parameters`

// RegistryProbe reads the Windows Time service configuration from the
// registry. Read failures propagate wrapped in ErrProbeFailed so the
// engine falls back to the NTP strategy.
type RegistryProbe struct{}

// NewRegistryProbe creates a probe backed by the W32Time registry key.
func NewRegistryProbe() *RegistryProbe {
	return &RegistryProbe{}
}

// ID returns the Windows platform ID.
func (*RegistryProbe) ID() string {
	return PlatformIDWindows
}

// Supported reports true on every Windows build.
func (*RegistryProbe) Supported() bool {
	return true
}

// AutoTimeEnabled reads the W32Time sync type.
func (*RegistryProbe) AutoTimeEnabled(_ context.Context) (bool, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, w32TimeParametersKey, registry.QUERY_VALUE)
	if err != nil {
		return false, fmt.Errorf("%w: open W32Time key: %w", ErrProbeFailed, err)
	}
	defer func() { _ = key.Close() }()

	syncType, _, err := key.GetStringValue("Type")
	if err != nil {
		return false, fmt.Errorf("%w: read W32Time sync type: %w", ErrProbeFailed, err)
	}

	return !strings.EqualFold(syncType, "NoSync"), nil
}
