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

// Package mocks provides testify mocks for the library's injectable
// collaborators.
package mocks

import (
	"context"

	"github.com/ZaparooProject/go-timetrust/pkg/platforms"
	"github.com/stretchr/testify/mock"
)

// MockProbe is a mock implementation of platforms.Probe for testing.
type MockProbe struct {
	mock.Mock
}

// NewMockProbe creates a new mock probe.
func NewMockProbe() *MockProbe {
	return &MockProbe{}
}

// ID mocks the platform ID.
func (m *MockProbe) ID() string {
	args := m.Called()
	return args.String(0)
}

// Supported mocks the discoverability check.
func (m *MockProbe) Supported() bool {
	args := m.Called()
	return args.Bool(0)
}

// AutoTimeEnabled mocks reading the auto-time setting.
func (m *MockProbe) AutoTimeEnabled(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// SetupEnabled configures the mock as a supported probe reporting the
// given auto-time state.
func (m *MockProbe) SetupEnabled(enabled bool) {
	m.On("ID").Return("mock").Maybe()
	m.On("Supported").Return(true)
	m.On("AutoTimeEnabled", mock.Anything).Return(enabled, nil)
}

// SetupUnsupported configures the mock to report the platform has no
// readable auto-time setting.
func (m *MockProbe) SetupUnsupported() {
	m.On("ID").Return("mock").Maybe()
	m.On("Supported").Return(false)
	m.On("AutoTimeEnabled", mock.Anything).
		Return(false, platforms.ErrNotSupported).Maybe()
}

// SetupError configures the mock as a supported probe whose read fails.
func (m *MockProbe) SetupError(err error) {
	m.On("ID").Return("mock").Maybe()
	m.On("Supported").Return(true)
	m.On("AutoTimeEnabled", mock.Anything).Return(false, err)
}
