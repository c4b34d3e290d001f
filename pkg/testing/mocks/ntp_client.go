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

package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/ZaparooProject/go-timetrust/pkg/ntp"
	"github.com/stretchr/testify/mock"
)

// MockNTPClient is a mock implementation of ntp.Client for testing.
type MockNTPClient struct {
	mock.Mock
}

// NewMockNTPClient creates a new mock NTP client.
func NewMockNTPClient() *MockNTPClient {
	return &MockNTPClient{}
}

// FetchTime mocks fetching a reference time.
func (m *MockNTPClient) FetchTime(
	ctx context.Context,
	server string,
	timeout time.Duration,
) (time.Time, error) {
	args := m.Called(ctx, server, timeout)
	t, _ := args.Get(0).(time.Time)
	return t, args.Error(1)
}

// SetupReferenceTime configures the mock to return a fixed reference time
// for any server.
func (m *MockNTPClient) SetupReferenceTime(t time.Time) {
	m.On("FetchTime", mock.Anything, mock.Anything, mock.Anything).Return(t, nil)
}

// SetupNetworkError configures the mock to fail every fetch with a
// *ntp.NetworkError, as a real client would on timeout or DNS failure.
func (m *MockNTPClient) SetupNetworkError(cause error) {
	if cause == nil {
		cause = errors.New("i/o timeout")
	}
	m.On("FetchTime", mock.Anything, mock.Anything, mock.Anything).
		Return(time.Time{}, &ntp.NetworkError{Server: "mock", Err: cause})
}
