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

	"github.com/stretchr/testify/mock"
)

// MockCommandExecutor is a mock implementation of command.Executor for
// testing probes without running real system commands.
type MockCommandExecutor struct {
	mock.Mock
}

// NewMockCommandExecutor creates a new mock executor.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{}
}

// Run mocks executing a command.
func (m *MockCommandExecutor) Run(ctx context.Context, name string, args ...string) error {
	callArgs := make([]any, 0, len(args)+2)
	callArgs = append(callArgs, ctx, name)
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	return m.Called(callArgs...).Error(0)
}

// Output mocks running a command and capturing stdout.
func (m *MockCommandExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	callArgs := make([]any, 0, len(args)+2)
	callArgs = append(callArgs, ctx, name)
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	result := m.Called(callArgs...)
	out, _ := result.Get(0).([]byte)
	return out, result.Error(1)
}

// SetupOutput configures the mock to return the given stdout for a
// command invocation.
func (m *MockCommandExecutor) SetupOutput(output string, name string, args ...string) {
	callArgs := make([]any, 0, len(args)+2)
	callArgs = append(callArgs, mock.Anything, name)
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	m.On("Output", callArgs...).Return([]byte(output), nil)
}

// SetupOutputError configures the mock to fail a command invocation.
func (m *MockCommandExecutor) SetupOutputError(err error, name string, args ...string) {
	callArgs := make([]any, 0, len(args)+2)
	callArgs = append(callArgs, mock.Anything, name)
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	m.On("Output", callArgs...).Return([]byte(nil), err)
}
