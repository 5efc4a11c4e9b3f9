// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessingErrorCarriesKindAndCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewProcessingError(ErrExternalToolFailure, cause)

	assert.Equal(t, "external_tool_failure: connection reset", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestProcessingErrorNilCause(t *testing.T) {
	err := NewProcessingError(ErrNoBackendAvailable, nil)
	assert.Equal(t, "no_backend_available", err.Error())
}

// TestAsProcessingErrorThroughWrapping verifies the kind survives fmt.Errorf
// wrapping, so callers can branch on it without string inspection.
func TestAsProcessingErrorThroughWrapping(t *testing.T) {
	inner := Errorf(ErrUnresolvableURL, "no ID in %q", "https://example.com")
	wrapped := fmt.Errorf("handling request: %w", inner)

	pe, ok := AsProcessingError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrUnresolvableURL, pe.Kind)
}

func TestAsProcessingErrorRejectsPlainErrors(t *testing.T) {
	_, ok := AsProcessingError(errors.New("disk on fire"))
	assert.False(t, ok)
}
