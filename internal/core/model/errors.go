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

// Package model defines the core data structures for the application.
// This file defines the typed processing error used across all component
// boundaries. Low-level failures (network, missing file, malformed subtitle,
// model call errors) are caught where they happen and re-raised as a
// ProcessingError carrying a kind and a human-readable cause, so the HTTP
// layer can branch on the kind instead of inspecting message strings.
package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ProcessingError. The set is closed: every failure
// a component surfaces maps to exactly one of these.
type ErrorKind string

const (
	// ErrUnresolvableURL means no recognizable video identifier was found
	// in the submitted URL. No external system was contacted.
	ErrUnresolvableURL ErrorKind = "unresolvable_url"
	// ErrExternalToolFailure covers any failure of the video-extraction
	// tool: network errors, removed or age-restricted videos, missing
	// output files. Callers cannot distinguish causes beyond the message.
	ErrExternalToolFailure ErrorKind = "external_tool_failure"
	// ErrNoBackendAvailable means no summarization backend could be
	// selected at construction: no hosted credential and no local endpoint.
	ErrNoBackendAvailable ErrorKind = "no_backend_available"
	// ErrEmptyInput means empty or whitespace-only text was submitted for
	// summarization. Rejected before chunking.
	ErrEmptyInput ErrorKind = "empty_input"
	// ErrBackendCallFailure means a reduction-pass model call failed.
	// Unlike per-chunk calls, reductions have no fallback.
	ErrBackendCallFailure ErrorKind = "backend_call_failure"
)

// ProcessingError is the single domain error type. It is the recognized,
// client-correctable class of failure: the HTTP layer maps it to a 400
// response, while anything else becomes a 500.
type ProcessingError struct {
	Kind  ErrorKind
	Cause error
}

func (e *ProcessingError) Error() string {
	if e.Cause == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}

// NewProcessingError wraps a cause with a kind. A nil cause is allowed for
// kinds that are self-describing, like ErrNoBackendAvailable.
func NewProcessingError(kind ErrorKind, cause error) *ProcessingError {
	return &ProcessingError{Kind: kind, Cause: cause}
}

// Errorf builds a ProcessingError with a formatted cause message.
func Errorf(kind ErrorKind, format string, args ...any) *ProcessingError {
	return &ProcessingError{Kind: kind, Cause: fmt.Errorf(format, args...)}
}

// AsProcessingError unwraps err to a *ProcessingError when one is anywhere
// in its chain.
func AsProcessingError(err error) (*ProcessingError, bool) {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
