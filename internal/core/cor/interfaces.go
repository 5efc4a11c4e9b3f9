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

// Package cor (Chain of Responsibility) is the small workflow engine the
// processing pipeline is built on. A workflow is a Chain of Commands; a
// shared Context carries data, errors, and temporary-file bookkeeping
// between them. These interfaces keep the engine independent of any
// particular pipeline step.
package cor

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CtxIn and CtxOut are the context keys a Chain uses to pipe one command's
// primary output into the next command's primary input.
const (
	CtxIn  = "__IN__"
	CtxOut = "__OUT__"
)

// Context is the shared state for one workflow execution: a property bag
// for inter-command data, an error collector, and a tracker for transient
// files that should be removed when the execution closes.
type Context interface {
	// SetContext and GetContext manage the request-scoped Go context, which
	// carries cancellation and the active trace span.
	SetContext(ctx context.Context)
	GetContext() context.Context

	// Add stores a value for later commands; it returns the Context so
	// calls can be chained.
	Add(key string, value interface{}) Context
	Get(key string) interface{}
	Remove(key string)

	// AddError records a failure under the producing command's name.
	AddError(key string, err error)
	GetErrors() map[string]error
	HasErrors() bool

	// AddTempFile tracks a transient file for removal on Close. Job-scoped
	// artifacts are NOT tracked here; their cleanup is a separately
	// invoked operation keyed by job ID.
	AddTempFile(file string)
	GetTempFiles() []string
	Close()
}

// Executable is anything with a single unit of business logic.
type Executable interface {
	Execute(context Context)
}

// Command is an atomic pipeline step. Commands read their input from the
// Context, do one thing, and write their output back.
type Command interface {
	Executable

	GetName() string
	GetInputParam() string
	GetOutputParam() string

	// IsExecutable is the precondition check a Chain runs before Execute.
	IsExecutable(context Context) bool

	GetTracer() trace.Tracer
	GetMeter() metric.Meter
	GetSuccessCounter() metric.Int64Counter
	GetErrorCounter() metric.Int64Counter
}

// Chain is an ordered sequence of commands. A Chain is itself a Command,
// so chains can nest. A chain always stops at the first recorded error.
type Chain interface {
	Command

	AddCommand(command Command) Chain
}
