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

package cor

import (
	"context"
)

// BaseContext is the default, concrete implementation of the Context
// interface. It holds a single pipeline run's worth of state: the request
// data being passed between commands and any errors the commands recorded.
type BaseContext struct {
	ctx    context.Context
	data   map[string]interface{}
	errors map[string]error
}

// SetContext sets the Go context for the pipeline run, carrying cancellation
// and trace propagation into each command.
func (b *BaseContext) SetContext(ctx context.Context) {
	b.ctx = ctx
}

// GetContext returns the Go context for the pipeline run.
func (b *BaseContext) GetContext() context.Context {
	return b.ctx
}

// Add stores a key-value pair in the context's data map, returning the
// context so calls can be chained.
func (b *BaseContext) Add(key string, value interface{}) Context {
	b.data[key] = value
	return b
}

// AddError records an error under the given key, typically the name of the
// command that failed.
func (b *BaseContext) AddError(key string, err error) {
	b.errors[key] = err
}

// GetErrors returns all errors recorded during the run.
func (b *BaseContext) GetErrors() map[string]error {
	return b.errors
}

// Get retrieves a value by key, or nil when the key is absent.
func (b *BaseContext) Get(key string) interface{} {
	return b.data[key]
}

// Remove deletes a key from the data map.
func (b *BaseContext) Remove(key string) {
	delete(b.data, key)
}

// HasErrors reports whether any command recorded an error.
func (b *BaseContext) HasErrors() bool {
	return len(b.errors) > 0
}

// NewBaseContext creates an empty context for a single pipeline execution.
// Callers seed the initial input with Add(CtxIn, ...) before running a chain.
func NewBaseContext() Context {
	return &BaseContext{
		ctx:    context.Background(),
		data:   make(map[string]interface{}),
		errors: make(map[string]error),
	}
}
