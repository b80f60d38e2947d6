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
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Meter is the shared OpenTelemetry meter for all pipeline commands.
var Meter = otel.Meter("github.com/cinelens/camera-prompt-service")

// BaseCommand provides a default implementation of the Command interface.
// Concrete commands embed it to inherit naming, parameter-key handling, and
// per-command telemetry (a tracer plus success/error counters), and then
// override Execute with their own logic.
type BaseCommand struct {
	Name            string
	InputParamName  string
	OutputParamName string
	Tracer          trace.Tracer
	Counter         metric.Int64Counter
	ErrorCounter    metric.Int64Counter
}

// GetName returns the command's unique name.
func (b *BaseCommand) GetName() string {
	return b.Name
}

// GetInputParam returns the context key this command reads its input from.
// Defaults to CtxIn so the command participates in chain piping.
func (b *BaseCommand) GetInputParam() string {
	if len(b.InputParamName) == 0 {
		return CtxIn
	}
	return b.InputParamName
}

// GetOutputParam returns the context key this command writes its primary
// output to. Defaults to CtxOut.
func (b *BaseCommand) GetOutputParam() string {
	if len(b.OutputParamName) == 0 {
		return CtxOut
	}
	return b.OutputParamName
}

// IsExecutable verifies the command's input is present in the context.
func (b *BaseCommand) IsExecutable(context Context) bool {
	return context != nil && context.Get(b.GetInputParam()) != nil
}

// Execute is a no-op on the base struct; concrete commands override it.
func (b *BaseCommand) Execute(_ Context) {}

// GetTracer lazily creates the command's tracer, named after the command.
func (b *BaseCommand) GetTracer() trace.Tracer {
	if b.Tracer == nil {
		b.Tracer = otel.Tracer(b.GetName())
	}
	return b.Tracer
}

// GetMeter returns the shared meter used for command counters.
func (b *BaseCommand) GetMeter() metric.Meter {
	return Meter
}

// GetSuccessCounter lazily creates the counter incremented on each
// successful execution of the command.
func (b *BaseCommand) GetSuccessCounter() metric.Int64Counter {
	if b.Counter == nil {
		counter, err := b.GetMeter().Int64Counter(fmt.Sprintf("%s_success_count", b.GetName()))
		if err != nil {
			return nil
		}
		b.Counter = counter
	}
	return b.Counter
}

// GetErrorCounter lazily creates the counter incremented on each failed
// execution of the command.
func (b *BaseCommand) GetErrorCounter() metric.Int64Counter {
	if b.ErrorCounter == nil {
		counter, err := b.GetMeter().Int64Counter(fmt.Sprintf("%s_error_count", b.GetName()))
		if err != nil {
			return nil
		}
		b.ErrorCounter = counter
	}
	return b.ErrorCounter
}
