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
	"log/slog"
)

// BaseChain is the default Chain implementation. It executes its commands in
// order, piping each command's CtxOut value into the next command's CtxIn,
// and stops at the first recorded error unless configured to continue.
//
// Logic Flow:
//  1. For each command, verify IsExecutable against the current context.
//  2. Open a child trace span named after the command and run it.
//  3. On error (or a failed precondition) increment the error counter and,
//     unless continueOnFailure is set, stop the chain.
//  4. Move the command's CtxOut value to CtxIn so the next command sees it.
type BaseChain struct {
	BaseCommand
	continueOnFailure bool
	commands          []Command
}

// ContinueOnFailure configures whether the chain keeps executing after a
// command records an error. The default is to stop.
func (b *BaseChain) ContinueOnFailure(value bool) Chain {
	b.continueOnFailure = value
	return b
}

// AddCommand appends a command to the chain's execution sequence.
func (b *BaseChain) AddCommand(command Command) Chain {
	b.commands = append(b.commands, command)
	return b
}

// IsExecutable for a chain only requires a non-nil context; individual
// commands perform their own input checks.
func (b *BaseChain) IsExecutable(context Context) bool {
	return context != nil
}

// Execute runs the chain's commands in order against the shared context.
func (b *BaseChain) Execute(context Context) {
	for _, command := range b.commands {
		if !command.IsExecutable(context) {
			context.AddError(command.GetName(), fmt.Errorf("command precondition failed: %s", command.GetName()))
			command.GetErrorCounter().Add(context.GetContext(), 1)
			if !b.continueOnFailure {
				break
			}
			continue
		}

		// Each command runs inside its own child span so a single request
		// trace shows the time spent in every pipeline step.
		ctx, span := command.GetTracer().Start(context.GetContext(), command.GetName())
		context.SetContext(ctx)
		command.Execute(context)
		span.End()

		if context.HasErrors() && !b.continueOnFailure {
			slog.Warn("stopping chain on command failure", "chain", b.GetName(), "command", command.GetName())
			break
		}

		// Flip the output of this command to the input of the next one.
		if out := context.Get(CtxOut); out != nil {
			context.Add(CtxIn, out)
			context.Remove(CtxOut)
		}
	}
}
