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

// Package workflow composes the pipeline commands into executable chains.
// A workflow is itself a command, so it can run standalone or nest inside a
// larger chain.
package workflow

import (
	"log/slog"
	"text/template"

	"github.com/cinelens/camera-prompt-service/internal/config"
	"github.com/cinelens/camera-prompt-service/internal/core/commands"
	"github.com/cinelens/camera-prompt-service/internal/core/cor"
	"github.com/cinelens/camera-prompt-service/internal/gemini"
)

// Context parameter names for the workflow's outputs. Callers read these
// keys after Execute returns.
const (
	PromptOutputParamName = "__prompt_output__"
	RecordOutputParamName = "__record_output__"
)

// CameraPromptWorkflow turns a camera pose request into a cinematography
// prompt and a structured camera record.
//
// Logic Flow:
//  1. camera-geometry: clamp inputs and derive distance, FOV, pan and tilt.
//  2. classify-shot: framing/distance shot classification.
//  3. classify-angle: tilt/roll angle classification.
//  4. render-prompt: assemble the prompt sentence.
//  5. render-record: marshal the JSON camera record.
//  6. stylize-prompt (optional): rewrite the sentence with a Gemini model
//     when a stylist is configured. Without a stylist the workflow performs
//     no I/O and is fully deterministic.
type CameraPromptWorkflow struct {
	cor.BaseCommand
	config  *config.Config
	stylist *gemini.QuotaAwareGenerativeAIModel
	chain   cor.Chain
}

// NewCameraPromptWorkflow creates the workflow. stylist may be nil, which
// leaves the pipeline offline.
func NewCameraPromptWorkflow(cfg *config.Config, stylist *gemini.QuotaAwareGenerativeAIModel) *CameraPromptWorkflow {
	w := &CameraPromptWorkflow{
		BaseCommand: cor.BaseCommand{Name: "camera-prompt-workflow"},
		config:      cfg,
		stylist:     stylist,
	}
	w.initializeChain()
	return w
}

func (w *CameraPromptWorkflow) initializeChain() {
	chain := &cor.BaseChain{BaseCommand: cor.BaseCommand{Name: w.GetName() + "-chain"}}
	chain.AddCommand(commands.NewCameraGeometry("camera-geometry", w.config))
	chain.AddCommand(commands.NewShotClassifier("classify-shot"))
	chain.AddCommand(commands.NewAngleClassifier("classify-angle"))
	chain.AddCommand(commands.NewPromptRenderer("render-prompt", PromptOutputParamName))
	chain.AddCommand(commands.NewRecordRenderer("render-record", RecordOutputParamName))

	if w.stylist != nil {
		tmpl, err := template.New("stylist").Parse(w.config.PromptTemplates.Stylist)
		if err != nil {
			slog.Error("failed to parse stylist template, styling disabled", "error", err)
		} else {
			chain.AddCommand(commands.NewPromptStylist("stylize-prompt", w.stylist, tmpl, PromptOutputParamName))
		}
	}
	w.chain = chain
}

// IsExecutable requires the initial request on the chain input.
func (w *CameraPromptWorkflow) IsExecutable(context cor.Context) bool {
	return context != nil && context.Get(cor.CtxIn) != nil
}

// Execute runs the underlying chain against the given context.
func (w *CameraPromptWorkflow) Execute(context cor.Context) {
	w.chain.Execute(context)
}
