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

package commands

import (
	"bytes"
	"fmt"
	"text/template"

	"go.opentelemetry.io/otel/metric"

	"github.com/cinelens/camera-prompt-service/internal/core/cor"
	"github.com/cinelens/camera-prompt-service/internal/gemini"
)

// PromptStylist is an optional, config-gated pipeline step that passes the
// assembled prompt sentence through a Gemini model to elaborate the
// phrasing for downstream video generation. It reads the rendered prompt
// from its input parameter and overwrites the same parameter with the
// styled text, so the rest of the system is indifferent to whether styling
// ran. On a model failure the command records the error and the original
// prompt survives untouched.
type PromptStylist struct {
	cor.BaseCommand
	model              *gemini.QuotaAwareGenerativeAIModel
	template           *template.Template
	inputTokenCounter  metric.Int64Counter
	outputTokenCounter metric.Int64Counter
}

// NewPromptStylist creates the stylist command. promptParamName is both the
// input and output key so the styled text replaces the draft in place.
func NewPromptStylist(
	name string,
	model *gemini.QuotaAwareGenerativeAIModel,
	promptTemplate *template.Template,
	promptParamName string,
) *PromptStylist {
	cmd := &PromptStylist{
		BaseCommand: cor.BaseCommand{
			Name:            name,
			InputParamName:  promptParamName,
			OutputParamName: promptParamName,
		},
		model:    model,
		template: promptTemplate,
	}
	cmd.inputTokenCounter, _ = cmd.GetMeter().Int64Counter(fmt.Sprintf("%s_input_tokens", name))
	cmd.outputTokenCounter, _ = cmd.GetMeter().Int64Counter(fmt.Sprintf("%s_output_tokens", name))
	return cmd
}

func (c *PromptStylist) Execute(context cor.Context) {
	draft, ok := context.Get(c.GetInputParam()).(string)
	if !ok {
		context.AddError(c.GetName(), fmt.Errorf("input is not a rendered prompt"))
		c.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}

	var buffer bytes.Buffer
	if err := c.template.Execute(&buffer, map[string]string{"BASE_PROMPT": draft}); err != nil {
		context.AddError(c.GetName(), err)
		c.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}

	styled, err := gemini.GenerateTextResponse(
		context.GetContext(), c.inputTokenCounter, c.outputTokenCounter, c.model, buffer.String())
	if err != nil {
		context.AddError(c.GetName(), err)
		c.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}

	context.Add(c.GetOutputParam(), styled)
	context.Add(cor.CtxOut, styled)
	c.GetSuccessCounter().Add(context.GetContext(), 1)
}
