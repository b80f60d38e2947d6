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

package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/cinelens/camera-prompt-service/internal/config"
)

// StylistModelName is the agent_models config key for the prompt stylist.
const StylistModelName = "stylist"

// DefaultSafetySettings returns a permissive safety configuration. Camera
// direction prompts are mechanical descriptions of lens and position, so
// content blocking only introduces spurious failures.
func DefaultSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
	}
}

// NewStylist creates the quota-aware model used by the stylize-prompt
// command, from the "stylist" entry in the agent_models config table.
func NewStylist(ctx context.Context, cfg *config.Config) (*QuotaAwareGenerativeAIModel, error) {
	modelCfg, ok := cfg.AgentModels[StylistModelName]
	if !ok {
		return nil, fmt.Errorf("agent model %q is not configured", StylistModelName)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  cfg.Application.GoogleProjectID,
		Location: cfg.Application.GoogleLocation,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, err
	}

	outputFormat := modelCfg.OutputFormat
	if outputFormat == "" {
		outputFormat = "text/plain"
	}

	generateConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](modelCfg.Temperature),
		TopP:             genai.Ptr[float32](modelCfg.TopP),
		TopK:             genai.Ptr[float32](modelCfg.TopK),
		MaxOutputTokens:  modelCfg.MaxTokens,
		ResponseMIMEType: outputFormat,
		SafetySettings:   DefaultSafetySettings(),
	}
	if modelCfg.SystemInstructions != "" {
		generateConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: modelCfg.SystemInstructions}},
		}
	}

	return NewQuotaAwareModel(generateConfig, modelCfg.Model, client.Models, modelCfg.RateLimit), nil
}
