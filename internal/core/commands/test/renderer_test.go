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

package commands_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinelens/camera-prompt-service/internal/core/commands"
	"github.com/cinelens/camera-prompt-service/internal/core/cor"
	"github.com/cinelens/camera-prompt-service/internal/core/model"
)

const (
	promptParam = "__prompt_output__"
	recordParam = "__record_output__"
)

// classifiedParams returns fully classified camera parameters for a frontal
// extreme wide shot: the default lens ten grid units from the subject.
func classifiedParams() *model.CameraParameters {
	return &model.CameraParameters{
		FocalLengthMM:  50,
		SensorWidthMM:  model.SensorWidthMM,
		SensorHeightMM: model.SensorHeightMM,
		DistanceM:      40,
		FOVDeg:         39.597,
		Offset:         model.Vector3{X: 0, Y: 0, Z: 10},
		ShotType:       model.ShotExtremeWideShot,
		Angle:          model.AngleEyeLevel,
	}
}

// renderPrompt runs the prompt renderer and returns the sentence.
func renderPrompt(t *testing.T, params *model.CameraParameters) string {
	cmd := commands.NewPromptRenderer("render-prompt", promptParam)
	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())
	chainCtx.Add(cor.CtxIn, params)
	cmd.Execute(chainCtx)
	assert.False(t, chainCtx.HasErrors())

	prompt, ok := chainCtx.Get(promptParam).(string)
	assert.True(t, ok)
	return prompt
}

// TestPromptRendererFrontalPose pins the exact sentence for the canonical
// frontal pose: no movement phrases, no angle label, just the shot and the
// technical suffix.
func TestPromptRendererFrontalPose(t *testing.T) {
	prompt := renderPrompt(t, classifiedParams())
	assert.Equal(t, "extreme wide shot (camera distance 40.0 m 50mm FOV 39°)", prompt)
}

// TestPromptRendererPanAndTilt verifies the movement phrases and angle
// label compose into a single sentence.
func TestPromptRendererPanAndTilt(t *testing.T) {
	params := &model.CameraParameters{
		FocalLengthMM:  50,
		SensorWidthMM:  model.SensorWidthMM,
		SensorHeightMM: model.SensorHeightMM,
		DistanceM:      2.5,
		FOVDeg:         39.597,
		PanDeg:         45,
		TiltDeg:        30,
		Offset:         model.Vector3{X: 0.44, Y: 0.26, Z: 0.44},
		ShotType:       model.ShotMediumShot,
		Angle:          model.AngleHigh,
	}
	prompt := renderPrompt(t, params)
	assert.Equal(t,
		"Pan the camera 45 degrees to the right and tilt down at 30 degree, high angle medium shot (camera distance 2.5 m 50mm FOV 39°)",
		prompt)
}

// TestPromptRendererLeftAndBehind covers the remaining orbital wordings.
func TestPromptRendererLeftAndBehind(t *testing.T) {
	params := classifiedParams()
	params.Offset = model.Vector3{X: -1, Y: 0, Z: 1}
	assert.Contains(t, renderPrompt(t, params), "Pan the camera 45 degrees to the left")

	params = classifiedParams()
	params.Offset = model.Vector3{X: 0, Y: 0, Z: -1}
	assert.Contains(t, renderPrompt(t, params), "looking from behind")

	params = classifiedParams()
	params.Offset = model.Vector3{X: 1, Y: 0, Z: -1}
	assert.Contains(t, renderPrompt(t, params), "right-back side")

	params = classifiedParams()
	params.Offset = model.Vector3{X: -1, Y: 0, Z: -1}
	assert.Contains(t, renderPrompt(t, params), "left-back side")
}

// TestPromptRendererDescriptionVerbatim verifies the free-text description
// lands at the end of the prompt unchanged.
func TestPromptRendererDescriptionVerbatim(t *testing.T) {
	params := classifiedParams()
	params.Description = "a lone astronaut walking through a desert canyon"
	prompt := renderPrompt(t, params)
	assert.Equal(t,
		"extreme wide shot (camera distance 40.0 m 50mm FOV 39°) a lone astronaut walking through a desert canyon",
		prompt)
}

// TestRecordRendererShape unmarshals the rendered record and checks the
// full field set, including the fixed sensor constants and the directional
// phrase encodings.
func TestRecordRendererShape(t *testing.T) {
	params := classifiedParams()
	params.TiltDeg = -29.98
	params.PanDeg = 45
	params.RollDeg = 20.04

	cmd := commands.NewRecordRenderer("render-record", recordParam)
	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())
	chainCtx.Add(cor.CtxIn, params)
	cmd.Execute(chainCtx)
	assert.False(t, chainCtx.HasErrors())

	recordText, ok := chainCtx.Get(recordParam).(string)
	assert.True(t, ok)

	var envelope model.CameraRecordEnvelope
	assert.NoError(t, json.Unmarshal([]byte(recordText), &envelope))

	record := envelope.Camera
	assert.Equal(t, 50, record.FocalLengthMM)
	assert.Equal(t, 36, record.SensorWidthMM)
	assert.Equal(t, 24, record.SensorHeightMM)
	assert.Equal(t, 40.0, record.DistanceM)
	assert.Equal(t, "tilt up 30.0", record.TiltDeg)
	assert.Equal(t, "pan to right 45.0", record.PanDeg)
	assert.Equal(t, 20.0, record.RollDeg)
	assert.Equal(t, "extreme_wide_shot", record.ShotType)
}

// TestRecordRendererIndentation verifies the record keeps its 4-space
// indented layout, which hosts parse as a fenced block.
func TestRecordRendererIndentation(t *testing.T) {
	cmd := commands.NewRecordRenderer("render-record", recordParam)
	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())
	chainCtx.Add(cor.CtxIn, classifiedParams())
	cmd.Execute(chainCtx)

	recordText := chainCtx.Get(recordParam).(string)
	assert.Contains(t, recordText, "{\n    \"camera\": {\n        \"focal_length_mm\"")
}
