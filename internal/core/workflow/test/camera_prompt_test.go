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

package workflow_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinelens/camera-prompt-service/internal/core/cor"
	"github.com/cinelens/camera-prompt-service/internal/core/model"
	"github.com/cinelens/camera-prompt-service/internal/core/workflow"
	test "github.com/cinelens/camera-prompt-service/internal/testutil"
)

// runWorkflow executes the full pipeline for a request and returns the
// prompt sentence and the raw camera record JSON.
func runWorkflow(t *testing.T, request *model.PromptRequest) (prompt string, recordText string) {
	w := workflow.NewCameraPromptWorkflow(config, nil)

	spanCtx, span := tracer.Start(ctx, t.Name())
	defer span.End()

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(spanCtx)
	chainCtx.Add(cor.CtxIn, request)

	assert.True(t, w.IsExecutable(chainCtx))
	w.Execute(chainCtx)
	assert.False(t, chainCtx.HasErrors(), "workflow errors: %v", chainCtx.GetErrors())

	prompt, ok := chainCtx.Get(workflow.PromptOutputParamName).(string)
	assert.True(t, ok, "missing prompt output")
	recordText, ok = chainCtx.Get(workflow.RecordOutputParamName).(string)
	assert.True(t, ok, "missing record output")
	return prompt, recordText
}

// unmarshalRecord parses the record JSON emitted by the workflow.
func unmarshalRecord(t *testing.T, recordText string) model.CameraRecord {
	var envelope model.CameraRecordEnvelope
	test.HandleErr(json.Unmarshal([]byte(recordText), &envelope), t)
	return envelope.Camera
}

// TestWorkflowFrontalPose runs the canonical frontal pose end to end: a
// 40 m eye-level extreme wide shot with no movement phrases, and a record
// whose tilt and pan read as zero.
func TestWorkflowFrontalPose(t *testing.T) {
	prompt, recordText := runWorkflow(t, test.GetFrontalPoseRequest())

	assert.Equal(t, "extreme wide shot (camera distance 40.0 m 50mm FOV 39°)", prompt)

	record := unmarshalRecord(t, recordText)
	assert.Equal(t, 50, record.FocalLengthMM)
	assert.Equal(t, 36, record.SensorWidthMM)
	assert.Equal(t, 24, record.SensorHeightMM)
	assert.Equal(t, 40.0, record.DistanceM)
	assert.Equal(t, "tilt 0.0", record.TiltDeg)
	assert.Equal(t, "pan 0.0", record.PanDeg)
	assert.Equal(t, 0.0, record.RollDeg)
	assert.Equal(t, "extreme_wide_shot", record.ShotType)
}

// TestWorkflowIdempotence verifies the same pose always produces
// byte-identical outputs. There is no per-run state in the pipeline.
func TestWorkflowIdempotence(t *testing.T) {
	prompt1, record1 := runWorkflow(t, test.GetFrontalPoseRequest())
	prompt2, record2 := runWorkflow(t, test.GetFrontalPoseRequest())

	assert.Equal(t, prompt1, prompt2)
	assert.Equal(t, record1, record2)
}

// TestWorkflowDutchLowPose verifies the combined roll-and-upward-tilt pose
// classifies as a dutch low angle and the record carries the directional
// tilt phrase.
func TestWorkflowDutchLowPose(t *testing.T) {
	prompt, recordText := runWorkflow(t, test.GetDutchLowPoseRequest())

	assert.Contains(t, prompt, "dutch low angle")
	assert.Contains(t, prompt, "tilt up at")

	record := unmarshalRecord(t, recordText)
	assert.Equal(t, "tilt up 30.0", record.TiltDeg)
	assert.Equal(t, 20.0, record.RollDeg)
}

// TestWorkflowFramingOverride runs the raw host payload: the 1.8 m subject
// dominates the frame at 2.7 m, so framing overrides the distance table and
// the pose classifies as an extreme close-up. The description must survive
// verbatim at the end of the prompt.
func TestWorkflowFramingOverride(t *testing.T) {
	var request model.PromptRequest
	test.HandleErr(json.Unmarshal([]byte(test.GetTestCameraRequestJSON()), &request), t)

	prompt, recordText := runWorkflow(t, &request)

	record := unmarshalRecord(t, recordText)
	assert.Equal(t, "extreme_close_up", record.ShotType)
	assert.Equal(t, 2.7, record.DistanceM)

	assert.Contains(t, prompt, "extreme close-up")
	assert.Contains(t, prompt, "a lone astronaut walking through a desert canyon")
}

// TestWorkflowStopsOnBadInput verifies the chain halts at the first failed
// command: an input that is not a prompt request produces an error and no
// outputs.
func TestWorkflowStopsOnBadInput(t *testing.T) {
	w := workflow.NewCameraPromptWorkflow(config, nil)

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(ctx)
	chainCtx.Add(cor.CtxIn, "not a camera pose")

	w.Execute(chainCtx)

	assert.True(t, chainCtx.HasErrors())
	assert.Nil(t, chainCtx.Get(workflow.PromptOutputParamName))
	assert.Nil(t, chainCtx.Get(workflow.RecordOutputParamName))
}
