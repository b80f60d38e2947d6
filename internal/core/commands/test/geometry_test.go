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

// Package commands_test contains unit tests for the individual pipeline
// commands. Each test drives a single command through a fresh chain context,
// mirroring how the workflow executes it.
package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinelens/camera-prompt-service/internal/core/commands"
	"github.com/cinelens/camera-prompt-service/internal/core/cor"
	"github.com/cinelens/camera-prompt-service/internal/core/model"
	test "github.com/cinelens/camera-prompt-service/internal/testutil"
)

// runGeometry executes the geometry command against a request and returns
// the derived camera parameters.
func runGeometry(t *testing.T, request *model.PromptRequest) *model.CameraParameters {
	cmd := commands.NewCameraGeometry("camera-geometry", test.GetConfig())
	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())
	chainCtx.Add(cor.CtxIn, request)

	assert.True(t, cmd.IsExecutable(chainCtx))
	cmd.Execute(chainCtx)
	assert.False(t, chainCtx.HasErrors())

	params, ok := chainCtx.Get(cor.CtxOut).(*model.CameraParameters)
	assert.True(t, ok)
	return params
}

// TestGeometryFrontalPose checks the canonical pose: ten grid units in
// front of the subject at eye level with the default 50mm lens.
func TestGeometryFrontalPose(t *testing.T) {
	params := runGeometry(t, test.GetFrontalPoseRequest())

	assert.Equal(t, 50.0, params.FocalLengthMM)
	assert.Equal(t, 40.0, params.DistanceM)
	assert.InDelta(t, 39.6, params.FOVDeg, 0.05)
	assert.Equal(t, 0.0, params.PanDeg)
	assert.Equal(t, 0.0, params.TiltDeg)
}

// TestGeometryFocalLengthClamping verifies out-of-range focal lengths are
// clamped rather than rejected.
func TestGeometryFocalLengthClamping(t *testing.T) {
	request := test.GetFrontalPoseRequest()
	request.FocalLengthMM = test.Float64Ptr(0.2)
	params := runGeometry(t, request)
	assert.Equal(t, 1.0, params.FocalLengthMM)

	request.FocalLengthMM = test.Float64Ptr(5000)
	params = runGeometry(t, request)
	assert.Equal(t, 1000.0, params.FocalLengthMM)
}

// TestGeometryFOVMonotonicity verifies longer lenses always produce a
// narrower field of view.
func TestGeometryFOVMonotonicity(t *testing.T) {
	focals := []float64{16, 24, 35, 50, 85, 135}
	previous := 181.0
	for _, focal := range focals {
		request := test.GetFrontalPoseRequest()
		request.FocalLengthMM = test.Float64Ptr(focal)
		params := runGeometry(t, request)
		assert.Less(t, params.FOVDeg, previous, "FOV must shrink as focal length grows (%.0fmm)", focal)
		previous = params.FOVDeg
	}
}

// TestGeometryDistanceScaling verifies distance scales linearly with the
// camera offset at 4 meters per grid unit.
func TestGeometryDistanceScaling(t *testing.T) {
	request := test.GetFrontalPoseRequest()
	request.Camera.Position = model.Vector3{X: 0, Y: 0, Z: 2.5}
	params := runGeometry(t, request)
	assert.Equal(t, 10.0, params.DistanceM)

	request.Camera.Position = model.Vector3{X: 0, Y: 0, Z: 5}
	params = runGeometry(t, request)
	assert.Equal(t, 20.0, params.DistanceM)
}

// TestGeometryDegeneratePose verifies a camera sitting on its own target
// yields level angles instead of an arbitrary direction.
func TestGeometryDegeneratePose(t *testing.T) {
	request := &model.PromptRequest{
		Camera: model.CameraInput{
			Position: model.Vector3{X: 1, Y: 2, Z: 3},
			Target:   model.Vector3{X: 1, Y: 2, Z: 3},
		},
	}
	params := runGeometry(t, request)
	assert.Equal(t, 0.0, params.DistanceM)
	assert.Equal(t, 0.0, params.PanDeg)
	assert.Equal(t, 0.0, params.TiltDeg)
}

// TestGeometryOverheadPose verifies a camera directly above the target
// reports a straight-down tilt with no bearing.
func TestGeometryOverheadPose(t *testing.T) {
	request := &model.PromptRequest{
		Camera: model.CameraInput{
			Position: model.Vector3{X: 0, Y: 2, Z: 0},
			Target:   model.Vector3{X: 0, Y: 0, Z: 0},
		},
	}
	params := runGeometry(t, request)
	assert.Equal(t, 90.0, params.TiltDeg)
	assert.Equal(t, 0.0, params.PanDeg)
	assert.Equal(t, 8.0, params.DistanceM)
}

// TestGeometryPanSign verifies the sign convention: a camera to the
// subject's right produces a positive pan.
func TestGeometryPanSign(t *testing.T) {
	request := &model.PromptRequest{
		Camera: model.CameraInput{
			Position: model.Vector3{X: 1, Y: 0, Z: 1},
			Target:   model.Vector3{X: 0, Y: 0, Z: 0},
		},
	}
	params := runGeometry(t, request)
	assert.InDelta(t, 45.0, params.PanDeg, 0.001)

	request.Camera.Position = model.Vector3{X: -1, Y: 0, Z: 1}
	params = runGeometry(t, request)
	assert.InDelta(t, -45.0, params.PanDeg, 0.001)
}

// TestGeometryObjectScaleClamping verifies object scale clamps to its
// physical range and nil means not provided.
func TestGeometryObjectScaleClamping(t *testing.T) {
	request := test.GetFrontalPoseRequest()
	params := runGeometry(t, request)
	assert.Nil(t, params.ObjectScaleM)

	request.ObjectScaleM = test.Float64Ptr(1000)
	params = runGeometry(t, request)
	assert.Equal(t, 100.0, *params.ObjectScaleM)

	request.ObjectScaleM = test.Float64Ptr(0.0001)
	params = runGeometry(t, request)
	assert.Equal(t, 0.01, *params.ObjectScaleM)
}
