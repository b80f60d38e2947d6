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

// Package commands contains the pipeline steps that turn a raw camera pose
// into a cinematography prompt and a structured camera record. Each command
// is a small, single-purpose unit composed into a chain by the workflow
// package.
package commands

import (
	"fmt"
	"math"

	"github.com/cinelens/camera-prompt-service/internal/config"
	"github.com/cinelens/camera-prompt-service/internal/core/cor"
	"github.com/cinelens/camera-prompt-service/internal/core/model"
)

// geometryEpsilon is the scene-unit threshold below which an offset
// component is treated as zero.
const geometryEpsilon = 1e-3

// CameraGeometry is the first pipeline step. It derives the full camera
// parameter set from the raw pose: clamped focal length, field of view,
// physical distance, and the pan/tilt angles of the camera relative to its
// target. All numeric inputs are clamped into their valid ranges; the
// command never rejects a pose.
//
// Inputs:
//   - *model.PromptRequest from the chain input.
//
// Outputs:
//   - *model.CameraParameters on the chain output.
type CameraGeometry struct {
	cor.BaseCommand
	defaultFocalLengthMM float64
	sceneUnitMeters      float64
}

// NewCameraGeometry creates the geometry command using the camera defaults
// from config.
func NewCameraGeometry(name string, cfg *config.Config) *CameraGeometry {
	return &CameraGeometry{
		BaseCommand:          cor.BaseCommand{Name: name},
		defaultFocalLengthMM: cfg.Camera.DefaultFocalLengthMM,
		sceneUnitMeters:      cfg.Camera.SceneUnitMeters,
	}
}

func (c *CameraGeometry) Execute(context cor.Context) {
	request, ok := context.Get(c.GetInputParam()).(*model.PromptRequest)
	if !ok || request == nil {
		context.AddError(c.GetName(), fmt.Errorf("input is not a prompt request"))
		c.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}

	focal := c.defaultFocalLengthMM
	if request.FocalLengthMM != nil {
		focal = *request.FocalLengthMM
	}
	focal = model.Clamp(focal, model.MinFocalLengthMM, model.MaxFocalLengthMM)

	var objectScale *float64
	if request.ObjectScaleM != nil {
		clamped := model.Clamp(*request.ObjectScaleM, model.MinObjectScaleM, model.MaxObjectScaleM)
		objectScale = &clamped
	}

	offset := request.Camera.Position.Sub(request.Camera.Target)
	pan, tilt := panTiltAngles(offset)

	params := &model.CameraParameters{
		FocalLengthMM:  focal,
		SensorWidthMM:  model.SensorWidthMM,
		SensorHeightMM: model.SensorHeightMM,
		DistanceM:      offset.Length() * c.sceneUnitMeters,
		FOVDeg:         fieldOfViewDeg(focal),
		PanDeg:         pan,
		TiltDeg:        tilt,
		RollDeg:        request.Camera.RollDeg,
		ObjectScaleM:   objectScale,
		Offset:         offset,
		Description:    request.Description,
	}

	context.Add(c.GetOutputParam(), params)
	context.Add(cor.CtxOut, params)
	c.GetSuccessCounter().Add(context.GetContext(), 1)
}

// fieldOfViewDeg computes the horizontal field of view in degrees for the
// given focal length against the fixed 36mm sensor width.
func fieldOfViewDeg(focalMM float64) float64 {
	return 2 * math.Atan(model.SensorWidthMM/(2*focalMM)) * 180 / math.Pi
}

// panTiltAngles derives the camera's bearing around and elevation above the
// target from the position offset. Positive pan places the camera to the
// subject's right; positive tilt places it above the subject, looking down.
// A degenerate offset (camera at the target) yields level angles rather
// than an arbitrary direction.
func panTiltAngles(offset model.Vector3) (panDeg, tiltDeg float64) {
	horizontal := math.Hypot(offset.X, offset.Z)
	if horizontal > geometryEpsilon {
		panDeg = math.Atan2(offset.X, offset.Z) * 180 / math.Pi
		tiltDeg = math.Atan2(offset.Y, horizontal) * 180 / math.Pi
		return panDeg, tiltDeg
	}
	// Directly above or below the target there is no meaningful bearing.
	if offset.Y > geometryEpsilon {
		return 0, 90
	}
	if offset.Y < -geometryEpsilon {
		return 0, -90
	}
	return 0, 0
}
