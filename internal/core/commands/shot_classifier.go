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
	"fmt"

	"github.com/cinelens/camera-prompt-service/internal/core/cor"
	"github.com/cinelens/camera-prompt-service/internal/core/model"
)

// ShotClassifier assigns one of the eight shot types to the camera
// parameters. Classification runs in priority order:
//
//  1. Framing ratio — when the caller supplied a physical object scale, the
//     subject's projected share of the frame height decides the shot,
//     regardless of distance. A tight close-up of a small object at short
//     range and a wide establishing shot of a building at the same range
//     are different shots; only framing tells them apart.
//  2. Distance table — the ordered distance bands, first match wins, which
//     resolves the overlapping bands toward the tighter shot.
//  3. Out-of-range distances are clamped into the table's [0.3, 50] m span
//     and re-matched, so the nearest band applies and the classifier always
//     produces a label.
type ShotClassifier struct {
	cor.BaseCommand
}

func NewShotClassifier(name string) *ShotClassifier {
	return &ShotClassifier{BaseCommand: cor.BaseCommand{Name: name}}
}

func (c *ShotClassifier) Execute(context cor.Context) {
	params, ok := context.Get(c.GetInputParam()).(*model.CameraParameters)
	if !ok {
		context.AddError(c.GetName(), fmt.Errorf("input is not camera parameters"))
		c.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}

	shot, ok := classifyByFraming(params)
	if !ok {
		shot = classifyByDistance(params.DistanceM)
	}
	params.ShotType = shot

	context.Add(cor.CtxOut, params)
	c.GetSuccessCounter().Add(context.GetContext(), 1)
}

// classifyByFraming derives the shot from the subject's vertical frame
// coverage: projectedSize = focal * (scale / distance), expressed as a
// percentage of the 24mm sensor height. Returns false when no object scale
// was provided or the geometry is degenerate.
func classifyByFraming(params *model.CameraParameters) (model.ShotType, bool) {
	if params.ObjectScaleM == nil || params.DistanceM <= 0 || params.FocalLengthMM <= 0 {
		return "", false
	}
	projectedMM := params.FocalLengthMM * (*params.ObjectScaleM / params.DistanceM)
	percent := 100 * projectedMM / params.SensorHeightMM

	for _, band := range model.FramingBands {
		if band.OpenEnded {
			if percent >= band.MinPercent {
				return band.Shot, true
			}
			continue
		}
		if percent >= band.MinPercent && percent < band.MaxPercent {
			return band.Shot, true
		}
	}
	return "", false
}

// classifyByDistance matches the camera distance against the ordered shot
// table. Distances outside the table are clamped to its bounds first, so a
// 0.1 m macro pose classifies as the closest band and a 200 m aerial as the
// widest.
func classifyByDistance(distanceM float64) model.ShotType {
	d := model.Clamp(distanceM, model.MinShotTableDistanceM, model.MaxShotTableDistanceM)
	for _, r := range model.ShotRanges {
		if d >= r.MinDistanceM && d <= r.MaxDistanceM {
			return r.Shot
		}
	}
	return model.ShotExtremeWideShot
}
