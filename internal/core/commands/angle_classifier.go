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
	"math"

	"github.com/cinelens/camera-prompt-service/internal/core/cor"
	"github.com/cinelens/camera-prompt-service/internal/core/model"
)

// AngleClassifier assigns exactly one of the nine camera angle labels from
// the tilt and roll angles. Roll-based labels take priority over tilt-based
// ones: a canted frame reads as a dutch angle whatever the elevation, and a
// canted frame looking up gets the combined dutch low label. Tilt-based
// labels then split by direction — the graded low-angle bands when the
// camera looks up, bird's eye or high angle when it looks down, eye level
// inside the +/-5 degree tolerance.
type AngleClassifier struct {
	cor.BaseCommand
}

func NewAngleClassifier(name string) *AngleClassifier {
	return &AngleClassifier{BaseCommand: cor.BaseCommand{Name: name}}
}

func (c *AngleClassifier) Execute(context cor.Context) {
	params, ok := context.Get(c.GetInputParam()).(*model.CameraParameters)
	if !ok {
		context.AddError(c.GetName(), fmt.Errorf("input is not camera parameters"))
		c.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}

	params.Angle = classifyAngle(params.TiltDeg, params.RollDeg)

	context.Add(cor.CtxOut, params)
	c.GetSuccessCounter().Add(context.GetContext(), 1)
}

// classifyAngle maps tilt and roll to an angle label. Positive tilt means
// the camera looks down at the subject; "up" below is the inverted tilt,
// the camera looking up from below.
func classifyAngle(tiltDeg, rollDeg float64) model.CameraAngle {
	up := -tiltDeg
	absRoll := math.Abs(rollDeg)

	if absRoll >= model.DutchLowRollMinDeg && absRoll <= model.DutchLowRollMaxDeg && up > model.EyeLevelToleranceDeg {
		return model.AngleDutchLow
	}
	if absRoll >= model.DutchRollMinDeg {
		return model.AngleDutch
	}

	if math.Abs(tiltDeg) <= model.EyeLevelToleranceDeg {
		return model.AngleEyeLevel
	}

	if up > model.EyeLevelToleranceDeg {
		for _, band := range model.LowAngleBands {
			if up > band.MinUpDeg && up <= band.MaxUpDeg {
				return band.Angle
			}
		}
		return model.AngleExtremeLow
	}

	// Camera above the subject, looking down.
	if tiltDeg >= model.BirdsEyeTiltMinDeg {
		return model.AngleBirdsEye
	}
	return model.AngleHigh
}
