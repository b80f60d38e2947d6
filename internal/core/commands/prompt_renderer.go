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
	"strings"

	"github.com/cinelens/camera-prompt-service/internal/core/cor"
	"github.com/cinelens/camera-prompt-service/internal/core/model"
)

// PromptRenderer assembles the natural-language cinematography sentence from
// the classified camera parameters, e.g.
//
//	"Pan the camera 45 degrees to the right, high angle medium shot
//	 (camera distance 2.5 m 50mm FOV 40°)"
//
// The sentence has up to four sections: camera movement phrases (orbital
// position and tilt, joined with " and "), the angle label when the frame
// is not eye level, the shot label with a parenthetical technical suffix,
// and the caller's free-text description appended verbatim. The rendered
// sentence is stored under the command's output parameter; the camera
// parameters continue down the chain unchanged.
type PromptRenderer struct {
	cor.BaseCommand
}

func NewPromptRenderer(name string, outputParamName string) *PromptRenderer {
	return &PromptRenderer{BaseCommand: cor.BaseCommand{
		Name:            name,
		OutputParamName: outputParamName,
	}}
}

func (c *PromptRenderer) Execute(context cor.Context) {
	params, ok := context.Get(c.GetInputParam()).(*model.CameraParameters)
	if !ok {
		context.AddError(c.GetName(), fmt.Errorf("input is not camera parameters"))
		c.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}

	var movement []string
	if pos := positionPhrase(params.Offset); pos != "" {
		movement = append(movement, pos)
	}
	if phrase := tiltSentencePhrase(params.TiltDeg); phrase != "" {
		movement = append(movement, phrase)
	}

	var angleShot []string
	if params.Angle != model.AngleEyeLevel {
		angleShot = append(angleShot, string(params.Angle))
	}
	angleShot = append(angleShot, string(params.ShotType))

	base := strings.Join(angleShot, " ")
	if len(movement) > 0 {
		base = strings.Join(movement, " and ") + ", " + base
	}

	suffix := fmt.Sprintf("(camera distance %.1f m %dmm FOV %d°)",
		params.DistanceM, int(params.FocalLengthMM), int(params.FOVDeg))

	prompt := base + " " + suffix
	if desc := strings.TrimSpace(params.Description); desc != "" {
		prompt = prompt + " " + desc
	}

	context.Add(c.GetOutputParam(), prompt)
	context.Add(cor.CtxOut, params)
	c.GetSuccessCounter().Add(context.GetContext(), 1)
}

// tiltSentencePhrase renders the tilt movement phrase, empty inside the
// eye-level tolerance.
func tiltSentencePhrase(tiltDeg float64) string {
	if math.Abs(tiltDeg) <= model.EyeLevelToleranceDeg {
		return ""
	}
	deg := int(math.Abs(tiltDeg))
	if tiltDeg > 0 {
		return fmt.Sprintf("tilt down at %d degree", deg)
	}
	return fmt.Sprintf("tilt up at %d degree", deg)
}

// positionPhrase describes where the camera orbits around the subject, from
// the horizontal bearing of the camera offset (0° directly in front,
// increasing clockwise when seen from above). A camera directly in front
// produces no phrase; positions behind the subject get "-back side" or
// "looking from behind" wording; positions directly over or under the
// subject are called out explicitly.
func positionPhrase(offset model.Vector3) string {
	horizontal := math.Hypot(offset.X, offset.Z)
	if horizontal < geometryEpsilon {
		switch {
		case offset.Y > geometryEpsilon:
			return "above object"
		case offset.Y < -geometryEpsilon:
			return "below object"
		}
		return ""
	}

	bearing := math.Atan2(offset.X, offset.Z) * 180 / math.Pi
	if bearing < 0 {
		bearing += 360
	}
	deg := int(bearing)

	behind := offset.Z < -0.1
	centered := math.Abs(offset.X) < 0.1

	switch {
	case centered && !behind:
		if offset.Z > 0.1 {
			return "" // head-on, nothing to say
		}
		return "looking from behind"
	case centered && behind:
		return "looking from behind"
	case !behind && (deg < 2 || deg > 358):
		return ""
	case behind && deg >= 90 && deg <= 180:
		return fmt.Sprintf("Pan the camera %d degrees to the right-back side", deg)
	case behind && deg > 180 && deg <= 270:
		return fmt.Sprintf("Pan the camera %d degrees to the left-back side", deg)
	case behind:
		return fmt.Sprintf("looking from behind at %d degree", deg)
	case offset.X > 0:
		return fmt.Sprintf("Pan the camera %d degrees to the right", deg)
	default:
		left := deg
		if deg > 180 {
			left = 360 - deg
		}
		return fmt.Sprintf("Pan the camera %d degrees to the left", left)
	}
}
