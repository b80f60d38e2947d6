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

// Package model defines the data structures for the camera prompt service:
// the inbound camera pose, the derived camera parameters, the closed
// cinematography vocabularies (shot types and camera angles), and the
// structured record emitted alongside every prompt.
package model

import "strings"

// ShotType is the closed vocabulary of cinematography shot sizes. Values are
// the human-readable labels used in prompt sentences; Slug converts them to
// the snake_case form used in the JSON record.
type ShotType string

const (
	ShotExtremeCloseUp  ShotType = "extreme close-up"
	ShotCloseUp         ShotType = "close-up"
	ShotMediumCloseUp   ShotType = "medium close-up"
	ShotMediumShot      ShotType = "medium shot"
	ShotMediumLongShot  ShotType = "medium long shot"
	ShotFullShot        ShotType = "full shot"
	ShotWideShot        ShotType = "wide shot"
	ShotExtremeWideShot ShotType = "extreme wide shot"
)

// Slug returns the snake_case identifier for the shot type, e.g.
// "extreme close-up" becomes "extreme_close_up".
func (s ShotType) Slug() string {
	slug := strings.ReplaceAll(string(s), " ", "_")
	return strings.ReplaceAll(slug, "-", "_")
}

// AllShotTypes returns the shot vocabulary ordered from tightest to widest.
func AllShotTypes() []ShotType {
	return []ShotType{
		ShotExtremeCloseUp,
		ShotCloseUp,
		ShotMediumCloseUp,
		ShotMediumShot,
		ShotMediumLongShot,
		ShotFullShot,
		ShotWideShot,
		ShotExtremeWideShot,
	}
}

// CameraAngle is the closed vocabulary of camera angle labels derived from
// tilt and roll.
type CameraAngle string

const (
	AngleEyeLevel    CameraAngle = "eye level"
	AngleHigh        CameraAngle = "high angle"
	AngleSlightLow   CameraAngle = "slight low angle"
	AngleStandardLow CameraAngle = "standard low angle"
	AngleDeepLow     CameraAngle = "deep low angle"
	AngleExtremeLow  CameraAngle = "extreme low angle"
	AngleBirdsEye    CameraAngle = "bird's eye view"
	AngleDutch       CameraAngle = "dutch angle"
	AngleDutchLow    CameraAngle = "dutch low angle"
)

// AllCameraAngles returns every angle label the classifier can produce.
func AllCameraAngles() []CameraAngle {
	return []CameraAngle{
		AngleEyeLevel,
		AngleHigh,
		AngleSlightLow,
		AngleStandardLow,
		AngleDeepLow,
		AngleExtremeLow,
		AngleBirdsEye,
		AngleDutch,
		AngleDutchLow,
	}
}
