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

package model

// Optical and scene constants shared by the geometry and classification
// steps. The sensor is a fixed full-frame 36x24 mm reference; one scene grid
// unit corresponds to four meters of physical distance.
const (
	SensorWidthMM         = 36.0
	SensorHeightMM        = 24.0
	DefaultFocalLengthMM  = 50.0
	MinFocalLengthMM      = 1.0
	MaxFocalLengthMM      = 1000.0
	MinObjectScaleM       = 0.01
	MaxObjectScaleM       = 100.0
	SceneUnitMeters       = 4.0
	EyeLevelToleranceDeg  = 5.0
	MinShotTableDistanceM = 0.3
	MaxShotTableDistanceM = 50.0
)

// ShotRange maps a shot type to the camera distance band that typically
// produces it, along with the focal length and field-of-view ranges shown in
// the reference API. Bands intentionally overlap; classification is
// first-match-wins over the ordered table, so ties resolve to the
// tighter shot.
type ShotRange struct {
	Shot         ShotType `json:"shot"`
	Slug         string   `json:"slug"`
	MinDistanceM float64  `json:"min_distance_m"`
	MaxDistanceM float64  `json:"max_distance_m"`
	MinFocalMM   float64  `json:"min_focal_mm"`
	MaxFocalMM   float64  `json:"max_focal_mm"`
	MinFOVDeg    float64  `json:"min_fov_deg"`
	MaxFOVDeg    float64  `json:"max_fov_deg"`
}

// ShotRanges is the ordered distance classification table, tightest shot
// first. Distance endpoints are inclusive.
var ShotRanges = []ShotRange{
	{Shot: ShotExtremeCloseUp, Slug: ShotExtremeCloseUp.Slug(), MinDistanceM: 0.3, MaxDistanceM: 0.6, MinFocalMM: 85, MaxFocalMM: 135, MinFOVDeg: 10, MaxFOVDeg: 25},
	{Shot: ShotCloseUp, Slug: ShotCloseUp.Slug(), MinDistanceM: 0.6, MaxDistanceM: 1.2, MinFocalMM: 50, MaxFocalMM: 85, MinFOVDeg: 25, MaxFOVDeg: 40},
	{Shot: ShotMediumCloseUp, Slug: ShotMediumCloseUp.Slug(), MinDistanceM: 1.0, MaxDistanceM: 1.8, MinFocalMM: 50, MaxFocalMM: 85, MinFOVDeg: 25, MaxFOVDeg: 40},
	{Shot: ShotMediumShot, Slug: ShotMediumShot.Slug(), MinDistanceM: 1.5, MaxDistanceM: 3.0, MinFocalMM: 35, MaxFocalMM: 50, MinFOVDeg: 40, MaxFOVDeg: 55},
	{Shot: ShotMediumLongShot, Slug: ShotMediumLongShot.Slug(), MinDistanceM: 2.5, MaxDistanceM: 4.0, MinFocalMM: 35, MaxFocalMM: 50, MinFOVDeg: 40, MaxFOVDeg: 55},
	{Shot: ShotFullShot, Slug: ShotFullShot.Slug(), MinDistanceM: 3.0, MaxDistanceM: 5.0, MinFocalMM: 24, MaxFocalMM: 35, MinFOVDeg: 55, MaxFOVDeg: 75},
	{Shot: ShotWideShot, Slug: ShotWideShot.Slug(), MinDistanceM: 5.0, MaxDistanceM: 10.0, MinFocalMM: 16, MaxFocalMM: 24, MinFOVDeg: 75, MaxFOVDeg: 95},
	{Shot: ShotExtremeWideShot, Slug: ShotExtremeWideShot.Slug(), MinDistanceM: 10.0, MaxDistanceM: 50.0, MinFocalMM: 10, MaxFocalMM: 16, MinFOVDeg: 95, MaxFOVDeg: 120},
}

// FramingBand maps a percentage of vertical frame coverage to a shot type.
// MinPercent is inclusive, MaxPercent exclusive. The first band is
// open-ended above its minimum.
type FramingBand struct {
	Shot       ShotType
	MinPercent float64
	MaxPercent float64
	OpenEnded  bool
}

// FramingBands is the ordered framing classification table, evaluated
// first-match-wins from tightest to widest. It applies only when the caller
// supplies a physical object scale, and takes precedence over the distance
// table because subject coverage, not distance, defines the shot.
var FramingBands = []FramingBand{
	{Shot: ShotExtremeCloseUp, MinPercent: 90, MaxPercent: 1000, OpenEnded: true},
	{Shot: ShotCloseUp, MinPercent: 60, MaxPercent: 90},
	{Shot: ShotMediumCloseUp, MinPercent: 45, MaxPercent: 60},
	{Shot: ShotMediumShot, MinPercent: 30, MaxPercent: 60},
	{Shot: ShotMediumLongShot, MinPercent: 20, MaxPercent: 30},
	{Shot: ShotFullShot, MinPercent: 15, MaxPercent: 30},
	{Shot: ShotWideShot, MinPercent: 5, MaxPercent: 15},
	{Shot: ShotExtremeWideShot, MinPercent: 0, MaxPercent: 5},
}

// LowAngleBand maps an upward tilt magnitude (degrees of camera-below-subject
// tilt) to a low-angle gradation. MinUpDeg is exclusive, MaxUpDeg inclusive.
type LowAngleBand struct {
	Angle    CameraAngle
	MinUpDeg float64
	MaxUpDeg float64
}

// LowAngleBands is the ordered low-angle gradation table.
var LowAngleBands = []LowAngleBand{
	{Angle: AngleSlightLow, MinUpDeg: EyeLevelToleranceDeg, MaxUpDeg: 15},
	{Angle: AngleStandardLow, MinUpDeg: 15, MaxUpDeg: 30},
	{Angle: AngleDeepLow, MinUpDeg: 30, MaxUpDeg: 45},
	{Angle: AngleExtremeLow, MinUpDeg: 45, MaxUpDeg: 90},
}

// Roll thresholds for the dutch angle labels, in degrees of absolute roll,
// and the downward tilt that promotes a high angle to a bird's eye view.
const (
	DutchRollMinDeg    = 5.0
	DutchLowRollMinDeg = 10.0
	DutchLowRollMaxDeg = 45.0
	BirdsEyeTiltMinDeg = 80.0
)

// AngleReference describes one camera angle label for the reference API.
type AngleReference struct {
	Angle       CameraAngle `json:"angle"`
	Description string      `json:"description"`
}

// AngleReferences lists every angle label with the condition that produces it.
var AngleReferences = []AngleReference{
	{Angle: AngleEyeLevel, Description: "tilt within 5 degrees of level"},
	{Angle: AngleHigh, Description: "camera above the subject, tilted down more than 5 degrees"},
	{Angle: AngleSlightLow, Description: "camera below the subject, tilted up 5 to 15 degrees"},
	{Angle: AngleStandardLow, Description: "camera below the subject, tilted up 15 to 30 degrees"},
	{Angle: AngleDeepLow, Description: "camera below the subject, tilted up 30 to 45 degrees"},
	{Angle: AngleExtremeLow, Description: "camera below the subject, tilted up 45 to 90 degrees"},
	{Angle: AngleBirdsEye, Description: "camera overhead, tilted down 80 degrees or more"},
	{Angle: AngleDutch, Description: "roll of at least 5 degrees with level or downward tilt"},
	{Angle: AngleDutchLow, Description: "roll between 10 and 45 degrees combined with an upward tilt"},
}
