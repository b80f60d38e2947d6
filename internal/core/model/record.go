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

import (
	"fmt"
	"math"
)

// CameraRecord is the structured camera description emitted next to every
// prompt, for hosts that condition generation on machine-readable camera
// state. Tilt and pan carry a directional phrase with the magnitude so the
// record stays self-describing, e.g. "tilt down 30.0" or "pan to right 45.0".
type CameraRecord struct {
	FocalLengthMM  int     `json:"focal_length_mm"`
	SensorWidthMM  int     `json:"sensor_width_mm"`
	SensorHeightMM int     `json:"sensor_height_mm"`
	DistanceM      float64 `json:"distance_m"`
	TiltDeg        string  `json:"tilt_deg"`
	PanDeg         string  `json:"pan_deg"`
	RollDeg        float64 `json:"roll_deg"`
	ShotType       string  `json:"shot_type"`
}

// CameraRecordEnvelope wraps the record under a top-level "camera" key.
type CameraRecordEnvelope struct {
	Camera CameraRecord `json:"camera"`
}

// TiltPhrase renders the tilt angle as a directional phrase. Positive tilt
// means the camera looks down. The magnitude is rounded to one decimal.
func TiltPhrase(tiltDeg float64) string {
	v := Round1(math.Abs(tiltDeg))
	switch {
	case tiltDeg > 0:
		return fmt.Sprintf("tilt down %.1f", v)
	case tiltDeg < 0:
		return fmt.Sprintf("tilt up %.1f", v)
	default:
		return fmt.Sprintf("tilt %.1f", v)
	}
}

// PanPhrase renders the pan angle as a directional phrase. Positive pan
// means the camera sits to the subject's right.
func PanPhrase(panDeg float64) string {
	v := Round1(math.Abs(panDeg))
	switch {
	case panDeg > 0:
		return fmt.Sprintf("pan to right %.1f", v)
	case panDeg < 0:
		return fmt.Sprintf("pan to left %.1f", v)
	default:
		return fmt.Sprintf("pan %.1f", v)
	}
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp constrains v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
