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

import "math"

// Vector3 is a point or offset in scene coordinates. X is right, Y is up,
// Z is toward the default camera position in front of the subject.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Sub returns the component-wise difference v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Length returns the Euclidean magnitude of the vector.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// CameraInput is the raw camera pose supplied by a 3D viewport host.
// Position and Target are in scene grid units; Roll is in degrees.
// Zoom is accepted for host compatibility but does not affect the output.
type CameraInput struct {
	Position Vector3 `json:"position"`
	Target   Vector3 `json:"target"`
	RollDeg  float64 `json:"roll"`
	Zoom     float64 `json:"zoom,omitempty"`
}

// PromptRequest is the full request body for a prompt generation call.
// FocalLengthMM and ObjectScaleM are optional; nil means "not provided"
// (the focal length falls back to the 50mm default, and framing-based shot
// classification is skipped). Description is free text appended verbatim to
// the generated prompt.
type PromptRequest struct {
	Camera        CameraInput `json:"camera"`
	FocalLengthMM *float64    `json:"focal_length_mm,omitempty"`
	ObjectScaleM  *float64    `json:"object_scale_m,omitempty"`
	Description   string      `json:"description,omitempty"`
}

// CameraParameters is the derived, clamped camera state computed once per
// request and shared by the classification and rendering steps. Angles are
// in degrees: positive TiltDeg means the camera looks down at the subject,
// positive PanDeg means the camera sits to the subject's right.
type CameraParameters struct {
	FocalLengthMM  float64
	SensorWidthMM  float64
	SensorHeightMM float64
	DistanceM      float64
	FOVDeg         float64
	PanDeg         float64
	TiltDeg        float64
	RollDeg        float64
	ObjectScaleM   *float64
	Offset         Vector3 // camera position relative to the target, scene units
	Description    string
	ShotType       ShotType
	Angle          CameraAngle
}

// PromptResult is the response envelope for a prompt generation call. ID is
// a deterministic UUID derived from the request payload; Prompt and
// CameraJSON are the two rendered outputs.
type PromptResult struct {
	ID         string `json:"id"`
	Prompt     string `json:"prompt"`
	CameraJSON string `json:"camera_json"`
}
