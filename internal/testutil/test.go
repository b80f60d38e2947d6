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

// Package test provides utility functions and sample camera poses to support
// the application's test suite. It sets up a consistent test environment,
// loads the test configuration once, and provides fixture requests for the
// pipeline and service tests.
package test

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cinelens/camera-prompt-service/internal/config"
	"github.com/cinelens/camera-prompt-service/internal/core/model"
)

// StateManager acts as a simple in-memory cache for the application
// configuration during test runs, so the TOML files are parsed only once
// per test binary.
type StateManager struct {
	config *config.Config
}

var state = &StateManager{}

// HandleErr fails the test when err is non-nil. Convenience to reduce
// boilerplate error checks in tests.
func HandleErr(err error, t *testing.T) {
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// SetupOS points the configuration loader at the repository's configs
// directory with the "test" runtime overlay. The directory is resolved
// relative to this source file so tests pass regardless of the working
// directory they run from.
func SetupOS() (err error) {
	_, thisFile, _, _ := runtime.Caller(0)
	configDir := filepath.Join(filepath.Dir(thisFile), "..", "..", "configs")

	err = os.Setenv(config.EnvConfigFilePrefix, configDir)
	if err != nil {
		return err
	}
	err = os.Setenv(config.EnvConfigRuntime, "test")
	return err
}

// GetConfig is a singleton accessor for the test configuration.
func GetConfig() *config.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup environment for test: %v\n", err)
		}
		cfg := config.NewConfig()
		config.LoadConfig(cfg)
		state.config = cfg
	}
	return state.config
}

// Float64Ptr returns a pointer to v, for the request's optional fields.
func Float64Ptr(v float64) *float64 {
	return &v
}

// GetFrontalPoseRequest returns the canonical frontal pose: camera ten grid
// units in front of the subject at eye level with the default lens. At the
// 4 m/unit scene scale this is a 40 m camera distance.
func GetFrontalPoseRequest() *model.PromptRequest {
	return &model.PromptRequest{
		Camera: model.CameraInput{
			Position: model.Vector3{X: 0, Y: 0, Z: 10},
			Target:   model.Vector3{X: 0, Y: 0, Z: 0},
		},
	}
}

// GetDutchLowPoseRequest returns a pose looking up at the subject with a
// canted frame: 30 degrees of upward tilt and 20 degrees of roll.
func GetDutchLowPoseRequest() *model.PromptRequest {
	return &model.PromptRequest{
		Camera: model.CameraInput{
			// Position below the target so the camera tilts up ~30 degrees.
			Position: model.Vector3{X: 0, Y: -0.577, Z: 1},
			Target:   model.Vector3{X: 0, Y: 0, Z: 0},
			RollDeg:  20,
		},
	}
}

// GetTestCameraRequestJSON returns a raw request body as a host would post
// it, with an angled pose, explicit lens, object scale, and description.
func GetTestCameraRequestJSON() string {
	return `{
  "camera": {
    "position": { "x": 0.44, "y": 0.26, "z": 0.44 },
    "target": { "x": 0.0, "y": 0.0, "z": 0.0 },
    "roll": 0.0,
    "zoom": 1.0
  },
  "focal_length_mm": 50.0,
  "object_scale_m": 1.8,
  "description": "a lone astronaut walking through a desert canyon"
}`
}
