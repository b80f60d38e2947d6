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

// Package model_test contains unit tests for the camera data model: the
// closed classification vocabularies, the slug conversion used in the JSON
// record, and the directional phrase helpers.
package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinelens/camera-prompt-service/internal/core/model"
)

// TestShotTypeSlug verifies both spaces and hyphens become underscores.
func TestShotTypeSlug(t *testing.T) {
	assert.Equal(t, "extreme_close_up", model.ShotExtremeCloseUp.Slug())
	assert.Equal(t, "close_up", model.ShotCloseUp.Slug())
	assert.Equal(t, "medium_long_shot", model.ShotMediumLongShot.Slug())
	assert.Equal(t, "extreme_wide_shot", model.ShotExtremeWideShot.Slug())
}

// TestClosedVocabularies pins the sizes of the classification vocabularies.
// Adding or removing a label is a breaking change for downstream hosts.
func TestClosedVocabularies(t *testing.T) {
	assert.Len(t, model.AllShotTypes(), 8)
	assert.Len(t, model.AllCameraAngles(), 9)
	assert.Len(t, model.ShotRanges, 8)
	assert.Len(t, model.FramingBands, 8)
	assert.Len(t, model.AngleReferences, 9)
}

// TestShotRangesOrdering verifies the distance table runs from the tightest
// to the widest shot so first-match-wins resolves ties toward the closer
// bucket.
func TestShotRangesOrdering(t *testing.T) {
	for i := 1; i < len(model.ShotRanges); i++ {
		prev := model.ShotRanges[i-1]
		cur := model.ShotRanges[i]
		assert.LessOrEqual(t, prev.MinDistanceM, cur.MinDistanceM,
			"distance table must be ordered: %s before %s", prev.Shot, cur.Shot)
	}
	assert.Equal(t, model.MinShotTableDistanceM, model.ShotRanges[0].MinDistanceM)
	assert.Equal(t, model.MaxShotTableDistanceM, model.ShotRanges[len(model.ShotRanges)-1].MaxDistanceM)
}

// TestFramingBandsCoverage verifies the framing bands leave no gap: every
// non-negative coverage percentage matches at least one band.
func TestFramingBandsCoverage(t *testing.T) {
	samples := []float64{0, 1, 4.9, 5, 14.9, 15, 22, 29.9, 30, 45, 59.9, 60, 89.9, 90, 150, 5000}
	for _, pct := range samples {
		matched := false
		for _, band := range model.FramingBands {
			if band.OpenEnded {
				if pct >= band.MinPercent {
					matched = true
					break
				}
				continue
			}
			if pct >= band.MinPercent && pct < band.MaxPercent {
				matched = true
				break
			}
		}
		assert.True(t, matched, "no framing band matches %.1f%%", pct)
	}
}

// TestTiltPhrase verifies the directional tilt phrases used in the record.
func TestTiltPhrase(t *testing.T) {
	assert.Equal(t, "tilt down 30.0", model.TiltPhrase(30))
	assert.Equal(t, "tilt up 12.5", model.TiltPhrase(-12.49))
	assert.Equal(t, "tilt 0.0", model.TiltPhrase(0))
}

// TestPanPhrase verifies the directional pan phrases used in the record.
func TestPanPhrase(t *testing.T) {
	assert.Equal(t, "pan to right 45.0", model.PanPhrase(45))
	assert.Equal(t, "pan to left 90.0", model.PanPhrase(-90))
	assert.Equal(t, "pan 0.0", model.PanPhrase(0))
}

// TestClamp covers the shared clamp helper at and beyond its bounds.
func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, model.Clamp(0.5, 1, 1000))
	assert.Equal(t, 1000.0, model.Clamp(5000, 1, 1000))
	assert.Equal(t, 50.0, model.Clamp(50, 1, 1000))
}

// TestVector3 covers the offset math used by the geometry step.
func TestVector3(t *testing.T) {
	offset := model.Vector3{X: 3, Y: 4, Z: 12}.Sub(model.Vector3{})
	assert.Equal(t, 13.0, offset.Length())
}
