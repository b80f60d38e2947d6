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
	"encoding/json"
	"fmt"

	"github.com/cinelens/camera-prompt-service/internal/core/cor"
	"github.com/cinelens/camera-prompt-service/internal/core/model"
)

// RecordRenderer marshals the classified camera parameters into the
// structured JSON camera record, 4-space indented, and stores the JSON text
// under the command's output parameter. The record is derived from the same
// CameraParameters as the prompt sentence, so the two outputs always agree.
type RecordRenderer struct {
	cor.BaseCommand
}

func NewRecordRenderer(name string, outputParamName string) *RecordRenderer {
	return &RecordRenderer{BaseCommand: cor.BaseCommand{
		Name:            name,
		OutputParamName: outputParamName,
	}}
}

func (c *RecordRenderer) Execute(context cor.Context) {
	params, ok := context.Get(c.GetInputParam()).(*model.CameraParameters)
	if !ok {
		context.AddError(c.GetName(), fmt.Errorf("input is not camera parameters"))
		c.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}

	record := model.CameraRecordEnvelope{
		Camera: model.CameraRecord{
			FocalLengthMM:  int(params.FocalLengthMM),
			SensorWidthMM:  int(params.SensorWidthMM),
			SensorHeightMM: int(params.SensorHeightMM),
			DistanceM:      model.Round2(params.DistanceM),
			TiltDeg:        model.TiltPhrase(params.TiltDeg),
			PanDeg:         model.PanPhrase(params.PanDeg),
			RollDeg:        model.Round1(params.RollDeg),
			ShotType:       params.ShotType.Slug(),
		},
	}

	out, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		context.AddError(c.GetName(), err)
		c.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}

	context.Add(c.GetOutputParam(), string(out))
	context.Add(cor.CtxOut, params)
	c.GetSuccessCounter().Add(context.GetContext(), 1)
}
