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

// Package services exposes the pipeline to the API layer.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/cinelens/camera-prompt-service/internal/core/cor"
	"github.com/cinelens/camera-prompt-service/internal/core/model"
	"github.com/cinelens/camera-prompt-service/internal/core/workflow"
)

// PrompterService runs the camera prompt workflow once per request. Each
// call gets a fresh chain context, so no state crosses requests and the
// same pose always yields byte-identical outputs.
type PrompterService struct {
	Workflow *workflow.CameraPromptWorkflow

	generated atomic.Int64
}

// Generate executes the workflow for the given request and returns the
// prompt sentence, the JSON camera record, and a deterministic request id.
func (s *PrompterService) Generate(ctx context.Context, request *model.PromptRequest) (*model.PromptResult, error) {
	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(ctx)
	chainCtx.Add(cor.CtxIn, request)

	s.Workflow.Execute(chainCtx)

	if chainCtx.HasErrors() {
		var errs []error
		for name, err := range chainCtx.GetErrors() {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return nil, errors.Join(errs...)
	}

	prompt, ok := chainCtx.Get(workflow.PromptOutputParamName).(string)
	if !ok {
		return nil, errors.New("workflow produced no prompt")
	}
	record, ok := chainCtx.Get(workflow.RecordOutputParamName).(string)
	if !ok {
		return nil, errors.New("workflow produced no camera record")
	}

	s.generated.Add(1)
	return &model.PromptResult{
		ID:         RequestID(request),
		Prompt:     prompt,
		CameraJSON: record,
	}, nil
}

// GeneratedCount reports how many prompts this instance has produced.
func (s *PrompterService) GeneratedCount() int64 {
	return s.generated.Load()
}

// RequestID derives a stable UUID from the canonical JSON encoding of the
// request, so identical poses share an id. The id lives only in the
// response envelope, never in the prompt or record.
func RequestID(request *model.PromptRequest) string {
	payload, err := json.Marshal(request)
	if err != nil {
		return uuid.NewString()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, payload).String()
}
