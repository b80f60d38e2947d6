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

// Package gemini wraps the Vertex AI Generative AI client for the optional
// prompt stylist. The wrapper uses the Decorator pattern to add rate
// limiting and retry behavior to the raw model handle, keeping the service
// inside its API quota and resilient to transient failures.
package gemini

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// maxRetries bounds the number of times a failed generation call is retried
// before giving up.
const maxRetries = 3

type retryCountKey struct{}

// QuotaAwareGenerativeAIModel decorates a genai model handle with a token
// bucket rate limiter. Calls that exceed the configured request rate are
// delayed rather than rejected.
type QuotaAwareGenerativeAIModel struct {
	GenerateConfig *genai.GenerateContentConfig
	ModelName      string
	ModelHandle    *genai.Models
	RateLimit      *rate.Limiter
}

// NewQuotaAwareModel wraps a model handle with a limiter allowing
// requestsPerSecond calls, replenished once per second.
func NewQuotaAwareModel(generateConfig *genai.GenerateContentConfig, name string, handle *genai.Models, requestsPerSecond int) *QuotaAwareGenerativeAIModel {
	return &QuotaAwareGenerativeAIModel{
		GenerateConfig: generateConfig,
		ModelName:      name,
		ModelHandle:    handle,
		RateLimit:      rate.NewLimiter(rate.Every(time.Second), requestsPerSecond),
	}
}

// GenerateContent forwards to the underlying model once the rate limiter
// admits the call, retrying failed calls with a backoff up to maxRetries.
func (q *QuotaAwareGenerativeAIModel) GenerateContent(ctx context.Context, content []*genai.Content) (*genai.GenerateContentResponse, error) {
	if err := q.RateLimit.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := q.ModelHandle.GenerateContent(ctx, q.ModelName, content, q.GenerateConfig)
	if err != nil {
		retryCount, _ := ctx.Value(retryCountKey{}).(int)
		if retryCount >= maxRetries {
			return nil, errors.New("failed generation on max retries")
		}
		retryCtx := context.WithValue(ctx, retryCountKey{}, retryCount+1)
		select {
		case <-time.After(time.Second * time.Duration(1<<retryCount)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return q.GenerateContent(retryCtx, content)
	}
	return resp, nil
}
