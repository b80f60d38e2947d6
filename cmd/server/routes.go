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

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelens/camera-prompt-service/internal/core/model"
)

// PromptRouter sets up the prompt generation route. A POST with a camera
// pose returns the prompt sentence, the JSON camera record, and the
// deterministic request id. Malformed JSON is the only client error;
// numeric values outside their valid ranges are clamped, never rejected.
func PromptRouter(r *gin.RouterGroup) {
	prompts := r.Group("/prompts")
	{
		prompts.POST("", func(c *gin.Context) {
			var request model.PromptRequest
			if err := c.ShouldBindJSON(&request); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			result, err := state.prompterService.Generate(c.Request.Context(), &request)
			if err != nil {
				log.Printf("Error generating prompt: %v\n", err)
				c.Status(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusOK, result)
		})
	}
}

// ReferenceRouter exposes the closed classification vocabularies so hosts
// can present pickers or validate outputs without duplicating the tables.
func ReferenceRouter(r *gin.RouterGroup) {
	reference := r.Group("/reference")
	{
		reference.GET("/shots", func(c *gin.Context) {
			c.JSON(http.StatusOK, model.ShotRanges)
		})

		reference.GET("/angles", func(c *gin.Context) {
			c.JSON(http.StatusOK, model.AngleReferences)
		})
	}
}
