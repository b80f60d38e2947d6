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
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/cinelens/camera-prompt-service/internal/config"
	"github.com/cinelens/camera-prompt-service/internal/core/services"
	"github.com/cinelens/camera-prompt-service/internal/core/workflow"
	"github.com/cinelens/camera-prompt-service/internal/gemini"
)

// StateManager holds the shared components for the application.
type StateManager struct {
	config          *config.Config
	stylist         *gemini.QuotaAwareGenerativeAIModel
	prompterService *services.PrompterService
}

var state = &StateManager{}

// SetupOS points the config loader at the local configs directory unless
// the caller already chose a location through the environment.
func SetupOS() (err error) {
	if os.Getenv(config.EnvConfigFilePrefix) == "" {
		if err = os.Setenv(config.EnvConfigFilePrefix, "configs"); err != nil {
			return err
		}
	}
	if os.Getenv(config.EnvConfigRuntime) == "" {
		err = os.Setenv(config.EnvConfigRuntime, "local")
	}
	return err
}

// GetConfig loads the application configuration once and caches it.
func GetConfig() *config.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup environment: %v\n", err)
		}
		cfg := config.NewConfig()
		config.LoadConfig(cfg)
		state.config = cfg
	}
	return state.config
}

// InitState initializes the application state and dependencies. The Gemini
// stylist is only constructed when enabled in config; everything else runs
// without external services.
func InitState(ctx context.Context) {
	cfg := GetConfig()

	if cfg.Generative.Enabled {
		stylist, err := gemini.NewStylist(ctx, cfg)
		if err != nil {
			panic(err)
		}
		state.stylist = stylist
		slog.Info("Prompt stylist enabled", "model", cfg.AgentModels[gemini.StylistModelName].Model)
	}

	state.prompterService = &services.PrompterService{
		Workflow: workflow.NewCameraPromptWorkflow(cfg, state.stylist),
	}
}
