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

// Package config defines the application's configuration structure and the
// hierarchical TOML loader that populates it. Configuration lives in a base
// `.env.toml` file overlaid by a runtime-specific `.env.<runtime>.toml`
// (e.g. `.env.local.toml`, `.env.test.toml`), so environment differences
// stay declarative.
package config

// Environment variables and file-name parts used to locate configuration.
const (
	// EnvConfigFilePrefix names the directory holding the TOML files.
	EnvConfigFilePrefix = "CAMERA_PROMPT_CONFIG_PREFIX"
	// EnvConfigRuntime selects the runtime overlay, e.g. "local" or "test".
	EnvConfigRuntime = "CAMERA_PROMPT_RUNTIME"

	ConfigFileBaseName  = ".env"
	ConfigFileExtension = "toml"
	ConfigFileSeparator = "."
)

// ApplicationConfig holds the service identity and listener settings, plus
// the Google Cloud project coordinates used when the generative stylist is
// enabled.
type ApplicationConfig struct {
	Name            string `toml:"name"`
	Port            int    `toml:"port"`
	GoogleProjectID string `toml:"google_project_id"`
	GoogleLocation  string `toml:"location"`
}

// CameraConfig holds the tunable camera defaults. Values left at zero fall
// back to the standard 50mm lens and 4 m/grid-unit scene scale in NewConfig.
type CameraConfig struct {
	DefaultFocalLengthMM float64 `toml:"default_focal_length_mm"`
	SceneUnitMeters      float64 `toml:"scene_unit_meters"`
}

// GenerativeConfig gates the optional Gemini prompt stylist. When disabled
// the pipeline is fully offline and deterministic.
type GenerativeConfig struct {
	Enabled bool `toml:"enabled"`
}

// GenerativeModel describes a single named Vertex AI model and its
// generation parameters.
type GenerativeModel struct {
	Model              string  `toml:"model"`
	Temperature        float32 `toml:"temperature"`
	TopP               float32 `toml:"top_p"`
	TopK               float32 `toml:"top_k"`
	MaxTokens          int32   `toml:"max_tokens"`
	SystemInstructions string  `toml:"system_instructions"`
	OutputFormat       string  `toml:"output_format"`
	RateLimit          int     `toml:"rate_limit"`
	EnableGoogle       bool    `toml:"enable_google"`
}

// PromptTemplateConfig holds the text/template bodies used by generative
// commands.
type PromptTemplateConfig struct {
	Stylist string `toml:"stylist"`
}

// Config is the root configuration object for the service.
type Config struct {
	Application     ApplicationConfig           `toml:"application"`
	Camera          CameraConfig                `toml:"camera"`
	Generative      GenerativeConfig            `toml:"generative"`
	PromptTemplates PromptTemplateConfig        `toml:"prompt_templates"`
	AgentModels     map[string]*GenerativeModel `toml:"agent_models"`
}

// NewConfig creates a Config populated with the built-in defaults. TOML
// decoding overlays these, so only values present in the files change.
func NewConfig() *Config {
	return &Config{
		Application: ApplicationConfig{
			Name: "camera-prompt-service",
			Port: 8080,
		},
		Camera: CameraConfig{
			DefaultFocalLengthMM: 50.0,
			SceneUnitMeters:      4.0,
		},
		AgentModels: make(map[string]*GenerativeModel),
	}
}
