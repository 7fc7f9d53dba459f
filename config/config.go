// Package config loads agent configuration from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run configuration consumed by the CLI.
type Config struct {
	// Model is the model name passed to the oracle constructor, in
	// publisher/model format for GitHub Models (e.g. "openai/gpt-4.1").
	Model string `yaml:"model"`

	// AgentType selects which registered agent type to use.
	AgentType string `yaml:"agent_type"`

	// MaxIterations is the iteration ceiling; 0 keeps the default.
	MaxIterations int `yaml:"max_iterations"`

	// Verbose emits the run transcript to stderr.
	Verbose bool `yaml:"verbose"`

	// ReturnIntermediateSteps includes the action records in results.
	ReturnIntermediateSteps bool `yaml:"return_intermediate_steps"`

	// SystemPrompt is additional context added to the prompt template.
	SystemPrompt string `yaml:"system_prompt"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Model:     "openai/gpt-4.1",
		AgentType: "zero-shot-react-description",
	}
}

// Load reads a YAML configuration file. Missing fields keep their Default
// values; unknown fields are rejected so typos surface immediately.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
