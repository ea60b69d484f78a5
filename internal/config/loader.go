package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then environment variables, and validates it.
func Load(path string) (Env, error) {
	env := Defaults()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Env{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &env); err != nil {
			return Env{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	env.applyOSEnv()
	if err := Validate(env); err != nil {
		return Env{}, err
	}
	return env, nil
}

func Validate(env Env) error {
	v := validator.New()
	if err := v.Struct(env); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
