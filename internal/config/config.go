package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fyplab/fypml/pkg/fypml"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig carries the per-project settings of the command line
// harness. Everything here is optional; zero values mean the built-in
// behavior.
type ProjectConfig struct {
	// OutputDir is where migrated documents are written. Empty means next
	// to the source file.
	OutputDir string `yaml:"output_dir"`

	// Strict makes validation findings fatal for the migrate command, not
	// just for validate.
	Strict bool `yaml:"strict"`

	// PrettyJSON pretty-prints the json command's output.
	PrettyJSON bool `yaml:"pretty_json"`
}

const ConfigFileName = "fypml.yaml"

// Load reads fypml.yaml from the given directory and applies FYPML_*
// environment overrides on top. A .env file in the working directory is
// honored first, matching common project layouts.
func Load(dir string) (*ProjectConfig, error) {
	_ = godotenv.Load()

	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %v: %w", ConfigFileName, err, fypml.ErrInvalidConfig)
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no fypml.yaml exists, with
// environment overrides still applied.
func Default() (*ProjectConfig, error) {
	_ = godotenv.Load()
	cfg := &ProjectConfig{}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *ProjectConfig) error {
	if v, ok := os.LookupEnv("FYPML_OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if err := envBool("FYPML_STRICT", &cfg.Strict); err != nil {
		return err
	}
	return envBool("FYPML_PRETTY_JSON", &cfg.PrettyJSON)
}

func envBool(name string, dst *bool) error {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s=%q is not a boolean: %w", name, v, fypml.ErrInvalidConfig)
	}
	*dst = b
	return nil
}
