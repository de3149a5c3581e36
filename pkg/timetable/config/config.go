// Package config loads converter settings from YAML, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "timetable.yaml"

const (
	defaultInputPath  = "./timetable.xlsx"
	defaultOutputDir  = "./src/data"
	defaultOutputFile = "timetable.json"
	defaultLogLevel   = "info"
)

// Config holds converter settings.
type Config struct {
	InputPath       string            `yaml:"input_path"`
	OutputDir       string            `yaml:"output_dir"`
	OutputFile      string            `yaml:"output_file"`
	CourseNamesPath string            `yaml:"course_names_path"`
	CourseNames     map[string]string `yaml:"course_names"`
	LogLevel        string            `yaml:"log_level"`
	// Pretty is nil when unset so the default can apply.
	Pretty *bool `yaml:"pretty"`
}

// Load reads the YAML file at path, applies environment overrides and fills
// defaults. A missing file is only an error when path is not DefaultPath.
// Callers apply their own overrides and then call Validate.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	envOverride(&cfg.InputPath, "TIMETABLE_INPUT")
	envOverride(&cfg.OutputDir, "TIMETABLE_OUTPUT_DIR")
	envOverride(&cfg.OutputFile, "TIMETABLE_OUTPUT_FILE")
	envOverride(&cfg.CourseNamesPath, "TIMETABLE_COURSE_NAMES")
	envOverride(&cfg.LogLevel, "TIMETABLE_LOG_LEVEL")
	if val := os.Getenv("TIMETABLE_PRETTY"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid TIMETABLE_PRETTY %q: %w", val, err)
		}
		cfg.Pretty = &b
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.InputPath == "" {
		c.InputPath = defaultInputPath
	}
	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
	if c.OutputFile == "" {
		c.OutputFile = defaultOutputFile
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Pretty == nil {
		pretty := true
		c.Pretty = &pretty
	}
}

// Validate checks settings that cannot be fixed by defaults.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}
	if strings.ContainsAny(c.OutputFile, `/\`) {
		return fmt.Errorf("invalid output_file '%s': must be a file name, not a path", c.OutputFile)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// PrettyJSON reports whether output should be indented.
func (c *Config) PrettyJSON() bool {
	return c.Pretty == nil || *c.Pretty
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
