package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "timetable.yaml")
	configContent := `
input_path: "./sheets/timetable.xlsx"
output_dir: "./public/data"
course_names_path: "./courses.yaml"
course_names:
  CSE101: Introduction to Programming
log_level: debug
pretty: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "./sheets/timetable.xlsx", cfg.InputPath)
	assert.Equal(t, "./public/data", cfg.OutputDir)
	assert.Equal(t, "timetable.json", cfg.OutputFile)
	assert.Equal(t, "./courses.yaml", cfg.CourseNamesPath)
	assert.Equal(t, "Introduction to Programming", cfg.CourseNames["CSE101"])
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.False(t, cfg.PrettyJSON())
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./timetable.xlsx", cfg.InputPath)
	assert.Equal(t, "./src/data", cfg.OutputDir)
	assert.Equal(t, "timetable.json", cfg.OutputFile)
	assert.Empty(t, cfg.CourseNamesPath)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.True(t, cfg.PrettyJSON())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TIMETABLE_INPUT", "/data/in.xlsx")
	t.Setenv("TIMETABLE_OUTPUT_DIR", "/data/out")
	t.Setenv("TIMETABLE_OUTPUT_FILE", "tt.json")
	t.Setenv("TIMETABLE_COURSE_NAMES", "/data/courses.yaml")
	t.Setenv("TIMETABLE_LOG_LEVEL", "WARN")
	t.Setenv("TIMETABLE_PRETTY", "false")

	cfg, err := Load(DefaultPath)
	require.NoError(t, err)

	assert.Equal(t, "/data/in.xlsx", cfg.InputPath)
	assert.Equal(t, "/data/out", cfg.OutputDir)
	assert.Equal(t, "tt.json", cfg.OutputFile)
	assert.Equal(t, "/data/courses.yaml", cfg.CourseNamesPath)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
	assert.False(t, cfg.PrettyJSON())
}

func TestLoadDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("TIMETABLE_OUTPUT_DIR=./from-dotenv\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("TIMETABLE_OUTPUT_DIR") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "./from-dotenv", cfg.OutputDir)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("input_path: [unclosed"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)

	level := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(level, []byte("log_level: loud\n"), 0644))
	cfg, err := Load(level)
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "log_level")

	cfg.LogLevel = "debug"
	assert.NoError(t, cfg.Validate())

	t.Setenv("TIMETABLE_PRETTY", "maybe")
	_, err = Load(filepath.Join(dir, "level.yaml"))
	assert.ErrorContains(t, err, "TIMETABLE_PRETTY")
}

func TestValidateOutputFile(t *testing.T) {
	cfg := &Config{LogLevel: "info", OutputFile: "nested/timetable.json"}
	assert.Error(t, cfg.Validate())

	cfg.OutputFile = "timetable.json"
	assert.NoError(t, cfg.Validate())
}
