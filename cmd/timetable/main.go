// Package main provides the CLI entry point for the timetable converter.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Bhup-GitHUB/tt-new/pkg/timetable"
	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/config"
	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/output"
	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/parser"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type cliFlags struct {
	configPath  string
	inputPath   string
	outputDir   string
	outputFile  string
	coursesPath string
	logLevel    string
	compact     bool
}

func main() {
	log.Logger = newLogger(os.Stderr, zerolog.InfoLevel)

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Error processing Excel file")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "timetable",
		Short: "Convert a class timetable workbook to JSON",
		Long: `timetable reads a department timetable workbook (one sheet per program),
extracts the weekly grid of every class section and writes it as JSON
for the timetable front end.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.configPath, "config", "c", config.DefaultPath, "Config file path")
	rootCmd.Flags().StringVarP(&f.inputPath, "input", "i", "", "Input workbook path (default: ./timetable.xlsx)")
	rootCmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Output directory (default: ./src/data)")
	rootCmd.Flags().StringVar(&f.outputFile, "output-file", "", "Output file name (default: timetable.json)")
	rootCmd.Flags().StringVar(&f.coursesPath, "courses", "", "YAML file mapping course codes to names")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&f.compact, "compact", false, "Write JSON without indentation")

	return rootCmd
}

func run(cmd *cobra.Command, f *cliFlags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, f, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Level())

	names, err := loadCourseNames(cfg)
	if err != nil {
		return err
	}

	logger.Info().Str("input", cfg.InputPath).Msg("Processing Excel file")

	data, err := timetable.Convert(cfg.InputPath, timetable.Options{
		CourseNames: names,
		Logger:      &logger,
	})
	if errors.Is(err, timetable.ErrFileNotFound) {
		logger.Error().Str("path", cfg.InputPath).Msg("Excel file not found")
		logger.Error().Msgf("Please add your %s file to the project root", filepath.Base(cfg.InputPath))
		return nil
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	path, err := output.WriteFile(cfg.OutputDir, cfg.OutputFile, data, cfg.PrettyJSON())
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info().Str("output", path).Msg("Data processed successfully")
	logger.Info().Int("sheets", data.Len()).Msgf("Generated data for %d sheets", data.Len())
	for _, sheetName := range data.Keys() {
		sheet, _ := data.Get(sheetName)
		logger.Info().
			Str("sheet", sheetName).
			Int("classes", sheet.Len()).
			Msgf("%s: %d classes", sheetName, sheet.Len())
	}

	return nil
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, f *cliFlags, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputPath = f.inputPath
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if flags.Changed("output-file") {
		cfg.OutputFile = f.outputFile
	}
	if flags.Changed("courses") {
		cfg.CourseNamesPath = f.coursesPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("compact") {
		pretty := !f.compact
		cfg.Pretty = &pretty
	}
}

// loadCourseNames merges inline course names with the course-name file.
// File entries win.
func loadCourseNames(cfg *config.Config) (parser.CourseNames, error) {
	names := parser.CourseMap(cfg.CourseNames)
	if cfg.CourseNamesPath == "" {
		return names, nil
	}
	fromFile, err := parser.LoadCourseNames(cfg.CourseNamesPath)
	if err != nil {
		return nil, err
	}
	return names.Merge(fromFile), nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
