package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bgricker/buildreport/internal/config"
	"github.com/bgricker/buildreport/internal/parser"
	"github.com/bgricker/buildreport/internal/platform"
	"github.com/bgricker/buildreport/internal/profile"
	"github.com/bgricker/buildreport/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// automationVars are the indicator variables meaning "running under
// automation". Any non-empty value counts.
var automationVars = []string{"CI", "GITHUB_ACTIONS", "AUTOMATED_TESTING"}

const productionVar = "PRODUCTION_TEST"

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("determine working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return config.Config{}, err
	}
	flags, err := gatherFlags(cmd)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyFlags(&cfg, flags)
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// buildReport runs the pipeline up to the immutable Report snapshot: read
// both logs, parse, resolve the environment profile, aggregate. The test log
// is required; a build log that legitimately does not exist degrades to
// zero build metrics so the report still comes out FAILED instead of the
// run aborting. Readable logs with no recognizable markers never abort.
func buildReport(cfg config.Config, logger *logrus.Logger, testLogPath, buildLogPath string) (report.Report, error) {
	testText, err := readLog("test", testLogPath)
	if err != nil {
		return report.Report{}, err
	}
	buildText, err := readLog("build", buildLogPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return report.Report{}, err
		}
		logger.WithField("log", buildLogPath).Warn("build log missing; reporting the build as failed")
		buildText = ""
	}

	tests := parser.ParseTest(testText)
	if tests.Total == 0 {
		logger.WithField("log", testLogPath).Debug("no test case markers found; test metrics degraded to zero")
	}
	build := parser.ParseBuild(buildText)
	if !build.Success {
		logger.WithField("log", buildLogPath).Debug("no build completion marker found")
	}

	env := profile.Resolve(resolveSignals(cfg))
	logger.WithFields(logrus.Fields{
		"environment": env.Name,
		"target":      env.TargetDuration,
	}).Debug("resolved environment profile")

	return report.New(cfg.Title, env, tests, build, platform.Detect(), parser.FailureLines(testText)), nil
}

// resolveSignals gathers the ambient indicators exactly once; everything
// below the CLI receives the resolved profile as an explicit value.
func resolveSignals(cfg config.Config) profile.Signals {
	sig := profile.Signals{
		Override:   cfg.Environment,
		Production: os.Getenv(productionVar) != "",
	}
	for _, name := range automationVars {
		if os.Getenv(name) != "" {
			sig.Automation = true
			break
		}
	}
	return sig
}

// readLog loads one captured log. A missing or unreadable file is a hard
// failure; an empty file is not.
func readLog(kind, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s log %q: %w", kind, path, err)
	}
	return string(data), nil
}
