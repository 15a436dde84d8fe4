package controllers

import (
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
)

const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// loadSettings reads the configuration selected by the global flags. A missing
// config file is not an error: defaults and environment overrides apply.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	token, _ := cmd.Flags().GetString("token")
	host, _ := cmd.Flags().GetString("host")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
		} else {
			configPath = found
		}
	}
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
	}

	settings, err := entities.LoadSettings(configPath, entities.SettingsOverrides{Host: host, Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if settings.Token != "" && settings.APIEndpoint().IsHTTP() {
		logger.Warnf("The access token is sent in clear text to %s", settings.APIEndpoint())
	}

	configureLogFile(settings.LogFile)
	return settings, nil
}

// commandContext is the context cobra was executed with, canceled on interrupt
// by main. Commands run directly, as in tests, get a background context.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// configureLogFile mirrors the log output into a rotating file.
func configureLogFile(path string) {
	if path == "" {
		return
	}
	logger.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}))
}

// describeFailure renders err for the end user according to its kind.
func describeFailure(err error) string {
	switch entities.KindOf(err) {
	case entities.KindAuthentication, entities.KindTokenExpired:
		return fmt.Sprintf("authentication failed: %v (set --token or PINGCODE_TOKEN)", err)
	case entities.KindOperationCanceled:
		return "operation canceled"
	case entities.KindRateLimited:
		return fmt.Sprintf("rate limit exceeded, try again later: %v", err)
	case entities.KindParse:
		return fmt.Sprintf("unexpected response from server: %v", err)
	default:
		return err.Error()
	}
}
