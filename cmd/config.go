/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/bmicalc/bmi"
)

const runtimeEnvVar = "BMI_ENV"

// webConfig is the resolved configuration of the start command.
type webConfig struct {
	Port          string
	Lang          bmi.Language
	ProgressDelay time.Duration
	CSRFSecret    string
	Production    bool
	Dev           bool
}

// LoadDotEnv loads environment variables from path when the file exists.
// Variables already present in the environment win.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

func parseRuntimeEnv(value string) (production bool, err error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "development", "dev":
		return false, nil
	case "production", "prod":
		return true, nil
	}

	return false, errInvalidRuntimeEnv
}

func webConfigFromCommand(cmd *cli.Command) (*webConfig, error) {
	production, err := parseRuntimeEnv(cmd.String("env"))
	if err != nil {
		return nil, err
	}

	lang, err := bmi.ParseLanguage(cmd.String("lang"))
	if err != nil {
		return nil, err
	}

	delay := cmd.Duration("progress-delay")
	if delay < 0 {
		return nil, errInvalidProgressDelay
	}

	secret := strings.TrimSpace(cmd.String("csrf-secret"))
	if secret == "" {
		if production {
			return nil, errCSRFSecretRequired
		}

		secret = uuid.NewString()
		appLogger.Warn("CSRF_SECRET not set, using an ephemeral secret")
	}

	return &webConfig{
		Port:          cmd.String("port"),
		Lang:          lang,
		ProgressDelay: delay,
		CSRFSecret:    secret,
		Production:    production,
		Dev:           cmd.Bool("dev"),
	}, nil
}
