/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/bmicalc/cmd"
)

func main() {
	if err := cmd.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}

	app := &cli.Command{
		Name:  "bmicalc",
		Usage: "BMI calculator - body mass index form",
		Commands: []*cli.Command{
			cmd.CmdStart,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
