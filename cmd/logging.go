/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/humaidq/bmicalc/logging"

var appLogger = logging.Logger(logging.SourceApp)
var serverStdLogger = logging.StdLogger(logging.SourceWeb)
