/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package static

import "embed"

// Static contains the stylesheet served under /static.
//
//go:embed *.css
var Static embed.FS
