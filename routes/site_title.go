/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"os"
	"strings"

	"github.com/flamego/template"
)

const siteTitleEnvVar = "SITE_TITLE"

// setSiteTitle uses SITE_TITLE when set, otherwise the localized fallback.
func setSiteTitle(data template.Data, fallback string) {
	title := strings.TrimSpace(os.Getenv(siteTitleEnvVar))
	if title == "" {
		title = fallback
	}

	data["PageTitle"] = title
}
