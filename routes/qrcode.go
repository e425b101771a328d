/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/base64"
	"fmt"
	htmltemplate "html/template"

	"github.com/skip2/go-qrcode"
)

// resultQRCodeURL encodes the result sentence as a PNG data URL.
func resultQRCodeURL(text string) (htmltemplate.URL, error) {
	png, err := qrcode.Encode(text, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate qr code: %w", err)
	}

	return htmltemplate.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), nil //nolint:gosec // PNG bytes are produced locally.
}
