/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/flamego/flamego"
)

const maxJSONBodyBytes = 64 << 10

func decodeJSONBody(c flamego.Context, dst any) error {
	body := io.LimitReader(c.Request().Body().ReadCloser(), maxJSONBodyBytes)

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}

	return nil
}

// writeJSONStatus encodes the payload before writing the header, so an
// unencodable payload is reported as a 500 instead of an empty response.
func writeJSONStatus(c flamego.Context, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		calculatorLogger.Error("Error encoding JSON response", "error", err)
		http.Error(c.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)
	if _, err := c.ResponseWriter().Write(buf.Bytes()); err != nil {
		calculatorLogger.Error("Error writing JSON response", "error", err)
	}
}
