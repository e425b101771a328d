// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
)

func TestSetFlashHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		set     func(session.Session, string)
		wantTyp FlashType
	}{
		{name: "error", set: SetErrorFlash, wantTyp: FlashError},
		{name: "info", set: SetInfoFlash, wantTyp: FlashInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession()
			tt.set(s, "hello")

			msg, ok := s.flash.(FlashMessage)
			if !ok {
				t.Fatalf("flash has unexpected type: %T", s.flash)
			}

			if msg.Type != tt.wantTyp || msg.Message != "hello" {
				t.Fatalf("unexpected flash message: %#v", msg)
			}
		})
	}
}

func TestFlashInjector(t *testing.T) {
	t.Parallel()

	handler, ok := FlashInjector().(func(session.Flash, template.Data))
	if !ok {
		t.Fatalf("unexpected FlashInjector handler type")
	}

	data := template.Data{}
	handler(FlashMessage{Type: FlashError, Message: "boom"}, data)

	msg, ok := data["Flash"].(FlashMessage)
	if !ok || msg.Message != "boom" {
		t.Fatalf("expected flash in template data, got %#v", data["Flash"])
	}

	empty := template.Data{}
	handler(nil, empty)
	if _, ok := empty["Flash"]; ok {
		t.Fatal("expected no flash when none was set")
	}
}

func TestCSRFInjector(t *testing.T) {
	t.Parallel()

	handler, ok := CSRFInjector().(func(csrf.CSRF, template.Data))
	if !ok {
		t.Fatalf("unexpected CSRFInjector handler type")
	}

	data := template.Data{}
	handler(testCSRF{token: "token-123"}, data)

	if got, _ := data["csrf_token"].(string); got != "token-123" {
		t.Fatalf("expected csrf token in template data, got %q", got)
	}
}

func TestResponseHeaderMiddleware(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	f.Use(NoCacheHeaders())
	f.Use(SecurityHeaders())
	f.Post("/calculate", func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/calculate", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	want := map[string]string{
		"Cache-Control":          "no-store, max-age=0",
		"X-Robots-Tag":           "noindex, nofollow, noarchive, nosnippet",
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Fatalf("expected %s %q, got %q", header, value, got)
		}
	}
}

func TestClientIPPrefersForwardedHeaders(t *testing.T) {
	t.Parallel()

	var got string

	f := flamego.New()
	f.Get("/", func(c flamego.Context) {
		got = clientIP(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", " 203.0.113.7 , 10.0.0.1")
	f.ServeHTTP(httptest.NewRecorder(), req)

	if got != "203.0.113.7" {
		t.Fatalf("expected forwarded client ip, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "198.51.100.4")
	f.ServeHTTP(httptest.NewRecorder(), req)

	if got != "198.51.100.4" {
		t.Fatalf("expected real ip header, got %q", got)
	}
}

func TestSetSiteTitleUsesEnvironmentValue(t *testing.T) {
	t.Setenv(siteTitleEnvVar, "  Clinic BMI  ")

	data := template.Data{}
	setSiteTitle(data, "fallback")

	if title, _ := data["PageTitle"].(string); title != "Clinic BMI" {
		t.Fatalf("expected site title from environment, got %q", title)
	}
}

func TestSetSiteTitleFallsBack(t *testing.T) {
	t.Setenv(siteTitleEnvVar, "   ")

	data := template.Data{}
	setSiteTitle(data, "Calculadora de IMC")

	if title, _ := data["PageTitle"].(string); title != "Calculadora de IMC" {
		t.Fatalf("expected fallback title, got %q", title)
	}
}
