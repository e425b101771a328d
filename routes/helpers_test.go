// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/bmicalc/bmi"
)

type testSession struct {
	id    string
	data  map[interface{}]interface{}
	flash interface{}
}

func newTestSession() *testSession {
	return &testSession{
		id:   "test-session",
		data: make(map[interface{}]interface{}),
	}
}

func (s *testSession) ID() string {
	return s.id
}

func (s *testSession) RegenerateID(http.ResponseWriter, *http.Request) error {
	return nil
}

func (s *testSession) Get(key interface{}) interface{} {
	return s.data[key]
}

func (s *testSession) Set(key, val interface{}) {
	s.data[key] = val
}

func (s *testSession) SetFlash(val interface{}) {
	s.flash = val
}

func (s *testSession) Delete(key interface{}) {
	delete(s.data, key)
}

func (s *testSession) Flush() {
	s.data = make(map[interface{}]interface{})
}

func (s *testSession) Encode() ([]byte, error) {
	return nil, nil
}

func (s *testSession) HasChanged() bool {
	return true
}

type testCSRF struct {
	token string
}

func (c testCSRF) Token() string {
	return c.token
}

func (c testCSRF) ValidToken(string) bool {
	return true
}

func (c testCSRF) Error(http.ResponseWriter) {}

func (c testCSRF) Validate(flamego.Context) {}

type templateStub struct {
	rw     http.ResponseWriter
	name   string
	status int
}

func (s *templateStub) HTML(status int, name string) {
	s.name = name
	s.status = status
	s.rw.WriteHeader(status)
}

type calculatorTestApp struct {
	f        *flamego.Flame
	session  *testSession
	data     template.Data
	template *templateStub
}

func newCalculatorTestApp(lang bmi.Language) *calculatorTestApp {
	app := &calculatorTestApp{
		f:        flamego.New(),
		session:  newTestSession(),
		data:     template.Data{},
		template: &templateStub{},
	}

	app.f.Map(NewCalculatorConfig(lang, 0))
	app.f.Use(func(c flamego.Context) {
		app.template.rw = c.ResponseWriter()
		c.MapTo(app.session, (*session.Session)(nil))
		c.MapTo(app.template, (*template.Template)(nil))
		c.Map(app.data)
		c.Next()
	})

	app.f.Get("/", CalculatorForm)
	app.f.Post("/calculate", Calculate)
	app.f.Post("/reset", ResetForm)
	app.f.Post("/api/bmi", APIAssess)

	return app
}

func (a *calculatorTestApp) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.f.ServeHTTP(rec, req)

	return rec
}

func (a *calculatorTestApp) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	a.f.ServeHTTP(rec, req)

	return rec
}

func (a *calculatorTestApp) postRaw(t *testing.T, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	a.f.ServeHTTP(rec, req)

	return rec
}

func (a *calculatorTestApp) postJSON(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.f.ServeHTTP(rec, req)

	return rec
}

func calculatorForm(name, gender, height, weight string) url.Values {
	return url.Values{
		"name":      {name},
		"gender":    {gender},
		"height_cm": {height},
		"weight_kg": {weight},
	}
}
