/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	htmltemplate "html/template"
	"net/http"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/humaidq/bmicalc/bmi"
	"github.com/humaidq/bmicalc/logging"
)

var calculatorLogger = logging.Logger(logging.SourceCalculator)

// CalculatorConfig carries the page language and progress pacing. It is
// mapped into the flamego injector at startup.
type CalculatorConfig struct {
	Messages      *bmi.Messages
	ProgressDelay time.Duration
}

// NewCalculatorConfig returns the configuration for a language.
func NewCalculatorConfig(lang bmi.Language, progressDelay time.Duration) *CalculatorConfig {
	return &CalculatorConfig{
		Messages:      bmi.MessagesFor(lang),
		ProgressDelay: progressDelay,
	}
}

// GenderOption is one entry of the gender select.
type GenderOption struct {
	Value    bmi.Gender
	Label    string
	Selected bool
}

// CalculatorForm renders the form in the idle state with the last submitted
// values, if any.
func CalculatorForm(c flamego.Context, s session.Session, t template.Template, data template.Data, cfg *CalculatorConfig) {
	form := loadFormValues(s)

	setCalculatorPage(data, cfg.Messages, form)
	data["State"] = StateIdle

	t.HTML(http.StatusOK, "calculator")
}

// Calculate handles one trigger: pacing, validation, computation and chart.
func Calculate(c flamego.Context, s session.Session, t template.Template, data template.Data, cfg *CalculatorConfig) {
	if err := c.Request().ParseForm(); err != nil {
		calculatorLogger.Error("failed to parse calculator form", "error", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	form := parseFormValues(c.Request().Form)
	saveFormValues(s, form)

	m := cfg.Messages
	setCalculatorPage(data, m, form)
	data["State"] = StateComputed

	steps, err := runProgress(c.Request().Context(), m, cfg.ProgressDelay)
	if err != nil {
		calculatorLogger.Warn("calculation abandoned", "error", err)
		return
	}
	data["ProgressSteps"] = steps
	data["ProgressMessage"] = m.ProgressMessage
	data["ProgressSummary"] = m.ProgressSummary(form.Name)

	assessment, err := bmi.Assess(form.Input())
	if err != nil {
		recordValidationError(err)
		data["ResultError"] = m.ErrorMessage(err)
		calculatorLogger.Info("assessment rejected", "reason", err.Error())
		t.HTML(http.StatusOK, "calculator")
		return
	}

	recordAssessment(assessment)

	assessmentID := uuid.New()
	result := m.ResultSentence(assessment)
	data["Result"] = result
	data["Assessment"] = assessment

	chartHTML, err := renderBMIChart(assessment.Chart, m, bmiChartID(assessmentID))
	if err != nil {
		calculatorLogger.Error("failed to render chart", "assessment_id", assessmentID, "error", err)
	} else {
		data["Chart"] = htmltemplate.HTML(chartHTML) //nolint:gosec // HTML comes from the go-echarts renderer.
	}

	qr, err := resultQRCodeURL(result)
	if err != nil {
		calculatorLogger.Warn("failed to render result qr code", "assessment_id", assessmentID, "error", err)
	} else {
		data["ResultQRCode"] = qr
	}

	calculatorLogger.Info("assessment computed",
		"assessment_id", assessmentID,
		"bmi", assessment.Rounded(),
		"category", assessment.Category.Slug(),
		"gender", assessment.Gender,
	)

	t.HTML(http.StatusOK, "calculator")
}

// ResetForm forgets the remembered inputs and returns to the empty form.
func ResetForm(c flamego.Context, s session.Session, cfg *CalculatorConfig) {
	s.Delete(formValuesSessionKey)
	SetInfoFlash(s, cfg.Messages.Cleared)
	c.Redirect("/", http.StatusSeeOther)
}

func setCalculatorPage(data template.Data, m *bmi.Messages, form FormValues) {
	setSiteTitle(data, m.Title)

	data["Msg"] = m
	data["Form"] = form
	data["GenderOptions"] = genderOptions(m, form.Gender)
	data["MaxHeight"] = bmi.MaxHeightCm
	data["MinWeight"] = bmi.MinWeightKg
	data["MaxWeight"] = bmi.MaxWeightKg
}

func genderOptions(m *bmi.Messages, selected bmi.Gender) []GenderOption {
	options := make([]GenderOption, 0, len(bmi.Genders))
	for _, g := range bmi.Genders {
		options = append(options, GenderOption{
			Value:    g,
			Label:    m.Genders[g],
			Selected: g == selected,
		})
	}

	return options
}

func bmiChartID(id uuid.UUID) string {
	return "bmi_chart_" + strings.ReplaceAll(id.String(), "-", "")
}

// ========== JSON API ==========

type assessmentRequest struct {
	Name     string  `json:"name"`
	Gender   string  `json:"gender"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
}

type assessmentResponse struct {
	Name     string       `json:"name"`
	Gender   bmi.Gender   `json:"gender"`
	BMI      float64      `json:"bmi"`
	Category bmi.Category `json:"category"`
	Label    string       `json:"label"`
	Message  string       `json:"message"`
	Chart    bmi.Chart    `json:"chart"`
}

type assessmentErrorResponse struct {
	Error   string             `json:"error"`
	Kind    bmi.ValidationKind `json:"kind,omitempty"`
	Message string             `json:"message,omitempty"`
}

// APIAssess is the JSON form of a trigger.
func APIAssess(c flamego.Context, cfg *CalculatorConfig) {
	var req assessmentRequest
	if err := decodeJSONBody(c, &req); err != nil {
		calculatorLogger.Warn("invalid assessment request", "error", err)
		writeJSONStatus(c, http.StatusBadRequest, assessmentErrorResponse{Error: errInvalidRequestBody.Error()})
		return
	}

	form := FormValues{
		Name:     req.Name,
		Gender:   bmi.ParseGender(req.Gender),
		HeightCm: bmi.ClampHeight(req.HeightCm),
		WeightKg: bmi.ClampWeight(req.WeightKg),
	}

	assessment, err := bmi.Assess(form.Input())
	if err != nil {
		recordValidationError(err)

		resp := assessmentErrorResponse{Error: err.Error(), Message: cfg.Messages.ErrorMessage(err)}
		var verr *bmi.ValidationError
		if errors.As(err, &verr) {
			resp.Kind = verr.Kind
		}

		writeJSONStatus(c, http.StatusUnprocessableEntity, resp)
		return
	}

	recordAssessment(assessment)

	writeJSONStatus(c, http.StatusOK, assessmentResponse{
		Name:     assessment.Name,
		Gender:   assessment.Gender,
		BMI:      assessment.Rounded(),
		Category: assessment.Category,
		Label:    assessment.Category.String(),
		Message:  cfg.Messages.ResultSentence(assessment),
		Chart:    assessment.Chart,
	})
}

// Healthz reports liveness.
func Healthz(c flamego.Context) {
	c.ResponseWriter().Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.ResponseWriter().WriteHeader(http.StatusOK)
	_, _ = c.ResponseWriter().Write([]byte("ok"))
}
