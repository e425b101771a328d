/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"
	"net/url"
	"strconv"
	"strings"

	"github.com/flamego/session"

	"github.com/humaidq/bmicalc/bmi"
)

// FormState is the controller state shown by the page.
type FormState string

const (
	// StateIdle is the form before a trigger, or after the inputs changed.
	StateIdle FormState = "idle"
	// StateComputed shows the results of the last trigger.
	StateComputed FormState = "computed"
)

const formValuesSessionKey = "bmi_form_values"

// FormValues are the raw inputs kept between triggers so the fields keep
// their values. Results are never stored.
type FormValues struct {
	Name     string
	Gender   bmi.Gender
	HeightCm float64
	WeightKg float64
}

func init() {
	gob.Register(FormValues{})
}

// Input converts the form values for assessment.
func (f FormValues) Input() bmi.Input {
	return bmi.Input{
		Name:     f.Name,
		Gender:   f.Gender,
		HeightCm: f.HeightCm,
		WeightKg: f.WeightKg,
	}
}

// HeightValue formats the height for the number input; unset renders empty.
func (f FormValues) HeightValue() string {
	return formatInputNumber(f.HeightCm)
}

// WeightValue formats the weight for the number input; unset renders empty.
func (f FormValues) WeightValue() string {
	return formatInputNumber(f.WeightKg)
}

func formatInputNumber(v float64) string {
	if v == 0 {
		return ""
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func defaultFormValues() FormValues {
	return FormValues{Gender: bmi.GenderFemale}
}

func loadFormValues(s session.Session) FormValues {
	if form, ok := s.Get(formValuesSessionKey).(FormValues); ok {
		return form
	}

	return defaultFormValues()
}

func saveFormValues(s session.Session, form FormValues) {
	s.Set(formValuesSessionKey, form)
}

// parseFormValues reads the submitted fields the way the widgets would hand
// them over: numbers that do not parse are unset, and values are clamped to
// the widget ranges.
func parseFormValues(form url.Values) FormValues {
	return FormValues{
		Name:     strings.TrimSpace(form.Get("name")),
		Gender:   bmi.ParseGender(form.Get("gender")),
		HeightCm: bmi.ClampHeight(parseNumber(form.Get("height_cm"))),
		WeightKg: bmi.ClampWeight(parseNumber(form.Get("weight_kg"))),
	}
}

// parseNumber accepts a decimal comma as well as a decimal point.
func parseNumber(value string) float64 {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	if value == "" {
		return 0
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return v
}
