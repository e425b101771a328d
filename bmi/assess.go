/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bmi

import (
	"math"
	"strings"
)

// Input holds the raw form values of one trigger.
type Input struct {
	Name     string
	Gender   Gender
	HeightCm float64
	WeightKg float64
}

// Assessment is the result of one trigger. It is never cached; every trigger
// builds a new one from the current inputs.
type Assessment struct {
	Name     string
	Gender   Gender
	HeightCm float64
	WeightKg float64
	BMI      float64
	Category Category
	Chart    Chart
}

// Assess validates the input, computes the BMI, classifies it and builds the
// chart. On validation failure, or when the height is so small that the BMI
// is not finite, it returns a *ValidationError and no assessment.
func Assess(in Input) (*Assessment, error) {
	if err := Validate(in.Name, in.HeightCm, in.WeightKg); err != nil {
		return nil, err
	}

	value := Compute(in.WeightKg, in.HeightCm)
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return nil, &ValidationError{Kind: InvalidHeight}
	}

	return &Assessment{
		Name:     strings.TrimSpace(in.Name),
		Gender:   in.Gender,
		HeightCm: in.HeightCm,
		WeightKg: in.WeightKg,
		BMI:      value,
		Category: Classify(value),
		Chart:    NewChart(value),
	}, nil
}

// Rounded returns the BMI rounded to two decimals.
func (a *Assessment) Rounded() float64 {
	return Round2(a.BMI)
}

// Display formats the BMI with two decimals.
func (a *Assessment) Display() string {
	return formatBMI(a.BMI)
}
