/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bmi

import "math"

// Compute returns weight divided by height in meters squared. heightCm must
// be non-zero; Validate guarantees that before Compute is reached.
func Compute(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// Round2 rounds to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Input field bounds mirrored from the form widgets.
const (
	MaxHeightCm = 300.0
	MinWeightKg = 1.0
	MaxWeightKg = 350.0
)

// ClampHeight keeps a height inside [0, MaxHeightCm]. Zero stays zero and
// means unset.
func ClampHeight(heightCm float64) float64 {
	if math.IsNaN(heightCm) || heightCm < 0 {
		return 0
	}

	return math.Min(heightCm, MaxHeightCm)
}

// ClampWeight keeps a non-zero weight inside [MinWeightKg, MaxWeightKg].
// Zero stays zero and means unset.
func ClampWeight(weightKg float64) float64 {
	if math.IsNaN(weightKg) || weightKg == 0 {
		return 0
	}

	return math.Max(MinWeightKg, math.Min(weightKg, MaxWeightKg))
}
