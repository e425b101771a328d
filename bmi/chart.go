/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bmi

import (
	"fmt"
	"math"
)

// IdealBMI is the reference value drawn next to the user's BMI.
const IdealBMI = 24.9

// Chart defaults.
const (
	IdealBarColor   = "#378C3A"
	CurrentBarColor = "#803131"

	defaultYMax  = 40.0
	yMaxHeadroom = 10.0
)

// BarKind tells the renderer which localized label a bar gets.
type BarKind string

// Bar kinds in display order.
const (
	BarIdeal   BarKind = "ideal"
	BarCurrent BarKind = "current"
)

// Bar is one bar of the comparison chart.
type Bar struct {
	Kind  BarKind `json:"kind"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Label is the value annotation drawn above the bar.
func (b Bar) Label() string {
	return fmt.Sprintf("%.1f", b.Value)
}

// Chart is the renderer-independent model of the comparison chart.
type Chart struct {
	Bars []Bar   `json:"bars"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// NewChart builds the ideal-versus-current comparison for a BMI value. The
// y-axis grows past 40 so the current bar is never clipped.
func NewChart(bmi float64) Chart {
	return Chart{
		Bars: []Bar{
			{Kind: BarIdeal, Name: "Ideal BMI", Value: IdealBMI, Color: IdealBarColor},
			{Kind: BarCurrent, Name: "Your BMI", Value: bmi, Color: CurrentBarColor},
		},
		YMin: 0,
		YMax: math.Max(defaultYMax, bmi+yMaxHeadroom),
	}
}
