/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/bmicalc/bmi"
)

// renderBMIChart draws the ideal-versus-current bar chart as an HTML string.
func renderBMIChart(chart bmi.Chart, m *bmi.Messages, chartID string) (string, error) {
	xAxis := make([]string, 0, len(chart.Bars))
	barData := make([]opts.BarData, 0, len(chart.Bars))
	for _, b := range chart.Bars {
		name := m.BarName(b.Kind)
		xAxis = append(xAxis, name)
		barData = append(barData, opts.BarData{
			Name:  name,
			Value: b.Value,
			ItemStyle: &opts.ItemStyle{
				Color: b.Color,
			},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "400px",
			ChartID: chartID,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: m.ChartTitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: m.ChartYAxis,
			Min:  chart.YMin,
			Max:  chart.YMax,
		}),
	)

	// Labels sit on top of each bar with one decimal.
	bar.SetXAxis(xAxis).
		AddSeries(m.ChartYAxis, barData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Position:  "top",
				Formatter: string(opts.FuncOpts("function (p) { return Number(p.value).toFixed(1); }")),
			}),
		)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
