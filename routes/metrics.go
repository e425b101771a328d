/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"sync"

	"github.com/flamego/flamego"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/humaidq/bmicalc/bmi"
)

var (
	metricsOnce sync.Once

	assessmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bmi",
			Name:      "assessments_total",
			Help:      "Count of successful assessments by category.",
		},
		[]string{"category"},
	)

	validationErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bmi",
			Name:      "validation_errors_total",
			Help:      "Count of rejected triggers by missing field.",
		},
		[]string{"kind"},
	)

	bmiValues = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bmi",
			Name:      "value",
			Help:      "Distribution of computed BMI values.",
			Buckets:   []float64{18.5, 25, 30, 35, 40},
		},
	)
)

// RegisterMetrics registers the calculator metrics (idempotent).
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(assessmentsTotal, validationErrorsTotal, bmiValues)
	})
}

// Metrics serves the Prometheus exposition format.
func Metrics(c flamego.Context) {
	promhttp.Handler().ServeHTTP(c.ResponseWriter(), c.Request().Request)
}

func recordAssessment(a *bmi.Assessment) {
	assessmentsTotal.WithLabelValues(a.Category.Slug()).Inc()
	bmiValues.Observe(a.BMI)
}

func recordValidationError(err error) {
	var verr *bmi.ValidationError
	if errors.As(err, &verr) {
		validationErrorsTotal.WithLabelValues(string(verr.Kind)).Inc()
	}
}
