/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"fmt"
	"time"

	"github.com/humaidq/bmicalc/bmi"
)

// progressSteps is the number of pacing steps shown per trigger.
const progressSteps = 5

// ProgressStep is one displayed pacing step.
type ProgressStep struct {
	Step   int
	Total  int
	Detail string
}

// Percent is the completion share after this step.
func (p ProgressStep) Percent() int {
	return p.Step * 100 / p.Total
}

// runProgress paces a trigger through its steps. The steps carry no work and
// cannot fail; only cancellation of ctx stops them early.
func runProgress(ctx context.Context, m *bmi.Messages, delay time.Duration) ([]ProgressStep, error) {
	steps := make([]ProgressStep, 0, progressSteps)

	for i := 1; i <= progressSteps; i++ {
		step := ProgressStep{Step: i, Total: progressSteps, Detail: m.ProgressStep(i, progressSteps)}
		calculatorLogger.Debug(m.ProgressMessage, "step", i, "total", progressSteps)

		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return steps, fmt.Errorf("progress step %d: %w", i, ctx.Err())
			case <-timer.C:
			}
		}

		steps = append(steps, step)
	}

	return steps, nil
}
