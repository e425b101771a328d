// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/humaidq/bmicalc/bmi"
)

func TestRunProgressEmitsFiveSteps(t *testing.T) {
	t.Parallel()

	steps, err := runProgress(context.Background(), bmi.MessagesFor(bmi.English), time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(steps) != progressSteps {
		t.Fatalf("expected %d steps, got %d", progressSteps, len(steps))
	}

	for i, step := range steps {
		if step.Step != i+1 || step.Total != progressSteps {
			t.Fatalf("unexpected step %d: %#v", i, step)
		}
	}

	if steps[0].Detail != "Step 1/5" || steps[4].Percent() != 100 || steps[0].Percent() != 20 {
		t.Fatalf("unexpected step text: %#v", steps)
	}
}

func TestRunProgressStopsOnCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	steps, err := runProgress(ctx, bmi.MessagesFor(bmi.Portuguese), time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if len(steps) != 0 {
		t.Fatalf("expected no completed steps, got %d", len(steps))
	}
}

func TestRunProgressWithoutDelayIgnoresContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	steps, err := runProgress(ctx, bmi.MessagesFor(bmi.Portuguese), 0)
	if err != nil || len(steps) != progressSteps {
		t.Fatalf("expected all steps without delay, got %d, %v", len(steps), err)
	}
}
