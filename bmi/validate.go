/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bmi

import "strings"

// ValidationKind identifies which input is missing or unusable.
type ValidationKind string

// Validation kinds in precedence order.
const (
	MissingName   ValidationKind = "missing_name"
	MissingHeight ValidationKind = "missing_height"
	MissingWeight ValidationKind = "missing_weight"

	// InvalidHeight is reported by Assess, after validation, when the height
	// is set but too small for the BMI to be a finite number.
	InvalidHeight ValidationKind = "invalid_height"
)

var validationSentinels = map[ValidationKind]error{
	MissingName:   ErrNameRequired,
	MissingHeight: ErrHeightRequired,
	MissingWeight: ErrWeightRequired,
	InvalidHeight: ErrHeightOutOfRange,
}

// ValidationError reports the first missing or unusable input.
type ValidationError struct {
	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	return validationSentinels[e.Kind].Error()
}

// Is matches the sentinel error for the kind, so callers can use errors.Is
// with ErrNameRequired, ErrHeightRequired and ErrWeightRequired.
func (e *ValidationError) Is(target error) bool {
	return validationSentinels[e.Kind] == target
}

// Validate checks the name, then the height, then the weight. Zero is the
// unset value for both numbers; range limits are left to input clamping.
func Validate(name string, heightCm, weightKg float64) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Kind: MissingName}
	}
	if heightCm == 0 {
		return &ValidationError{Kind: MissingHeight}
	}
	if weightKg == 0 {
		return &ValidationError{Kind: MissingWeight}
	}

	return nil
}
