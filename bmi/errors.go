/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bmi

import "errors"

var (
	// ErrNameRequired is reported when the name is empty after trimming.
	ErrNameRequired = errors.New("name required")
	// ErrHeightRequired is reported when the height is unset (zero).
	ErrHeightRequired = errors.New("height required")
	// ErrWeightRequired is reported when the weight is unset (zero).
	ErrWeightRequired = errors.New("weight required")
	// ErrHeightOutOfRange is reported when a height is too small to give a
	// finite BMI.
	ErrHeightOutOfRange = errors.New("height out of range")

	errUnknownLanguage = errors.New("unknown language")
)
