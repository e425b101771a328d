/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bmi

import "strings"

// Gender is informational only and never affects the computation.
type Gender string

// Gender values offered by the form.
const (
	GenderFemale         Gender = "Female"
	GenderMale           Gender = "Male"
	GenderPreferNotToSay Gender = "PreferNotToSay"
)

// Genders lists the selectable options in display order.
var Genders = []Gender{GenderFemale, GenderMale, GenderPreferNotToSay}

// ParseGender maps a submitted value to a Gender, falling back to
// GenderPreferNotToSay for anything unrecognised.
func ParseGender(value string) Gender {
	value = strings.TrimSpace(value)
	for _, g := range Genders {
		if strings.EqualFold(value, string(g)) {
			return g
		}
	}

	return GenderPreferNotToSay
}
