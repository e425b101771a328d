/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bmi

// Category is a BMI health classification band.
type Category int

// Categories in ascending BMI order.
const (
	Underweight Category = iota
	Normal
	Overweight
	ObesityClassI
	ObesityClassII
	ObesityClassIII
)

// band is a category with its exclusive upper bound.
type band struct {
	upper    float64
	category Category
}

// bands are evaluated in ascending order; the first match wins. Anything not
// below the last upper bound is ObesityClassIII.
var bands = []band{
	{upper: 18.5, category: Underweight},
	{upper: 25, category: Normal},
	{upper: 30, category: Overweight},
	{upper: 35, category: ObesityClassI},
	{upper: 40, category: ObesityClassII},
}

// Categories lists all categories in ascending order.
var Categories = []Category{
	Underweight,
	Normal,
	Overweight,
	ObesityClassI,
	ObesityClassII,
	ObesityClassIII,
}

var categoryNames = map[Category]string{
	Underweight:     "Underweight",
	Normal:          "Normal",
	Overweight:      "Overweight",
	ObesityClassI:   "Obesity Class I",
	ObesityClassII:  "Obesity Class II",
	ObesityClassIII: "Obesity Class III",
}

var categorySlugs = map[Category]string{
	Underweight:     "underweight",
	Normal:          "normal",
	Overweight:      "overweight",
	ObesityClassI:   "obesity_class_1",
	ObesityClassII:  "obesity_class_2",
	ObesityClassIII: "obesity_class_3",
}

// Classify maps a BMI value to its category using half-open bands
// (inclusive lower, exclusive upper).
func Classify(bmi float64) Category {
	for _, b := range bands {
		if bmi < b.upper {
			return b.category
		}
	}

	return ObesityClassIII
}

// String returns the English label of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return "Unknown"
}

// Slug returns a stable machine-readable identifier, used for metric labels
// and JSON output.
func (c Category) Slug() string {
	if slug, ok := categorySlugs[c]; ok {
		return slug
	}

	return "unknown"
}

// MarshalText encodes the category as its slug.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.Slug()), nil
}
