/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bmi

import (
	"errors"
	"fmt"
	"strings"
)

// Language selects one of the built-in message sets.
type Language string

// Supported languages.
const (
	Portuguese Language = "pt"
	English    Language = "en"
)

// ParseLanguage accepts "pt" or "en" (case-insensitive, region suffix ignored).
func ParseLanguage(value string) (Language, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if idx := strings.IndexAny(normalized, "-_"); idx != -1 {
		normalized = normalized[:idx]
	}

	switch Language(normalized) {
	case Portuguese:
		return Portuguese, nil
	case English:
		return English, nil
	}

	return "", fmt.Errorf("%w: %q", errUnknownLanguage, value)
}

// Messages is the user-facing text of the calculator page.
type Messages struct {
	Lang        string
	Title       string
	Intro       []string
	NameLabel   string
	NameHint    string
	GenderLabel string
	HeightLabel string
	WeightLabel string
	Submit      string
	Reset       string
	Cleared     string

	Genders map[Gender]string

	ProgressMessage string
	ProgressDetail  string // Sprintf format taking step and total
	ProgressDone    string // Sprintf format taking the name

	Result     string // Sprintf format taking name, BMI and category phrase
	Categories map[Category]string
	Errors     map[ValidationKind]string

	ChartTitle  string
	ChartYAxis  string
	IdealBar    string
	CurrentBar  string
	QRCodeLabel string
}

var portugueseMessages = Messages{
	Lang:  "pt-BR",
	Title: "Calculadora de IMC (Índice de massa corporal)",
	Intro: []string{
		"O Índice de Massa Corporal (IMC) é uma medida utilizada para avaliar se uma pessoa está dentro de um peso saudável. " +
			"Ele é calculado dividindo o peso (KG) pela altura ao quadrado (m²). " +
			"Manter um IMC adequado contribui para uma melhor saúde cardiovascular, reduzir riscos de diabetes e melhorar a qualidade de vida.",
		"Exemplo: Se uma pessoa pesa 70 kg e tem 1,70 m de altura, o cálculo seria: IMC = 70 kg / (1,70 m)², IMC = 70 kg / 2,89 m², IMC = 24,22.",
	},
	NameLabel:   "Nome",
	NameHint:    "Digite seu nome",
	GenderLabel: "Gênero",
	HeightLabel: "Altura (cm)",
	WeightLabel: "Peso (KG)",
	Submit:      "Calcular IMC",
	Reset:       "Limpar",
	Cleared:     "Os campos foram limpos.",
	Genders: map[Gender]string{
		GenderFemale:         "Feminino",
		GenderMale:           "Masculino",
		GenderPreferNotToSay: "Prefiro não dizer",
	},
	ProgressMessage: "Calculando seu IMC...",
	ProgressDetail:  "Etapa %d/%d",
	ProgressDone:    "Se tiver pendência, por favor, insira o campo solicitado. Caso não, segue o resultado %s:",
	Result:          "%s, seu IMC é %s, o que indica que você está %s.",
	Categories: map[Category]string{
		Underweight:     "abaixo do peso",
		Normal:          "com peso normal",
		Overweight:      "com sobrepeso",
		ObesityClassI:   "com obesidade grau I",
		ObesityClassII:  "com obesidade grau II",
		ObesityClassIII: "com obesidade grau III",
	},
	Errors: map[ValidationKind]string{
		MissingName:   "Por favor, digite seu nome.",
		MissingHeight: "Por favor, insira sua altura (cm).",
		MissingWeight: "Por favor, insira seu peso (kg).",
		InvalidHeight: "Por favor, insira uma altura válida (cm).",
	},
	ChartTitle:  "Comparação: IMC do peso ideal e seu IMC",
	ChartYAxis:  "Valor do IMC",
	IdealBar:    "IMC ideal",
	CurrentBar:  "Seu IMC",
	QRCodeLabel: "Leve o resultado no celular",
}

var englishMessages = Messages{
	Lang:  "en",
	Title: "BMI Calculator (Body Mass Index)",
	Intro: []string{
		"Body Mass Index (BMI) is a measure used to assess whether a person is within a healthy weight. " +
			"It is calculated by dividing the weight (kg) by the height squared (m²). " +
			"Keeping a healthy BMI contributes to better cardiovascular health, lowers the risk of diabetes and improves quality of life.",
		"Example: if a person weighs 70 kg and is 1.70 m tall, the calculation is: BMI = 70 kg / (1.70 m)², BMI = 70 kg / 2.89 m², BMI = 24.22.",
	},
	NameLabel:   "Name",
	NameHint:    "Enter your name",
	GenderLabel: "Gender",
	HeightLabel: "Height (cm)",
	WeightLabel: "Weight (kg)",
	Submit:      "Calculate BMI",
	Reset:       "Clear",
	Cleared:     "The form was cleared.",
	Genders: map[Gender]string{
		GenderFemale:         "Female",
		GenderMale:           "Male",
		GenderPreferNotToSay: "Prefer not to say",
	},
	ProgressMessage: "Calculating your BMI...",
	ProgressDetail:  "Step %d/%d",
	ProgressDone:    "If anything is missing, please fill in the requested field. Otherwise, here is your result %s:",
	Result:          "%s, your BMI is %s, which indicates that you are %s.",
	Categories: map[Category]string{
		Underweight:     "underweight",
		Normal:          "at a normal weight",
		Overweight:      "overweight",
		ObesityClassI:   "in obesity class I",
		ObesityClassII:  "in obesity class II",
		ObesityClassIII: "in obesity class III",
	},
	Errors: map[ValidationKind]string{
		MissingName:   "Please enter your name.",
		MissingHeight: "Please enter your height (cm).",
		MissingWeight: "Please enter your weight (kg).",
		InvalidHeight: "Please enter a valid height (cm).",
	},
	ChartTitle:  "Comparison: ideal BMI and your BMI",
	ChartYAxis:  "BMI value",
	IdealBar:    "Ideal BMI",
	CurrentBar:  "Your BMI",
	QRCodeLabel: "Take the result with you",
}

// MessagesFor returns the message set of a language, defaulting to
// Portuguese.
func MessagesFor(lang Language) *Messages {
	if lang == English {
		return &englishMessages
	}

	return &portugueseMessages
}

// ResultSentence composes the result line shown after a successful trigger.
func (m *Messages) ResultSentence(a *Assessment) string {
	return fmt.Sprintf(m.Result, a.Name, a.Display(), m.Categories[a.Category])
}

// ErrorMessage returns the friendly text for a validation error, or an empty
// string when err is not one.
func (m *Messages) ErrorMessage(err error) string {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return ""
	}

	return m.Errors[verr.Kind]
}

// ProgressStep formats the detail line for a progress step.
func (m *Messages) ProgressStep(step, total int) string {
	return fmt.Sprintf(m.ProgressDetail, step, total)
}

// ProgressSummary is the message shown once pacing has finished.
func (m *Messages) ProgressSummary(name string) string {
	return fmt.Sprintf(m.ProgressDone, strings.TrimSpace(name))
}

// BarName returns the localized label of a chart bar.
func (m *Messages) BarName(kind BarKind) string {
	if kind == BarIdeal {
		return m.IdealBar
	}

	return m.CurrentBar
}

func formatBMI(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
