// Package validation checks calculation inputs against physiological and
// domain bounds. Every function is pure: findings come back as data, never
// as errors, and warnings never block downstream processing.
package validation

import (
	"fmt"
	"math"

	"github.com/avoronin/bmrcalc/internal/model"
)

// DefaultConstraints is the error-level domain boundary. Values outside
// these ranges are rejected; values inside but outside the narrower
// plausible sub-ranges below only produce warnings.
var DefaultConstraints = model.InputConstraints{
	Weight: model.Range{Min: 30, Max: 300},
	Height: model.Range{Min: 100, Max: 250},
	Age:    model.Range{Min: 18, Max: 100},
}

// Plausible sub-ranges. Outside them the value is still accepted.
const (
	plausibleWeightMin = 40
	plausibleWeightMax = 200
	plausibleHeightMin = 140
	plausibleHeightMax = 220
	elderlyAge         = 70
)

// BMI bounds beyond which a cross-field warning is attached.
const (
	bmiCriticalLow  = 16
	bmiCriticalHigh = 40
)

func result(errs []model.ValidationError) model.ValidationResult {
	valid := true
	for _, e := range errs {
		if e.Severity == model.SeverityError {
			valid = false
			break
		}
	}
	return model.ValidationResult{IsValid: valid, Errors: errs}
}

// ValidateWeight checks a weight in kilograms. Rules apply in priority
// order; the first match wins.
func ValidateWeight(weight float64) model.ValidationResult {
	var errs []model.ValidationError
	bounds := DefaultConstraints.Weight

	switch {
	case math.IsNaN(weight) || math.IsInf(weight, 0):
		errs = append(errs, model.ValidationError{
			Field:    "weight",
			Message:  "weight must be a number",
			Severity: model.SeverityError,
		})
	case weight < bounds.Min:
		errs = append(errs, model.ValidationError{
			Field:    "weight",
			Message:  fmt.Sprintf("weight cannot be below %g kg", bounds.Min),
			Severity: model.SeverityError,
		})
	case weight > bounds.Max:
		errs = append(errs, model.ValidationError{
			Field:    "weight",
			Message:  fmt.Sprintf("weight cannot be above %g kg", bounds.Max),
			Severity: model.SeverityError,
		})
	case weight < plausibleWeightMin || weight > plausibleWeightMax:
		errs = append(errs, model.ValidationError{
			Field:    "weight",
			Message:  "extreme weight value, double-check the input",
			Severity: model.SeverityWarning,
		})
	}
	return result(errs)
}

// ValidateHeight checks a height in centimeters.
func ValidateHeight(height float64) model.ValidationResult {
	var errs []model.ValidationError
	bounds := DefaultConstraints.Height

	switch {
	case math.IsNaN(height) || math.IsInf(height, 0):
		errs = append(errs, model.ValidationError{
			Field:    "height",
			Message:  "height must be a number",
			Severity: model.SeverityError,
		})
	case height < bounds.Min:
		errs = append(errs, model.ValidationError{
			Field:    "height",
			Message:  fmt.Sprintf("height cannot be below %g cm", bounds.Min),
			Severity: model.SeverityError,
		})
	case height > bounds.Max:
		errs = append(errs, model.ValidationError{
			Field:    "height",
			Message:  fmt.Sprintf("height cannot be above %g cm", bounds.Max),
			Severity: model.SeverityError,
		})
	case height < plausibleHeightMin || height > plausibleHeightMax:
		errs = append(errs, model.ValidationError{
			Field:    "height",
			Message:  "extreme height value, double-check the input",
			Severity: model.SeverityWarning,
		})
	}
	return result(errs)
}

// ValidateAge checks an age in whole years. Ages arrive as float64 from
// free-form input so the whole-number requirement is checked here.
func ValidateAge(age float64) model.ValidationResult {
	var errs []model.ValidationError
	bounds := DefaultConstraints.Age

	switch {
	case math.IsNaN(age) || math.IsInf(age, 0) || age != math.Trunc(age):
		errs = append(errs, model.ValidationError{
			Field:    "age",
			Message:  "age must be a whole number",
			Severity: model.SeverityError,
		})
	case age < bounds.Min:
		errs = append(errs, model.ValidationError{
			Field:    "age",
			Message:  fmt.Sprintf("age cannot be below %g years", bounds.Min),
			Severity: model.SeverityError,
		})
	case age > bounds.Max:
		errs = append(errs, model.ValidationError{
			Field:    "age",
			Message:  fmt.Sprintf("age cannot be above %g years", bounds.Max),
			Severity: model.SeverityError,
		})
	case age >= elderlyAge:
		errs = append(errs, model.ValidationError{
			Field:    "age",
			Message:  "medical consultation is recommended at this age",
			Severity: model.SeverityWarning,
		})
	}
	return result(errs)
}

// ValidateAllInputs aggregates the per-field validators and attaches a
// cross-field BMI warning. Extreme but plausible body compositions never
// block calculation, so the BMI finding is always a warning.
func ValidateAllInputs(input model.CalculationInput) model.ValidationResult {
	var errs []model.ValidationError
	errs = append(errs, ValidateWeight(input.WeightKg).Errors...)
	errs = append(errs, ValidateHeight(input.HeightCm).Errors...)
	errs = append(errs, ValidateAge(float64(input.Age)).Errors...)

	if input.HeightCm > 0 {
		heightM := input.HeightCm / 100
		bmi := input.WeightKg / (heightM * heightM)
		if bmi < bmiCriticalLow {
			errs = append(errs, model.ValidationError{
				Field:    "bmi",
				Message:  "critically low BMI, medical consultation is recommended",
				Severity: model.SeverityWarning,
			})
		} else if bmi > bmiCriticalHigh {
			errs = append(errs, model.ValidationError{
				Field:    "bmi",
				Message:  "critically high BMI, medical consultation is recommended",
				Severity: model.SeverityWarning,
			})
		}
	}
	return result(errs)
}
