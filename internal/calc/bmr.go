// Package calc implements BMR and TDEE computation with interpretation.
// Every function is pure and deterministic; the only wall-clock dependence
// is the creation timestamp stamped by PerformCalculation.
package calc

import (
	"math"

	"github.com/avoronin/bmrcalc/internal/model"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BMRMifflin computes BMR via Mifflin-St Jeor:
// 10*weight + 6.25*height - 5*age, plus 5 for men or minus 161 for women.
func BMRMifflin(in model.CalculationInput) float64 {
	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	if in.Gender == model.Male {
		bmr += 5
	} else {
		bmr -= 161
	}
	return round2(bmr)
}

// BMRHarris computes BMR via the 1984 revision of Harris-Benedict.
func BMRHarris(in model.CalculationInput) float64 {
	var bmr float64
	if in.Gender == model.Male {
		bmr = 88.362 + 13.397*in.WeightKg + 4.799*in.HeightCm - 5.677*float64(in.Age)
	} else {
		bmr = 447.593 + 9.247*in.WeightKg + 3.098*in.HeightCm - 4.330*float64(in.Age)
	}
	return round2(bmr)
}

// BMR dispatches to the formula selected by the input.
func BMR(in model.CalculationInput) float64 {
	if in.FormulaType == model.Mifflin {
		return BMRMifflin(in)
	}
	return BMRHarris(in)
}

// TDEE scales BMR by the activity coefficient.
func TDEE(bmr float64, level model.ActivityLevel) float64 {
	return round2(bmr * model.ActivityCoefficients[level])
}

// MetabolismCategory grades bmr against gender-specific thresholds.
// The thresholds themselves fall in the normal band.
func MetabolismCategory(bmr float64, gender model.Gender) model.MetabolismCategory {
	low, high := 1500.0, 3000.0
	if gender == model.Female {
		low, high = 1200, 2500
	}
	switch {
	case bmr < low:
		return model.MetabolismLow
	case bmr > high:
		return model.MetabolismHigh
	default:
		return model.MetabolismNormal
	}
}
