package calc

import (
	"fmt"
	"math"
	"time"

	"github.com/avoronin/bmrcalc/internal/model"
)

// Daily calorie floors below which a deficit target is never pushed.
const (
	MinCaloriesMale   = 1500
	MinCaloriesFemale = 1200
)

// MinCalories returns the hard daily floor for the given gender.
func MinCalories(gender model.Gender) int {
	if gender == model.Female {
		return MinCaloriesFemale
	}
	return MinCaloriesMale
}

// GenerateInterpretation derives calorie targets, a metabolism category and
// the recommendation/warning lines from bmr, tdee and the input. The lines
// are assembled in a fixed order so repeated runs over the same record
// produce identical output.
func GenerateInterpretation(bmr, tdee float64, in model.CalculationInput) model.Interpretation {
	minCal := MinCalories(in.Gender)

	maintain := int(math.Round(tdee))
	lose := int(math.Round(tdee - 500))
	if lose < minCal {
		lose = minCal
	}
	gain := int(math.Round(tdee + 500))

	category := MetabolismCategory(bmr, in.Gender)

	var recs, warns []string

	recs = append(recs,
		fmt.Sprintf("Your basal metabolic rate (BMR): %d kcal/day", int(math.Round(bmr))),
		fmt.Sprintf("Total daily energy expenditure (TDEE): %d kcal/day", maintain),
		fmt.Sprintf("To maintain your weight, eat around %d kcal per day", maintain),
	)

	// Deficit guidance is skipped when the floor already clamped the target.
	if lose > minCal {
		recs = append(recs, fmt.Sprintf("To lose weight, aim for %d kcal/day (500 kcal deficit)", lose))
	}
	recs = append(recs, fmt.Sprintf("To gain weight, aim for %d kcal/day (500 kcal surplus)", gain))

	warns = append(warns, fmt.Sprintf("Do not go below %d kcal per day without medical supervision", minCal))

	switch category {
	case model.MetabolismLow:
		warns = append(warns, "Your basal metabolic rate is low; an endocrinologist consultation is recommended")
		recs = append(recs, "Consider strength training to build muscle mass and raise your metabolism")
	case model.MetabolismHigh:
		recs = append(recs, "Your metabolism is high; make sure you get enough calories and nutrients")
	}

	if in.Age >= 50 {
		recs = append(recs, "Metabolism slows with age; staying active and strength training matter more")
	}

	switch in.ActivityLevel {
	case model.Sedentary:
		recs = append(recs, "Try to reach at least 150 minutes of moderate activity per week")
	case model.ExtraActive:
		recs = append(recs, "At this training volume, watch your recovery and protein intake")
	}

	recs = append(recs,
		"Split calories between protein (20-30%), fat (20-35%) and carbohydrates (45-65%)",
		"Drink enough water: at least 30 ml per kg of body weight",
	)

	warns = append(warns, "These figures are for reference only; consult a doctor for medical advice")

	return model.Interpretation{
		Category:               category,
		TargetCaloriesMaintain: maintain,
		TargetCaloriesLose:     lose,
		TargetCaloriesGain:     gain,
		Recommendations:        recs,
		Warnings:               warns,
	}
}

// PerformCalculation composes BMR, TDEE and interpretation into a fresh
// in-memory result. It does not validate; callers run the validation
// package first.
func PerformCalculation(in model.CalculationInput, userID string) model.CalculationResult {
	bmr := BMR(in)
	tdee := TDEE(bmr, in.ActivityLevel)
	return model.CalculationResult{
		UserID:         userID,
		BMR:            bmr,
		TDEE:           tdee,
		Input:          in,
		Interpretation: GenerateInterpretation(bmr, tdee, in),
		CreatedAt:      time.Now(),
	}
}
