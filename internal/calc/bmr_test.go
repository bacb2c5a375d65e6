package calc_test

import (
	"math"
	"testing"

	"github.com/avoronin/bmrcalc/internal/calc"
	"github.com/avoronin/bmrcalc/internal/model"
)

func sampleInput() model.CalculationInput {
	return model.CalculationInput{
		WeightKg:      70,
		HeightCm:      170,
		Age:           30,
		Gender:        model.Male,
		ActivityLevel: model.Moderate,
		FormulaType:   model.Mifflin,
	}
}

func TestBMRMifflin(t *testing.T) {
	t.Parallel()

	in := sampleInput()
	// 10*70 + 6.25*170 - 5*30 + 5 = 1617.50
	if got := calc.BMRMifflin(in); got != 1617.50 {
		t.Fatalf("male mifflin BMR = %v, want 1617.50", got)
	}

	in.Gender = model.Female
	// 10*70 + 6.25*170 - 5*30 - 161 = 1451.50
	if got := calc.BMRMifflin(in); got != 1451.50 {
		t.Fatalf("female mifflin BMR = %v, want 1451.50", got)
	}
}

func TestBMRHarris(t *testing.T) {
	t.Parallel()

	in := sampleInput()
	in.FormulaType = model.Harris
	// 88.362 + 13.397*70 + 4.799*170 - 5.677*30 = 1671.672 -> 1671.67
	if got := calc.BMRHarris(in); math.Abs(got-1671.67) > 0.001 {
		t.Fatalf("male harris BMR = %v, want 1671.67", got)
	}

	in.Gender = model.Female
	// 447.593 + 9.247*70 + 3.098*170 - 4.330*30 = 1491.643 -> 1491.64
	if got := calc.BMRHarris(in); math.Abs(got-1491.64) > 0.001 {
		t.Fatalf("female harris BMR = %v, want 1491.64", got)
	}
}

func TestBMRDispatchesByFormula(t *testing.T) {
	t.Parallel()

	in := sampleInput()
	if got := calc.BMR(in); got != calc.BMRMifflin(in) {
		t.Fatalf("mifflin dispatch mismatch: %v", got)
	}
	in.FormulaType = model.Harris
	if got := calc.BMR(in); got != calc.BMRHarris(in) {
		t.Fatalf("harris dispatch mismatch: %v", got)
	}
}

func TestTDEE(t *testing.T) {
	t.Parallel()

	// 1617.50 * 1.55 = 2507.125 -> 2507.13
	if got := calc.TDEE(1617.50, model.Moderate); got != 2507.13 {
		t.Fatalf("TDEE(1617.50, moderate) = %v, want 2507.13", got)
	}
	if got := calc.TDEE(1000, model.Sedentary); got != 1200 {
		t.Fatalf("TDEE(1000, sedentary) = %v, want 1200", got)
	}
	if got := calc.TDEE(2000, model.ExtraActive); got != 3800 {
		t.Fatalf("TDEE(2000, extra_active) = %v, want 3800", got)
	}
}

func TestMetabolismCategoryBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bmr    float64
		gender model.Gender
		want   model.MetabolismCategory
	}{
		{1499, model.Male, model.MetabolismLow},
		{1500, model.Male, model.MetabolismNormal},
		{3000, model.Male, model.MetabolismNormal},
		{3001, model.Male, model.MetabolismHigh},
		{1199, model.Female, model.MetabolismLow},
		{1200, model.Female, model.MetabolismNormal},
		{2500, model.Female, model.MetabolismNormal},
		{2501, model.Female, model.MetabolismHigh},
	}
	for _, c := range cases {
		if got := calc.MetabolismCategory(c.bmr, c.gender); got != c.want {
			t.Fatalf("category(%v, %v) = %v, want %v", c.bmr, c.gender, got, c.want)
		}
	}
}

func TestBMI(t *testing.T) {
	t.Parallel()

	// 70 / 1.70^2 = 24.22... -> 24.2
	if got := calc.BMI(70, 170); got != 24.2 {
		t.Fatalf("BMI(70, 170) = %v, want 24.2", got)
	}
}

func TestInterpretBMIBands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bmi  float64
		want string
	}{
		{15.9, "Severe underweight"},
		{16, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{25, "Overweight"},
		{30, "Obesity class I"},
		{35, "Obesity class II"},
		{40, "Obesity class III (morbid)"},
	}
	for _, c := range cases {
		if got := calc.InterpretBMI(c.bmi); got != c.want {
			t.Fatalf("InterpretBMI(%v) = %q, want %q", c.bmi, got, c.want)
		}
	}
}
