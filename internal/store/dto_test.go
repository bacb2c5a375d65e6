package store

import (
	"testing"
	"time"

	"github.com/avoronin/bmrcalc/internal/calc"
	"github.com/avoronin/bmrcalc/internal/model"
)

func TestRowConversionRoundTrip(t *testing.T) {
	t.Parallel()

	in := model.CalculationInput{
		WeightKg:      62.5,
		HeightCm:      168,
		Age:           45,
		Gender:        model.Female,
		ActivityLevel: model.Light,
		FormulaType:   model.Harris,
	}
	res := calc.PerformCalculation(in, "user-7")
	res.ID = 42
	res.CreatedAt = time.Unix(res.CreatedAt.Unix(), 0)

	row := rowFromResult(res)
	if row.gender != "female" || row.activityLevel != "light" || row.formulaType != "harris" {
		t.Fatalf("unexpected enum tags: %q %q %q", row.gender, row.activityLevel, row.formulaType)
	}
	if !row.userID.Valid || row.userID.String != "user-7" {
		t.Fatalf("unexpected user id column: %+v", row.userID)
	}

	back, err := resultFromRow(row)
	if err != nil {
		t.Fatalf("result from row: %v", err)
	}
	if back.ID != res.ID || back.UserID != res.UserID {
		t.Fatalf("identity mismatch: %+v", back)
	}
	if back.Input != res.Input {
		t.Fatalf("input mismatch: %+v vs %+v", back.Input, res.Input)
	}
	if back.BMR != res.BMR || back.TDEE != res.TDEE {
		t.Fatalf("numbers mismatch")
	}
	if !back.CreatedAt.Equal(res.CreatedAt) {
		t.Fatalf("timestamp mismatch: %v vs %v", back.CreatedAt, res.CreatedAt)
	}
	if back.Interpretation.Category != res.Interpretation.Category {
		t.Fatalf("category mismatch")
	}
}

func TestRowWithoutUserIDMapsToNull(t *testing.T) {
	t.Parallel()

	res := calc.PerformCalculation(model.CalculationInput{
		WeightKg: 70, HeightCm: 170, Age: 30,
		Gender: model.Male, ActivityLevel: model.Moderate, FormulaType: model.Mifflin,
	}, "")
	row := rowFromResult(res)
	if row.userID.Valid {
		t.Fatalf("expected NULL user_id for anonymous result")
	}
}

func TestResultFromRowRejectsUnknownTags(t *testing.T) {
	t.Parallel()

	row := calculationRow{
		id: 1, weight: 70, height: 170, age: 30,
		gender: "male", activityLevel: "moderate", formulaType: "mifflin",
		bmr: 1617.5, tdee: 2507.13, createdAt: time.Now().Unix(),
	}

	bad := row
	bad.gender = "robot"
	if _, err := resultFromRow(bad); err == nil {
		t.Fatalf("expected unknown gender tag to fail")
	}

	bad = row
	bad.activityLevel = "hyperactive"
	if _, err := resultFromRow(bad); err == nil {
		t.Fatalf("expected unknown activity tag to fail")
	}

	bad = row
	bad.formulaType = "cunningham"
	if _, err := resultFromRow(bad); err == nil {
		t.Fatalf("expected unknown formula tag to fail")
	}
}
