package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/avoronin/bmrcalc/internal/calc"
	"github.com/avoronin/bmrcalc/internal/model"
)

// calculationRow is the flat storage shape of a calculation: enums as their
// canonical string tags, timestamp as epoch seconds. Only this package
// constructs or reads it.
type calculationRow struct {
	id            int64
	userID        sql.NullString
	weight        float64
	height        float64
	age           int
	gender        string
	activityLevel string
	formulaType   string
	bmr           float64
	tdee          float64
	createdAt     int64
}

func rowFromResult(res model.CalculationResult) calculationRow {
	row := calculationRow{
		id:            res.ID,
		weight:        res.Input.WeightKg,
		height:        res.Input.HeightCm,
		age:           res.Input.Age,
		gender:        res.Input.Gender.String(),
		activityLevel: res.Input.ActivityLevel.String(),
		formulaType:   res.Input.FormulaType.String(),
		bmr:           res.BMR,
		tdee:          res.TDEE,
		createdAt:     res.CreatedAt.Unix(),
	}
	if res.UserID != "" {
		row.userID = sql.NullString{String: res.UserID, Valid: true}
	}
	return row
}

// resultFromRow rebuilds the domain record. Unrecognized enum tags mean the
// row was written by something else or corrupted, and are surfaced as
// errors rather than defaulted. The interpretation is regenerated from the
// stored numbers; the generator is deterministic, so the reloaded record
// carries the same text the original calculation produced.
func resultFromRow(row calculationRow) (model.CalculationResult, error) {
	gender, err := model.ParseGender(row.gender)
	if err != nil {
		return model.CalculationResult{}, fmt.Errorf("calculation %d: %w", row.id, err)
	}
	level, err := model.ParseActivityLevel(row.activityLevel)
	if err != nil {
		return model.CalculationResult{}, fmt.Errorf("calculation %d: %w", row.id, err)
	}
	formula, err := model.ParseFormulaType(row.formulaType)
	if err != nil {
		return model.CalculationResult{}, fmt.Errorf("calculation %d: %w", row.id, err)
	}

	input := model.CalculationInput{
		WeightKg:      row.weight,
		HeightCm:      row.height,
		Age:           row.age,
		Gender:        gender,
		ActivityLevel: level,
		FormulaType:   formula,
	}
	return model.CalculationResult{
		ID:             row.id,
		UserID:         row.userID.String,
		BMR:            row.bmr,
		TDEE:           row.tdee,
		Input:          input,
		Interpretation: calc.GenerateInterpretation(row.bmr, row.tdee, input),
		CreatedAt:      time.Unix(row.createdAt, 0),
	}, nil
}
