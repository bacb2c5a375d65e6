package model

import "time"

// CalculationInput carries the five anthropometric fields plus the formula
// choice. All fields are required together; partial input is meaningless to
// the calculation engine. Range checking lives in the validation package.
type CalculationInput struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Gender        Gender
	ActivityLevel ActivityLevel
	FormulaType   FormulaType
}

// Interpretation is derived entirely from bmr, tdee and the input; it is
// recomputed fresh each time and never mutated in place.
type Interpretation struct {
	Category               MetabolismCategory
	TargetCaloriesMaintain int
	TargetCaloriesLose     int
	TargetCaloriesGain     int
	Recommendations        []string
	Warnings               []string
}

// CalculationResult is created in memory with ID zero and gains an id only
// once the store assigns one. Records are immutable after save; there are
// no updates, only create/read/delete.
type CalculationResult struct {
	ID             int64
	UserID         string
	BMR            float64
	TDEE           float64
	Input          CalculationInput
	Interpretation Interpretation
	CreatedAt      time.Time
}

// Severity grades a validation finding. Warnings never block downstream
// processing.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

type ValidationError struct {
	Field    string
	Message  string
	Severity Severity
}

// ValidationResult holds every finding for the checked field(s).
// IsValid is true iff no finding has SeverityError.
type ValidationResult struct {
	IsValid bool
	Errors  []ValidationError
}

// Range is a closed [Min, Max] bound on one input field.
type Range struct {
	Min float64
	Max float64
}

// InputConstraints is static configuration defining the error-level domain
// boundary, distinct from the narrower plausible sub-range that only emits
// warnings.
type InputConstraints struct {
	Weight Range
	Height Range
	Age    Range
}

// User is a stored profile a calculation can be tagged with.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      UserRole
	CreatedAt time.Time
}
