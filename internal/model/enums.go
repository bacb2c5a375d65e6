package model

import "fmt"

// Gender selects the sex-specific constants in both BMR formulas.
type Gender int

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

// ParseGender maps the canonical storage tag back to a Gender.
// Unknown tags are rejected so corrupted rows surface instead of
// silently defaulting.
func ParseGender(tag string) (Gender, error) {
	switch tag {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	}
	return 0, fmt.Errorf("unknown gender tag %q", tag)
}

// ActivityLevel scales BMR into TDEE. The five variants and their
// coefficients are fixed by the Mifflin/Harris activity tables.
type ActivityLevel int

const (
	Sedentary ActivityLevel = iota
	Light
	Moderate
	VeryActive
	ExtraActive
)

// ActivityCoefficients is the single source of truth for valid activity
// levels and their TDEE multipliers.
var ActivityCoefficients = map[ActivityLevel]float64{
	Sedentary:   1.2,
	Light:       1.375,
	Moderate:    1.55,
	VeryActive:  1.725,
	ExtraActive: 1.9,
}

// ActivityDescriptions holds the human-readable summary per level.
var ActivityDescriptions = map[ActivityLevel]string{
	Sedentary:   "Little or no exercise, desk-bound lifestyle",
	Light:       "Light exercise 1-3 times a week",
	Moderate:    "Moderate exercise 3-5 times a week",
	VeryActive:  "Hard training 6-7 times a week",
	ExtraActive: "Daily hard training plus a physical job",
}

func (a ActivityLevel) String() string {
	switch a {
	case Sedentary:
		return "sedentary"
	case Light:
		return "light"
	case Moderate:
		return "moderate"
	case VeryActive:
		return "very_active"
	case ExtraActive:
		return "extra_active"
	}
	return fmt.Sprintf("ActivityLevel(%d)", int(a))
}

func ParseActivityLevel(tag string) (ActivityLevel, error) {
	switch tag {
	case "sedentary":
		return Sedentary, nil
	case "light":
		return Light, nil
	case "moderate":
		return Moderate, nil
	case "very_active":
		return VeryActive, nil
	case "extra_active":
		return ExtraActive, nil
	}
	return 0, fmt.Errorf("unknown activity level tag %q", tag)
}

// FormulaType selects the BMR formula.
type FormulaType int

const (
	Mifflin FormulaType = iota
	Harris
)

// FormulaDescriptions holds the human-readable summary per formula.
var FormulaDescriptions = map[FormulaType]string{
	Mifflin: "Mifflin-St Jeor (modern, recommended)",
	Harris:  "Harris-Benedict (classic, 1984 revision)",
}

func (f FormulaType) String() string {
	switch f {
	case Mifflin:
		return "mifflin"
	case Harris:
		return "harris"
	}
	return fmt.Sprintf("FormulaType(%d)", int(f))
}

func ParseFormulaType(tag string) (FormulaType, error) {
	switch tag {
	case "mifflin":
		return Mifflin, nil
	case "harris":
		return Harris, nil
	}
	return 0, fmt.Errorf("unknown formula type tag %q", tag)
}

// MetabolismCategory grades BMR against gender-specific thresholds.
type MetabolismCategory int

const (
	MetabolismLow MetabolismCategory = iota
	MetabolismNormal
	MetabolismHigh
)

func (m MetabolismCategory) String() string {
	switch m {
	case MetabolismLow:
		return "low"
	case MetabolismNormal:
		return "normal"
	case MetabolismHigh:
		return "high"
	}
	return fmt.Sprintf("MetabolismCategory(%d)", int(m))
}

// UserRole tags a stored profile.
type UserRole int

const (
	RolePatient UserRole = iota
	RoleDoctor
	RoleAdmin
)

func (r UserRole) String() string {
	switch r {
	case RolePatient:
		return "patient"
	case RoleDoctor:
		return "doctor"
	case RoleAdmin:
		return "admin"
	}
	return fmt.Sprintf("UserRole(%d)", int(r))
}

func ParseUserRole(tag string) (UserRole, error) {
	switch tag {
	case "patient":
		return RolePatient, nil
	case "doctor":
		return RoleDoctor, nil
	case "admin":
		return RoleAdmin, nil
	}
	return 0, fmt.Errorf("unknown user role tag %q", tag)
}
