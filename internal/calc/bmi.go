package calc

import "math"

// BMI computes weight(kg) / height(m)^2 rounded to 1 decimal.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// InterpretBMI names the WHO band a BMI value falls into.
func InterpretBMI(bmi float64) string {
	switch {
	case bmi < 16:
		return "Severe underweight"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obesity class I"
	case bmi < 40:
		return "Obesity class II"
	default:
		return "Obesity class III (morbid)"
	}
}
