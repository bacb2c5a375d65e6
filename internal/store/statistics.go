package store

import (
	"math"

	"github.com/avoronin/bmrcalc/internal/model"
)

// Statistics aggregates the stored history.
type Statistics struct {
	TotalCalculations int
	AvgBMR            int
	AvgTDEE           int
	Latest            *model.CalculationResult
}

// GetStatistics derives count, mean BMR/TDEE and the most recent record
// from the stored history. Never fails: an empty or unreadable history
// yields zero counts and no latest record.
func (s *Store) GetStatistics(userID string) Statistics {
	calculations := s.GetCalculations(userID, DefaultListLimit)
	if len(calculations) == 0 {
		return Statistics{}
	}

	var sumBMR, sumTDEE float64
	for _, c := range calculations {
		sumBMR += c.BMR
		sumTDEE += c.TDEE
	}
	n := float64(len(calculations))
	latest := calculations[0]
	return Statistics{
		TotalCalculations: len(calculations),
		AvgBMR:            int(math.Round(sumBMR / n)),
		AvgTDEE:           int(math.Round(sumTDEE / n)),
		Latest:            &latest,
	}
}
