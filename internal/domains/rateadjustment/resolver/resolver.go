// Package resolver computes the rate in force for a room type on a given day.
//
// The rate on day D is the base rate plus the amount of the adjustment with the
// greatest effective date not after D. When several adjustments share that date
// the most recently created one wins, and equal creation instants fall back to
// the greater id so the choice never depends on input order. Adjustments dated
// after D are ignored, so later entries never alter past or present answers.
//
// All functions are pure and safe for concurrent use.
package resolver

import (
	"slices"

	"hoteladmin/internal/domains/rateadjustment/model"
	"hoteladmin/shared/date"

	"github.com/shopspring/decimal"
)

// Resolve returns the effective rate on the given day.
func Resolve(base decimal.Decimal, adjustments []model.RateAdjustment, on date.Date) decimal.Decimal {
	selected, ok := Latest(adjustments, on)
	if !ok {
		return base
	}

	return base.Add(selected.AdjustmentAmount)
}

// Latest returns the adjustment in force on the given day, if any.
func Latest(adjustments []model.RateAdjustment, on date.Date) (model.RateAdjustment, bool) {
	var (
		selected model.RateAdjustment
		found    bool
	)

	for _, adjustment := range adjustments {
		if adjustment.EffectiveDate.After(on) {
			continue
		}

		if !found || supersedes(adjustment, selected) {
			selected = adjustment
			found = true
		}
	}

	return selected, found
}

// History returns a copy of adjustments ordered most recently created first.
func History(adjustments []model.RateAdjustment) []model.RateAdjustment {
	history := slices.Clone(adjustments)

	slices.SortStableFunc(history, func(a, b model.RateAdjustment) int {
		switch {
		case a.CreatedAt.After(b.CreatedAt):
			return -1
		case a.CreatedAt.Before(b.CreatedAt):
			return 1
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		default:
			return 0
		}
	})

	return history
}

func supersedes(candidate, current model.RateAdjustment) bool {
	if !candidate.EffectiveDate.Equal(current.EffectiveDate) {
		return candidate.EffectiveDate.After(current.EffectiveDate)
	}

	if !candidate.CreatedAt.Equal(current.CreatedAt) {
		return candidate.CreatedAt.After(current.CreatedAt)
	}

	return candidate.ID > current.ID
}
