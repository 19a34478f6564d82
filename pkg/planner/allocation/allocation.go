// Package allocation derives per-category spending envelopes from a total
// budget.
package allocation

import (
	"math"

	"ai-roomplanner-be/internal/constant"
	"ai-roomplanner-be/internal/entity"
)

// Allocate splits the total budget across categories. With smart allocation
// on and a known room, the room template's percentage weights are applied
// verbatim (rounded to whole currency units). Otherwise the fixed default
// split applies. The template is never mutated.
func Allocate(total float64, room *entity.RoomTemplate, smart bool) map[entity.Category]float64 {
	if room == nil || !smart {
		out := make(map[entity.Category]float64, len(constant.DefaultBudgetSplit))
		for cat, share := range constant.DefaultBudgetSplit {
			out[cat] = total * share
		}
		return out
	}

	out := make(map[entity.Category]float64, len(room.BudgetAllocation))
	for cat, pct := range room.BudgetAllocation {
		out[cat] = math.Round(total * float64(pct) / 100)
	}
	return out
}

// CategoryBudget resolves one category's envelope, falling back to the fixed
// share of the total when the allocation omits the category. An explicit zero
// weight means zero budget, not a fallback: only absence triggers the 15%
// share.
func CategoryBudget(alloc map[entity.Category]float64, cat entity.Category, total float64) float64 {
	if amount, ok := alloc[cat]; ok {
		return amount
	}
	return total * constant.FallbackCategoryShare
}
