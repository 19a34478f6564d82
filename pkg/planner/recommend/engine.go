// Package recommend builds budget-constrained product bundles for a room.
package recommend

import (
	"math"
	"sort"

	"ai-roomplanner-be/internal/catalog"
	"ai-roomplanner-be/internal/constant"
	"ai-roomplanner-be/internal/entity"
	"ai-roomplanner-be/pkg/planner/allocation"
)

// Input carries everything the engine considers. FamilySizeId is resolved and
// echoed back on the result but does not currently influence selection; it is
// an extensibility hook kept on purpose.
type Input struct {
	RoomId       string
	Budget       int
	StyleIds     []string
	FamilySizeId string
}

type Engine struct {
	store *catalog.Store
}

func NewEngine(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// FilterByStyle keeps products whose style set intersects styleIds, ordered
// by descending style-match count. The sort is stable, so products with equal
// match counts keep catalog order. An empty styleIds passes the list through
// untouched.
func FilterByStyle(list []*entity.Product, styleIds []string) []*entity.Product {
	if len(styleIds) == 0 {
		return list
	}

	matched := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if p.StyleMatchCount(styleIds) > 0 {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StyleMatchCount(styleIds) > matched[j].StyleMatchCount(styleIds)
	})
	return matched
}

// Generate runs the full recommendation pass. An unknown room yields a
// degenerate result with empty slices and TotalPrice 0, never an error.
func (e *Engine) Generate(in Input) *entity.Recommendation {
	room := e.store.FindRoom(in.RoomId)
	familySize := e.store.FindFamilySize(in.FamilySizeId)

	if room == nil {
		return &entity.Recommendation{
			Products:     []*entity.Product{},
			Bundles:      []*entity.Bundle{},
			Budget:       in.Budget,
			StyleMatches: in.StyleIds,
			FamilySize:   familySize,
		}
	}

	budget := float64(in.Budget)
	// Smart allocation always applies here; the explicit toggle only drives
	// the budget step's on-screen breakdown.
	alloc := allocation.Allocate(budget, room, true)

	available := FilterByStyle(e.store.ProductsForRoom(in.RoomId), in.StyleIds)

	bundles := make([]*entity.Bundle, 0, len(room.EssentialCategories))
	selected := make([]*entity.Product, 0, len(room.EssentialCategories))
	totalPrice := 0

	for _, category := range room.EssentialCategories {
		categoryBudget := allocation.CategoryBudget(alloc, category, budget)

		var categoryProducts []*entity.Product
		for _, p := range available {
			if p.Category == category {
				categoryProducts = append(categoryProducts, p)
			}
		}

		affordable := catalog.ProductsForBudget(categoryProducts, categoryBudget)
		if len(affordable) == 0 {
			continue
		}

		// Best match is the head of the ranked list. The bundle is recorded
		// either way; the pick only joins the selection while the running
		// total stays within the overall budget.
		picked := affordable[0]
		bundles = append(bundles, &entity.Bundle{
			Category:        category,
			Product:         picked,
			BudgetAllocated: categoryBudget,
			Alternatives:    runnersUp(affordable),
		})

		if totalPrice+picked.Price <= in.Budget {
			selected = append(selected, picked)
			totalPrice += picked.Price
		}
	}

	// Decor top-up with what is left. The remaining budget is fixed at the
	// post-essentials amount; the 95% gate below is what tracks the running
	// total.
	remainingBudget := in.Budget - totalPrice
	for _, item := range available {
		if item.Category != entity.CategoryDecor {
			continue
		}
		if containsProduct(selected, item.Id) {
			continue
		}
		if item.Price > remainingBudget {
			continue
		}
		if float64(totalPrice+item.Price) <= budget*constant.DecorCommitCeiling {
			selected = append(selected, item)
			totalPrice += item.Price

			if float64(totalPrice) >= budget*constant.DecorStopThreshold {
				break
			}
		}
	}

	utilization := 0
	if in.Budget > 0 {
		utilization = int(math.Round(float64(totalPrice) / budget * 100))
	}

	return &entity.Recommendation{
		Products:          selected,
		Bundles:           bundles,
		TotalPrice:        totalPrice,
		Budget:            in.Budget,
		BudgetUtilization: utilization,
		Room:              room,
		StyleMatches:      in.StyleIds,
		FamilySize:        familySize,
	}
}

// Alternatives returns up to 4 catalog-ordered substitutes sharing the
// product's subcategory, priced within [0.5, 1.2] of the ceiling. An unknown
// product id yields an empty list.
func (e *Engine) Alternatives(productId string, ceiling float64) []*entity.Product {
	product := e.store.FindProduct(productId)
	if product == nil {
		return []*entity.Product{}
	}

	out := make([]*entity.Product, 0, constant.AlternativesMax)
	for _, p := range e.store.Products() {
		if p.Id == productId || p.Subcategory != product.Subcategory {
			continue
		}
		price := float64(p.Price)
		if price >= ceiling*constant.AlternativesPriceFloor && price <= ceiling*constant.AlternativesPriceCeil {
			out = append(out, p)
			if len(out) == constant.AlternativesMax {
				break
			}
		}
	}
	return out
}

// runnersUp takes the 2nd through 4th entries of a ranked list.
func runnersUp(ranked []*entity.Product) []*entity.Product {
	end := 4
	if len(ranked) < end {
		end = len(ranked)
	}
	if end <= 1 {
		return []*entity.Product{}
	}
	alts := make([]*entity.Product, end-1)
	copy(alts, ranked[1:end])
	return alts
}

func containsProduct(list []*entity.Product, id string) bool {
	for _, p := range list {
		if p.Id == id {
			return true
		}
	}
	return false
}
