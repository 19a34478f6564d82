package allocation

import (
	"math"
	"testing"

	"ai-roomplanner-be/internal/catalog"
	"ai-roomplanner-be/internal/entity"
)

func TestAllocateSmartMatchesTemplate(t *testing.T) {
	store := catalog.MustLoad()

	tests := []struct {
		name   string
		roomId string
		total  float64
	}{
		{name: "living room mid budget", roomId: "living-room", total: 15000},
		{name: "bedroom small budget", roomId: "bedroom", total: 3000},
		{name: "home office odd total", roomId: "home-office", total: 12345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := store.FindRoom(tt.roomId)
			if room == nil {
				t.Fatalf("room %s missing from catalog", tt.roomId)
			}

			alloc := Allocate(tt.total, room, true)

			if len(alloc) != len(room.BudgetAllocation) {
				t.Errorf("allocation has %d categories, template has %d", len(alloc), len(room.BudgetAllocation))
			}

			var pctSum float64
			var sum float64
			for cat, amount := range alloc {
				pct, ok := room.BudgetAllocation[cat]
				if !ok {
					t.Errorf("allocation category %s not in template", cat)
					continue
				}
				want := math.Round(tt.total * float64(pct) / 100)
				if amount != want {
					t.Errorf("alloc[%s] = %.2f, want %.2f", cat, amount, want)
				}
				pctSum += float64(pct)
				sum += amount
			}

			// Template weights are approximate; the total must track the
			// declared percentage sum within rounding.
			want := tt.total * pctSum / 100
			if math.Abs(sum-want) > float64(len(alloc)) {
				t.Errorf("allocation sums to %.2f, want ~%.2f", sum, want)
			}
		})
	}
}

func TestAllocateDefaultSplit(t *testing.T) {
	store := catalog.MustLoad()
	room := store.FindRoom("living-room")

	tests := []struct {
		name  string
		room  *entity.RoomTemplate
		smart bool
	}{
		{name: "smart off", room: room, smart: false},
		{name: "unknown room", room: nil, smart: true},
		{name: "unknown room smart off", room: nil, smart: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := 10000.0
			alloc := Allocate(total, tt.room, tt.smart)

			want := map[entity.Category]float64{
				entity.CategorySeating:  4000,
				entity.CategoryStorage:  2500,
				entity.CategoryLighting: 1500,
				entity.CategoryDecor:    1000,
				entity.CategoryTables:   1000,
			}

			if len(alloc) != len(want) {
				t.Fatalf("default allocation has %d categories, want %d", len(alloc), len(want))
			}
			var sum float64
			for cat, amount := range want {
				if alloc[cat] != amount {
					t.Errorf("alloc[%s] = %.2f, want %.2f", cat, alloc[cat], amount)
				}
				sum += alloc[cat]
			}
			if math.Abs(sum-total) > 0.01 {
				t.Errorf("default allocation sums to %.2f, want %.2f", sum, total)
			}
		})
	}
}

func TestCategoryBudgetFallback(t *testing.T) {
	alloc := map[entity.Category]float64{
		entity.CategorySeating: 4000,
		entity.CategoryDecor:   0,
	}

	if got := CategoryBudget(alloc, entity.CategorySeating, 10000); got != 4000 {
		t.Errorf("CategoryBudget(seating) = %.2f, want 4000", got)
	}
	if got := CategoryBudget(alloc, entity.CategoryBedroom, 10000); got != 1500 {
		t.Errorf("CategoryBudget(bedroom fallback) = %.2f, want 1500", got)
	}
	// Explicit zero is honored; the fallback is only for missing categories.
	if got := CategoryBudget(alloc, entity.CategoryDecor, 10000); got != 0 {
		t.Errorf("CategoryBudget(decor zero weight) = %.2f, want 0", got)
	}
}
