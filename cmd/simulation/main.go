package main

import (
	"fmt"
	"strconv"

	"ai-roomplanner-be/internal/catalog"
	"ai-roomplanner-be/pkg/planner/recommend"
	"ai-roomplanner-be/pkg/planner/state"

	"github.com/fatih/color"
)

// Scripted wizard run against the in-process core: configure a room, pick
// styles, generate recommendations, add them to the plan and print the
// result. Useful for eyeballing engine output without starting the server.
func main() {
	color.Cyan("=== Room Planner Simulation ===")

	store := catalog.MustLoad()
	engine := recommend.NewEngine(store)

	roomType := "living-room"
	width, length := 4.5, 6.0
	budget := 15000
	styles := []string{"scandinavian", "modern"}

	s := state.Initial()
	s = state.Reduce(s, state.SetRoomConfig{Patch: state.RoomConfigPatch{
		Type:   &roomType,
		Width:  &width,
		Length: &length,
	}})
	s = state.Reduce(s, state.SetBudget{Patch: state.BudgetPatch{Total: &budget}})
	s = state.Reduce(s, state.SetStyles{StyleIds: styles})

	color.Yellow("\nRoom: %s (%.1fm x %.1fm), budget %s, styles %v",
		s.RoomConfig.Type, s.RoomConfig.Width, s.RoomConfig.Length,
		formatSAR(s.Budget.Total), s.SelectedStyles)

	rec := engine.Generate(recommend.Input{
		RoomId:       s.RoomConfig.Type,
		Budget:       s.Budget.Total,
		StyleIds:     s.SelectedStyles,
		FamilySizeId: s.RoomConfig.FamilySize,
	})

	color.Cyan("\nBundles:")
	for _, b := range rec.Bundles {
		fmt.Printf("  [%-8s] %-28s %10s  (allocated %s, %d alternatives)\n",
			b.Category, b.Product.Name, formatSAR(b.Product.Price),
			formatSAR(int(b.BudgetAllocated)), len(b.Alternatives))
	}

	color.Cyan("\nSelected products:")
	for _, p := range rec.Products {
		s = state.Reduce(s, state.AddProduct{Product: p})
		fmt.Printf("  %-32s %10s  %s\n", p.Name, formatSAR(p.Price), p.ArticleNumber)
	}

	if len(rec.Products) > 0 {
		first := rec.Products[0]
		alts := engine.Alternatives(first.Id, float64(first.Price))
		color.Cyan("\nAlternatives for %s:", first.Name)
		if len(alts) == 0 {
			fmt.Println("  (none in price range)")
		}
		for _, p := range alts {
			fmt.Printf("  %-32s %10s\n", p.Name, formatSAR(p.Price))
		}
	}

	total := 0
	for _, p := range s.SelectedProducts {
		total += p.Price
	}

	color.Green("\nTotal: %s of %s (%d%% of budget), %d items",
		formatSAR(total), formatSAR(rec.Budget), rec.BudgetUtilization, len(s.SelectedProducts))
}

// formatSAR renders a whole riyal amount with thousands separators.
func formatSAR(amount int) string {
	digits := strconv.Itoa(amount)
	negative := false
	if amount < 0 {
		negative = true
		digits = digits[1:]
	}

	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if negative {
		return "-SAR " + string(out)
	}
	return "SAR " + string(out)
}
