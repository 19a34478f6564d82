package entity

// Bundle is one essential category's best affordable pick plus its runner-up
// alternatives. The pick is recorded even when the running total kept it out
// of the final selection.
type Bundle struct {
	Category        Category   `json:"category"`
	Product         *Product   `json:"product"`
	BudgetAllocated float64    `json:"budgetAllocated"`
	Alternatives    []*Product `json:"alternatives"`
}

// Recommendation is the full output of the recommendation engine. An unknown
// room yields the zero-ish degenerate value (empty slices, TotalPrice 0)
// rather than an error.
type Recommendation struct {
	Products          []*Product    `json:"products"`
	Bundles           []*Bundle     `json:"bundles"`
	TotalPrice        int           `json:"totalPrice"`
	Budget            int           `json:"budget"`
	BudgetUtilization int           `json:"budgetUtilization"`
	Room              *RoomTemplate `json:"room"`
	StyleMatches      []string      `json:"styleMatches"`
	FamilySize        *FamilySize   `json:"familySize"`
}
