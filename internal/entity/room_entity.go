package entity

// RoomTemplate is an immutable catalog entry describing a plannable room type.
// BudgetAllocation maps category to a percentage weight; the weights are
// approximate and need not sum to exactly 100.
type RoomTemplate struct {
	Id                  string           `json:"id"`
	Name                string           `json:"name"`
	NameAr              string           `json:"nameAr"`
	DefaultWidth        float64          `json:"defaultWidth"`
	DefaultLength       float64          `json:"defaultLength"`
	EssentialCategories []Category       `json:"essentialCategories"`
	BudgetAllocation    map[Category]int `json:"budgetAllocation"`
}

// FamilySize is a household-size hint threaded through recommendation input.
type FamilySize struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}
