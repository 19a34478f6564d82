package entity

// Category is the fixed furniture category enumeration used across the
// catalog, the budget allocator and the recommendation engine.
type Category string

const (
	CategorySeating  Category = "seating"
	CategoryStorage  Category = "storage"
	CategoryLighting Category = "lighting"
	CategoryDecor    Category = "decor"
	CategoryTables   Category = "tables"
	CategoryBedroom  Category = "bedroom"
)

// AllCategories lists every known category in display order.
var AllCategories = []Category{
	CategorySeating,
	CategoryStorage,
	CategoryLighting,
	CategoryDecor,
	CategoryTables,
	CategoryBedroom,
}

// Dimensions are in centimeters.
type Dimensions struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// Product is an immutable catalog entry. Price is a whole SAR amount.
type Product struct {
	Id            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	ArticleNumber string     `json:"articleNumber"`
	Category      Category   `json:"category"`
	Subcategory   string     `json:"subcategory"`
	Price         int        `json:"price"`
	Dimensions    Dimensions `json:"dimensions"`
	Rooms         []string   `json:"rooms"`
	Styles        []string   `json:"styles"`
	Image         string     `json:"image"`
}

// InRoom reports whether the product is eligible for the given room type.
func (p *Product) InRoom(roomId string) bool {
	for _, r := range p.Rooms {
		if r == roomId {
			return true
		}
	}
	return false
}

// StyleMatchCount returns how many of the given style ids the product carries.
func (p *Product) StyleMatchCount(styleIds []string) int {
	count := 0
	for _, s := range p.Styles {
		for _, want := range styleIds {
			if s == want {
				count++
				break
			}
		}
	}
	return count
}
