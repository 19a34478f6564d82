package entity

import "time"

// RoomConfig is the session-scoped room setup. Width and length are meters
// and are clamped to [1,15] by the reducer.
type RoomConfig struct {
	Type       string  `json:"type"`
	Width      float64 `json:"width"`
	Length     float64 `json:"length"`
	FamilySize string  `json:"familySize"`
}

// Budget is the session-scoped spending envelope. Total is a whole SAR
// amount; the UI slider keeps it in [1000,50000] but nothing else enforces
// that. Breakdown holds percentage weights the budget step displays.
type Budget struct {
	Total       int              `json:"total"`
	Breakdown   map[Category]int `json:"breakdown"`
	SmartBudget bool             `json:"smartBudget"`
}

// FurniturePlacement is one item placed on the 2D layout canvas. X and Y are
// canvas units, independent of the room's real-world size. ProductId always
// references a currently selected product.
type FurniturePlacement struct {
	Id          string     `json:"id"`
	ProductId   string     `json:"productId"`
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Subcategory string     `json:"subcategory"`
	Dimensions  Dimensions `json:"dimensions"`
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	Rotation    float64    `json:"rotation"`
}

// ConsultationType distinguishes how the consultation takes place.
type ConsultationType string

const (
	ConsultationOnline  ConsultationType = "online"
	ConsultationInStore ConsultationType = "in-store"
)

// Consultation holds the booking form. Fields are free-form until submission,
// where the consultation service validates them.
type Consultation struct {
	Date     *time.Time       `json:"date"`
	TimeSlot string           `json:"timeSlot"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Notes    string           `json:"notes"`
	Type     ConsultationType `json:"type"`
}
