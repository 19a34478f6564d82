package constant

import "ai-roomplanner-be/internal/entity"

// Wizard steps. NEXT_STEP clamps at StepBooking, PREV_STEP at StepRoomSetup.
const (
	StepRoomSetup = 0
	StepBudget    = 1
	StepStyle     = 2
	StepProducts  = 3
	StepLayout    = 4
	StepBooking   = 5

	StepCount = 6
)

// StepInfo is one stepper entry. Exposed to clients so the progress bar and
// the planner stay in sync on titles.
type StepInfo struct {
	Id    int    `json:"id"`
	Title string `json:"title"`
}

var Steps = []StepInfo{
	{Id: StepRoomSetup, Title: "Room Setup"},
	{Id: StepBudget, Title: "Budget"},
	{Id: StepStyle, Title: "Style"},
	{Id: StepProducts, Title: "Products"},
	{Id: StepLayout, Title: "Layout"},
	{Id: StepBooking, Title: "Book"},
}

// Budget allocation tuning.
const (
	// FallbackCategoryShare is applied when a room template omits a category
	// from its budgetAllocation map.
	FallbackCategoryShare = 0.15

	// DecorCommitCeiling gates each decor top-up: an item is only added while
	// the running total stays at or below this share of the budget.
	DecorCommitCeiling = 0.95

	// DecorStopThreshold ends the decor top-up once the running total reaches
	// this share of the budget.
	DecorStopThreshold = 0.80
)

// DefaultBudgetSplit is the fixed allocation used when smart budget is off or
// the room type is unknown. Percentages sum to 100.
var DefaultBudgetSplit = map[entity.Category]float64{
	entity.CategorySeating:  0.40,
	entity.CategoryStorage:  0.25,
	entity.CategoryLighting: 0.15,
	entity.CategoryDecor:    0.10,
	entity.CategoryTables:   0.10,
}

// Alternatives resolver bounds.
const (
	AlternativesMax        = 4
	AlternativesPriceFloor = 0.5
	AlternativesPriceCeil  = 1.2
)

// Room dimension clamps, meters.
const (
	RoomDimensionMin = 1.0
	RoomDimensionMax = 15.0
)

// Consultation time slots served to the booking UI.
type TimeSlot struct {
	Id        string `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

var TimeSlots = []TimeSlot{
	{Id: "09:00", Label: "9:00 AM", Available: true},
	{Id: "10:00", Label: "10:00 AM", Available: true},
	{Id: "11:00", Label: "11:00 AM", Available: true},
	{Id: "12:00", Label: "12:00 PM", Available: true},
	{Id: "14:00", Label: "2:00 PM", Available: true},
	{Id: "15:00", Label: "3:00 PM", Available: true},
	{Id: "16:00", Label: "4:00 PM", Available: true},
	{Id: "17:00", Label: "5:00 PM", Available: true},
	{Id: "18:00", Label: "6:00 PM", Available: true},
}

// Event topics for the in-process bus.
const (
	TopicPlannerCompleted    = "planner.completed"
	TopicConsultationBooked  = "consultation.booked"
	TopicAnalysisCompleted   = "analysis.completed"
	TopicPlannerSessionReset = "planner.session.reset"
)
