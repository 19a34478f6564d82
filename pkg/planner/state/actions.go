package state

import (
	"time"

	"ai-roomplanner-be/internal/entity"
)

// Action is the closed set of wizard transitions. Every implementation lives
// in this file; the reducer treats anything else (including nil) as a no-op.
type Action interface {
	isAction()
}

type SetStep struct{ Step int }

type NextStep struct{}

type PrevStep struct{}

// RoomConfigPatch shallow-merges into the room config; nil fields are left
// untouched.
type RoomConfigPatch struct {
	Type       *string  `json:"type"`
	Width      *float64 `json:"width"`
	Length     *float64 `json:"length"`
	FamilySize *string  `json:"familySize"`
}

type SetRoomConfig struct{ Patch RoomConfigPatch }

// BudgetPatch shallow-merges into the budget.
type BudgetPatch struct {
	Total       *int  `json:"total"`
	SmartBudget *bool `json:"smartBudget"`
}

type SetBudget struct{ Patch BudgetPatch }

// SetBudgetBreakdown merges category percentages into the breakdown map.
type SetBudgetBreakdown struct {
	Breakdown map[entity.Category]int
}

type ToggleStyle struct{ StyleId string }

type SetStyles struct{ StyleIds []string }

// SetInspirationImage replaces the image reference. A nil ref removes the
// image and clears any detected styles with it.
type SetInspirationImage struct{ Ref *string }

type SetDetectedStyles struct{ Styles []entity.StyleScore }

type AddProduct struct{ Product *entity.Product }

type RemoveProduct struct{ ProductId string }

type SetFurnitureLayout struct{ Layout []entity.FurniturePlacement }

type UpdateFurniturePosition struct {
	Id string
	X  float64
	Y  float64
}

// ConsultationPatch shallow-merges into the consultation form.
type ConsultationPatch struct {
	Date     *time.Time               `json:"date"`
	TimeSlot *string                  `json:"timeSlot"`
	Name     *string                  `json:"name"`
	Email    *string                  `json:"email"`
	Phone    *string                  `json:"phone"`
	Notes    *string                  `json:"notes"`
	Type     *entity.ConsultationType `json:"type"`
}

type SetConsultation struct{ Patch ConsultationPatch }

type Complete struct{}

type Reset struct{}

func (SetStep) isAction()                 {}
func (NextStep) isAction()                {}
func (PrevStep) isAction()                {}
func (SetRoomConfig) isAction()           {}
func (SetBudget) isAction()               {}
func (SetBudgetBreakdown) isAction()      {}
func (ToggleStyle) isAction()             {}
func (SetStyles) isAction()               {}
func (SetInspirationImage) isAction()     {}
func (SetDetectedStyles) isAction()       {}
func (AddProduct) isAction()              {}
func (RemoveProduct) isAction()           {}
func (SetFurnitureLayout) isAction()      {}
func (UpdateFurniturePosition) isAction() {}
func (SetConsultation) isAction()         {}
func (Complete) isAction()                {}
func (Reset) isAction()                   {}
