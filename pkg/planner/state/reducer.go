// Package state holds the wizard state machine: one State value per planner
// session and a pure reducer over a closed action set.
package state

import (
	"ai-roomplanner-be/internal/constant"
	"ai-roomplanner-be/internal/entity"
)

// State is the single source of truth for one wizard session. Consumers read
// snapshots and mutate only through Reduce.
type State struct {
	CurrentStep      int                         `json:"currentStep"`
	RoomConfig       entity.RoomConfig           `json:"roomConfig"`
	Budget           entity.Budget               `json:"budget"`
	SelectedStyles   []string                    `json:"selectedStyles"`
	InspirationImage *string                     `json:"inspirationImage"`
	DetectedStyles   []entity.StyleScore         `json:"detectedStyles"`
	SelectedProducts []*entity.Product           `json:"selectedProducts"`
	FurnitureLayout  []entity.FurniturePlacement `json:"furnitureLayout"`
	Consultation     entity.Consultation         `json:"consultation"`
	IsComplete       bool                        `json:"isComplete"`
}

// Initial returns the default session state.
func Initial() State {
	return State{
		CurrentStep: constant.StepRoomSetup,
		RoomConfig: entity.RoomConfig{
			Type:       "",
			Width:      4,
			Length:     5,
			FamilySize: "couple",
		},
		Budget: entity.Budget{
			Total: 15000,
			Breakdown: map[entity.Category]int{
				entity.CategorySeating:  40,
				entity.CategoryStorage:  25,
				entity.CategoryLighting: 15,
				entity.CategoryDecor:    20,
			},
			SmartBudget: true,
		},
		SelectedStyles:   []string{},
		SelectedProducts: []*entity.Product{},
		FurnitureLayout:  []entity.FurniturePlacement{},
	}
}

// Reduce applies one action and returns the next state. The input state is
// never mutated; slices and maps are copied before any write. Nil actions
// are no-ops.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetStep:
		s.CurrentStep = clampStep(a.Step)

	case NextStep:
		s.CurrentStep = clampStep(s.CurrentStep + 1)

	case PrevStep:
		s.CurrentStep = clampStep(s.CurrentStep - 1)

	case SetRoomConfig:
		rc := s.RoomConfig
		if a.Patch.Type != nil {
			rc.Type = *a.Patch.Type
		}
		if a.Patch.Width != nil {
			rc.Width = clampDimension(*a.Patch.Width)
		}
		if a.Patch.Length != nil {
			rc.Length = clampDimension(*a.Patch.Length)
		}
		if a.Patch.FamilySize != nil {
			rc.FamilySize = *a.Patch.FamilySize
		}
		s.RoomConfig = rc

	case SetBudget:
		b := s.Budget
		if a.Patch.Total != nil {
			b.Total = *a.Patch.Total
		}
		if a.Patch.SmartBudget != nil {
			b.SmartBudget = *a.Patch.SmartBudget
		}
		s.Budget = b

	case SetBudgetBreakdown:
		merged := make(map[entity.Category]int, len(s.Budget.Breakdown)+len(a.Breakdown))
		for cat, pct := range s.Budget.Breakdown {
			merged[cat] = pct
		}
		for cat, pct := range a.Breakdown {
			merged[cat] = pct
		}
		s.Budget.Breakdown = merged

	case ToggleStyle:
		s.SelectedStyles = toggleString(s.SelectedStyles, a.StyleId)

	case SetStyles:
		s.SelectedStyles = append([]string(nil), a.StyleIds...)

	case SetInspirationImage:
		s.InspirationImage = a.Ref
		if a.Ref == nil {
			s.DetectedStyles = nil
		}

	case SetDetectedStyles:
		// Results for an image removed while the analysis ran must not
		// resurface; detected styles only exist alongside an image.
		if s.InspirationImage != nil {
			s.DetectedStyles = a.Styles
		}

	case AddProduct:
		if a.Product == nil {
			return s
		}
		for _, p := range s.SelectedProducts {
			if p.Id == a.Product.Id {
				return s
			}
		}
		s.SelectedProducts = append(append([]*entity.Product(nil), s.SelectedProducts...), a.Product)

	case RemoveProduct:
		products := make([]*entity.Product, 0, len(s.SelectedProducts))
		for _, p := range s.SelectedProducts {
			if p.Id != a.ProductId {
				products = append(products, p)
			}
		}
		s.SelectedProducts = products

		// Cascade: layout entries must only reference selected products.
		layout := make([]entity.FurniturePlacement, 0, len(s.FurnitureLayout))
		for _, item := range s.FurnitureLayout {
			if item.ProductId != a.ProductId {
				layout = append(layout, item)
			}
		}
		s.FurnitureLayout = layout

	case SetFurnitureLayout:
		s.FurnitureLayout = append([]entity.FurniturePlacement(nil), a.Layout...)

	case UpdateFurniturePosition:
		layout := append([]entity.FurniturePlacement(nil), s.FurnitureLayout...)
		for i := range layout {
			if layout[i].Id == a.Id {
				layout[i].X = a.X
				layout[i].Y = a.Y
			}
		}
		s.FurnitureLayout = layout

	case SetConsultation:
		c := s.Consultation
		if a.Patch.Date != nil {
			c.Date = a.Patch.Date
		}
		if a.Patch.TimeSlot != nil {
			c.TimeSlot = *a.Patch.TimeSlot
		}
		if a.Patch.Name != nil {
			c.Name = *a.Patch.Name
		}
		if a.Patch.Email != nil {
			c.Email = *a.Patch.Email
		}
		if a.Patch.Phone != nil {
			c.Phone = *a.Patch.Phone
		}
		if a.Patch.Notes != nil {
			c.Notes = *a.Patch.Notes
		}
		if a.Patch.Type != nil {
			c.Type = *a.Patch.Type
		}
		s.Consultation = c

	case Complete:
		s.IsComplete = true

	case Reset:
		return Initial()
	}

	return s
}

func clampStep(step int) int {
	if step < 0 {
		return 0
	}
	if step > constant.StepCount-1 {
		return constant.StepCount - 1
	}
	return step
}

func clampDimension(v float64) float64 {
	if v < constant.RoomDimensionMin {
		return constant.RoomDimensionMin
	}
	if v > constant.RoomDimensionMax {
		return constant.RoomDimensionMax
	}
	return v
}

func toggleString(list []string, value string) []string {
	for i, v := range list {
		if v == value {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	return append(append([]string(nil), list...), value)
}
