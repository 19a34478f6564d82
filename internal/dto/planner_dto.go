package dto

import (
	"encoding/json"
	"time"

	"ai-roomplanner-be/internal/constant"
	"ai-roomplanner-be/internal/entity"
)

// DispatchActionRequest is the wire form of a wizard action. Payload is
// decoded per Type; unknown types are accepted and ignored, matching the
// reducer's permissive no-op behavior.
type DispatchActionRequest struct {
	Type    string          `json:"type" validate:"required"`
	Payload json.RawMessage `json:"payload"`
}

// Wire action type names, the client's dispatch vocabulary.
const (
	ActionSetStep                 = "SET_STEP"
	ActionNextStep                = "NEXT_STEP"
	ActionPrevStep                = "PREV_STEP"
	ActionSetRoomConfig           = "SET_ROOM_CONFIG"
	ActionSetBudget               = "SET_BUDGET"
	ActionSetBudgetBreakdown      = "SET_BUDGET_BREAKDOWN"
	ActionToggleStyle             = "TOGGLE_STYLE"
	ActionSetStyles               = "SET_STYLES"
	ActionSetInspirationImage     = "SET_INSPIRATION_IMAGE"
	ActionAddProduct              = "ADD_PRODUCT"
	ActionRemoveProduct           = "REMOVE_PRODUCT"
	ActionSetFurnitureLayout      = "SET_FURNITURE_LAYOUT"
	ActionUpdateFurniturePosition = "UPDATE_FURNITURE_POSITION"
	ActionSetConsultation         = "SET_CONSULTATION"
	ActionComplete                = "COMPLETE"
	ActionReset                   = "RESET"
)

type SetStepPayload struct {
	Step int `json:"step"`
}

type ToggleStylePayload struct {
	StyleId string `json:"styleId"`
}

type SetStylesPayload struct {
	StyleIds []string `json:"styleIds"`
}

type SetInspirationImagePayload struct {
	Ref *string `json:"ref"`
}

type ProductRefPayload struct {
	ProductId string `json:"productId"`
}

type SetFurnitureLayoutPayload struct {
	Layout []entity.FurniturePlacement `json:"layout"`
}

type UpdateFurniturePositionPayload struct {
	Id string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type SetBudgetBreakdownPayload struct {
	Breakdown map[entity.Category]int `json:"breakdown"`
}

// SessionResponse is the full wizard snapshot returned by every session
// endpoint, so clients always render from one consistent state.
type SessionResponse struct {
	Id               string                      `json:"id"`
	CurrentStep      int                         `json:"currentStep"`
	Steps            []constant.StepInfo         `json:"steps"`
	RoomConfig       entity.RoomConfig           `json:"roomConfig"`
	Budget           entity.Budget               `json:"budget"`
	SelectedStyles   []string                    `json:"selectedStyles"`
	InspirationImage *string                     `json:"inspirationImage"`
	DetectedStyles   []entity.StyleScore         `json:"detectedStyles,omitempty"`
	SelectedProducts []*entity.Product           `json:"selectedProducts"`
	FurnitureLayout  []entity.FurniturePlacement `json:"furnitureLayout"`
	Consultation     entity.Consultation         `json:"consultation"`
	IsComplete       bool                        `json:"isComplete"`
	TotalPrice       int                         `json:"totalPrice"`
	CreatedAt        time.Time                   `json:"createdAt"`
}

type ShareLinkResponse struct {
	Payload  string `json:"payload"`
	ShareURL string `json:"shareUrl"`
}

type RestoreSessionRequest struct {
	Payload string `json:"payload" validate:"required"`
}
