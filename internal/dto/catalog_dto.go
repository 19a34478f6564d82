package dto

import (
	"ai-roomplanner-be/internal/constant"
	"ai-roomplanner-be/internal/entity"
)

type ProductListResponse struct {
	Products []*entity.Product `json:"products"`
	Count    int               `json:"count"`
}

// DebugCatalogResponse is the full catalog dump behind the debug route.
type DebugCatalogResponse struct {
	Products    []*entity.Product      `json:"products"`
	Styles      []*entity.Style        `json:"styles"`
	Rooms       []*entity.RoomTemplate `json:"rooms"`
	FamilySizes []*entity.FamilySize   `json:"familySizes"`
	TimeSlots   []constant.TimeSlot    `json:"timeSlots"`
	Steps       []constant.StepInfo    `json:"steps"`
}
