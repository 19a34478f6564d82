package mapper

import (
	"encoding/json"
	"fmt"

	"ai-roomplanner-be/internal/catalog"
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/pkg/planner/state"
)

// ActionFromRequest converts a wire action into a reducer action. Unknown
// action types map to (nil, nil): the reducer treats nil as a no-op, which
// keeps the wire surface as permissive as the reducer itself. A payload that
// fails to decode is a caller error.
func ActionFromRequest(req *dto.DispatchActionRequest, store *catalog.Store) (state.Action, error) {
	switch req.Type {
	case dto.ActionSetStep:
		var p dto.SetStepPayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return state.SetStep{Step: p.Step}, nil

	case dto.ActionNextStep:
		return state.NextStep{}, nil

	case dto.ActionPrevStep:
		return state.PrevStep{}, nil

	case dto.ActionSetRoomConfig:
		var p state.RoomConfigPatch
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return state.SetRoomConfig{Patch: p}, nil

	case dto.ActionSetBudget:
		var p state.BudgetPatch
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return state.SetBudget{Patch: p}, nil

	case dto.ActionSetBudgetBreakdown:
		var p dto.SetBudgetBreakdownPayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return state.SetBudgetBreakdown{Breakdown: p.Breakdown}, nil

	case dto.ActionToggleStyle:
		var p dto.ToggleStylePayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return state.ToggleStyle{StyleId: p.StyleId}, nil

	case dto.ActionSetStyles:
		var p dto.SetStylesPayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return state.SetStyles{StyleIds: p.StyleIds}, nil

	case dto.ActionSetInspirationImage:
		var p dto.SetInspirationImagePayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return state.SetInspirationImage{Ref: p.Ref}, nil

	case dto.ActionAddProduct:
		var p dto.ProductRefPayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		// An unknown product id is a no-op, not an error.
		product := store.FindProduct(p.ProductId)
		if product == nil {
			return nil, nil
		}
		return state.AddProduct{Product: product}, nil

	case dto.ActionRemoveProduct:
		var p dto.ProductRefPayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return state.RemoveProduct{ProductId: p.ProductId}, nil

	case dto.ActionSetFurnitureLayout:
		var p dto.SetFurnitureLayoutPayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return state.SetFurnitureLayout{Layout: p.Layout}, nil

	case dto.ActionUpdateFurniturePosition:
		var p dto.UpdateFurniturePositionPayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return state.UpdateFurniturePosition{Id: p.Id, X: p.X, Y: p.Y}, nil

	case dto.ActionSetConsultation:
		var p state.ConsultationPatch
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return state.SetConsultation{Patch: p}, nil

	case dto.ActionComplete:
		return state.Complete{}, nil

	case dto.ActionReset:
		return state.Reset{}, nil
	}

	return nil, nil
}

func decodePayload(req *dto.DispatchActionRequest, target interface{}) error {
	if len(req.Payload) == 0 {
		return fmt.Errorf("action %s requires a payload", req.Type)
	}
	if err := json.Unmarshal(req.Payload, target); err != nil {
		return fmt.Errorf("action %s payload: %w", req.Type, err)
	}
	return nil
}
