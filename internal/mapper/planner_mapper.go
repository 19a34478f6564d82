package mapper

import (
	"ai-roomplanner-be/internal/constant"
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/entity"
	"ai-roomplanner-be/pkg/planner/session"
	"ai-roomplanner-be/pkg/planner/state"
)

// ToSessionResponse maps a session snapshot into the wire form. The snapshot
// is taken once so the response is internally consistent.
func ToSessionResponse(sess *session.Session) dto.SessionResponse {
	snapshot := sess.Snapshot()
	return sessionResponseFrom(sess, snapshot)
}

// ToSessionResponseWithState maps an already-taken snapshot, used right after
// a dispatch so the caller does not race a second read.
func ToSessionResponseWithState(sess *session.Session, snapshot state.State) dto.SessionResponse {
	return sessionResponseFrom(sess, snapshot)
}

func sessionResponseFrom(sess *session.Session, snapshot state.State) dto.SessionResponse {
	return dto.SessionResponse{
		Id:               sess.ID,
		CurrentStep:      snapshot.CurrentStep,
		Steps:            constant.Steps,
		RoomConfig:       snapshot.RoomConfig,
		Budget:           snapshot.Budget,
		SelectedStyles:   snapshot.SelectedStyles,
		InspirationImage: snapshot.InspirationImage,
		DetectedStyles:   snapshot.DetectedStyles,
		SelectedProducts: snapshot.SelectedProducts,
		FurnitureLayout:  snapshot.FurnitureLayout,
		Consultation:     snapshot.Consultation,
		IsComplete:       snapshot.IsComplete,
		TotalPrice:       totalPrice(snapshot.SelectedProducts),
		CreatedAt:        sess.CreatedAt,
	}
}

func totalPrice(products []*entity.Product) int {
	total := 0
	for _, p := range products {
		total += p.Price
	}
	return total
}

// ToRecommendationResponse flattens the engine output for the wire.
func ToRecommendationResponse(rec *entity.Recommendation) dto.RecommendationResponse {
	bundles := make([]dto.BundleResponse, 0, len(rec.Bundles))
	for _, b := range rec.Bundles {
		bundles = append(bundles, dto.BundleResponse{
			Category:        b.Category,
			Product:         b.Product,
			BudgetAllocated: b.BudgetAllocated,
			Alternatives:    b.Alternatives,
		})
	}
	return dto.RecommendationResponse{
		Products:          rec.Products,
		Bundles:           bundles,
		TotalPrice:        rec.TotalPrice,
		Budget:            rec.Budget,
		BudgetUtilization: rec.BudgetUtilization,
		Room:              rec.Room,
		StyleMatches:      rec.StyleMatches,
		FamilySize:        rec.FamilySize,
	}
}
