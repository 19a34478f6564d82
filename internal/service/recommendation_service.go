package service

import (
	"context"

	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/mapper"
	"ai-roomplanner-be/internal/pkg/logger"
	"ai-roomplanner-be/internal/repository/contract"
	"ai-roomplanner-be/pkg/planner/recommend"
)

type IRecommendationService interface {
	Generate(ctx context.Context, req *dto.GenerateRecommendationsRequest) *dto.RecommendationResponse
	GenerateForSession(ctx context.Context, sessionId string) *dto.RecommendationResponse
	Alternatives(ctx context.Context, productId string, budget float64) *dto.AlternativesResponse
}

type recommendationService struct {
	engine   *recommend.Engine
	sessions contract.ISessionRepository
	log      logger.ILogger
}

func NewRecommendationService(
	engine *recommend.Engine,
	sessions contract.ISessionRepository,
	log logger.ILogger,
) IRecommendationService {
	return &recommendationService{
		engine:   engine,
		sessions: sessions,
		log:      log,
	}
}

func (s *recommendationService) Generate(ctx context.Context, req *dto.GenerateRecommendationsRequest) *dto.RecommendationResponse {
	rec := s.engine.Generate(recommend.Input{
		RoomId:       req.RoomId,
		Budget:       req.Budget,
		StyleIds:     req.StyleIds,
		FamilySizeId: req.FamilySizeId,
	})

	s.log.Info("recommendation", "Recommendations generated", map[string]interface{}{
		"roomId":      req.RoomId,
		"budget":      req.Budget,
		"products":    len(rec.Products),
		"utilization": rec.BudgetUtilization,
	})

	res := mapper.ToRecommendationResponse(rec)
	return &res
}

// GenerateForSession runs the engine against a session's current room,
// budget and style selections. A missing session yields nil.
func (s *recommendationService) GenerateForSession(ctx context.Context, sessionId string) *dto.RecommendationResponse {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil
	}

	snapshot := sess.Snapshot()
	return s.Generate(ctx, &dto.GenerateRecommendationsRequest{
		RoomId:       snapshot.RoomConfig.Type,
		Budget:       snapshot.Budget.Total,
		StyleIds:     snapshot.SelectedStyles,
		FamilySizeId: snapshot.RoomConfig.FamilySize,
	})
}

func (s *recommendationService) Alternatives(ctx context.Context, productId string, budget float64) *dto.AlternativesResponse {
	return &dto.AlternativesResponse{
		ProductId:    productId,
		Alternatives: s.engine.Alternatives(productId, budget),
	}
}
