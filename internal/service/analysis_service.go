package service

import (
	"context"

	"ai-roomplanner-be/internal/constant"
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/entity"
	"ai-roomplanner-be/internal/mapper"
	"ai-roomplanner-be/internal/pkg/logger"
	"ai-roomplanner-be/internal/repository/contract"
	"ai-roomplanner-be/pkg/planner/inference"
	"ai-roomplanner-be/pkg/planner/state"
)

type IAnalysisService interface {
	SubmitInspiration(ctx context.Context, sessionId string, req *dto.SubmitInspirationRequest) *dto.SessionResponse
	RemoveInspiration(ctx context.Context, sessionId string) *dto.SessionResponse
	Result(ctx context.Context, sessionId string) *dto.AnalysisStatusResponse
}

type analysisService struct {
	analyzer  *inference.Analyzer
	sessions  contract.ISessionRepository
	publisher IPublisherService
	log       logger.ILogger
}

func NewAnalysisService(
	analyzer *inference.Analyzer,
	sessions contract.ISessionRepository,
	publisher IPublisherService,
	log logger.ILogger,
) IAnalysisService {
	return &analysisService{
		analyzer:  analyzer,
		sessions:  sessions,
		publisher: publisher,
		log:       log,
	}
}

// SubmitInspiration attaches the image reference and kicks off the simulated
// style analysis. Submitting again supersedes any run still in flight, so
// only the latest image's result ever lands on the session.
func (s *analysisService) SubmitInspiration(ctx context.Context, sessionId string, req *dto.SubmitInspirationRequest) *dto.SessionResponse {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil
	}

	imageRef := req.ImageRef
	snapshot := sess.Dispatch(state.SetInspirationImage{Ref: &imageRef})
	s.sessions.Save(sess)

	s.analyzer.Submit(sessionId, req.ColorHints, func(scores []entity.StyleScore) {
		current, ok := s.sessions.Get(sessionId)
		if !ok {
			return
		}
		// The image may have been removed while the analysis ran; a result
		// for a gone image must not resurface.
		if current.Snapshot().InspirationImage == nil {
			return
		}
		current.Dispatch(state.SetDetectedStyles{Styles: scores})
		s.sessions.Save(current)

		s.log.Info("analysis", "Style analysis delivered", map[string]interface{}{
			"sessionId": sessionId,
			"styles":    len(scores),
		})

		if err := s.publisher.Publish(context.Background(), constant.TopicAnalysisCompleted, map[string]interface{}{
			"sessionId": sessionId,
			"styles":    len(scores),
		}); err != nil {
			s.log.Warn("analysis", "Failed to publish analysis completed event", map[string]interface{}{
				"sessionId": sessionId,
				"error":     err.Error(),
			})
		}
	})

	res := mapper.ToSessionResponseWithState(sess, snapshot)
	return &res
}

// RemoveInspiration cancels any in-flight analysis and clears the image; the
// reducer clears the detected styles along with it.
func (s *analysisService) RemoveInspiration(ctx context.Context, sessionId string) *dto.SessionResponse {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil
	}

	s.analyzer.Cancel(sessionId)
	snapshot := sess.Dispatch(state.SetInspirationImage{Ref: nil})
	s.sessions.Save(sess)

	res := mapper.ToSessionResponseWithState(sess, snapshot)
	return &res
}

func (s *analysisService) Result(ctx context.Context, sessionId string) *dto.AnalysisStatusResponse {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil
	}

	return &dto.AnalysisStatusResponse{
		SessionId:   sessionId,
		IsAnalyzing: s.analyzer.Analyzing(sessionId),
		Detected:    sess.Snapshot().DetectedStyles,
	}
}
