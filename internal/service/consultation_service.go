package service

import (
	"context"
	"time"

	"ai-roomplanner-be/internal/constant"
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/entity"
	"ai-roomplanner-be/internal/pkg/logger"
	"ai-roomplanner-be/internal/pkg/serverutils"
	"ai-roomplanner-be/internal/repository/contract"
	"ai-roomplanner-be/pkg/planner/state"

	"github.com/gofiber/fiber/v2"
)

type IConsultationService interface {
	Book(ctx context.Context, sessionId string, req *dto.BookConsultationRequest) (*dto.BookConsultationResponse, error)
	Checkout(ctx context.Context, sessionId string) *dto.CheckoutResponse
}

type consultationService struct {
	sessions  contract.ISessionRepository
	publisher IPublisherService
	log       logger.ILogger
}

func NewConsultationService(
	sessions contract.ISessionRepository,
	publisher IPublisherService,
	log logger.ILogger,
) IConsultationService {
	return &consultationService{
		sessions:  sessions,
		publisher: publisher,
		log:       log,
	}
}

// Book validates the consultation form, merges it into the session, marks
// the plan complete and publishes the booked event. The confirmation email
// goes out from the consumer, never on this path.
func (s *consultationService) Book(ctx context.Context, sessionId string, req *dto.BookConsultationRequest) (*dto.BookConsultationResponse, error) {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil, nil
	}

	// Struct-tag validation runs here as well as in the controller, so the
	// invariant holds for non-HTTP callers.
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	date, err := parseConsultationDate(req.Date)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid consultation date: "+req.Date)
	}

	consultationType := entity.ConsultationType(req.Type)
	if consultationType == "" {
		consultationType = entity.ConsultationOnline
	}

	sess.Dispatch(
		state.SetConsultation{Patch: state.ConsultationPatch{
			Date:     &date,
			TimeSlot: &req.TimeSlot,
			Name:     &req.Name,
			Email:    &req.Email,
			Phone:    &req.Phone,
			Notes:    &req.Notes,
			Type:     &consultationType,
		}},
		state.Complete{},
	)
	s.sessions.Save(sess)

	evt := dto.ConsultationBookedEvent{
		SessionId: sessionId,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      date,
		TimeSlot:  req.TimeSlot,
		Type:      string(consultationType),
		BookedAt:  time.Now(),
	}
	if err := s.publisher.Publish(ctx, constant.TopicConsultationBooked, evt); err != nil {
		s.log.Warn("consultation", "Failed to publish booked event", map[string]interface{}{
			"sessionId": sessionId,
			"error":     err.Error(),
		})
	}

	return &dto.BookConsultationResponse{
		SessionId:  sessionId,
		Date:       date,
		TimeSlot:   req.TimeSlot,
		Type:       string(consultationType),
		IsComplete: true,
	}, nil
}

// Checkout totals the selected products, marks the plan complete and
// publishes the completed event. Savings is budget minus total, reported
// as-is; manual additions can push it negative.
func (s *consultationService) Checkout(ctx context.Context, sessionId string) *dto.CheckoutResponse {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil
	}

	snapshot := sess.Dispatch(state.Complete{})
	s.sessions.Save(sess)

	totalPrice := 0
	for _, p := range snapshot.SelectedProducts {
		totalPrice += p.Price
	}

	evt := dto.PlannerCompletedEvent{
		SessionId:   sessionId,
		ItemCount:   len(snapshot.SelectedProducts),
		TotalPrice:  totalPrice,
		CompletedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, constant.TopicPlannerCompleted, evt); err != nil {
		s.log.Warn("consultation", "Failed to publish completed event", map[string]interface{}{
			"sessionId": sessionId,
			"error":     err.Error(),
		})
	}

	return &dto.CheckoutResponse{
		SessionId:  sessionId,
		ItemCount:  len(snapshot.SelectedProducts),
		TotalPrice: totalPrice,
		Savings:    snapshot.Budget.Total - totalPrice,
		IsComplete: snapshot.IsComplete,
	}
}

// parseConsultationDate accepts the date input's plain form and full RFC3339
// timestamps.
func parseConsultationDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
