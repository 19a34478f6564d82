package service

import (
	"context"
	"encoding/json"

	"ai-roomplanner-be/internal/constant"
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/pkg/logger"
	"ai-roomplanner-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains planner events off the in-process bus. Completed
// plans are logged; booked consultations additionally trigger the
// confirmation email, kept off the request path on purpose.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		emailService: emailService,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	completed, err := cs.pubSub.Subscribe(ctx, constant.TopicPlannerCompleted)
	if err != nil {
		return err
	}
	booked, err := cs.pubSub.Subscribe(ctx, constant.TopicConsultationBooked)
	if err != nil {
		return err
	}

	go func() {
		for msg := range completed {
			cs.processCompleted(msg)
		}
	}()
	go func() {
		for msg := range booked {
			cs.processBooked(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processCompleted(msg *message.Message) {
	var evt dto.PlannerCompletedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal planner completed event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads never become valid on retry
		return
	}

	cs.log.Info("consumer", "Planner session completed", map[string]interface{}{
		"sessionId":  evt.SessionId,
		"itemCount":  evt.ItemCount,
		"totalPrice": evt.TotalPrice,
	})
	msg.Ack()
}

func (cs *consumerService) processBooked(msg *message.Message) {
	var evt dto.ConsultationBookedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal consultation booked event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.log.Info("consumer", "Consultation booked", map[string]interface{}{
		"sessionId": evt.SessionId,
		"date":      evt.Date,
		"timeSlot":  evt.TimeSlot,
		"type":      evt.Type,
	})

	if cs.emailService == nil {
		msg.Ack()
		return
	}

	if err := cs.emailService.SendConsultationConfirmation(evt.Email, evt.Name, evt.Date, evt.TimeSlot, evt.Type); err != nil {
		// Mail is auxiliary; log and move on rather than retrying forever.
		cs.log.Error("consumer", "Failed to send confirmation email", map[string]interface{}{
			"sessionId": evt.SessionId,
			"error":     err.Error(),
		})
	}
	msg.Ack()
}
