package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendConsultationConfirmation(toEmail, name string, date time.Time, timeSlot, consultationType string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendConsultationConfirmation(toEmail, name string, date time.Time, timeSlot, consultationType string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your design consultation is booked")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>See you soon, %s!</h2>
			<p>Your %s design consultation is confirmed for:</p>
			<h3>%s at %s</h3>
			<p>Our interior specialist will walk through your room plan and selected products with you.</p>
			<p>Need to reschedule? Just reply to this email.</p>
		</div>
	`, name, consultationType, date.Format("Monday, 2 January 2006"), timeSlot)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("mailer: send confirmation to %s: %w", toEmail, err)
	}
	return nil
}
