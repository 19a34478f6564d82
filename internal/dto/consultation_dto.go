package dto

import "time"

type BookConsultationRequest struct {
	Date     string `json:"date" validate:"required"`
	TimeSlot string `json:"timeSlot" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Notes    string `json:"notes"`
	Type     string `json:"type" validate:"omitempty,oneof=online in-store"`
}

type BookConsultationResponse struct {
	SessionId  string    `json:"sessionId"`
	Date       time.Time `json:"date"`
	TimeSlot   string    `json:"timeSlot"`
	Type       string    `json:"type"`
	IsComplete bool      `json:"isComplete"`
}

type CheckoutResponse struct {
	SessionId  string `json:"sessionId"`
	ItemCount  int    `json:"itemCount"`
	TotalPrice int    `json:"totalPrice"`
	Savings    int    `json:"savings"`
	IsComplete bool   `json:"isComplete"`
}
