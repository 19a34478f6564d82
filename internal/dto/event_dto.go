package dto

import "time"

// Event payloads published on the in-process bus.

type PlannerCompletedEvent struct {
	SessionId   string    `json:"sessionId"`
	ItemCount   int       `json:"itemCount"`
	TotalPrice  int       `json:"totalPrice"`
	CompletedAt time.Time `json:"completedAt"`
}

type ConsultationBookedEvent struct {
	SessionId string    `json:"sessionId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      time.Time `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	Type      string    `json:"type"`
	BookedAt  time.Time `json:"bookedAt"`
}
