package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPostCreated        EventType = "post_created"
	EventPostUpdated        EventType = "post_updated"
	EventPostDeleted        EventType = "post_deleted"
	EventConsultationBooked EventType = "consultation_booked"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PostEventPayload payload for post lifecycle events.
type PostEventPayload struct {
	PostID string `json:"post_id"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}

// ConsultationBookedPayload payload.
type ConsultationBookedPayload struct {
	ConsultationID string `json:"consultation_id"`
	Date           string `json:"date"`
}
