package notification

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// Nop bỏ qua mọi message, dùng khi không bật websocket
type Nop struct{}

func (Nop) SendMessage(string) error { return nil }

const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)

// BookingEvent payload gửi cho client qua websocket
type BookingEvent struct {
	Event     string    `json:"event"`
	BookingID uuid.UUID `json:"bookingId"`
	RoomID    uuid.UUID `json:"roomId"`
	AccountID uuid.UUID `json:"accountId"`
	Status    int       `json:"status"`
	At        time.Time `json:"at"`
}

type MessageBuilder struct {
	event BookingEvent
}

func NewMessageBuilder(event string, bookingID, roomID, accountID uuid.UUID) *MessageBuilder {
	return &MessageBuilder{event: BookingEvent{
		Event:     event,
		BookingID: bookingID,
		RoomID:    roomID,
		AccountID: accountID,
	}}
}

func (b *MessageBuilder) WithStatus(status int) *MessageBuilder {
	b.event.Status = status
	return b
}

func (b *MessageBuilder) At(t time.Time) *MessageBuilder {
	b.event.At = t
	return b
}

func (b *MessageBuilder) Build() (string, error) {
	data, err := json.Marshal(b.event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
