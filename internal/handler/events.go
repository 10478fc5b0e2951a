package handler

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/za-dev/roomfinder-service/internal/model"
)

const (
	eventBookingConfirmed   = "booking_confirmed"
	eventBookingRescheduled = "booking_rescheduled"
	eventBookingCancelled   = "booking_cancelled"
)

type BookingEvent struct {
	EventID   string             `json:"event_id"`
	Type      string             `json:"type"`
	BookingID int                `json:"booking_id"`
	Bookings  []model.BookedRoom `json:"bookings"`
	At        time.Time          `json:"at"`
}

func newBookingEvent(eventType string, bookingID int, rooms []model.BookedRoom) BookingEvent {
	return BookingEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		BookingID: bookingID,
		Bookings:  rooms,
		At:        time.Now().UTC(),
	}
}

type Enqueuer interface {
	Enqueue(event BookingEvent) error
}

// NewEnqueuer wraps a kafka producer; a nil producer yields a no-op
// enqueuer so the transport works without brokers.
func NewEnqueuer(producer sarama.SyncProducer, topic string) Enqueuer {
	if producer == nil {
		return noopEnqueuer{}
	}
	return &enqueuerImpl{
		producer: producer,
		topic:    topic,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func (q *enqueuerImpl) Enqueue(event BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: q.topic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

type noopEnqueuer struct{}

func (noopEnqueuer) Enqueue(BookingEvent) error { return nil }
