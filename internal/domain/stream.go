package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamRecResourceUpdated = "stream:rec_resource:updated"
)

// ResourceUpdatedEvent - событие об изменении ресурса в админке
type ResourceUpdatedEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	RecResourceID string    `json:"rec_resource_id"`
	Relation      string    `json:"relation"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewResourceUpdatedEvent создает событие с новым EventID
func NewResourceUpdatedEvent(recResourceID, relation string) ResourceUpdatedEvent {
	return ResourceUpdatedEvent{
		EventID:       uuid.New(),
		RecResourceID: recResourceID,
		Relation:      relation,
		UpdatedAt:     time.Now().UTC(),
	}
}

// Validate проверяет обязательные поля события
func (e ResourceUpdatedEvent) Validate() error {
	if e.EventID == uuid.Nil {
		return fmt.Errorf("event_id is required")
	}
	if e.RecResourceID == "" {
		return fmt.Errorf("rec_resource_id is required")
	}
	return nil
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
