package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// EventStatus is the state of a timeline event. Transitions are
// deliberately permissive: any of the three values may be set from any
// other.
type EventStatus string

const (
	EventPending    EventStatus = "pending"
	EventInProgress EventStatus = "in-progress"
	EventCompleted  EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	return s == EventPending || s == EventInProgress || s == EventCompleted
}

// Event is one typed, timestamped occurrence on a project's timeline. Data
// is schema-checked against the metadata catalog at creation and stored
// as-is afterwards.
type Event struct {
	ID        uuid.UUID      `json:"id"`
	ProjectID uuid.UUID      `json:"projectId"`
	AdminID   uuid.UUID      `json:"adminId"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Status    EventStatus    `json:"status"`
	EventDate time.Time      `json:"eventDate"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// AnnotatedEvent carries the catalog label alongside the raw event for
// list responses.
type AnnotatedEvent struct {
	Event
	TypeLabel string `json:"typeLabel"`
}

var ErrEventNotFound = errors.New("event not found or access denied")
