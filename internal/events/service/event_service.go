package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/construware/construct-backend/internal/events/domain"
	"github.com/construware/construct-backend/internal/events/metadata"
	projdomain "github.com/construware/construct-backend/internal/projects/domain"
)

// Store is the event persistence surface; *repository.Repo satisfies it.
type Store interface {
	ProjectOwned(ctx context.Context, adminID, projectID uuid.UUID) (bool, error)
	Create(ctx context.Context, e *domain.Event) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Event, error)
	UpdateStatus(ctx context.Context, adminID, eventID uuid.UUID, status domain.EventStatus) (*domain.Event, error)
	Delete(ctx context.Context, adminID, eventID uuid.UUID) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Metadata exposes the read-only event-type catalog.
func (s *Service) Metadata() map[string]metadata.EventType {
	return metadata.Catalog
}

// CreateEventInput is a new timeline event. Status defaults to pending and
// EventDate to now.
type CreateEventInput struct {
	Type      string
	Data      map[string]any
	Status    domain.EventStatus
	EventDate time.Time
}

func (s *Service) CreateEvent(ctx context.Context, adminID, projectID uuid.UUID, in CreateEventInput) (*domain.Event, error) {
	owned, err := s.store.ProjectOwned(ctx, adminID, projectID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, projdomain.ErrProjectNotFound
	}

	eventType, ok := metadata.Lookup(in.Type)
	if !ok {
		return nil, projdomain.Invalid("Invalid event type")
	}
	if err := metadata.ValidateData(eventType, in.Data); err != nil {
		return nil, projdomain.Invalid(err.Error())
	}

	status := in.Status
	if status == "" {
		status = domain.EventPending
	}
	if !status.Valid() {
		return nil, projdomain.Invalid("Invalid status value")
	}

	eventDate := in.EventDate
	if eventDate.IsZero() {
		eventDate = time.Now().UTC()
	}

	e := &domain.Event{
		ID:        uuid.New(),
		ProjectID: projectID,
		AdminID:   adminID,
		Type:      in.Type,
		Data:      in.Data,
		Status:    status,
		EventDate: eventDate,
	}
	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) ListEvents(ctx context.Context, adminID, projectID uuid.UUID) ([]domain.AnnotatedEvent, error) {
	owned, err := s.store.ProjectOwned(ctx, adminID, projectID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, projdomain.ErrProjectNotFound
	}

	events, err := s.store.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AnnotatedEvent, 0, len(events))
	for _, e := range events {
		out = append(out, domain.AnnotatedEvent{
			Event:     e,
			TypeLabel: metadata.Label(e.Type),
		})
	}
	return out, nil
}

func (s *Service) UpdateEventStatus(ctx context.Context, adminID, eventID uuid.UUID, status domain.EventStatus) (*domain.Event, error) {
	if !status.Valid() {
		return nil, projdomain.Invalid("Invalid status value")
	}
	return s.store.UpdateStatus(ctx, adminID, eventID, status)
}

func (s *Service) DeleteEvent(ctx context.Context, adminID, eventID uuid.UUID) error {
	return s.store.Delete(ctx, adminID, eventID)
}
