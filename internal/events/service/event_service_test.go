package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construware/construct-backend/internal/events/domain"
	projdomain "github.com/construware/construct-backend/internal/projects/domain"
)

type fakeEventStore struct {
	owners map[uuid.UUID]uuid.UUID
	events map[uuid.UUID]*domain.Event
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{
		owners: make(map[uuid.UUID]uuid.UUID),
		events: make(map[uuid.UUID]*domain.Event),
	}
}

func (f *fakeEventStore) ProjectOwned(_ context.Context, adminID, projectID uuid.UUID) (bool, error) {
	owner, ok := f.owners[projectID]
	return ok && owner == adminID, nil
}

func (f *fakeEventStore) Create(_ context.Context, e *domain.Event) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventStore) ListByProject(_ context.Context, projectID uuid.UUID) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range f.events {
		if e.ProjectID == projectID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventStore) UpdateStatus(_ context.Context, adminID, eventID uuid.UUID, status domain.EventStatus) (*domain.Event, error) {
	e, ok := f.events[eventID]
	if !ok || e.AdminID != adminID {
		return nil, domain.ErrEventNotFound
	}
	e.Status = status
	cp := *e
	return &cp, nil
}

func (f *fakeEventStore) Delete(_ context.Context, adminID, eventID uuid.UUID) error {
	e, ok := f.events[eventID]
	if !ok || e.AdminID != adminID {
		return domain.ErrEventNotFound
	}
	delete(f.events, eventID)
	return nil
}

func visitInput() CreateEventInput {
	return CreateEventInput{
		Type: "siteVisiting",
		Data: map[string]any{
			"visitDate":    "2026-03-10",
			"location":     "Riverside site",
			"visitPurpose": "Progress check",
		},
	}
}

func TestCreateEvent(t *testing.T) {
	store := newFakeEventStore()
	svc := NewService(store)
	adminID := uuid.New()
	projectID := uuid.New()
	store.owners[projectID] = adminID

	e, err := svc.CreateEvent(context.Background(), adminID, projectID, visitInput())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, projectID, e.ProjectID)
	assert.Equal(t, adminID, e.AdminID)
	assert.Equal(t, domain.EventPending, e.Status)
	assert.False(t, e.EventDate.IsZero())
	assert.Contains(t, store.events, e.ID)
}

func TestCreateEvent_UnownedProject(t *testing.T) {
	store := newFakeEventStore()
	svc := NewService(store)
	projectID := uuid.New()
	store.owners[projectID] = uuid.New()

	_, err := svc.CreateEvent(context.Background(), uuid.New(), projectID, visitInput())
	assert.ErrorIs(t, err, projdomain.ErrProjectNotFound)
}

func TestCreateEvent_UnknownType(t *testing.T) {
	store := newFakeEventStore()
	svc := NewService(store)
	adminID := uuid.New()
	projectID := uuid.New()
	store.owners[projectID] = adminID

	_, err := svc.CreateEvent(context.Background(), adminID, projectID, CreateEventInput{
		Type: "groundBreaking",
		Data: map[string]any{},
	})
	var verr *projdomain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid event type", verr.Message)
}

func TestCreateEvent_MissingRequiredField(t *testing.T) {
	store := newFakeEventStore()
	svc := NewService(store)
	adminID := uuid.New()
	projectID := uuid.New()
	store.owners[projectID] = adminID

	_, err := svc.CreateEvent(context.Background(), adminID, projectID, CreateEventInput{
		Type: "siteInspection",
		Data: map[string]any{"inspector": "R. Silva"},
	})
	var verr *projdomain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required field: inspectionDate", verr.Message)
}

func TestCreateEvent_InvalidStatus(t *testing.T) {
	store := newFakeEventStore()
	svc := NewService(store)
	adminID := uuid.New()
	projectID := uuid.New()
	store.owners[projectID] = adminID

	in := visitInput()
	in.Status = domain.EventStatus("cancelled")
	_, err := svc.CreateEvent(context.Background(), adminID, projectID, in)
	var verr *projdomain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid status value", verr.Message)
}

func TestListEvents(t *testing.T) {
	store := newFakeEventStore()
	svc := NewService(store)
	adminID := uuid.New()
	projectID := uuid.New()
	store.owners[projectID] = adminID

	_, err := svc.CreateEvent(context.Background(), adminID, projectID, visitInput())
	require.NoError(t, err)

	events, err := svc.ListEvents(context.Background(), adminID, projectID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Site Visiting", events[0].TypeLabel)

	_, err = svc.ListEvents(context.Background(), uuid.New(), projectID)
	assert.ErrorIs(t, err, projdomain.ErrProjectNotFound)
}

func TestUpdateEventStatus(t *testing.T) {
	store := newFakeEventStore()
	svc := NewService(store)
	adminID := uuid.New()
	projectID := uuid.New()
	store.owners[projectID] = adminID

	e, err := svc.CreateEvent(context.Background(), adminID, projectID, visitInput())
	require.NoError(t, err)

	updated, err := svc.UpdateEventStatus(context.Background(), adminID, e.ID, domain.EventCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.EventCompleted, updated.Status)

	_, err = svc.UpdateEventStatus(context.Background(), adminID, e.ID, domain.EventStatus("paused"))
	var verr *projdomain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid status value", verr.Message)

	_, err = svc.UpdateEventStatus(context.Background(), uuid.New(), e.ID, domain.EventCompleted)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestDeleteEvent(t *testing.T) {
	store := newFakeEventStore()
	svc := NewService(store)
	adminID := uuid.New()
	projectID := uuid.New()
	store.owners[projectID] = adminID

	e, err := svc.CreateEvent(context.Background(), adminID, projectID, visitInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(context.Background(), adminID, e.ID))
	assert.ErrorIs(t, svc.DeleteEvent(context.Background(), adminID, e.ID), domain.ErrEventNotFound)
}
