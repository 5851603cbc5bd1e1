package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/construware/construct-backend/internal/auth"
	"github.com/construware/construct-backend/internal/events/domain"
	"github.com/construware/construct-backend/internal/events/metadata"
	eventservice "github.com/construware/construct-backend/internal/events/service"
	projdomain "github.com/construware/construct-backend/internal/projects/domain"
)

// EventService is the slice of the service the handlers call.
type EventService interface {
	Metadata() map[string]metadata.EventType
	CreateEvent(ctx context.Context, adminID, projectID uuid.UUID, in eventservice.CreateEventInput) (*domain.Event, error)
	ListEvents(ctx context.Context, adminID, projectID uuid.UUID) ([]domain.AnnotatedEvent, error)
	UpdateEventStatus(ctx context.Context, adminID, eventID uuid.UUID, status domain.EventStatus) (*domain.Event, error)
	DeleteEvent(ctx context.Context, adminID, eventID uuid.UUID) error
}

type Handler struct {
	svc EventService
}

// Register wires the per-project timeline routes and the direct event
// routes. The static metadata route must be registered on the projects
// group before its dynamic siblings.
func Register(projects *gin.RouterGroup, events *gin.RouterGroup, svc EventService) {
	h := &Handler{svc: svc}

	projects.GET("/event-metadata", h.metadata)
	projects.POST("/:id/events", h.create)
	projects.GET("/:id/events", h.list)

	events.PATCH("/:eventId/status", h.updateStatus)
	events.DELETE("/:eventId", h.delete)
}

func writeError(c *gin.Context, err error) {
	var ve *projdomain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Message})
	case errors.Is(err, projdomain.ErrProjectNotFound), errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
	}
}

func (h *Handler) metadata(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Metadata())
}

type createEventReq struct {
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Status    string         `json:"status"`
	EventDate *time.Time     `json:"eventDate"`
}

func (h *Handler) create(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": projdomain.ErrProjectNotFound.Error()})
		return
	}

	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	in := eventservice.CreateEventInput{
		Type:   req.Type,
		Data:   req.Data,
		Status: domain.EventStatus(req.Status),
	}
	if req.EventDate != nil {
		in.EventDate = *req.EventDate
	}

	event, err := h.svc.CreateEvent(c.Request.Context(), auth.AdminID(c), projectID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Event created successfully", "event": event})
}

func (h *Handler) list(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": projdomain.ErrProjectNotFound.Error()})
		return
	}

	events, err := h.svc.ListEvents(c.Request.Context(), auth.AdminID(c), projectID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}

type updateStatusReq struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": domain.ErrEventNotFound.Error()})
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	event, err := h.svc.UpdateEventStatus(c.Request.Context(), auth.AdminID(c), eventID, domain.EventStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event status updated", "event": event})
}

func (h *Handler) delete(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": domain.ErrEventNotFound.Error()})
		return
	}

	if err := h.svc.DeleteEvent(c.Request.Context(), auth.AdminID(c), eventID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event deleted successfully"})
}
