package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/construware/construct-backend/internal/auth"
	"github.com/construware/construct-backend/internal/projects/domain"
	projservice "github.com/construware/construct-backend/internal/projects/service"
)

// ProjectService is the slice of the service the handlers call. It exists
// so handler tests can plug in a stub.
type ProjectService interface {
	CreateProject(ctx context.Context, adminID uuid.UUID, in projservice.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, adminID, projectID uuid.UUID) (*domain.Project, error)
	ListProjects(ctx context.Context, adminID uuid.UUID) ([]domain.Project, error)
	UpdateProject(ctx context.Context, adminID, projectID uuid.UUID, patch domain.ProjectPatch) (*domain.Project, error)
	DeleteProject(ctx context.Context, adminID, projectID uuid.UUID) error

	SetBudget(ctx context.Context, adminID, projectID uuid.UUID, patch domain.BudgetPatch) (*domain.Project, error)
	GetBudget(ctx context.Context, adminID, projectID uuid.UUID) (*projservice.BudgetView, error)
	AddBudgetItem(ctx context.Context, adminID, projectID uuid.UUID, in projservice.BudgetItemInput) (*domain.Project, error)
	UpdateBudgetItem(ctx context.Context, adminID, projectID, itemID uuid.UUID, patch domain.BudgetItemPatch) (*domain.Project, error)
	DeleteBudgetItem(ctx context.Context, adminID, projectID, itemID uuid.UUID) (*domain.Project, error)

	AddBillingEntry(ctx context.Context, adminID, projectID uuid.UUID, in projservice.BillingEntryInput) (*domain.BillingEntry, error)
	GetBillingEntries(ctx context.Context, adminID, projectID uuid.UUID) (*projservice.BillingView, error)
	UpdateBillingEntry(ctx context.Context, adminID, projectID, entryID uuid.UUID, patch domain.BillingPatch) (*domain.Project, error)
	DeleteBillingEntry(ctx context.Context, adminID, projectID, entryID uuid.UUID) error
	GetBillingSummary(ctx context.Context, adminID, projectID uuid.UUID) (*domain.BillingSummary, error)
}

type Handler struct {
	svc ProjectService
}

func Register(rg *gin.RouterGroup, svc ProjectService) {
	h := &Handler{svc: svc}

	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)

	rg.POST("/:id/budget", h.setBudget)
	rg.GET("/:id/budget", h.getBudget)
	rg.POST("/:id/budget/items", h.addBudgetItem)
	rg.PUT("/:id/budget/items/:itemId", h.updateBudgetItem)
	rg.DELETE("/:id/budget/items/:itemId", h.deleteBudgetItem)

	rg.POST("/:id/billing", h.addBilling)
	rg.GET("/:id/billing", h.listBilling)
	rg.GET("/:id/billing/summary", h.billingSummary)
	rg.PUT("/:id/billing/:billingId", h.updateBilling)
	rg.DELETE("/:id/billing/:billingId", h.deleteBilling)
}

// writeError maps domain errors onto the response taxonomy: validation
// 400, not-found-or-not-owned 404, anything else 500.
func writeError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Message})
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrBudgetItemNotFound),
		errors.Is(err, domain.ErrBillingEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
	}
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": domain.ErrProjectNotFound.Error()})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) create(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	in := projservice.CreateProjectInput{
		ClientName:  req.ClientName,
		ProjectName: req.ProjectName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
	}
	if req.StartDate != nil {
		in.StartDate = *req.StartDate
	}

	p, err := h.svc.CreateProject(c.Request.Context(), auth.AdminID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Project created successfully", "project": p})
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.svc.ListProjects(c.Request.Context(), auth.AdminID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
}

func (h *Handler) get(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetProject(c.Request.Context(), auth.AdminID(c), projectID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	patch := domain.ProjectPatch{
		ClientName:  req.ClientName,
		ProjectName: req.ProjectName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		StartDate:   req.StartDate,
	}
	if req.Status != nil {
		s := domain.ProjectStatus(*req.Status)
		patch.Status = &s
	}

	p, err := h.svc.UpdateProject(c.Request.Context(), auth.AdminID(c), projectID, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project updated successfully", "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteProject(c.Request.Context(), auth.AdminID(c), projectID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
}
