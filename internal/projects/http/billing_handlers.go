package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/construware/construct-backend/internal/auth"
	"github.com/construware/construct-backend/internal/projects/domain"
	projservice "github.com/construware/construct-backend/internal/projects/service"
)

func (h *Handler) addBilling(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req addBillingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	in := projservice.BillingEntryInput{
		BillingAmount:   req.BillingAmount,
		Recipient:       req.Recipient,
		Status:          domain.BillingStatus(req.Status),
		AdditionalNotes: req.AdditionalNotes,
	}
	if req.Date != nil {
		in.Date = *req.Date
	}

	entry, err := h.svc.AddBillingEntry(c.Request.Context(), auth.AdminID(c), projectID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Billing entry added successfully", "billingEntry": entry})
}

func (h *Handler) listBilling(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.svc.GetBillingEntries(c.Request.Context(), auth.AdminID(c), projectID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}

func (h *Handler) updateBilling(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	billingID, err := uuid.Parse(c.Param("billingId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": domain.ErrBillingEntryNotFound.Error()})
		return
	}

	var req updateBillingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	p, err := h.svc.UpdateBillingEntry(c.Request.Context(), auth.AdminID(c), projectID, billingID, req.patch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Billing entry updated successfully", "project": p})
}

// deleteBilling reports success even when the entry id does not exist on
// an owned project; only a missing project is an error.
func (h *Handler) deleteBilling(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	billingID, err := uuid.Parse(c.Param("billingId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": domain.ErrBillingEntryNotFound.Error()})
		return
	}

	if err := h.svc.DeleteBillingEntry(c.Request.Context(), auth.AdminID(c), projectID, billingID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Billing entry deleted successfully"})
}

func (h *Handler) billingSummary(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	summary, err := h.svc.GetBillingSummary(c.Request.Context(), auth.AdminID(c), projectID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "summary": summary})
}
