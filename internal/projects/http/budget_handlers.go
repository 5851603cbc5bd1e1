package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/construware/construct-backend/internal/auth"
	"github.com/construware/construct-backend/internal/projects/domain"
	projservice "github.com/construware/construct-backend/internal/projects/service"
)

func (h *Handler) setBudget(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req setBudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	patch := domain.BudgetPatch{AreaInSqFeet: req.AreaInSqFeet}
	if req.WorkDetails != nil {
		patch.TotalAmount = req.WorkDetails.TotalAmount
		if req.WorkDetails.Items != nil {
			items := make([]domain.BudgetItem, 0, len(*req.WorkDetails.Items))
			for _, in := range *req.WorkDetails.Items {
				items = append(items, domain.BudgetItem{
					CumulativeWork:       in.CumulativeWork,
					CumulativePercentage: in.CumulativePercentage,
					Amount:               in.Amount,
				})
			}
			patch.Items = &items
		}
	}

	p, err := h.svc.SetBudget(c.Request.Context(), auth.AdminID(c), projectID, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Budget updated successfully", "project": p})
}

func (h *Handler) getBudget(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.svc.GetBudget(c.Request.Context(), auth.AdminID(c), projectID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}

func (h *Handler) addBudgetItem(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req budgetItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	p, err := h.svc.AddBudgetItem(c.Request.Context(), auth.AdminID(c), projectID, projservice.BudgetItemInput{
		CumulativeWork:       req.CumulativeWork,
		CumulativePercentage: req.CumulativePercentage,
		Amount:               req.Amount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Budget item added successfully", "project": p})
}

func (h *Handler) updateBudgetItem(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": domain.ErrBudgetItemNotFound.Error()})
		return
	}

	var req updateBudgetItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	p, err := h.svc.UpdateBudgetItem(c.Request.Context(), auth.AdminID(c), projectID, itemID, domain.BudgetItemPatch{
		CumulativeWork:       req.CumulativeWork,
		CumulativePercentage: req.CumulativePercentage,
		Amount:               req.Amount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Budget item updated successfully", "project": p})
}

func (h *Handler) deleteBudgetItem(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": domain.ErrBudgetItemNotFound.Error()})
		return
	}

	p, err := h.svc.DeleteBudgetItem(c.Request.Context(), auth.AdminID(c), projectID, itemID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Budget item deleted successfully", "project": p})
}
