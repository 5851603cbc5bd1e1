package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/construware/construct-backend/internal/admins/domain"
	adminservice "github.com/construware/construct-backend/internal/admins/service"
	"github.com/construware/construct-backend/internal/auth"
)

type Handler struct {
	svc *adminservice.Service
}

func Register(rg *gin.RouterGroup, svc *adminservice.Service, authn gin.HandlerFunc, limiter gin.HandlerFunc) {
	h := &Handler{svc: svc}

	rg.POST("/register", limiter, h.register)
	rg.POST("/login", limiter, h.login)
	rg.POST("/logout", authn, h.logout)
	rg.GET("/me", authn, h.me)
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	admin, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "admin": admin})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	token, admin, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "admin": admin})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), auth.TokenJTI(c), auth.TokenExpiry(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful"})
}

func (h *Handler) me(c *gin.Context) {
	admin, err := h.svc.Profile(c.Request.Context(), auth.AdminID(c))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "profile lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "admin": admin})
}
