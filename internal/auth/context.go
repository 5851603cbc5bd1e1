package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CtxAdminID  = "admin_id"
	CtxTokenJTI = "token_jti"
	CtxTokenExp = "token_exp"
)

// AdminID extracts the authenticated admin id from the Gin context.
// It is set by RequireAdmin.
func AdminID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(CtxAdminID)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
