package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db,omitempty"`
	Redis     string    `json:"redis,omitempty"`
}

// HealthHandler probes the backing stores with a short deadline so a
// wedged dependency cannot stall the health endpoint itself.
type HealthHandler struct {
	serviceName string
	version     string
	db          *pgxpool.Pool
	redis       *redis.Client
}

func NewHealthHandler(serviceName, version string, db *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		redis:       rdb,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
	defer cancel()

	dbStatus := "disabled"
	if h.db != nil {
		dbStatus = "up"
		if err := h.db.Ping(pingCtx); err != nil {
			dbStatus = "down"
		}
	}

	redisStatus := "disabled"
	if h.redis != nil {
		redisStatus = "up"
		if err := h.redis.Ping(pingCtx).Err(); err != nil {
			redisStatus = "down"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
		Redis:     redisStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
