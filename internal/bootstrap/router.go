package bootstrap

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/construware/construct-backend/config"
	adminhttp "github.com/construware/construct-backend/internal/admins/http"
	adminrepo "github.com/construware/construct-backend/internal/admins/repository"
	adminservice "github.com/construware/construct-backend/internal/admins/service"
	httpapi "github.com/construware/construct-backend/internal/api/http"
	"github.com/construware/construct-backend/internal/api/http/middleware"
	"github.com/construware/construct-backend/internal/auth"
	eventhttp "github.com/construware/construct-backend/internal/events/http"
	eventrepo "github.com/construware/construct-backend/internal/events/repository"
	eventservice "github.com/construware/construct-backend/internal/events/service"
	projhttp "github.com/construware/construct-backend/internal/projects/http"
	projrepo "github.com/construware/construct-backend/internal/projects/repository"
	projservice "github.com/construware/construct-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	DB          *pgxpool.Pool
	SQLDB       *sql.DB
	Redis       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	tokens := auth.NewJWTService(dep.Config.Auth.JWTSecret, dep.Config.Auth.TokenTTL)
	revoked := auth.NewRevocationStore(dep.Redis)
	authn := auth.RequireAdmin(tokens, revoked)
	loginLimiter := middleware.NewRateLimiter(2, 5).Middleware()

	adminSvc := adminservice.NewService(adminrepo.NewRepo(dep.DB), tokens, revoked)
	projSvc := projservice.NewService(projrepo.NewRepo(dep.DB))
	eventSvc := eventservice.NewService(eventrepo.NewRepo(dep.SQLDB))

	api := r.Group("/api/v1")

	adminhttp.Register(api.Group("/auth"), adminSvc, authn, loginLimiter)

	projectsGroup := api.Group("/projects")
	projectsGroup.Use(authn)

	eventsGroup := api.Group("/events")
	eventsGroup.Use(authn)

	// Static event-metadata route registers before the dynamic project routes.
	eventhttp.Register(projectsGroup, eventsGroup, eventSvc)
	projhttp.Register(projectsGroup, projSvc)

	return r
}
