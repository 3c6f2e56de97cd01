package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/volunteer-hub/volunteer-hub-backend/internal/api/http"
	apimiddleware "github.com/volunteer-hub/volunteer-hub-backend/internal/api/http/middleware"
	apphttp "github.com/volunteer-hub/volunteer-hub-backend/internal/applications/http"
	apprepo "github.com/volunteer-hub/volunteer-hub-backend/internal/applications/repository"
	appservice "github.com/volunteer-hub/volunteer-hub-backend/internal/applications/service"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth"
	authhttp "github.com/volunteer-hub/volunteer-hub-backend/internal/auth/http"
	authmiddleware "github.com/volunteer-hub/volunteer-hub-backend/internal/auth/middleware"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth/session"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/notify"
	projhttp "github.com/volunteer-hub/volunteer-hub-backend/internal/projects/http"
	projrepo "github.com/volunteer-hub/volunteer-hub-backend/internal/projects/repository"
)

type RouterDeps struct {
	ServiceName   string
	Version       string
	DB            *pgxpool.Pool
	Redis         *redis.Client
	Sessions      *session.Manager
	Authenticator auth.Authenticator
	SecureCookies bool
	AllowOrigins  []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(dep.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = dep.AllowOrigins
	} else {
		corsCfg.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	corsCfg.AllowCredentials = true
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(apimiddleware.RequestIDMiddleware())

	requireAdmin := authmiddleware.RequireAdmin(dep.Sessions)
	loginLimiter := apimiddleware.NewLoginRateLimiter(10, 5)

	authHandler := authhttp.New(dep.Authenticator, dep.Sessions, dep.SecureCookies)
	authHandler.Register(api, loginLimiter.Middleware())

	projectRepo := projrepo.NewRepo(dep.DB)
	projHandler := projhttp.NewHandler(projectRepo)
	projHandler.Register(api.Group("/projects"), requireAdmin)

	applicationRepo := apprepo.NewRepo(dep.DB)
	applicationSvc := appservice.NewApplicationService(applicationRepo, projectRepo, notify.NewLogNotifier())
	appHandler := apphttp.NewHandler(applicationSvc)
	appHandler.Register(api.Group("/applications"), requireAdmin)

	return r
}
