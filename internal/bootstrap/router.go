package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/teamtrack-hr/teamtrack-backend/config"
	httpapi "github.com/teamtrack-hr/teamtrack-backend/internal/api/http"
	"github.com/teamtrack-hr/teamtrack-backend/internal/api/http/middleware"
	authhttp "github.com/teamtrack-hr/teamtrack-backend/internal/auth/http"
	authmw "github.com/teamtrack-hr/teamtrack-backend/internal/auth/middleware"
	authservice "github.com/teamtrack-hr/teamtrack-backend/internal/auth/service"
	"github.com/teamtrack-hr/teamtrack-backend/internal/auth/session"
	"github.com/teamtrack-hr/teamtrack-backend/internal/mail"
	projectshttp "github.com/teamtrack-hr/teamtrack-backend/internal/projects/http"
	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/repository"
	"github.com/teamtrack-hr/teamtrack-backend/internal/reports"
	reportshttp "github.com/teamtrack-hr/teamtrack-backend/internal/reports/http"
	"github.com/teamtrack-hr/teamtrack-backend/internal/sheets"
	sheetshttp "github.com/teamtrack-hr/teamtrack-backend/internal/sheets/http"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	Redis       *redis.Client
	Sheets      *sheets.Client
	Store       *repository.RecordStore
	Sessions    *session.Store
	Auth        *authservice.AuthService
	Reports     *reports.Service
	Sender      *mail.Sender
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{dep.Cfg.Server.BaseURL},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	secure := dep.Cfg.App.Environment == "production"

	api := r.Group("/api")
	authed := api.Group("")
	authed.Use(authmw.RequireSession(dep.Sessions))
	hr := authed.Group("")
	hr.Use(authmw.RequireHR())

	authHandler := authhttp.New(dep.Auth, dep.Sessions, dep.Cfg.Server.BaseURL, secure)
	authHandler.Register(r.Group("/auth"), authed)

	projectsHandler := projectshttp.New(dep.Store, dep.Sheets.SpreadsheetURL())
	projectsHandler.Register(authed.Group("/projects"))

	sheetsHandler := sheetshttp.New(dep.Sheets, dep.Sender)
	sheetsHandler.Register(hr)

	reportsHandler := reportshttp.New(dep.Reports, dep.Sender, dep.Store, dep.Cfg.Cron.Secret)
	reportsHandler.Register(api, hr)

	return r
}
