package httpserver

import (
	"context"
	"errors"
	"io"
	"slices"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/i18n"
	"portfolio-site/internal/icons"
	"portfolio-site/internal/profile"
	"portfolio-site/internal/realtime"
	authsvc "portfolio-site/internal/service/auth"
	"portfolio-site/internal/service/content"
	"portfolio-site/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthService signs admin operators in and out.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*domain.AdminUser, error)
	SignIn(ctx context.Context, email, password string) (*authsvc.Session, error)
	SignOut(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.AdminUser, error)
}

// Uploader stores images submitted from the admin area.
type Uploader interface {
	Upload(ctx context.Context, folder string, r io.Reader) (*storage.Object, error)
	MaxBytes() int64
}

// Deps holds the collaborators the router mounts.
type Deps struct {
	Content     *content.Service
	Auth        AuthService
	Uploads     Uploader
	Profile     *profile.Profile
	Icons       *icons.Registry
	Hub         *realtime.Hub
	Translator  *i18n.Translator
	CORSOrigins []string
	Checks      map[string]Pinger
}

type handler struct {
	logger *zap.Logger
	tr     *i18n.Translator
	icons  *icons.Registry
	deps   Deps
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Content == nil {
		return nil, errors.New("content service is required")
	}
	if deps.Auth == nil {
		return nil, errors.New("auth service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Translator == nil {
		deps.Translator = i18n.New("pt-BR")
	}
	if deps.Icons == nil {
		deps.Icons = icons.Default()
	}

	h := &handler{
		logger: logger.Named("http"),
		tr:     deps.Translator,
		icons:  deps.Icons,
		deps:   deps,
	}

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(requestLogger(h.logger), gin.Recovery(), corsMiddleware(deps.CORSOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Checks))

	public := router.Group("/api")
	public.GET("/profile", h.getProfile)
	public.GET("/profile/tech", h.getTech)
	public.GET("/icons", h.getIcons)

	authGroup := router.Group("/auth")
	authGroup.POST("/sign-up", h.signUp)
	authGroup.POST("/sign-in", h.signIn)
	authGroup.POST("/sign-out", h.requireAdmin(false), h.signOut)
	authGroup.GET("/me", h.requireAdmin(false), h.me)

	admin := router.Group("/admin/api", h.requireAdmin(false))
	svc := deps.Content
	mountCollection(public, admin, h, domain.CollectionProjects, svc.Projects, h.presentProjects)
	mountCollection(public, admin, h, domain.CollectionHackathons, svc.Hackathons, nil)
	mountCollection(public, admin, h, domain.CollectionExperiences, svc.Experiences, h.presentExperiences)
	mountCollection(public, admin, h, domain.CollectionLinks, svc.Links, h.presentLinks)
	admin.POST("/uploads", h.upload)

	router.GET("/admin/ws", h.requireAdmin(true), h.subscribe)

	return router, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
