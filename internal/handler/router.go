package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	serviceHandler *api.ServiceHandler,
	staffHandler *api.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, availabilityHandler, bookingHandler, serviceHandler, staffHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	serviceHandler *api.ServiceHandler,
	staffHandler *api.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.GetAvailability},
			{Method: http.MethodGet, Path: "/services", Handler: serviceHandler.List},
			{Method: http.MethodGet, Path: "/services/:id", Handler: serviceHandler.Get},
			{Method: http.MethodGet, Path: "/staff", Handler: staffHandler.List},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/send-code", Handler: bookingHandler.SendCode},
				{Method: http.MethodPost, Path: "/confirm", Handler: bookingHandler.Confirm},
			})

			staffOnly := bookings.Group("")
			staffOnly.Use(authMiddleware.RequireAuth())
			addRoutes(staffOnly, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListByDay},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/services", Handler: serviceHandler.Create},
				{Method: http.MethodPut, Path: "/services/:id", Handler: serviceHandler.Update},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: serviceHandler.Delete},
				{Method: http.MethodPost, Path: "/staff", Handler: staffHandler.Create},
				{Method: http.MethodDelete, Path: "/staff/:id", Handler: staffHandler.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
