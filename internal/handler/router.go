package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"autocare-api/internal/domain/user"
	"autocare-api/internal/handler/api"
	"autocare-api/internal/handler/middleware"
	"autocare-api/internal/pkg/config"
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
	appointmentHandler *api.AppointmentHandler,
	timeLogHandler *api.TimeLogHandler,
	modificationHandler *api.ModificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	realtimeHandler http.Handler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, appointmentHandler, timeLogHandler, modificationHandler, authMiddleware, realtimeHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	appointmentHandler *api.AppointmentHandler,
	timeLogHandler *api.TimeLogHandler,
	modificationHandler *api.ModificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	realtimeHandler http.Handler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// SockJS does its own token handshake; the gin auth middleware never
	// sees these requests.
	engine.Any("/realtime/*any", gin.WrapH(realtimeHandler))

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		appointments := apiGroup.Group("/appointments")
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.Book},
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.Get},
				{Method: http.MethodPost, Path: "/:id/assign", Handler: appointmentHandler.Assign,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/:id/transition", Handler: appointmentHandler.Transition,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleEmployee, user.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: appointmentHandler.Cancel},
				{Method: http.MethodPut, Path: "/:id/actual-cost", Handler: appointmentHandler.SetActualCost,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleEmployee, user.RoleAdmin)}},
				{Method: http.MethodGet, Path: "/:id/timelogs", Handler: timeLogHandler.ListByAppointment,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleEmployee, user.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/:id/modification-requests", Handler: modificationHandler.Propose},
				{Method: http.MethodGet, Path: "/:id/modification-requests", Handler: modificationHandler.ListByAppointment},
			})
		}

		timelogs := apiGroup.Group("/timelogs")
		timelogs.Use(authMiddleware.RequireRole(user.RoleEmployee, user.RoleAdmin))
		{
			addRoutes(timelogs, []route{
				{Method: http.MethodPost, Path: "/start", Handler: timeLogHandler.Start},
				{Method: http.MethodPost, Path: "/stop", Handler: timeLogHandler.Stop},
				{Method: http.MethodGet, Path: "/active", Handler: timeLogHandler.GetActive},
				{Method: http.MethodPost, Path: "", Handler: timeLogHandler.CreateManual},
				{Method: http.MethodGet, Path: "", Handler: timeLogHandler.List},
				{Method: http.MethodPatch, Path: "/:id", Handler: timeLogHandler.Amend},
				{Method: http.MethodDelete, Path: "/:id", Handler: timeLogHandler.Delete},
			})
		}

		modifications := apiGroup.Group("/modification-requests")
		modifications.Use(authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(modifications, []route{
				{Method: http.MethodPost, Path: "/:id/decide", Handler: modificationHandler.Decide},
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
