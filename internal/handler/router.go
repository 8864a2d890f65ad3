package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voltbite/internal/handler/api"
	"voltbite/internal/handler/middleware"
	"voltbite/internal/pkg/config"
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
	reservationHandler *api.ReservationHandler,
	orderHandler *api.OrderHandler,
	chargingHandler *api.ChargingHandler,
	simulatorHandler *api.SimulatorHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, orderHandler, chargingHandler, simulatorHandler, notificationHandler, authMiddleware)
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
	reservationHandler *api.ReservationHandler,
	orderHandler *api.OrderHandler,
	chargingHandler *api.ChargingHandler,
	simulatorHandler *api.SimulatorHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodGet, Path: "/:id/can-extend", Handler: reservationHandler.CanExtend},
				{Method: http.MethodPatch, Path: "/:id/extend", Handler: reservationHandler.Extend},
			})
		}

		chargers := apiGroup.Group("/chargers")
		{
			addRoutes(chargers, []route{
				{Method: http.MethodGet, Path: "/available", Handler: reservationHandler.AvailableChargers},
			})
		}

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.Get},
				{Method: http.MethodPost, Path: "/:id/my-eta", Handler: orderHandler.ReportLateness},
				{Method: http.MethodPatch, Path: "/:id/food-status", Handler: orderHandler.UpdateFoodStatus,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(middleware.RoleRestaurant)}},
			})
		}

		charging := apiGroup.Group("/charging")
		{
			addRoutes(charging, []route{
				{Method: http.MethodPatch, Path: "", Handler: chargingHandler.Update,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(middleware.RoleCharger)}},
				{Method: http.MethodPost, Path: "/finish", Handler: chargingHandler.Finish},
				{Method: http.MethodPost, Path: "/start", Handler: simulatorHandler.Start},
				{Method: http.MethodPost, Path: "/stop", Handler: simulatorHandler.Stop},
			})
		}

		notifications := apiGroup.Group("/notifications")
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "/stream", Handler: notificationHandler.Stream},
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
