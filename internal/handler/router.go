package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-booking-api/internal/domain/user"
	"room-booking-api/internal/handler/api"
	"room-booking-api/internal/handler/middleware"
	"room-booking-api/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, roomHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		userGroup := apiGroup.Group("/user")
		{
			addRoutes(userGroup, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			authRequired := userGroup.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		roomGroup := apiGroup.Group("/room")
		{
			addRoutes(roomGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
			})

			adminOnly := []gin.HandlerFunc{
				authMiddleware.RequireAuth(),
				authMiddleware.RequireRoleAtLeast(user.RoleAdmin),
			}
			addRoutes(roomGroup, []route{
				{Method: http.MethodPost, Path: "/create", Handler: roomHandler.CreateRoom, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: roomHandler.UpdateRoom, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: roomHandler.DeleteRoom, Mw: adminOnly},
			})
		}

		bookingGroup := apiGroup.Group("/booking")
		bookingGroup.Use(authMiddleware.RequireAuth())
		{
			adminOnly := []gin.HandlerFunc{
				authMiddleware.RequireRoleAtLeast(user.RoleAdmin),
			}
			addRoutes(bookingGroup, []route{
				{Method: http.MethodPost, Path: "/book-room", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListAllBookings, Mw: adminOnly},
				// :id is the user whose bookings are listed
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodPut, Path: "/:id", Handler: bookingHandler.UpdateBooking, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.DeleteBooking, Mw: adminOnly},
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
