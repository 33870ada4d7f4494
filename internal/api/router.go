package api

import (
	"net/http"
	"time"

	"github.com/rarango1992/GPAC/internal/api/handler"
	"github.com/rarango1992/GPAC/internal/api/middleware"
	"github.com/rarango1992/GPAC/internal/app/service"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(
	userService *service.UserService,
	taskService *service.TaskService,
	lookupService *service.LookupService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)
	lookupHandler := handler.NewLookupHandler(lookupService)

	// Login is the only unauthenticated operation.
	userHandler.RegisterPublicRoutes(r)

	// Everything else sits behind the x-access-token guard.
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Verifier)
		protected.Use(middleware.Authenticator)

		taskHandler.RegisterRoutes(protected)
		lookupHandler.RegisterRoutes(protected)
		userHandler.RegisterRoutes(protected)

		protected.Group(func(admin chi.Router) {
			admin.Use(middleware.AdminOnly)
			userHandler.RegisterAdminRoutes(admin)
		})
	})

	return r
}
