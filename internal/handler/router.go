package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chathandler "github.com/alexjohnson-dev/portfolio/backend/internal/handler/chat"
	prompthandler "github.com/alexjohnson-dev/portfolio/backend/internal/handler/prompt"
	projecthandler "github.com/alexjohnson-dev/portfolio/backend/internal/handler/project"
	middlewarePkg "github.com/alexjohnson-dev/portfolio/backend/internal/middleware"
	promptmodel "github.com/alexjohnson-dev/portfolio/backend/internal/model/prompt"
	projectmodel "github.com/alexjohnson-dev/portfolio/backend/internal/model/project"
	"github.com/alexjohnson-dev/portfolio/backend/internal/service/conversation"
	"github.com/alexjohnson-dev/portfolio/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(conversationSvc *conversation.Service, prompts promptmodel.Store, projects projectmodel.Store, adminToken string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chathandler.New(conversationSvc)
	promptHandler := prompthandler.New(prompts)
	projectHandler := projecthandler.New(projects)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		chatHandler.RegisterRoutes(api)
		promptHandler.RegisterRoutes(api)
		projectHandler.RegisterRoutes(api)

		api.Group(func(admin chi.Router) {
			admin.Use(middlewarePkg.AdminOnly(adminToken))
			promptHandler.RegisterAdminRoutes(admin)
			projectHandler.RegisterAdminRoutes(admin)
		})
	})

	return r
}
