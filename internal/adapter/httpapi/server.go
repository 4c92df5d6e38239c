package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bashirmanafikhi/islamic-statuses/internal/application"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
	"github.com/bashirmanafikhi/islamic-statuses/pkg/response"
)

// Server exposes the card engine over HTTP. Every route is scoped to an
// owner id so each caller gets its own feed, favorites and playback slot.
type Server struct {
	registry *application.Registry
	content  domain.ContentPort
	links    application.AppLinks
}

func NewServer(registry *application.Registry, content domain.ContentPort, links application.AppLinks) *Server {
	return &Server{registry: registry, content: content, links: links}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"message": "islamic statuses api"}, "Success")
	})

	r.Get("/v1/links", s.getLinks)
	r.Get("/v1/surahs", s.getSurahs)

	r.Route("/v1/sessions/{owner}", func(r chi.Router) {
		r.Get("/feed", s.getFeed)
		r.Post("/feed/reset", s.resetFeed)
		r.Post("/feed/more", s.extendFeed)
		r.Put("/feed/visible", s.setVisibleIndex)
		r.Post("/feed/tafseer", s.cycleTafseer)
		r.Post("/feed/translation", s.toggleTranslation)
		r.Post("/feed/cards/{index}/content", s.regenerateContent)
		r.Put("/feed/cards/{index}/background", s.setBackground)
		r.Post("/feed/cards/{index}/font", s.randomizeFont)

		r.Get("/favorites", s.getFavorites)
		r.Post("/favorites/toggle", s.toggleFavorite)
		r.Delete("/favorites/{id}", s.removeFavorite)

		r.Post("/audio/toggle", s.toggleAudio)
	})

	return r
}

func (s *Server) session(r *http.Request) (*application.Session, error) {
	return s.registry.Get(chi.URLParam(r, "owner"))
}
