// Package web serves the single-user plan form: generate a week, ask the
// coach, reflect on adherence, download the PDF and audio renditions.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/nlebedev/corner/internal/coach"
	"github.com/nlebedev/corner/internal/domain"
	"github.com/nlebedev/corner/internal/media"
	"github.com/nlebedev/corner/internal/plan"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server holds dependencies for the form handlers plus the single current
// plan. One interactive user at a time is the design point; the mutex only
// keeps concurrent browser requests from tearing the state.
type Server struct {
	planner   plan.Planner
	messages  *coach.MessageGenerator
	assistant *coach.Assistant
	voice     *coach.Voice
	visuals   *media.Library
	log       *slog.Logger
	router    chi.Router
	tmpl      *template.Template

	mu        sync.Mutex
	current   *domain.WeekPlan
	coachText string
	answer    string
	summary   string
}

// New creates a Server with all routes configured.
func New(planner plan.Planner, messages *coach.MessageGenerator, assistant *coach.Assistant,
	voice *coach.Voice, visuals *media.Library, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		planner:   planner,
		messages:  messages,
		assistant: assistant,
		voice:     voice,
		visuals:   visuals,
		log:       log,
		router:    chi.NewRouter(),
		tmpl:      template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))

	s.router.Get("/", s.handleIndex)
	s.router.Post("/plan", s.handleGenerate)
	s.router.Post("/ask", s.handleAsk)
	s.router.Post("/adherence", s.handleAdherence)
	s.router.Get("/plan.pdf", s.handlePDF)
	s.router.Get("/coach.mp3", s.handleAudio)
	s.router.Get("/visuals/{name}", s.handleVisual)
}
