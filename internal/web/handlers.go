package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nlebedev/corner/internal/coach"
	"github.com/nlebedev/corner/internal/domain"
	"github.com/nlebedev/corner/internal/export"
)

// sessionView is a Session enriched with an optional drill visual name.
type sessionView struct {
	domain.Session
	Visual string
}

type pageData struct {
	Plan      *domain.WeekPlan
	Sessions  []sessionView
	CoachText string
	Answer    string
	Summary   string
	HasAudio  bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data := pageData{
		Plan:      s.current,
		CoachText: s.coachText,
		Answer:    s.answer,
		Summary:   s.summary,
		HasAudio:  s.voice != nil && s.coachText != "",
	}
	if s.current != nil {
		for _, sess := range s.current.Sessions {
			view := sessionView{Session: sess}
			if s.visuals != nil {
				if path, ok := s.visuals.VisualFor(sess.Focus); ok {
					view.Visual = filepath.Base(path)
				}
			}
			data.Sessions = append(data.Sessions, view)
		}
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		s.log.Error("render index", slog.Any("error", err))
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	meta := domain.PlanMeta{
		Sport:             strings.TrimSpace(r.FormValue("sport")),
		Level:             strings.TrimSpace(r.FormValue("level")),
		SessionsPerWeek:   formInt(r, "sessions_per_week", 3),
		LastWeekLoad:      formInt(r, "last_week_load", 0),
		Contraindications: strings.TrimSpace(r.FormValue("contraindications")),
	}
	if meta.Sport == "" {
		meta.Sport = "boxing"
	}
	if meta.SessionsPerWeek < 1 {
		meta.SessionsPerWeek = 1
	}

	wp := s.planner.GenerateWeek(r.Context(), meta)

	var coachText string
	if s.messages != nil {
		coachText = s.messages.Message(r.Context(), wp)
	} else {
		coachText = coach.FallbackMessage
	}

	s.mu.Lock()
	s.current = wp
	s.coachText = coachText
	s.answer = ""
	s.summary = ""
	s.mu.Unlock()

	s.log.Info("plan generated",
		slog.String("sport", meta.Sport),
		slog.String("level", string(meta.Level)),
		slog.String("source", string(wp.Source)),
		slog.Int("sessions", len(wp.Sessions)),
	)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	question := r.FormValue("question")

	s.mu.Lock()
	wp := s.current
	s.mu.Unlock()

	answer := ""
	if s.assistant != nil {
		answer = s.assistant.Answer(r.Context(), question, wp)
	}

	s.mu.Lock()
	s.answer = answer
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAdherence(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	wp := s.current
	s.mu.Unlock()
	if wp == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	entries := make([]domain.AdherenceEntry, len(wp.Sessions))
	for i := range wp.Sessions {
		entries[i].Completed = r.FormValue(fmt.Sprintf("completed_%d", i)) != ""
		if rpe, err := strconv.Atoi(r.FormValue(fmt.Sprintf("rpe_%d", i))); err == nil {
			entries[i].RPE = rpe
		}
	}

	summary := coach.SummarizeAdherence(entries)

	s.mu.Lock()
	s.summary = summary
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	wp := s.current
	coachText := s.coachText
	s.mu.Unlock()

	if wp == nil {
		http.Error(w, "no plan generated yet", http.StatusNotFound)
		return
	}

	pdf, err := export.PlanPDF(wp, coachText)
	if err != nil {
		s.log.Error("render pdf", slog.Any("error", err))
		http.Error(w, "could not render pdf", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="training_plan.pdf"`)
	w.Write(pdf)
}

func (s *Server) handleAudio(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	coachText := s.coachText
	s.mu.Unlock()

	if s.voice == nil || coachText == "" {
		http.Error(w, "no coach audio available", http.StatusNotFound)
		return
	}
	audio := s.voice.Render(r.Context(), coachText)
	if audio == nil {
		http.Error(w, "no coach audio available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Write(audio)
}

func (s *Server) handleVisual(w http.ResponseWriter, r *http.Request) {
	if s.visuals == nil {
		http.NotFound(w, r)
		return
	}
	path, ok := s.visuals.Path(chi.URLParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

func formInt(r *http.Request, key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(key)))
	if err != nil {
		return fallback
	}
	return n
}
