package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gonum.org/v1/plot/vg"

	"github.com/aretw0/demoreel/pkg/domain"
	"github.com/aretw0/demoreel/pkg/guide"
	"github.com/aretw0/demoreel/pkg/synth"
)

// Server renders individual dashboard frames on demand.
// Every request draws on its own surface, so handlers share no plotting state.
type Server struct {
	// Seed makes frame N of a topic render identically on every request.
	Seed   uint64
	Frames int
	Width  vg.Length
	Height vg.Length

	Gatherer prometheus.Gatherer
	Hooks    domain.LifecycleHooks
	Logger   *slog.Logger
}

// TopicView is the JSON shape of a topic in GET /topics.
type TopicView struct {
	ID       domain.TopicID `json:"id"`
	Name     string         `json:"name"`
	Headline string         `json:"headline"`
	Video    string         `json:"video"`
	Frames   int            `json:"frames"`
	FrameURL string         `json:"frame_url"`
}

// NewHandler creates the HTTP handler for the preview server.
func NewHandler(s *Server) http.Handler {
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	if s.Frames <= 0 {
		s.Frames = synth.DefaultFrames
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/topics", s.ListTopics)
	r.Get("/topics/{topic}/frames/{index}.png", s.Frame)
	r.Get("/guide", s.Guide)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ListTopics handles GET /topics.
func (s *Server) ListTopics(w http.ResponseWriter, r *http.Request) {
	views := make([]TopicView, 0, len(domain.Topics))
	for _, t := range domain.Topics {
		views = append(views, TopicView{
			ID:       t.ID,
			Name:     t.Name,
			Headline: t.Headline,
			Video:    t.Video,
			Frames:   s.Frames,
			FrameURL: fmt.Sprintf("/topics/%s/frames/{index}.png", t.ID),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(views); err != nil {
		s.Logger.Error("ListTopics response encode failed", "error", err)
	}
}

// Frame handles GET /topics/{topic}/frames/{index}.png.
func (s *Server) Frame(w http.ResponseWriter, r *http.Request) {
	d, err := synth.For(domain.TopicID(chi.URLParam(r, "topic")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "Invalid frame index", http.StatusBadRequest)
		return
	}

	start := time.Now()
	surface, err := d.RenderFrame(index, s.Seed, synth.WithFrames(s.Frames), synth.WithSize(s.Width, s.Height))
	if err != nil {
		if errors.Is(err, domain.ErrFrameOutOfRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Frame render failed", "topic", d.Topic.ID, "index", index, "error", err)
		return
	}

	if h := s.Hooks.OnFrame; h != nil {
		h(r.Context(), &domain.FrameEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFrame},
			Topic:     d.Topic.ID,
			Index:     index,
			Total:     s.Frames,
			Elapsed:   time.Since(start),
			Image:     surface.Frame(),
		})
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := png.Encode(w, surface.Frame()); err != nil {
		s.Logger.Error("Frame encode failed", "topic", d.Topic.ID, "index", index, "error", err)
	}
}

// Guide handles GET /guide.
func (s *Server) Guide(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if _, err := w.Write([]byte(guide.Text)); err != nil {
		s.Logger.Error("Guide write failed", "error", err)
	}
}
