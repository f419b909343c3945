package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Abdullahlab-n/VGC-for-arxiv/internal/store"
	"github.com/Abdullahlab-n/VGC-for-arxiv/internal/vgc"
)

// Server is the vgc HTTP API. The collector itself is single-threaded by
// contract, so the server serializes every collector operation behind mu —
// the HTTP layer is the "caller" the concurrency model makes responsible
// for that.
type Server struct {
	mu        sync.Mutex
	collector *vgc.Collector
	db        *store.DB
	router    chi.Router
	version   string
	started   time.Time
}

// New creates a Server around an existing collector. db may be nil, in
// which case the audit endpoints report an empty history and heap mutations
// are not persisted.
func New(collector *vgc.Collector, db *store.DB, version string) *Server {
	s := &Server{
		collector: collector,
		db:        db,
		version:   version,
		started:   time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Post("/objects", s.handleAllocate)
		r.Post("/objects/{objectID}/transition", s.handleTransition)
		r.Post("/sweep", s.handleSweep)

		r.Get("/report", s.handleReport)
		r.Get("/zones", s.handleZones)
		r.Get("/sweeps", s.handleSweeps)
		r.Get("/events", s.handleEvents)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := s.db != nil
	if dbOK {
		if err := s.db.Ping(); err != nil {
			dbOK = false
		}
	}

	s.mu.Lock()
	count := s.collector.Count()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"objects": count,
		"db":      dbOK,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
