package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Abdullahlab-n/VGC-for-arxiv/internal/store"
	"github.com/Abdullahlab-n/VGC-for-arxiv/internal/vgc"
)

func (s *Server) handleAllocate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    uint32 `json:"id"`
		Zone  string `json:"zone"`
		State string `json:"state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	zone, err := vgc.ParseZone(req.Zone)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// State is optional; omitted means ACTIVE.
	state := vgc.StateActive
	if req.State != "" {
		state, err = vgc.ParseState(req.State)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	s.mu.Lock()
	_, replaced := s.collector.Get(req.ID)
	s.collector.AllocateState(req.ID, zone, state)
	obj, _ := s.collector.Get(req.ID)
	s.mu.Unlock()

	if s.db != nil {
		if err := s.db.RecordAllocation(obj, replaced); err != nil {
			log.Printf("record allocation %d: %v", req.ID, err)
		}
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":       obj.ID,
		"zone":     obj.Zone.String(),
		"state":    obj.State.String(),
		"replaced": replaced,
	})
}

func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		State string `json:"state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	state, err := vgc.ParseState(req.State)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	err = s.collector.Transition(id, state)
	obj, _ := s.collector.Get(id)
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, vgc.ErrObjectNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.db != nil {
		if err := s.db.RecordTransition(obj); err != nil {
			log.Printf("record transition %d: %v", id, err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":    obj.ID,
		"zone":  obj.Zone.String(),
		"state": obj.State.String(),
	})
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PendingMask uint8 `json:"pending_mask"`
	}
	// An empty body means a sweep with no pending operations.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.PendingMask > 0b111 {
		writeError(w, http.StatusBadRequest, "pending_mask must be 0-7")
		return
	}

	s.mu.Lock()
	res := s.collector.SweepDetailed(req.PendingMask)
	remaining := s.collector.Count()
	s.mu.Unlock()

	if s.db != nil {
		if _, err := s.db.RecordSweep(res); err != nil {
			log.Printf("record sweep: %v", err)
		}
	}

	reclaimed := make([]map[string]any, 0, len(res.Reclaimed))
	for _, obj := range res.Reclaimed {
		reclaimed = append(reclaimed, map[string]any{
			"id":    obj.ID,
			"zone":  obj.Zone.String(),
			"state": obj.State.String(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"pending_mask": res.PendingMask,
		"reclaimed":    len(res.Reclaimed),
		"objects":      reclaimed,
		"remaining":    remaining,
		"duration_us":  res.Duration.Microseconds(),
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	report := s.collector.StatusReport()
	count := s.collector.Count()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"count":   count,
		"objects": report,
	})
}

func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	dist := s.collector.ZoneDistribution()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, dist)
}

func (s *Server) handleSweeps(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, 20)

	cycles := []store.SweepCycle{}
	if s.db != nil {
		var err error
		cycles, err = s.db.RecentSweeps(limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	out := make([]map[string]any, 0, len(cycles))
	for _, c := range cycles {
		out = append(out, map[string]any{
			"id":           c.ID,
			"pending_mask": c.PendingMask,
			"reclaimed":    c.Reclaimed,
			"duration_us":  c.DurationUS,
			"created_at":   c.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"sweeps": out})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, 50)

	events := []store.HeapEvent{}
	if s.db != nil {
		var err error
		events, err = s.db.RecentEvents(limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	out := make([]map[string]any, 0, len(events))
	for _, e := range events {
		out = append(out, map[string]any{
			"event":      e.Event,
			"object_id":  e.ObjectID,
			"zone":       e.Zone,
			"state":      e.State,
			"created_at": e.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": out})
}

func parseObjectID(r *http.Request) (uint32, error) {
	raw := chi.URLParam(r, "objectID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("object id must be a non-negative integer")
	}
	return uint32(id), nil
}

func queryLimit(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
