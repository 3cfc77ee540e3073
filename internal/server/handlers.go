package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/devreg/internal/server/pages"
	"github.com/leapstack-labs/devreg/internal/server/resources"
	"github.com/leapstack-labs/devreg/pkg/registry"
	"github.com/starfederation/datastar-go/datastar"
)

// GroupSummary describes one catalog.
type GroupSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Size        int    `json:"size"`
}

// GroupDetail is a catalog with its entries.
type GroupDetail struct {
	GroupSummary
	Entries []registry.Entry `json:"entries"`
}

// Resolution is the answer to a positional lookup.
type Resolution struct {
	Group    string      `json:"group"`
	Index    int         `json:"index"`
	ID       registry.ID `json:"id"`
	Assigned bool        `json:"assigned"`
	Miss     string      `json:"miss,omitempty"`
	Name     string      `json:"name,omitempty"`
}

// RenderPass is the ordered IDs for a rendered list.
type RenderPass struct {
	Group string        `json:"group"`
	Count int           `json:"count"`
	IDs   []registry.ID `json:"ids"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) routes(r chi.Router) {
	r.Get("/", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	r.Get("/updates", s.handleUpdates)
	r.Handle("/static/*", resources.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/groups", s.handleGroups)
		r.Get("/groups/{group}", s.handleGroup)
		r.Get("/groups/{group}/render", s.handleRender)
		r.Get("/groups/{group}/{index}", s.handleResolve)
		r.Get("/elements", s.handleElements)
		r.Get("/elements/{id}", s.handleElement)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.Version(),
	})
}

func (s *Server) handleGroups(w http.ResponseWriter, _ *http.Request) {
	reg := s.Registry()
	groups := make([]GroupSummary, 0, len(reg.Groups()))
	for _, c := range reg.Catalogs() {
		groups = append(groups, GroupSummary{Name: c.Group(), Description: c.Description(), Size: c.Len()})
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleGroup(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	c, ok := s.Registry().Catalog(group)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown group: "+group)
		return
	}
	writeJSON(w, http.StatusOK, GroupDetail{
		GroupSummary: GroupSummary{Name: c.Group(), Description: c.Description(), Size: c.Len()},
		Entries:      c.Entries(),
	})
}

// handleResolve never reports a miss as an error: unassigned positions
// resolve to the sentinel with a 200.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	e, miss := s.Registry().Lookup(group, index)
	res := Resolution{
		Group:    group,
		Index:    index,
		ID:       e.ID,
		Assigned: miss == registry.MissNone,
		Name:     e.Name,
	}
	if miss != registry.MissNone {
		res.Miss = miss.String()
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count < 0 || count > registry.MaxResolveCount {
		writeError(w, http.StatusBadRequest, "count must be an integer between 0 and "+strconv.Itoa(registry.MaxResolveCount))
		return
	}

	ids := s.Registry().ResolveAll(group, count)
	if ids == nil {
		ids = []registry.ID{}
	}
	writeJSON(w, http.StatusOK, RenderPass{Group: group, Count: count, IDs: ids})
}

func (s *Server) handleElements(w http.ResponseWriter, _ *http.Request) {
	elements := s.Registry().Elements()
	if elements == nil {
		elements = []registry.Entry{}
	}
	writeJSON(w, http.StatusOK, elements)
}

func (s *Server) handleElement(w http.ResponseWriter, r *http.Request) {
	id := registry.ID(chi.URLParam(r, "id"))
	e, ok := s.Registry().Describe(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown registry id: "+id.String())
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if err := pages.Inspector("Registry Inspector", s.Registry(), s.Version()).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleUpdates is the long-lived SSE endpoint for inspector clients.
// It patches the registry summary on connect and after every reload.
func (s *Server) handleUpdates(w http.ResponseWriter, r *http.Request) {
	updates := s.notifier.Subscribe()
	defer s.notifier.Unsubscribe(updates)

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(pages.Summary(s.Registry(), s.Version())); err != nil {
		return
	}

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case v := <-updates:
			if err := sse.PatchElementTempl(pages.Summary(s.Registry(), v)); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}
