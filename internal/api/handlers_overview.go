package api

import (
	"bytes"
	"html"
	"net/http"
	"strconv"

	"github.com/dgallion1/docnav/internal/overview"
)

// handleOverview renders the docs overview page. The route defaults to the
// request path so /docs/manual/v8.0.0/ shows v8.0.0 links.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	page, ok := s.buildPage(w, r)
	if !ok {
		return
	}

	var body bytes.Buffer
	if err := overview.Render(&body, page); err != nil {
		s.log.Error("render overview", "route", page.Route, "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	s.metrics.IncOverviewRender()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>" +
		html.EscapeString(page.Title) + "</title></head><body>"))
	w.Write(body.Bytes())
	w.Write([]byte("</body></html>\n"))
}

// handleOverviewJSON returns the page model without rendering it.
func (s *Server) handleOverviewJSON(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("route") == "" {
		jsonError(w, "route query parameter is required", http.StatusBadRequest)
		return
	}
	page, ok := s.buildPage(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) buildPage(w http.ResponseWriter, r *http.Request) (overview.Page, bool) {
	q := r.URL.Query()

	route := q.Get("route")
	if route == "" {
		route = r.URL.Path
	}

	opts := overview.DefaultOptions()
	opts.ShowVersionSelect = s.cfg.ShowVersionSelect
	if v := q.Get("version_select"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			jsonError(w, "version_select must be a boolean", http.StatusBadRequest)
			return overview.Page{}, false
		}
		opts.ShowVersionSelect = show
	}

	return overview.Build(route, s.catalog, opts), true
}
