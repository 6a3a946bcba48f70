package api

import (
	"fmt"
	"net/http"

	"github.com/dgallion1/docnav/internal/docpath"
)

// handleSwitchVersion is the target of the version select form. It rewrites
// the submitted route to the chosen version and navigates there.
func (s *Server) handleSwitchVersion(w http.ResponseWriter, r *http.Request) {
	if s.cfg.MaxFormBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxFormBytes)
	}
	if err := r.ParseForm(); err != nil {
		jsonError(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	route := r.PostFormValue("route")
	version := r.PostFormValue("version")

	current, err := docpath.Parse(route)
	if err != nil {
		jsonError(w, fmt.Sprintf("invalid route %q: %s", route, err), http.StatusBadRequest)
		return
	}
	if version != "" && !s.catalog.HasVersion(version) {
		jsonError(w, fmt.Sprintf("unknown version %q", version), http.StatusBadRequest)
		return
	}

	target := docpath.Rewrite(current, version)
	if version == "" {
		s.metrics.IncRewriteNoop()
	} else {
		s.metrics.IncVersionSwitch(version)
	}
	s.log.Info("version switch", "from", current.String(), "to", target, "version", version)

	s.navigator.Navigate(w, r, target)
}

// handleRewrite computes a version switch without navigating.
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	route := q.Get("route")
	if route == "" {
		jsonError(w, "route query parameter is required", http.StatusBadRequest)
		return
	}

	current, err := docpath.Parse(route)
	if err != nil {
		jsonError(w, fmt.Sprintf("invalid route %q: %s", route, err), http.StatusBadRequest)
		return
	}

	version := q.Get("version")
	writeJSON(w, http.StatusOK, map[string]string{
		"from":    current.String(),
		"to":      docpath.Rewrite(current, version),
		"version": version,
	})
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"versions": s.catalog.AvailableVersions(),
	})
}
