package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dgallion1/docnav/internal/catalog"
	"github.com/dgallion1/docnav/internal/config"
	"github.com/dgallion1/docnav/internal/metrics"
	"github.com/dgallion1/docnav/internal/navigation"
	"github.com/dgallion1/docnav/internal/overview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(catalog.Default(), navigation.RedirectNavigator{}, metrics.NewRecorder(nil), log, cfg)
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func postSwitch(route, version string) *http.Request {
	form := url.Values{"route": {route}, "version": {version}}
	req := httptest.NewRequest(http.MethodPost, "/docs/switch", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, config.Config{ShowVersionSelect: true})
	rec := do(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSwitchVersion_Redirects(t *testing.T) {
	s := newTestServer(t, config.Config{ShowVersionSelect: true})

	rec := do(s, postSwitch("/docs/manual/latest/introduction", "v8.0.0"))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/docs/manual/v8.0.0/introduction", rec.Header().Get("Location"))

	m := do(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, m.Body.String(), `docnav_version_switches_total{version="v8.0.0"} 1`)
}

func TestSwitchVersion_EmptyVersionKeepsPath(t *testing.T) {
	s := newTestServer(t, config.Config{ShowVersionSelect: true})

	rec := do(s, postSwitch("/docs/manual/v7.1.0/overview", ""))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/docs/manual/v7.1.0/overview", rec.Header().Get("Location"))
}

func TestSwitchVersion_Rejects(t *testing.T) {
	s := newTestServer(t, config.Config{ShowVersionSelect: true})

	tests := []struct {
		name    string
		route   string
		version string
		want    string
	}{
		{"no version in route", "/docs/manual/introduction", "v8.0.0", "no version segment"},
		{"empty route", "", "v8.0.0", "empty route"},
		{"unknown version", "/docs/manual/latest/introduction", "v99", "unknown version"},
		{"backslash host", "/\\evil.com/latest/x", "v8.0.0", "backslash"},
		{"leading backslashes", "\\\\evil.com/latest", "v8.0.0", "backslash"},
		{"control character", "/docs/\tmanual/latest", "v8.0.0", "control character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(s, postSwitch(tt.route, tt.version))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Header().Get("Location"))
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestSwitchVersion_FormTooLarge(t *testing.T) {
	s := newTestServer(t, config.Config{MaxFormBytes: 64})

	rec := do(s, postSwitch("/docs/manual/latest/"+strings.Repeat("a", 200), "v8.0.0"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestSwitchVersion_UsesInjectedNavigator(t *testing.T) {
	var target string
	nav := navigation.NavigatorFunc(func(w http.ResponseWriter, _ *http.Request, to string) {
		target = to
		w.WriteHeader(http.StatusNoContent)
	})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewServer(catalog.Default(), nav, metrics.NewRecorder(nil), log, config.Config{})

	rec := do(s, postSwitch("/docs/manual/v8.0.0/build-overview", "latest"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "/docs/manual/latest/build-overview", target)
}

func TestRewrite(t *testing.T) {
	s := newTestServer(t, config.Config{})

	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/rewrite?route=/docs/manual/latest&version=v9", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"from":"/docs/manual/latest","to":"/docs/manual/v9","version":"v9"}`, rec.Body.String())

	rec = do(s, httptest.NewRequest(http.MethodGet, "/api/rewrite?route=/docs/manual", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(s, httptest.NewRequest(http.MethodGet, "/api/rewrite", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVersions(t *testing.T) {
	s := newTestServer(t, config.Config{})
	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/versions", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Versions []string `json:"versions"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, catalog.Default().Versions, body.Versions)
}

func TestOverviewPage(t *testing.T) {
	s := newTestServer(t, config.Config{ShowVersionSelect: true})

	rec := do(s, httptest.NewRequest(http.MethodGet, "/docs/manual/v8.0.0/introduction", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Docs</title>")
	assert.Contains(t, body, `<select name="version"`)

	links, err := overview.ExtractLinks(strings.NewReader(body))
	require.NoError(t, err)
	require.NotEmpty(t, links)
	assert.Equal(t, "/docs/manual/v8.0.0/introduction", links[0].Href)
}

func TestOverviewPage_VersionSelectToggle(t *testing.T) {
	s := newTestServer(t, config.Config{ShowVersionSelect: false})

	rec := do(s, httptest.NewRequest(http.MethodGet, "/docs/overview", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<select")

	rec = do(s, httptest.NewRequest(http.MethodGet, "/docs/overview?version_select=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<select")

	rec = do(s, httptest.NewRequest(http.MethodGet, "/docs/overview?version_select=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOverviewJSON(t *testing.T) {
	s := newTestServer(t, config.Config{ShowVersionSelect: true})

	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/overview?route=/docs/manual/v7.1.0/overview", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var page overview.Page
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, "v7.1.0", page.VersionName)
	require.NotNil(t, page.VersionSelect)
	assert.Equal(t, "/docs/manual/v7.1.0/overview", page.VersionSelect.Route)
	assert.Equal(t, "/docs/manual/v7.1.0/introduction", page.Cards[0].Links[0].Href)

	rec = do(s, httptest.NewRequest(http.MethodGet, "/api/overview", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
