package overview

import (
	"github.com/dgallion1/docnav/internal/catalog"
	"github.com/dgallion1/docnav/internal/docpath"
)

// DefaultSwitchAction is where the version select form posts to.
const DefaultSwitchAction = "/docs/switch"

// Options controls optional parts of the overview page.
type Options struct {
	ShowVersionSelect bool
	SwitchAction      string
}

// DefaultOptions shows the version select.
func DefaultOptions() Options {
	return Options{
		ShowVersionSelect: true,
		SwitchAction:      DefaultSwitchAction,
	}
}

// Page is the overview page model, ready to render.
type Page struct {
	Title         string          `json:"title"`
	Route         string          `json:"route"`
	Version       docpath.Version `json:"-"`
	VersionName   string          `json:"version"`
	Cards         []catalog.Card  `json:"cards"`
	VersionSelect *VersionSelect  `json:"version_select,omitempty"`
}

// VersionSelect is the form that lets a reader jump to another version of
// the page they are on.
type VersionSelect struct {
	Current   string   `json:"current"`
	Available []string `json:"available"`
	Route     string   `json:"route"`
	Action    string   `json:"action"`
}

// Build assembles the overview page for route. Routes without a recognisable
// version segment render the latest documentation.
func Build(route string, cat *catalog.Catalog, opts Options) Page {
	version := docpath.Latest()
	if p, err := docpath.Parse(route); err == nil {
		version = p.Version()
	}

	page := Page{
		Title:       "Docs",
		Route:       route,
		Version:     version,
		VersionName: version.String(),
		Cards:       make([]catalog.Card, len(cat.Cards)),
	}
	for i, card := range cat.Cards {
		page.Cards[i] = card.Resolve(version)
	}

	if opts.ShowVersionSelect {
		action := opts.SwitchAction
		if action == "" {
			action = DefaultSwitchAction
		}
		page.VersionSelect = &VersionSelect{
			Current:   version.String(),
			Available: cat.AvailableVersions(),
			Route:     route,
			Action:    action,
		}
	}
	return page
}
