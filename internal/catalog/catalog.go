package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dgallion1/docnav/internal/docpath"
	"gopkg.in/yaml.v3"
)

// VersionPlaceholder is replaced with the current version in link hrefs.
const VersionPlaceholder = "{version}"

// Link is a single entry in a card.
type Link struct {
	Text string `yaml:"text" json:"text"`
	Href string `yaml:"href" json:"href"`
}

// Card is a titled list of links on the overview page.
type Card struct {
	Title string `yaml:"title" json:"title"`
	Links []Link `yaml:"links" json:"links"`
}

// Catalog holds the selectable documentation versions and the overview cards.
type Catalog struct {
	Versions []string `yaml:"versions"`
	Cards    []Card   `yaml:"cards"`
}

// VersionLister supplies the ordered versions a reader can switch between.
type VersionLister interface {
	AvailableVersions() []string
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Versions: []string{"latest", "v8.0.0", "v7.1.0", "v6.0.0"},
		Cards: []Card{
			{
				Title: "Language Manual",
				Links: []Link{
					{Text: "Overview", Href: "/docs/manual/{version}/introduction"},
					{Text: "Language Features", Href: "/docs/manual/{version}/overview"},
					{Text: "JS Interop", Href: "/docs/manual/{version}/embed-raw-javascript"},
					{Text: "Build System", Href: "/docs/manual/{version}/build-overview"},
				},
			},
			{
				Title: "Ecosystem",
				Links: []Link{
					{Text: "Package Index", Href: "/packages"},
					{Text: "GenType", Href: "/docs/gentype/latest/introduction"},
					{Text: "ReasonReact", Href: "https://reasonml.github.io/reason-react"},
					{Text: "Reanalyze", Href: "https://github.com/reason-association/reanalyze"},
				},
			},
		},
	}
}

// Load reads a YAML catalog from path. Sections left out of the file are
// taken from Default.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	def := Default()
	if len(c.Versions) == 0 {
		c.Versions = def.Versions
	}
	if len(c.Cards) == 0 {
		c.Cards = def.Cards
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every card and version is usable.
func (c *Catalog) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(c.Versions))
	for i, v := range c.Versions {
		switch {
		case v == "":
			errs = append(errs, fmt.Errorf("versions[%d]: empty version", i))
		case seen[v]:
			errs = append(errs, fmt.Errorf("versions[%d]: duplicate version %q", i, v))
		case !docpath.IsVersionSegment(v):
			errs = append(errs, fmt.Errorf("versions[%d]: %q is not a version segment", i, v))
		}
		seen[v] = true
	}

	for i, card := range c.Cards {
		if strings.TrimSpace(card.Title) == "" {
			errs = append(errs, fmt.Errorf("cards[%d]: title is required", i))
		}
		if len(card.Links) == 0 {
			errs = append(errs, fmt.Errorf("cards[%d]: at least one link is required", i))
		}
		for j, l := range card.Links {
			if strings.TrimSpace(l.Text) == "" || strings.TrimSpace(l.Href) == "" {
				errs = append(errs, fmt.Errorf("cards[%d].links[%d]: text and href are required", i, j))
			} else if strings.ContainsAny(l.Href, "<> \t\r\n") {
				errs = append(errs, fmt.Errorf("cards[%d].links[%d]: href %q must not contain '<', '>' or whitespace", i, j, l.Href))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// AvailableVersions returns a copy of the version list in display order.
func (c *Catalog) AvailableVersions() []string {
	out := make([]string, len(c.Versions))
	copy(out, c.Versions)
	return out
}

// HasVersion reports whether v is one of the selectable versions.
func (c *Catalog) HasVersion(v string) bool {
	for _, known := range c.Versions {
		if known == v {
			return true
		}
	}
	return false
}

// Resolve returns a copy of the card with the version placeholder expanded.
func (card Card) Resolve(v docpath.Version) Card {
	out := Card{Title: card.Title, Links: make([]Link, len(card.Links))}
	for i, l := range card.Links {
		out.Links[i] = Link{
			Text: l.Text,
			Href: strings.ReplaceAll(l.Href, VersionPlaceholder, v.String()),
		}
	}
	return out
}
