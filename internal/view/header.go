// Package view builds the server-side state of the SPA pages: the page
// header and the time-off table.
package view

import (
	"context"
	_ "embed"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"gauzy/internal/model"
	"gauzy/internal/store"
)

// PlaceholderLink marks a menu entry that has no page yet.
const PlaceholderLink = "#"

//go:embed menus.yaml
var menusYAML []byte

// Translator resolves message keys; missing keys come back unchanged.
type Translator interface {
	T(lang, key string, data map[string]any) string
}

type menuDef struct {
	Key     string `yaml:"key"`
	Icon    string `yaml:"icon"`
	Link    string `yaml:"link"`
	Divider bool   `yaml:"divider"`
}

type menuDefs struct {
	Create  []menuDef `yaml:"create"`
	Support []menuDef `yaml:"support"`
}

func loadMenuDefs(b []byte) (menuDefs, error) {
	var defs menuDefs
	if err := yaml.Unmarshal(b, &defs); err != nil {
		return menuDefs{}, fmt.Errorf("parse header menus: %w", err)
	}
	if len(defs.Create) == 0 || len(defs.Support) == 0 {
		return menuDefs{}, fmt.Errorf("parse header menus: create and support menus are required")
	}
	return defs, nil
}

// MenuItem is one translated context-menu entry.
type MenuItem struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Icon    string `json:"icon,omitempty"`
	Link    string `json:"link,omitempty"`
	Divider bool   `json:"divider,omitempty"`
}

// Selectors says which header selectors a page shows.
type Selectors struct {
	ShowEmployeesSelector     bool `json:"showEmployeesSelector"`
	ShowDateSelector          bool `json:"showDateSelector"`
	ShowOrganizationsSelector bool `json:"showOrganizationsSelector"`
}

var allSelectors = Selectors{true, true, true}

// selectorRules are matched by path prefix, first match wins.
var selectorRules = []struct {
	prefix    string
	selectors Selectors
}{
	{"/pages/organizations", Selectors{}},
	{"/pages/settings", Selectors{}},
	{"/pages/users", Selectors{ShowOrganizationsSelector: true}},
	{"/pages/employees", Selectors{ShowDateSelector: true, ShowOrganizationsSelector: true}},
	{"/pages/proposals", Selectors{ShowOrganizationsSelector: true, ShowEmployeesSelector: true}},
}

// SelectorRules computes the selector flags for a page URL. Unknown pages show everything.
func SelectorRules(rawURL string) Selectors {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for _, r := range selectorRules {
		if p == r.prefix || strings.HasPrefix(p, r.prefix+"/") {
			return r.selectors
		}
	}
	return allSelectors
}

// HeaderState is a snapshot of the header for rendering.
type HeaderState struct {
	Selectors
	Theme              string     `json:"theme"`
	ShowExtraActions   bool       `json:"showExtraActions"`
	Language           string     `json:"language"`
	OrganizationID     string     `json:"organizationId,omitempty"`
	CreateContextMenu  []MenuItem `json:"createContextMenu"`
	SupportContextMenu []MenuItem `json:"supportContextMenu"`
}

// Header is the page shell header: selectors, theme and the two context menus.
type Header struct {
	tr   Translator
	defs menuDefs

	mu               sync.Mutex
	lang             string
	orgID            string
	theme            string
	showExtraActions bool
	selectors        Selectors
	createMenu       []MenuItem
	supportMenu      []MenuItem
}

// NewHeader builds a header for lang positioned on pageURL.
func NewHeader(tr Translator, lang, pageURL string) (*Header, error) {
	defs, err := loadMenuDefs(menusYAML)
	if err != nil {
		return nil, err
	}
	h := &Header{
		tr:        tr,
		defs:      defs,
		lang:      lang,
		theme:     "default",
		selectors: SelectorRules(pageURL),
	}
	h.loadItems()
	return h, nil
}

// loadItems rebuilds both menus. Callers hold h.mu or own h exclusively.
func (h *Header) loadItems() {
	h.createMenu = h.createMenu[:0]
	for _, d := range h.defs.Create {
		h.createMenu = append(h.createMenu, MenuItem{
			Key:     d.Key,
			Title:   h.tr.T(h.lang, d.Key, nil),
			Icon:    d.Icon,
			Link:    h.resolveLink(d.Link),
			Divider: d.Divider,
		})
	}
	h.supportMenu = h.supportMenu[:0]
	for _, d := range h.defs.Support {
		h.supportMenu = append(h.supportMenu, MenuItem{
			Key:   d.Key,
			Title: h.tr.T(h.lang, d.Key, nil),
		})
	}
}

func (h *Header) resolveLink(link string) string {
	if !strings.Contains(link, "{orgID}") {
		return link
	}
	if h.orgID == "" {
		return PlaceholderLink
	}
	return strings.ReplaceAll(link, "{orgID}", h.orgID)
}

// SetLanguage clears both menus and rebuilds them in lang.
func (h *Header) SetLanguage(lang string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lang = lang
	h.createMenu = nil
	h.supportMenu = nil
	h.loadItems()
}

// SelectOrganization records the organization and rebuilds the menus.
// A nil organization is ignored.
func (h *Header) SelectOrganization(org *model.Organization) {
	if org == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.orgID = org.ID
	h.loadItems()
}

// Watch follows the store's selected organization until ctx is done.
func (h *Header) Watch(ctx context.Context, s *store.Store) {
	orgs := s.SelectedOrganization.Subscribe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case org, ok := <-orgs:
			if !ok {
				return
			}
			h.SelectOrganization(org)
		}
	}
}

// Navigate recomputes the selector flags for pageURL.
func (h *Header) Navigate(pageURL string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.selectors = SelectorRules(pageURL)
}

func (h *Header) SetTheme(name string) {
	if name == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.theme = name
}

// ToggleExtraActions flips the flag, or sets it when v is non-nil.
func (h *Header) ToggleExtraActions(v *bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if v != nil {
		h.showExtraActions = *v
		return
	}
	h.showExtraActions = !h.showExtraActions
}

// State returns a copy of the current header.
func (h *Header) State() HeaderState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return HeaderState{
		Selectors:          h.selectors,
		Theme:              h.theme,
		ShowExtraActions:   h.showExtraActions,
		Language:           h.lang,
		OrganizationID:     h.orgID,
		CreateContextMenu:  append([]MenuItem(nil), h.createMenu...),
		SupportContextMenu: append([]MenuItem(nil), h.supportMenu...),
	}
}

// CreateMenuLink is where clicking a create-menu item navigates: the item's
// page with the add dialog opened. ok is false for placeholder entries.
func CreateMenuLink(item MenuItem) (link string, ok bool) {
	if item.Link == "" || item.Link == PlaceholderLink {
		return "", false
	}
	return item.Link + "?openAddDialog=true", true
}
