package session

import "strings"

// Page is one top-level view of the dashboard.
type Page int

const (
	PageHome Page = iota
	PageHousing
	PageAcademics
	PageProfessors
	PageAid
	PageQA
)

var pages = []struct {
	id    string
	label string
	path  string
}{
	PageHome:       {"home", "Home", "/"},
	PageHousing:    {"housing", "Housing", "/housing"},
	PageAcademics:  {"academics", "Academics", "/academics"},
	PageProfessors: {"professors", "Professors", "/professors"},
	PageAid:        {"aid", "Aid & Jobs", "/aid"},
	PageQA:         {"qa", "Q&A", "/qa"},
}

// Pages returns every page in navigation order.
func Pages() []Page {
	out := make([]Page, len(pages))
	for i := range pages {
		out[i] = Page(i)
	}
	return out
}

// ParsePage accepts a page id ("housing") or label ("Aid & Jobs").
func ParsePage(s string) (Page, bool) {
	s = strings.TrimSpace(s)
	for i, p := range pages {
		if strings.EqualFold(s, p.id) || strings.EqualFold(s, p.label) {
			return Page(i), true
		}
	}
	return PageHome, false
}

func (p Page) valid() bool {
	return p >= 0 && int(p) < len(pages)
}

func (p Page) ID() string {
	if !p.valid() {
		return pages[PageHome].id
	}
	return pages[p].id
}

func (p Page) String() string {
	if !p.valid() {
		return pages[PageHome].label
	}
	return pages[p].label
}

// Path is the route that renders the page directly.
func (p Page) Path() string {
	if !p.valid() {
		return "/"
	}
	return pages[p].path
}
