package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/mwantia/gauchogo/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var assetFS embed.FS

// Pages that share the layout; each file defines a "content" template.
var viewFiles = map[session.Page]string{
	session.PageHome:       "templates/home.html",
	session.PageHousing:    "templates/housing.html",
	session.PageAcademics:  "templates/academics.html",
	session.PageProfessors: "templates/professors.html",
	session.PageAid:        "templates/aid.html",
	session.PageQA:         "templates/qa.html",
}

var sharedFiles = []string{
	"templates/layout.html",
	"templates/partials.html",
}

func staticFS() fs.FS {
	sub, err := fs.Sub(assetFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func parseViews() (map[session.Page]*template.Template, error) {
	base, err := template.ParseFS(templateFS, sharedFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	views := make(map[session.Page]*template.Template, len(viewFiles))
	for page, file := range viewFiles {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("failed to parse '%s': %w", file, err)
		}
		views[page] = clone
	}

	return views, nil
}

type navItem struct {
	ID     string
	Label  string
	Path   string
	Active bool
}

type layoutData struct {
	Title       string
	Nav         []navItem
	SidebarOpen bool
	RequestID   string
	Body        any
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, page session.Page, status int, body any) {
	sess := SessionFrom(r.Context())

	data := layoutData{
		Title:     page.String(),
		RequestID: RequestID(r.Context()),
		Body:      body,
	}
	for _, p := range session.Pages() {
		data.Nav = append(data.Nav, navItem{ID: p.ID(), Label: p.String(), Path: p.Path(), Active: p == page})
	}
	if sess != nil {
		data.SidebarOpen = sess.SidebarOpen()
	}

	// A failed template must not leave a partial page.
	var buf bytes.Buffer
	if err := h.views[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.log.Error("Failed to render '%s': %v", page.ID(), err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
