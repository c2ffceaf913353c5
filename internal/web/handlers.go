package web

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/mwantia/gauchogo/internal/data"
	"github.com/mwantia/gauchogo/internal/reference"
	"github.com/mwantia/gauchogo/internal/render"
	"github.com/mwantia/gauchogo/internal/session"
	"github.com/mwantia/gauchogo/pkg/db/store"
	"github.com/mwantia/gauchogo/pkg/log"
)

// EchoLimit is how many characters of a Q&A prompt are echoed back.
const EchoLimit = 160

type Handlers struct {
	cfg      ServerConfig
	loader   *data.Loader
	renderer render.Renderer
	store    store.CourseStore
	views    map[session.Page]*template.Template
	log      log.LoggerService
}

// enter makes page the session's current page. Re-entering the current
// page keeps the sidebar as it is.
func (h *Handlers) enter(r *http.Request, page session.Page) *session.Session {
	sess := SessionFrom(r.Context())
	if sess.Page() != page {
		sess.Navigate(page)
	}
	return sess
}

func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	switch SessionFrom(r.Context()).Page() {
	case session.PageHousing:
		h.HandleHousing(w, r)
	case session.PageAcademics:
		h.HandleAcademics(w, r)
	case session.PageProfessors:
		h.HandleProfessors(w, r)
	case session.PageAid:
		h.HandleAid(w, r)
	case session.PageQA:
		h.HandleQA(w, r)
	default:
		h.HandleHome(w, r)
	}
}

func (h *Handlers) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	page, ok := session.ParsePage(r.FormValue("page"))
	if !ok {
		http.Error(w, "unknown page", http.StatusBadRequest)
		return
	}

	SessionFrom(r.Context()).Navigate(page)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) HandleSidebar(w http.ResponseWriter, r *http.Request) {
	SessionFrom(r.Context()).ToggleSidebar()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "database": "disabled"}
	code := http.StatusOK

	if h.store != nil {
		status["database"] = "ok"
		if err := h.store.Health(r.Context()); err != nil {
			h.log.Warn("Health check failed: %v", err)
			status["status"] = "degraded"
			status["database"] = err.Error()
			code = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(status)
}

type homeRow struct {
	Page        string
	Title       string
	Description string
	Button      string
}

type homeBody struct {
	Rows []homeRow
}

var homeRows = []homeRow{
	{"housing", "Housing", "Browse IV listings with clean filters and optional photos.", "Open Housing"},
	{"academics", "Academics", "Plan quarters, search courses, explore resources.", "Open Academics"},
	{"professors", "Professors", "Fast RMP searches and department pages.", "Open Professors"},
	{"aid", "Aid & Jobs", "FAFSA, work-study, UCSB aid and Handshake links.", "Open Aid & Jobs"},
	{"qa", "Q&A", "Ask a UCSB question.", "Open Q&A"},
}

func (h *Handlers) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.enter(r, session.PageHome)
	h.render(w, r, session.PageHome, http.StatusOK, homeBody{Rows: homeRows})
}

type professorsBody struct {
	Name      string
	Dept      string
	Depts     []reference.Link
	SearchURL string
	DeptURL   string
}

func (h *Handlers) HandleProfessors(w http.ResponseWriter, r *http.Request) {
	h.enter(r, session.PageProfessors)

	body := professorsBody{
		Name:  strings.TrimSpace(r.FormValue("name")),
		Dept:  r.FormValue("dept"),
		Depts: reference.DepartmentSites(),
	}
	if body.Name != "" {
		body.SearchURL = reference.ProfessorSearchURL(body.Name)
	}

	url, ok := reference.DepartmentSite(body.Dept)
	if !ok && len(body.Depts) > 0 {
		body.Dept, url = body.Depts[0].Label, body.Depts[0].URL
	}
	body.DeptURL = url

	h.render(w, r, session.PageProfessors, http.StatusOK, body)
}

type aidBody struct {
	Links []reference.Link
}

func (h *Handlers) HandleAid(w http.ResponseWriter, r *http.Request) {
	h.enter(r, session.PageAid)
	h.render(w, r, session.PageAid, http.StatusOK, aidBody{Links: reference.AidLinks()})
}

type qaBody struct {
	Prompt   string
	Answered bool
	Echo     string
}

// HandleQA shows the question box. Submitting it acknowledges the question
// without answering it; no model is wired in.
func (h *Handlers) HandleQA(w http.ResponseWriter, r *http.Request) {
	h.enter(r, session.PageQA)

	body := qaBody{}
	if r.Method == http.MethodPost {
		body.Prompt = r.FormValue("prompt")
		body.Answered = true
		body.Echo = Truncate(strings.TrimSpace(body.Prompt), EchoLimit)
	}

	h.render(w, r, session.PageQA, http.StatusOK, body)
}

// Truncate shortens s to limit characters and marks the cut with "...".
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
