package web

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mwantia/gauchogo/internal/data"
	"github.com/mwantia/gauchogo/internal/filter"
	"github.com/mwantia/gauchogo/internal/reference"
	"github.com/mwantia/gauchogo/internal/render"
	"github.com/mwantia/gauchogo/internal/session"
)

const (
	TabClasses   = "classes"
	TabSearch    = "search"
	TabPlanner   = "planner"
	TabMap       = "map"
	TabAnalytics = "analytics"
)

var academicTabs = []struct{ ID, Label string }{
	{TabClasses, "Classes"},
	{TabSearch, "Search"},
	{TabPlanner, "Planner"},
	{TabMap, "Map"},
	{TabAnalytics, "Analytics"},
}

type tabItem struct {
	ID     string
	Label  string
	URL    string
	Active bool
}

type academicsBody struct {
	Notice   *data.Advisory
	Banner   data.Advisory
	Majors   []reference.Major
	Major    reference.Major
	Quarters []string
	Quarter  string
	Tab      string
	Tabs     []tabItem

	Classes   *classesView
	Search    *searchView
	Planner   *plannerView
	Map       *mapView
	Analytics *analyticsView
}

type statusOption struct {
	Name    string
	Checked bool
}

type classesView struct {
	Advisory *data.Advisory
	Stats    filter.Stats
	AvgUnits string
	Statuses []statusOption
	Grid     [][]template.HTML
	Empty    string
}

type searchView struct {
	Query    string
	Prompt   bool
	Advisory *data.Advisory
	Found    string
	Rows     []data.Course
}

type plannerView struct {
	Planned []session.PlannedCourse
	Total   int
	Load    session.Load
	Error   string
	Code    string
	Units   int
	Min     int
	Max     int
}

type mapView struct {
	Buildings []reference.Building
	Marker    reference.Marker
}

type bar struct {
	Status  string
	Count   int
	Percent int
}

type analyticsView struct {
	Advisory *data.Advisory
	Bars     []bar
}

// academicsState is the major/quarter/tab triple carried through every
// academics URL and form.
type academicsState struct {
	major   reference.Major
	quarter string
	tab     string
}

func readAcademicsState(r *http.Request) academicsState {
	major, ok := reference.LookupMajor(r.FormValue("major"))
	if !ok {
		major, _ = reference.LookupMajor(reference.DefaultMajor())
	}

	quarter := r.FormValue("quarter")
	if !contains(reference.Quarters(), quarter) {
		quarter = reference.DefaultQuarter()
	}

	tab := r.FormValue("tab")
	valid := false
	for _, t := range academicTabs {
		valid = valid || t.ID == tab
	}
	if !valid {
		tab = TabClasses
	}

	return academicsState{major: major, quarter: quarter, tab: tab}
}

func (st academicsState) url(tab string) string {
	q := url.Values{}
	q.Set("major", st.major.Name)
	q.Set("quarter", st.quarter)
	q.Set("tab", tab)
	return "/academics?" + q.Encode()
}

func (h *Handlers) HandleAcademics(w http.ResponseWriter, r *http.Request) {
	h.renderAcademics(w, r, readAcademicsState(r), http.StatusOK, nil)
}

// HandlePlannerAdd appends a course to the session's planner.
func (h *Handlers) HandlePlannerAdd(w http.ResponseWriter, r *http.Request) {
	st := readAcademicsState(r)
	st.tab = TabPlanner

	sess := h.enter(r, session.PageAcademics)
	code := r.FormValue("code")

	units, err := strconv.Atoi(strings.TrimSpace(r.FormValue("units")))
	if err != nil {
		err = fmt.Errorf("%w: %q is not a number", session.ErrUnitsOutOfRange, r.FormValue("units"))
	} else {
		err = sess.AddCourse(code, units)
	}

	if err != nil {
		msg := "Units must be between 1 and 8."
		if errors.Is(err, session.ErrEmptyCourseCode) {
			msg = "Enter a course code."
		}
		h.renderAcademics(w, r, st, http.StatusUnprocessableEntity, &plannerView{Error: msg, Code: code, Units: units})
		return
	}

	http.Redirect(w, r, st.url(TabPlanner), http.StatusSeeOther)
}

func (h *Handlers) HandlePlannerClear(w http.ResponseWriter, r *http.Request) {
	st := readAcademicsState(r)
	h.enter(r, session.PageAcademics).ClearCourses()
	http.Redirect(w, r, st.url(TabPlanner), http.StatusSeeOther)
}

func (h *Handlers) renderAcademics(w http.ResponseWriter, r *http.Request, st academicsState, status int, planner *plannerView) {
	sess := h.enter(r, session.PageAcademics)

	body := academicsBody{
		Notice:   h.loader.StoreAdvisory(),
		Banner:   h.courseBanner(),
		Majors:   reference.Majors(),
		Major:    st.major,
		Quarters: reference.Quarters(),
		Quarter:  st.quarter,
		Tab:      st.tab,
	}
	for _, t := range academicTabs {
		body.Tabs = append(body.Tabs, tabItem{ID: t.ID, Label: t.Label, URL: st.url(t.ID), Active: t.ID == st.tab})
	}

	switch st.tab {
	case TabSearch:
		body.Search = h.searchCourses(r, r.FormValue("q"))
	case TabPlanner:
		body.Planner = plannerState(sess, planner)
	case TabMap:
		body.Map = buildingMap(r.FormValue("building"))
	case TabAnalytics:
		body.Analytics = h.analytics(r, st)
	default:
		body.Classes = h.classes(r, st)
	}

	h.render(w, r, session.PageAcademics, status, body)
}

func (h *Handlers) courseBanner() data.Advisory {
	switch h.loader.CourseSource(h.cfg.CoursesCSV) {
	case data.SourceDatabase:
		return data.Advisory{Level: data.AdvisorySuccess, Message: "Using live database with UCSB course data"}
	case data.SourceCSV:
		return data.Advisory{Level: data.AdvisoryInfo, Message: fmt.Sprintf("Using CSV file %s", h.cfg.CoursesCSV)}
	default:
		return data.Advisory{Level: data.AdvisoryWarning, Message: "No course data found. Add major_courses_by_quarter.csv or configure the course database."}
	}
}

// majorCourses loads the rows of the selected major and quarter from
// whichever source is active.
func (h *Handlers) majorCourses(r *http.Request, st academicsState) data.Result[data.Course] {
	if h.loader.CourseSource(h.cfg.CoursesCSV) == data.SourceDatabase {
		return h.loader.CoursesFromDB(r.Context(), st.major.Name, st.quarter)
	}

	res := h.loader.Courses(h.cfg.CoursesCSV)
	res.Rows = filter.Courses(res.Rows, filter.CourseSelection{Major: st.major.Name, Quarter: st.quarter})
	return res
}

func (h *Handlers) classes(r *http.Request, st academicsState) *classesView {
	res := h.majorCourses(r, st)
	view := &classesView{Advisory: res.Advisory}
	if res.Empty() {
		view.Empty = fmt.Sprintf("No course data available for %s in %s.", st.major.Name, st.quarter)
		return view
	}

	// The status filter defaults to every known status until the form has
	// been submitted once.
	selected := filter.CourseStatuses
	if r.FormValue("filtered") != "" {
		selected = r.Form["status"]
	}
	for _, s := range filter.CourseStatuses {
		view.Statuses = append(view.Statuses, statusOption{Name: s, Checked: contains(selected, s)})
	}

	view.Stats = filter.CourseStats(res.Rows)
	view.AvgUnits = fmt.Sprintf("%.1f", view.Stats.AvgUnits)

	rows := filter.Courses(res.Rows, filter.CourseSelection{Statuses: selected})
	if len(rows) == 0 {
		view.Empty = fmt.Sprintf("No classes found for %s in %s.", st.major.Name, st.quarter)
		return view
	}

	cards := make([]template.HTML, 0, len(rows))
	for _, c := range rows {
		card, err := h.renderer.CourseCard(c)
		if err != nil {
			h.log.Error("Failed to render course '%s': %v", c.Code, err)
			continue
		}
		cards = append(cards, card)
	}
	view.Grid = render.Grid(cards, 3)
	return view
}

func (h *Handlers) searchCourses(r *http.Request, query string) *searchView {
	view := &searchView{Query: strings.TrimSpace(query)}
	if view.Query == "" {
		view.Prompt = true
		return view
	}

	var res data.Result[data.Course]
	if h.loader.CourseSource(h.cfg.CoursesCSV) == data.SourceDatabase {
		res = h.loader.SearchDB(r.Context(), view.Query)
	} else {
		res = h.loader.Courses(h.cfg.CoursesCSV)
		if !res.Empty() {
			res.Rows = filter.Search(res.Rows, view.Query).Rows
		}
	}

	view.Advisory = res.Advisory
	view.Rows = res.Rows
	if len(view.Rows) > 0 {
		view.Found = fmt.Sprintf("Found %d courses", len(view.Rows))
	}
	return view
}

func plannerState(sess *session.Session, prev *plannerView) *plannerView {
	view := &plannerView{Units: 4}
	if prev != nil {
		view = prev
	}
	if view.Units < session.MinUnits || view.Units > session.MaxUnits {
		view.Units = 4
	}

	view.Min, view.Max = session.MinUnits, session.MaxUnits
	view.Planned = sess.Planned()
	view.Total = sess.TotalUnits()
	view.Load = session.ClassifyLoad(view.Total)
	return view
}

func buildingMap(name string) *mapView {
	buildings := reference.Buildings()
	b, ok := reference.LookupBuilding(name)
	if !ok {
		b = buildings[0]
	}
	return &mapView{Buildings: buildings, Marker: reference.NewMarker(b)}
}

func (h *Handlers) analytics(r *http.Request, st academicsState) *analyticsView {
	res := h.majorCourses(r, st)
	view := &analyticsView{Advisory: res.Advisory}

	counts := filter.StatusCounts(res.Rows)
	if len(counts) == 0 {
		return view
	}

	top := counts[0].Count
	for _, c := range counts {
		view.Bars = append(view.Bars, bar{Status: c.Status, Count: c.Count, Percent: c.Count * 100 / top})
	}
	return view
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(v)) {
			return true
		}
	}
	return false
}
