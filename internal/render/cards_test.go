package render

import (
	"html/template"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwantia/gauchogo/internal/data"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func parse(t *testing.T, fragment template.HTML) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(fragment)))
	if err != nil {
		t.Fatalf("failed to parse fragment: %v", err)
	}
	return doc
}

func pills(doc *goquery.Document) []string {
	var out []string
	doc.Find(".pill").Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		status string
		want   StatusClass
		bg, fg string
	}{
		{"Open", StatusOpen, "#ecfdf3", "#166534"},
		{" available ", StatusOpen, "#ecfdf3", "#166534"},
		{"FULL", StatusFull, "#fef2f2", "#991b1b"},
		{"Leased", StatusFull, "#fef2f2", "#991b1b"},
		{"mixed", StatusMixed, "#fffbeb", "#92400e"},
		{"Processing", StatusMixed, "#fffbeb", "#92400e"},
		{"Waitlist", StatusUnknown, "#f3f4f6", "#374151"},
		{"", StatusUnknown, "#f3f4f6", "#374151"},
	}

	for _, tt := range tests {
		got := Classify(tt.status)
		if got != tt.want {
			t.Errorf("Classify(%q) = %v; want %v", tt.status, got, tt.want)
		}
		if got.Background() != tt.bg || got.Foreground() != tt.fg {
			t.Errorf("Classify(%q) colours = %s/%s; want %s/%s", tt.status, got.Background(), got.Foreground(), tt.bg, tt.fg)
		}
	}
}

func TestPerPerson(t *testing.T) {
	tests := []struct {
		name     string
		price    *float64
		capacity *int
		want     int
		ok       bool
	}{
		{"even split", fptr(3000), iptr(3), 1000, true},
		{"rounded down", fptr(2999), iptr(4), 749, true},
		{"zero capacity", fptr(3000), iptr(0), 0, false},
		{"missing capacity", fptr(3000), nil, 0, false},
		{"missing price", nil, iptr(2), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PerPerson(tt.price, tt.capacity)
			if got != tt.want || ok != tt.ok {
				t.Errorf("PerPerson = (%d, %v); want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestListingCardRendersEveryField(t *testing.T) {
	listing := data.Listing{
		Street:       "6512 Del Playa Dr",
		Unit:         "B",
		PriceText:    "$4,500",
		Price:        fptr(4500),
		Bedrooms:     "3",
		Bathrooms:    "2",
		MaxResidents: iptr(4),
		PetPolicy:    "Cats & dogs OK",
		Status:       "Available",
		Utilities:    "Water, trash",
		Availability: "Sep 1 – Jun 30",
		ListingURL:   "https://example.com/listing/1",
		ImageURL:     "https://example.com/img.jpg",
	}

	html, err := Renderer{}.ListingCard(listing)
	if err != nil {
		t.Fatalf("ListingCard: %v", err)
	}
	doc := parse(t, html)

	checks := map[string]string{
		".listing-title":  "6512 Del Playa Dr",
		".listing-sub":    "6512 Del Playa Dr - B",
		".money":          "$4,500",
		".per-person":     "$1,125 / person",
		".badge":          "Available",
		".utilities":      "Included utilities: Water, trash",
		".listing-status": "Sep 1 – Jun 30",
	}
	for sel, want := range checks {
		if got := strings.TrimSpace(doc.Find(sel).Text()); got != want {
			t.Errorf("%s = %q; want %q", sel, got, want)
		}
	}

	wantPills := []string{"3 bed", "2 bath", "Up to 4 residents", "Cats & dogs OK"}
	if got := pills(doc); !reflect.DeepEqual(got, wantPills) {
		t.Errorf("pills = %v; want %v", got, wantPills)
	}
	if href, _ := doc.Find("a.link-btn").Attr("href"); href != listing.ListingURL {
		t.Errorf("link href = %q", href)
	}
	if src, _ := doc.Find(".listing-img img").Attr("src"); src != listing.ImageURL {
		t.Errorf("image src = %q", src)
	}
	if style, _ := doc.Find(".badge").Attr("style"); !strings.Contains(style, "#ecfdf3") || !strings.Contains(style, "#166534") {
		t.Errorf("badge style = %q", style)
	}
}

func TestListingCardPriceFormat(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		price *float64
		want  string
	}{
		{"formatted cell", "$4,500", fptr(4500), "$4,500"},
		{"bare number", "4500", fptr(4500), "$4,500"},
		{"suffix", "1895 / month", fptr(1895), "$1,895"},
		{"unparseable", "Call for price", nil, "Call for price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := Renderer{}.ListingCard(data.Listing{Street: "6500 Del Playa", PriceText: tt.text, Price: tt.price})
			if err != nil {
				t.Fatalf("ListingCard: %v", err)
			}
			if got := strings.TrimSpace(parse(t, html).Find(".money").Text()); got != tt.want {
				t.Errorf("price = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestListingCardOmitsEmptyDetails(t *testing.T) {
	listing := data.Listing{Street: "6700 Trigo Rd", Price: fptr(2000)}
	before := listing

	html, err := Renderer{}.ListingCard(listing)
	if err != nil {
		t.Fatalf("ListingCard: %v", err)
	}
	doc := parse(t, html)

	for _, sel := range []string{".pill", ".per-person", ".badge", ".utilities", "a.link-btn", ".listing-img", ".listing-status"} {
		if doc.Find(sel).Length() != 0 {
			t.Errorf("expected no %s element", sel)
		}
	}
	if got := doc.Find(".money").Text(); got != "$2,000" {
		t.Errorf("formatted price = %q", got)
	}
	if !reflect.DeepEqual(listing, before) {
		t.Error("rendering mutated the listing")
	}
}

func TestListingCardImageFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		renderer Renderer
		want     string
	}{
		{"local fallback", Renderer{FallbackImage: "/assets/ucsb_fallback.jpg", RemoteFallbackURL: "https://remote/img.jpg"}, "/assets/ucsb_fallback.jpg"},
		{"remote fallback", Renderer{RemoteFallbackURL: "https://remote/img.jpg"}, "https://remote/img.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := tt.renderer.ListingCard(data.Listing{Street: "x"})
			if err != nil {
				t.Fatalf("ListingCard: %v", err)
			}
			if src, _ := parse(t, html).Find(".listing-img img").Attr("src"); src != tt.want {
				t.Errorf("src = %q; want %q", src, tt.want)
			}
		})
	}
}

func TestCourseCard(t *testing.T) {
	course := data.Course{
		Code:       "PSTAT 120A",
		Title:      "Probability and Statistics",
		Units:      fptr(4),
		Status:     "Mixed",
		Notes:      "Calculus required",
		Instructor: "Porter",
		Days:       "MW",
		Time:       "9:30-10:45",
		Location:   "Phelps 1260",
		Enrolled:   iptr(80),
		Capacity:   iptr(100),
	}

	html, err := Renderer{}.CourseCard(course)
	if err != nil {
		t.Fatalf("CourseCard: %v", err)
	}
	doc := parse(t, html)

	checks := map[string]string{
		".course-code":       "PSTAT 120A",
		".course-title":      "Probability and Statistics",
		".badge":             "Mixed",
		".course-instructor": "Instructor: Porter",
		".course-schedule":   "MW · 9:30-10:45 · Phelps 1260",
		".course-notes":      "Calculus required",
	}
	for sel, want := range checks {
		if got := strings.TrimSpace(doc.Find(sel).Text()); got != want {
			t.Errorf("%s = %q; want %q", sel, got, want)
		}
	}
	if got := pills(doc); !reflect.DeepEqual(got, []string{"4 units", "80/100 enrolled"}) {
		t.Errorf("pills = %v", got)
	}
}

func TestCourseCardWithoutOptionalColumns(t *testing.T) {
	html, err := Renderer{}.CourseCard(data.Course{Code: "CMPSC 8", Title: "Intro"})
	if err != nil {
		t.Fatalf("CourseCard: %v", err)
	}
	doc := parse(t, html)

	if doc.Find(".course-notes").Length() != 0 {
		t.Error("notes block rendered for a course without notes")
	}
	if got := pills(doc); !reflect.DeepEqual(got, []string{"n/a units"}) {
		t.Errorf("pills = %v", got)
	}
	if got := doc.Find(".badge").Text(); got != "Status n/a" {
		t.Errorf("badge = %q", got)
	}
	if style, _ := doc.Find(".badge").Attr("style"); !strings.Contains(style, "#f3f4f6") {
		t.Errorf("unknown status should be grey, style = %q", style)
	}
}

func TestGrid(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{}},
		{2, []int{2}},
		{3, []int{3}},
		{7, []int{3, 3, 1}},
		{9, []int{3, 3, 3}},
	}

	for _, tt := range tests {
		items := make([]int, tt.n)
		rows := Grid(items, 3)
		sizes := []int{}
		for _, row := range rows {
			sizes = append(sizes, len(row))
		}
		if !reflect.DeepEqual(sizes, tt.want) {
			t.Errorf("Grid(%d items) row sizes = %v; want %v", tt.n, sizes, tt.want)
		}
	}
}
