package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/mwantia/gauchogo/internal/data"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templateFS embed.FS

var cardTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Renderer turns normalized rows into card fragments. It is safe for
// concurrent use; rendering never modifies the row it is given.
type Renderer struct {
	// FallbackImage is the URL of the local fallback picture used when a
	// listing has no image. Empty when the asset is not available.
	FallbackImage string
	// RemoteFallbackURL is used when neither the listing nor the local
	// fallback provide an image.
	RemoteFallbackURL string
}

type badge struct {
	Label string
	Class StatusClass
}

type listingCard struct {
	Title        string
	Sub          string
	Pills        []string
	Availability string
	Price        string
	PerPerson    string
	Status       *badge
	Utilities    string
	Link         string
	Image        string
}

type courseCard struct {
	Code       string
	Title      string
	Pills      []string
	Status     badge
	Instructor string
	Schedule   string
	Notes      string
}

// PerPerson splits a monthly price across the maximum number of residents,
// rounded down. ok is false when either value is missing or capacity is not
// positive.
func PerPerson(price *float64, capacity *int) (int, bool) {
	if price == nil || capacity == nil || *capacity <= 0 {
		return 0, false
	}
	return int(math.Floor(*price / float64(*capacity))), true
}

// Money formats whole dollars with thousands separators ("$1,250").
func Money(n int) string {
	return message.NewPrinter(language.English).Sprintf("$%d", n)
}

func (r Renderer) ListingCard(l data.Listing) (template.HTML, error) {
	card := listingCard{
		Title:        l.Street,
		Sub:          l.Address(),
		Availability: l.Availability,
		Price:        l.PriceText,
		Utilities:    l.Utilities,
		Link:         l.ListingURL,
		Image:        r.image(l.ImageURL),
	}

	// Known prices share one format whatever the source cell looked like.
	if l.Price != nil {
		card.Price = Money(int(*l.Price))
	}
	if n, ok := PerPerson(l.Price, l.MaxResidents); ok {
		card.PerPerson = Money(n)
	}
	if l.Status != "" {
		card.Status = &badge{Label: l.Status, Class: Classify(l.Status)}
	}

	if l.Bedrooms != "" {
		card.Pills = append(card.Pills, l.Bedrooms+" bed")
	}
	if l.Bathrooms != "" {
		card.Pills = append(card.Pills, l.Bathrooms+" bath")
	}
	if l.MaxResidents != nil {
		card.Pills = append(card.Pills, fmt.Sprintf("Up to %d residents", *l.MaxResidents))
	}
	if l.PetPolicy != "" {
		card.Pills = append(card.Pills, l.PetPolicy)
	}

	return execute("listing.html", card)
}

func (r Renderer) CourseCard(c data.Course) (template.HTML, error) {
	units := c.UnitsText
	if units == "" && c.Units != nil {
		units = data.FormatNumber(*c.Units)
	}
	if units == "" {
		units = "n/a"
	}

	card := courseCard{
		Code:       c.Code,
		Title:      c.Title,
		Pills:      []string{units + " units"},
		Status:     badge{Label: c.Status, Class: Classify(c.Status)},
		Instructor: c.Instructor,
		Schedule:   c.Schedule(),
		Notes:      c.Notes,
	}
	if card.Status.Label == "" {
		card.Status.Label = "Status n/a"
	}

	switch {
	case c.Enrolled != nil && c.Capacity != nil:
		card.Pills = append(card.Pills, fmt.Sprintf("%d/%d enrolled", *c.Enrolled, *c.Capacity))
	case c.Capacity != nil:
		card.Pills = append(card.Pills, fmt.Sprintf("Capacity %d", *c.Capacity))
	}

	return execute("course.html", card)
}

func (r Renderer) image(url string) string {
	url = strings.TrimSpace(url)
	switch {
	case url != "":
		return url
	case r.FallbackImage != "":
		return r.FallbackImage
	default:
		return r.RemoteFallbackURL
	}
}

func execute(name string, card any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := cardTemplates.ExecuteTemplate(&buf, name, card); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Grid groups items into rows of size. The last row holds the remainder.
func Grid[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = 3
	}

	rows := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		rows = append(rows, items[start:end:end])
	}
	return rows
}
