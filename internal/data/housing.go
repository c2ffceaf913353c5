package data

import "strings"

var housingRequired = [][]string{
	{"street", "address"},
}

// parseListings maps every CSV record onto a Listing. Columns outside the
// recognised set are ignored; recognised columns that are absent read as "".
func parseListings(t *table) []Listing {
	rows := make([]Listing, 0, len(t.records))

	for _, rec := range t.records {
		priceText := t.get(rec, "price", "installment")

		l := Listing{
			Street:       t.get(rec, "street", "address"),
			Unit:         t.get(rec, "unit"),
			PriceText:    priceText,
			Price:        ParseNumber(priceText),
			Bedrooms:     canonicalCount(t.get(rec, "bedrooms", "beds")),
			Bathrooms:    canonicalCount(t.get(rec, "bathrooms", "baths")),
			MaxResidents: ParseCount(t.get(rec, "max_residents")),
			PetPolicy:    t.get(rec, "pet_policy"),
			Status:       TitleCase(t.get(rec, "status")),
			Utilities:    t.get(rec, "utilities", "included_utilities"),
			AvailStart:   t.get(rec, "avail_start"),
			AvailEnd:     t.get(rec, "avail_end"),
			Availability: t.get(rec, "availability"),
			ListingURL:   t.get(rec, "listing_url", "link"),
			ImageURL:     t.get(rec, "image_url"),
		}

		if l.Availability == "" {
			l.Availability = availability(l.AvailStart, l.AvailEnd)
		}

		rows = append(rows, l)
	}

	return rows
}

func availability(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " – " + end
	case start != "":
		return "From " + start
	case end != "":
		return "Until " + end
	default:
		return ""
	}
}

// Address is the street with the unit appended when present.
func (l Listing) Address() string {
	if l.Unit == "" {
		return l.Street
	}
	return strings.TrimSpace(l.Street + " - " + l.Unit)
}
