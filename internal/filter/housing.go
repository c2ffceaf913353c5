package filter

import (
	"sort"
	"strings"

	"github.com/mwantia/gauchogo/internal/data"
)

// Any disables filtering on a categorical dimension.
const Any = "Any"

// DefaultPriceCeiling is used when no listing carries a parseable price.
const DefaultPriceCeiling = 20000.0

// HousingSelection is the user's current housing filter. The zero value
// selects everything.
type HousingSelection struct {
	MaxPrice  *float64
	Bedrooms  string
	Status    string
	PetPolicy string
}

func (s HousingSelection) IsEmpty() bool {
	return s.MaxPrice == nil && isAny(s.Bedrooms) && isAny(s.Status) && isAny(s.PetPolicy)
}

// Housing returns the listings that satisfy every active predicate. The
// input slice is never modified.
func Housing(rows []data.Listing, sel HousingSelection) []data.Listing {
	out := make([]data.Listing, 0, len(rows))
	if sel.IsEmpty() {
		return append(out, rows...)
	}

	bedrooms := data.Fold(sel.Bedrooms)
	status := data.Fold(sel.Status)
	pet := data.Fold(sel.PetPolicy)

	for _, row := range rows {
		if !WithinCeiling(row.Price, sel.MaxPrice) {
			continue
		}
		if !isAny(sel.Bedrooms) && data.Fold(row.Bedrooms) != bedrooms {
			continue
		}
		if !isAny(sel.Status) && data.Fold(row.Status) != status {
			continue
		}
		if !isAny(sel.PetPolicy) && !strings.Contains(data.Fold(row.PetPolicy), pet) {
			continue
		}
		out = append(out, row)
	}

	return out
}

// WithinCeiling treats an unknown value as not excluded.
func WithinCeiling(value, ceiling *float64) bool {
	if ceiling == nil || value == nil {
		return true
	}
	return *value <= *ceiling
}

// PriceCeiling returns the largest known price, used as the slider default.
func PriceCeiling(rows []data.Listing) float64 {
	max, found := 0.0, false
	for _, row := range rows {
		if row.Price != nil && (!found || *row.Price > max) {
			max, found = *row.Price, true
		}
	}
	if !found {
		return DefaultPriceCeiling
	}
	return max
}

// HousingOptions lists the selectable values per categorical dimension,
// each prefixed with Any.
type HousingOptions struct {
	Bedrooms  []string
	Status    []string
	PetPolicy []string
}

func Options(rows []data.Listing) HousingOptions {
	var beds, status, pets []string
	for _, row := range rows {
		beds = append(beds, row.Bedrooms)
		status = append(status, row.Status)
		pets = append(pets, row.PetPolicy)
	}

	return HousingOptions{
		Bedrooms:  withAny(beds),
		Status:    withAny(status),
		PetPolicy: withAny(pets),
	}
}

func withAny(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := []string{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return append([]string{Any}, out...)
}

func isAny(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, Any)
}
