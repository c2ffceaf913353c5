package filter

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/mwantia/gauchogo/internal/data"
)

func price(v float64) *float64 { return &v }

func sampleListings() []data.Listing {
	return []data.Listing{
		{Street: "6500 Del Playa", Price: price(2000), Bedrooms: "2", Status: "Available", PetPolicy: "Cats OK"},
		{Street: "6600 Sabado Tarde", Price: price(5000), Bedrooms: "4", Status: "Leased", PetPolicy: "No pets"},
		{Street: "6700 Trigo", Price: nil, Bedrooms: "Studio", Status: "Processing", PetPolicy: "Cats and dogs OK"},
		{Street: "6800 Pasado", Price: price(3000), Bedrooms: "2", Status: "available", PetPolicy: ""},
	}
}

func streets(rows []data.Listing) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Street)
	}
	return out
}

func TestHousingPriceCeilingScenario(t *testing.T) {
	rows := []data.Listing{
		{Street: "A", Price: price(2000), Bedrooms: "2", Status: "Available"},
		{Street: "B", Price: price(5000), Bedrooms: "4", Status: "Leased"},
	}

	got := Housing(rows, HousingSelection{MaxPrice: price(3000)})
	if !reflect.DeepEqual(streets(got), []string{"A"}) {
		t.Errorf("got %v; want [A]", streets(got))
	}
}

func TestHousingCeilingKeepsUnpriced(t *testing.T) {
	got := Housing(sampleListings(), HousingSelection{MaxPrice: price(1000)})
	if !reflect.DeepEqual(streets(got), []string{"6700 Trigo"}) {
		t.Errorf("unpriced listing must survive any ceiling, got %v", streets(got))
	}
}

func TestHousingCeilingProperty(t *testing.T) {
	rows := sampleListings()
	for _, ceiling := range []float64{0, 1999, 2000, 2999, 3000, 4999, 5000, 10000} {
		got := Housing(rows, HousingSelection{MaxPrice: price(ceiling)})
		kept := map[string]bool{}
		for _, r := range got {
			kept[r.Street] = true
		}
		for _, r := range rows {
			excluded := r.Price != nil && *r.Price > ceiling
			if kept[r.Street] == excluded {
				t.Errorf("ceiling %.0f: %s kept=%v, excluded=%v", ceiling, r.Street, kept[r.Street], excluded)
			}
		}
	}
}

func TestHousingCategoricalFilters(t *testing.T) {
	tests := []struct {
		name string
		sel  HousingSelection
		want []string
	}{
		{"bedrooms exact", HousingSelection{Bedrooms: "2"}, []string{"6500 Del Playa", "6800 Pasado"}},
		{"status case-insensitive", HousingSelection{Status: " AVAILABLE "}, []string{"6500 Del Playa", "6800 Pasado"}},
		{"pet policy substring", HousingSelection{PetPolicy: "cats"}, []string{"6500 Del Playa", "6700 Trigo"}},
		{"any sentinel", HousingSelection{Bedrooms: "Any", Status: "any", PetPolicy: Any}, streets(sampleListings())},
		{"combined", HousingSelection{MaxPrice: price(2500), Bedrooms: "2", Status: "Available"}, []string{"6500 Del Playa"}},
		{"no match", HousingSelection{Bedrooms: "7"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := streets(Housing(sampleListings(), tt.sel))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v; want %v", got, tt.want)
			}
		})
	}
}

func TestHousingStatusAnyAcrossTenRows(t *testing.T) {
	rows := make([]data.Listing, 10)
	for i := range rows {
		rows[i] = data.Listing{Street: fmt.Sprintf("row-%d", i), Status: []string{"Available", "Leased", ""}[i%3]}
	}

	got := Housing(rows, HousingSelection{Status: "Any"})
	if len(got) != 10 {
		t.Errorf("Any status should keep all 10 rows, got %d", len(got))
	}
}

func TestHousingEmptySelectionIsIdentity(t *testing.T) {
	rows := sampleListings()
	got := Housing(rows, HousingSelection{})
	if !reflect.DeepEqual(got, rows) {
		t.Error("empty selection must return the table unchanged")
	}
}

func TestHousingIsIdempotentAndPure(t *testing.T) {
	rows := sampleListings()
	before := sampleListings()
	sel := HousingSelection{MaxPrice: price(3000), PetPolicy: "ok"}

	once := Housing(rows, sel)
	twice := Housing(once, sel)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering is not idempotent: %v vs %v", streets(once), streets(twice))
	}
	if !reflect.DeepEqual(rows, before) {
		t.Error("input table was mutated")
	}
}

func TestPriceCeiling(t *testing.T) {
	if got := PriceCeiling(sampleListings()); got != 5000 {
		t.Errorf("PriceCeiling = %.0f; want 5000", got)
	}
	if got := PriceCeiling([]data.Listing{{Street: "x"}}); got != DefaultPriceCeiling {
		t.Errorf("PriceCeiling without prices = %.0f; want default", got)
	}
}

func TestOptions(t *testing.T) {
	opts := Options(sampleListings())

	if !reflect.DeepEqual(opts.Bedrooms, []string{"Any", "2", "4", "Studio"}) {
		t.Errorf("bedroom options: %v", opts.Bedrooms)
	}
	if opts.Status[0] != Any || len(opts.PetPolicy) != 4 {
		t.Errorf("options: %+v", opts)
	}
}
