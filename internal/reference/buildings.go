package reference

import (
	"fmt"

	"github.com/mmcloughlin/geohash"
)

type Building struct {
	Name      string
	Latitude  float64
	Longitude float64
}

var buildings = []Building{
	{"Phelps Hall (PHELP)", 34.41239, -119.84862},
	{"Harold Frank Hall (HFH)", 34.41434, -119.84246},
	{"Chemistry (CHEM)", 34.41165, -119.84586},
	{"HSSB", 34.41496, -119.84571},
	{"Library", 34.41388, -119.84627},
	{"IV Theater", 34.41249, -119.86155},
	{"Buchanan Hall", 34.41340, -119.84568},
	{"Girvetz Hall", 34.41559, -119.84714},
	{"Ellison Hall", 34.41282, -119.84989},
}

func Buildings() []Building {
	out := make([]Building, len(buildings))
	copy(out, buildings)
	return out
}

func LookupBuilding(name string) (Building, bool) {
	for _, b := range buildings {
		if b.Name == name {
			return b, true
		}
	}
	return Building{}, false
}

// Marker is what the building locator renders for a selected building.
type Marker struct {
	Building Building
	Geohash  string
	MapURL   string
}

const markerZoom = 17

func NewMarker(b Building) Marker {
	return Marker{
		Building: b,
		Geohash:  geohash.Encode(b.Latitude, b.Longitude),
		MapURL: fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.5f&mlon=%.5f#map=%d/%.5f/%.5f",
			b.Latitude, b.Longitude, markerZoom, b.Latitude, b.Longitude),
	}
}
