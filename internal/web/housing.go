package web

import (
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strings"

	"github.com/mwantia/gauchogo/internal/data"
	"github.com/mwantia/gauchogo/internal/filter"
	"github.com/mwantia/gauchogo/internal/render"
	"github.com/mwantia/gauchogo/internal/session"
)

type housingBody struct {
	Advisory *data.Advisory
	Empty    bool

	Options   filter.HousingOptions
	Beds      string
	Status    string
	Pet       string
	MaxPrice  int
	PriceTop  int
	ShowTable bool

	Total   int
	Shown   int
	Caption string
	Rows    []data.Listing
	Grid    [][]template.HTML
}

func (h *Handlers) HandleHousing(w http.ResponseWriter, r *http.Request) {
	h.enter(r, session.PageHousing)

	res := h.loader.Housing(h.cfg.HousingCSV)
	if res.Empty() {
		advisory := res.Advisory
		if advisory == nil {
			advisory = &data.Advisory{Level: data.AdvisoryInfo, Message: "No housing listings available yet."}
		}
		h.render(w, r, session.PageHousing, http.StatusOK, housingBody{Advisory: advisory, Empty: true})
		return
	}

	top := int(math.Ceil(filter.PriceCeiling(res.Rows)))
	sel := filter.HousingSelection{
		Bedrooms:  r.FormValue("beds"),
		Status:    r.FormValue("status"),
		PetPolicy: r.FormValue("pet"),
	}

	ceiling := float64(top)
	if v := data.ParseNumber(r.FormValue("max_price")); v != nil {
		ceiling = *v
	}
	sel.MaxPrice = &ceiling

	filtered := filter.Housing(res.Rows, sel)

	body := housingBody{
		Options:   filter.Options(res.Rows),
		Beds:      orAny(sel.Bedrooms),
		Status:    orAny(sel.Status),
		Pet:       orAny(sel.PetPolicy),
		MaxPrice:  int(ceiling),
		PriceTop:  top,
		ShowTable: r.FormValue("table") != "",
		Total:     len(res.Rows),
		Shown:     len(filtered),
		Caption:   housingCaption(len(filtered), len(res.Rows), int(ceiling)),
		Rows:      filtered,
	}

	cards := make([]template.HTML, 0, len(filtered))
	for _, listing := range filtered {
		card, err := h.renderer.ListingCard(listing)
		if err != nil {
			h.log.Error("Failed to render listing '%s': %v", listing.Address(), err)
			continue
		}
		cards = append(cards, card)
	}
	body.Grid = render.Grid(cards, 3)

	h.render(w, r, session.PageHousing, http.StatusOK, body)
}

func housingCaption(shown, total, ceiling int) string {
	return fmt.Sprintf("Showing %d of %d units • Price ≤ %s", shown, total, render.Money(ceiling))
}

func orAny(v string) string {
	if strings.TrimSpace(v) == "" {
		return filter.Any
	}
	return v
}
