package app

import (
	"strings"

	"hotelsearch/internal/domain"
)

// ApplyFilters narrows hotels to those passing every active predicate,
// preserving relative order. The input slice is never mutated.
func ApplyFilters(hotels []domain.Hotel, f domain.FilterState) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if passes(h, f) {
			out = append(out, h)
		}
	}
	return out
}

func passes(h domain.Hotel, f domain.FilterState) bool {
	if f.Rating == domain.RatingFourPlus || f.Rating == domain.RatingFourOrFive {
		// both options apply the same rating >= 4 test; see the note on
		// RatingFourOrFive
		rating := 0.0
		if h.Rating != nil {
			rating = *h.Rating
		}
		if rating < 4 {
			return false
		}
	}

	// a missing price behaves as amount 0: it fails any priceMin > 0 and
	// passes any priceMax
	amount := 0.0
	if h.Price != nil {
		amount = h.Price.Amount
	}
	if f.PriceMin != nil && amount < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && amount > *f.PriceMax {
		return false
	}

	if f.RequirePool && !amenityText(h, "pool") {
		return false
	}
	if f.RequireSpa && !amenityText(h, "spa") {
		return false
	}

	if f.PropertyType != "" {
		ptype := strings.ToLower(h.PropertyType)
		want := strings.ToLower(f.PropertyType)
		if ptype != want && !strings.Contains(ptype, want) {
			return false
		}
	}
	return true
}

// amenityText does a case-insensitive substring search over the
// concatenation of description, property type and amenity list. No synonym
// or tokenization logic.
func amenityText(h domain.Hotel, word string) bool {
	parts := append([]string{h.Description, h.PropertyType}, h.Amenities...)
	return strings.Contains(strings.ToLower(strings.Join(parts, " ")), word)
}
