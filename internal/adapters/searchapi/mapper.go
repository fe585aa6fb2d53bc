package searchapi

import (
	"strconv"
	"strings"

	"hotelsearch/internal/domain"
)

// priceAmount picks the nightly rate, else the total-stay rate, else 0.
// Zero means "no price", not free, and maps to a nil domain.Price.
func priceAmount(p property) float64 {
	if p.PricePerNight != nil && p.PricePerNight.ExtractedPrice != nil {
		return *p.PricePerNight.ExtractedPrice
	}
	if p.TotalPrice != nil && p.TotalPrice.ExtractedPrice != nil {
		return *p.TotalPrice.ExtractedPrice
	}
	return 0
}

// thumbnail returns the first image's thumbnail variant, falling back to its
// original variant.
func thumbnail(p property) string {
	if len(p.Images) == 0 {
		return ""
	}
	if t := p.Images[0].Thumbnail; t != "" {
		return t
	}
	return p.Images[0].Original
}

// mapCard maps a search-results or also-viewed entry: the lighter-weight
// shape shown on list cards.
func mapCard(p property) domain.Hotel {
	h := domain.Hotel{
		Title:       p.Name,
		Link:        p.Link,
		PlaceID:     p.PropertyToken,
		Description: p.Description,
		Thumbnail:   thumbnail(p),
		Rating:      p.Rating,
		ReviewCount: p.Reviews,
	}
	if p.GPS != nil {
		h.Latitude = p.GPS.Latitude
		h.Longitude = p.GPS.Longitude
	}
	if amount := priceAmount(p); amount != 0 {
		h.Price = &domain.Price{Amount: amount, Currency: "USD", Period: "night"}
	}
	if addr := joinNonEmpty(", ", p.City, p.Country); addr != "" {
		h.Address = addr
	}
	return h
}

// mapDetail maps the full property payload for the detail page.
func mapDetail(p property) domain.Hotel {
	h := mapCard(p)
	h.Address = p.Address
	h.PropertyType = p.HotelClass
	h.Amenities = p.Amenities

	if len(p.Images) > 0 {
		images := make([]string, 0, len(p.Images))
		for _, im := range p.Images {
			if im.Original != "" {
				images = append(images, im.Original)
			} else if im.Thumbnail != "" {
				images = append(images, im.Thumbnail)
			}
		}
		if len(images) == 0 && h.Thumbnail != "" {
			images = []string{h.Thumbnail}
		}
		h.Images = images
	} else if h.Thumbnail != "" {
		h.Images = []string{h.Thumbnail}
	}

	if len(p.ReviewsHistogram) > 0 {
		bd := domain.RatingBreakdown{}
		for k, v := range p.ReviewsHistogram {
			if star, err := strconv.Atoi(k); err == nil && star >= 1 && star <= 5 {
				bd[star] = v
			}
		}
		if len(bd) > 0 {
			h.RatingBreakdown = bd
		}
	}

	if p.ReviewResults != nil && len(p.ReviewResults.Reviews) > 0 {
		list := make([]domain.Review, 0, len(p.ReviewResults.Reviews))
		for _, r := range p.ReviewResults.Reviews {
			list = append(list, domain.Review{
				Text:   r.Text,
				Author: r.Username,
				Rating: r.Rating,
				Date:   r.Date,
			})
		}
		h.ReviewList = list
	}
	return h
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, sep)
}
