package domain

// Price is a nightly or total rate. A hotel without a Price is rendered as
// "contact property", never as free.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Period   string  `json:"period,omitempty"`
}

type Review struct {
	Text   string   `json:"text"`
	Author string   `json:"author,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
	Date   string   `json:"date,omitempty"`
}

// RatingBreakdown maps a star level (1..5) to its review count. It need not
// sum to the hotel's total review count.
type RatingBreakdown map[int]int

// Hotel is one listing, an immutable snapshot fetched per page.
type Hotel struct {
	Title           string          `json:"title"`
	Link            string          `json:"link"`
	PlaceID         string          `json:"place_id,omitempty"`
	Description     string          `json:"description,omitempty"`
	Address         string          `json:"address,omitempty"`
	Latitude        *float64        `json:"latitude,omitempty"`
	Longitude       *float64        `json:"longitude,omitempty"`
	Thumbnail       string          `json:"thumbnail,omitempty"`
	Images          []string        `json:"images,omitempty"`
	Rating          *float64        `json:"rating,omitempty"`
	ReviewCount     int             `json:"reviews,omitempty"`
	RatingBreakdown RatingBreakdown `json:"rating_breakdown,omitempty"`
	ReviewList      []Review        `json:"review_list,omitempty"`
	Price           *Price          `json:"price,omitempty"`
	PropertyType    string          `json:"type,omitempty"`
	Amenities       []string        `json:"extensions,omitempty"`
	Position        int             `json:"position,omitempty"`
}

// Key is the stable identity used for de-duplication and UI keys: place_id
// when present, else link.
func (h Hotel) Key() string {
	if h.PlaceID != "" {
		return h.PlaceID
	}
	return h.Link
}

// Mappable reports whether the hotel carries coordinates. Absence means the
// listing cannot be placed on a map, but it is still a valid result.
func (h Hotel) Mappable() bool {
	return h.Latitude != nil && h.Longitude != nil
}

// HotelDetail is the detail-page payload: the primary listing plus a short
// list of recommendations.
type HotelDetail struct {
	Hotel       Hotel   `json:"hotel"`
	Recommended []Hotel `json:"recommended"`
}
