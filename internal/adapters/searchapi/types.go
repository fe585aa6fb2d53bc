package searchapi

import "strings"

// Wire shapes for the SearchApi.io Google Hotels engines. Fields we never
// read are omitted; unknown fields are ignored by the decoder.

type searchResponse struct {
	SearchMetadata struct {
		Status string `json:"status"`
	} `json:"search_metadata"`
	SearchInformation struct {
		TotalResults int `json:"total_results"`
	} `json:"search_information"`
	Properties []property `json:"properties"`
	Pagination struct {
		NextPageToken string `json:"next_page_token"`
	} `json:"pagination"`
	Error string `json:"error"`
}

// errorMessage returns the explicit payload error, if any. A status other
// than "success" (case-insensitive) counts as an error even without an
// error field.
func (r *searchResponse) errorMessage() string {
	if r.Error != "" {
		return r.Error
	}
	if s := r.SearchMetadata.Status; s != "" && !strings.EqualFold(s, "success") {
		return s
	}
	return ""
}

type detailResponse struct {
	Property         *property  `json:"property"`
	PeopleAlsoViewed []property `json:"people_also_viewed"`
	Error            string     `json:"error"`
}

type property struct {
	PropertyToken string     `json:"property_token"`
	Name          string     `json:"name"`
	Link          string     `json:"link"`
	Description   string     `json:"description"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	HotelClass    string     `json:"hotel_class"`
	Rating        *float64   `json:"rating"`
	Reviews       int        `json:"reviews"`
	GPS           *gps       `json:"gps_coordinates"`
	PricePerNight *wirePrice `json:"price_per_night"`
	TotalPrice    *wirePrice `json:"total_price"`
	Images        []img      `json:"images"`
	Amenities     []string   `json:"amenities"`
	ReviewResults *struct {
		Reviews []wireReview `json:"reviews"`
	} `json:"review_results"`
	// Histogram keys are star levels as strings; non-numeric or out-of-range
	// keys are dropped during mapping.
	ReviewsHistogram map[string]int `json:"reviews_histogram"`
}

type gps struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type wirePrice struct {
	ExtractedPrice *float64 `json:"extracted_price"`
	Price          string   `json:"price"`
}

type img struct {
	Thumbnail string `json:"thumbnail"`
	Original  string `json:"original"`
}

type wireReview struct {
	Username string   `json:"username"`
	Text     string   `json:"text"`
	Rating   *float64 `json:"rating"`
	Date     string   `json:"date"`
}
