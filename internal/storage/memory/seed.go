package memory

import "hotelsearch/internal/domain"

func f64(v float64) *float64 { return &v }

// seedHotels returns the fixed demo data set: five New York area listings.
// Fresh copies of the review slices are not needed because the catalog never
// hands out mutable references to the seed itself.
func seedHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			Title:       "The Andrew Hotel",
			Link:        "http://www.andrewhotel.com/",
			PlaceID:     "ChgIhoDLm9qdqrjDARoLL2cvMXRoZjloMG0QAQ",
			Address:     "New York, US",
			Description: "Plush, modern quarters & a Mediterranean restaurant/bar, plus free breakfast & Wi-Fi.",
			Amenities:   []string{"Free breakfast", "Free Wi-Fi", "Parking ($)", "Air conditioning", "Pet-friendly", "Bar"},
			Images:      []string{"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800"},
			Thumbnail:   "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400",
			Latitude:    f64(40.788177),
			Longitude:   f64(-73.725245),
			Position:    1,
			Price:       &domain.Price{Amount: 113, Currency: "USD", Period: "night"},
			Rating:      f64(3.9),
			ReviewCount: 1133,
			RatingBreakdown: domain.RatingBreakdown{
				1: 23, 2: 45, 3: 283, 4: 453, 5: 329,
			},
			ReviewList: []domain.Review{
				{Text: "Comfortable rooms and an excellent breakfast. Staff were very kind.", Author: "Nadia M.", Rating: f64(4), Date: "2024-01-15"},
				{Text: "Great location and clean rooms. Would stay again.", Author: "Sarah K.", Rating: f64(4), Date: "2024-02-01"},
				{Text: "The Mediterranean breakfast is terrific and service is quick.", Author: "Omar A.", Rating: f64(5), Date: "2024-02-10"},
				{Text: "Quiet at night, good value for money.", Author: "John D.", Rating: f64(3), Date: "2024-01-28"},
			},
			PropertyType: "hotel",
		},
		{
			Title:       "The One Boutique Hotel",
			Link:        "http://theone-ny.com/",
			PlaceID:     "ChgIhoDLm9qdqrjDARoLL2cvMXRoZjloMG0QBQ",
			Address:     "New York, US",
			Description: "Boutique stay with modern amenities.",
			Amenities:   []string{"Free Wi-Fi", "Bar"},
			Thumbnail:   "https://images.unsplash.com/photo-1582719508461-905c673771fd?w=400",
			Latitude:    f64(40.7834),
			Longitude:   f64(-73.9662),
			Position:    2,
			Price:       &domain.Price{Amount: 145, Currency: "USD", Period: "night"},
			Rating:      f64(4.2),
			ReviewCount: 892,
			RatingBreakdown: domain.RatingBreakdown{
				1: 9, 2: 27, 3: 125, 4: 357, 5: 374,
			},
			ReviewList: []domain.Review{
				{Text: "Stylish boutique hotel, works well for families.", Author: "Fatima S.", Rating: f64(5), Date: "2024-02-05"},
				{Text: "Modern design and friendly staff. Highly recommend.", Author: "Emma L.", Rating: f64(4), Date: "2024-01-20"},
				{Text: "The rooftop bar is lovely and the view is wonderful.", Author: "Karim H.", Rating: f64(4), Date: "2024-02-12"},
			},
			PropertyType: "hotel",
		},
		{
			Title:       "Sky Hotel Flushing",
			Link:        "http://skyhotelny.com/",
			PlaceID:     "ChgIhoDLm9qdqrjDARoLL2cvMXRoZjloMG0QCQ",
			Address:     "New York, US",
			Description: "Comfortable rooms near transit.",
			Amenities:   []string{"Free Wi-Fi", "Parking"},
			Thumbnail:   "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=400",
			Latitude:    f64(40.7654),
			Longitude:   f64(-73.8301),
			Position:    3,
			Price:       &domain.Price{Amount: 99, Currency: "USD", Period: "night"},
			Rating:      f64(4.0),
			ReviewCount: 456,
			RatingBreakdown: domain.RatingBreakdown{
				1: 14, 2: 23, 3: 91, 4: 182, 5: 146,
			},
			ReviewList: []domain.Review{
				{Text: "Close to the subway, very practical.", Author: "Nora C.", Rating: f64(4), Date: "2024-01-18"},
				{Text: "Clean and comfortable. Good for a short stay.", Author: "Mike R.", Rating: f64(4), Date: "2024-02-08"},
				{Text: "Rooms are simple but tidy and the price is fair.", Author: "Yusuf M.", Rating: f64(3), Date: "2024-02-14"},
			},
			PropertyType: "hotel",
		},
		{
			Title:       "The Roslyn, Tapestry Collection by Hilton",
			Link:        "https://www.hilton.com/",
			PlaceID:     "ChgIhoDLm9qdqrjDARoLL2cvMXRoZjloMG0QDQ",
			Address:     "New York, US",
			Description: "Upscale stay with full service.",
			Amenities:   []string{"Free Wi-Fi", "Gym", "Restaurant"},
			Thumbnail:   "https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=400",
			Latitude:    f64(40.8012),
			Longitude:   f64(-73.6501),
			Position:    4,
			Price:       &domain.Price{Amount: 189, Currency: "USD", Period: "night"},
			Rating:      f64(4.5),
			ReviewCount: 1203,
			RatingBreakdown: domain.RatingBreakdown{
				1: 6, 2: 12, 3: 72, 4: 361, 5: 752,
			},
			ReviewList: []domain.Review{
				{Text: "A luxurious experience; the gym and the food are excellent.", Author: "Sara E.", Rating: f64(5), Date: "2024-02-02"},
				{Text: "Best hotel in the area. Full service as expected.", Author: "David W.", Rating: f64(5), Date: "2024-01-25"},
				{Text: "The restaurant serves a varied menu and service is excellent.", Author: "Ali B.", Rating: f64(4), Date: "2024-02-11"},
				{Text: "Great for business trips. Fast Wi-Fi and quiet rooms.", Author: "Lisa M.", Rating: f64(4), Date: "2024-01-30"},
			},
			PropertyType: "hotel",
		},
		{
			Title:       "Holiday Inn Express Jamaica - Jfk Airtrain",
			Link:        "https://www.ihg.com/",
			PlaceID:     "ChgIhoDLm9qdqrjDARoLL2cvMXRoZjloMG0QEQ",
			Address:     "New York, US",
			Description: "Convenient for airport and city.",
			Amenities:   []string{"Free breakfast", "Free Wi-Fi", "Airport shuttle"},
			Thumbnail:   "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=400",
			Latitude:    f64(40.6912),
			Longitude:   f64(-73.7901),
			Position:    5,
			Price:       &domain.Price{Amount: 129, Currency: "USD", Period: "night"},
			Rating:      f64(4.1),
			ReviewCount: 2104,
			RatingBreakdown: domain.RatingBreakdown{
				1: 42, 2: 63, 3: 252, 4: 841, 5: 906,
			},
			ReviewList: []domain.Review{
				{Text: "Ideal for airport travellers, the shuttle is quick.", Author: "Amr T.", Rating: f64(5), Date: "2024-02-06"},
				{Text: "Convenient for JFK. Breakfast was good.", Author: "Chris P.", Rating: f64(4), Date: "2024-01-22"},
				{Text: "Spacious rooms and a solid free breakfast.", Author: "Hind K.", Rating: f64(4), Date: "2024-02-15"},
				{Text: "Good value near the airport. Shuttle on time.", Author: "Anna B.", Rating: f64(4), Date: "2024-01-12"},
			},
			PropertyType: "hotel",
		},
	}
}
