package domain

type RatingFilter string

const (
	RatingAny      RatingFilter = "any"
	RatingFourPlus RatingFilter = "4+"
	// RatingFourOrFive is offered as a separate UI option but applies the
	// same rating >= 4 test as RatingFourPlus. Kept distinct so saved filter
	// state round-trips.
	RatingFourOrFive RatingFilter = "4or5"
)

// FilterState is the user-chosen narrowing criteria. Nil price bounds mean
// unbounded; an empty PropertyType matches any.
type FilterState struct {
	Rating       RatingFilter
	PriceMin     *float64
	PriceMax     *float64
	RequirePool  bool
	RequireSpa   bool
	PropertyType string
}
