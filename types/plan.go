package types

// RawTripPlan is the unprocessed, schema-variable document returned by
// the planning backend. Its shape has drifted across product versions:
// free-text agent responses with embedded JSON, partially structured
// objects, and fully structured objects keyed by destination code. All
// shape-sniffing lives in the planner package; nothing else should poke
// at this map directly.
type RawTripPlan map[string]interface{}

type ActivityCategory string

const (
	CategoryFlight        ActivityCategory = "flight"
	CategoryAccommodation ActivityCategory = "accommodation"
	CategoryActivity      ActivityCategory = "activity"
	CategoryMeal          ActivityCategory = "meal"
)

// Activity is a single scheduled item within an itinerary day.
// Confirmed is true only when the source entry carries booking
// information; it is never inferred from dates or times.
type Activity struct {
	Time        string           `json:"time,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Category    ActivityCategory `json:"category"`
	Confirmed   bool             `json:"confirmed"`
}

// ItineraryDay is one calendar day of the normalized itinerary.
// Days are rebuilt from scratch on every normalization pass.
type ItineraryDay struct {
	ID         string     `json:"id"`
	DayNumber  int        `json:"dayNumber"`
	Date       string     `json:"date"` // display label; "TBD" when the source gave no date
	Activities []Activity `json:"activities"`
}

// FlightGroup is one departure-city bucket of the trip's members.
type FlightGroup struct {
	DepartureCity string   `json:"departureCity"`
	MemberEmails  []string `json:"memberEmails"`
}

// BookingLink is a deep link into an external booking platform.
type BookingLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// FlightAssignment is the resolved flight for one member's departure
// group. Fields the payload could not supply are left nil rather than
// defaulted, so consumers can tell "unknown" from "zero".
type FlightAssignment struct {
	DepartureCity string        `json:"departureCity"`
	Origin        string        `json:"origin,omitempty"`
	Destination   string        `json:"destination,omitempty"`
	DepartureDate string        `json:"departureDate,omitempty"`
	ReturnDate    string        `json:"returnDate,omitempty"`
	TotalPrice    *float64      `json:"totalPrice,omitempty"`
	AirlineCode   string        `json:"airlineCode,omitempty"`
	FlightNumber  string        `json:"flightNumber,omitempty"`
	Stops         *int          `json:"stops,omitempty"`
	Duration      string        `json:"duration,omitempty"`
	BookingLinks  []BookingLink `json:"bookingLinks"`
}

// HotelOption is a single lodging candidate.
type HotelOption struct {
	Name              string             `json:"name"`
	Rating            *float64           `json:"rating,omitempty"`
	DistanceToAnchor  *float64           `json:"distanceToAnchorKm,omitempty"`
	TotalTripCost     *float64           `json:"totalTripCost,omitempty"`
	Address           string             `json:"address,omitempty"`
	RoomBreakdown     map[string]int     `json:"roomBreakdown,omitempty"`
	IndividualCosts   map[string]float64 `json:"individualCosts,omitempty"`
}

// HotelRecommendationSet is the ranked lodging result: a top pick plus
// ordered alternates.
type HotelRecommendationSet struct {
	Recommended *HotelOption  `json:"recommended"`
	Alternates  []HotelOption `json:"alternates"`
}

// TripPlanView is the stable view model the presentation layer consumes,
// composed from the three independent projections plus the staleness
// flag for the displayed trip.
type TripPlanView struct {
	GroupCode string                  `json:"groupCode"`
	Itinerary []ItineraryDay          `json:"itinerary"`
	Flight    *FlightAssignment       `json:"flight,omitempty"`
	Hotels    *HotelRecommendationSet `json:"hotels,omitempty"`
	NeedsReplan bool                  `json:"needsReplan"`
}
