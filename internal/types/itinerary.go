package types

// LocationDetail is one place or accommodation entry inside a day plan.
// Coords is a "lat, lon" string because the model copies it verbatim from the
// candidate list it was given.
type LocationDetail struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Coords        string `json:"coords"`
	EstimatedCost int    `json:"estimated_cost"`
	ClosestSubway string `json:"closest_subway"`
}

// DayPlan is one day of the itinerary: 2-4 places plus exactly one
// accommodation (name "none" on single-day trips).
type DayPlan struct {
	Day           int              `json:"day"`
	Places        []LocationDetail `json:"places"`
	Accommodation LocationDetail   `json:"accommodation"`
}

// Itinerary is the synthesizer's final output, emitted verbatim on stdout.
type Itinerary struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TravelPlan  []DayPlan `json:"travel_plan"`
}
