package types

// PlaceRecord is one catalog entry with the store's nested address and
// GeoJSON coordinates flattened to scalars. Immutable after load.
type PlaceRecord struct {
	Title    string  `json:"title"`
	Category string  `json:"category,omitempty"`
	City     string  `json:"city"`
	District string  `json:"district"`
	X        float64 `json:"x"` // longitude
	Y        float64 `json:"y"` // latitude
	// HasCoords distinguishes a real position from a record whose GeoJSON
	// array was absent or malformed; (0, 0) is a valid ocean coordinate,
	// not a sentinel.
	HasCoords bool `json:"-"`
}

// Candidate is the projection of a PlaceRecord handed to the generation
// prompt: title plus latitude/longitude.
type Candidate struct {
	Title     string  `json:"title"`
	Y         float64 `json:"y"` // latitude
	X         float64 `json:"x"` // longitude
	HasCoords bool    `json:"-"`
}

// CandidateSet holds the two disjoint candidate lists for one request.
// Built fresh per request and never mutated afterwards.
type CandidateSet struct {
	Places         []Candidate `json:"places"`
	Accommodations []Candidate `json:"accommodations"`
}
