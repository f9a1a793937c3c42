package types

import "time"

// Accommodation themes derivable from the requested place themes.
const (
	ThemeCamping = "camping"
	ThemeLodging = "lodging"
)

// PlanRequest mirrors the raw JSON object the process reads from stdin.
// place_themes arrives as a single comma-separated string.
type PlanRequest struct {
	StartLoc        string  `json:"start_loc"`
	EndArea         string  `json:"end_area"`
	DetailAddr      string  `json:"detail_addr"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	BudgetPerPerson float64 `json:"budget_per_person"`
	TotalPeople     int     `json:"total_people"`
	PlaceThemes     string  `json:"place_themes"`
	UserID          string  `json:"userId"`
}

// TripRequest is the canonical, validated form of a PlanRequest.
// AccommodationTheme is derived exactly once from PlaceThemes and is
// read-only afterwards.
type TripRequest struct {
	StartLocation      string
	EndCity            string
	EndDistrict        string
	StartDate          time.Time
	EndDate            time.Time
	DurationDays       int
	BudgetPerPerson    float64
	TotalPeople        int
	PlaceThemes        []string
	AccommodationTheme string
	UserID             string
}

// TotalBudget is the whole-party budget embedded in the generation prompt.
func (r *TripRequest) TotalBudget() float64 {
	return r.BudgetPerPerson * float64(r.TotalPeople)
}
