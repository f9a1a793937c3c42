package itinerary

import (
	"fmt"
	"strings"

	"github.com/yeohaeng/trip-planner/internal/api/candidates"
	"github.com/yeohaeng/trip-planner/internal/types"
)

// buildPrompt renders the full planner prompt. The structural schema only
// guarantees JSON shape; every semantic constraint (candidate provenance,
// day counts, the single-day "none" accommodation rule) must be spelled out
// here because the model enforces them on a best-effort basis.
func buildPrompt(req *types.TripRequest, set *types.CandidateSet) string {
	placeLines := strings.Join(candidates.FormatLines(set.Places), "\n")
	accommodationLines := strings.Join(candidates.FormatLines(set.Accommodations), "\n")

	return fmt.Sprintf(`You are a professional travel planner. Using the trip information and the candidate lists below, write a complete %d-day travel plan. The traveller prefers places with the themes %q, the total budget is %.0f (accommodation and all activities included).
The travel plan must be output as JSON only. The value of the top-level key 'travel_plan' must be a JSON array holding one object per day. The JSON must STRICTLY follow the requirements and the structure example below.

[Trip information]
Origin: %s
Destination / trip region: %s %s
Trip duration: %d days (%s ~ %s)
Total budget: %.0f (accommodation and all activities included)
Party size: %d
Requested accommodation theme: %s

[Place candidate list] (use for places)
%s

[Accommodation candidate list] (use for accommodation)
%s

[JSON structure example]
{
  "title": "Overall trip title",
  "description": "A short description of the whole trip",
  "travel_plan": [
    {
      "day": 1,
      "places": [
        {
          "name": "Place name (pick from the place candidate list)",
          "description": "A creative description",
          "coords": "latitude, longitude",
          "estimated_cost": 50000,
          "closest_subway": "Nearest subway station name or none"
        }
      ],
      "accommodation": {
        "name": "Accommodation name (pick from the accommodation candidate list)",
        "description": "Accommodation description (be creative)",
        "coords": "latitude, longitude of the accommodation (pick from the accommodation candidate list)",
        "estimated_cost": 150000,
        "closest_subway": "Nearest subway station name or none"
      }
    }
  ]
}

[JSON output requirements]
1. The output is a single JSON object with exactly the keys 'title', 'description' and 'travel_plan'; 'travel_plan' must be a JSON array.
2. Each object in the array must have 'day' (integer), 'places' (array) and 'accommodation' (object).
3. Every 'name' and 'coords' under 'places' must come from the [Place candidate list].
4. The 'name' and 'coords' of 'accommodation' must come from the [Accommodation candidate list].
5. 'closest_subway' is the nearest subway station name inferred from the coords; write "none" if there is none.
6. 'estimated_cost' must be an integer.
7. If the start date equals the end date the plan has exactly one day with day=1 and the accommodation name is "none".
8. Each day has at least 2 and at most 4 places and exactly 1 accommodation.

The final output must be nothing but the requested JSON. Do not include any other text.`,
		req.DurationDays,
		strings.Join(req.PlaceThemes, ", "),
		req.TotalBudget(),
		req.StartLocation,
		req.EndCity,
		req.EndDistrict,
		req.DurationDays,
		req.StartDate.Format("2006-01-02"),
		req.EndDate.Format("2006-01-02"),
		req.TotalBudget(),
		req.TotalPeople,
		req.AccommodationTheme,
		placeLines,
		accommodationLines,
	)
}
