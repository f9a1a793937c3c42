package itinerary

import "google.golang.org/genai"

// responseSchema mirrors types.Itinerary so the backend is forced to emit a
// conforming JSON shape. Shape only: provenance and day-count rules live in
// the prompt.
func responseSchema() *genai.Schema {
	locationDetail := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"coords": {
				Type:        genai.TypeString,
				Description: `"latitude, longitude" string, e.g. "37.5665, 126.9780"`,
			},
			"estimated_cost": {
				Type:        genai.TypeInteger,
				Description: "total estimated spend for this entry",
			},
			"closest_subway": {
				Type:        genai.TypeString,
				Description: `nearest subway station name, or "none"`,
			},
		},
		Required: []string{"name", "description", "coords", "estimated_cost", "closest_subway"},
	}

	dayPlan := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"day": {Type: genai.TypeInteger, Description: "trip day number (1, 2, 3...)"},
			"places": {
				Type:        genai.TypeArray,
				Description: "places visited on this day",
				Items:       locationDetail,
			},
			"accommodation": locationDetail,
		},
		Required: []string{"day", "places", "accommodation"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString, Description: "overall trip title"},
			"description": {Type: genai.TypeString, Description: "overall trip description"},
			"travel_plan": {
				Type:        genai.TypeArray,
				Description: "the whole plan, one object per day",
				Items:       dayPlan,
			},
		},
		Required: []string{"title", "description", "travel_plan"},
	}
}
