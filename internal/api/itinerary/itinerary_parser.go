package itinerary

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/yeohaeng/trip-planner/internal/types"
)

func parseItinerary(jsonStr string) (*types.Itinerary, error) {
	var itinerary types.Itinerary
	if err := json.Unmarshal([]byte(jsonStr), &itinerary); err != nil {
		return nil, fmt.Errorf("failed to parse itinerary JSON: %w", err)
	}
	// The schema requires the travel_plan key but cannot require a useful
	// value; an empty plan is as unusable as malformed JSON.
	if len(itinerary.TravelPlan) == 0 {
		return nil, fmt.Errorf("itinerary JSON has an empty travel_plan")
	}
	return &itinerary, nil
}

// truncate limits the raw-response echo attached to parse failures, backing
// off to a rune boundary so a multibyte character is never split.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
