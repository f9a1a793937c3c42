package emitter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeohaeng/trip-planner/internal/types"
)

func testItinerary() *types.Itinerary {
	return &types.Itinerary{
		Title:       "서울 2박 3일",
		Description: "A short trip <with> museums",
		TravelPlan: []types.DayPlan{
			{
				Day: 1,
				Places: []types.LocationDetail{
					{Name: "A", Description: "d", Coords: "37.5, 127", EstimatedCost: 10000, ClosestSubway: "none"},
					{Name: "A", Description: "d2", Coords: "37.5, 127", EstimatedCost: 0, ClosestSubway: "none"},
				},
				Accommodation: types.LocationDetail{Name: "B", Description: "d", Coords: "37.51, 127.01", EstimatedCost: 150000, ClosestSubway: "none"},
			},
		},
	}
}

func TestEmitWritesSingleLineJSON(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "travel_plan.json")
	s := NewServiceImpl(&out, path, slog.New(slog.DiscardHandler))

	require.NoError(t, s.Emit(testItinerary()))

	line := strings.TrimRight(out.String(), "\n")
	assert.NotContains(t, line, "\n")

	var roundTrip types.Itinerary
	require.NoError(t, json.Unmarshal([]byte(line), &roundTrip))
	assert.Equal(t, "서울 2박 3일", roundTrip.Title)

	// non-ASCII and angle brackets pass through unescaped
	assert.Contains(t, line, "서울")
	assert.Contains(t, line, "<with>")
}

func TestEmitWritesPrettyFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "travel_plan.json")
	s := NewServiceImpl(&out, path, slog.New(slog.DiscardHandler))

	require.NoError(t, s.Emit(testItinerary()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n    \"title\"")

	var roundTrip types.Itinerary
	require.NoError(t, json.Unmarshal(raw, &roundTrip))
	assert.Len(t, roundTrip.TravelPlan, 1)
}

func TestEmitFileFailureIsNotFatal(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing", "nested", "travel_plan.json")
	s := NewServiceImpl(&out, path, slog.New(slog.DiscardHandler))

	// stdout emission is authoritative; the unwritable file only logs
	require.NoError(t, s.Emit(testItinerary()))
	assert.NotEmpty(t, out.String())
}
