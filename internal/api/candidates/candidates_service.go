package candidates

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/yeohaeng/trip-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service turns the loaded catalog plus a normalized request into the two
// candidate lists handed to the generation prompt.
type Service interface {
	Filter(catalog []types.PlaceRecord, req *types.TripRequest) (*types.CandidateSet, error)
}

type ServiceImpl struct {
	logger *slog.Logger
}

func NewServiceImpl(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

// Filter applies the region filter first, then splits the region slice into
// place and accommodation candidates. Catalog iteration order is preserved so
// the resulting prompt is deterministic for a given catalog.
func (s *ServiceImpl) Filter(catalog []types.PlaceRecord, req *types.TripRequest) (*types.CandidateSet, error) {
	region := filterRegion(catalog, req.EndCity, req.EndDistrict)
	if len(region) == 0 {
		return nil, fmt.Errorf("%w: city=%s district=%s", types.ErrNoRegionMatch, req.EndCity, req.EndDistrict)
	}

	places := filterPlaces(region, req.PlaceThemes)
	accommodations := filterAccommodations(region, req.AccommodationTheme)

	if len(accommodations) == 0 {
		return nil, fmt.Errorf("%w: theme=%s city=%s", types.ErrNoAccommodationCandidates, req.AccommodationTheme, req.EndCity)
	}
	if len(places) == 0 {
		return nil, fmt.Errorf("%w: themes=%v city=%s", types.ErrNoPlaceCandidates, req.PlaceThemes, req.EndCity)
	}

	s.logger.Debug("candidates filtered",
		slog.Int("region_records", len(region)),
		slog.Int("places", len(places)),
		slog.Int("accommodations", len(accommodations)),
	)
	return &types.CandidateSet{Places: places, Accommodations: accommodations}, nil
}

// filterRegion keeps records whose city and district both match exactly.
func filterRegion(catalog []types.PlaceRecord, city, district string) []types.PlaceRecord {
	var out []types.PlaceRecord
	for _, record := range catalog {
		if record.City == city && record.District == district {
			out = append(out, record)
		}
	}
	return out
}

// filterPlaces keeps records whose category contains any requested theme as a
// substring. A missing category never matches. With no themes the whole
// region slice is the candidate pool.
func filterPlaces(region []types.PlaceRecord, themes []string) []types.Candidate {
	var out []types.Candidate
	for _, record := range region {
		if len(themes) == 0 || categoryMatchesAny(record.Category, themes) {
			out = append(out, toCandidate(record))
		}
	}
	return out
}

// filterAccommodations keeps records whose category contains the single
// derived accommodation theme.
func filterAccommodations(region []types.PlaceRecord, theme string) []types.Candidate {
	var out []types.Candidate
	for _, record := range region {
		if record.Category != "" && strings.Contains(record.Category, theme) {
			out = append(out, toCandidate(record))
		}
	}
	return out
}

func categoryMatchesAny(category string, themes []string) bool {
	if category == "" {
		return false
	}
	for _, theme := range themes {
		if strings.Contains(category, theme) {
			return true
		}
	}
	return false
}

func toCandidate(record types.PlaceRecord) types.Candidate {
	return types.Candidate{Title: record.Title, Y: record.Y, X: record.X, HasCoords: record.HasCoords}
}

// FormatLines renders candidates one per line for prompt embedding. The model
// consumes these as unstructured text, so the shape is a fixed contract:
// "name: <title>, coords: <y>, <x>", with missing values rendered as the
// literal "none".
func FormatLines(candidates []types.Candidate) []string {
	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		lines = append(lines, FormatLine(c))
	}
	return lines
}

func FormatLine(c types.Candidate) string {
	title := c.Title
	if title == "" {
		title = "none"
	}
	if !c.HasCoords {
		return fmt.Sprintf("name: %s, coords: none, none", title)
	}
	return fmt.Sprintf("name: %s, coords: %s, %s", title, formatCoord(c.Y), formatCoord(c.X))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
