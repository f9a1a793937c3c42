package triprequest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/yeohaeng/trip-planner/internal/types"
)

const dateLayout = "2006-01-02"

var _ Service = (*ServiceImpl)(nil)

// Service normalizes the raw stdin request into a canonical TripRequest.
type Service interface {
	Normalize(r io.Reader) (*types.TripRequest, error)
}

type ServiceImpl struct {
	logger *slog.Logger
}

func NewServiceImpl(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

// Normalize decodes and validates one request. Any malformed input is
// terminal; nothing here retries.
func (s *ServiceImpl) Normalize(r io.Reader) (*types.TripRequest, error) {
	var raw types.PlanRequest
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding request JSON: %v", types.ErrInvalidRequest, err)
	}

	if raw.EndArea == "" {
		return nil, fmt.Errorf("%w: end_area is required", types.ErrInvalidRequest)
	}
	if raw.TotalPeople < 1 {
		return nil, fmt.Errorf("%w: total_people must be at least 1, got %d", types.ErrInvalidRequest, raw.TotalPeople)
	}
	if raw.BudgetPerPerson < 0 {
		return nil, fmt.Errorf("%w: budget_per_person must not be negative", types.ErrInvalidRequest)
	}

	startDate, err := time.Parse(dateLayout, raw.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date %q: %v", types.ErrInvalidDateRange, raw.StartDate, err)
	}
	endDate, err := time.Parse(dateLayout, raw.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date %q: %v", types.ErrInvalidDateRange, raw.EndDate, err)
	}
	if startDate.After(endDate) {
		return nil, fmt.Errorf("%w: start_date %s is after end_date %s", types.ErrInvalidDateRange, raw.StartDate, raw.EndDate)
	}

	themes := SplitThemes(raw.PlaceThemes)
	accommodationTheme := DeriveAccommodationTheme(themes)

	req := &types.TripRequest{
		StartLocation:      raw.StartLoc,
		EndCity:            raw.EndArea,
		EndDistrict:        raw.DetailAddr,
		StartDate:          startDate,
		EndDate:            endDate,
		DurationDays:       int(endDate.Sub(startDate).Hours()/24) + 1,
		BudgetPerPerson:    raw.BudgetPerPerson,
		TotalPeople:        raw.TotalPeople,
		PlaceThemes:        themes,
		AccommodationTheme: accommodationTheme,
		UserID:             raw.UserID,
	}

	s.logger.Debug("request normalized",
		slog.String("city", req.EndCity),
		slog.String("district", req.EndDistrict),
		slog.Int("duration_days", req.DurationDays),
		slog.String("accommodation_theme", req.AccommodationTheme),
	)
	return req, nil
}

// SplitThemes splits the comma-separated theme string, trims each segment and
// drops empties.
func SplitThemes(themes string) []string {
	var out []string
	for _, theme := range strings.Split(themes, ",") {
		theme = strings.TrimSpace(theme)
		if theme != "" {
			out = append(out, theme)
		}
	}
	return out
}

// DeriveAccommodationTheme is the rule-based accommodation theme: camping
// trips sleep at campsites, everything else gets regular lodging.
func DeriveAccommodationTheme(placeThemes []string) string {
	for _, theme := range placeThemes {
		if theme == types.ThemeCamping {
			return types.ThemeCamping
		}
	}
	return types.ThemeLodging
}
