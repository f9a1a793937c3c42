package triprequest

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeohaeng/trip-planner/internal/types"
)

func newTestService() *ServiceImpl {
	return NewServiceImpl(slog.New(slog.DiscardHandler))
}

const validRequest = `{
	"start_loc": "Busan Station",
	"end_area": "Seoul",
	"detail_addr": "Jongno",
	"start_date": "2024-05-01",
	"end_date": "2024-05-03",
	"budget_per_person": 300000,
	"total_people": 2,
	"place_themes": "museum, nature",
	"userId": "user-1"
}`

func TestNormalize(t *testing.T) {
	req, err := newTestService().Normalize(strings.NewReader(validRequest))
	require.NoError(t, err)

	assert.Equal(t, "Busan Station", req.StartLocation)
	assert.Equal(t, "Seoul", req.EndCity)
	assert.Equal(t, "Jongno", req.EndDistrict)
	assert.Equal(t, 3, req.DurationDays)
	assert.Equal(t, []string{"museum", "nature"}, req.PlaceThemes)
	assert.Equal(t, types.ThemeLodging, req.AccommodationTheme)
	assert.Equal(t, "user-1", req.UserID)
	assert.Equal(t, float64(600000), req.TotalBudget())
}

func TestNormalizeSameDayTrip(t *testing.T) {
	body := strings.Replace(validRequest, `"end_date": "2024-05-03"`, `"end_date": "2024-05-01"`, 1)

	req, err := newTestService().Normalize(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 1, req.DurationDays)
}

func TestNormalizeStartAfterEnd(t *testing.T) {
	body := strings.Replace(validRequest, `"start_date": "2024-05-01"`, `"start_date": "2024-05-10"`, 1)

	_, err := newTestService().Normalize(strings.NewReader(body))
	assert.ErrorIs(t, err, types.ErrInvalidDateRange)
}

func TestNormalizeUnparsableDate(t *testing.T) {
	body := strings.Replace(validRequest, `"start_date": "2024-05-01"`, `"start_date": "01/05/2024"`, 1)

	_, err := newTestService().Normalize(strings.NewReader(body))
	assert.ErrorIs(t, err, types.ErrInvalidDateRange)
}

func TestNormalizeMalformedJSON(t *testing.T) {
	_, err := newTestService().Normalize(strings.NewReader("{not json"))
	assert.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestNormalizeMissingCity(t *testing.T) {
	body := strings.Replace(validRequest, `"end_area": "Seoul"`, `"end_area": ""`, 1)

	_, err := newTestService().Normalize(strings.NewReader(body))
	assert.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestNormalizeZeroPeople(t *testing.T) {
	body := strings.Replace(validRequest, `"total_people": 2`, `"total_people": 0`, 1)

	_, err := newTestService().Normalize(strings.NewReader(body))
	assert.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestSplitThemes(t *testing.T) {
	assert.Equal(t, []string{"museum", "nature"}, SplitThemes("museum, nature"))
	assert.Equal(t, []string{"camping"}, SplitThemes(" camping ,, "))
	assert.Nil(t, SplitThemes(""))
	assert.Nil(t, SplitThemes(" , ,"))
}

func TestDeriveAccommodationTheme(t *testing.T) {
	assert.Equal(t, types.ThemeCamping, DeriveAccommodationTheme([]string{"camping", "hiking"}))
	assert.Equal(t, types.ThemeLodging, DeriveAccommodationTheme([]string{"museum"}))
	assert.Equal(t, types.ThemeLodging, DeriveAccommodationTheme(nil))
}
