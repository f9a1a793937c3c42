package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeohaeng/trip-planner/internal/types"
)

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{types.ErrCatalogUnavailable, exitCatalogUnavailable},
		{types.ErrInvalidRequest, exitInvalidRequest},
		{types.ErrInvalidDateRange, exitInvalidDateRange},
		{types.ErrNoRegionMatch, exitNoRegionMatch},
		{types.ErrNoAccommodationCandidates, exitNoAccommodationCandidates},
		{types.ErrNoPlaceCandidates, exitNoPlaceCandidates},
		{types.ErrBackendCall, exitBackendCall},
		{types.ErrRetriesExhausted, exitRetriesExhausted},
		{types.ErrResponseParse, exitResponseParse},
		{errors.New("something else"), exitInternal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, exitCodeFor(tc.err), "error: %v", tc.err)
		// wrapped errors map the same way
		assert.Equal(t, tc.code, exitCodeFor(fmt.Errorf("context: %w", tc.err)))
	}
}

func TestExitCodesAreNonZeroAndDistinct(t *testing.T) {
	codes := []int{
		exitInternal, exitCatalogUnavailable, exitInvalidRequest, exitInvalidDateRange,
		exitNoRegionMatch, exitNoAccommodationCandidates, exitNoPlaceCandidates,
		exitBackendCall, exitRetriesExhausted, exitResponseParse,
	}
	seen := map[int]bool{}
	for _, code := range codes {
		assert.NotEqual(t, exitOK, code)
		assert.False(t, seen[code], "duplicate exit code %d", code)
		seen[code] = true
	}
}
