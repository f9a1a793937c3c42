package types

import "errors"

// Pipeline error kinds. Every one of these is terminal for the run; main maps
// each to its own exit code so the parent process can classify failures
// without scraping stderr.
var (
	// ErrCatalogUnavailable means the place store could not be reached or read
	// at startup. The pipeline aborts before consuming any request input.
	ErrCatalogUnavailable = errors.New("place catalog unavailable")

	// ErrInvalidRequest covers malformed or incomplete request JSON.
	ErrInvalidRequest = errors.New("invalid trip request")

	// ErrInvalidDateRange covers unparsable dates and start_date > end_date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrNoRegionMatch means no catalog record matched the requested
	// city/district pair.
	ErrNoRegionMatch = errors.New("no places found for requested region")

	// ErrNoPlaceCandidates / ErrNoAccommodationCandidates mean the region
	// matched but the theme filter emptied one side of the candidate set.
	ErrNoPlaceCandidates         = errors.New("no place candidates for requested themes")
	ErrNoAccommodationCandidates = errors.New("no accommodation candidates for derived theme")

	// ErrBackendCall is a non-transient generation backend failure
	// (bad credentials, malformed request). Never retried.
	ErrBackendCall = errors.New("generation backend call failed")

	// ErrRetriesExhausted means transient backend overload persisted through
	// every allowed attempt. Wraps the last observed backend error.
	ErrRetriesExhausted = errors.New("generation backend overloaded, retries exhausted")

	// ErrResponseParse means the backend answered but the text was not valid
	// JSON for the requested schema. Never retried.
	ErrResponseParse = errors.New("failed to parse generation response")
)
