package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/yeohaeng/trip-planner/internal/types"
)

// AIClient is the slice of the generation backend this service needs.
type AIClient interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

// RetryPolicy tunes the transient-overload retry loop.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxJitter   time.Duration
}

var _ Service = (*ServiceImpl)(nil)

// Service synthesizes a day-by-day itinerary from a request and its
// candidate set.
type Service interface {
	Generate(ctx context.Context, req *types.TripRequest, set *types.CandidateSet) (*types.Itinerary, error)
}

type ServiceImpl struct {
	logger      *slog.Logger
	ai          AIClient
	temperature float32
	retry       RetryPolicy

	// injected so the state machine is testable without waiting
	sleep  func(time.Duration)
	jitter func() time.Duration
}

func NewServiceImpl(ai AIClient, temperature float32, retry RetryPolicy, logger *slog.Logger) *ServiceImpl {
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = 5
	}
	if retry.BaseDelay <= 0 {
		retry.BaseDelay = 1500 * time.Millisecond
	}
	s := &ServiceImpl{
		logger:      logger,
		ai:          ai,
		temperature: temperature,
		retry:       retry,
		sleep:       time.Sleep,
	}
	s.jitter = func() time.Duration {
		if retry.MaxJitter <= 0 {
			return 0
		}
		return rand.N(retry.MaxJitter)
	}
	return s
}

// Backend invocation states. The loop below is the explicit form of
// Idle -> Requesting -> {Parsed | RetryWait | Failed}.
type callState int

const (
	stateRequesting callState = iota
	stateRetryWait
	stateParsed
	stateFailed
)

// Generate builds the prompt once, then drives the backend call state
// machine: transient overload goes through RetryWait with exponential backoff
// plus jitter, everything else is terminal on the first occurrence.
func (s *ServiceImpl) Generate(ctx context.Context, req *types.TripRequest, set *types.CandidateSet) (*types.Itinerary, error) {
	prompt := buildPrompt(req, set)
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](s.temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	}

	var (
		state    = stateRequesting
		attempt  int
		lastErr  error
		finalErr error
		result   *types.Itinerary
	)

	for state != stateParsed && state != stateFailed {
		switch state {
		case stateRequesting:
			attempt++
			text, err := s.ai.GenerateContent(ctx, prompt, config)
			if err != nil {
				if isTransientOverload(err) {
					lastErr = err
					state = stateRetryWait
					continue
				}
				finalErr = fmt.Errorf("%w: %v", types.ErrBackendCall, err)
				state = stateFailed
				continue
			}

			parsed, parseErr := parseItinerary(text)
			if parseErr != nil {
				// A schema-constrained call answering with broken JSON is not
				// transient; echo a prefix of the raw text for diagnosis.
				finalErr = fmt.Errorf("%w: %v (response prefix: %q)",
					types.ErrResponseParse, parseErr, truncate(text, 500))
				state = stateFailed
				continue
			}
			result = parsed
			state = stateParsed

		case stateRetryWait:
			if attempt >= s.retry.MaxAttempts {
				finalErr = fmt.Errorf("%w after %d attempts: %v", types.ErrRetriesExhausted, attempt, lastErr)
				state = stateFailed
				continue
			}
			delay := s.backoffDelay(attempt)
			s.logger.Warn("generation backend overloaded, retrying",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", s.retry.MaxAttempts),
				slog.Duration("delay", delay),
			)
			s.sleep(delay)
			state = stateRequesting
		}
	}

	if finalErr != nil {
		return nil, finalErr
	}

	s.checkProvenance(result, set)
	s.logger.Info("itinerary synthesized",
		slog.Int("days", len(result.TravelPlan)),
		slog.Int("attempts", attempt),
	)
	return result, nil
}

// backoffDelay grows exponentially with the attempt number, plus a small
// random jitter so simultaneous clients do not retry in lockstep.
func (s *ServiceImpl) backoffDelay(attempt int) time.Duration {
	return time.Duration(float64(s.retry.BaseDelay)*math.Pow(2, float64(attempt))) + s.jitter()
}

// isTransientOverload classifies backend failures: 503/UNAVAILABLE/overloaded
// conditions are retryable, everything else (auth, malformed request) is not.
func isTransientOverload(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusServiceUnavailable || apiErr.Status == "UNAVAILABLE"
	}
	msg := err.Error()
	return strings.Contains(msg, "503") ||
		strings.Contains(msg, "UNAVAILABLE") ||
		strings.Contains(msg, "overloaded")
}

// checkProvenance verifies that every itinerary entry names a supplied
// candidate. Violations are logged, not rejected: the prompt owns this
// constraint and a model that reformats a title should not fail the run.
func (s *ServiceImpl) checkProvenance(itinerary *types.Itinerary, set *types.CandidateSet) {
	knownPlaces := make(map[string]bool, len(set.Places))
	for _, c := range set.Places {
		knownPlaces[c.Title] = true
	}
	knownAccommodations := make(map[string]bool, len(set.Accommodations))
	for _, c := range set.Accommodations {
		knownAccommodations[c.Title] = true
	}

	for _, day := range itinerary.TravelPlan {
		for _, place := range day.Places {
			if !knownPlaces[place.Name] {
				s.logger.Warn("itinerary place not in candidate list",
					slog.Int("day", day.Day), slog.String("name", place.Name))
			}
		}
		name := day.Accommodation.Name
		if name != "" && name != "none" && !knownAccommodations[name] {
			s.logger.Warn("itinerary accommodation not in candidate list",
				slog.Int("day", day.Day), slog.String("name", name))
		}
	}
}
