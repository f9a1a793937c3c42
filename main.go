package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/yeohaeng/trip-planner/config"
	"github.com/yeohaeng/trip-planner/internal/api/candidates"
	"github.com/yeohaeng/trip-planner/internal/api/catalog"
	"github.com/yeohaeng/trip-planner/internal/api/emitter"
	generativeAI "github.com/yeohaeng/trip-planner/internal/api/generative_ai"
	"github.com/yeohaeng/trip-planner/internal/api/itinerary"
	"github.com/yeohaeng/trip-planner/internal/api/triprequest"
	"github.com/yeohaeng/trip-planner/internal/types"
)

// One exit code per terminal failure kind; the parent process spawning this
// pipeline classifies failures from the code alone.
const (
	exitOK = iota
	exitInternal
	exitCatalogUnavailable
	exitInvalidRequest
	exitInvalidDateRange
	exitNoRegionMatch
	exitNoAccommodationCandidates
	exitNoPlaceCandidates
	exitBackendCall
	exitRetriesExhausted
	exitResponseParse
)

func main() {
	os.Exit(run())
}

// run executes the whole pipeline sequentially: catalog load, request
// normalization, candidate filtering, itinerary synthesis, emission. Every
// error is terminal; nothing past the synthesizer's own retry loop recovers.
func run() int {
	// Use standard log until slog is configured, in case godotenv fails
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Printf("FATAL: Error initializing config: %v", err)
		return exitInternal
	}

	logger := setupLogger(cfg.Mode).With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)

	ctx := context.Background()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Store.ConnectTimeout)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Store.URL))
	if err != nil {
		return fail(logger, fmt.Errorf("%w: connecting to store: %v", types.ErrCatalogUnavailable, err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("store disconnect failed", slog.Any("error", err))
		}
	}()
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return fail(logger, fmt.Errorf("%w: pinging store: %v", types.ErrCatalogUnavailable, err))
	}

	catalogRepo := catalog.NewRepositoryImpl(client, cfg.Store.Database, cfg.Store.Collection, logger)
	records, err := catalogRepo.LoadAll(ctx)
	if err != nil {
		return fail(logger, err)
	}
	logger.Info("place catalog loaded", slog.Int("records", len(records)))

	requestService := triprequest.NewServiceImpl(logger)
	req, err := requestService.Normalize(os.Stdin)
	if err != nil {
		return fail(logger, err)
	}
	logger.Info("trip request accepted",
		slog.String("city", req.EndCity),
		slog.String("district", req.EndDistrict),
		slog.Int("duration_days", req.DurationDays),
		slog.String("accommodation_theme", req.AccommodationTheme),
	)

	candidateService := candidates.NewServiceImpl(logger)
	set, err := candidateService.Filter(records, req)
	if err != nil {
		return fail(logger, err)
	}

	aiClient, err := generativeAI.NewAIClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return fail(logger, fmt.Errorf("%w: %v", types.ErrBackendCall, err))
	}
	synthesizer := itinerary.NewServiceImpl(aiClient, cfg.Gemini.Temperature, itinerary.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
		MaxJitter:   cfg.Retry.MaxJitter,
	}, logger)

	plan, err := synthesizer.Generate(ctx, req, set)
	if err != nil {
		return fail(logger, err)
	}

	emitService := emitter.NewServiceImpl(os.Stdout, cfg.Output.File, logger)
	if err := emitService.Emit(plan); err != nil {
		return fail(logger, err)
	}

	logger.Info("travel plan emitted", slog.String("file", cfg.Output.File))
	return exitOK
}

func fail(logger *slog.Logger, err error) int {
	logger.Error("pipeline failed", slog.Any("error", err))
	return exitCodeFor(err)
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, types.ErrCatalogUnavailable):
		return exitCatalogUnavailable
	case errors.Is(err, types.ErrInvalidDateRange):
		return exitInvalidDateRange
	case errors.Is(err, types.ErrInvalidRequest):
		return exitInvalidRequest
	case errors.Is(err, types.ErrNoRegionMatch):
		return exitNoRegionMatch
	case errors.Is(err, types.ErrNoAccommodationCandidates):
		return exitNoAccommodationCandidates
	case errors.Is(err, types.ErrNoPlaceCandidates):
		return exitNoPlaceCandidates
	case errors.Is(err, types.ErrRetriesExhausted):
		return exitRetriesExhausted
	case errors.Is(err, types.ErrResponseParse):
		return exitResponseParse
	case errors.Is(err, types.ErrBackendCall):
		return exitBackendCall
	default:
		return exitInternal
	}
}

// setupLogger configures the pipeline logger. Everything goes to stderr:
// stdout carries the itinerary JSON and nothing else.
func setupLogger(mode string) *slog.Logger {
	if mode == "development" || mode == "" {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
