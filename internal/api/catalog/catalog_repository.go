package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yeohaeng/trip-planner/internal/types"
)

var _ Repository = (*RepositoryImpl)(nil)

// Repository loads the full place catalog from the document store.
type Repository interface {
	LoadAll(ctx context.Context) ([]types.PlaceRecord, error)
}

type RepositoryImpl struct {
	logger     *slog.Logger
	collection *mongo.Collection
}

func NewRepositoryImpl(client *mongo.Client, database, collection string, logger *slog.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger:     logger,
		collection: client.Database(database).Collection(collection),
	}
}

// placeDocument matches the store's nested shape under the projection below.
type placeDocument struct {
	Title    string `bson:"title"`
	Category string `bson:"category"`
	Address  struct {
		City     string `bson:"city"`
		District string `bson:"district"`
	} `bson:"address"`
	Coordinates struct {
		Coordinates []float64 `bson:"coordinates"` // GeoJSON [lng, lat]
	} `bson:"coordinates"`
}

// LoadAll performs the single bulk read of the run. No retry: a store that is
// down at startup is terminal before any request is consumed.
func (r *RepositoryImpl) LoadAll(ctx context.Context) ([]types.PlaceRecord, error) {
	projection := bson.D{
		{Key: "title", Value: 1},
		{Key: "category", Value: 1},
		{Key: "address.city", Value: 1},
		{Key: "address.district", Value: 1},
		{Key: "coordinates.coordinates", Value: 1},
		{Key: "_id", Value: 0},
	}

	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("%w: find on %s failed: %v", types.ErrCatalogUnavailable, r.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	var docs []placeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: reading cursor failed: %v", types.ErrCatalogUnavailable, err)
	}

	records := make([]types.PlaceRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, flattenPlace(doc))
	}

	r.logger.Debug("catalog loaded", slog.Int("records", len(records)))
	return records, nil
}

// flattenPlace lifts the nested address/coordinate fields into scalars.
// Pure data shaping, no filtering.
func flattenPlace(doc placeDocument) types.PlaceRecord {
	record := types.PlaceRecord{
		Title:    doc.Title,
		Category: doc.Category,
		City:     doc.Address.City,
		District: doc.Address.District,
	}
	if len(doc.Coordinates.Coordinates) >= 2 {
		record.X = doc.Coordinates.Coordinates[0]
		record.Y = doc.Coordinates.Coordinates[1]
		record.HasCoords = true
	}
	return record
}
