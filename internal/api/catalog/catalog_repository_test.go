package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenPlace(t *testing.T) {
	doc := placeDocument{Title: "Gyeongbokgung", Category: "history/culture"}
	doc.Address.City = "Seoul"
	doc.Address.District = "Jongno"
	doc.Coordinates.Coordinates = []float64{126.977, 37.5796}

	record := flattenPlace(doc)

	assert.Equal(t, "Gyeongbokgung", record.Title)
	assert.Equal(t, "history/culture", record.Category)
	assert.Equal(t, "Seoul", record.City)
	assert.Equal(t, "Jongno", record.District)
	assert.Equal(t, 126.977, record.X)
	assert.Equal(t, 37.5796, record.Y)
	assert.True(t, record.HasCoords)
}

func TestFlattenPlaceMissingFields(t *testing.T) {
	doc := placeDocument{Title: "Somewhere"}

	record := flattenPlace(doc)

	assert.Empty(t, record.Category)
	assert.Empty(t, record.City)
	assert.Zero(t, record.X)
	assert.Zero(t, record.Y)
	assert.False(t, record.HasCoords)
}

func TestFlattenPlaceShortCoordinates(t *testing.T) {
	doc := placeDocument{Title: "Broken"}
	doc.Coordinates.Coordinates = []float64{127.0}

	record := flattenPlace(doc)

	// A one-element GeoJSON array is malformed; the record is flagged as
	// having no usable position rather than reading out of bounds.
	assert.Zero(t, record.X)
	assert.Zero(t, record.Y)
	assert.False(t, record.HasCoords)
}
