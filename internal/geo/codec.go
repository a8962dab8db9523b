// Package geo converts drawn paths between their structured form and the
// JSON text stored in the missions table, and derives the GeoJSON artifact
// served to map clients.
package geo

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"mission_mapper/internal/models"
)

var (
	// ErrEmptyPath is returned when an operation needs at least one point.
	ErrEmptyPath = errors.New("path is empty")

	// ErrMalformedData is returned when a stored encoding cannot be decoded.
	ErrMalformedData = errors.New("malformed coordinate data")
)

// EncodePath serializes a path to its storage form. The encoding round-trips
// exactly: float64 coordinates survive encode/decode bit-for-bit.
func EncodePath(path []models.Point) ([]byte, error) {
	data, err := json.Marshal(path)
	if err != nil {
		return nil, fmt.Errorf("encode path: %w", err)
	}
	return data, nil
}

// DecodePath is the inverse of EncodePath.
func DecodePath(data []byte) ([]models.Point, error) {
	var path []models.Point
	if err := json.Unmarshal(data, &path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return path, nil
}

// EncodePoint serializes a single point for the home column.
func EncodePoint(p models.Point) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode point: %w", err)
	}
	return data, nil
}

// DecodePoint is the inverse of EncodePoint.
func DecodePoint(data []byte) (models.Point, error) {
	var p models.Point
	if err := json.Unmarshal(data, &p); err != nil {
		return models.Point{}, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return p, nil
}

// DeriveGeometry builds a GeoJSON Feature with a LineString geometry from a
// path. GeoJSON coordinate order is [lng, lat], swapped relative to Point.
// An empty path is legal and yields a feature with zero coordinates.
func DeriveGeometry(path []models.Point) (*geojson.Feature, error) {
	coords := make([]geom.Coord, len(path))
	for i, p := range path {
		coords[i] = geom.Coord{p.Lng, p.Lat}
	}

	line := geom.NewLineString(geom.XY)
	if _, err := line.SetCoords(coords); err != nil {
		return nil, fmt.Errorf("derive geometry: %w", err)
	}

	return &geojson.Feature{
		Geometry:   line,
		Properties: map[string]interface{}{},
	}, nil
}

// DecodeGeometry parses a stored GeoJSON feature.
func DecodeGeometry(data []byte) (*geojson.Feature, error) {
	var f geojson.Feature
	if err := f.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return &f, nil
}

// DeriveHome returns the first point of a path.
func DeriveHome(path []models.Point) (models.Point, error) {
	if len(path) == 0 {
		return models.Point{}, ErrEmptyPath
	}
	return path[0], nil
}
