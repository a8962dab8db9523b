package geo_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/twpayne/go-geom"

	"mission_mapper/internal/geo"
	"mission_mapper/internal/models"
)

func TestEncodeDecodePathRoundTrip(t *testing.T) {
	path := []models.Point{
		{Lat: -7.764785277662592, Lng: 110.38173999968215},
		{Lat: -7.765901234567891, Lng: 110.38255555555555},
		{Lat: 0, Lng: 0},
	}

	data, err := geo.EncodePath(path)
	if err != nil {
		t.Fatalf("EncodePath failed: %v", err)
	}

	decoded, err := geo.DecodePath(data)
	if err != nil {
		t.Fatalf("DecodePath failed: %v", err)
	}

	if len(decoded) != len(path) {
		t.Fatalf("expected %d points, got %d", len(path), len(decoded))
	}
	for i := range path {
		if decoded[i] != path[i] {
			t.Errorf("point %d changed: got %+v, want %+v", i, decoded[i], path[i])
		}
	}
}

func TestDecodePathMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":     "not json at all",
		"not a list":   `{"lat":1,"lng":2}`,
		"wrong fields": `[{"lat":"one","lng":"two"}]`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := geo.DecodePath([]byte(input))
			if !errors.Is(err, geo.ErrMalformedData) {
				t.Errorf("expected ErrMalformedData, got %v", err)
			}
		})
	}
}

func TestEncodeDecodePointRoundTrip(t *testing.T) {
	p := models.Point{Lat: -7.764785277662592, Lng: 110.38173999968215}

	data, err := geo.EncodePoint(p)
	if err != nil {
		t.Fatalf("EncodePoint failed: %v", err)
	}
	decoded, err := geo.DecodePoint(data)
	if err != nil {
		t.Fatalf("DecodePoint failed: %v", err)
	}
	if decoded != p {
		t.Errorf("point changed: got %+v, want %+v", decoded, p)
	}
}

func TestDeriveGeometrySwapsAxisOrder(t *testing.T) {
	path := []models.Point{
		{Lat: 1, Lng: 2},
		{Lat: 3, Lng: 4},
	}

	feature, err := geo.DeriveGeometry(path)
	if err != nil {
		t.Fatalf("DeriveGeometry failed: %v", err)
	}

	line, ok := feature.Geometry.(*geom.LineString)
	if !ok {
		t.Fatalf("expected LineString geometry, got %T", feature.Geometry)
	}
	if line.NumCoords() != len(path) {
		t.Fatalf("expected %d coords, got %d", len(path), line.NumCoords())
	}
	for i, p := range path {
		c := line.Coord(i)
		if c[0] != p.Lng || c[1] != p.Lat {
			t.Errorf("coord %d: got [%v %v], want [%v %v]", i, c[0], c[1], p.Lng, p.Lat)
		}
	}
}

func TestDeriveGeometryMarshalsAsFeature(t *testing.T) {
	feature, err := geo.DeriveGeometry([]models.Point{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}})
	if err != nil {
		t.Fatalf("DeriveGeometry failed: %v", err)
	}

	data, err := feature.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	var out struct {
		Type     string `json:"type"`
		Geometry struct {
			Type        string      `json:"type"`
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties map[string]interface{} `json:"properties"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal feature: %v", err)
	}

	if out.Type != "Feature" {
		t.Errorf("expected type Feature, got %q", out.Type)
	}
	if out.Geometry.Type != "LineString" {
		t.Errorf("expected geometry type LineString, got %q", out.Geometry.Type)
	}
	want := [][]float64{{2, 1}, {4, 3}}
	if len(out.Geometry.Coordinates) != len(want) {
		t.Fatalf("expected %d coordinates, got %d", len(want), len(out.Geometry.Coordinates))
	}
	for i := range want {
		if out.Geometry.Coordinates[i][0] != want[i][0] || out.Geometry.Coordinates[i][1] != want[i][1] {
			t.Errorf("coordinate %d: got %v, want %v", i, out.Geometry.Coordinates[i], want[i])
		}
	}
	if out.Properties == nil {
		t.Error("expected empty properties object, got null")
	}
}

func TestDeriveGeometryEmptyPath(t *testing.T) {
	feature, err := geo.DeriveGeometry(nil)
	if err != nil {
		t.Fatalf("DeriveGeometry on empty path failed: %v", err)
	}

	line, ok := feature.Geometry.(*geom.LineString)
	if !ok {
		t.Fatalf("expected LineString geometry, got %T", feature.Geometry)
	}
	if line.NumCoords() != 0 {
		t.Errorf("expected zero coords, got %d", line.NumCoords())
	}
}

func TestDeriveHome(t *testing.T) {
	path := []models.Point{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}}

	home, err := geo.DeriveHome(path)
	if err != nil {
		t.Fatalf("DeriveHome failed: %v", err)
	}
	if home != path[0] {
		t.Errorf("expected home %+v, got %+v", path[0], home)
	}

	if _, err := geo.DeriveHome(nil); !errors.Is(err, geo.ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", err)
	}
}
