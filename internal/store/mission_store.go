// Package store owns the durable mission record set. It is the only writer
// of the missions table and keeps the redundant path/home/geometry encodings
// consistent at creation time.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/twpayne/go-geom/encoding/geojson"
	"gorm.io/gorm"

	"mission_mapper/internal/geo"
	"mission_mapper/internal/models"
)

var (
	// ErrNotFound is returned when an operation targets a nonexistent mission id.
	ErrNotFound = errors.New("mission not found")

	// ErrStorageUnavailable is returned when the durable medium cannot be
	// read or written.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// MissionRecord is a fully decoded mission as returned by the store.
type MissionRecord struct {
	MissionID uint
	Name      string
	Path      []models.Point
	Home      models.Point
	Geometry  *geojson.Feature
	CreatedAt time.Time
}

// MissionStore performs mission CRUD against a single SQLite table.
// Construct with NewMissionStore and pass by reference; there is no
// package-level handle.
type MissionStore struct {
	db *gorm.DB
}

// NewMissionStore creates a store over an opened database handle.
func NewMissionStore(db *gorm.DB) *MissionStore {
	return &MissionStore{db: db}
}

// Create derives home and geometry from the path, persists one row and
// returns the fully populated record. Id assignment is atomic with the
// insert; racing creates each observe a distinct id.
func (s *MissionStore) Create(name string, path []models.Point) (*MissionRecord, error) {
	home, err := geo.DeriveHome(path)
	if err != nil {
		return nil, err
	}

	feature, err := geo.DeriveGeometry(path)
	if err != nil {
		return nil, err
	}

	pathJSON, err := geo.EncodePath(path)
	if err != nil {
		return nil, err
	}
	homeJSON, err := geo.EncodePoint(home)
	if err != nil {
		return nil, err
	}
	geomJSON, err := feature.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode geometry: %w", err)
	}

	mission := models.Mission{
		Name:     name,
		Path:     string(pathJSON),
		Home:     string(homeJSON),
		Geometry: string(geomJSON),
	}
	if err := s.db.Create(&mission).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return &MissionRecord{
		MissionID: mission.MissionID,
		Name:      mission.Name,
		Path:      path,
		Home:      home,
		Geometry:  feature,
		CreatedAt: mission.CreatedAt,
	}, nil
}

// GetAll returns every stored mission decoded back to structured form.
// Each call produces a fresh slice in insertion order.
func (s *MissionStore) GetAll() ([]MissionRecord, error) {
	var rows []models.Mission
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	records := make([]MissionRecord, 0, len(rows))
	for _, row := range rows {
		record, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}

// GetByID returns a single decoded mission.
func (s *MissionStore) GetByID(id uint) (*MissionRecord, error) {
	var row models.Mission
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return decodeRow(row)
}

// RenameByID updates only the name column. Path, home, geometry and the
// creation timestamp are untouched.
func (s *MissionStore) RenameByID(id uint, newName string) error {
	res := s.db.Model(&models.Mission{}).Where("mission_id = ?", id).Update("name", newName)
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a mission row.
func (s *MissionStore) DeleteByID(id uint) error {
	res := s.db.Delete(&models.Mission{}, id)
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func decodeRow(row models.Mission) (*MissionRecord, error) {
	path, err := geo.DecodePath([]byte(row.Path))
	if err != nil {
		return nil, err
	}
	home, err := geo.DecodePoint([]byte(row.Home))
	if err != nil {
		return nil, err
	}
	feature, err := geo.DecodeGeometry([]byte(row.Geometry))
	if err != nil {
		return nil, err
	}

	return &MissionRecord{
		MissionID: row.MissionID,
		Name:      row.Name,
		Path:      path,
		Home:      home,
		Geometry:  feature,
		CreatedAt: row.CreatedAt,
	}, nil
}
