package models

import (
	"time"
)

// Mission represents a drawn polyline persisted as one row.
// Path, Home and Geometry are stored as JSON text columns; the store
// package is the only writer and keeps the three encodings consistent.
// Path is immutable after creation - only Name can be updated.
type Mission struct {
	MissionID uint      `gorm:"column:mission_id;primaryKey;autoIncrement" json:"mission_id"`
	Name      string    `json:"name"`
	Path      string    `gorm:"type:text" json:"-"`
	Home      string    `gorm:"type:text" json:"-"`
	Geometry  string    `gorm:"type:text" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Mission) TableName() string {
	return "missions"
}
