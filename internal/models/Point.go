package models

// Point is a single geographic coordinate in degrees.
// Values are immutable once bound from a request.
type Point struct {
	Lat float64 `json:"lat" binding:"gte=-90,lte=90"`
	Lng float64 `json:"lng" binding:"gte=-180,lte=180"`
}
