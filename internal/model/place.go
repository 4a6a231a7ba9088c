package model

import (
	"fmt"
	"math"
)

// Coordinate bounds in decimal degrees
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Coordinate represents a WGS84 point in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// NewCoordinate validates and constructs a coordinate
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < MinLatitude || lat > MaxLatitude {
		return Coordinate{}, fmt.Errorf("latitude %v out of range [%v, %v]", lat, MinLatitude, MaxLatitude)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < MinLongitude || lon > MaxLongitude {
		return Coordinate{}, fmt.Errorf("longitude %v out of range [%v, %v]", lon, MinLongitude, MaxLongitude)
	}
	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

// Place represents a resolved point of interest. Places are immutable once
// constructed; stores and services pass them by value.
type Place struct {
	Name     string     `json:"name"`
	ID       string     `json:"place_id"`
	Location Coordinate `json:"location"`
}

// NewPlace validates and constructs a place
func NewPlace(name, id string, lat, lon float64) (Place, error) {
	if name == "" {
		return Place{}, fmt.Errorf("place name is required")
	}
	if id == "" {
		return Place{}, fmt.Errorf("place id is required")
	}
	loc, err := NewCoordinate(lat, lon)
	if err != nil {
		return Place{}, err
	}
	return Place{Name: name, ID: id, Location: loc}, nil
}
