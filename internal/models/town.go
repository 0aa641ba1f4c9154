package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TownDB represents a town row in the database
type TownDB struct {
	ID          int64  `json:"id" db:"id"`                   // Primary key
	Name        string `json:"name" db:"name"`               // Town name
	Coordinates string `json:"coordinates" db:"coordinates"` // "lat, lon" pair stored as text
}

// ParseCoordinates splits a stored "lat, lon" text pair into its parts.
// Storage order is latitude first; export formats that want lon-first must
// swap on their side.
func ParseCoordinates(s string) (lat, lon float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed coordinates %q", s)
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed latitude in %q: %w", s, err)
	}

	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed longitude in %q: %w", s, err)
	}

	return lat, lon, nil
}
