package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// BoundingBox is specified west of the prime meridian: BottomLeft holds the
// minimum latitude and maximum longitude, TopRight the maximum latitude and
// minimum longitude.
type BoundingBox struct {
	BottomLeft Coordinate `json:"bottom_left"`
	TopRight   Coordinate `json:"top_right"`
}

type Area struct {
	Name string      `json:"name"`
	Box  BoundingBox `json:"box"`
}

type Station struct {
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
}

// GeoSettings is the reference data the annotator works against. Areas and
// Stations are scanned in slice order.
type GeoSettings struct {
	Areas          []Area    `json:"areas"`
	Stations       []Station `json:"stations"`
	Neighborhoods  []string  `json:"neighborhoods"`
	MaxTransitDist float64   `json:"max_transit_dist"`
}

// TransitDistance is a distance in kilometers that may be unknown. It renders
// as "N/A" when no station was measured.
type TransitDistance struct {
	Km    float64
	Known bool
}

func KnownDistance(km float64) TransitDistance {
	return TransitDistance{Km: km, Known: true}
}

func (d TransitDistance) String() string {
	if !d.Known {
		return "N/A"
	}
	return strconv.FormatFloat(d.Km, 'f', -1, 64)
}

func (d TransitDistance) MarshalJSON() ([]byte, error) {
	if !d.Known {
		return []byte(`"N/A"`), nil
	}
	return json.Marshal(d.Km)
}

// UnmarshalJSON accepts a number, "N/A" or null.
func (d *TransitDistance) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"N/A"`, "null":
		*d = TransitDistance{}
		return nil
	}

	var km float64
	if err := json.Unmarshal(data, &km); err != nil {
		return fmt.Errorf("transit distance: want a number or \"N/A\", got %s", data)
	}
	*d = KnownDistance(km)
	return nil
}

type Annotation struct {
	AreaFound bool            `json:"area_found"`
	Area      string          `json:"area"`
	NearBart  bool            `json:"near_bart"`
	BartDist  TransitDistance `json:"bart_dist"`
	Bart      string          `json:"bart"`
}
