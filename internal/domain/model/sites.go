package model

import "github.com/paulmach/orb"

// StrategicZone is a designated renewable development area supplied as a
// corridor source point.
type StrategicZone struct {
	Name  string    `json:"name,omitempty"`
	Point orb.Point `json:"-"`
}

// GenerationSite is a power plant record from the upstream plant dataset.
// Only proposed sites at or above the capacity threshold become sources.
type GenerationSite struct {
	Name         string    `json:"name,omitempty"`
	Point        orb.Point `json:"-"`
	Status       string    `json:"status"`
	NameplateMW  float64   `json:"nameplate_capacity"`
	FuelCategory string    `json:"fuel_category"`
}

// LoadCenter is a data-center location; load centers are clustered into
// hubs rather than routed to individually.
type LoadCenter struct {
	Name  string    `json:"name,omitempty"`
	Point orb.Point `json:"-"`
}

// TransmissionLine is an existing transmission segment used only by the
// downstream infrastructure classifier.
type TransmissionLine struct {
	Geometry orb.LineString `json:"-"`
}

// Source is a corridor path origin: a strategic zone or a qualifying
// generation site. Read-only once assembled; Label is a diagnostic identity
// unique within a run.
type Source struct {
	Label    string    `json:"label"`
	Category string    `json:"category"`
	Point    orb.Point `json:"-"`
}

// Hub is a synthetic load-center location: the arithmetic mean of one
// cluster of load-center points. It is not guaranteed to coincide with any
// grid cell.
type Hub struct {
	ClusterID int       `json:"cluster_id"`
	Point     orb.Point `json:"-"`
	Members   int       `json:"members"`
}
