package model

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// GridCell is one scored cell of the upstream suitability grid. Immutable
// once loaded; FinalScore is the multi-criteria suitability score where
// lower means more suitable for a corridor.
type GridCell struct {
	CellID     int         `json:"cell_id"`
	Geometry   orb.Polygon `json:"-"`
	FinalScore float64     `json:"final_score"`
}

// Centroid returns the area centroid of the cell polygon. For cells loaded
// without geometry it falls back to the zero point.
func (c GridCell) Centroid() orb.Point {
	if len(c.Geometry) == 0 {
		return orb.Point{}
	}
	centroid, _ := planar.CentroidArea(c.Geometry)
	return centroid
}

// Bound returns the bounding box of the cell polygon.
func (c GridCell) Bound() orb.Bound {
	return c.Geometry.Bound()
}
