package service

import (
	"log"

	"corridor-app/internal/domain/model"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// InfraClassifier labels corridor cells by existing-infrastructure
// presence: cells whose polygon intersects any existing transmission line
// are potential right-of-way expansions, the rest are greenfield
// corridors.
type InfraClassifier struct{}

// NewInfraClassifier creates the classifier.
func NewInfraClassifier() *InfraClassifier {
	return &InfraClassifier{}
}

// Classify sets InfraType on every corridor cell. Cells whose geometry is
// unknown keep the greenfield label. The input slice is not mutated; a new
// slice is returned.
func (ic *InfraClassifier) Classify(cells []model.CorridorCell, grid map[int]model.GridCell, lines []model.TransmissionLine) []model.CorridorCell {
	out := make([]model.CorridorCell, len(cells))
	existing := 0
	for i, cell := range cells {
		labeled := cell
		labeled.InfraType = model.InfraTypeNewCorridor
		if gc, ok := grid[cell.CellID]; ok && ic.intersectsAny(gc.Geometry, lines) {
			labeled.InfraType = model.InfraTypeContainsExisting
			existing++
		}
		out[i] = labeled
	}
	log.Printf("infrastructure classification: %d contain existing lines, %d new corridors", existing, len(out)-existing)
	return out
}

func (ic *InfraClassifier) intersectsAny(poly orb.Polygon, lines []model.TransmissionLine) bool {
	if len(poly) == 0 {
		return false
	}
	polyBound := poly.Bound()
	for _, line := range lines {
		if len(line.Geometry) == 0 {
			continue
		}
		if !polyBound.Intersects(line.Geometry.Bound()) {
			continue
		}
		if lineIntersectsPolygon(line.Geometry, poly) {
			return true
		}
	}
	return false
}

// lineIntersectsPolygon reports whether any part of the linestring touches
// the polygon: a vertex inside it, or a segment crossing a ring edge.
func lineIntersectsPolygon(line orb.LineString, poly orb.Polygon) bool {
	for _, p := range line {
		if planar.PolygonContains(poly, p) {
			return true
		}
	}
	for i := 0; i+1 < len(line); i++ {
		for _, ring := range poly {
			for j := 0; j+1 < len(ring); j++ {
				if segmentsIntersect(line[i], line[i+1], ring[j], ring[j+1]) {
					return true
				}
			}
		}
	}
	return false
}

// segmentsIntersect is the standard orientation test, collinear overlaps
// included.
func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(q1, q2, p1) {
		return true
	}
	if d2 == 0 && onSegment(q1, q2, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, q2) {
		return true
	}
	return false
}

func cross(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func onSegment(a, b, p orb.Point) bool {
	return min(a[0], b[0]) <= p[0] && p[0] <= max(a[0], b[0]) &&
		min(a[1], b[1]) <= p[1] && p[1] <= max(a[1], b[1])
}
