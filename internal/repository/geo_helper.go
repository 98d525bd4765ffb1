package repository

import (
	"fmt"
	"strconv"

	"corridor-app/internal/domain/model"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// polygonOf extracts a polygon from a feature geometry. MultiPolygon
// features contribute their first member; the grid tessellation never
// produces more.
func polygonOf(g orb.Geometry) (orb.Polygon, error) {
	switch geom := g.(type) {
	case orb.Polygon:
		return geom, nil
	case orb.MultiPolygon:
		if len(geom) > 0 {
			return geom[0], nil
		}
		return nil, fmt.Errorf("empty MultiPolygon geometry")
	default:
		return nil, fmt.Errorf("unsupported geometry type %T, expected Polygon", g)
	}
}

// pointOf reduces any feature geometry to a representative point: the
// point itself, or the area centroid for polygonal inputs.
func pointOf(g orb.Geometry) orb.Point {
	switch geom := g.(type) {
	case orb.Point:
		return geom
	case orb.MultiPoint:
		if len(geom) > 0 {
			return geom[0]
		}
		return orb.Point{}
	default:
		centroid, _ := planar.CentroidArea(g)
		return centroid
	}
}

// propFloat reads the first matching numeric property, tolerating the
// number/string variance of exported shapefile attributes.
func propFloat(f *geojson.Feature, keys ...string) (float64, bool) {
	for _, key := range keys {
		raw, ok := f.Properties[key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return parsed, true
			}
		}
	}
	return 0, false
}

// propString reads the first matching string property.
func propString(f *geojson.Feature, keys ...string) (string, bool) {
	for _, key := range keys {
		if raw, ok := f.Properties[key]; ok {
			if s, ok := raw.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// FeatureToGridCell converts one scored-grid feature. Requires cell_id and
// final_score properties and a polygonal geometry.
func FeatureToGridCell(f *geojson.Feature) (model.GridCell, error) {
	poly, err := polygonOf(f.Geometry)
	if err != nil {
		return model.GridCell{}, err
	}
	cellID, ok := propFloat(f, "cell_id")
	if !ok {
		return model.GridCell{}, fmt.Errorf("feature is missing cell_id property")
	}
	score, ok := propFloat(f, "final_score")
	if !ok {
		return model.GridCell{}, fmt.Errorf("feature is missing final_score property")
	}
	return model.GridCell{
		CellID:     int(cellID),
		Geometry:   poly,
		FinalScore: score,
	}, nil
}

// CorridorCellsToFeatureCollection builds the corridor_zones output
// collection. Cells with known grid geometry carry their polygon;
// cost_tier and infra_type ride along as properties.
func CorridorCellsToFeatureCollection(cells []model.CorridorCell, grid map[int]model.GridCell) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, cell := range cells {
		var f *geojson.Feature
		if gc, ok := grid[cell.CellID]; ok {
			f = geojson.NewFeature(gc.Geometry)
			f.Properties["final_score"] = gc.FinalScore
		} else {
			f = geojson.NewFeature(orb.Point{})
		}
		f.Properties["cell_id"] = cell.CellID
		f.Properties["cost_tier"] = cell.CostTier
		if cell.InfraType != "" {
			f.Properties["infra_type"] = cell.InfraType
		}
		fc.Append(f)
	}
	return fc
}
