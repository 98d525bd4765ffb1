package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"corridor-app/internal/domain/model"
	"corridor-app/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// SiteFiles names the GeoJSON inputs for source and hub selection.
// TransmissionPath may be empty; infrastructure classification is then
// skipped.
type SiteFiles struct {
	ZonesPath        string
	PlantsPath       string
	LoadCentersPath  string
	TransmissionPath string
}

// GeoJSONSiteRepository reads strategic zones, generation sites, load
// centers and transmission lines from GeoJSON files.
type GeoJSONSiteRepository struct {
	files SiteFiles
}

func NewGeoJSONSiteRepository(files SiteFiles) repository.SiteRepository {
	return &GeoJSONSiteRepository{files: files}
}

func (r *GeoJSONSiteRepository) LoadStrategicZones(ctx context.Context) ([]model.StrategicZone, error) {
	fc, err := readFeatureCollection(r.files.ZonesPath)
	if err != nil {
		return nil, err
	}
	zones := make([]model.StrategicZone, 0, len(fc.Features))
	for _, f := range fc.Features {
		name, _ := propString(f, "name", "Name")
		zones = append(zones, model.StrategicZone{Name: name, Point: pointOf(f.Geometry)})
	}
	log.Printf("loaded %d strategic zones from %s", len(zones), r.files.ZonesPath)
	return zones, nil
}

func (r *GeoJSONSiteRepository) LoadGenerationSites(ctx context.Context) ([]model.GenerationSite, error) {
	fc, err := readFeatureCollection(r.files.PlantsPath)
	if err != nil {
		return nil, err
	}
	sites := make([]model.GenerationSite, 0, len(fc.Features))
	for _, f := range fc.Features {
		name, _ := propString(f, "name", "Plant_Name", "PlantName")
		// Shapefile exports truncate attribute names, so both spellings
		// appear in the wild.
		status, _ := propString(f, "status", "PlantStatu", "plant_status")
		nameplate, _ := propFloat(f, "nameplate_capacity", "Nameplate", "nameplate")
		fuel, _ := propString(f, "fuel_category", "Fuel", "fuel")
		sites = append(sites, model.GenerationSite{
			Name:         name,
			Point:        pointOf(f.Geometry),
			Status:       status,
			NameplateMW:  nameplate,
			FuelCategory: strings.ToLower(fuel),
		})
	}
	log.Printf("loaded %d generation sites from %s", len(sites), r.files.PlantsPath)
	return sites, nil
}

func (r *GeoJSONSiteRepository) LoadLoadCenters(ctx context.Context) ([]model.LoadCenter, error) {
	fc, err := readFeatureCollection(r.files.LoadCentersPath)
	if err != nil {
		return nil, err
	}
	centers := make([]model.LoadCenter, 0, len(fc.Features))
	for _, f := range fc.Features {
		name, _ := propString(f, "name", "Name")
		centers = append(centers, model.LoadCenter{Name: name, Point: pointOf(f.Geometry)})
	}
	log.Printf("loaded %d load centers from %s", len(centers), r.files.LoadCentersPath)
	return centers, nil
}

func (r *GeoJSONSiteRepository) LoadTransmissionLines(ctx context.Context) ([]model.TransmissionLine, error) {
	if r.files.TransmissionPath == "" {
		return nil, nil
	}
	fc, err := readFeatureCollection(r.files.TransmissionPath)
	if err != nil {
		return nil, err
	}
	lines := make([]model.TransmissionLine, 0, len(fc.Features))
	for _, f := range fc.Features {
		switch geom := f.Geometry.(type) {
		case orb.LineString:
			lines = append(lines, model.TransmissionLine{Geometry: geom})
		case orb.MultiLineString:
			for _, ls := range geom {
				lines = append(lines, model.TransmissionLine{Geometry: ls})
			}
		}
	}
	log.Printf("loaded %d transmission line segments from %s", len(lines), r.files.TransmissionPath)
	return lines, nil
}

func readFeatureCollection(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return fc, nil
}
