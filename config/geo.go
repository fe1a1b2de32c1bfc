package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

// LoadGeoSettings returns the built-in Bay Area reference data, or the
// contents of GEO_SETTINGS_FILE when set. MAX_TRANSIT_DIST applies when the
// file leaves the threshold unset.
func LoadGeoSettings(cfg *Config) (domain.GeoSettings, error) {
	if cfg.GeoSettingsFile == "" {
		settings := DefaultGeoSettings()
		settings.MaxTransitDist = cfg.MaxTransitDist
		return settings, nil
	}

	data, err := os.ReadFile(cfg.GeoSettingsFile)
	if err != nil {
		return domain.GeoSettings{}, fmt.Errorf("read geo settings: %w", err)
	}

	var settings domain.GeoSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return domain.GeoSettings{}, fmt.Errorf("parse geo settings %s: %w", cfg.GeoSettingsFile, err)
	}
	if settings.MaxTransitDist <= 0 {
		settings.MaxTransitDist = cfg.MaxTransitDist
	}
	return settings, nil
}

func area(name string, minLat, maxLon, maxLat, minLon float64) domain.Area {
	return domain.Area{
		Name: name,
		Box: domain.BoundingBox{
			BottomLeft: domain.Coordinate{Lat: minLat, Lon: maxLon},
			TopRight:   domain.Coordinate{Lat: maxLat, Lon: minLon},
		},
	}
}

func station(name string, lat, lon float64) domain.Station {
	return domain.Station{Name: name, Location: domain.Coordinate{Lat: lat, Lon: lon}}
}

func DefaultGeoSettings() domain.GeoSettings {
	return domain.GeoSettings{
		Areas: []domain.Area{
			area("adams_point", 37.80789, -122.25000, 37.81589, -122.26081),
			area("piedmont", 37.82240, -122.24768, 37.83237, -122.25386),
			area("rockridge", 37.83826, -122.24073, 37.84680, -122.25944),
			area("berkeley", 37.86226, -122.25043, 37.86781, -122.26502),
			area("north_berkeley", 37.86425, -122.26330, 37.87655, -122.28974),
			area("pac_heights", 37.79124, -122.42381, 37.79850, -122.44784),
			area("lower_pac_heights", 37.78554, -122.42878, 37.78873, -122.44544),
			area("haight", 37.77059, -122.42688, 37.77086, -122.45401),
			area("sunset", 37.75451, -122.46422, 37.76258, -122.50825),
			area("richmond", 37.77188, -122.47263, 37.78029, -122.51005),
			area("presidio", 37.77805, -122.43959, 37.78829, -122.47151),
		},
		Stations: []domain.Station{
			station("oakland_19th_bart", 37.8118051, -122.2720873),
			station("macarthur_bart", 37.8265657, -122.2686705),
			station("rockridge_bart", 37.841286, -122.2566329),
			station("downtown_berkeley_bart", 37.8629541, -122.276594),
			station("north_berkeley_bart", 37.8713411, -122.2849758),
			station("12th_street_oakland_bart", 37.8036, -122.2715),
			station("civic_center_bart", 37.7796, -122.4137),
			station("16th_street_bart", 37.7650, -122.4196),
			station("24th_street_bart", 37.7523, -122.4185),
			station("glen_park_bart", 37.7332, -122.4339),
			station("montgomery_bart", 37.7894, -122.4012),
			station("powell_bart", 37.7845, -122.4079),
			station("embarcadero_bart", 37.7929, -122.3970),
		},
		Neighborhoods: []string{
			"berkeley north", "berkeley", "rockridge", "adams point", "oakland lake merritt",
			"cow hollow", "piedmont", "pac hts", "pacific heights", "lower haight",
			"inner sunset", "outer sunset", "presidio", "palo alto", "richmond / seacliff",
			"haight ashbury", "alameda", "twin peaks", "noe valley", "bernal heights",
			"glen park", "sunset", "mission district", "potrero hill", "dogpatch",
		},
		MaxTransitDist: 2,
	}
}
