package service

import (
	"fmt"
	"strings"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

type Annotator struct {
	settings domain.GeoSettings
	areas    *AreaIndex
}

func NewAnnotator(settings domain.GeoSettings) *Annotator {
	return &Annotator{
		settings: settings,
		areas:    NewAreaIndex(settings.Areas),
	}
}

// Annotate labels a geotag with the configured area it falls in and the
// nearest transit station. When no box contains the geotag, the free-text
// location is searched for a known neighborhood name instead; a match there
// sets Area but leaves AreaFound false.
func (a *Annotator) Annotate(geotag *domain.Coordinate, where string) (domain.Annotation, error) {
	if !ValidCoordinate(geotag) {
		return domain.Annotation{}, fmt.Errorf("geotag %v: %w", geotag, domain.ErrInvalidCoordinate)
	}

	var ann domain.Annotation
	if name, ok := a.areas.Lookup(*geotag); ok {
		ann.Area = name
		ann.AreaFound = true
	}

	for _, st := range a.settings.Stations {
		dist := Distance(st.Location, *geotag)
		if ann.BartDist.Known && dist >= ann.BartDist.Km {
			continue
		}
		ann.BartDist = domain.KnownDistance(dist)
		if dist < a.settings.MaxTransitDist {
			ann.Bart = st.Name
			ann.NearBart = true
		}
	}

	if ann.Area == "" {
		loc := strings.ToLower(where)
		for _, hood := range a.settings.Neighborhoods {
			if hood != "" && strings.Contains(loc, strings.ToLower(hood)) {
				ann.Area = hood
				break
			}
		}
	}

	return ann, nil
}
