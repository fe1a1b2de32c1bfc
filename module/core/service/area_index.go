package service

import (
	"github.com/dhconnelly/rtreego"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

const (
	indexDimensions  = 2
	indexMinChildren = 2
	indexMaxChildren = 8
	probeTolerance   = 1e-9
)

type areaItem struct {
	order int
	area  domain.Area
	rect  rtreego.Rect
}

func (a *areaItem) Bounds() rtreego.Rect {
	return a.rect
}

// AreaIndex finds the configured area containing a point. When several boxes
// contain it, the one configured last wins.
type AreaIndex struct {
	tree *rtreego.Rtree
}

func NewAreaIndex(areas []domain.Area) *AreaIndex {
	tree := rtreego.NewTree(indexDimensions, indexMinChildren, indexMaxChildren)
	for i, a := range areas {
		minLat, maxLat := a.Box.BottomLeft.Lat, a.Box.TopRight.Lat
		minLon, maxLon := a.Box.TopRight.Lon, a.Box.BottomLeft.Lon
		// empty or inverted boxes can never strictly contain a point
		if maxLat <= minLat || maxLon <= minLon {
			continue
		}
		rect, err := rtreego.NewRect(rtreego.Point{minLat, minLon}, []float64{maxLat - minLat, maxLon - minLon})
		if err != nil {
			continue
		}
		tree.Insert(&areaItem{order: i, area: a, rect: rect})
	}
	return &AreaIndex{tree: tree}
}

func (x *AreaIndex) Lookup(c domain.Coordinate) (string, bool) {
	corner := rtreego.Point{c.Lat - probeTolerance, c.Lon - probeTolerance}
	probe, err := rtreego.NewRect(corner, []float64{2 * probeTolerance, 2 * probeTolerance})
	if err != nil {
		return "", false
	}

	best := -1
	name := ""
	for _, s := range x.tree.SearchIntersect(probe) {
		item := s.(*areaItem)
		if item.order > best && InBox(c, item.area.Box) {
			best = item.order
			name = item.area.Name
		}
	}
	return name, best >= 0
}
