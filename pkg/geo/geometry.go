package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	onSegmentEpsilon = 1e-12
)

// https://www.movable-type.co.uk/scripts/latlong.html
func MidPoint(lat1, lon1 float64, lat2, lon2 float64) (float64, float64) {
	p1LatRad := degToRad(lat1)
	p2LatRad := degToRad(lat2)

	diffLon := degToRad(lon2 - lon1)

	bx := math.Cos(p2LatRad) * math.Cos(diffLon)
	by := math.Cos(p2LatRad) * math.Sin(diffLon)

	newLon := degToRad(lon1) + math.Atan2(by, math.Cos(p1LatRad)+bx)
	newLat := math.Atan2(math.Sin(p1LatRad)+math.Sin(p2LatRad), math.Sqrt((math.Cos(p1LatRad)+bx)*(math.Cos(p1LatRad)+bx)+by*by))

	return radToDeg(newLat), radToDeg(newLon)
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

// >0 if q is left of the line h->t
func crossProduct(hLat, hLon, tLat, tLon, qLat, qLon float64) float64 {
	return ((tLon - hLon) * (qLat - hLat)) - ((qLon - hLon) * (tLat - hLat))
}

func isPointOnSegment(pLat, pLon, aLat, aLon, bLat, bLon float64) bool {
	if pLon < math.Min(aLon, bLon) || pLon > math.Max(aLon, bLon) ||
		pLat < math.Min(aLat, bLat) || pLat > math.Max(aLat, bLat) {
		return false
	}
	return math.Abs(crossProduct(aLat, aLon, bLat, bLon, pLat, pLon)) <= onSegmentEpsilon
}

// windingNumber of the closed ring around p. points on the ring count as inside.
func windingNumber(p orb.Point, ring orb.Ring) (wn int) {
	pLat, pLon := p.Lat(), p.Lon()
	for i := 0; i+1 < len(ring); i++ {
		aLat, aLon := ring[i].Lat(), ring[i].Lon()
		bLat, bLon := ring[i+1].Lat(), ring[i+1].Lon()
		if isPointOnSegment(pLat, pLon, aLat, aLon, bLat, bLon) {
			wn = 1
			return
		}
		if aLat <= pLat {
			if bLat > pLat && crossProduct(aLat, aLon, bLat, bLon, pLat, pLon) > 0 {
				wn++
			}
		} else if bLat <= pLat && crossProduct(aLat, aLon, bLat, bLon, pLat, pLon) < 0 {
			wn--
		}
	}
	return
}

func IsPointInRing(p orb.Point, ring orb.Ring) bool {
	return windingNumber(p, ring) != 0
}

// IsPointInPolygon. inside the outer ring of any polygon and not inside one of its holes.
func IsPointInPolygon(p orb.Point, mp orb.MultiPolygon) bool {
	for _, polygon := range mp {
		if len(polygon) == 0 || !polygon.Bound().Contains(p) {
			continue
		}
		if !IsPointInRing(p, polygon[0]) {
			continue
		}
		inHole := false
		for _, hole := range polygon[1:] {
			if IsPointInRing(p, hole) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

// Given a start point, initial bearing, and distance, this will calculate the destina­tion point and final bearing travelling along a (shortest distance) great circle arc.
// GetDestinationPoint returns the destination point given the starting point, bearing and distance
// dist in km
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {

	dr := dist / earthRadiusKM

	bearing = (bearing * (math.Pi / 180.0))

	lat1 = (lat1 * (math.Pi / 180.0))
	lon1 = (lon1 * (math.Pi / 180.0))

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)
	lon2 = math.Mod((lon2+3*math.Pi), (2*math.Pi)) - math.Pi

	lat2 = lat2 * (180.0 / math.Pi)
	lon2 = lon2 * (180.0 / math.Pi)

	return lat2, lon2
}

// RadiusBound is the bounding box of the circle of radius meters around p.
func RadiusBound(p orb.Point, radiusMeters float64) orb.Bound {
	distKM := radiusMeters / 1000
	northLat, _ := GetDestinationPoint(p.Lat(), p.Lon(), 0, distKM)
	_, eastLon := GetDestinationPoint(p.Lat(), p.Lon(), 90, distKM)

	dLat := math.Abs(northLat - p.Lat())
	dLon := math.Abs(eastLon - p.Lon())
	return orb.Bound{
		Min: orb.Point{p.Lon() - dLon, p.Lat() - dLat},
		Max: orb.Point{p.Lon() + dLon, p.Lat() + dLat},
	}
}

func toS2(p orb.Point) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat(), p.Lon()))
}

// DistanceToLine returns the great circle distance in meters between p and the closest point of line.
func DistanceToLine(p orb.Point, line orb.LineString) float64 {
	if len(line) == 0 {
		return math.Inf(1)
	}
	ps := toS2(p)
	best := ps.Distance(toS2(line[0])).Radians()
	for i := 0; i+1 < len(line); i++ {
		a, b := toS2(line[i]), toS2(line[i+1])
		var d float64
		if a == b {
			d = ps.Distance(a).Radians()
		} else {
			d = ps.Distance(s2.Project(ps, a, b)).Radians()
		}
		if d < best {
			best = d
		}
	}
	return best * earthRadiusKM * 1000
}

// Centroid of a way. closed ways use the area centroid, open ones the midpoint of the bound.
func Centroid(points []orb.Point) orb.Point {
	if len(points) == 0 {
		return orb.Point{}
	}
	if len(points) >= 4 && points[0] == points[len(points)-1] {
		c, area := planar.CentroidArea(orb.Polygon{orb.Ring(points)})
		if area != 0 {
			return c
		}
	}
	b := orb.MultiPoint(points).Bound()
	lat, lon := MidPoint(b.Min.Lat(), b.Min.Lon(), b.Max.Lat(), b.Max.Lon())
	return orb.Point{lon, lat}
}

// LabelPoint returns a point inside the polygon, the centroid when it is inside.
func LabelPoint(mp orb.MultiPolygon) orb.Point {
	if len(mp) == 0 {
		return orb.Point{}
	}
	c, _ := planar.CentroidArea(mp)
	if IsPointInPolygon(c, mp) {
		return c
	}
	return mp[0][0][0]
}

func polygonArea(mp orb.MultiPolygon) float64 {
	return math.Abs(planar.Area(mp))
}
