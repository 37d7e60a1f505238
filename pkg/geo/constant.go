package geo

// highway values of ways used to resolve addr:street.
var streetHighways = map[string]bool{
	"motorway":       true,
	"trunk":          true,
	"primary":        true,
	"secondary":      true,
	"tertiary":       true,
	"unclassified":   true,
	"residential":    true,
	"living_street":  true,
	"service":        true,
	"pedestrian":     true,
	"road":           true,
	"motorway_link":  true,
	"trunk_link":     true,
	"primary_link":   true,
	"secondary_link": true,
	"tertiary_link":  true,
}

// an osm object is an address point if it has any of these keys.
var addressKeys = []string{
	"addr:housenumber",
	"addr:housenumber2",
	"addr2:housenumber",
	"addr:full",
}

const (
	earthRadiusKM = 6371.0

	DEFAULT_STREET_RADIUS_METERS = 250.0
)
