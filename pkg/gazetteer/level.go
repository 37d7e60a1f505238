package gazetteer

import "strings"

// NoLevel is returned by LevelOfBoundary for entities that are neither a known place nor
// an administrative boundary with a mapped admin_level.
const NoLevel = -1

const (
	LEVEL_HOUSE_NUMBER = 10
	LEVEL_STREET       = 20
	LEVEL_QUARTER      = 30
	LEVEL_CITY         = 70
)

// type2Level maps an entity type key to its specificity level. lower level = more local.
// initialized once, read only afterwards.
var type2Level = map[string]int{
	"hn":     LEVEL_HOUSE_NUMBER,
	"street": LEVEL_STREET,

	"place:quarter":           LEVEL_QUARTER,
	"place:neighbourhood":     40,
	"place:suburb":            50,
	"place:allotments":        60,
	"place:locality":          LEVEL_CITY,
	"place:isolated_dwelling": LEVEL_CITY,
	"place:village":           LEVEL_CITY,
	"place:hamlet":            LEVEL_CITY,
	"place:town":              LEVEL_CITY,
	"place:city":              LEVEL_CITY,

	"boundary:8": 80,
	"boundary:6": 90,
	"boundary:5": 100,
	"boundary:4": 110,
	"boundary:3": 120,
	"boundary:2": 130,
}

// LevelOf returns the level of typeKey, e.g. "hn", "street", "place:town" or "boundary:4".
func LevelOf(typeKey string) (int, bool) {
	lvl, ok := type2Level[typeKey]
	return lvl, ok
}

// LevelOfBoundary resolves the level of a boundary candidate. place tag wins over admin_level.
// Unknown or malformed values (e.g. admin_level=foo) give NoLevel.
func LevelOfBoundary(tags map[string]string) int {
	if lvl, ok := type2Level["place:"+tags["place"]]; ok {
		return lvl
	}

	if lvl, ok := type2Level["boundary:"+strings.TrimSpace(tags["admin_level"])]; ok {
		return lvl
	}

	return NoLevel
}
