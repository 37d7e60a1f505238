package gazetteer

import "strings"

const (
	ADDR_HOUSENUMBER  = "addr:housenumber"
	ADDR_HOUSENUMBER2 = "addr:housenumber2"
	ADDR_STREET       = "addr:street"
	ADDR_STREET2      = "addr:street2"
	ADDR2_HOUSENUMBER = "addr2:housenumber"
	ADDR_HOUSENAME    = "addr:housename"
	ADDR_HN_ORIG      = "addr:hn-orig"
	ADDR_QUARTER      = "addr:quarter"
	ADDR_CITY         = "addr:city"
	ADDR_FULL         = "addr:full"
)

const (
	SCHEME_REGULAR   = "regular"
	SCHEME_HN2_1     = "addr:hn2-1"
	SCHEME_HN2_2     = "addr:hn2-2"
	SCHEME_STREET2_1 = "addr:street2-1"
	SCHEME_STREET2_2 = "addr:street2-2"
	SCHEME_ADDRN_1   = "addrN-1"
	SCHEME_ADDRN_2   = "addrN-2"
)

// Scheme is one interpretation of the address tags of a point.
type Scheme struct {
	ID   string
	Tags map[string]string
}

func newScheme(id string, tags map[string]string) Scheme {
	return Scheme{
		ID:   id,
		Tags: tags,
	}
}

// DetectSchemes splits the tags of an address point into the addressing schemes they encode.
// the checks run in priority order and the first one that matches decides. ambiguous is true
// when a secondary house number is known but the street it belongs to is not, in which case
// the street is dropped from that scheme.
func DetectSchemes(tags map[string]string) (schemes []Scheme, ambiguous bool) {
	if _, ok := tags[ADDR_HOUSENUMBER2]; ok {
		return secondaryHouseNumberSchemes(tags)
	}

	if _, ok := tags[ADDR_STREET2]; ok {
		return splitHouseNumberSchemes(tags), false
	}

	if _, ok := tags[ADDR2_HOUSENUMBER]; ok {
		return secondaryLayerSchemes(tags), false
	}

	return []Scheme{newScheme(SCHEME_REGULAR, copyTags(tags))}, false
}

// addr:housenumber=10 addr:housenumber2=12 [addr:street2=...]
func secondaryHouseNumberSchemes(tags map[string]string) ([]Scheme, bool) {
	schemes := []Scheme{newScheme(SCHEME_HN2_1, copyTags(tags))}

	hn2 := tags[ADDR_HOUSENUMBER2]
	if hn2 == "" {
		return schemes, false
	}

	ambiguous := false
	second := copyTags(tags)
	second[ADDR_HOUSENUMBER] = hn2
	if street2 := tags[ADDR_STREET2]; street2 != "" {
		second[ADDR_STREET] = street2
	} else if _, ok := second[ADDR_STREET]; ok {
		delete(second, ADDR_STREET)
		ambiguous = true
	}

	return append(schemes, newScheme(SCHEME_HN2_2, second)), ambiguous
}

// addr:housenumber=1/2 addr:street=A addr:street2=B
func splitHouseNumberSchemes(tags map[string]string) []Scheme {
	hn := tags[ADDR_HOUSENUMBER]
	split := splitHouseNumber(hn)

	street, street2 := tags[ADDR_STREET], tags[ADDR_STREET2]
	if len(split) != 2 || street == "" || street2 == "" {
		return []Scheme{newScheme(SCHEME_REGULAR, copyTags(tags))}
	}

	first := copyTags(tags)
	first[ADDR_HOUSENUMBER] = split[0]
	first[ADDR_HN_ORIG] = hn

	second := copyTags(tags)
	second[ADDR_HOUSENUMBER] = split[1]
	second[ADDR_STREET] = street2
	second[ADDR_HN_ORIG] = hn

	return []Scheme{
		newScheme(SCHEME_STREET2_1, first),
		newScheme(SCHEME_STREET2_2, second),
	}
}

// addr:housenumber=.. addr2:housenumber=.. addr:street2=..
func secondaryLayerSchemes(tags map[string]string) []Scheme {
	second := copyTags(tags)
	second[ADDR_HOUSENUMBER] = tags[ADDR2_HOUSENUMBER]
	second[ADDR_STREET] = tags[ADDR_STREET2]

	return []Scheme{
		newScheme(SCHEME_ADDRN_1, copyTags(tags)),
		newScheme(SCHEME_ADDRN_2, second),
	}
}

// splitHouseNumber splits on '/' and ';', empty tokens are dropped.
func splitHouseNumber(hn string) []string {
	return strings.FieldsFunc(hn, func(r rune) bool {
		return r == '/' || r == ';'
	})
}
