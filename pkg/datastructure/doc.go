package datastructure

import "github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"

// AddressDoc model info
// @Description address point with every full address built for it. one record per addressing scheme.
type AddressDoc struct {
	ID        string             `json:"id" msgpack:"id"`   // osm id of the address point, e.g. node/123
	Lat       float64            `json:"lat" msgpack:"lat"` // latitude of the point, centroid for buildings
	Lon       float64            `json:"lon" msgpack:"lon"`
	Addresses []gazetteer.Record `json:"addresses" msgpack:"addresses"`
}

func NewAddressDoc(id string, lat, lon float64, addresses []gazetteer.Record) AddressDoc {
	return AddressDoc{
		ID:        id,
		Lat:       lat,
		Lon:       lon,
		Addresses: addresses,
	}
}

// BoundaryDoc model info
// @Description administrative/place boundary labeled with the names of its ancestors.
type BoundaryDoc struct {
	ID    string           `json:"id" msgpack:"id"`
	Level int              `json:"lvl" msgpack:"lvl"`
	Name  string           `json:"name" msgpack:"name"`
	Lat   float64          `json:"lat" msgpack:"lat"` // label point
	Lon   float64          `json:"lon" msgpack:"lon"`
	Label gazetteer.Record `json:"label" msgpack:"label"`
}

func NewBoundaryDoc(id string, level int, name string, lat, lon float64, label gazetteer.Record) BoundaryDoc {
	return BoundaryDoc{
		ID:    id,
		Level: level,
		Name:  name,
		Lat:   lat,
		Lon:   lon,
		Label: label,
	}
}
