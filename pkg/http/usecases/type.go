package usecases

import (
	"github.com/lintang-b-s/osm-gazetteer/pkg/datastructure"
)

type RecordStore interface {
	GetAddresses(id string) (datastructure.AddressDoc, error)
	GetBoundary(id string) (datastructure.BoundaryDoc, error)
}
