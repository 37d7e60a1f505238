package controllers

import (
	"context"

	"github.com/lintang-b-s/osm-gazetteer/pkg/datastructure"
	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"
)

type GazetteerService interface {
	Assemble(point gazetteer.Entity, boundaries, streets []gazetteer.Entity, lang string) []gazetteer.Record
	LabelBoundaries(boundaries []gazetteer.Entity, lang string) gazetteer.Record
	Addresses(ctx context.Context, id string) (datastructure.AddressDoc, error)
	Boundary(ctx context.Context, id string) (datastructure.BoundaryDoc, error)
}
