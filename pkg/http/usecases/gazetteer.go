package usecases

import (
	"context"

	"github.com/lintang-b-s/osm-gazetteer/pkg/datastructure"
	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"

	"go.uber.org/zap"
)

type GazetteerService struct {
	log       *zap.Logger
	assembler *gazetteer.Assembler
	store     RecordStore
}

func New(log *zap.Logger, assembler *gazetteer.Assembler, store RecordStore) *GazetteerService {
	return &GazetteerService{
		log:       log,
		assembler: assembler,
		store:     store,
	}
}

// Assemble uses the configured language when lang is empty.
func (s *GazetteerService) Assemble(point gazetteer.Entity, boundaries, streets []gazetteer.Entity, lang string) []gazetteer.Record {
	return s.forLang(lang).Assemble(point, boundaries, streets)
}

func (s *GazetteerService) LabelBoundaries(boundaries []gazetteer.Entity, lang string) gazetteer.Record {
	return s.forLang(lang).AssembleBoundaries(boundaries)
}

func (s *GazetteerService) Addresses(ctx context.Context, id string) (datastructure.AddressDoc, error) {
	if err := ctx.Err(); err != nil {
		return datastructure.AddressDoc{}, err
	}
	return s.store.GetAddresses(id)
}

func (s *GazetteerService) Boundary(ctx context.Context, id string) (datastructure.BoundaryDoc, error) {
	if err := ctx.Err(); err != nil {
		return datastructure.BoundaryDoc{}, err
	}
	return s.store.GetBoundary(id)
}

func (s *GazetteerService) forLang(lang string) *gazetteer.Assembler {
	if lang == "" {
		return s.assembler
	}
	return s.assembler.ForLang(lang)
}
