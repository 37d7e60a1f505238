package build

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/lintang-b-s/osm-gazetteer/pkg/concurrent"
	"github.com/lintang-b-s/osm-gazetteer/pkg/datastructure"
	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"
	"github.com/lintang-b-s/osm-gazetteer/pkg/geo"
	"github.com/lintang-b-s/osm-gazetteer/pkg/kvdb"

	"github.com/k0kubun/go-ansi"
	"github.com/oklog/ulid/v2"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	BATCH_SIZE = 5000
)

// Sink receives batches of built documents. implementations must be safe for sequential calls from one goroutine.
type Sink interface {
	WriteAddresses(ctx context.Context, docs []datastructure.AddressDoc) error
	WriteBoundaries(ctx context.Context, docs []datastructure.BoundaryDoc) error
	Close() error
}

type metaWriter interface {
	PutMeta(meta kvdb.BuildMeta) error
}

type Config struct {
	Workers            int
	BatchSize          int
	StreetRadiusMeters float64
	Source             string
	ShowProgress       bool
}

func (c Config) withDefaults() Config {
	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}
	if c.BatchSize < 1 {
		c.BatchSize = BATCH_SIZE
	}
	if c.StreetRadiusMeters <= 0 {
		c.StreetRadiusMeters = geo.DEFAULT_STREET_RADIUS_METERS
	}
	return c
}

type Stats struct {
	RunID      string
	Addresses  int
	Records    int
	Boundaries int
	Duration   time.Duration
}

type Builder struct {
	log       *zap.Logger
	assembler *gazetteer.Assembler
	cfg       Config
	sinks     []Sink
	runID     string
}

func NewBuilder(log *zap.Logger, assembler *gazetteer.Assembler, cfg Config, sinks ...Sink) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		log:       log,
		assembler: assembler,
		cfg:       cfg.withDefaults(),
		sinks:     sinks,
		runID:     ulid.Make().String(),
	}
}

// AddSinks must be called before Run.
func (b *Builder) AddSinks(sinks ...Sink) {
	b.sinks = append(b.sinks, sinks...)
}

func (b *Builder) RunID() string {
	return b.runID
}

// Run labels every named boundary with its ancestors, then assembles the full addresses of every address point.
// sinks are not closed by Run.
func (b *Builder) Run(ctx context.Context, extract *geo.Extract) (Stats, error) {
	start := time.Now()
	stats := Stats{RunID: b.runID}
	log := b.log.With(zap.String("run_id", b.runID))

	idx := geo.NewSpatialIndex(extract.Boundaries, extract.Streets)
	log.Info("spatial index built",
		zap.Int("boundaries", idx.BoundariesCount()),
		zap.Int("streets", len(extract.Streets)),
		zap.Int("address_points", len(extract.AddressPoints)))

	boundaries, err := b.labelBoundaries(ctx, idx, extract.Boundaries)
	if err != nil {
		return stats, err
	}
	stats.Boundaries = boundaries

	addresses, records, err := b.assembleAddresses(ctx, idx, extract.AddressPoints)
	if err != nil {
		return stats, err
	}
	stats.Addresses = addresses
	stats.Records = records
	stats.Duration = time.Since(start)

	meta := kvdb.BuildMeta{
		RunID:      b.runID,
		Source:     b.cfg.Source,
		Addresses:  addresses,
		Boundaries: boundaries,
		FinishedAt: time.Now().Unix(),
	}
	for _, s := range b.sinks {
		if mw, ok := s.(metaWriter); ok {
			if err := mw.PutMeta(meta); err != nil {
				return stats, fmt.Errorf("build: failed to store build meta: %w", err)
			}
		}
	}

	log.Info("build finished",
		zap.Int("addresses", stats.Addresses),
		zap.Int("records", stats.Records),
		zap.Int("boundaries", stats.Boundaries),
		zap.Duration("duration", stats.Duration))
	return stats, nil
}

func (b *Builder) labelBoundaries(ctx context.Context, idx *geo.SpatialIndex, boundaries []geo.Boundary) (int, error) {
	batch := make([]datastructure.BoundaryDoc, 0, b.cfg.BatchSize)
	count := 0
	for _, bndry := range boundaries {
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		default:
		}

		name, ok := bndry.Tag(gazetteer.PRIMARY_NAME_KEY)
		if !ok {
			continue
		}

		label := b.assembler.AssembleBoundaries(idx.Ancestors(bndry))
		lp := geo.LabelPoint(bndry.Polygon)
		batch = append(batch, datastructure.NewBoundaryDoc(bndry.ID, bndry.Level, name, lp.Lat(), lp.Lon(), label))
		count++

		if len(batch) == b.cfg.BatchSize {
			if err := b.writeBoundaries(ctx, batch); err != nil {
				return count, err
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := b.writeBoundaries(ctx, batch); err != nil {
			return count, err
		}
	}
	return count, nil
}

func (b *Builder) assembleAddresses(ctx context.Context, idx *geo.SpatialIndex, points []geo.AddressPoint) (int, int, error) {
	var bar *progressbar.ProgressBar
	if b.cfg.ShowProgress {
		bar = progressbar.NewOptions(len(points),
			progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("[cyan][2/2]Assembling addresses..."),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	radius := b.cfg.StreetRadiusMeters
	assemble := func(p geo.AddressPoint) datastructure.AddressDoc {
		records := b.assembler.Assemble(p.Entity, idx.Boundaries(p.Location), idx.NearbyStreets(p.Location, radius))
		return datastructure.NewAddressDoc(p.ID, p.Location.Lat(), p.Location.Lon(), records)
	}

	workers := concurrent.NewBackgroundWorker[geo.AddressPoint, datastructure.AddressDoc](b.cfg.Workers, b.cfg.Workers*4, assemble)
	workers.Start()

	g, gctx := errgroup.WithContext(ctx)
	feedCtx, stopFeeding := context.WithCancel(gctx)
	defer stopFeeding()

	g.Go(func() error {
		defer workers.Close()
		for _, p := range points {
			select {
			case <-feedCtx.Done():
				if err := gctx.Err(); err != nil {
					return err
				}
				return nil
			default:
			}
			workers.TiggerProcessing(p)
		}
		return nil
	})

	addresses, records := 0, 0
	g.Go(func() error {
		// keeps draining after a failed write so the workers can exit.
		var writeErr error
		batch := make([]datastructure.AddressDoc, 0, b.cfg.BatchSize)
		for doc := range workers.Results() {
			if bar != nil {
				_ = bar.Add(1)
			}
			if writeErr != nil {
				continue
			}
			addresses++
			records += len(doc.Addresses)
			batch = append(batch, doc)
			if len(batch) == b.cfg.BatchSize {
				writeErr = b.writeAddresses(gctx, batch)
				batch = batch[:0]
				if writeErr != nil {
					stopFeeding()
				}
			}
		}
		if writeErr == nil && len(batch) > 0 {
			writeErr = b.writeAddresses(gctx, batch)
		}
		return writeErr
	})

	if err := g.Wait(); err != nil {
		return addresses, records, err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return addresses, records, nil
}

func (b *Builder) writeAddresses(ctx context.Context, docs []datastructure.AddressDoc) error {
	for _, s := range b.sinks {
		if err := s.WriteAddresses(ctx, docs); err != nil {
			return fmt.Errorf("build: failed to write addresses: %w", err)
		}
	}
	return nil
}

func (b *Builder) writeBoundaries(ctx context.Context, docs []datastructure.BoundaryDoc) error {
	for _, s := range b.sinks {
		if err := s.WriteBoundaries(ctx, docs); err != nil {
			return fmt.Errorf("build: failed to write boundaries: %w", err)
		}
	}
	return nil
}
