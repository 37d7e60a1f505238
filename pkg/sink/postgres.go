package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lintang-b-s/osm-gazetteer/pkg/datastructure"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS gazetteer_addresses (
		id        TEXT NOT NULL,
		seq       INT NOT NULL,
		scheme    TEXT NOT NULL,
		full_text TEXT,
		parts     JSONB NOT NULL,
		lat       DOUBLE PRECISION NOT NULL,
		lon       DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (id, seq)
	)`,
	`CREATE TABLE IF NOT EXISTS gazetteer_boundaries (
		id        TEXT PRIMARY KEY,
		lvl       INT NOT NULL,
		name      TEXT NOT NULL,
		full_text TEXT,
		parts     JSONB NOT NULL,
		lat       DOUBLE PRECISION NOT NULL,
		lon       DOUBLE PRECISION NOT NULL
	)`,
}

const (
	upsertAddressSQL = `
		INSERT INTO gazetteer_addresses (id, seq, scheme, full_text, parts, lat, lon)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)
		ON CONFLICT (id, seq) DO UPDATE SET
			scheme = EXCLUDED.scheme,
			full_text = EXCLUDED.full_text,
			parts = EXCLUDED.parts,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon`

	upsertBoundarySQL = `
		INSERT INTO gazetteer_boundaries (id, lvl, name, full_text, parts, lat, lon)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			lvl = EXCLUDED.lvl,
			name = EXCLUDED.name,
			full_text = EXCLUDED.full_text,
			parts = EXCLUDED.parts,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon`
)

// Postgres writes records into gazetteer_addresses (one row per record) and gazetteer_boundaries.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := p.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: failed to create schema: %w", err)
		}
	}
	return nil
}

func (p *Postgres) WriteAddresses(ctx context.Context, docs []datastructure.AddressDoc) error {
	batch := &pgx.Batch{}
	for _, doc := range docs {
		for seq, rec := range doc.Addresses {
			parts, err := json.Marshal(rec.Parts)
			if err != nil {
				return fmt.Errorf("postgres: failed to encode parts of %s: %w", doc.ID, err)
			}
			batch.Queue(upsertAddressSQL, doc.ID, seq, rec.Scheme, rec.Text, string(parts), doc.Lat, doc.Lon)
		}
	}
	return p.send(ctx, batch)
}

func (p *Postgres) WriteBoundaries(ctx context.Context, docs []datastructure.BoundaryDoc) error {
	batch := &pgx.Batch{}
	for _, doc := range docs {
		parts, err := json.Marshal(doc.Label.Parts)
		if err != nil {
			return fmt.Errorf("postgres: failed to encode parts of %s: %w", doc.ID, err)
		}
		batch.Queue(upsertBoundarySQL, doc.ID, doc.Level, doc.Name, doc.Label.Text, string(parts), doc.Lat, doc.Lon)
	}
	return p.send(ctx, batch)
}

func (p *Postgres) send(ctx context.Context, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	br := p.db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("postgres: failed to execute batch: %w", err)
		}
	}
	return br.Close()
}

// Close does not close the pool, it belongs to the caller.
func (p *Postgres) Close() error {
	return nil
}
