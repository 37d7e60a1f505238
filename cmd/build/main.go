package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/lintang-b-s/osm-gazetteer/pkg/build"
	"github.com/lintang-b-s/osm-gazetteer/pkg/di/config"
	shortcontext "github.com/lintang-b-s/osm-gazetteer/pkg/di/context"
	gazetteer_di "github.com/lintang-b-s/osm-gazetteer/pkg/di/gazetteer"
	kv_di "github.com/lintang-b-s/osm-gazetteer/pkg/di/kv"
	logger_di "github.com/lintang-b-s/osm-gazetteer/pkg/di/logger"
	postgres_di "github.com/lintang-b-s/osm-gazetteer/pkg/di/postgres"
	"github.com/lintang-b-s/osm-gazetteer/pkg/geo"
	"github.com/lintang-b-s/osm-gazetteer/pkg/sink"

	"go.uber.org/zap"
)

var (
	mapFile  = flag.String("f", "surakarta.osm.pbf", "openstreetmap pbf file to build the gazetteer from")
	dumpFile = flag.String("o", "", "json lines dump of every record, gzip compressed when it ends with .gz")
	dbPath   = flag.String("db", "", "bbolt record store, DB_PATH when empty")
	postgres = flag.Bool("pg", false, "also write records to POSTGRES_DSN")
)

func main() {
	flag.Parse()

	ctx, cancel, _ := shortcontext.New()
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger, syncLog, err := logger_di.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer syncLog()

	extract, err := geo.ParseOSM(ctx, *mapFile)
	if err != nil {
		logger.Fatal("failed to parse osm file", zap.String("file", *mapFile), zap.Error(err))
	}

	kv, closeKV, err := kv_di.Open(cfg.DBPath, false)
	if err != nil {
		logger.Fatal("failed to open record store", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer closeKV()

	builder := build.NewBuilder(logger, gazetteer_di.New(logger, cfg), build.Config{
		Workers:            cfg.Workers,
		StreetRadiusMeters: cfg.StreetRadiusMeters,
		Source:             filepath.Base(*mapFile),
		ShowProgress:       true,
	})
	sinks := []build.Sink{kv}

	if *dumpFile != "" {
		dump, err := sink.NewJSONLWriter(*dumpFile, builder.RunID(), filepath.Base(*mapFile))
		if err != nil {
			logger.Fatal("failed to create dump", zap.String("file", *dumpFile), zap.Error(err))
		}
		sinks = append(sinks, dump)
	}

	if *postgres {
		pool, closePool, err := postgres_di.New(ctx, cfg.PostgresDSN)
		if err != nil {
			logger.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer closePool()

		pg := sink.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal("failed to create postgres schema", zap.Error(err))
		}
		sinks = append(sinks, pg)
	}

	builder.AddSinks(sinks...)
	stats, runErr := builder.Run(ctx, extract)

	for _, s := range sinks {
		if err := s.Close(); err != nil {
			logger.Error("failed to close sink", zap.Error(err))
		}
	}
	if runErr != nil {
		logger.Fatal("build failed", zap.String("run_id", stats.RunID), zap.Error(runErr))
	}
}
