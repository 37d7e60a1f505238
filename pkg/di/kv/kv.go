package kv_di

import (
	"time"

	"github.com/lintang-b-s/osm-gazetteer/pkg/di/config"
	"github.com/lintang-b-s/osm-gazetteer/pkg/kvdb"

	bolt "go.etcd.io/bbolt"
)

// New opens the record store at DB_PATH read only, the build must have created it.
func New(cfg *config.Config) (*kvdb.KVDB, func(), error) {
	return Open(cfg.DBPath, true)
}

// Open creates the file and its buckets when readOnly is false.
func Open(path string, readOnly bool) (*kvdb.KVDB, func(), error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second, ReadOnly: readOnly})
	if err != nil {
		return nil, nil, err
	}

	bboltKV, err := kvdb.NewKVDB(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = db.Close()
	}

	return bboltKV, cleanup, nil
}
