package kvdb

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/lintang-b-s/osm-gazetteer/pkg"
	"github.com/lintang-b-s/osm-gazetteer/pkg/datastructure"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_ADDRESS_BUCKET  = "addresses"
	BBOLTDB_BOUNDARY_BUCKET = "boundaries"
	BBOLTDB_META_BUCKET     = "meta"

	META_KEY = "build"
)

// BuildMeta describes the build that wrote the store.
type BuildMeta struct {
	RunID      string `msgpack:"run_id" json:"run_id"`
	Source     string `msgpack:"source" json:"source"`
	Addresses  int    `msgpack:"addresses" json:"addresses"`
	Boundaries int    `msgpack:"boundaries" json:"boundaries"`
	FinishedAt int64  `msgpack:"finished_at" json:"finished_at"`
}

// KVDB stores assembled address records and boundary labels in bbolt, values are msgpack encoded.
type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

// NewKVDB creates the buckets unless db was opened read only.
func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	if db.IsReadOnly() {
		return &KVDB{db, sync.Mutex{}}, nil
	}
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range []string{BBOLTDB_ADDRESS_BUCKET, BBOLTDB_BOUNDARY_BUCKET, BBOLTDB_META_BUCKET} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &KVDB{db, sync.Mutex{}}, nil
}

// WriteAddresses saves a batch of address docs in a single transaction.
func (db *KVDB) WriteAddresses(_ context.Context, docs []datastructure.AddressDoc) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Batch(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_ADDRESS_BUCKET))
		for _, doc := range docs {
			buf, err := msgpack.Marshal(&doc)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(doc.ID), buf); err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *KVDB) GetAddresses(id string) (doc datastructure.AddressDoc, err error) {
	err = db.db.View(func(tx *bbolt.Tx) error {
		buf := get(tx, BBOLTDB_ADDRESS_BUCKET, id)
		if buf == nil {
			return pkg.WrapErrorf(ErrorsKeyNotExists, pkg.ErrNotFound, "address point %s not found", id)
		}
		return msgpack.Unmarshal(buf, &doc)
	})
	return
}

func (db *KVDB) WriteBoundaries(_ context.Context, docs []datastructure.BoundaryDoc) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Batch(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BOUNDARY_BUCKET))
		for _, doc := range docs {
			buf, err := msgpack.Marshal(&doc)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(doc.ID), buf); err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *KVDB) GetBoundary(id string) (doc datastructure.BoundaryDoc, err error) {
	err = db.db.View(func(tx *bbolt.Tx) error {
		buf := get(tx, BBOLTDB_BOUNDARY_BUCKET, id)
		if buf == nil {
			return pkg.WrapErrorf(ErrorsKeyNotExists, pkg.ErrNotFound, "boundary %s not found", id)
		}
		return msgpack.Unmarshal(buf, &doc)
	})
	return
}

func (db *KVDB) PutMeta(meta BuildMeta) error {
	return db.db.Update(func(tx *bbolt.Tx) error {
		buf, err := msgpack.Marshal(&meta)
		if err != nil {
			return err
		}
		return tx.Bucket([]byte(BBOLTDB_META_BUCKET)).Put([]byte(META_KEY), buf)
	})
}

func (db *KVDB) GetMeta() (meta BuildMeta, err error) {
	err = db.db.View(func(tx *bbolt.Tx) error {
		buf := get(tx, BBOLTDB_META_BUCKET, META_KEY)
		if buf == nil {
			return pkg.WrapErrorf(ErrorsKeyNotExists, pkg.ErrNotFound, "store has no build metadata")
		}
		return msgpack.Unmarshal(buf, &meta)
	})
	return
}

func get(tx *bbolt.Tx, bucket, key string) []byte {
	b := tx.Bucket([]byte(bucket))
	if b == nil {
		return nil
	}
	return b.Get([]byte(key))
}

// Close is a no-op, the bolt file is owned by whoever opened it.
func (db *KVDB) Close() error {
	return nil
}
