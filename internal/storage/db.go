// Package storage provides the in-memory timer collection for Countdown.
// It is backed by Badger in in-memory mode, so nothing outlives the process.
package storage

import (
	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/countdown/internal/model"
)

// DefaultSequenceBandwidth is how many ids the timer sequence leases at once.
const DefaultSequenceBandwidth = 100

// DB wraps an in-memory Badger database.
type DB struct {
	db  *badger.DB
	seq *badger.Sequence
}

// Options configures the database.
type Options struct {
	// SequenceBandwidth is the id lease size. Zero uses DefaultSequenceBandwidth.
	SequenceBandwidth uint64
}

// Open creates a new in-memory database.
func Open(opts Options) (*DB, error) {
	badgerOpts := badger.DefaultOptions("").WithInMemory(true)

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}

	bandwidth := opts.SequenceBandwidth
	if bandwidth == 0 {
		bandwidth = DefaultSequenceBandwidth
	}
	seq, err := db.GetSequence([]byte(model.KeyTimerSeq), bandwidth)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db, seq: seq}, nil
}

// Close releases the id sequence and closes the database.
func (d *DB) Close() error {
	if d.seq != nil {
		if err := d.seq.Release(); err != nil {
			d.db.Close()
			return err
		}
		d.seq = nil
	}
	return d.db.Close()
}

// NextID returns the next timer id. Ids start at 1 and are never reused.
func (d *DB) NextID() (uint64, error) {
	if d.seq == nil {
		return 0, badger.ErrDBClosed
	}
	n, err := d.seq.Next()
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

