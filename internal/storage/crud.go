package storage

import (
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/manav03panchal/countdown/internal/model"
)

var (
	// ErrKeyNotFound is returned when a key is not found in the database.
	ErrKeyNotFound = errors.New("key not found")
)

// IsErrKeyNotFound returns true if the error is a key not found error.
func IsErrKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, badger.ErrKeyNotFound)
}

// Get retrieves a value by key and unmarshals it into v.
func (d *DB) Get(key string, v model.Model) error {
	return d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, v); err != nil {
				return err
			}
			v.SetKey(key)
			return nil
		})
	})
}

// Set stores a model in the database.
func (d *DB) Set(v model.Model) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(v.GetKey()), data)
	})
}

// Delete removes a key from the database. It reports whether the key existed.
func (d *DB) Delete(key string) (bool, error) {
	var existed bool
	err := d.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		existed = true
		return txn.Delete([]byte(key))
	})
	return existed, err
}

// ListByPrefix retrieves all keys with the given prefix.
func (d *DB) ListByPrefix(prefix string) ([]string, error) {
	var keys []string
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

// GetAllByPrefix retrieves all values with the given prefix in key order.
func GetAllByPrefix[T model.Model](d *DB, prefix string, newFunc func() T) ([]T, error) {
	var results []T
	err := d.db.View(func(txn *badger.Txn) error {
		var err error
		results, err = scanPrefix(txn, prefix, newFunc)
		return err
	})
	return results, err
}

// UpdateAllByPrefix applies fn to every value with the given prefix inside a
// single read-write transaction. Values for which fn returns true are written
// back. Either every change commits or none does.
func UpdateAllByPrefix[T model.Model](d *DB, prefix string, newFunc func() T, fn func(T) bool) error {
	return d.db.Update(func(txn *badger.Txn) error {
		values, err := scanPrefix(txn, prefix, newFunc)
		if err != nil {
			return err
		}

		for _, v := range values {
			if !fn(v) {
				continue
			}
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(v.GetKey()), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// scanPrefix decodes every value under prefix. The iterator is closed before
// returning so the caller may write in the same transaction.
func scanPrefix[T model.Model](txn *badger.Txn, prefix string, newFunc func() T) ([]T, error) {
	var results []T

	opts := badger.DefaultIteratorOptions
	opts.PrefetchSize = 100
	it := txn.NewIterator(opts)
	defer it.Close()

	prefixBytes := []byte(prefix)
	for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
		item := it.Item()
		key := string(item.KeyCopy(nil))
		err := item.Value(func(val []byte) error {
			v := newFunc()
			if err := json.Unmarshal(val, v); err != nil {
				return err
			}
			v.SetKey(key)
			results = append(results, v)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
