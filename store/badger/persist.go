// Copyright 2025 Clinsight Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package badger persists built evidence stores in BadgerDB so the corpus
// does not have to be re-embedded on every start.
package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	badgerdb "github.com/dgraph-io/badger/v4"

	"github.com/clinsight/clinsight/core"
	"github.com/clinsight/clinsight/store"
)

// StoreRepository persists and restores evidence stores.
type StoreRepository struct {
	backend *Backend
	logger  *slog.Logger
}

// NewStoreRepository creates a repository over the given backend.
func NewStoreRepository(backend *Backend) (*StoreRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend required")
	}
	return &StoreRepository{
		backend: backend,
		logger:  slog.Default().With("component", "store-repository"),
	}, nil
}

// SaveStore persists the store's manifest and records, replacing any
// previously persisted store.
func (r *StoreRepository) SaveStore(ctx context.Context, s *store.EvidenceStore) error {
	records := s.Records()
	manifest := s.Manifest()

	r.logger.Info("persisting evidence store",
		"passages", manifest.Passages,
		"dimensions", manifest.Dimensions,
		"fingerprint", manifest.Fingerprint)

	err := r.backend.WithTx(func(tx *badgerdb.Txn) error {
		if err := r.deleteRecords(tx); err != nil {
			return err
		}
		if err := tx.Set(makeManifestKey(), store.MarshalManifest(&manifest)); err != nil {
			return err
		}
		for i := range records {
			if err := tx.Set(makePassageRecordKey(i), store.MarshalPassageRecord(&records[i])); err != nil {
				return err
			}
		}
		return nil
	}, true)
	if err != nil {
		r.logger.Error("failed to persist evidence store", "err", err)
		return err
	}
	return nil
}

// LoadStore restores a previously persisted evidence store.
// Returns store.ErrStoreNotFound if nothing has been persisted, and
// store.ErrManifestMismatch if the records disagree with the manifest.
func (r *StoreRepository) LoadStore(ctx context.Context) (*store.EvidenceStore, error) {
	var manifest *core.StoreManifest
	var records []core.PassageRecord

	err := r.backend.WithTx(func(tx *badgerdb.Txn) error {
		item, err := tx.Get(makeManifestKey())
		if err != nil {
			if errors.Is(err, badgerdb.ErrKeyNotFound) {
				return store.ErrStoreNotFound
			}
			return err
		}
		if err := item.Value(func(val []byte) error {
			var err error
			manifest, err = store.UnmarshalManifest(val)
			return err
		}); err != nil {
			return err
		}

		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = []byte(passageRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.PassageRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = store.UnmarshalPassageRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			records = append(records, *record)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	if len(records) != manifest.Passages {
		return nil, fmt.Errorf("%w: manifest lists %d passages, found %d",
			store.ErrManifestMismatch, manifest.Passages, len(records))
	}

	restored, err := store.New(records, manifest.BuiltAt)
	if err != nil {
		return nil, err
	}

	m := restored.Manifest()
	if m.Fingerprint != manifest.Fingerprint {
		return nil, fmt.Errorf("%w: fingerprint %d, expected %d",
			store.ErrManifestMismatch, m.Fingerprint, manifest.Fingerprint)
	}
	if m.Dimensions != manifest.Dimensions {
		return nil, fmt.Errorf("%w: dimensions %d, expected %d",
			store.ErrManifestMismatch, m.Dimensions, manifest.Dimensions)
	}

	r.logger.Info("restored evidence store",
		"passages", m.Passages,
		"dimensions", m.Dimensions,
		"fingerprint", m.Fingerprint)

	return restored, nil
}

// deleteRecords removes all persisted passage records within the transaction.
func (r *StoreRepository) deleteRecords(tx *badgerdb.Txn) error {
	opts := badgerdb.DefaultIteratorOptions
	opts.Prefix = []byte(passageRecordPrefix + ":")
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var keys [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
