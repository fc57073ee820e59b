// Package store owns the durable run log. The whole collection lives under
// a single key of a kv.Store and every mutation rewrites it in full.
package store

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Flyrell/runlog/internal/kv"
	"github.com/Flyrell/runlog/internal/run"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// DefaultKey is the storage key holding the serialized collection.
const DefaultKey = "runData"

// Store is the keyed collection of run records.
type Store struct {
	kv  kv.Store
	key string
	log zerolog.Logger
}

// New returns a Store persisting under key (DefaultKey when empty).
func New(backend kv.Store, key string, logger zerolog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: backend, key: key, log: logger}
}

// LoadAll returns the persisted records in stored order. An absent or
// unparseable blob yields an empty collection; only backend I/O failures
// are returned as errors.
func (s *Store) LoadAll() ([]run.Record, error) {
	blob, ok, err := s.kv.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("reading run log: %w", err)
	}
	if !ok {
		return []run.Record{}, nil
	}

	records, err := decode([]byte(blob))
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("stored run log is unreadable, starting empty")
		return []run.Record{}, nil
	}
	return records, nil
}

// ExistingRecordFor reports the record already logged for date, if any.
// Callers use it to ask for overwrite confirmation before Upsert.
func (s *Store) ExistingRecordFor(date string) (run.Record, bool, error) {
	records, err := s.LoadAll()
	if err != nil {
		return run.Record{}, false, err
	}
	if i := indexOf(records, date); i >= 0 {
		return records[i], true, nil
	}
	return run.Record{}, false, nil
}

// Upsert writes r, replacing the record with the same date in place or
// appending it. The overwrite is unconditional.
func (s *Store) Upsert(r run.Record) error {
	records, err := s.LoadAll()
	if err != nil {
		return err
	}

	i := indexOf(records, r.Date)
	if i >= 0 {
		records[i] = r
	} else {
		records = append(records, r)
	}

	if err := s.save(records); err != nil {
		return err
	}
	s.log.Debug().Str("date", r.Date).Bool("replaced", i >= 0).Int("runs", len(records)).Msg("upserted run")
	return nil
}

// Delete removes the record for date. Deleting an absent date is not an
// error; removed reports whether anything matched.
func (s *Store) Delete(date string) (removed bool, err error) {
	records, err := s.LoadAll()
	if err != nil {
		return false, err
	}

	kept := make([]run.Record, 0, len(records))
	for _, r := range records {
		if r.Date != date {
			kept = append(kept, r)
		}
	}

	if err := s.save(kept); err != nil {
		return false, err
	}
	removed = len(kept) < len(records)
	s.log.Debug().Str("date", date).Bool("removed", removed).Int("runs", len(kept)).Msg("deleted run")
	return removed, nil
}

// ReplaceAll replaces the whole collection with payload, which must be a
// JSON array. Elements are stored verbatim without per-field validation.
// A payload that is not a JSON array fails with *run.FormatError and
// leaves the stored collection untouched. Returns the element count.
func (s *Store) ReplaceAll(payload []byte) (int, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, &run.FormatError{Source: "import", Err: errors.New("top-level value is not an array")}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return 0, &run.FormatError{Source: "import", Err: err}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return 0, &run.FormatError{Source: "import", Err: err}
	}
	if err := s.kv.Set(s.key, buf.String()); err != nil {
		return 0, fmt.Errorf("writing run log: %w", err)
	}

	s.log.Debug().Int("runs", len(items)).Msg("replaced run log")
	return len(items), nil
}

// ExportSnapshot returns the collection as an indented JSON array.
func (s *Store) ExportSnapshot() ([]byte, error) {
	records, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(records, "", "  ")
}

func (s *Store) save(records []run.Record) error {
	if records == nil {
		records = []run.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}
	return nil
}

// decode parses a stored blob. Elements that are not run records are
// skipped so one corrupted entry doesn't hide the rest.
func decode(blob []byte) ([]run.Record, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, &run.FormatError{Source: "stored data", Err: err}
	}

	records := make([]run.Record, 0, len(items))
	for _, item := range items {
		var r run.Record
		if err := json.Unmarshal(item, &r); err != nil {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

func indexOf(records []run.Record, date string) int {
	for i := range records {
		if records[i].Date == date {
			return i
		}
	}
	return -1
}
