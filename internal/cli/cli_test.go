package cli

import (
	"testing"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/kv"
	"github.com/Flyrell/runlog/internal/run"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fixedToday is a Sunday.
func fixedToday() calendar.Day {
	return calendar.Date(2024, 3, 10)
}

func newTestStore(t *testing.T, records ...run.Record) *store.Store {
	t.Helper()
	st := store.New(kv.NewMemoryStore(), "", zerolog.Nop())
	for _, r := range records {
		require.NoError(t, st.Upsert(r))
	}
	return st
}

func loadAll(t *testing.T, st *store.Store) []run.Record {
	t.Helper()
	records, err := st.LoadAll()
	require.NoError(t, err)
	return records
}
