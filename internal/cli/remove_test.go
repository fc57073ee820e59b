package cli

import (
	"bytes"
	"testing"

	"github.com/Flyrell/runlog/internal/run"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRemove(st *store.Store, dateArg string, confirm ConfirmFunc) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := removeCmd
	cmd.SetOut(stdout)
	defer cmd.SetOut(nil)

	err := runRemove(cmd, st, fixedToday(), dateArg, confirm)
	return stdout.String(), err
}

func removeFixtures() []run.Record {
	return []run.Record{
		{Date: "2024-03-08", Distance: 5, Time: 25},
		{Date: "2024-03-09", Distance: 8, Time: 44, Type: "Tempo"},
	}
}

func TestRemoveConfirmed(t *testing.T) {
	st := newTestStore(t, removeFixtures()...)

	stdout, err := execRemove(st, "2024-03-09", AlwaysYes())

	require.NoError(t, err)
	assert.Contains(t, stdout, "8 km in 44 min")
	assert.Contains(t, stdout, "removed run on 2024-03-09")

	records := loadAll(t, st)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-03-08", records[0].Date)
}

func TestRemoveDeclined(t *testing.T) {
	st := newTestStore(t, removeFixtures()...)

	stdout, err := execRemove(st, "2024-03-09", declineConfirm)

	require.NoError(t, err)
	assert.Contains(t, stdout, "cancelled")
	assert.Len(t, loadAll(t, st), 2)
}

func TestRemoveRelativeDate(t *testing.T) {
	st := newTestStore(t, removeFixtures()...)

	_, err := execRemove(st, "friday", AlwaysYes())

	require.NoError(t, err)
	records := loadAll(t, st)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-03-09", records[0].Date)
}

func TestRemoveNotFound(t *testing.T) {
	st := newTestStore(t, removeFixtures()...)

	_, err := execRemove(st, "2024-01-01", AlwaysYes())

	require.Error(t, err)
	assert.Equal(t, "no run logged on 2024-01-01", err.Error())
	assert.Len(t, loadAll(t, st), 2)
}
