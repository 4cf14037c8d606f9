/*
File    : golox/history/history_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RecordAndRecent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "session.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record("print 1;", "1"))
	require.NoError(t, store.Record("print 2;", "2"))

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "print 2;", entries[0].Line)
	assert.Equal(t, "print 1;", entries[1].Line)
}

func TestStore_RecentRespectsLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "session.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record("x;", "nil"))
	}
	entries, err := store.Recent(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
