package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	f := NewFileStore(filepath.Join(t.TempDir(), "dashboard-data.json"))

	res := f.Load()
	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Nil(t, res.Data)
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dashboard-data.json")
	f := NewFileStore(path)
	f.now = func() time.Time { return time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC) }

	res := f.Save(DefaultData())
	require.True(t, res.Success, res.Error)
	assert.Nil(t, res.Data)

	loaded := f.Load()
	require.True(t, loaded.Success, loaded.Error)
	require.NotNil(t, loaded.Data)
	assert.Len(t, loaded.Data.Customers, 3)
	assert.Len(t, loaded.Data.Partnerships, 4)
	assert.Equal(t, "Brain Water", loaded.Data.Products[1].Name)
	assert.Equal(t, f.now(), loaded.Data.SavedAt)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard-data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	res := NewFileStore(path).Load()
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "decode snapshot")
}

func TestFileStore_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	res := NewFileStore(filepath.Join(blocker, "data.json")).Save(Snapshot{})
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestAutosaver(t *testing.T) {
	f := NewFileStore(filepath.Join(t.TempDir(), "dashboard-data.json"))
	var calls atomic.Int32
	source := func() Snapshot {
		n := calls.Add(1)
		return Snapshot{Customers: []models.Customer{{ID: "c", ProgressScore: int(n)}}}
	}

	a := NewAutosaver(f, 10*time.Millisecond, source)
	a.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)

	res := a.Stop()
	require.True(t, res.Success, res.Error)
	final := calls.Load()

	loaded := f.Load()
	require.NotNil(t, loaded.Data)
	assert.Equal(t, int(final), loaded.Data.Customers[0].ProgressScore, "final save must hold the latest data")

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, final, calls.Load(), "no saves after Stop")
	assert.True(t, a.Stop().Success)
}

func TestState_RoundTrip(t *testing.T) {
	st := NewState(repo.NewMemoryStore())
	st.Replace(DefaultData())

	snap := st.Snapshot()
	assert.Len(t, snap.Customers, 3)
	assert.Len(t, snap.Products, 3)
	assert.Len(t, snap.Campaigns, 2)
	assert.NotNil(t, snap.Orders)

	n, err := st.Store().Reports().CountCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	st.Replace(Snapshot{})
	empty := st.Snapshot()
	assert.Empty(t, empty.Customers)
	assert.NotNil(t, empty.Partnerships)
}
