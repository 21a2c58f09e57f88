package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestSaveRunAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "maze", Seed: 42, Outcome: OutcomeCleared, Score: 30, Ticks: 900, HP: 80})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	run, err := store.RunByID(id)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "maze", run.GameID)
	assert.Equal(t, int64(42), run.Seed)
	assert.Equal(t, OutcomeCleared, run.Outcome)
	assert.Equal(t, 30, run.Score)
	assert.Equal(t, int64(900), run.Ticks)
	assert.Equal(t, 80, run.HP)
	assert.False(t, run.CreatedAt.IsZero())

	missing, err := store.RunByID("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaveRunRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(Run{GameID: "maze", Outcome: "won"})
	assert.Error(t, err)
}

func TestTopRunsAndFastestClears(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "maze", Outcome: OutcomeCleared, Score: 20, Ticks: 1500},
		{GameID: "maze", Outcome: OutcomeGameOver, Score: 50, Ticks: 400},
		{GameID: "maze", Outcome: OutcomeCleared, Score: 20, Ticks: 1000},
		{GameID: "maze", Outcome: OutcomeCleared, Score: 0, Ticks: 700},
		{GameID: "maze_mobs", Outcome: OutcomeCleared, Score: 999, Ticks: 10},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	top, err := store.TopRuns("maze", 10)
	require.NoError(t, err)
	require.Len(t, top, 4)
	assert.Equal(t, 50, top[0].Score)
	assert.Equal(t, int64(1000), top[1].Ticks, "ties broken by fewer ticks")
	assert.Equal(t, int64(1500), top[2].Ticks)

	limited, err := store.TopRuns("maze", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	fastest, err := store.FastestClears("maze", 0)
	require.NoError(t, err)
	require.Len(t, fastest, 3)
	assert.Equal(t, int64(700), fastest[0].Ticks)
	for _, r := range fastest {
		assert.Equal(t, OutcomeCleared, r.Outcome)
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("maze")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	for _, score := range []int{10, 40, 25} {
		_, err := store.SaveRun(Run{GameID: "maze", Outcome: OutcomeGameOver, Score: score})
		require.NoError(t, err)
	}

	high, err = store.HighScore("maze")
	require.NoError(t, err)
	assert.Equal(t, 40, high)

	require.NoError(t, store.ClearRuns("maze"))
	top, err := store.TopRuns("maze", 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("maze")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.RunsCount)
	assert.Equal(t, 0.0, empty.ClearRate())
	assert.True(t, empty.LastPlayed.IsZero())

	runs := []Run{
		{GameID: "maze", Outcome: OutcomeCleared, Score: 30, Ticks: 800},
		{GameID: "maze", Outcome: OutcomeCleared, Score: 10, Ticks: 600},
		{GameID: "maze", Outcome: OutcomeGameOver, Score: 20, Ticks: 100},
		{GameID: "maze", Outcome: OutcomeQuit, Score: 0, Ticks: 50},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	stats, err := store.GetGameStats("maze")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.RunsCount)
	assert.Equal(t, 2, stats.Clears)
	assert.Equal(t, 30, stats.HighScore)
	assert.InDelta(t, 15.0, stats.AvgScore, 0.001)
	assert.Equal(t, int64(600), stats.BestTicks)
	assert.InDelta(t, 0.5, stats.ClearRate(), 0.001)
	assert.False(t, stats.LastPlayed.IsZero())
}
