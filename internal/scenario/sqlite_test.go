package scenario

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakeven-sim/simulator/internal/breakeven"
	"github.com/breakeven-sim/simulator/internal/db"
	"github.com/breakeven-sim/simulator/internal/migrations"
	"github.com/breakeven-sim/simulator/internal/presets"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "scenario-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, migrations.Up(database, "../../migrations"))
	return database
}

type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestRepository(t *testing.T, limit int) *SQLiteRepository {
	t.Helper()

	clock := &stepClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	seq := 0
	return NewSQLiteRepository(newTestDB(t), limit,
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("scenario-%d", seq)
		}),
	)
}

func computed(t *testing.T, key string) (breakeven.Input, breakeven.Result) {
	t.Helper()

	p, ok := presets.Get(key)
	require.True(t, ok, "preset %s", key)
	res, err := breakeven.Compute(p.Input)
	require.NoError(t, err)
	require.True(t, res.IsValid)
	return p.Input, res
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, 3)
	in, res := computed(t, "restaurant")

	saved, err := repo.Save(ctx, "  Plan A  ", in, res)
	require.NoError(t, err)
	assert.Equal(t, "scenario-1", saved.ID)
	assert.Equal(t, "Plan A", saved.Name)

	got, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Name, got.Name)
	assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, in.FixedCosts, got.Input.FixedCosts)
	assert.Equal(t, in.AOV, got.Input.AOV)
	require.NotNil(t, got.Input.TargetProfit)
	assert.Equal(t, *in.TargetProfit, *got.Input.TargetProfit)
	assert.InDelta(t, res.BreakEvenMonthlyRevenue.Float(), got.Result.BreakEvenMonthlyRevenue.Float(), 1e-6)
	assert.InDelta(t, res.ContributionMarginRate, got.Result.ContributionMarginRate, 1e-12)
	require.NotNil(t, got.Result.Capacity)
	require.NotNil(t, got.Result.Capacity.Store)
	assert.Equal(t, res.Capacity.Store.Status, got.Result.Capacity.Store.Status)
}

func TestSaveUsesGeneratedUUIDByDefault(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t), 0)
	assert.Equal(t, DefaultLimit, repo.Limit())

	in, res := computed(t, "cafe")
	saved, err := repo.Save(context.Background(), "Cafe", in, res)
	require.NoError(t, err)
	assert.Len(t, saved.ID, 36)
}

func TestSaveEnforcesLimit(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, 3)
	in, res := computed(t, "retail")

	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, fmt.Sprintf("Plan %d", i), in, res)
		require.NoError(t, err)
	}

	_, err := repo.Save(ctx, "one too many", in, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLimitReached)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	require.NoError(t, repo.Delete(ctx, list[0].ID))
	_, err = repo.Save(ctx, "fits again", in, res)
	assert.NoError(t, err)
}

func TestSaveRejectsInvalidScenario(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, 3)
	in, res := computed(t, "service")

	_, err := repo.Save(ctx, "   ", in, res)
	assert.ErrorIs(t, err, ErrInvalidScenario)

	invalid := res
	invalid.IsValid = false
	invalid.BreakEvenMonthlyRevenue = breakeven.NotComputable
	_, err = repo.Save(ctx, "broken", in, invalid)
	assert.ErrorIs(t, err, ErrInvalidScenario)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListIsOldestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, 3)
	in, res := computed(t, "restaurant")

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Save(ctx, name, in, res)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Name)
	assert.Equal(t, "second", list[1].Name)
	assert.Equal(t, "third", list[2].Name)
}

func TestGetAndDeleteUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, 3)

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClearRemovesEverything(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, 3)
	in, res := computed(t, "cafe")

	_, err := repo.Save(ctx, "a", in, res)
	require.NoError(t, err)
	_, err = repo.Save(ctx, "b", in, res)
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, repo.Clear(ctx))
}

func TestStoredResultIsNotRecalculated(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewSQLiteRepository(database, 3)
	in, res := computed(t, "restaurant")

	frozen := res
	frozen.BreakEvenMonthlyRevenue = 123
	saved, err := repo.Save(ctx, "frozen", in, frozen)
	require.NoError(t, err)

	got, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, breakeven.Amount(123), got.Result.BreakEvenMonthlyRevenue)
}

func TestInfiniteOrderCountsSurviveStorage(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, 3)
	in, res := computed(t, "restaurant")

	res.RequiredOrders.Store.Monthly = breakeven.NotComputable
	saved, err := repo.Save(ctx, "inf", in, res)
	require.NoError(t, err)

	got, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.Result.RequiredOrders.Store.Monthly.Float(), 1))
}
