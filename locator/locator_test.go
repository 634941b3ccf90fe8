package locator

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/MKhiriev/go-db-warden/batch"
	"github.com/MKhiriev/go-db-warden/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocator_Lookup(t *testing.T) {
	loc := NewMemory().
		AddScript("Upgrade_1_to_2", "ALTER TABLE t ADD COLUMN b INT").
		AddScript("cleanup", "DROP TABLE t")

	assert.ElementsMatch(t, []string{"Upgrade_1_to_2", "cleanup"}, loc.Names())

	// lookup is case-insensitive
	b, err := loc.Batch("UPGRADE_1_TO_2", DefaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())

	_, err = loc.Batch("unknown", DefaultSeparator)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFSLocator_Lookup(t *testing.T) {
	fsys := fstest.MapFS{
		"scripts/upgrade_1_to_2.sql": {Data: []byte("ALTER TABLE t ADD COLUMN b INT\nGO\nUPDATE t SET b = 0")},
		"scripts/Cleanup.sql":        {Data: []byte("DROP TABLE t")},
		"scripts/readme.txt":         {Data: []byte("not a script")},
	}

	loc, err := NewFS(fsys, "scripts")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"upgrade_1_to_2", "Cleanup"}, loc.Names())

	b, err := loc.Batch("upgrade_1_to_2", DefaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())

	b, err = loc.Batch("cleanup", DefaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, "DROP TABLE t", b.Commands()[0].Script())

	_, err = loc.Batch("readme", DefaultSeparator)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFuncsLocator_Lookup(t *testing.T) {
	loc := NewFuncs().Register("seed", func(b *batch.Batch) {
		b.AddCallback(func(ctx context.Context, q batch.Querier) (any, error) {
			return "seeded", nil
		}, models.TxRequired)
	})

	b, err := loc.Batch("Seed", "")
	require.NoError(t, err)
	require.Equal(t, 1, b.Len())
	assert.False(t, b.Commands()[0].IsScript())

	required, err := b.RequiresTransaction()
	require.NoError(t, err)
	assert.True(t, required)
}

func TestFuncsLocator_ConflictingBuilder(t *testing.T) {
	loc := NewFuncs().Register("bad", func(b *batch.Batch) {
		b.AddScript("SELECT 1", models.TxRequired)
		b.AddScript("SELECT 2", models.TxDisallowed)
	})

	_, err := loc.Batch("bad", "")
	assert.ErrorIs(t, err, batch.ErrConflictingTransactionRequirement)
}

func TestAggregateLocator_NamesUnion(t *testing.T) {
	first := NewMemory().AddScript("Alpha", "SELECT 1").AddScript("beta", "SELECT 2")
	second := NewMemory().AddScript("ALPHA", "SELECT 3").AddScript("gamma", "SELECT 4")

	agg := NewWaterfall(first, second)
	assert.ElementsMatch(t, []string{"Alpha", "beta", "gamma"}, agg.Names())

	empty := NewWaterfall()
	assert.Empty(t, empty.Names())
}

func TestAggregateLocator_WaterfallFirstHitWins(t *testing.T) {
	first := NewMemory().AddScript("up", "SELECT 'first'")
	second := NewMemory().AddScript("up", "SELECT 'second'").AddScript("extra", "SELECT 9")

	agg := NewWaterfall(first, second)

	b, err := agg.Batch("up", DefaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 'first'", b.Commands()[0].Script())

	// falls through to the second locator for names the first misses
	b, err = agg.Batch("extra", DefaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 9", b.Commands()[0].Script())

	_, err = agg.Batch("missing", DefaultSeparator)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAggregateLocator_MergeUnionsCommands(t *testing.T) {
	first := NewMemory().AddScript("up", "SELECT 'first'")
	second := NewMemory().AddScript("up", "SELECT 'second'")

	agg := NewMerge(first, second)

	b, err := agg.Batch("up", DefaultSeparator)
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())
	assert.Equal(t, "SELECT 'first'", b.Commands()[0].Script())
	assert.Equal(t, "SELECT 'second'", b.Commands()[1].Script())
}

func TestAggregateLocator_MergeMissFailsLookup(t *testing.T) {
	first := NewMemory().AddScript("up", "SELECT 'first'")
	second := NewMemory() // does not know "up"

	agg := NewMerge(first, second)

	_, err := agg.Batch("up", DefaultSeparator)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAggregateLocator_MergeDetectsConflicts(t *testing.T) {
	first := NewMemory().AddScript("up", "/* DBWARDEN:TransactionRequirement=Required */ SELECT 1")
	second := NewMemory().AddScript("up", "/* DBWARDEN:TransactionRequirement=Disallowed */ SELECT 2")

	agg := NewMerge(first, second)

	_, err := agg.Batch("up", DefaultSeparator)
	assert.ErrorIs(t, err, batch.ErrConflictingTransactionRequirement)
}
