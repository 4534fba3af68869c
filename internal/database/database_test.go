package database

import (
	"context"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/config"
	"github.com/kahvecikaan/toyshop/internal/domain"
	"github.com/kahvecikaan/toyshop/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(&config.Config{Store: config.StoreSQLite, SQLitePath: ":memory:"}, hclog.NewNullLogger())
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })

	require.NoError(t, Migrate(db))
	return db
}

func TestOpenRejectsMemoryStore(t *testing.T) {
	_, err := Open(&config.Config{Store: config.StoreMemory}, hclog.NewNullLogger())
	assert.Error(t, err)
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := openSQLite(t)
	assert.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable(&domain.Toy{}))
	assert.True(t, db.Migrator().HasTable(&domain.Category{}))
}

func TestSeedGorm(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	categories := repository.NewGormCategoryRepository(db)
	toys := repository.NewGormToyRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	added, err := Seed(ctx, categories, toys, now, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	added, err = Seed(ctx, categories, toys, now, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Zero(t, added)

	all, err := categories.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	plush, err := categories.GetBySlug(ctx, "plush")
	require.NoError(t, err)
	bear, err := toys.GetBySlug(ctx, "sleepy-bear")
	require.NoError(t, err)
	assert.Equal(t, plush.ID, bear.CategoryID)
}

func TestSeedReusesExistingCategories(t *testing.T) {
	ctx := context.Background()
	categories := repository.NewMemoryCategoryRepository(
		domain.Category{ID: 7, Name: "Plush", Slug: "plush", CreatedAt: time.Now()},
	)
	toys := repository.NewMemoryToyRepository()

	added, err := Seed(ctx, categories, toys, time.Now(), hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	bear, err := toys.GetBySlug(ctx, "sleepy-bear")
	require.NoError(t, err)
	assert.EqualValues(t, 7, bear.CategoryID)
}
