package db

import (
	"path/filepath"
	"testing"

	"propfinance_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeAndMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "content.db")

	require.NoError(t, Initialize(dbPath, "test"))
	defer func() {
		assert.NoError(t, Close())
		DB = nil
	}()

	require.NoError(t, Migrate())

	// The full entity set comes up in one pass
	for _, model := range []interface{}{
		&models.County{},
		&models.Town{},
		&models.LocationService{},
		&models.Lead{},
		&models.CaseStudy{},
		&models.Guide{},
	} {
		assert.True(t, DB.Migrator().HasTable(model))
	}

	var mode string
	require.NoError(t, DB.Raw("PRAGMA journal_mode").Scan(&mode).Error)
	assert.Equal(t, "wal", mode)
}

func TestMigrateRequiresInitialize(t *testing.T) {
	saved := DB
	DB = nil
	defer func() { DB = saved }()

	assert.Error(t, Migrate())
}
