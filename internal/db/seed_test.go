package db

import (
	"fmt"
	"testing"

	"suddenlyspaces/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))
	return gdb
}

func TestSeedIsIdempotent(t *testing.T) {
	gdb := newTestDB(t)

	// Seeding twice must not duplicate anything
	require.NoError(t, Seed(gdb))
	require.NoError(t, Seed(gdb))

	var users, props, apps int64
	require.NoError(t, gdb.Model(&domain.User{}).Count(&users).Error)
	require.NoError(t, gdb.Model(&domain.Property{}).Count(&props).Error)
	require.NoError(t, gdb.Model(&domain.Application{}).Count(&apps).Error)
	assert.Equal(t, int64(4), users)
	assert.Equal(t, int64(3), props)
	assert.Equal(t, int64(2), apps)

	// Sample properties reference seeded owners
	var prop domain.Property
	require.NoError(t, gdb.Preload("Owner").First(&prop, "id = ?", "sample-property-1").Error)
	assert.Equal(t, "owner1@example.com", prop.Owner.Email)
	assert.Equal(t, domain.RoleOwner, prop.Owner.Role)
}
