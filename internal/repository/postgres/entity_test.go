package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/repository"
)

// newDryRunDB builds a gorm handle that renders SQL without executing it.
// database/sql defers connecting until a statement runs, which DryRun never
// does, so no database is needed.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "host=127.0.0.1 user=hotel dbname=hotel_ops sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{DryRun: true, DisableAutomaticPing: true, SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db
}

func TestUpdateScopesByTenant(t *testing.T) {
	db := newDryRunDB(t)

	var capturedSQL string
	var capturedVars []interface{}
	err := db.Callback().Update().After("gorm:update").Register("capture_stmt", func(tx *gorm.DB) {
		capturedSQL = tx.Statement.SQL.String()
		capturedVars = tx.Statement.Vars
	})
	require.NoError(t, err)

	store := newEntityStore[domain.Task](db, db)
	task := &domain.Task{ID: "task1", TenantID: "hotel-a", Title: "Clean room 204"}

	// DryRun reports zero affected rows, which maps to not found.
	updateErr := store.Update(context.Background(), task)
	assert.ErrorIs(t, updateErr, repository.ErrNotFound)

	assert.Contains(t, capturedSQL, "tenant_id = ")
	assert.Contains(t, capturedVars, "hotel-a")
	assert.Contains(t, capturedVars, "task1")
}

func TestDeleteScopesByTenant(t *testing.T) {
	db := newDryRunDB(t)

	var capturedSQL string
	var capturedVars []interface{}
	err := db.Callback().Delete().After("gorm:delete").Register("capture_stmt", func(tx *gorm.DB) {
		capturedSQL = tx.Statement.SQL.String()
		capturedVars = tx.Statement.Vars
	})
	require.NoError(t, err)

	store := newEntityStore[domain.Task](db, db)

	deleteErr := store.Delete(context.Background(), "hotel-a", "task1")
	assert.ErrorIs(t, deleteErr, repository.ErrNotFound)

	assert.Contains(t, capturedSQL, "tenant_id")
	assert.Contains(t, capturedVars, "hotel-a")
	assert.Contains(t, capturedVars, "task1")
}
