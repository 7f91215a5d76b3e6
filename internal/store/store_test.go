package store

import (
	"io"
	"log/slog"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rosered/backend/internal/kvstore"
)

func newTestKV(t *testing.T) *kvstore.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&kvstore.Record{}))
	return kvstore.New(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
