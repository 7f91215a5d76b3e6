package kvstore

import (
	"io"
	"log/slog"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Record{}))
	return New(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, s.Put("k", payload{Name: "a", Count: 2}))

	var got payload
	require.True(t, s.Get("k", &got))
	require.Equal(t, payload{Name: "a", Count: 2}, got)
}

func TestGetAbsentKeepsFallback(t *testing.T) {
	s := newTestStore(t)

	got := []string{"fallback"}
	require.False(t, s.Get("missing", &got))
	// значение вызывающего не тронуто
	require.Equal(t, []string{"fallback"}, got)
}

func TestGetDecodeFailureIsSwallowed(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.DB.Create(&Record{Key: "broken", Value: []byte("{not json")}).Error)

	var got []string
	require.False(t, s.Get("broken", &got))
	require.Nil(t, got)
}

func TestPutReplacesValue(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put("k", []int{1, 2, 3}))
	require.NoError(t, s.Put("k", []int{9}))

	var got []int
	require.True(t, s.Get("k", &got))
	require.Equal(t, []int{9}, got)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put("k", "v"))
	require.NoError(t, s.Delete("k"))

	var got string
	require.False(t, s.Get("k", &got))

	// удаление отсутствующего ключа — no-op
	require.NoError(t, s.Delete("k"))
}
