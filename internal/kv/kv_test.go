package kv

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(afero.NewMemMapFs(), "data")
	require.NoError(t, err)
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Get("session")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set("session", []byte(`{"email":"fan@x.com"}`)))

	b, ok, err := s.Get("session")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"email":"fan@x.com"}`, string(b))

	require.NoError(t, s.Delete("session"))

	_, ok, err = s.Get("session")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_DeleteAbsentKey(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Delete("never_set"))
}

func TestStore_RejectsPathKeys(t *testing.T) {
	s := newTestStore(t)
	require.Error(t, s.Set("../escape", []byte("x")))
	_, _, err := s.Get("a/b")
	require.Error(t, err)
}
