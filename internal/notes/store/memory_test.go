package store

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golddranks/pencil/internal/pkg/pkgerror"
)

type seqID struct {
	mu   sync.Mutex
	next int64
}

func (s *seqID) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

type fixedID int64

func (f fixedID) Generate() int64 { return int64(f) }

func newTestStore() *InMemoryStore {
	s := NewInMemoryStore(&seqID{})
	s.clock = func() time.Time { return time.Unix(1700000000, 0) }
	return s
}

func TestInMemoryStore_CreateGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore()

	created, err := s.Create(ctx, "title", "body")
	require.NoError(t, err)
	assert.EqualValues(t, 1, created.ID)
	assert.EqualValues(t, 1700000000, created.CreatedAt)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestInMemoryStore_GetMissing(t *testing.T) {
	t.Parallel()

	_, err := newTestStore().Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryStore_DuplicateID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore(fixedID(9))

	_, err := s.Create(ctx, "a", "")
	require.NoError(t, err)

	_, err = s.Create(ctx, "b", "")
	var he *pkgerror.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusConflict, he.Code())
}

func TestInMemoryStore_ListOrdered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore()
	for _, title := range []string{"one", "two", "three"} {
		_, err := s.Create(ctx, title, "")
		require.NoError(t, err)
	}

	notes, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	for i, n := range notes {
		assert.EqualValues(t, i+1, n.ID)
	}
}

func TestInMemoryStore_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore()
	n, err := s.Create(ctx, "gone soon", "")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, n.ID))
	assert.ErrorIs(t, s.Delete(ctx, n.ID), ErrNotFound)
}

func TestInMemoryStore_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newTestStore()

	_, err := s.Create(ctx, "x", "")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.Get(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Delete(ctx, 1), context.Canceled)
}
