package store

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/golddranks/pencil/internal/notes/entity"
	"github.com/golddranks/pencil/internal/pkg/pkgerror"
	"github.com/golddranks/pencil/internal/pkg/pkguid"
)

// ErrNotFound indicates that the requested note does not exist.
var ErrNotFound = errors.New("note not found")

type InMemoryStore struct {
	mu    sync.RWMutex
	notes map[int64]entity.Note
	ids   pkguid.NumberID
	clock func() time.Time
}

func NewInMemoryStore(ids pkguid.NumberID) *InMemoryStore {
	return &InMemoryStore{
		notes: make(map[int64]entity.Note),
		ids:   ids,
		clock: time.Now,
	}
}

func (s *InMemoryStore) Create(ctx context.Context, title, body string) (entity.Note, error) {
	if err := ctx.Err(); err != nil {
		return entity.Note{}, err
	}

	note := entity.Note{
		ID:        s.ids.Generate(),
		Title:     title,
		Body:      body,
		CreatedAt: s.clock().Unix(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notes[note.ID]; exists {
		return entity.Note{}, pkgerror.Conflict("note id already taken")
	}
	s.notes[note.ID] = note

	return note, nil
}

func (s *InMemoryStore) Get(ctx context.Context, id int64) (entity.Note, error) {
	if err := ctx.Err(); err != nil {
		return entity.Note{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return entity.Note{}, ErrNotFound
	}

	return note, nil
}

// List returns all notes ordered by ID.
func (s *InMemoryStore) List(ctx context.Context) ([]entity.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]entity.Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b entity.Note) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return out, nil
}

func (s *InMemoryStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return ErrNotFound
	}
	delete(s.notes, id)

	return nil
}
