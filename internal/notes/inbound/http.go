package inbound

import (
	"context"

	"github.com/golddranks/pencil/internal/notes/entity"
	"github.com/golddranks/pencil/internal/pkg/pkgrouter"
)

type noteStore interface {
	Create(ctx context.Context, title, body string) (entity.Note, error)
	Get(ctx context.Context, id int64) (entity.Note, error)
	List(ctx context.Context) ([]entity.Note, error)
	Delete(ctx context.Context, id int64) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, s noteStore) {
	end := &HTTPEndpoint{notes: s}

	r.POST("/notes", end.Create)
	r.GET("/notes", end.List)
	r.GET("/notes/:id", end.Get)
	r.DELETE("/notes/:id", end.Delete)
}
