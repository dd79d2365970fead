package inbound

import (
	"net/http"

	"github.com/golddranks/pencil/internal/notes/entity"
)

type CreateNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Note struct {
	ID        int64  `json:"id,string"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
}

type CreateNoteResponse struct {
	Note
}

func (CreateNoteResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreateNoteResponse) Message() string {
	return "note created"
}

type ListNotesResponse struct {
	Notes []Note `json:"notes"`
}

func (r ListNotesResponse) Meta() map[string]any {
	return map[string]any{"total": len(r.Notes)}
}

func toNote(n entity.Note) Note {
	return Note{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}
