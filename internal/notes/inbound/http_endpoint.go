package inbound

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/golddranks/pencil/internal/notes/store"
	"github.com/golddranks/pencil/internal/pkg/pkgerror"
	"github.com/golddranks/pencil/internal/pkg/pkgrouter"
)

const maxBodyBytes = 1 << 20

type HTTPEndpoint struct {
	notes noteStore
}

func (h *HTTPEndpoint) Create(r *pkgrouter.Request) pkgrouter.Outcome {
	var req CreateNoteRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return pkgrouter.Fail(pkgerror.BadRequest("invalid json body"))
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return pkgrouter.Fail(pkgerror.NewHTTPError(http.StatusUnprocessableEntity,
			pkgerror.WithDescription("title is required")))
	}

	note, err := h.notes.Create(r.Context(), req.Title, req.Body)
	if err != nil {
		return pkgrouter.Fail(pkgerror.From(err))
	}

	return pkgrouter.OK(pkgrouter.Envelope(CreateNoteResponse{Note: toNote(note)}))
}

func (h *HTTPEndpoint) Get(r *pkgrouter.Request) pkgrouter.Outcome {
	id, fail := parseID(r.ViewArgs.Get("id"))
	if fail != nil {
		return pkgrouter.Fail(fail)
	}

	note, err := h.notes.Get(r.Context(), id)
	if err != nil {
		return pkgrouter.Fail(mapStoreError(err))
	}

	return pkgrouter.OK(pkgrouter.Envelope(toNote(note)))
}

func (h *HTTPEndpoint) List(r *pkgrouter.Request) pkgrouter.Outcome {
	notes, err := h.notes.List(r.Context())
	if err != nil {
		return pkgrouter.Fail(mapStoreError(err))
	}

	out := ListNotesResponse{Notes: make([]Note, 0, len(notes))}
	for _, n := range notes {
		out.Notes = append(out.Notes, toNote(n))
	}

	return pkgrouter.OK(pkgrouter.Envelope(out))
}

func (h *HTTPEndpoint) Delete(r *pkgrouter.Request) pkgrouter.Outcome {
	id, fail := parseID(r.ViewArgs.Get("id"))
	if fail != nil {
		return pkgrouter.Fail(fail)
	}

	if err := h.notes.Delete(r.Context(), id); err != nil {
		return pkgrouter.Fail(mapStoreError(err))
	}

	return pkgrouter.OK(nil)
}

func parseID(raw string) (int64, *pkgerror.HTTPError) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerror.BadRequest("id must be a positive integer")
	}
	return id, nil
}

func mapStoreError(err error) pkgerror.PencilError {
	if errors.Is(err, store.ErrNotFound) {
		return pkgerror.NotFound("note not found").Lift()
	}
	return pkgerror.From(err)
}
