package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-blog-client/internal/models"
)

// ListTags — GET /tags. Служебный тег в список не попадает.
func (h *Handlers) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Backend.ListTags(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.VisibleTags(tags))
}

// CreateTag — POST /tags. Требует сессии.
func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	var in models.TagForm
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, errInvalidBody)
		return
	}

	if err := h.Validate.Struct(in); err != nil {
		h.fail(w, r, err)
		return
	}

	tag, err := h.Backend.CreateTag(r.Context(), in.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}
