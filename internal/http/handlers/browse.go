package handlers

import (
	"net/http"

	"artistly/internal/app"
	"artistly/internal/domain/catalog"
	"artistly/internal/http/response"
)

type BrowseHandler struct {
	browse *app.BrowseService
}

func NewBrowseHandler(browse *app.BrowseService) *BrowseHandler {
	return &BrowseHandler{browse: browse}
}

// signalRequest carries the deep-link category, e.g. from ?category=singers.
type signalRequest struct {
	Category string `json:"category"`
}

func (h *BrowseHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req signalRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.Category == "" {
		req.Category = r.URL.Query().Get("category")
	}
	view, err := h.browse.Open(r.Context(), req.Category)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, view)
}

func (h *BrowseHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	view, err := h.browse.View(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

func (h *BrowseHandler) Select(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var selection catalog.Selection
	if err := decodeJSON(r, &selection); err != nil {
		response.Error(w, err)
		return
	}
	view, err := h.browse.Select(r.Context(), id, selection)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

func (h *BrowseHandler) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	category, err := segmentFromPath(r, 4)
	if err != nil {
		response.Error(w, err)
		return
	}
	view, err := h.browse.ToggleCategory(r.Context(), id, category)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

func (h *BrowseHandler) Sync(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req signalRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	view, err := h.browse.Sync(r.Context(), id, req.Category)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

func (h *BrowseHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	view, err := h.browse.Clear(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}
