package handlers

import (
	"net/http"
	"strings"

	"artistly/internal/app"
	"artistly/internal/domain/catalog"
	"artistly/internal/http/response"
)

type CatalogHandler struct {
	catalog *app.CatalogService
}

func NewCatalogHandler(catalog *app.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type artistListResponse struct {
	Artists   []catalog.Artist  `json:"artists"`
	Count     int               `json:"count"`
	Selection catalog.Selection `json:"selection"`
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *CatalogHandler) Facets(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.catalog.Facets().Sorted())
}

// List filters the catalog statelessly from query parameters. category may repeat
// or carry a comma separated list.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var categories []string
	for _, value := range query["category"] {
		categories = append(categories, strings.Split(value, ",")...)
	}
	selection := catalog.Selection{
		Categories: categories,
		Location:   query.Get("location"),
		PriceRange: query.Get("price_range"),
	}.Normalize()
	artists := h.catalog.Filter(selection)
	if selection.Categories == nil {
		selection.Categories = []string{}
	}
	response.JSON(w, http.StatusOK, artistListResponse{Artists: artists, Count: len(artists), Selection: selection})
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := segmentFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	artist, err := h.catalog.Get(id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, artist)
}
