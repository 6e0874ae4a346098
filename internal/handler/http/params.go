package http

import (
	"net/http"
	"strconv"

	"github.com/stockroomhq/stockroom/internal/repository"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// listParams parses page and per_page query parameters with sane defaults.
func listParams(r *http.Request) repository.ListParams {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return repository.ListParams{Page: page, PerPage: perPage}
}
