package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// urlID parses the numeric {param} URL parameter.
func urlID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
