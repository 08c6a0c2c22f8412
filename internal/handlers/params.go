package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberian-api/internal/httperr"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
)

// pathID reads a positive integer path parameter. On failure the 422
// response is already written.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.Unprocessable(c, map[string]string{name: "must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// pageParams reads skip and limit, both non-negative. limit defaults to
// repository.DefaultLimit.
func pageParams(c *gin.Context) (repository.Page, bool) {
	page := repository.Page{Limit: repository.DefaultLimit}
	fields := map[string]string{}

	if raw, ok := c.GetQuery("skip"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fields["skip"] = "must be a non-negative integer"
		}
		page.Skip = n
	}
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fields["limit"] = "must be a non-negative integer"
		}
		page.Limit = n
	}

	if len(fields) > 0 {
		httperr.Unprocessable(c, fields)
		return repository.Page{}, false
	}
	return page, true
}

// fieldErrors collects per-field parse failures that binding tags did not
// already reject.
type fieldErrors map[string]string

func (f fieldErrors) add(field string, err error) {
	if err != nil {
		f[field] = err.Error()
	}
}

// abort writes the 422 and reports true when any field failed.
func (f fieldErrors) abort(c *gin.Context) bool {
	if len(f) == 0 {
		return false
	}
	httperr.Unprocessable(c, f)
	return true
}

// convertAll applies a model converter to every row.
func convertAll[M any, D any](rows []M, conv func(*M) *D) []D {
	out := make([]D, len(rows))
	for i := range rows {
		out[i] = *conv(&rows[i])
	}
	return out
}
