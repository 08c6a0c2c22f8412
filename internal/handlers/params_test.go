package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberian-api/internal/httperr"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

func newContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httperr.HTTPError {
	t.Helper()
	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestFieldErrorsAbortOnParseFailure(t *testing.T) {
	c, w := newContext(t, "/")

	fields := fieldErrors{}
	_, err := models.ParseClock("10:00")
	fields.add("start_time", err)
	_, err = models.ParseClock("half past ten")
	fields.add("end_time", err)

	require.True(t, fields.abort(c))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decodeError(t, w)
	assert.Equal(t, "invalid_input", body.Code)
	assert.NotContains(t, body.Fields, "start_time")
	assert.Contains(t, body.Fields["end_time"], "invalid time of day")
}

func TestFieldErrorsPassWhenEmpty(t *testing.T) {
	c, w := newContext(t, "/")

	assert.False(t, fieldErrors{}.abort(c))
	assert.False(t, c.IsAborted())
	assert.Empty(t, w.Body.Bytes())
}

func TestPathID(t *testing.T) {
	c, _ := newContext(t, "/roles/7")
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	id, ok := pathID(c, "id")
	require.True(t, ok)
	assert.Equal(t, uint(7), id)

	for _, raw := range []string{"0", "-1", "abc"} {
		c, w := newContext(t, "/roles/"+raw)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		_, ok := pathID(c, "id")
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, raw)
	}
}

func TestPageParams(t *testing.T) {
	c, _ := newContext(t, "/roles/")
	page, ok := pageParams(c)
	require.True(t, ok)
	assert.Equal(t, repository.Page{Limit: repository.DefaultLimit}, page)

	c, _ = newContext(t, "/roles/?skip=5&limit=0")
	page, ok = pageParams(c)
	require.True(t, ok)
	assert.Equal(t, repository.Page{Skip: 5, Limit: 0}, page)

	c, w := newContext(t, "/roles/?skip=-1&limit=x")
	_, ok = pageParams(c)
	require.False(t, ok)

	body := decodeError(t, w)
	assert.Contains(t, body.Fields, "skip")
	assert.Contains(t, body.Fields, "limit")
}
